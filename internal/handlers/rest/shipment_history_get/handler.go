package shipment_history_get

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"service/internal/generated/dto"
	"service/internal/handlers/rest/respond"
	"service/internal/service/tracking"
	"service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	records, err := h.service.GetTrackingHistory(r.Context(), orderID, limit)
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrOrderNotFound):
			h.writeError(w, respond.Error(w, http.StatusNotFound, respond.CodeOrderNotFound, "order not found"))
		case errors.Is(err, tracking.ErrInvalidOrderID):
			h.writeError(w, respond.Error(w, http.StatusBadRequest, respond.CodeValidationError, err.Error()))
		default:
			h.writeError(w, respond.Error(w, http.StatusInternalServerError, respond.CodeInternalError, "internal error"))
		}
		return
	}

	response := dto.TrackingHistoryResponse{
		OrderId: orderID,
		Records: make([]dto.TrackingRecord, 0, len(records)),
	}
	for i := range records {
		record := &records[i]
		response.Records = append(response.Records, dto.TrackingRecord{
			Id:          record.ID,
			Status:      record.Status,
			Description: record.Description,
			Location: dto.TrackingLocation{
				City:    record.Location.City,
				State:   record.Location.State,
				Country: record.Location.Country,
			},
			EventDate:    record.EventDate,
			LastSyncedAt: record.LastSyncedAt,
			IsLatest:     record.IsLatest,
			CreatedAt:    record.CreatedAt,
		})
	}

	h.writeError(w, respond.JSON(w, http.StatusOK, response))
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
