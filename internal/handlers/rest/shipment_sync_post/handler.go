package shipment_sync_post

import (
	"errors"
	"net/http"

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

	record, err := h.service.SyncShipment(r.Context(), orderID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	response := dto.SyncResponse{
		OrderId:      record.OrderID,
		AwbNo:        record.AWBNo,
		Status:       record.Status,
		Description:  record.Description,
		LastSyncedAt: record.LastSyncedAt,
	}

	h.writeError(w, respond.JSON(w, http.StatusOK, response))
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	if handled, werr := respond.CarrierError(w, err); handled {
		h.writeError(w, werr)
		return
	}

	switch {
	case errors.Is(err, tracking.ErrOrderNotFound):
		h.writeError(w, respond.Error(w, http.StatusNotFound, respond.CodeOrderNotFound, "order not found"))
	case errors.Is(err, tracking.ErrNotShipped):
		h.writeError(w, respond.Error(w, http.StatusBadRequest, respond.CodeAWBNotGenerated, "waybill has not been generated"))
	case errors.Is(err, tracking.ErrInvalidOrderID):
		h.writeError(w, respond.Error(w, http.StatusBadRequest, respond.CodeValidationError, err.Error()))
	default:
		h.writeError(w, respond.Error(w, http.StatusInternalServerError, respond.CodeInternalError, "internal error"))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
