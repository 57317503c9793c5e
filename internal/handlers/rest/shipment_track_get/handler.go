package shipment_track_get

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

	// Невалидное значение forceRefresh трактуем как false, а не как
	// ошибку запроса.
	forceRefresh, _ := strconv.ParseBool(r.URL.Query().Get("forceRefresh"))

	report, err := h.service.TrackOrder(r.Context(), orderID, forceRefresh)
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

	response := dto.TrackingResponse{
		OrderId:        report.OrderID,
		AwbNo:          report.AWBNo,
		TrackingId:     report.TrackingID,
		Status:         report.OrderStatus.String(),
		ShippingStatus: report.ShippingStatus.String(),
		ShippingError:  report.ShippingError,
		CarrierStatus:  report.CarrierStatus,
		Description:    report.Description,
		Location: dto.TrackingLocation{
			City:    report.Location.City,
			State:   report.Location.State,
			Country: report.Location.Country,
		},
		EventDate:    report.EventDate,
		LastSyncedAt: report.LastSyncedAt,
		DataSource: dto.TrackingDataSource{
			IsLive:      report.DataSource.IsLive,
			IsCached:    report.DataSource.IsCached,
			Unavailable: report.DataSource.Unavailable,
		},
	}
	if report.LiveError != "" {
		liveError := report.LiveError
		response.LiveError = &liveError
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
