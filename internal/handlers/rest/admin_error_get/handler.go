package admin_error_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"service/internal/generated/dto"
	"service/internal/handlers/rest/respond"
	"service/internal/service/shipment"
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

	detail, err := h.service.GetShippingError(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrOrderNotFound):
			h.writeError(w, respond.Error(w, http.StatusNotFound, respond.CodeOrderNotFound, "order not found"))
		case errors.Is(err, shipment.ErrInvalidOrderID):
			h.writeError(w, respond.Error(w, http.StatusBadRequest, respond.CodeValidationError, err.Error()))
		default:
			h.writeError(w, respond.Error(w, http.StatusInternalServerError, respond.CodeInternalError, "internal error"))
		}
		return
	}

	response := dto.ShippingErrorResponse{
		OrderId:        detail.OrderID,
		ShippingStatus: detail.ShippingStatus.String(),
		ShippingError:  detail.ShippingError,
		CanRetry:       detail.CanRetry,
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
