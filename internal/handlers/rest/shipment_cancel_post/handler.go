package shipment_cancel_post

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

	order, err := h.service.CancelShipment(r.Context(), orderID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	response := dto.CancelResponse{
		OrderId:        order.ID,
		Status:         order.Status.String(),
		ShippingStatus: order.ShippingStatus.String(),
	}

	h.writeError(w, respond.JSON(w, http.StatusOK, response))
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	if handled, werr := respond.CarrierError(w, err); handled {
		h.writeError(w, werr)
		return
	}

	switch {
	case errors.Is(err, shipment.ErrOrderNotFound):
		h.writeError(w, respond.Error(w, http.StatusNotFound, respond.CodeOrderNotFound, "order not found"))
	case errors.Is(err, shipment.ErrOrderCancelled):
		h.writeError(w, respond.Error(w, http.StatusBadRequest, respond.CodeOrderCancelled, "order is already cancelled"))
	case errors.Is(err, shipment.ErrOrderDelivered):
		h.writeError(w, respond.Error(w, http.StatusBadRequest, respond.CodeOrderDelivered, "order is already delivered"))
	case errors.Is(err, shipment.ErrAWBNotGenerated):
		h.writeError(w, respond.Error(w, http.StatusBadRequest, respond.CodeAWBNotGenerated, "waybill has not been generated"))
	case errors.Is(err, shipment.ErrInvalidOrderID):
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
