package shipment_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"service/internal/entities"
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

	order, err := h.service.GetShipment(r.Context(), orderID)
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

	h.writeError(w, respond.JSON(w, http.StatusOK, ToOrderShippingDTO(order)))
}

func ToOrderShippingDTO(order *entities.Order) dto.OrderShipping {
	return dto.OrderShipping{
		OrderId:        order.ID,
		Status:         order.Status.String(),
		IsPaid:         order.IsPaid,
		AwbNo:          order.AWBNo,
		TrackingId:     order.TrackingID,
		ShippingStatus: order.ShippingStatus.String(),
		ShippingError:  order.ShippingError,
		AwbGeneratedAt: order.AWBGeneratedAt,
		ShippingAddress: dto.ShippingAddress{
			Address:    order.ShippingAddress.Address,
			City:       order.ShippingAddress.City,
			State:      order.ShippingAddress.State,
			PostalCode: order.ShippingAddress.PostalCode,
			Country:    order.ShippingAddress.Country,
		},
		Consignee: dto.Consignee{
			Name:  order.Consignee.Name,
			Phone: order.Consignee.Phone,
			Email: order.Consignee.Email,
		},
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
