package admin_address_put

import (
	"encoding/json"
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

	var req dto.UpdateAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, respond.Error(w, http.StatusBadRequest, respond.CodeValidationError, "invalid request body"))
		return
	}

	modify := entities.ShippingAddressModify{
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	}

	address, err := h.service.UpdateShippingAddress(r.Context(), orderID, modify)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	response := dto.AddressResponse{
		Address:    address.Address,
		City:       address.City,
		State:      address.State,
		PostalCode: address.PostalCode,
		Country:    address.Country,
	}

	h.writeError(w, respond.JSON(w, http.StatusOK, response))
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shipment.ErrOrderNotFound):
		h.writeError(w, respond.Error(w, http.StatusNotFound, respond.CodeOrderNotFound, "order not found"))
	case errors.Is(err, shipment.ErrOrderCancelled):
		h.writeError(w, respond.Error(w, http.StatusBadRequest, respond.CodeOrderCancelled, "order is cancelled"))
	case errors.Is(err, shipment.ErrAWBAlreadyExists):
		h.writeError(w, respond.Error(w, http.StatusBadRequest, respond.CodeAWBAlreadyExists, "waybill already generated, address is frozen"))
	case errors.Is(err, shipment.ErrInvalidOrderID),
		errors.Is(err, shipment.ErrMissingRequiredFields):
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
