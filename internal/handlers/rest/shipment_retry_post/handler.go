package shipment_retry_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/AlekSi/pointer"
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

	var req dto.RetryAWBRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.writeError(w, respond.Error(w, http.StatusBadRequest, respond.CodeValidationError, "invalid request body"))
		return
	}

	input := shipment.GenerateInput{
		OrderID:        orderID,
		ConsigneeName:  pointer.GetString(req.ConsigneeName),
		ConsigneePhone: pointer.GetString(req.ConsigneePhone),
		ConsigneeEmail: pointer.GetString(req.ConsigneeEmail),
		WeightGrams:    pointer.GetInt(req.WeightGrams),
	}

	assignment, err := h.service.RetryWaybill(r.Context(), input)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	response := dto.WaybillResponse{
		OrderId:        assignment.OrderID,
		AwbNo:          assignment.AWBNo,
		TrackingId:     assignment.TrackingID,
		Status:         assignment.Status.String(),
		ShippingStatus: assignment.ShippingStatus.String(),
		AwbGeneratedAt: pointer.ToTime(assignment.GeneratedAt),
	}

	h.writeError(w, respond.JSON(w, http.StatusOK, response))
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	var alreadyErr *shipment.AlreadyGeneratedError
	if errors.As(err, &alreadyErr) {
		code := respond.CodeAWBAlreadyExists
		if errors.Is(err, shipment.ErrOrderAlreadyShipped) {
			code = respond.CodeOrderAlreadyShipped
		}
		body := dto.Error{
			Code:    code,
			Message: alreadyErr.Error(),
		}
		if alreadyErr.AWBNo != "" {
			body.AwbNo = pointer.ToString(alreadyErr.AWBNo)
			body.TrackingId = pointer.ToString(alreadyErr.TrackingID)
		}
		h.writeError(w, respond.JSON(w, http.StatusBadRequest, body))
		return
	}

	if handled, werr := respond.CarrierError(w, err); handled {
		h.writeError(w, werr)
		return
	}

	switch {
	case errors.Is(err, shipment.ErrOrderNotFound):
		h.writeError(w, respond.Error(w, http.StatusNotFound, respond.CodeOrderNotFound, "order not found"))
	case errors.Is(err, shipment.ErrOrderCancelled):
		h.writeError(w, respond.Error(w, http.StatusBadRequest, respond.CodeOrderCancelled, "order is cancelled"))
	case errors.Is(err, shipment.ErrOrderNotPaid):
		h.writeError(w, respond.Error(w, http.StatusBadRequest, respond.CodeOrderNotPaid, "order is not paid"))
	case errors.Is(err, shipment.ErrIncompleteAddress):
		h.writeError(w, respond.Error(w, http.StatusBadRequest, respond.CodeIncompleteAddress, "shipping address is incomplete"))
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
