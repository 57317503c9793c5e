package admin_pending_get

import (
	"errors"
	"net/http"
	"strconv"

	"service/internal/entities"
	"service/internal/generated/dto"
	"service/internal/handlers/rest/respond"
	"service/internal/handlers/rest/shipment_get"
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
	query := r.URL.Query()

	filter := entities.PendingShipmentsFilter{}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))

	if statusStr := query.Get("status"); statusStr != "" {
		status := entities.ShippingStatusType(statusStr)
		filter.ShippingStatus = &status
	}

	page, err := h.service.ListPendingShipments(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrInvalidStatusFilter):
			h.writeError(w, respond.Error(w, http.StatusBadRequest, respond.CodeValidationError, err.Error()))
		default:
			h.writeError(w, respond.Error(w, http.StatusInternalServerError, respond.CodeInternalError, "internal error"))
		}
		return
	}

	response := dto.PendingShipmentsResponse{
		Orders: make([]dto.OrderShipping, 0, len(page.Orders)),
		Total:  page.Total,
		Page:   page.Page,
		Limit:  page.Limit,
	}
	for i := range page.Orders {
		response.Orders = append(response.Orders, shipment_get.ToOrderShippingDTO(&page.Orders[i]))
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
