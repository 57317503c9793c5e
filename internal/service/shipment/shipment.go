package shipment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"service/internal/entities"
	"service/pkg/logger"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type Shipment struct {
	log        logger.Logger
	repository Repository
	carrier    CarrierGateway
	events     EventPublisher
}

func New(
	log logger.Logger,
	repository Repository,
	carrier CarrierGateway,
	events EventPublisher,
) *Shipment {
	return &Shipment{
		log:        log,
		repository: repository,
		carrier:    carrier,
		events:     events,
	}
}

type GenerateInput struct {
	OrderID        string
	ConsigneeName  string
	ConsigneePhone string
	ConsigneeEmail string
	WeightGrams    int
}

// GenerateWaybill запрашивает накладную у перевозчика для оплаченного
// заказа. Предусловия проверяются по порядку, каждое возвращает свою
// ошибку без обращения к перевозчику.
func (s *Shipment) GenerateWaybill(ctx context.Context, input GenerateInput) (*entities.WaybillAssignment, error) {
	if !isValidOrderID(input.OrderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, input.OrderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	switch order.Status {
	case entities.OrderShipped, entities.OrderDelivered:
		// Повторный запрос после успешной генерации отвечает кодом
		// существующей накладной, а не статусом заказа.
		if derefString(order.AWBNo) != "" {
			return nil, NewAlreadyGeneratedError(ErrAWBAlreadyExists, derefString(order.AWBNo), derefString(order.TrackingID))
		}
		return nil, NewAlreadyGeneratedError(ErrOrderAlreadyShipped, "", "")
	case entities.OrderCancelled:
		return nil, ErrOrderCancelled
	}

	// Вторая защита от дублей, независимая от статуса: AWB мог быть
	// присвоен при рассинхронизации статуса и awb_no.
	if derefString(order.AWBNo) != "" {
		return nil, NewAlreadyGeneratedError(ErrAWBAlreadyExists, derefString(order.AWBNo), derefString(order.TrackingID))
	}

	if !order.IsPaid {
		return nil, ErrOrderNotPaid
	}

	if !hasCompleteAddress(order.ShippingAddress) {
		return nil, ErrIncompleteAddress
	}

	consignee := mergeConsignee(order.Consignee, input)
	if strings.TrimSpace(consignee.Name) == "" || strings.TrimSpace(consignee.Phone) == "" {
		return nil, ErrMissingRequiredFields
	}

	waybill, err := s.carrier.CreateWaybill(ctx, entities.WaybillRequest{
		OrderID:     order.ID,
		Consignee:   consignee,
		Address:     order.ShippingAddress,
		WeightGrams: input.WeightGrams,
	})
	if err != nil {
		return nil, s.registerCarrierFailure(ctx, order.ID, err)
	}

	generatedAt := time.Now().UTC()

	claimed, err := s.repository.ClaimAWB(ctx, order.ID, *waybill, consignee, generatedAt)
	if err != nil {
		return nil, fmt.Errorf("claim awb: %w", err)
	}
	if !claimed {
		// Конкурентный запрос успел присвоить AWB первым: отдаем его
		// накладную, нашу перевозчик со временем аннулирует по таймауту.
		s.log.With(
			logger.NewField("order_id", order.ID),
			logger.NewField("orphaned_awb", waybill.AWBNo),
		).Warn("concurrent waybill generation detected")

		current, getErr := s.repository.GetByID(ctx, order.ID)
		if getErr != nil {
			return nil, fmt.Errorf("get order after lost awb claim: %w", getErr)
		}
		return nil, NewAlreadyGeneratedError(ErrAWBAlreadyExists, derefString(current.AWBNo), derefString(current.TrackingID))
	}

	s.publish(ctx, entities.ShipmentEvent{
		Type:           entities.ShipmentShipped,
		OrderID:        order.ID,
		AWBNo:          waybill.AWBNo,
		Status:         entities.OrderShipped,
		ShippingStatus: entities.ShippingInTransit,
		OccurredAt:     generatedAt,
	})

	return &entities.WaybillAssignment{
		OrderID:        order.ID,
		AWBNo:          waybill.AWBNo,
		TrackingID:     waybill.TrackingID,
		Status:         entities.OrderShipped,
		ShippingStatus: entities.ShippingInTransit,
		GeneratedAt:    generatedAt,
	}, nil
}

// RetryWaybill повторяет генерацию для заказа с неудавшейся попыткой.
// Поля получателя опциональны: отсутствующие берутся из заказа. Повтор
// имеет смысл только пока AWB пуст — те же короткие замыкания, что и у
// GenerateWaybill.
func (s *Shipment) RetryWaybill(ctx context.Context, input GenerateInput) (*entities.WaybillAssignment, error) {
	return s.GenerateWaybill(ctx, input)
}

// CancelShipment отменяет накладную у перевозчика и переводит заказ в
// cancelled. Требует существующего AWB.
func (s *Shipment) CancelShipment(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if order.Status == entities.OrderCancelled {
		return nil, ErrOrderCancelled
	}
	// Доставленный заказ терминален: cancelled достижим только из
	// processing и shipped.
	if order.Status == entities.OrderDelivered {
		return nil, ErrOrderDelivered
	}
	if derefString(order.AWBNo) == "" {
		return nil, ErrAWBNotGenerated
	}

	if err := s.carrier.CancelWaybill(ctx, *order.AWBNo); err != nil {
		return nil, fmt.Errorf("cancel waybill: %w", err)
	}

	cancelled, err := s.repository.MarkCancelled(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("mark cancelled: %w", err)
	}

	s.publish(ctx, entities.ShipmentEvent{
		Type:           entities.ShipmentCancelled,
		OrderID:        order.ID,
		AWBNo:          *order.AWBNo,
		Status:         entities.OrderCancelled,
		ShippingStatus: entities.ShippingCancelled,
		OccurredAt:     time.Now().UTC(),
	})

	return cancelled, nil
}

func (s *Shipment) GetShipment(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (s *Shipment) GetShippingError(ctx context.Context, orderID string) (*entities.ShippingErrorDetail, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	canRetry := derefString(order.AWBNo) == "" &&
		order.Status == entities.OrderProcessing &&
		order.IsPaid

	return &entities.ShippingErrorDetail{
		OrderID:        order.ID,
		ShippingStatus: order.ShippingStatus,
		ShippingError:  order.ShippingError,
		CanRetry:       canRetry,
	}, nil
}

// UpdateShippingAddress правит адрес до генерации накладной.
func (s *Shipment) UpdateShippingAddress(ctx context.Context, orderID string, modify entities.ShippingAddressModify) (*entities.ShippingAddress, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	if modify.Address == nil || modify.City == nil || modify.PostalCode == nil {
		return nil, ErrMissingRequiredFields
	}
	if strings.TrimSpace(*modify.Address) == "" ||
		strings.TrimSpace(*modify.City) == "" ||
		strings.TrimSpace(*modify.PostalCode) == "" {
		return nil, ErrIncompleteAddress
	}

	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if order.Status == entities.OrderCancelled {
		return nil, ErrOrderCancelled
	}
	if derefString(order.AWBNo) != "" {
		return nil, NewAlreadyGeneratedError(ErrAWBAlreadyExists, derefString(order.AWBNo), derefString(order.TrackingID))
	}

	address, err := s.repository.UpdateShippingAddress(ctx, order.ID, modify)
	if err != nil {
		return nil, fmt.Errorf("update shipping address: %w", err)
	}
	return address, nil
}

func (s *Shipment) ListPendingShipments(ctx context.Context, filter entities.PendingShipmentsFilter) (*entities.OrderPage, error) {
	if filter.ShippingStatus != nil && !isValidShippingStatus(*filter.ShippingStatus) {
		return nil, ErrInvalidStatusFilter
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	page, err := s.repository.ListPending(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list pending shipments: %w", err)
	}
	return page, nil
}

// registerCarrierFailure фиксирует классифицированный отказ перевозчика
// на заказе. Сетевые/временные ошибки оставляют статус pending — повтор
// уместен; остальные помечают доставку как failed.
func (s *Shipment) registerCarrierFailure(ctx context.Context, orderID string, carrierErr error) error {
	shippingStatus := entities.ShippingFailed

	var unavailableErr *entities.CarrierUnavailableError
	if errors.As(carrierErr, &unavailableErr) {
		shippingStatus = entities.ShippingPending
	}

	if markErr := s.repository.SetShippingFailure(ctx, orderID, shippingStatus, carrierErr.Error()); markErr != nil {
		s.log.With(
			logger.NewField("order_id", orderID),
			logger.NewField("error", markErr),
		).Error("persist shipping failure")
	}

	s.publish(ctx, entities.ShipmentEvent{
		Type:           entities.ShipmentGenerationFailed,
		OrderID:        orderID,
		ShippingStatus: shippingStatus,
		Error:          carrierErr.Error(),
		OccurredAt:     time.Now().UTC(),
	})

	return fmt.Errorf("create waybill: %w", carrierErr)
}

// publish — best-effort: ошибка нотификации логируется и не влияет на
// результат операции.
func (s *Shipment) publish(ctx context.Context, event entities.ShipmentEvent) {
	if err := s.events.Publish(ctx, event); err != nil {
		s.log.With(
			logger.NewField("order_id", event.OrderID),
			logger.NewField("event", string(event.Type)),
			logger.NewField("error", err),
		).Error("publish shipment event")
	}
}

func mergeConsignee(stored entities.Consignee, input GenerateInput) entities.Consignee {
	merged := entities.Consignee{
		Name:  strings.TrimSpace(input.ConsigneeName),
		Phone: strings.TrimSpace(input.ConsigneePhone),
		Email: strings.TrimSpace(input.ConsigneeEmail),
	}

	if merged.Name == "" {
		merged.Name = stored.Name
	}
	if merged.Phone == "" {
		merged.Phone = stored.Phone
	}
	if merged.Email == "" {
		merged.Email = stored.Email
	}
	return merged
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
