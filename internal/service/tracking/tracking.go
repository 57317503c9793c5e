package tracking

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
	fallbackStatus      = "UNKNOWN"
	fallbackDescription = "No status description provided by carrier"

	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

type Config struct {
	// SweepBatchSize — максимум заказов на один проход фоновой сверки.
	SweepBatchSize int

	// SweepCallDelay — пауза между последовательными вызовами
	// перевозчика внутри прохода, сглаживает частоту запросов.
	SweepCallDelay time.Duration
}

type Tracking struct {
	log        logger.Logger
	orders     OrderRepository
	repository Repository
	carrier    CarrierGateway
	txManager  TxManager
	events     EventPublisher
	cfg        Config
}

func New(
	log logger.Logger,
	orders OrderRepository,
	repository Repository,
	carrier CarrierGateway,
	txManager TxManager,
	events EventPublisher,
	cfg Config,
) *Tracking {
	return &Tracking{
		log:        log,
		orders:     orders,
		repository: repository,
		carrier:    carrier,
		txManager:  txManager,
		events:     events,
		cfg:        cfg,
	}
}

// TrackOrder отвечает на вопрос "где мой заказ". При forceRefresh
// пробует живой запрос к перевозчику; при его отказе или без
// forceRefresh отдает последний снимок из кеша. Отказ перевозчика
// никогда не превращается в ошибку ответа, если есть хоть какие-то
// исторические данные.
func (t *Tracking) TrackOrder(ctx context.Context, orderID string, forceRefresh bool) (*entities.TrackingReport, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}

	order, err := t.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	report := baseReport(order)

	if order.AWBNo == nil || *order.AWBNo == "" {
		report.DataSource.Unavailable = true
		return report, nil
	}
	awbNo := *order.AWBNo

	var liveErr error
	if forceRefresh {
		snapshot, err := t.carrier.QueryTracking(ctx, awbNo)
		if err == nil {
			if _, werr := t.writeSnapshot(ctx, order.ID, awbNo, snapshot); werr != nil {
				t.logCacheWriteFailure(order.ID, awbNo, werr)
			}

			now := time.Now().UTC()
			fillFromSnapshot(report, snapshot, now)
			report.DataSource.IsLive = true
			return report, nil
		}
		// Живой запрос не удался — запоминаем и уходим в кеш.
		liveErr = err
	}

	record, err := t.repository.GetLatest(ctx, order.ID, awbNo)
	if err != nil {
		if !errors.Is(err, ErrNoTrackingData) {
			return nil, fmt.Errorf("read tracking cache: %w", err)
		}
		report.DataSource.Unavailable = true
		if liveErr != nil {
			report.LiveError = liveErr.Error()
		}
		return report, nil
	}

	fillFromRecord(report, record)
	report.DataSource.IsCached = true
	if liveErr != nil {
		report.LiveError = liveErr.Error()
	}
	return report, nil
}

// SyncShipment — ручная синхронизация одного заказа вне расписания
// фоновой сверки.
func (t *Tracking) SyncShipment(ctx context.Context, orderID string) (*entities.TrackingRecord, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}

	order, err := t.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if order.AWBNo == nil || *order.AWBNo == "" {
		return nil, ErrNotShipped
	}
	awbNo := *order.AWBNo

	snapshot, err := t.carrier.QueryTracking(ctx, awbNo)
	if err != nil {
		return nil, fmt.Errorf("query tracking: %w", err)
	}

	record := recordFromSnapshot(order.ID, awbNo, snapshot, time.Now().UTC())
	if persisted, werr := t.writeSnapshot(ctx, order.ID, awbNo, snapshot); werr != nil {
		t.logCacheWriteFailure(order.ID, awbNo, werr)
	} else {
		record = persisted
	}

	if _, err := t.maybePromoteDelivered(ctx, order, snapshot); err != nil {
		return nil, err
	}

	return record, nil
}

// GetTrackingHistory возвращает хронологию снимков трекинга заказа,
// новые записи первыми.
func (t *Tracking) GetTrackingHistory(ctx context.Context, orderID string, limit int) ([]entities.TrackingRecord, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}
	if limit <= 0 || limit > maxHistoryLimit {
		limit = defaultHistoryLimit
	}

	if _, err := t.orders.GetByID(ctx, orderID); err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	records, err := t.repository.ListHistory(ctx, orderID, limit)
	if err != nil {
		return nil, fmt.Errorf("list tracking history: %w", err)
	}

	return records, nil
}

// SyncInTransitShipments — один проход фоновой сверки: выборка заказов
// в пути, последовательные запросы к перевозчику (без параллелизма, из
// уважения к лимитам перевозчика), запись кеша и продвижение
// доставленных. Отказ по одному заказу не прерывает проход.
func (t *Tracking) SyncInTransitShipments(ctx context.Context) (entities.SweepResult, error) {
	orders, err := t.orders.ListInTransit(ctx, t.cfg.SweepBatchSize)
	if err != nil {
		return entities.SweepResult{}, fmt.Errorf("list in-transit orders: %w", err)
	}

	result := entities.SweepResult{Selected: len(orders)}

	for i := range orders {
		if i > 0 && t.cfg.SweepCallDelay > 0 {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-time.After(t.cfg.SweepCallDelay):
			}
		}

		order := orders[i]
		delivered, err := t.syncOne(ctx, &order)
		if err != nil {
			result.Failed++
			t.log.With(
				logger.NewField("order_id", order.ID),
				logger.NewField("error", err),
			).Error("tracking sweep: order sync failed")
			continue
		}

		result.Synced++
		if delivered {
			result.Delivered++
		}
	}

	return result, nil
}

func (t *Tracking) syncOne(ctx context.Context, order *entities.Order) (bool, error) {
	awbNo := *order.AWBNo

	snapshot, err := t.carrier.QueryTracking(ctx, awbNo)
	if err != nil {
		return false, fmt.Errorf("query tracking: %w", err)
	}

	if _, werr := t.writeSnapshot(ctx, order.ID, awbNo, snapshot); werr != nil {
		t.logCacheWriteFailure(order.ID, awbNo, werr)
	}

	return t.maybePromoteDelivered(ctx, order, snapshot)
}

// writeSnapshot — общая процедура записи кеша: сначала снять флаг
// latest с предыдущих записей, затем вставить новую. Обе операции в
// одной транзакции, чтобы две записи не оказались latest одновременно.
func (t *Tracking) writeSnapshot(ctx context.Context, orderID, awbNo string, snapshot *entities.TrackingSnapshot) (*entities.TrackingRecord, error) {
	var persisted *entities.TrackingRecord

	err := t.txManager.Do(ctx, func(ctx context.Context) error {
		if err := t.repository.SupersedeLatest(ctx, orderID, awbNo); err != nil {
			return fmt.Errorf("supersede latest: %w", err)
		}

		record := recordFromSnapshot(orderID, awbNo, snapshot, time.Now().UTC())
		inserted, err := t.repository.Insert(ctx, record)
		if err != nil {
			return fmt.Errorf("insert tracking record: %w", err)
		}

		persisted = inserted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return persisted, nil
}

func (t *Tracking) maybePromoteDelivered(ctx context.Context, order *entities.Order, snapshot *entities.TrackingSnapshot) (bool, error) {
	if order.Status != entities.OrderShipped || !indicatesDelivered(snapshot) {
		return false, nil
	}

	deliveredAt := time.Now().UTC()
	if err := t.orders.MarkDelivered(ctx, order.ID, deliveredAt); err != nil {
		return false, fmt.Errorf("mark delivered: %w", err)
	}

	event := entities.ShipmentEvent{
		Type:           entities.ShipmentDelivered,
		OrderID:        order.ID,
		AWBNo:          *order.AWBNo,
		Status:         entities.OrderDelivered,
		ShippingStatus: entities.ShippingDelivered,
		OccurredAt:     deliveredAt,
	}
	if err := t.events.Publish(ctx, event); err != nil {
		t.log.With(
			logger.NewField("order_id", order.ID),
			logger.NewField("event", string(event.Type)),
			logger.NewField("error", err),
		).Error("publish shipment event")
	}

	return true, nil
}

func (t *Tracking) logCacheWriteFailure(orderID, awbNo string, err error) {
	// Кеш — best-effort оптимизация: ошибка записи логируется и
	// глотается, основная операция продолжается.
	t.log.With(
		logger.NewField("order_id", orderID),
		logger.NewField("awb_no", awbNo),
		logger.NewField("error", err),
	).Error("tracking cache write failed")
}

// indicatesDelivered распознает доставку по тексту статуса перевозчика.
func indicatesDelivered(snapshot *entities.TrackingSnapshot) bool {
	status := strings.ToLower(snapshot.Status)
	if strings.Contains(status, "undelivered") || strings.Contains(status, "not delivered") {
		return false
	}
	return strings.Contains(status, "delivered")
}

func recordFromSnapshot(orderID, awbNo string, snapshot *entities.TrackingSnapshot, syncedAt time.Time) *entities.TrackingRecord {
	status := snapshot.Status
	if strings.TrimSpace(status) == "" {
		status = fallbackStatus
	}

	description := snapshot.Description
	if strings.TrimSpace(description) == "" {
		description = fallbackDescription
	}

	return &entities.TrackingRecord{
		OrderID:      orderID,
		AWBNo:        awbNo,
		Status:       status,
		Description:  description,
		Location:     snapshot.Location,
		EventDate:    snapshot.EventDate,
		LastSyncedAt: syncedAt,
		RawPayload:   snapshot.Raw,
		IsLatest:     true,
	}
}

func baseReport(order *entities.Order) *entities.TrackingReport {
	return &entities.TrackingReport{
		OrderID:        order.ID,
		AWBNo:          order.AWBNo,
		TrackingID:     order.TrackingID,
		OrderStatus:    order.Status,
		ShippingStatus: order.ShippingStatus,
		ShippingError:  order.ShippingError,
	}
}

func fillFromSnapshot(report *entities.TrackingReport, snapshot *entities.TrackingSnapshot, syncedAt time.Time) {
	report.CarrierStatus = snapshot.Status
	report.Description = snapshot.Description
	report.Location = snapshot.Location
	report.EventDate = snapshot.EventDate
	report.LastSyncedAt = &syncedAt
}

func fillFromRecord(report *entities.TrackingReport, record *entities.TrackingRecord) {
	report.CarrierStatus = record.Status
	report.Description = record.Description
	report.Location = record.Location
	report.EventDate = record.EventDate
	syncedAt := record.LastSyncedAt
	report.LastSyncedAt = &syncedAt
}
