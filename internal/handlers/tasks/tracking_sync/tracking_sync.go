package tracking_sync

import (
	"context"
	"time"

	"service/internal/entities"
	"service/pkg/logger"
)

type Service interface {
	SyncInTransitShipments(ctx context.Context) (entities.SweepResult, error)
}

type TrackingSync struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewTrackingSync(log logger.Logger, service Service, interval time.Duration) *TrackingSync {
	return &TrackingSync{
		log:      log,
		service:  service,
		interval: interval,
	}
}

// TTL возвращает интервал между выполнениями задачи.
func (t *TrackingSync) TTL() time.Duration {
	return t.interval
}

// Do выполняет логику задачи.
func (t *TrackingSync) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, t.interval)
	defer cancel()

	result, err := t.service.SyncInTransitShipments(ctxWithTimeout)
	if err != nil {
		SweepRunsTotal.WithLabelValues(outcomeError).Inc()
		return err
	}

	SweepRunsTotal.WithLabelValues(outcomeOK).Inc()
	SweepOrdersTotal.WithLabelValues(resultSynced).Add(float64(result.Synced))
	SweepOrdersTotal.WithLabelValues(resultDelivered).Add(float64(result.Delivered))
	SweepOrdersTotal.WithLabelValues(resultFailed).Add(float64(result.Failed))

	t.log.With(
		logger.NewField("selected", result.Selected),
		logger.NewField("synced", result.Synced),
		logger.NewField("delivered", result.Delivered),
		logger.NewField("failed", result.Failed),
	).Info("tracking sweep finished")

	return nil
}

// Info возвращает читаемое описание задачи для логгирования и отладки.
func (t *TrackingSync) Info() string {
	return "tracking sync"
}
