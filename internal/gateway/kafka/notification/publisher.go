package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"service/internal/entities"
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

// Publisher транслирует события жизненного цикла отправления в топик
// нотификаций. Ключ партиционирования — orderId, чтобы события одного
// заказа читались по порядку.
type Publisher struct {
	sender sender
	topic  string
}

func New(sender sender, topic string) *Publisher {
	return &Publisher{
		sender: sender,
		topic:  topic,
	}
}

func (p *Publisher) Publish(ctx context.Context, event entities.ShipmentEvent) error {
	payload := shipmentEventPayload{
		Type:           string(event.Type),
		OrderID:        event.OrderID,
		AWBNo:          event.AWBNo,
		Status:         event.Status.String(),
		ShippingStatus: event.ShippingStatus.String(),
		Error:          event.Error,
		OccurredAt:     event.OccurredAt,
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal shipment event: %w", err)
	}

	if err := p.sender.Send(ctx, p.topic, event.OrderID, value); err != nil {
		EventsPublishedTotal.WithLabelValues(payload.Type, outcomeError).Inc()
		return fmt.Errorf("publish shipment event: %w", err)
	}

	EventsPublishedTotal.WithLabelValues(payload.Type, outcomeOK).Inc()
	return nil
}
