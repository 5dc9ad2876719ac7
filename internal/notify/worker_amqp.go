package notify

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

// DeliverySource is satisfied by mq.Consumer.
type DeliverySource interface {
	Deliveries(ctx context.Context) (<-chan amqp.Delivery, error)
}

// RunConsumer drains broker deliveries and drives the Notifier. Send
// failures are acked anyway: dispatch is fire-and-forget and a requeue
// loop would hammer the messaging provider with the same broken payload.
func RunConsumer(ctx context.Context, src DeliverySource, n Notifier, portalURL string) error {
	msgs, err := src.Deliveries(ctx)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			ev, err := Unmarshal(d.Body)
			if err != nil {
				log.WithField("module", "notify").Warnf("malformed event key=%s: %v", d.RoutingKey, err)
				_ = d.Nack(false, false)
				continue
			}
			body := Render(d.RoutingKey, ev, portalURL)
			if err := n.Send(ev.Phone, body); err != nil {
				log.WithFields(log.Fields{"module": "notify", "booking_id": ev.BookingID}).
					Warnf("dispatch failed: %v", err)
			}
			_ = d.Ack(false)
		}
	}
}
