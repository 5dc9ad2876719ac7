package notify

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Dispatcher hands a status event off for asynchronous delivery. Dispatch
// must not block the request path; errors mean the event was not queued,
// never that delivery failed.
type Dispatcher interface {
	Dispatch(ctx context.Context, key string, ev Event) error
}

type queued struct {
	key string
	ev  Event
}

// Worker is the single-process dispatcher: a buffered channel drained by
// one goroutine that renders the template and calls the Notifier.
type Worker struct {
	notifier  Notifier
	portalURL string

	ch        chan queued
	closeOnce sync.Once
	done      chan struct{}
}

func NewWorker(n Notifier, portalURL string, buffer int) *Worker {
	if buffer <= 0 {
		buffer = 64
	}
	w := &Worker{
		notifier:  n,
		portalURL: portalURL,
		ch:        make(chan queued, buffer),
		done:      make(chan struct{}),
	}
	go w.run()
	return w
}

func (w *Worker) run() {
	defer close(w.done)
	for q := range w.ch {
		body := Render(q.key, q.ev, w.portalURL)
		if err := w.notifier.Send(q.ev.Phone, body); err != nil {
			log.WithFields(log.Fields{
				"module":     "notify",
				"booking_id": q.ev.BookingID,
				"key":        q.key,
			}).Warnf("dispatch failed: %v", err)
		}
	}
}

func (w *Worker) Dispatch(_ context.Context, key string, ev Event) error {
	select {
	case w.ch <- queued{key: key, ev: ev}:
	default:
		// Fire-and-forget: a full buffer drops the event rather than
		// stalling the admin's request.
		log.WithFields(log.Fields{"module": "notify", "booking_id": ev.BookingID}).
			Warn("notification buffer full, event dropped")
	}
	return nil
}

// Close stops the worker after draining queued events.
func (w *Worker) Close() {
	w.closeOnce.Do(func() { close(w.ch) })
	<-w.done
}

// JSONPublisher is satisfied by mq.Publisher.
type JSONPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// AMQPDispatcher routes events through a broker so delivery survives
// restarts and can run in a separate consumer.
type AMQPDispatcher struct {
	Pub JSONPublisher
}

func (d AMQPDispatcher) Dispatch(ctx context.Context, key string, ev Event) error {
	return d.Pub.PublishJSON(ctx, key, ev)
}
