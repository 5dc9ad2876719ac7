package notify

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type captureNotifier struct {
	mu    sync.Mutex
	sent  []string
	phone []string
}

func (n *captureNotifier) Send(phone, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.phone = append(n.phone, phone)
	n.sent = append(n.sent, body)
	return nil
}

func TestWorkerDeliversQueuedEvents(t *testing.T) {
	n := &captureNotifier{}
	w := NewWorker(n, "http://localhost:5173", 8)

	err := w.Dispatch(context.Background(), RKStatusUpdated, Event{
		BookingID: "VH-202503-0005",
		Phone:     "9876543210",
		Service:   "RC Transfer (Ownership Change)",
		Status:    "Processing",
	})
	assert.NoError(t, err)

	// Close drains the queue before returning.
	w.Close()

	n.mu.Lock()
	defer n.mu.Unlock()
	if assert.Len(t, n.sent, 1) {
		assert.Contains(t, n.sent[0], "Processing")
		assert.Equal(t, "9876543210", n.phone[0])
	}
}

func TestWorkerCloseIsIdempotent(t *testing.T) {
	w := NewWorker(&captureNotifier{}, "http://localhost:5173", 1)
	w.Close()
	w.Close()
}

type fakePublisher struct {
	keys []string
}

func (p *fakePublisher) PublishJSON(_ context.Context, key string, _ any) error {
	p.keys = append(p.keys, key)
	return nil
}

func TestAMQPDispatcherPublishesWithRoutingKey(t *testing.T) {
	pub := &fakePublisher{}
	d := AMQPDispatcher{Pub: pub}

	err := d.Dispatch(context.Background(), RKBookingReceived, Event{BookingID: "VH-202503-0001"})
	assert.NoError(t, err)
	assert.Equal(t, []string{RKBookingReceived}, pub.keys)
}
