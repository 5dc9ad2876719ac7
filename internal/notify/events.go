package notify

import "encoding/json"

// Routing keys for outbound customer events.
const (
	RKBookingReceived = "booking.received"
	RKStatusUpdated   = "booking.status_updated"
)

// Event is the payload emitted by the booking service after a successful
// commit. It carries everything the notifier needs so the worker never
// reads the database.
type Event struct {
	BookingID string `json:"booking_id"`
	Phone     string `json:"phone"`
	Service   string `json:"service"`
	Status    string `json:"status"`
	Remarks   string `json:"remarks,omitempty"`
}

func Unmarshal(b []byte) (Event, error) {
	var ev Event
	err := json.Unmarshal(b, &ev)
	return ev, err
}
