package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderBookingReceived(t *testing.T) {
	body := Render(RKBookingReceived, Event{
		BookingID: "VH-202503-0005",
		Service:   "RC Transfer (Ownership Change)",
		Status:    "Confirmation Fee Paid",
	}, "http://localhost:5173/")

	assert.Contains(t, body, "Booking Received")
	assert.Contains(t, body, "VH-202503-0005")
	assert.Contains(t, body, "RC Transfer (Ownership Change)")
	assert.Contains(t, body, "http://localhost:5173/my-services")
	// The trailing slash on the portal URL must not double up.
	assert.NotContains(t, body, "//my-services")
}

func TestRenderStatusUpdatedWithRemarks(t *testing.T) {
	body := Render(RKStatusUpdated, Event{
		BookingID: "VH-202503-0005",
		Service:   "RC Transfer (Ownership Change)",
		Status:    "Not Serviceable",
		Remarks:   "RTO does not serve this pincode",
	}, "http://localhost:5173")

	assert.Contains(t, body, "Not Serviceable")
	assert.Contains(t, body, "refund has been processed")
	assert.Contains(t, body, "Note: RTO does not serve this pincode")
}

func TestRenderStatusUpdatedWithoutRemarks(t *testing.T) {
	body := Render(RKStatusUpdated, Event{
		BookingID: "VH-202503-0005",
		Service:   "DL Renewal",
		Status:    "Documents Picked Up",
	}, "http://localhost:5173")

	assert.Contains(t, body, "picked up your documents")
	assert.False(t, strings.Contains(body, "Note:"))
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "+919876543210", FormatPhone("9876543210"))
	assert.Equal(t, "+919876543210", FormatPhone(" 9876543210 "))
	assert.Equal(t, "+449876543210", FormatPhone("+449876543210"))
	assert.Equal(t, "", FormatPhone(""))
}
