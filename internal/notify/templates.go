package notify

import (
	"fmt"
	"strings"

	"vahanpe/internal/domain"
)

// Render builds the WhatsApp message body for an event. The copy mirrors
// what customers have been receiving since launch; change with care.
func Render(key string, ev Event, portalURL string) string {
	track := strings.TrimRight(portalURL, "/") + "/my-services"

	switch key {
	case RKBookingReceived:
		return fmt.Sprintf(
			"🚗 *Booking Received*\n\nHi, we have received your request for *%s*.\nBooking ID: *%s*\n\nWe will process it shortly. Track status: %s",
			ev.Service, ev.BookingID, track,
		)

	case RKStatusUpdated:
		var b strings.Builder
		fmt.Fprintf(&b, "🚗 *VahanPe Update*\n\nYour application (%s) status has been updated to: *%s*.", ev.Service, ev.Status)
		switch domain.BookingStatus(ev.Status) {
		case domain.StatusServiceBooked:
			b.WriteString("\n\nWe have received your request and will process it shortly.")
		case domain.StatusDocumentsPickedUp:
			b.WriteString("\n\nOur agent has picked up your documents.")
		case domain.StatusNotServiceable:
			b.WriteString("\n\nUnfortunately this request cannot be completed. Your refund has been processed.")
		}
		if ev.Remarks != "" {
			fmt.Fprintf(&b, "\n\nNote: %s", ev.Remarks)
		}
		fmt.Fprintf(&b, "\n\nTrack here: %s", track)
		return b.String()
	}

	return fmt.Sprintf("VahanPe update for booking %s: %s", ev.BookingID, ev.Status)
}

// RenderOTP builds the login verification message.
func RenderOTP(code string) string {
	return fmt.Sprintf("Your VahanPe verification code is: *%s*", code)
}
