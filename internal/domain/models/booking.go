package models

import (
	"time"

	"vahanpe/internal/domain"
)

// Booking is the central entity: one purchased paperwork service tracked
// through its fulfillment stages. BookingID is assigned once at creation
// and never reused; price is a snapshot of the catalog price at that time.
type Booking struct {
	ID                 int64                    `json:"id"`
	BookingID          string                   `json:"bookingId"`
	ServiceType        string                   `json:"serviceType"`
	VehicleType        string                   `json:"vehicleType,omitempty"`
	RegistrationNumber string                   `json:"registrationNumber,omitempty"`
	RegistrationType   string                   `json:"registrationType,omitempty"`
	LicenceIssuedFrom  string                   `json:"licenceIssuedFrom,omitempty"`
	LicenceClass       string                   `json:"licenceClass,omitempty"`
	ServiceSelected    string                   `json:"serviceSelected"`
	ServiceDescription string                   `json:"serviceDescription,omitempty"`
	Status             domain.BookingStatus     `json:"status"`
	FeasibilityStatus  domain.FeasibilityStatus `json:"feasibilityStatus"`
	RefundStatus       domain.RefundStatus      `json:"refundStatus"`
	LastNotifiedStatus domain.BookingStatus     `json:"lastNotifiedStatus,omitempty"`
	CustomerPhone      string                   `json:"customerPhone"`
	CustomerName       string                   `json:"customerName,omitempty"`
	Price              float64                  `json:"price"`
	CreatedAt          time.Time                `json:"createdAt"`
	UpdatedAt          time.Time                `json:"updatedAt"`
}

// NewBooking carries the consumer-supplied fields of a booking request.
type NewBooking struct {
	ServiceType        string  `json:"serviceType"`
	VehicleType        string  `json:"vehicleType"`
	RegistrationNumber string  `json:"registrationNumber"`
	RegistrationType   string  `json:"registrationType"`
	LicenceIssuedFrom  string  `json:"licenceIssuedFrom"`
	LicenceClass       string  `json:"licenceClass"`
	ServiceSelected    string  `json:"serviceSelected"`
	ServiceDescription string  `json:"serviceDescription"`
	CustomerPhone      string  `json:"customerPhone"`
	CustomerName       string  `json:"customerName"`
	Price              float64 `json:"price"`
}

// StatusUpdate is the admin's PATCH payload. Empty strings mean "keep the
// current value"; the admin UI always re-sends the full form.
type StatusUpdate struct {
	Status            string `json:"status"`
	FeasibilityStatus string `json:"feasibilityStatus"`
	RefundStatus      string `json:"refundStatus"`
	Remarks           string `json:"remarks"`
}

// StatusFields is what a lifecycle update persists in one write.
type StatusFields struct {
	Status             domain.BookingStatus
	FeasibilityStatus  domain.FeasibilityStatus
	RefundStatus       domain.RefundStatus
	LastNotifiedStatus domain.BookingStatus
}
