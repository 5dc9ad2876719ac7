package domain

// BookingStatus is the booking's position in the fulfillment pipeline.
// The wire values are the human-readable strings the portal has always
// shown, so they are kept verbatim.
type BookingStatus string

const (
	StatusConfirmationFeePaid BookingStatus = "Confirmation Fee Paid"
	StatusServiceBooked       BookingStatus = "Service Booked"
	StatusDocumentsPickedUp   BookingStatus = "Documents Picked Up"
	StatusProcessing          BookingStatus = "Processing"
	StatusDelivered           BookingStatus = "Delivered"
	StatusCancelled           BookingStatus = "Cancelled"
	StatusNotServiceable      BookingStatus = "Not Serviceable"
)

type FeasibilityStatus string

const (
	FeasibilityPending   FeasibilityStatus = "Pending"
	FeasibilityDoable    FeasibilityStatus = "Doable"
	FeasibilityNotDoable FeasibilityStatus = "Not Doable"
)

type RefundStatus string

const (
	RefundPending       RefundStatus = "Pending"
	RefundProcessed     RefundStatus = "Processed"
	RefundNotApplicable RefundStatus = "N/A"
)

// stageOrder fixes the forward order of the pipeline. Terminal states are
// ranked after Delivered so StageRank stays a total order.
var stageOrder = map[BookingStatus]int{
	StatusConfirmationFeePaid: 0,
	StatusServiceBooked:       1,
	StatusDocumentsPickedUp:   2,
	StatusProcessing:          3,
	StatusDelivered:           4,
	StatusCancelled:           5,
	StatusNotServiceable:      6,
}

// StageRank returns the position of s in the pipeline. Unknown values rank
// as the earliest stage; rows written before the enum was closed may carry
// retired labels and must still sort somewhere.
func StageRank(s BookingStatus) int {
	if r, ok := stageOrder[s]; ok {
		return r
	}
	return 0
}

// IsTerminal reports whether no further stage transitions are expected.
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusNotServiceable
}

func ParseBookingStatus(v string) (BookingStatus, error) {
	s := BookingStatus(v)
	if _, ok := stageOrder[s]; !ok {
		return "", ValidationError{Field: "status", Msg: "unknown status " + v}
	}
	return s, nil
}

func ParseFeasibilityStatus(v string) (FeasibilityStatus, error) {
	switch f := FeasibilityStatus(v); f {
	case FeasibilityPending, FeasibilityDoable, FeasibilityNotDoable:
		return f, nil
	}
	return "", ValidationError{Field: "feasibilityStatus", Msg: "unknown feasibility status " + v}
}

func ParseRefundStatus(v string) (RefundStatus, error) {
	switch r := RefundStatus(v); r {
	case RefundPending, RefundProcessed, RefundNotApplicable:
		return r, nil
	}
	return "", ValidationError{Field: "refundStatus", Msg: "unknown refund status " + v}
}
