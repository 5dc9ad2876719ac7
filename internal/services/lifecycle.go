package services

import (
	"vahanpe/internal/domain"
	"vahanpe/internal/domain/models"
)

// ApplyAdminUpdate computes the net effect of an admin status update
// without touching storage. It returns the fields to persist and whether
// the customer must be notified of a status change.
//
// Rules, in priority order:
//  1. fields omitted from the request keep their current values;
//  2. feasibility "Not Doable" forces status Not Serviceable and refund
//     Processed, overriding any requested status;
//  3. the Pending -> Doable feasibility edge auto-advances the stage to
//     Service Booked when the admin did not pick a status explicitly;
//  4. otherwise the requested values win.
//
// A notification fires only when the status actually changed and differs
// from the last status already communicated; the admin UI re-saves the
// full form to attach remarks, and that must not re-send the same update.
func ApplyAdminUpdate(b models.Booking, req models.StatusUpdate) (models.StatusFields, bool, error) {
	next := models.StatusFields{
		Status:             b.Status,
		FeasibilityStatus:  b.FeasibilityStatus,
		RefundStatus:       b.RefundStatus,
		LastNotifiedStatus: b.LastNotifiedStatus,
	}

	statusRequested := req.Status != ""
	if statusRequested {
		s, err := domain.ParseBookingStatus(req.Status)
		if err != nil {
			return models.StatusFields{}, false, err
		}
		next.Status = s
	}
	if req.FeasibilityStatus != "" {
		f, err := domain.ParseFeasibilityStatus(req.FeasibilityStatus)
		if err != nil {
			return models.StatusFields{}, false, err
		}
		next.FeasibilityStatus = f
	}
	if req.RefundStatus != "" {
		r, err := domain.ParseRefundStatus(req.RefundStatus)
		if err != nil {
			return models.StatusFields{}, false, err
		}
		next.RefundStatus = r
	}

	switch {
	case next.FeasibilityStatus == domain.FeasibilityNotDoable:
		next.Status = domain.StatusNotServiceable
		next.RefundStatus = domain.RefundProcessed
	case next.FeasibilityStatus == domain.FeasibilityDoable &&
		b.FeasibilityStatus == domain.FeasibilityPending &&
		!statusRequested:
		next.Status = domain.StatusServiceBooked
	}

	notify := next.Status != b.Status && next.Status != b.LastNotifiedStatus
	if notify {
		next.LastNotifiedStatus = next.Status
	}

	return next, notify, nil
}
