package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vahanpe/internal/domain"
	"vahanpe/internal/domain/models"
)

func freshBooking() models.Booking {
	return models.Booking{
		ID:                 7,
		BookingID:          "VH-202503-0007",
		Status:             domain.StatusConfirmationFeePaid,
		FeasibilityStatus:  domain.FeasibilityPending,
		RefundStatus:       domain.RefundPending,
		LastNotifiedStatus: domain.StatusConfirmationFeePaid,
	}
}

func TestApplyAdminUpdateNotDoableForcesTerminalState(t *testing.T) {
	next, notify, err := ApplyAdminUpdate(freshBooking(), models.StatusUpdate{
		FeasibilityStatus: string(domain.FeasibilityNotDoable),
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusNotServiceable, next.Status)
	assert.Equal(t, domain.RefundProcessed, next.RefundStatus)
	assert.True(t, notify)
	assert.True(t, next.Status.IsTerminal())
}

func TestApplyAdminUpdateNotDoableOverridesRequestedStatus(t *testing.T) {
	// An explicit status in the same request loses against Not Doable.
	next, notify, err := ApplyAdminUpdate(freshBooking(), models.StatusUpdate{
		Status:            string(domain.StatusProcessing),
		FeasibilityStatus: string(domain.FeasibilityNotDoable),
		RefundStatus:      string(domain.RefundPending),
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusNotServiceable, next.Status)
	assert.Equal(t, domain.RefundProcessed, next.RefundStatus)
	assert.True(t, notify)
}

func TestApplyAdminUpdateDoableAutoAdvances(t *testing.T) {
	next, notify, err := ApplyAdminUpdate(freshBooking(), models.StatusUpdate{
		FeasibilityStatus: string(domain.FeasibilityDoable),
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusServiceBooked, next.Status)
	assert.Equal(t, domain.FeasibilityDoable, next.FeasibilityStatus)
	assert.True(t, notify)
	assert.Equal(t, domain.StatusServiceBooked, next.LastNotifiedStatus)
}

func TestApplyAdminUpdateExplicitStatusWinsOverAutoAdvance(t *testing.T) {
	next, notify, err := ApplyAdminUpdate(freshBooking(), models.StatusUpdate{
		Status:            string(domain.StatusDocumentsPickedUp),
		FeasibilityStatus: string(domain.FeasibilityDoable),
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusDocumentsPickedUp, next.Status)
	assert.True(t, notify)
}

func TestApplyAdminUpdateDoableOnlyAdvancesFromPending(t *testing.T) {
	b := freshBooking()
	b.Status = domain.StatusProcessing
	b.FeasibilityStatus = domain.FeasibilityDoable
	b.LastNotifiedStatus = domain.StatusProcessing

	next, notify, err := ApplyAdminUpdate(b, models.StatusUpdate{
		FeasibilityStatus: string(domain.FeasibilityDoable),
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusProcessing, next.Status)
	assert.False(t, notify)
}

func TestApplyAdminUpdateOmittedFieldsKeepCurrentValues(t *testing.T) {
	b := freshBooking()
	b.Status = domain.StatusDocumentsPickedUp
	b.FeasibilityStatus = domain.FeasibilityDoable
	b.LastNotifiedStatus = domain.StatusDocumentsPickedUp

	next, notify, err := ApplyAdminUpdate(b, models.StatusUpdate{
		RefundStatus: string(domain.RefundNotApplicable),
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusDocumentsPickedUp, next.Status)
	assert.Equal(t, domain.FeasibilityDoable, next.FeasibilityStatus)
	assert.Equal(t, domain.RefundNotApplicable, next.RefundStatus)
	assert.False(t, notify)
}

func TestApplyAdminUpdateNoDuplicateNotification(t *testing.T) {
	// The admin UI re-saves the whole form to add remarks. Same status
	// twice must not message the customer again.
	b := freshBooking()
	first, notify, err := ApplyAdminUpdate(b, models.StatusUpdate{
		Status: string(domain.StatusProcessing),
	})
	assert.NoError(t, err)
	assert.True(t, notify)

	b.Status = first.Status
	b.FeasibilityStatus = first.FeasibilityStatus
	b.RefundStatus = first.RefundStatus
	b.LastNotifiedStatus = first.LastNotifiedStatus

	_, notify, err = ApplyAdminUpdate(b, models.StatusUpdate{
		Status:  string(domain.StatusProcessing),
		Remarks: "courier picks up tomorrow",
	})
	assert.NoError(t, err)
	assert.False(t, notify)
}

func TestApplyAdminUpdateSkipsNotifyWhenAlreadyCommunicated(t *testing.T) {
	// Status flipped back and forth; the customer already heard about
	// Processing once, so returning to it stays quiet.
	b := freshBooking()
	b.Status = domain.StatusDocumentsPickedUp
	b.LastNotifiedStatus = domain.StatusProcessing

	next, notify, err := ApplyAdminUpdate(b, models.StatusUpdate{
		Status: string(domain.StatusProcessing),
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusProcessing, next.Status)
	assert.False(t, notify)
}

func TestApplyAdminUpdateRejectsUnknownValues(t *testing.T) {
	_, _, err := ApplyAdminUpdate(freshBooking(), models.StatusUpdate{Status: "Shipped"})
	assert.True(t, domain.IsValidation(err))

	_, _, err = ApplyAdminUpdate(freshBooking(), models.StatusUpdate{FeasibilityStatus: "Maybe"})
	assert.True(t, domain.IsValidation(err))

	_, _, err = ApplyAdminUpdate(freshBooking(), models.StatusUpdate{RefundStatus: "Soon"})
	assert.True(t, domain.IsValidation(err))
}
