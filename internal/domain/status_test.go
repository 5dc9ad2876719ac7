package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageRankOrdersPipeline(t *testing.T) {
	pipeline := []BookingStatus{
		StatusConfirmationFeePaid,
		StatusServiceBooked,
		StatusDocumentsPickedUp,
		StatusProcessing,
		StatusDelivered,
	}
	for i := 1; i < len(pipeline); i++ {
		assert.Less(t, StageRank(pipeline[i-1]), StageRank(pipeline[i]))
	}
	// Retired labels from old rows sort as the earliest stage.
	assert.Equal(t, 0, StageRank(BookingStatus("Awaiting Payment")))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusNotServiceable.IsTerminal())
	assert.False(t, StatusDelivered.IsTerminal())
	assert.False(t, StatusConfirmationFeePaid.IsTerminal())
}

func TestParseBookingStatus(t *testing.T) {
	s, err := ParseBookingStatus("Documents Picked Up")
	assert.NoError(t, err)
	assert.Equal(t, StatusDocumentsPickedUp, s)

	_, err = ParseBookingStatus("documents picked up")
	assert.True(t, IsValidation(err))
	_, err = ParseBookingStatus("")
	assert.True(t, IsValidation(err))
}

func TestParseFeasibilityStatus(t *testing.T) {
	f, err := ParseFeasibilityStatus("Not Doable")
	assert.NoError(t, err)
	assert.Equal(t, FeasibilityNotDoable, f)

	_, err = ParseFeasibilityStatus("Unknown")
	assert.True(t, IsValidation(err))
}

func TestParseRefundStatus(t *testing.T) {
	r, err := ParseRefundStatus("N/A")
	assert.NoError(t, err)
	assert.Equal(t, RefundNotApplicable, r)

	_, err = ParseRefundStatus("None")
	assert.True(t, IsValidation(err))
}
