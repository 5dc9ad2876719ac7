package otp

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStore() (*Store, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC)}
	return NewStore(5*time.Minute, clock.now), clock
}

func TestStoreVerifyMatch(t *testing.T) {
	s, _ := newTestStore()
	s.Put("9876543210", "4821")
	assert.NoError(t, s.Verify("9876543210", "4821"))
}

func TestStoreVerifyIsSingleUse(t *testing.T) {
	s, _ := newTestStore()
	s.Put("9876543210", "4821")
	assert.NoError(t, s.Verify("9876543210", "4821"))
	assert.ErrorIs(t, s.Verify("9876543210", "4821"), ErrNotFound)
}

func TestStoreVerifyMismatchKeepsCode(t *testing.T) {
	s, _ := newTestStore()
	s.Put("9876543210", "4821")
	assert.ErrorIs(t, s.Verify("9876543210", "0000"), ErrMismatch)
	// A typo must not burn the code.
	assert.NoError(t, s.Verify("9876543210", "4821"))
}

func TestStoreVerifyExpired(t *testing.T) {
	s, clock := newTestStore()
	s.Put("9876543210", "4821")
	clock.advance(5*time.Minute + time.Second)
	assert.ErrorIs(t, s.Verify("9876543210", "4821"), ErrExpired)
	// Expiry consumes the entry; the next attempt needs a fresh send.
	assert.ErrorIs(t, s.Verify("9876543210", "4821"), ErrNotFound)
}

func TestStorePutReplacesPendingCode(t *testing.T) {
	s, _ := newTestStore()
	s.Put("9876543210", "1111")
	s.Put("9876543210", "2222")
	assert.ErrorIs(t, s.Verify("9876543210", "1111"), ErrMismatch)
	assert.NoError(t, s.Verify("9876543210", "2222"))
}

func TestStoreVerifyUnknownPhone(t *testing.T) {
	s, _ := newTestStore()
	assert.ErrorIs(t, s.Verify("9999999999", "4821"), ErrNotFound)
}

func TestGenerateCodeIsFourDigits(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := GenerateCode()
		assert.NoError(t, err)
		assert.Len(t, code, 4)
		n, err := strconv.Atoi(code)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1000)
		assert.LessOrEqual(t, n, 9999)
	}
}
