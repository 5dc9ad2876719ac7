package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"vahanpe/internal/domain"
)

const (
	defaultBookingTag = "VH"
	maxMonthlySeq     = 9999
)

// Allocator mints human-readable booking identifiers of the form
// <TAG>-<YYYYMM>-<NNNN>. The numeric suffix restarts at 0001 each calendar
// month and is derived from the latest persisted identifier, so allocation
// is read-then-write and not safe under concurrent creation; the unique
// key on booking_id catches the race and the caller retries.
type Allocator struct {
	Tag string

	// LatestID returns the most recently assigned identifier with the
	// given prefix, by insertion order.
	LatestID func(prefix string) (string, bool, error)
}

func (a Allocator) tag() string {
	if t := strings.TrimSpace(a.Tag); t != "" {
		return t
	}
	return defaultBookingTag
}

// Prefix derives the month-scoped identifier prefix for the given date.
func (a Allocator) Prefix(now time.Time) string {
	return fmt.Sprintf("%s-%04d%02d-", a.tag(), now.Year(), int(now.Month()))
}

// Allocate returns the next identifier for the month of now. On any lookup
// or parse failure it returns an error and the caller must not create a
// booking record.
func (a Allocator) Allocate(now time.Time) (string, error) {
	prefix := a.Prefix(now)

	last, ok, err := a.LatestID(prefix)
	if err != nil {
		return "", domain.InternalError{Msg: "could not allocate booking identifier", Err: err}
	}

	seq := 1
	if ok {
		suffix := last[strings.LastIndex(last, "-")+1:]
		n, err := strconv.Atoi(suffix)
		if err != nil || n < 1 {
			return "", domain.InternalError{Msg: "could not allocate booking identifier", Err: fmt.Errorf("malformed identifier %q", last)}
		}
		seq = n + 1
	}

	// The 4-digit suffix is a format promise to customers and to anything
	// parsing the ids downstream; fail loudly instead of widening.
	if seq > maxMonthlySeq {
		return "", domain.InternalError{Msg: "monthly booking sequence exhausted", Err: fmt.Errorf("prefix %s at %d", prefix, maxMonthlySeq)}
	}

	return fmt.Sprintf("%s%04d", prefix, seq), nil
}
