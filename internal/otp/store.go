package otp

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"
)

var (
	ErrNotFound = errors.New("otp request not found")
	ErrExpired  = errors.New("otp expired")
	ErrMismatch = errors.New("invalid otp")
)

const DefaultTTL = 5 * time.Minute

// Store holds pending one-time codes keyed by phone number. Codes are
// single-use: verification removes the entry whether it matched or
// expired. The clock is injected so tests can drive expiry.
type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	pending map[string]entry
}

type entry struct {
	code    string
	expires time.Time
}

func NewStore(ttl time.Duration, now func() time.Time) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Store{
		ttl:     ttl,
		now:     now,
		pending: make(map[string]entry),
	}
}

// Put registers a code for phone, replacing any pending one.
func (s *Store) Put(phone, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[phone] = entry{code: code, expires: s.now().Add(s.ttl)}
}

// Verify consumes the pending code for phone. A matching code is removed;
// so is an expired one, forcing a fresh send.
func (s *Store) Verify(phone, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.pending[phone]
	if !ok {
		return ErrNotFound
	}
	if s.now().After(e.expires) {
		delete(s.pending, phone)
		return ErrExpired
	}
	if e.code != code {
		return ErrMismatch
	}
	delete(s.pending, phone)
	return nil
}

// GenerateCode returns a random 4-digit code.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", n.Int64()+1000), nil
}
