package handlers

import (
	razorpay "github.com/razorpay/razorpay-go"

	intconfig "vahanpe/internal/config"
	"vahanpe/internal/notify"
	"vahanpe/internal/otp"
)

// Handlers bundles the request-scoped collaborators. The DB is reached
// through the shared pool in config; everything else is injected here so
// tests can swap fakes in.
type Handlers struct {
	Env        intconfig.Env
	OTP        *otp.Store
	Notifier   notify.Notifier
	Dispatcher notify.Dispatcher
	Razorpay   *razorpay.Client
}
