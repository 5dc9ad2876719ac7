package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

type Env struct {
	AppAddr string `envconfig:"APP_ADDR" default:":5000"`
	GinMode string `envconfig:"GIN_MODE"`

	DBUser string `envconfig:"DB_USER" default:"root"`
	DBPass string `envconfig:"DB_PASS"`
	DBHost string `envconfig:"DB_HOST" default:"127.0.0.1:3306"`
	DBName string `envconfig:"DB_NAME" default:"vahanpe"`

	JWTSecret string `envconfig:"JWT_SECRET" default:"secret"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS"`

	// Booking ID prefix tag, e.g. VH-202503-0001.
	BookingIDTag string `envconfig:"BOOKING_ID_TAG" default:"VH"`

	// Twilio WhatsApp sender. Empty SID disables real dispatch.
	TwilioAccountSID string `envconfig:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string `envconfig:"TWILIO_AUTH_TOKEN"`
	TwilioFromPhone  string `envconfig:"TWILIO_PHONE_NUMBER"`

	RazorpayKeyID     string `envconfig:"RAZORPAY_KEY_ID"`
	RazorpayKeySecret string `envconfig:"RAZORPAY_KEY_SECRET"`

	// When set, status events go through RabbitMQ instead of the
	// in-process worker.
	AMQPURL string `envconfig:"AMQP_URL"`

	PortalURL string `envconfig:"PORTAL_URL" default:"http://localhost:5173"`
}

// LoadEnv reads .env when present, then the process environment.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}

	var env Env
	if err := envconfig.Process("", &env); err != nil {
		log.Fatalf("invalid environment: %v", err)
	}
	return env
}
