package notify

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Notifier delivers one message to one phone number. Delivery is
// best-effort; callers treat failures as log-only.
type Notifier interface {
	Send(phone, body string) error
}

// TwilioNotifier sends WhatsApp messages through the Twilio API.
type TwilioNotifier struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioNotifier(accountSID, authToken, fromPhone string) *TwilioNotifier {
	return &TwilioNotifier{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from: "whatsapp:" + fromPhone,
	}
}

func (n *TwilioNotifier) Send(phone, body string) error {
	params := &twilioapi.CreateMessageParams{}
	params.SetFrom(n.from)
	params.SetTo("whatsapp:" + FormatPhone(phone))
	params.SetBody(body)

	msg, err := n.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio send: %w", err)
	}
	sid := ""
	if msg.Sid != nil {
		sid = *msg.Sid
	}
	log.WithFields(log.Fields{"module": "notify", "to": FormatPhone(phone), "sid": sid}).Info("whatsapp message sent")
	return nil
}

// LogNotifier is the sandbox fallback when Twilio is not configured: the
// message lands in the server log instead of on the customer's phone.
type LogNotifier struct{}

func (LogNotifier) Send(phone, body string) error {
	log.WithFields(log.Fields{"module": "notify", "to": FormatPhone(phone)}).Infof("simulated whatsapp message: %s", body)
	return nil
}

// FormatPhone normalizes a customer phone number, defaulting the country
// code to +91 when missing.
func FormatPhone(phone string) string {
	p := strings.TrimSpace(phone)
	if p == "" {
		return p
	}
	if !strings.HasPrefix(p, "+") {
		p = "+91" + p
	}
	return p
}
