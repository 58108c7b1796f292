package telephony

import (
	"log"
	"time"

	"github.com/you/escalationsvc/domain"
)

// Credentials holds the Twilio provisioning for the live gateway. The
// live variant requires all three fields; with any of them absent the
// selector falls back to simulation.
type Credentials struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

// Complete reports whether every credential needed for a live call is present.
func (c Credentials) Complete() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.FromNumber != ""
}

// Selector implements domain.CallGatewaySelector. Select runs once per
// escalation attempt rather than caching a gateway at startup, matching
// the per-attempt selection contract.
type Selector struct {
	creds   Credentials
	timeout time.Duration
}

// NewSelector creates a gateway selector for the given credentials.
func NewSelector(creds Credentials, timeout time.Duration) *Selector {
	if !creds.Complete() {
		log.Println("[ESCALATION] twilio credentials not configured, calls will be simulated")
	}
	return &Selector{creds: creds, timeout: timeout}
}

// Select implements domain.CallGatewaySelector
func (s *Selector) Select() domain.CallGateway {
	if s.creds.Complete() {
		return NewTwilioGateway(s.creds.AccountSID, s.creds.AuthToken, s.timeout)
	}
	return NewSimulatedGateway()
}

// Compile-time interface compliance verification
var _ domain.CallGatewaySelector = (*Selector)(nil)
