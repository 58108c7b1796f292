package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// EscalationOutcome is the final state of an escalation attempt.
type EscalationOutcome string

const (
	// OutcomePending is a transient in-memory state only; a persisted
	// record always carries OutcomeSuccess or OutcomeFailed.
	OutcomePending EscalationOutcome = "pending"
	OutcomeSuccess EscalationOutcome = "success"
	OutcomeFailed  EscalationOutcome = "failed"
)

// EmergencyContact is the person called when an escalation fires.
// Owned by the User aggregate; changed only via explicit user update.
type EmergencyContact struct {
	Name         string
	Relationship string
	PhoneNumber  string
}

// Validate checks the contact fields, including the phone number
// normalization invariant.
func (c *EmergencyContact) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrContactNameRequired
	}
	if strings.TrimSpace(c.Relationship) == "" {
		return ErrContactRelationshipRequired
	}
	if _, err := NormalizePhoneNumber(c.PhoneNumber); err != nil {
		return err
	}
	return nil
}

// NormalizePhoneNumber strips every non-digit character and validates
// that 10-15 digits remain (international format without the leading +).
func NormalizePhoneNumber(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	normalized := b.String()
	if len(normalized) < 10 || len(normalized) > 15 {
		return "", fmt.Errorf("%w: got %d digits from %q", ErrInvalidPhoneNumber, len(normalized), raw)
	}
	return normalized, nil
}

// User represents a user account with one emergency contact.
type User struct {
	ID               uint
	Name             string
	Email            string
	PasswordHash     string
	Role             string
	EmergencyContact EmergencyContact
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// EscalationAttempt is one append-only audit record of an escalation.
// Never mutated after append, never deleted. UserID and SessionID are
// weak references; UserName is a snapshot taken at escalation time so
// the record stays meaningful if the user later renames.
type EscalationAttempt struct {
	ID                uint
	UserID            uint
	SessionID         string
	SeverityRating    int // expected 1-5; advisory, the store accepts out-of-range values
	PhoneNumberCalled string
	UserName          string
	Result            EscalationOutcome
	CallReference     string
	ErrorMessage      string
	Simulated         bool
	CreatedAt         time.Time
}

// CallHandle identifies a placed (or simulated) voice call.
type CallHandle struct {
	Reference string
	Simulated bool
}

// EscalationResult is the orchestrator's answer to callers. The two
// booleans are deliberately separate: ProcessCompleted says the
// escalation protocol ran to completion and the audit record was
// written, CallSucceeded says the voice call itself went through.
type EscalationResult struct {
	ProcessCompleted bool
	CallSucceeded    bool
	Message          string
	EscalationID     uint
	CallReference    string
	Simulated        bool
}

// Session represents an authenticated user session.
type Session struct {
	ID        string
	UserID    uint
	ExpiresAt time.Time
	CreatedAt time.Time
}

// RegisterRequest carries the fields needed to create a user account.
type RegisterRequest struct {
	Name             string
	Email            string
	Password         string
	EmergencyContact EmergencyContact
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User        *User
	AccessToken string
	SessionID   string
	ExpiresIn   int64
}
