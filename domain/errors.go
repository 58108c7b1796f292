package domain

import "errors"

// User and contact errors
var (
	ErrUserNotFound                = errors.New("user not found")
	ErrUserAlreadyExists           = errors.New("user already exists")
	ErrInvalidCredentials          = errors.New("invalid credentials")
	ErrWeakPassword                = errors.New("password must be at least 8 characters with an uppercase letter, a lowercase letter and a digit")
	ErrInvalidPhoneNumber          = errors.New("phone number must normalize to 10-15 digits")
	ErrContactNameRequired         = errors.New("emergency contact name is required")
	ErrContactRelationshipRequired = errors.New("emergency contact relationship is required")
)

// Escalation errors. ErrCallGateway is always recovered locally by the
// orchestrator and turned into a failed audit record; ErrAuditStore is
// surfaced to callers because an unrecorded escalation is an
// operational risk.
var (
	ErrCallGateway = errors.New("call gateway error")
	ErrAuditStore  = errors.New("audit store error")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
)

// Authorization errors
var (
	ErrUnauthorized = errors.New("unauthorized access")
)
