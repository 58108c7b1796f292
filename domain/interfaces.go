package domain

import "context"

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	UpdateEmergencyContact(ctx context.Context, userID uint, contact EmergencyContact) error
}

// EscalationRepository is the append-only audit store for escalation
// attempts. No update or delete is exposed.
type EscalationRepository interface {
	Append(ctx context.Context, attempt *EscalationAttempt) (uint, error)
	QueryByUser(ctx context.Context, userID uint) ([]EscalationAttempt, error)
}

// SessionRepository defines session data access operations
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// CallGateway places one voice call. Implementations return a
// CallHandle on success or an error wrapping ErrCallGateway.
type CallGateway interface {
	PlaceCall(ctx context.Context, to, from, voiceURL string) (*CallHandle, error)
}

// CallGatewaySelector picks the gateway variant for one escalation
// attempt. Selection happens per attempt, not once at startup, so the
// live variant is used exactly when credentials are complete.
type CallGatewaySelector interface {
	Select() CallGateway
}

// EscalationService coordinates policy, gateway and audit store.
type EscalationService interface {
	TriggerEscalation(ctx context.Context, userID uint, userName, emergencyPhone, sessionID string, severityRating int) (*EscalationResult, error)
	History(ctx context.Context, userID uint) ([]EscalationAttempt, error)
}

// SeverityPolicy decides whether a severity rating warrants escalation.
type SeverityPolicy interface {
	ShouldEscalate(severityRating int) bool
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	GetUserProfile(ctx context.Context, userID uint) (*User, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations
type TokenService interface {
	GenerateAccessToken(userID uint, role string, sessionID string) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}

// TokenClaims represents JWT token claims
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	Role      string `json:"role"`
	SessionID string `json:"session_id,omitempty"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
