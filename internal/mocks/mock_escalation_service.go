package mocks

import (
	"context"

	"github.com/you/escalationsvc/domain"
)

// MockEscalationService implements domain.EscalationService interface for testing
type MockEscalationService struct {
	TriggerEscalationFunc func(ctx context.Context, userID uint, userName, emergencyPhone, sessionID string, severityRating int) (*domain.EscalationResult, error)
	HistoryFunc           func(ctx context.Context, userID uint) ([]domain.EscalationAttempt, error)
}

// NewMockEscalationService creates a new MockEscalationService with default behaviors
func NewMockEscalationService() *MockEscalationService {
	return &MockEscalationService{}
}

// TriggerEscalation triggers an escalation
func (m *MockEscalationService) TriggerEscalation(ctx context.Context, userID uint, userName, emergencyPhone, sessionID string, severityRating int) (*domain.EscalationResult, error) {
	if m.TriggerEscalationFunc != nil {
		return m.TriggerEscalationFunc(ctx, userID, userName, emergencyPhone, sessionID, severityRating)
	}
	return &domain.EscalationResult{
		ProcessCompleted: true,
		CallSucceeded:    true,
		Message:          "emergency escalation triggered",
		EscalationID:     1,
		CallReference:    "CA-mock",
	}, nil
}

// History returns the escalation history for a user
func (m *MockEscalationService) History(ctx context.Context, userID uint) ([]domain.EscalationAttempt, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx, userID)
	}
	return nil, nil
}

// Compile-time interface compliance verification
var _ domain.EscalationService = (*MockEscalationService)(nil)
