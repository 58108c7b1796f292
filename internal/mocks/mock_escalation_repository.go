package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/you/escalationsvc/domain"
)

// MockEscalationRepository implements domain.EscalationRepository for
// testing. The default behavior is an in-memory append-only store, safe
// for concurrent use so orchestrator concurrency tests can run against
// it directly.
type MockEscalationRepository struct {
	AppendFunc      func(ctx context.Context, attempt *domain.EscalationAttempt) (uint, error)
	QueryByUserFunc func(ctx context.Context, userID uint) ([]domain.EscalationAttempt, error)

	mu       sync.Mutex
	nextID   uint
	attempts []domain.EscalationAttempt
}

// NewMockEscalationRepository creates a new MockEscalationRepository with default behaviors
func NewMockEscalationRepository() *MockEscalationRepository {
	return &MockEscalationRepository{nextID: 1}
}

// Append appends an escalation attempt
func (m *MockEscalationRepository) Append(ctx context.Context, attempt *domain.EscalationAttempt) (uint, error) {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, attempt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	attempt.ID = m.nextID
	m.nextID++
	m.attempts = append(m.attempts, *attempt)
	return attempt.ID, nil
}

// QueryByUser returns the stored attempts for a user, createdAt ascending
func (m *MockEscalationRepository) QueryByUser(ctx context.Context, userID uint) ([]domain.EscalationAttempt, error) {
	if m.QueryByUserFunc != nil {
		return m.QueryByUserFunc(ctx, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.EscalationAttempt
	for _, a := range m.attempts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// Stored returns a copy of everything appended so far.
func (m *MockEscalationRepository) Stored() []domain.EscalationAttempt {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.EscalationAttempt, len(m.attempts))
	copy(out, m.attempts)
	return out
}

// Compile-time interface compliance verification
var _ domain.EscalationRepository = (*MockEscalationRepository)(nil)
