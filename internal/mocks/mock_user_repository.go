package mocks

import (
	"context"

	"github.com/you/escalationsvc/domain"
)

// MockUserRepository implements domain.UserRepository interface for testing
type MockUserRepository struct {
	CreateFunc                 func(ctx context.Context, user *domain.User) error
	FindByEmailFunc            func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc               func(ctx context.Context, id uint) (*domain.User, error)
	UpdateEmergencyContactFunc func(ctx context.Context, userID uint, contact domain.EmergencyContact) error
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	user.ID = 1
	return nil
}

// FindByEmail finds a user by email
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrUserNotFound
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

// UpdateEmergencyContact updates a user's emergency contact
func (m *MockUserRepository) UpdateEmergencyContact(ctx context.Context, userID uint, contact domain.EmergencyContact) error {
	if m.UpdateEmergencyContactFunc != nil {
		return m.UpdateEmergencyContactFunc(ctx, userID, contact)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)
