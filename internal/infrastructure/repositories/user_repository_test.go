package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/you/escalationsvc/domain"
)

func TestUserRepositoryImpl_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := &domain.User{
		Name:         "Anne O'Brien",
		Email:        "anne@example.com",
		PasswordHash: "hashed_password",
		Role:         "user",
		EmergencyContact: domain.EmergencyContact{
			Name:         "Jane Doe",
			Relationship: "sister",
			PhoneNumber:  "15551234567",
		},
	}

	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected assigned user ID")
	}

	tests := []struct {
		name string
		find func() (*domain.User, error)
	}{
		{
			name: "by email",
			find: func() (*domain.User, error) { return repo.FindByEmail(context.Background(), "anne@example.com") },
		},
		{
			name: "by id",
			find: func() (*domain.User, error) { return repo.FindByID(context.Background(), user.ID) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := tt.find()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if found.Name != user.Name || found.Email != user.Email {
				t.Errorf("user did not round-trip: %+v", found)
			}
			if found.EmergencyContact != user.EmergencyContact {
				t.Errorf("emergency contact did not round-trip: %+v", found.EmergencyContact)
			}
		})
	}
}

func TestUserRepositoryImpl_FindByEmail_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepositoryImpl_UpdateEmergencyContact(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := &domain.User{
		Name:  "Bob",
		Email: "bob@example.com",
		EmergencyContact: domain.EmergencyContact{
			Name:         "Jane Doe",
			Relationship: "sister",
			PhoneNumber:  "15551234567",
		},
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	newContact := domain.EmergencyContact{
		Name:         "John Doe",
		Relationship: "brother",
		PhoneNumber:  "15559876543",
	}
	if err := repo.UpdateEmergencyContact(context.Background(), user.ID, newContact); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.FindByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.EmergencyContact != newContact {
		t.Errorf("expected updated contact %+v, got %+v", newContact, found.EmergencyContact)
	}
}

func TestUserRepositoryImpl_UpdateEmergencyContact_UnknownUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	err := repo.UpdateEmergencyContact(context.Background(), 999, domain.EmergencyContact{
		Name:         "John Doe",
		Relationship: "brother",
		PhoneNumber:  "15559876543",
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
