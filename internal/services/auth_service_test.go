package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/you/escalationsvc/domain"
	"github.com/you/escalationsvc/internal/mocks"
)

// createAuthServiceForTest creates an AuthService with mock dependencies
func createAuthServiceForTest(t *testing.T) (domain.AuthService, *mocks.MockUserRepository, *mocks.MockSessionRepository) {
	t.Helper()

	userRepo := mocks.NewMockUserRepository()
	sessionRepo := mocks.NewMockSessionRepository()
	passwordSvc := mocks.NewMockPasswordService()
	tokenSvc := mocks.NewMockTokenService()

	svc := NewAuthService(userRepo, sessionRepo, passwordSvc, tokenSvc, 7*24*time.Hour, 15*time.Minute)
	return svc, userRepo, sessionRepo
}

func validRegisterRequest() domain.RegisterRequest {
	return domain.RegisterRequest{
		Name:     "Anne O'Brien",
		Email:    "Anne@Example.com",
		Password: "Sup3rSecret",
		EmergencyContact: domain.EmergencyContact{
			Name:         "Jane Doe",
			Relationship: "sister",
			PhoneNumber:  "+1 (555) 123-4567",
		},
	}
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*domain.RegisterRequest)
		setupMocks    func(*mocks.MockUserRepository)
		expectedError error
		validate      func(t *testing.T, user *domain.User)
	}{
		{
			name: "successful registration lowercases email",
			validate: func(t *testing.T, user *domain.User) {
				if user.Email != "anne@example.com" {
					t.Errorf("expected lowercased email, got %q", user.Email)
				}
				if user.Role != "user" {
					t.Errorf("expected default role user, got %q", user.Role)
				}
				if user.PasswordHash == "Sup3rSecret" {
					t.Error("password must not be stored in the clear")
				}
			},
		},
		{
			name: "weak password rejected",
			mutate: func(req *domain.RegisterRequest) {
				req.Password = "alllowercase1"
			},
			expectedError: domain.ErrWeakPassword,
		},
		{
			name: "short password rejected",
			mutate: func(req *domain.RegisterRequest) {
				req.Password = "Ab1"
			},
			expectedError: domain.ErrWeakPassword,
		},
		{
			name: "invalid emergency contact phone rejected",
			mutate: func(req *domain.RegisterRequest) {
				req.EmergencyContact.PhoneNumber = "12345"
			},
			expectedError: domain.ErrInvalidPhoneNumber,
		},
		{
			name: "duplicate email rejected",
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return &domain.User{ID: 1, Email: email}, nil
				}
			},
			expectedError: domain.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, userRepo, _ := createAuthServiceForTest(t)
			if tt.setupMocks != nil {
				tt.setupMocks(userRepo)
			}

			req := validRegisterRequest()
			if tt.mutate != nil {
				tt.mutate(&req)
			}

			user, err := svc.Register(context.Background(), req)
			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, user)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	storedUser := &domain.User{
		ID:           1,
		Name:         "Anne O'Brien",
		Email:        "anne@example.com",
		PasswordHash: "hashed:Sup3rSecret",
		Role:         "user",
	}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockSessionRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "Anne@Example.com",
			password: "Sup3rSecret",
			setupMocks: func(userRepo *mocks.MockUserRepository, _ *mocks.MockSessionRepository) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					if email != "anne@example.com" {
						t.Errorf("lookup must use normalized email, got %q", email)
					}
					return storedUser, nil
				}
			},
		},
		{
			name:          "unknown user",
			email:         "nobody@example.com",
			password:      "Sup3rSecret",
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "anne@example.com",
			password: "wrong",
			setupMocks: func(userRepo *mocks.MockUserRepository, _ *mocks.MockSessionRepository) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return storedUser, nil
				}
			},
			expectedError: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, userRepo, sessionRepo := createAuthServiceForTest(t)
			if tt.setupMocks != nil {
				tt.setupMocks(userRepo, sessionRepo)
			}

			result, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.AccessToken == "" {
				t.Error("expected an access token")
			}
			if result.SessionID == "" {
				t.Error("expected a session ID")
			}
		})
	}
}
