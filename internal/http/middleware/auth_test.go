package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/you/escalationsvc/domain"
	"github.com/you/escalationsvc/internal/mocks"
)

func setupAuthRouter(t *testing.T, tokenSvc domain.TokenService, sessionRepo domain.SessionRepository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mw := NewAuthMW(tokenSvc, sessionRepo)
	r := gin.New()
	r.GET("/protected", mw.WithJWT(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetUint("user_id"), "role": c.GetString("role")})
	})
	return r
}

func request(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMW_WithJWT(t *testing.T) {
	activeSession := &domain.Session{
		ID:        "sess-1",
		UserID:    7,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	tests := []struct {
		name           string
		authHeader     string
		setupMocks     func(*mocks.MockTokenService, *mocks.MockSessionRepository)
		expectedStatus int
	}{
		{
			name:           "missing header",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed header",
			authHeader:     "Basic abc123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token with live session",
			authHeader: "Bearer good-token",
			setupMocks: func(tokenSvc *mocks.MockTokenService, sessionRepo *mocks.MockSessionRepository) {
				tokenSvc.ValidateAccessTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return &domain.TokenClaims{UserID: 7, Role: "user", SessionID: "sess-1"}, nil
				}
				sessionRepo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
					return activeSession, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:       "expired token",
			authHeader: "Bearer stale-token",
			setupMocks: func(tokenSvc *mocks.MockTokenService, _ *mocks.MockSessionRepository) {
				tokenSvc.ValidateAccessTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return nil, domain.ErrTokenExpired
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "revoked session",
			authHeader: "Bearer good-token",
			setupMocks: func(tokenSvc *mocks.MockTokenService, sessionRepo *mocks.MockSessionRepository) {
				tokenSvc.ValidateAccessTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return &domain.TokenClaims{UserID: 7, Role: "user", SessionID: "sess-1"}, nil
				}
				sessionRepo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
					return nil, domain.ErrSessionNotFound
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "session user mismatch",
			authHeader: "Bearer good-token",
			setupMocks: func(tokenSvc *mocks.MockTokenService, sessionRepo *mocks.MockSessionRepository) {
				tokenSvc.ValidateAccessTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return &domain.TokenClaims{UserID: 99, Role: "user", SessionID: "sess-1"}, nil
				}
				sessionRepo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
					return activeSession, nil
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mocks.NewMockTokenService()
			sessionRepo := mocks.NewMockSessionRepository()
			if tt.setupMocks != nil {
				tt.setupMocks(tokenSvc, sessionRepo)
			}

			w := request(setupAuthRouter(t, tokenSvc, sessionRepo), tt.authHeader)
			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d (%s)", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
