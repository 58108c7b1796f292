package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/escalationsvc/domain"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc  domain.AuthService
	userRepo domain.UserRepository
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, userRepo domain.UserRepository) *AuthHandlers {
	return &AuthHandlers{
		authSvc:  authSvc,
		userRepo: userRepo,
	}
}

// EmergencyContactRequest represents the emergency contact payload
type EmergencyContactRequest struct {
	Name         string `json:"name" binding:"required"`
	Relationship string `json:"relationship" binding:"required"`
	PhoneNumber  string `json:"phone_number" binding:"required"`
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	Name             string                  `json:"name" binding:"required,min=2,max=100"`
	Email            string                  `json:"email" binding:"required,email"`
	Password         string                  `json:"password" binding:"required,min=8"`
	EmergencyContact EmergencyContactRequest `json:"emergency_contact" binding:"required"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), domain.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		EmergencyContact: domain.EmergencyContact{
			Name:         req.EmergencyContact.Name,
			Relationship: req.EmergencyContact.Relationship,
			PhoneNumber:  req.EmergencyContact.PhoneNumber,
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
		case errors.Is(err, domain.ErrWeakPassword),
			errors.Is(err, domain.ErrInvalidPhoneNumber),
			errors.Is(err, domain.ErrContactNameRequired),
			errors.Is(err, domain.ErrContactRelationshipRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"message": "User registered successfully",
			"user_id": user.ID,
		},
	})
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"access_token": result.AccessToken,
			"expires_in":   result.ExpiresIn,
			"user_id":      result.User.ID,
			"name":         result.User.Name,
		},
	})
}

// Logout handles user logout
func (h *AuthHandlers) Logout(c *gin.Context) {
	sessionID := c.GetString("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No active session"})
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Logged out"}})
}

// Me returns the authenticated user's profile
func (h *AuthHandlers) Me(c *gin.Context) {
	userID := c.GetUint("user_id")

	user, err := h.authSvc.GetUserProfile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"user_id": user.ID,
			"name":    user.Name,
			"email":   user.Email,
			"emergency_contact": gin.H{
				"name":         user.EmergencyContact.Name,
				"relationship": user.EmergencyContact.Relationship,
				"phone_number": user.EmergencyContact.PhoneNumber,
			},
		},
	})
}

// UpdateEmergencyContact handles PUT /auth/emergency-contact
func (h *AuthHandlers) UpdateEmergencyContact(c *gin.Context) {
	var req EmergencyContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact := domain.EmergencyContact{
		Name:         req.Name,
		Relationship: req.Relationship,
		PhoneNumber:  req.PhoneNumber,
	}
	if err := contact.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("user_id")
	if err := h.userRepo.UpdateEmergencyContact(c.Request.Context(), userID, contact); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update emergency contact"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Emergency contact updated"}})
}
