package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/you/escalationsvc/domain"
)

// EscalationHandlers handles escalation HTTP requests
type EscalationHandlers struct {
	escalationSvc  domain.EscalationService
	severityPolicy domain.SeverityPolicy
	userRepo       domain.UserRepository
}

// NewEscalationHandlers creates new escalation handlers
func NewEscalationHandlers(escalationSvc domain.EscalationService, severityPolicy domain.SeverityPolicy, userRepo domain.UserRepository) *EscalationHandlers {
	return &EscalationHandlers{
		escalationSvc:  escalationSvc,
		severityPolicy: severityPolicy,
		userRepo:       userRepo,
	}
}

// TriggerRequest represents an escalation trigger request. Force skips
// the severity policy so callers that already decided can escalate
// unconditionally.
type TriggerRequest struct {
	SessionID      string `json:"session_id" binding:"required"`
	SeverityRating int    `json:"severity_rating" binding:"required"`
	Force          bool   `json:"force,omitempty"`
}

// Trigger handles POST /escalations
func (h *EscalationHandlers) Trigger(c *gin.Context) {
	var req TriggerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("user_id")
	user, err := h.userRepo.FindByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if !req.Force && !h.severityPolicy.ShouldEscalate(req.SeverityRating) {
		c.JSON(http.StatusOK, gin.H{
			"data": gin.H{
				"triggered": false,
				"message":   "severity below escalation threshold",
			},
		})
		return
	}

	result, err := h.escalationSvc.TriggerEscalation(
		c.Request.Context(),
		user.ID,
		user.Name,
		user.EmergencyContact.PhoneNumber,
		req.SessionID,
		req.SeverityRating,
	)
	if err != nil {
		// The call may have gone out, but the audit record is missing;
		// that distinction matters to operators, so surface it.
		data := gin.H{
			"triggered":         true,
			"process_completed": false,
		}
		if result != nil {
			data["call_succeeded"] = result.CallSucceeded
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Escalation attempted but audit write failed",
			"data":  data,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"triggered":         true,
			"process_completed": result.ProcessCompleted,
			"call_succeeded":    result.CallSucceeded,
			"message":           result.Message,
			"escalation_id":     result.EscalationID,
			"call_reference":    result.CallReference,
			"simulated":         result.Simulated,
		},
	})
}

// History handles GET /escalations, returning the caller's own records
func (h *EscalationHandlers) History(c *gin.Context) {
	userID := c.GetUint("user_id")

	attempts, err := h.escalationSvc.History(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load escalation history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"escalations": toHistoryResponse(attempts)}})
}

// AdminHistory handles GET /admin/escalations/:userId
func (h *EscalationHandlers) AdminHistory(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	attempts, err := h.escalationSvc.History(c.Request.Context(), uint(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load escalation history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"escalations": toHistoryResponse(attempts)}})
}

// EscalationResponse is the JSON shape of one audit record
type EscalationResponse struct {
	ID                uint   `json:"id"`
	UserID            uint   `json:"user_id"`
	SessionID         string `json:"session_id"`
	SeverityRating    int    `json:"severity_rating"`
	PhoneNumberCalled string `json:"phone_number_called"`
	UserName          string `json:"user_name"`
	Result            string `json:"result"`
	CallReference     string `json:"call_reference,omitempty"`
	ErrorMessage      string `json:"error_message,omitempty"`
	Simulated         bool   `json:"simulated"`
	CreatedAt         string `json:"created_at"`
}

func toHistoryResponse(attempts []domain.EscalationAttempt) []EscalationResponse {
	out := make([]EscalationResponse, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, EscalationResponse{
			ID:                a.ID,
			UserID:            a.UserID,
			SessionID:         a.SessionID,
			SeverityRating:    a.SeverityRating,
			PhoneNumberCalled: a.PhoneNumberCalled,
			UserName:          a.UserName,
			Result:            string(a.Result),
			CallReference:     a.CallReference,
			ErrorMessage:      a.ErrorMessage,
			Simulated:         a.Simulated,
			CreatedAt:         a.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}
