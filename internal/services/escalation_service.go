package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/you/escalationsvc/domain"
	"github.com/you/escalationsvc/internal/obs"
)

// auditWriteTimeout bounds the detached audit append after the gateway
// outcome is known.
const auditWriteTimeout = 5 * time.Second

// EscalationConfig holds the orchestrator's immutable settings.
// MaxCallAttempts is a seam for future retry hardening; only a single
// gateway attempt is made per invocation.
type EscalationConfig struct {
	FromNumber      string
	CallTimeout     time.Duration
	MaxCallAttempts int
}

// EscalationServiceImpl implements domain.EscalationService. It is
// stateless aside from immutable configuration: concurrent invocations
// are independent and each produces exactly one audit record, with no
// cross-invocation deduplication.
type EscalationServiceImpl struct {
	selector    domain.CallGatewaySelector
	builder     *VoiceMessageBuilder
	escalations domain.EscalationRepository
	config      EscalationConfig
}

// NewEscalationService creates a new escalation orchestrator.
func NewEscalationService(selector domain.CallGatewaySelector, builder *VoiceMessageBuilder, escalations domain.EscalationRepository, config EscalationConfig) domain.EscalationService {
	if config.CallTimeout <= 0 {
		config.CallTimeout = 10 * time.Second
	}
	if config.MaxCallAttempts <= 0 {
		config.MaxCallAttempts = 1
	}
	return &EscalationServiceImpl{
		selector:    selector,
		builder:     builder,
		escalations: escalations,
		config:      config,
	}
}

// TriggerEscalation implements domain.EscalationService. A gateway
// failure is a normal outcome recorded in the audit trail, never an
// error to the caller; only an audit-write failure returns a non-nil
// error, since an unrecorded real call is the worse operational
// outcome.
func (s *EscalationServiceImpl) TriggerEscalation(ctx context.Context, userID uint, userName, emergencyPhone, sessionID string, severityRating int) (*domain.EscalationResult, error) {
	attempt := &domain.EscalationAttempt{
		UserID:            userID,
		SessionID:         sessionID,
		SeverityRating:    severityRating,
		PhoneNumberCalled: emergencyPhone,
		UserName:          userName,
		Result:            domain.OutcomePending,
		CreatedAt:         time.Now(),
	}

	gateway := s.selector.Select()
	voiceURL := s.builder.BuildVoiceURL(userName, severityRating)

	callCtx, cancel := context.WithTimeout(ctx, s.config.CallTimeout)
	start := time.Now()
	handle, callErr := gateway.PlaceCall(callCtx, emergencyPhone, s.config.FromNumber, voiceURL)
	elapsed := time.Since(start)
	cancel()

	if callErr != nil {
		attempt.Result = domain.OutcomeFailed
		attempt.ErrorMessage = callErr.Error()
		log.Printf("[ESCALATION] call to %s failed: %v", emergencyPhone, callErr)
	} else {
		attempt.Result = domain.OutcomeSuccess
		attempt.CallReference = handle.Reference
		attempt.Simulated = handle.Simulated
		if !handle.Simulated {
			log.Printf("[ESCALATION] emergency call placed to %s for user %s", emergencyPhone, userName)
		}
	}

	obs.ObserveEscalation(string(attempt.Result), attempt.Simulated, elapsed)

	// The audit write runs on a cancellation-detached context: once the
	// gateway outcome is known, caller cancellation must not suppress
	// the record. Every invocation yields exactly one record.
	auditCtx, cancelAudit := context.WithTimeout(context.WithoutCancel(ctx), auditWriteTimeout)
	defer cancelAudit()

	escalationID, appendErr := s.escalations.Append(auditCtx, attempt)
	if appendErr != nil {
		log.Printf("[ESCALATION] audit write failed for user %d session %s: %v", userID, sessionID, appendErr)
		return &domain.EscalationResult{
			ProcessCompleted: false,
			CallSucceeded:    attempt.Result == domain.OutcomeSuccess,
			Message:          "escalation attempted but audit write failed",
			CallReference:    attempt.CallReference,
			Simulated:        attempt.Simulated,
		}, fmt.Errorf("escalation audit write: %w", appendErr)
	}

	result := &domain.EscalationResult{
		ProcessCompleted: true,
		CallSucceeded:    attempt.Result == domain.OutcomeSuccess,
		EscalationID:     escalationID,
		CallReference:    attempt.CallReference,
		Simulated:        attempt.Simulated,
	}
	if result.CallSucceeded {
		result.Message = "emergency escalation triggered"
	} else {
		result.Message = "emergency call failed, failure recorded"
	}
	return result, nil
}

// History implements domain.EscalationService
func (s *EscalationServiceImpl) History(ctx context.Context, userID uint) ([]domain.EscalationAttempt, error) {
	return s.escalations.QueryByUser(ctx, userID)
}
