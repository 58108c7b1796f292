package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/you/escalationsvc/domain"
)

// EscalationRepositoryImpl implements domain.EscalationRepository using
// GORM. The table is append-only: no update or delete is exposed, and
// records are written exactly once with their final result.
type EscalationRepositoryImpl struct {
	db *gorm.DB
}

// DBEscalationAttempt represents the database model for EscalationAttempt
type DBEscalationAttempt struct {
	ID                uint      `gorm:"primaryKey"`
	UserID            uint      `gorm:"index"`
	SessionID         string    `gorm:"index;size:64"`
	SeverityRating    int
	PhoneNumberCalled string    `gorm:"size:32"`
	UserName          string    `gorm:"size:255"`
	Result            string    `gorm:"index;size:16"`
	CallReference     string    `gorm:"size:64"`
	ErrorMessage      string    `gorm:"size:1024"`
	Simulated         bool
	CreatedAt         time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBEscalationAttempt) TableName() string {
	return "escalation_attempts"
}

// NewEscalationRepository creates a new escalation repository
func NewEscalationRepository(db *gorm.DB) domain.EscalationRepository {
	return &EscalationRepositoryImpl{db: db}
}

// Append implements domain.EscalationRepository
func (r *EscalationRepositoryImpl) Append(ctx context.Context, attempt *domain.EscalationAttempt) (uint, error) {
	dbAttempt := r.domainToDB(attempt)
	if dbAttempt.CreatedAt.IsZero() {
		dbAttempt.CreatedAt = time.Now()
	}
	if err := r.db.WithContext(ctx).Create(dbAttempt).Error; err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrAuditStore, err)
	}
	attempt.ID = dbAttempt.ID
	attempt.CreatedAt = dbAttempt.CreatedAt
	return dbAttempt.ID, nil
}

// QueryByUser implements domain.EscalationRepository, ordered by
// creation time ascending.
func (r *EscalationRepositoryImpl) QueryByUser(ctx context.Context, userID uint) ([]domain.EscalationAttempt, error) {
	var dbAttempts []DBEscalationAttempt
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&dbAttempts).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAuditStore, err)
	}

	attempts := make([]domain.EscalationAttempt, 0, len(dbAttempts))
	for i := range dbAttempts {
		attempts = append(attempts, *r.dbToDomain(&dbAttempts[i]))
	}
	return attempts, nil
}

// domainToDB converts domain attempt to database attempt
func (r *EscalationRepositoryImpl) domainToDB(attempt *domain.EscalationAttempt) *DBEscalationAttempt {
	return &DBEscalationAttempt{
		ID:                attempt.ID,
		UserID:            attempt.UserID,
		SessionID:         attempt.SessionID,
		SeverityRating:    attempt.SeverityRating,
		PhoneNumberCalled: attempt.PhoneNumberCalled,
		UserName:          attempt.UserName,
		Result:            string(attempt.Result),
		CallReference:     attempt.CallReference,
		ErrorMessage:      attempt.ErrorMessage,
		Simulated:         attempt.Simulated,
		CreatedAt:         attempt.CreatedAt,
	}
}

// dbToDomain converts database attempt to domain attempt
func (r *EscalationRepositoryImpl) dbToDomain(dbAttempt *DBEscalationAttempt) *domain.EscalationAttempt {
	return &domain.EscalationAttempt{
		ID:                dbAttempt.ID,
		UserID:            dbAttempt.UserID,
		SessionID:         dbAttempt.SessionID,
		SeverityRating:    dbAttempt.SeverityRating,
		PhoneNumberCalled: dbAttempt.PhoneNumberCalled,
		UserName:          dbAttempt.UserName,
		Result:            domain.EscalationOutcome(dbAttempt.Result),
		CallReference:     dbAttempt.CallReference,
		ErrorMessage:      dbAttempt.ErrorMessage,
		Simulated:         dbAttempt.Simulated,
		CreatedAt:         dbAttempt.CreatedAt,
	}
}
