package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/you/escalationsvc/domain"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&DBUser{}, &DBEscalationAttempt{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func TestEscalationRepositoryImpl_Append(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEscalationRepository(db)

	attempt := &domain.EscalationAttempt{
		UserID:            1,
		SessionID:         "sess-1",
		SeverityRating:    5,
		PhoneNumberCalled: "+15551234567",
		UserName:          "Anne O'Brien",
		Result:            domain.OutcomeSuccess,
		CallReference:     "CA123",
		Simulated:         false,
	}

	id, err := repo.Append(context.Background(), attempt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == 0 {
		t.Error("expected a non-zero assigned identity")
	}
	if attempt.ID != id {
		t.Errorf("expected attempt.ID backfilled to %d, got %d", id, attempt.ID)
	}
	if attempt.CreatedAt.IsZero() {
		t.Error("expected createdAt set on append")
	}

	stored, err := repo.QueryByUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("expected 1 record, got %d", len(stored))
	}
	got := stored[0]
	if got.Result != domain.OutcomeSuccess || got.CallReference != "CA123" || got.UserName != "Anne O'Brien" {
		t.Errorf("record did not round-trip: %+v", got)
	}
}

func TestEscalationRepositoryImpl_Append_OutOfRangeSeverityAccepted(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEscalationRepository(db)

	// The 1-5 range is advisory; the store must not reject outliers.
	for _, severity := range []int{0, -3, 99} {
		attempt := &domain.EscalationAttempt{
			UserID:         2,
			SessionID:      "sess-1",
			SeverityRating: severity,
			Result:         domain.OutcomeFailed,
			ErrorMessage:   "provider rejected",
		}
		if _, err := repo.Append(context.Background(), attempt); err != nil {
			t.Errorf("append with severity %d failed: %v", severity, err)
		}
	}
}

func TestEscalationRepositoryImpl_QueryByUser_OrderedAscending(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEscalationRepository(db)

	base := time.Now().Add(-time.Hour)
	for i, offset := range []time.Duration{30 * time.Minute, 10 * time.Minute, 50 * time.Minute} {
		attempt := &domain.EscalationAttempt{
			UserID:         3,
			SessionID:      "sess-1",
			SeverityRating: 4 + i%2,
			Result:         domain.OutcomeSuccess,
			Simulated:      true,
			CreatedAt:      base.Add(offset),
		}
		if _, err := repo.Append(context.Background(), attempt); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	stored, err := repo.QueryByUser(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stored) != 3 {
		t.Fatalf("expected 3 records, got %d", len(stored))
	}
	for i := 1; i < len(stored); i++ {
		if stored[i].CreatedAt.Before(stored[i-1].CreatedAt) {
			t.Errorf("records not ordered by createdAt ascending: %v before %v", stored[i-1].CreatedAt, stored[i].CreatedAt)
		}
	}
}

func TestEscalationRepositoryImpl_QueryByUser_IsolatesUsers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEscalationRepository(db)

	for _, userID := range []uint{4, 4, 5} {
		attempt := &domain.EscalationAttempt{
			UserID:    userID,
			SessionID: "sess-1",
			Result:    domain.OutcomeSuccess,
			Simulated: true,
		}
		if _, err := repo.Append(context.Background(), attempt); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	stored, err := repo.QueryByUser(context.Background(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stored) != 2 {
		t.Errorf("expected 2 records for user 4, got %d", len(stored))
	}
}

func TestEscalationRepositoryImpl_Append_StoreErrorCategory(t *testing.T) {
	db := setupTestDB(t)

	// Close the underlying connection so the append fails.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sqlDB.Close()

	repo := NewEscalationRepository(db)
	_, err = repo.Append(context.Background(), &domain.EscalationAttempt{UserID: 1, Result: domain.OutcomeSuccess})
	if err == nil {
		t.Fatal("expected an error after closing the database")
	}
	if !errors.Is(err, domain.ErrAuditStore) {
		t.Errorf("expected ErrAuditStore category, got %v", err)
	}
}
