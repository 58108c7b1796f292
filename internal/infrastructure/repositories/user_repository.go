package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/you/escalationsvc/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags). The
// emergency contact is embedded in the users table since every user has
// exactly one.
type DBUser struct {
	ID                  uint           `gorm:"primaryKey"`
	Name                string         `gorm:"size:100"`
	Email               string         `gorm:"uniqueIndex;size:255"`
	PasswordHash        string         `gorm:"column:password"`
	Role                string         `gorm:"index;size:64"`
	ContactName         string         `gorm:"size:100"`
	ContactRelationship string         `gorm:"size:64"`
	ContactPhoneNumber  string         `gorm:"size:32"`
	CreatedAt           time.Time      `gorm:"index"`
	UpdatedAt           time.Time      `gorm:"index"`
	DeletedAt           gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return err
	}
	user.ID = dbUser.ID
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// UpdateEmergencyContact implements domain.UserRepository
func (r *UserRepositoryImpl) UpdateEmergencyContact(ctx context.Context, userID uint, contact domain.EmergencyContact) error {
	result := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"contact_name":         contact.Name,
		"contact_relationship": contact.Relationship,
		"contact_phone_number": contact.PhoneNumber,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:                  user.ID,
		Name:                user.Name,
		Email:               user.Email,
		PasswordHash:        user.PasswordHash,
		Role:                user.Role,
		ContactName:         user.EmergencyContact.Name,
		ContactRelationship: user.EmergencyContact.Relationship,
		ContactPhoneNumber:  user.EmergencyContact.PhoneNumber,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:           dbUser.ID,
		Name:         dbUser.Name,
		Email:        dbUser.Email,
		PasswordHash: dbUser.PasswordHash,
		Role:         dbUser.Role,
		EmergencyContact: domain.EmergencyContact{
			Name:         dbUser.ContactName,
			Relationship: dbUser.ContactRelationship,
			PhoneNumber:  dbUser.ContactPhoneNumber,
		},
		CreatedAt: dbUser.CreatedAt,
		UpdatedAt: dbUser.UpdatedAt,
	}
}
