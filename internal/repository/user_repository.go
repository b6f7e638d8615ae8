package repository

import (
	"time"

	"gorm.io/gorm"

	"cjpowerhouse-backend/internal/model"
)

type UserRepository interface {
	FindByEmail(email string) (*model.User, error)
	StartSession(session *model.UserSession) error
	TouchLastLogin(userID uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// StartSession deactivates any previous active sessions for the user before
// inserting the new one, so at most one session is live per customer.
func (r *userRepository) StartSession(session *model.UserSession) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.UserSession{}).
			Where("user_id = ? AND is_active = ?", session.UserID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(session).Error
	})
}

func (r *userRepository) TouchLastLogin(userID uint) error {
	now := time.Now()
	return r.db.Model(&model.User{}).Where("id = ?", userID).
		Update("last_login_at", &now).Error
}
