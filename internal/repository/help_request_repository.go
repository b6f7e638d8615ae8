package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"cjpowerhouse-backend/internal/model"
)

type HelpRequestRepository interface {
	LatestByUser(userID uint) (*model.HelpRequest, error)
	Stats() (model.RescueStats, error)
	Dispatch(requestID, mechanicID uint) (*model.HelpRequest, error)
	UnreadCount(userID uint) (int64, error)
	Unread(userID uint, limit int) ([]model.Notification, error)
	MarkRead(userID uint) error
}

type helpRequestRepository struct {
	db *gorm.DB
}

func NewHelpRequestRepository(db *gorm.DB) HelpRequestRepository {
	return &helpRequestRepository{db}
}

func (r *helpRequestRepository) LatestByUser(userID uint) (*model.HelpRequest, error) {
	var req model.HelpRequest
	err := r.db.Preload("Mechanic").Preload("Barangay").
		Where("user_id = ?", userID).
		Order("created_at DESC").First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *helpRequestRepository) Stats() (model.RescueStats, error) {
	var stats model.RescueStats
	today := time.Now().Format("2006-01-02")

	if err := r.db.Model(&model.HelpRequest{}).
		Where("status = ?", model.HelpStatusPending).Count(&stats.Pending).Error; err != nil {
		return stats, err
	}
	if err := r.db.Model(&model.HelpRequest{}).
		Where("status = ?", model.HelpStatusInProgress).Count(&stats.InProgress).Error; err != nil {
		return stats, err
	}
	if err := r.db.Model(&model.HelpRequest{}).
		Where("DATE(created_at) = ?", today).Count(&stats.Today).Error; err != nil {
		return stats, err
	}
	err := r.db.Model(&model.HelpRequest{}).
		Where("status = ? AND DATE(updated_at) = ?", model.HelpStatusCompleted, today).
		Count(&stats.CompletedToday).Error
	return stats, err
}

// Dispatch assigns a mechanic and moves the request to In Progress.
func (r *helpRequestRepository) Dispatch(requestID, mechanicID uint) (*model.HelpRequest, error) {
	res := r.db.Model(&model.HelpRequest{}).
		Where("id = ? AND status = ?", requestID, model.HelpStatusPending).
		Updates(map[string]interface{}{
			"mechanic_id": mechanicID,
			"status":      model.HelpStatusInProgress,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var req model.HelpRequest
	if err := r.db.Preload("Mechanic").Preload("Barangay").First(&req, requestID).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *helpRequestRepository) UnreadCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).Count(&count).Error
	return count, err
}

func (r *helpRequestRepository) Unread(userID uint, limit int) ([]model.Notification, error) {
	var list []model.Notification
	err := r.db.Where("user_id = ? AND is_read = ?", userID, false).
		Order("created_at DESC").Limit(limit).Find(&list).Error
	return list, err
}

func (r *helpRequestRepository) MarkRead(userID uint) error {
	return r.db.Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}
