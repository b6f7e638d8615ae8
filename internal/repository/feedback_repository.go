package repository

import (
	"errors"

	"gorm.io/gorm"

	"cjpowerhouse-backend/internal/model"
)

type FeedbackRepository interface {
	GetReaction(feedbackID, userID uint) (*model.FeedbackReaction, error)
	AddReaction(feedbackID, userID uint, reactionType string) error
	UpdateReaction(feedbackID, userID uint, reactionType string) error
	RemoveReaction(feedbackID, userID uint) error
	ReactionCounts(feedbackID uint) (map[string]int64, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db}
}

func (r *feedbackRepository) GetReaction(feedbackID, userID uint) (*model.FeedbackReaction, error) {
	var reaction model.FeedbackReaction
	err := r.db.Where("feedback_id = ? AND user_id = ?", feedbackID, userID).First(&reaction).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reaction, nil
}

func (r *feedbackRepository) AddReaction(feedbackID, userID uint, reactionType string) error {
	return r.db.Create(&model.FeedbackReaction{
		FeedbackID:   feedbackID,
		UserID:       userID,
		ReactionType: reactionType,
	}).Error
}

func (r *feedbackRepository) UpdateReaction(feedbackID, userID uint, reactionType string) error {
	return r.db.Model(&model.FeedbackReaction{}).
		Where("feedback_id = ? AND user_id = ?", feedbackID, userID).
		Update("reaction_type", reactionType).Error
}

func (r *feedbackRepository) RemoveReaction(feedbackID, userID uint) error {
	return r.db.Where("feedback_id = ? AND user_id = ?", feedbackID, userID).
		Delete(&model.FeedbackReaction{}).Error
}

func (r *feedbackRepository) ReactionCounts(feedbackID uint) (map[string]int64, error) {
	var rows []struct {
		ReactionType string
		Cnt          int64
	}
	err := r.db.Model(&model.FeedbackReaction{}).
		Select("reaction_type, COUNT(*) AS cnt").
		Where("feedback_id = ?", feedbackID).
		Group("reaction_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.ReactionType] = row.Cnt
	}
	return counts, nil
}
