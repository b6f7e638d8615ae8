package model

import "gorm.io/gorm"

type Feedback struct {
	gorm.Model
	UserID  uint   `json:"user_id" gorm:"not null;index"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment" gorm:"type:text"`

	Reactions []FeedbackReaction `gorm:"foreignKey:FeedbackID" json:"reactions,omitempty"`
}

// ValidReactions are the reaction types a customer can leave on feedback.
var ValidReactions = []string{"like", "love", "care", "haha", "wow", "sad", "angry"}

func IsValidReaction(r string) bool {
	for _, v := range ValidReactions {
		if v == r {
			return true
		}
	}
	return false
}

// FeedbackReaction: one reaction per (feedback, user); reacting again with
// the same type removes it, a different type replaces it.
type FeedbackReaction struct {
	gorm.Model
	FeedbackID   uint   `json:"feedback_id" gorm:"not null;uniqueIndex:idx_feedback_user"`
	UserID       uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_feedback_user"`
	ReactionType string `json:"reaction_type" gorm:"size:10;not null"`
}
