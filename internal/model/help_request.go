package model

import (
	"time"

	"gorm.io/gorm"
)

// Help request statuses
const (
	HelpStatusPending    = "Pending"
	HelpStatusInProgress = "In Progress"
	HelpStatusCompleted  = "Completed"
	HelpStatusDeclined   = "Declined"
)

// HelpRequest is a roadside rescue request filed by a customer.
type HelpRequest struct {
	gorm.Model
	UserID              uint       `json:"user_id" gorm:"not null;index"`
	MechanicID          *uint      `json:"mechanic_id"`
	BreakdownBarangayID *uint      `json:"breakdown_barangay_id"`
	BikeUnit            string     `json:"bike_unit"`
	ProblemDescription  string     `json:"problem_description" gorm:"type:text"`
	Location            string     `json:"location"`
	Status              string     `json:"status" gorm:"size:20;index;default:'Pending'"`
	DeclineReason       string     `json:"decline_reason"`
	DeclineReasonText   string     `json:"decline_reason_text"`
	DeclinedAt          *time.Time `json:"declined_at"`

	Mechanic *Mechanic `gorm:"foreignKey:MechanicID" json:"mechanic,omitempty"`
	Barangay *Barangay `gorm:"foreignKey:BreakdownBarangayID" json:"barangay,omitempty"`
}

type Notification struct {
	gorm.Model
	UserID  uint   `json:"user_id" gorm:"not null;index"`
	Type    string `json:"type" gorm:"size:30"`
	Title   string `json:"title"`
	Message string `json:"message" gorm:"type:text"`
	IsRead  bool   `json:"is_read" gorm:"default:false;index"`
}

// RescueStats is the admin notification badge payload.
type RescueStats struct {
	Pending        int64 `json:"pending"`
	InProgress     int64 `json:"in_progress"`
	Today          int64 `json:"today"`
	CompletedToday int64 `json:"completed_today"`
}
