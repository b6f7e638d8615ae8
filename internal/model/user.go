package model

import (
	"time"

	"gorm.io/gorm"
)

// User is a customer account. Customers never appear in staff_logs.
type User struct {
	gorm.Model
	FirstName   string     `json:"first_name"`
	MiddleName  string     `json:"middle_name"`
	LastName    string     `json:"last_name"`
	Email       string     `json:"email" gorm:"unique;not null"`
	Password    string     `json:"-"`
	PhoneNumber string     `json:"phone_number"`
	BarangayID  *uint      `json:"barangay_id"`
	Purok       string     `json:"purok"`
	ImagePath   string     `json:"image_path"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

// UserSession tracks customer logins; at most one active session per user.
type UserSession struct {
	gorm.Model
	UserID       uint      `json:"user_id" gorm:"not null;index"`
	SessionID    string    `json:"session_id" gorm:"size:64;unique;not null"`
	IPAddress    string    `json:"ip_address"`
	UserAgent    string    `json:"user_agent"`
	LoginTime    time.Time `json:"login_time"`
	LastActivity time.Time `json:"last_activity"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
}

type Barangay struct {
	gorm.Model
	BarangayName string `json:"barangay_name" gorm:"not null"`
}
