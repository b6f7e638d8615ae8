package model

import "gorm.io/gorm"

// Staff roles that participate in duty accounting. Customers and other
// account types are excluded from the staff log entirely.
const (
	RoleAdmin    = "Admin"
	RoleCashier  = "Cashier"
	RoleRider    = "Rider"
	RoleMechanic = "Mechanic"
)

var AccountedRoles = []string{RoleAdmin, RoleCashier, RoleRider, RoleMechanic}

func IsAccountedRole(role string) bool {
	for _, r := range AccountedRoles {
		if r == role {
			return true
		}
	}
	return false
}

// CJUser holds in-house accounts (Admin and Cashier share this table)
type CJUser struct {
	gorm.Model
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email" gorm:"unique;not null"`
	Password     string `json:"-"`
	Role         string `json:"role"` // Admin / Cashier
	ProfileImage string `json:"profile_image"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
}

func (CJUser) TableName() string { return "cjusers" }

type Rider struct {
	gorm.Model
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email" gorm:"unique;not null"`
	Password    string `json:"-"`
	PhoneNumber string `json:"phone_number"`
	HomeAddress string `json:"home_address"`
	PlateNumber string `json:"plate_number"`
	MotorType   string `json:"motor_type"`
	ImagePath   string `json:"image_path"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
}

type Mechanic struct {
	gorm.Model
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email" gorm:"unique;not null"`
	Password       string `json:"-"`
	PhoneNumber    string `json:"phone_number"`
	HomeAddress    string `json:"home_address"`
	PlateNumber    string `json:"plate_number"`
	MotorType      string `json:"motor_type"`
	Specialization string `json:"specialization"`
	ImagePath      string `json:"image_path"`
	IsActive       bool   `json:"is_active" gorm:"default:true"`
}
