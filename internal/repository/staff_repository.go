package repository

import (
	"errors"

	"gorm.io/gorm"

	"cjpowerhouse-backend/internal/model"
)

var ErrUnknownRole = errors.New("unknown staff role")

// StaffCredentials is what the auth flow needs from a directory row,
// whichever of the three staff tables it came from.
type StaffCredentials struct {
	ID        uint
	Role      string
	FirstName string
	LastName  string
	Password  string
	IsActive  bool
}

// StaffRepository resolves staff members against the three directory tables:
// cjusers (Admin/Cashier), riders, mechanics.
type StaffRepository interface {
	FindByEmail(email string) (*StaffCredentials, error)
	FindByID(staffID uint, role string) (*StaffCredentials, error)
	SetActive(staffID uint, staffType string, active bool) (bool, error)
}

type staffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{db}
}

// FindByEmail checks cjusers first (its role column decides Admin vs
// Cashier), then riders, then mechanics.
func (r *staffRepository) FindByEmail(email string) (*StaffCredentials, error) {
	var cj model.CJUser
	if err := r.db.Where("email = ?", email).First(&cj).Error; err == nil {
		return &StaffCredentials{
			ID: cj.ID, Role: cj.Role,
			FirstName: cj.FirstName, LastName: cj.LastName,
			Password: cj.Password, IsActive: cj.IsActive,
		}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var rd model.Rider
	if err := r.db.Where("email = ?", email).First(&rd).Error; err == nil {
		return &StaffCredentials{
			ID: rd.ID, Role: model.RoleRider,
			FirstName: rd.FirstName, LastName: rd.LastName,
			Password: rd.Password, IsActive: rd.IsActive,
		}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var mc model.Mechanic
	if err := r.db.Where("email = ?", email).First(&mc).Error; err != nil {
		return nil, err
	}
	return &StaffCredentials{
		ID: mc.ID, Role: model.RoleMechanic,
		FirstName: mc.FirstName, LastName: mc.LastName,
		Password: mc.Password, IsActive: mc.IsActive,
	}, nil
}

func (r *staffRepository) FindByID(staffID uint, role string) (*StaffCredentials, error) {
	switch role {
	case model.RoleAdmin, model.RoleCashier:
		var cj model.CJUser
		if err := r.db.First(&cj, staffID).Error; err != nil {
			return nil, err
		}
		return &StaffCredentials{
			ID: cj.ID, Role: cj.Role,
			FirstName: cj.FirstName, LastName: cj.LastName,
			Password: cj.Password, IsActive: cj.IsActive,
		}, nil
	case model.RoleRider:
		var rd model.Rider
		if err := r.db.First(&rd, staffID).Error; err != nil {
			return nil, err
		}
		return &StaffCredentials{
			ID: rd.ID, Role: model.RoleRider,
			FirstName: rd.FirstName, LastName: rd.LastName,
			Password: rd.Password, IsActive: rd.IsActive,
		}, nil
	case model.RoleMechanic:
		var mc model.Mechanic
		if err := r.db.First(&mc, staffID).Error; err != nil {
			return nil, err
		}
		return &StaffCredentials{
			ID: mc.ID, Role: model.RoleMechanic,
			FirstName: mc.FirstName, LastName: mc.LastName,
			Password: mc.Password, IsActive: mc.IsActive,
		}, nil
	}
	return nil, ErrUnknownRole
}

// SetActive flips the is_active flag on the table the staff type maps to.
// Returns false when no row changed.
func (r *staffRepository) SetActive(staffID uint, staffType string, active bool) (bool, error) {
	var res *gorm.DB
	switch staffType {
	case "cashier":
		res = r.db.Model(&model.CJUser{}).Where("id = ?", staffID).Update("is_active", active)
	case "rider":
		res = r.db.Model(&model.Rider{}).Where("id = ?", staffID).Update("is_active", active)
	case "mechanic":
		res = r.db.Model(&model.Mechanic{}).Where("id = ?", staffID).Update("is_active", active)
	default:
		return false, ErrUnknownRole
	}
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
