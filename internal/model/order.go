package model

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	ProductName string  `json:"product_name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ImagePath   string  `json:"image_path"`
}

// Order statuses as stored by the shop front
// Pending -> Ready to Ship -> On-Ship -> Completed (or Cancelled)
type Order struct {
	gorm.Model
	UserID                  uint      `json:"user_id" gorm:"not null;index"`
	OrderDate               time.Time `json:"order_date"`
	OrderStatus             string    `json:"order_status" gorm:"size:30;index"`
	PaymentMethod           string    `json:"payment_method" gorm:"size:20"` // COD / GCash
	DeliveryMethod          string    `json:"delivery_method" gorm:"size:20"`
	TotalPrice              float64   `json:"total_price"`
	DeliveryFee             float64   `json:"delivery_fee"`
	TotalAmountWithDelivery float64   `json:"total_amount_with_delivery"`
	HomeDescription         string    `json:"home_description"`
	RiderName               string    `json:"rider_name"`
	RiderContact            string    `json:"rider_contact"`
	RiderMotorType          string    `json:"rider_motor_type"`
	RiderPlateNumber        string    `json:"rider_plate_number"`
	Reason                  string    `json:"reason"`

	User  User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

type OrderItem struct {
	gorm.Model
	OrderID   uint    `json:"order_id" gorm:"not null;index"`
	ProductID uint    `json:"product_id" gorm:"not null"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`

	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

type Transaction struct {
	gorm.Model
	OrderID                  uint       `json:"order_id" gorm:"not null;uniqueIndex"`
	TransactionNumber        string     `json:"transaction_number" gorm:"size:40;unique;not null"`
	CompletedDateTransaction *time.Time `json:"completed_date_transaction"`

	Order Order `gorm:"foreignKey:OrderID" json:"order,omitempty"`
}
