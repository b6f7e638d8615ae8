package database

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"cjpowerhouse-backend/internal/model"
)

// SeedAll fills an empty database with enough data to exercise the API:
// one account per staff role, a couple of customers with orders, and the
// barangays the shop delivers to. Safe to run repeatedly.
func SeedAll(db *gorm.DB) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	password := string(hashed)

	// 1. Staff accounts. Admin and Cashier live in cjusers, riders and
	// mechanics in their own tables.
	admin := model.CJUser{
		FirstName: "Carlos",
		LastName:  "Jimenez",
		Email:     "admin@cjpowerhouse.com",
		Password:  password,
		Role:      model.RoleAdmin,
		IsActive:  true,
	}
	db.FirstOrCreate(&admin, model.CJUser{Email: admin.Email})

	cashier := model.CJUser{
		FirstName: "Maria",
		LastName:  "Santos",
		Email:     "cashier@cjpowerhouse.com",
		Password:  password,
		Role:      model.RoleCashier,
		IsActive:  true,
	}
	db.FirstOrCreate(&cashier, model.CJUser{Email: cashier.Email})

	rider := model.Rider{
		FirstName:   "Jun",
		LastName:    "Dela Cruz",
		Email:       "rider@cjpowerhouse.com",
		Password:    password,
		PhoneNumber: "09171234567",
		PlateNumber: "ABC-1234",
		MotorType:   "Honda Click 125i",
		IsActive:    true,
	}
	db.FirstOrCreate(&rider, model.Rider{Email: rider.Email})

	mechanic := model.Mechanic{
		FirstName:      "Ramon",
		LastName:       "Reyes",
		Email:          "mechanic@cjpowerhouse.com",
		Password:       password,
		PhoneNumber:    "09187654321",
		PlateNumber:    "XYZ-5678",
		MotorType:      "Yamaha Sniper 155",
		Specialization: "Engine overhaul",
		IsActive:       true,
	}
	db.FirstOrCreate(&mechanic, model.Mechanic{Email: mechanic.Email})

	// 2. Delivery areas
	barangays := []string{"Poblacion", "San Isidro", "Bagong Silang", "Malanday"}
	for _, name := range barangays {
		b := model.Barangay{BarangayName: name}
		db.FirstOrCreate(&b, model.Barangay{BarangayName: name})
	}

	// 3. A customer with a completed order so sales reports have rows
	var barangay model.Barangay
	db.First(&barangay)
	customer := model.User{
		FirstName:   "Pedro",
		LastName:    "Penduko",
		Email:       "customer@example.com",
		Password:    password,
		PhoneNumber: "09190001122",
		BarangayID:  &barangay.ID,
		Purok:       "Purok 3",
	}
	db.FirstOrCreate(&customer, model.User{Email: customer.Email})

	products := []model.Product{
		{ProductName: "Motor Oil 1L", Category: "Lubricants", Price: 320, Stock: 50},
		{ProductName: "Brake Pads", Category: "Brakes", Price: 450, Stock: 30},
		{ProductName: "Chain Set", Category: "Drivetrain", Price: 1250, Stock: 12},
		{ProductName: "Spark Plug", Category: "Engine", Price: 180, Stock: 100},
	}
	for i := range products {
		db.FirstOrCreate(&products[i], model.Product{ProductName: products[i].ProductName})
	}

	var existing int64
	db.Model(&model.Order{}).Count(&existing)
	if existing > 0 {
		log.Println("orders already present, skipping demo order")
		return
	}

	now := time.Now()
	order := model.Order{
		UserID:                  customer.ID,
		OrderDate:               now.AddDate(0, 0, -2),
		OrderStatus:             "Completed",
		PaymentMethod:           "COD",
		DeliveryMethod:          "Delivery",
		TotalPrice:              820,
		DeliveryFee:             50,
		TotalAmountWithDelivery: 870,
		RiderName:               rider.FirstName + " " + rider.LastName,
		RiderContact:            rider.PhoneNumber,
		RiderMotorType:          rider.MotorType,
		RiderPlateNumber:        rider.PlateNumber,
	}
	if err := db.Create(&order).Error; err != nil {
		log.Printf("seed order failed: %v", err)
		return
	}

	items := []model.OrderItem{
		{OrderID: order.ID, ProductID: products[0].ID, Quantity: 1, Price: products[0].Price},
		{OrderID: order.ID, ProductID: products[1].ID, Quantity: 1, Price: products[1].Price},
	}
	db.Create(&items)

	completed := now.AddDate(0, 0, -1)
	tx := model.Transaction{
		OrderID:                  order.ID,
		TransactionNumber:        "TXN-" + completed.Format("20060102") + "-0001",
		CompletedDateTransaction: &completed,
	}
	db.FirstOrCreate(&tx, model.Transaction{OrderID: order.ID})

	log.Println("seeding complete")
}
