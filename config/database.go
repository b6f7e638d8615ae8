package config

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"cjpowerhouse-backend/internal/model"
)

var DB *gorm.DB

func ConnectDB() {
	// timeout=5s covers connect; read/write timeouts bound slow queries at 30s
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=5s&readTimeout=30s&writeTimeout=30s",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASS", ""),
		GetEnv("DB_HOST", "127.0.0.1"),
		GetEnv("DB_PORT", "3306"),
		GetEnv("DB_NAME", "cjpowerhouse"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect to database: " + err.Error())
	}

	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.SetMaxOpenConns(GetEnvAsInt("DB_MAX_OPEN_CONNS", 25))
		sqlDB.SetMaxIdleConns(GetEnvAsInt("DB_MAX_IDLE_CONNS", 5))
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	// Auto migration keeps the schema in sync with the model structs
	db.AutoMigrate(
		&model.CJUser{},
		&model.Rider{},
		&model.Mechanic{},
		&model.StaffLog{},
		&model.User{},
		&model.UserSession{},
		&model.Barangay{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.Transaction{},
		&model.Feedback{},
		&model.FeedbackReaction{},
		&model.HelpRequest{},
		&model.Notification{},
	)

	DB = db
}
