package config

import (
	"os"
	"strconv"
)

// Helper to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// JWTSecret is shared by the auth handler (signing) and middleware (parsing)
func JWTSecret() []byte {
	return []byte(GetEnv("JWT_SECRET", "cj-powerhouse-dev-secret"))
}
