package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort       string
	FirestoreProject string
	Environment      string
	JWTSecret        string
	JWTExpiry        int64
	BcryptCost       int
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		FirestoreProject: getEnv("FIRESTORE_PROJECT_ID", ""),
		Environment:      getEnv("ENVIRONMENT", "development"),
		// Fallback secret is a development default only; production
		// deployments must set JWT_SECRET.
		JWTSecret:  getEnv("JWT_SECRET", "vidyashare_secret_key_2024"),
		JWTExpiry:  getEnvAsInt64("JWT_EXPIRY", 7*24*60*60), // 7 days
		BcryptCost: int(getEnvAsInt64("BCRYPT_COST", 10)),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
