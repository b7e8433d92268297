package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret   string
	ODKEndpoint string
	ODKEmail    string
	ODKPassword string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running in Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	ODKEndpoint = GetEnv("ODK_ENDPOINT")
	ODKEmail = GetEnv("ODK_EMAIL")
	ODKPassword = GetEnv("ODK_PASSWORD")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	}
	if ODKEndpoint == "" {
		log.Println("❌ ODK_ENDPOINT is not set — survey sync will be disabled")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
