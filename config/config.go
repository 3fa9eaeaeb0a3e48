package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBPath    string
	JWTSecret []byte
	JWTTTL    time.Duration

	// BaseURL is the public origin encoded into table QR links
	BaseURL string

	RestaurantName string
	RestaurantSlug string

	AdminEmail    string
	AdminPassword string
}

// Load reads configuration from a .env file (if present) and the
// environment, with defaults for everything except the admin seed.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		DBPath:         getEnv("DB_PATH", "dinein.db"),
		JWTSecret:      []byte(getEnv("JWT_SECRET", "dinein_dev_secret_change_me")),
		JWTTTL:         24 * time.Hour,
		BaseURL:        getEnv("BASE_URL", "http://localhost:8080"),
		RestaurantName: getEnv("RESTAURANT_NAME", "Demo Bistro"),
		RestaurantSlug: getEnv("RESTAURANT_SLUG", "demo-bistro"),
		AdminEmail:     os.Getenv("ADMIN_EMAIL"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
