package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	AppEnv                 string
	AppPort                string
	AllowedOrigins         string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBMaxIdleConns         int
	DBMaxOpenConns         int
	JWTSecret              string
	JWTExpirationMinutes   int
	RefreshTokenSecret     string
	RefreshExpirationHours int
	SeedDB                 bool
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("%s not set, defaulting to %s", key, defaultValue)
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Invalid integer value for %s, defaulting to %d", key, defaultValue)
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
		log.Printf("Invalid boolean value for %s, defaulting to %v", key, defaultValue)
	}
	return defaultValue
}

func Load() Config {
	log.Println("Loading configuration...")

	return Config{
		AppEnv:                 getEnv("APP_ENV", "development"),
		AppPort:                getEnv("APP_PORT", "8080"),
		AllowedOrigins:         getEnv("ALLOWED_ORIGINS", "*"),
		DBHost:                 getEnv("DB_HOST", "localhost"),
		DBPort:                 getEnv("DB_PORT", "5432"),
		DBUser:                 getEnv("DB_USER", "eventdeck"),
		DBPassword:             getEnv("DB_PASSWORD", "eventdeck"),
		DBName:                 getEnv("DB_NAME", "eventdeck"),
		DBMaxIdleConns:         getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
		DBMaxOpenConns:         getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
		JWTSecret:              getEnv("JWT_SECRET", "your-super-secret-key-change-this-in-production"),
		JWTExpirationMinutes:   getEnvAsInt("JWT_EXPIRATION_MINUTES", 15),
		RefreshTokenSecret:     getEnv("REFRESH_TOKEN_SECRET", "your-refresh-secret-change-this-in-production"),
		RefreshExpirationHours: getEnvAsInt("REFRESH_EXPIRATION_HOURS", 168),
		SeedDB:                 getEnvAsBool("SEED_DB", false),
	}
}
