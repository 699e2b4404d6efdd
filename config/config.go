package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	AppEnv         string
	AppPort        string
	HTTPAPIEnabled bool
	AllowedOrigins string
	DBDriver       string
	DatabasePath   string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBMaxIdleConns int
	DBMaxOpenConns int
	MaxTasksPerDay int
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
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
		log.Printf("Invalid boolean value for %s, defaulting to %t", key, defaultValue)
	}
	return defaultValue
}

func Load() Config {
	cfg := Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		AppPort:        getEnv("APP_PORT", "8080"),
		HTTPAPIEnabled: getEnvAsBool("HTTP_API_ENABLED", false),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		DBDriver:       getEnv("DB_DRIVER", "sqlite"),
		DatabasePath:   getEnv("DATABASE_PATH", DefaultDatabasePath()),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "mittrack"),
		DBPassword:     getEnv("DB_PASSWORD", "mittrack"),
		DBName:         getEnv("DB_NAME", "mittrack"),
		DBMaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
		DBMaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
		MaxTasksPerDay: getEnvAsInt("MAX_TASKS_PER_DAY", 3),
	}

	// The daily cap always has a floor of one task.
	if cfg.MaxTasksPerDay < 1 {
		log.Printf("MAX_TASKS_PER_DAY %d below floor, using 1", cfg.MaxTasksPerDay)
		cfg.MaxTasksPerDay = 1
	}

	return cfg
}
