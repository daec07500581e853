package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort       string
	LogLevel      string
	DBDriver      string // "postgres" or "sqlite"
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	SQLitePath    string
	SessionSecret string
	KafkaAddress  string
	ESURL         string
	ESUser        string
	ESPassword    string
	ESIndex       string
	RedisAddr     string
	RedisPassword string
}

func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("notice: .env file not found: %v, using system environment", err)
	}

	return &Config{
		AppPort:       getDefault("APP_PORT", ":8080"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		DBDriver:      getDefault("DB_DRIVER", "postgres"),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        os.Getenv("DB_PORT"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		SQLitePath:    getDefault("SQLITE_PATH", "fiapp.db"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		KafkaAddress:  os.Getenv("KAFKA_ADDRESS"),
		ESURL:         os.Getenv("ES_URL"),
		ESUser:        os.Getenv("ES_USER"),
		ESPassword:    os.Getenv("ES_PASSWORD"),
		ESIndex:       getDefault("ES_INDEX", "productos"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASS"),
	}
}

func getDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
