package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type App struct {
	App      string
	Version  string
	Port     string
	LogLevel string
}

type DB struct {
	DbDriver string
	DbHost   string
	DbUser   string
	DbPass   string
	DbPort   string
	DbName   string
	DbSsl    string
	DbTz     string
	DbPath   string
}

type Trx struct {
	MaxRetries     int
	BaseDelayMs    int
	TimeoutSeconds int
}

type Config struct {
	App App
	DB  DB
	Trx Trx
}

var config *Config

func Init() {
	_ = godotenv.Load()

	config = &Config{
		App: App{
			App:      getEnv("APP_NAME", "taskestimate"),
			Version:  getEnv("APP_VERSION", "1.0.0"),
			Port:     getEnv("APP_PORT", "8080"),
			LogLevel: getEnv("LOG_LEVEL", "info"),
		},
		DB: DB{
			DbDriver: getEnv("DB_DRIVER", "MYSQL"),
			DbHost:   getEnv("DB_HOST", "localhost"),
			DbUser:   getEnv("DB_USER", "root"),
			DbPass:   getEnv("DB_PASS", ""),
			DbPort:   getEnv("DB_PORT", "3306"),
			DbName:   getEnv("DB_NAME", "taskestimate"),
			DbSsl:    getEnv("DB_SSL", "false"),
			DbTz:     getEnv("DB_TZ", "Local"),
			DbPath:   getEnv("DB_PATH", "taskestimate.db"),
		},
		Trx: Trx{
			MaxRetries:     getEnvInt("TRX_MAX_RETRIES", 3),
			BaseDelayMs:    getEnvInt("TRX_BASE_DELAY_MS", 100),
			TimeoutSeconds: getEnvInt("TRX_TIMEOUT_SECONDS", 30),
		},
	}
}

func Get() *Config {
	if config == nil {
		Init()
	}
	return config
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
