// Package config 從環境變數 (可選 .env) 讀取服務設定
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"

	defaultJWTSecret = "dev_secret_change_me"
)

// dotenvLoad 測試可覆寫；.env 不存在時忽略
var dotenvLoad = func() error { return godotenv.Load() }

type Config struct {
	Host string
	// Port 為第一個嘗試的埠，失敗時依序嘗試 Port+1、Port+2
	Port int

	StoreDriver     string
	DatabaseURL     string
	MongoURI        string
	MongoDatabase   string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	JWTSecret       string
	AdminSignupCode string
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	StaticDir       string

	MedicineCacheTTL time.Duration
}

// Load 讀取並驗證設定，任何無效值都回傳錯誤
func Load() (*Config, error) {
	_ = dotenvLoad()

	cfg := &Config{
		Host:            os.Getenv("HOST"),
		StoreDriver:     getEnvOrDefault("STORE_DRIVER", DriverPostgres),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		MongoURI:        getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:   getEnvOrDefault("MONGODB_DATABASE", "healthcare"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		JWTSecret:       getEnvOrDefault("JWT_SECRET", defaultJWTSecret),
		AdminSignupCode: os.Getenv("ADMIN_SIGNUP_CODE"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:   os.Getenv("OPENAI_BASE_URL"),
		StaticDir:       getEnvOrDefault("STATIC_DIR", "."),
	}

	port, err := strconv.Atoi(getEnvOrDefault("PORT", "3000"))
	if err != nil || port <= 0 || port > 65533 {
		return nil, fmt.Errorf("無效的 PORT: %q", os.Getenv("PORT"))
	}
	cfg.Port = port

	switch cfg.StoreDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("環境變數 DATABASE_URL 未設定")
		}
	case DriverMongo:
	default:
		return nil, fmt.Errorf("無效的 STORE_DRIVER: %q", cfg.StoreDriver)
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		idx, err := strconv.Atoi(v)
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("無效的 REDIS_DB: %q", v)
		}
		cfg.RedisDB = idx
	}

	ttl, err := time.ParseDuration(getEnvOrDefault("MEDICINE_CACHE_TTL", "5m"))
	if err != nil || ttl <= 0 {
		return nil, fmt.Errorf("無效的 MEDICINE_CACHE_TTL: %q", os.Getenv("MEDICINE_CACHE_TTL"))
	}
	cfg.MedicineCacheTTL = ttl

	return cfg, nil
}

// Ports 回傳依序嘗試綁定的埠
func (c *Config) Ports() []int {
	return []int{c.Port, c.Port + 1, c.Port + 2}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
