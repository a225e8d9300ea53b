package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config 行程啟動時讀取一次，之後以參考傳遞，業務邏輯不讀環境變數
type Config struct {
	DatabaseURL    string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	JWTSecret      string
	AccessTokenTTL time.Duration
	AllowOrigins   []string
	AdminEmail     string
	AdminPassword  string
	WorkerCount    int
}

var godotenvLoad = godotenv.Load

const defaultAccessTokenTTL = 7 * 24 * time.Hour

// Load 讀取 .env（若存在）與環境變數
func Load() (*Config, error) {
	_ = godotenvLoad()

	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      os.Getenv("SECRET_KEY"),
		AccessTokenTTL: defaultAccessTokenTTL,
		AllowOrigins:   []string{"http://localhost:5173"},
		AdminEmail:     os.Getenv("FIRST_SUPERUSER_EMAIL"),
		AdminPassword:  os.Getenv("FIRST_SUPERUSER_PASSWORD"),
		WorkerCount:    1,
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("環境變數 SECRET_KEY 未設定")
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("無效的 REDIS_DB: %v", err)
		}
		cfg.RedisDB = n
	}

	if v := os.Getenv("ACCESS_TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("無效的 ACCESS_TOKEN_TTL: %q", v)
		}
		cfg.AccessTokenTTL = d
	}

	if v := os.Getenv("BACKEND_CORS_ORIGINS"); v != "" {
		origins := []string{}
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.AllowOrigins = origins
	}

	if v := os.Getenv("WORKER_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("無效的 WORKER_COUNT: %q", v)
		}
		cfg.WorkerCount = n
	}

	return cfg, nil
}
