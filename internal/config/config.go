package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App AppConfig
	API APIConfig
}

type AppConfig struct {
	Name string
	Env  string
}

// APIConfig points the client at the order-service API.
type APIConfig struct {
	BaseURL        string
	TimeoutSec     int
	DialTimeoutSec int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "storefront"),
			Env:  getEnv("APP_ENV", "local"),
		},
		API: APIConfig{
			BaseURL:        getEnv("ORDER_API_BASE_URL", "http://localhost:8080"),
			TimeoutSec:     getEnvAsInt("ORDER_API_TIMEOUT_SEC", 30),
			DialTimeoutSec: getEnvAsInt("ORDER_API_DIAL_TIMEOUT_SEC", 5),
		},
	}

	return cfg, cfg.validate()
}

/* ================= helpers ================= */

func (c *Config) validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("ORDER_API_BASE_URL is empty")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("ORDER_API_BASE_URL is not a valid URL: %q", c.API.BaseURL)
	}
	if c.API.TimeoutSec <= 0 {
		return fmt.Errorf("ORDER_API_TIMEOUT_SEC is invalid")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
