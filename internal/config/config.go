package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries everything the server needs at startup. Values come
// from an optional YAML file (APP_CONFIG), with environment variables
// taking precedence over both the file and the defaults.
type Config struct {
	AppAddr     string `yaml:"appAddr"`
	GinMode     string `yaml:"ginMode"`
	DataBackend string `yaml:"dataBackend"` // memory / mysql
	MySQLDSN    string `yaml:"mysqlDSN"`

	// MockLatency is the artificial delay of the in-memory backend,
	// mimicking a remote service.
	MockLatency time.Duration `yaml:"mockLatency"`

	JWTSecret   string   `yaml:"jwtSecret"`
	CORSOrigins []string `yaml:"corsOrigins"`

	// LoginRatePerMinute caps login attempts per client IP.
	LoginRatePerMinute int `yaml:"loginRatePerMinute"`
	LoginRateBurst     int `yaml:"loginRateBurst"`
}

func defaults() Config {
	return Config{
		AppAddr:     ":8080",
		DataBackend: "memory",
		MockLatency: 300 * time.Millisecond,
		JWTSecret:   "super-secret-key-change-me",
		CORSOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:5173",
		},
		LoginRatePerMinute: 10,
		LoginRateBurst:     5,
	}
}

// Load builds the effective configuration. A missing config file is
// not an error; a present but unreadable one is.
func Load() (Config, error) {
	cfg := defaults()

	if path := strings.TrimSpace(os.Getenv("APP_CONFIG")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnv(&cfg)

	if cfg.DataBackend != "memory" && cfg.DataBackend != "mysql" {
		return Config{}, fmt.Errorf("unknown data backend %q", cfg.DataBackend)
	}
	if cfg.DataBackend == "mysql" && strings.TrimSpace(cfg.MySQLDSN) == "" {
		return Config{}, fmt.Errorf("mysql backend selected but no DSN configured")
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("APP_ADDR")); v != "" {
		cfg.AppAddr = v
	}
	if v := strings.TrimSpace(os.Getenv("GIN_MODE")); v != "" {
		cfg.GinMode = v
	}
	if v := strings.TrimSpace(os.Getenv("DATA_BACKEND")); v != "" {
		cfg.DataBackend = v
	}
	if v := strings.TrimSpace(os.Getenv("MYSQL_DSN")); v != "" {
		cfg.MySQLDSN = v
	}
	if v := strings.TrimSpace(os.Getenv("JWT_SECRET")); v != "" {
		cfg.JWTSecret = v
	}
	if v := strings.TrimSpace(os.Getenv("MOCK_LATENCY_MS")); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			cfg.MockLatency = time.Duration(ms) * time.Millisecond
		}
	}
	if v := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); v != "" {
		origins := []string{}
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.CORSOrigins = origins
	}
}
