package config

import "os"

// Config holds environment-driven configuration.
type Config struct {
	Addr      string
	DataDir   string
	Backend   string // "file" or "redis"
	RedisAddr string
	JWTSecret string
}

// Load reads configuration from environment variables.
func Load() Config {
	cfg := Config{
		Addr:      os.Getenv("TECH_STORE_ADDR"),
		DataDir:   os.Getenv("TECH_STORE_DATA_DIR"),
		Backend:   os.Getenv("TECH_STORE_BACKEND"),
		RedisAddr: os.Getenv("REDIS_ADDR"),
		JWTSecret: os.Getenv("JWT_SECRET"),
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "./data"
	}
	if cfg.Backend == "" {
		cfg.Backend = "file"
	}
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = "localhost:6379"
	}
	return cfg
}
