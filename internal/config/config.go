package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	DataDir     string
	MetricsAddr string

	// StrictCalculation surfaces skipped material/rule pairs as warnings in
	// calculation results instead of only logging them.
	StrictCalculation bool

	// CacheTTL bounds how long parsed JSON documents are served from memory.
	CacheTTL time.Duration
}

func Load() Config {
	return Config{
		Port:              getenv("PORT", "3001"),
		DataDir:           getenv("DATA_DIR", "data"),
		MetricsAddr:       getenv("METRICS_ADDR", ":9090"),
		StrictCalculation: getenvBool("STRICT_CALCULATION", false),
		CacheTTL:          time.Duration(getenvInt("CACHE_TTL_SECONDS", 30)) * time.Second,
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
