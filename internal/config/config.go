package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // Asia/Tokyo sin depender del sistema

	"paws-cafe/internal/platform/logger"
)

type StoreDriver string

const (
	DriverMemory   StoreDriver = "memory"
	DriverSQLite   StoreDriver = "sqlite"
	DriverPostgres StoreDriver = "postgres"
)

// Config se lee una vez al arrancar y no se modifica después.
type Config struct {
	// Server
	Port            string
	BindAddr        string
	ShutdownTimeout time.Duration

	// Storage
	StoreDriver StoreDriver
	DataDir     string
	DatabaseURL string

	// Catálogo; vacío usa la muestra incluida.
	CatalogFile string

	FavoritesAutoSave bool
	RecommendCount    int

	// Zona horaria de las fechas de visitas que llegan sin offset.
	Location *time.Location

	// Logging
	LogLevel  logger.Level
	LogFormat logger.Format
	AppName   string
}

// Addr es host:puerto para http.Server.
func (c *Config) Addr() string {
	return c.BindAddr + ":" + c.Port
}

// Load lee el entorno. Valores con formato inválido usan el default; solo
// combinaciones imposibles (p.ej. postgres sin DB_DSN) son error.
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.Port = getEnvString("PORT", "8080")
	cfg.BindAddr = getEnvString("BIND_ADDR", "127.0.0.1")
	cfg.ShutdownTimeout = getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second)

	driver, err := parseDriver(getEnvString("STORE_DRIVER", string(DriverSQLite)))
	if err != nil {
		return nil, err
	}
	cfg.StoreDriver = driver
	cfg.DataDir = getEnvString("DATA_DIR", "./data")
	cfg.DatabaseURL = getEnvString("DB_DSN", "")

	if cfg.StoreDriver == DriverPostgres && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("required environment variables are not set: %v", []string{"DB_DSN"})
	}

	cfg.CatalogFile = getEnvString("CATALOG_FILE", "")
	cfg.FavoritesAutoSave = getEnvBool("FAVORITES_AUTOSAVE", true)

	cfg.RecommendCount = getEnvInt("RECOMMEND_COUNT", 2)
	if cfg.RecommendCount <= 0 {
		cfg.RecommendCount = 2
	}

	tz := getEnvString("TIMEZONE", "Asia/Tokyo")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", tz, err)
	}
	cfg.Location = loc

	cfg.LogLevel = logger.ParseLevel(os.Getenv("LOG_LEVEL"))
	cfg.LogFormat = logger.ParseFormat(os.Getenv("LOG_FORMAT"))
	cfg.AppName = getEnvString("APP_NAME", "paws-cafe")

	return cfg, nil
}

func parseDriver(s string) (StoreDriver, error) {
	switch d := StoreDriver(strings.ToLower(strings.TrimSpace(s))); d {
	case DriverMemory, DriverSQLite, DriverPostgres:
		return d, nil
	default:
		return "", fmt.Errorf("invalid STORE_DRIVER %q (memory|sqlite|postgres)", s)
	}
}

func getEnvString(key, defaultVal string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvBool(key string, defaultVal bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
