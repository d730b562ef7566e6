package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultPort          = "8080"
	DefaultAppName       = "animal-shelter-api"
	DefaultPageSize      = 100
	DefaultMaxPageSize   = 1000
	DefaultAuthRateRPS   = 5.0
	DefaultAuthRateBurst = 10
)

// Config agrupa todo lo que el proceso lee del entorno.
type Config struct {
	Port string

	// DBDSN vacío => storage in-memory.
	DBDSN         string
	DBAutoMigrate bool

	LogLevel  string
	LogFormat string
	AppName   string

	ListDefaultPageSize int
	ListMaxPageSize     int

	AuthRateRPS   float64
	AuthRateBurst int

	// DevAuth habilita X-Debug-User-ID (solo local).
	DevAuth bool

	// Warnings acumula valores inválidos que se reemplazaron por defaults.
	Warnings []string
}

// Load carga .env (si existe) y luego lee las variables de entorno.
func Load() Config {
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup construye la config desde una función tipo os.LookupEnv (útil en tests).
func FromLookup(lookup func(string) (string, bool)) Config {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return fallback
	}

	cfg := Config{
		Port:      get("PORT", DefaultPort),
		DBDSN:     get("DB_DSN", ""),
		LogLevel:  get("LOG_LEVEL", "info"),
		LogFormat: get("LOG_FORMAT", "text"),
		AppName:   get("APP_NAME", DefaultAppName),
	}

	cfg.DBAutoMigrate = cfg.boolVal(get("DB_AUTO_MIGRATE", "true"), "DB_AUTO_MIGRATE", true)
	cfg.DevAuth = cfg.boolVal(get("DEV_AUTH", "false"), "DEV_AUTH", false)

	cfg.ListDefaultPageSize = cfg.positiveInt(get("LIST_DEFAULT_PAGE_SIZE", ""), "LIST_DEFAULT_PAGE_SIZE", DefaultPageSize)
	cfg.ListMaxPageSize = cfg.positiveInt(get("LIST_MAX_PAGE_SIZE", ""), "LIST_MAX_PAGE_SIZE", DefaultMaxPageSize)
	if cfg.ListDefaultPageSize > cfg.ListMaxPageSize {
		cfg.Warnings = append(cfg.Warnings, "LIST_DEFAULT_PAGE_SIZE > LIST_MAX_PAGE_SIZE, clamped")
		cfg.ListDefaultPageSize = cfg.ListMaxPageSize
	}

	cfg.AuthRateBurst = cfg.positiveInt(get("AUTH_RATE_BURST", ""), "AUTH_RATE_BURST", DefaultAuthRateBurst)
	cfg.AuthRateRPS = DefaultAuthRateRPS
	if v := get("AUTH_RATE_RPS", ""); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("invalid AUTH_RATE_RPS %q, using %v", v, DefaultAuthRateRPS))
		} else {
			cfg.AuthRateRPS = f
		}
	}

	return cfg
}

// Addr devuelve la dirección de escucha para http.Server.
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

func (c *Config) positiveInt(v, key string, fallback int) int {
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		c.Warnings = append(c.Warnings, fmt.Sprintf("invalid %s %q, using %d", key, v, fallback))
		return fallback
	}
	return n
}

func (c *Config) boolVal(v, key string, fallback bool) bool {
	b, err := strconv.ParseBool(v)
	if err != nil {
		c.Warnings = append(c.Warnings, fmt.Sprintf("invalid %s %q, using %t", key, v, fallback))
		return fallback
	}
	return b
}
