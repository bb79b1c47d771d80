package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Conflict detection modes for appointment scheduling.
const (
	// ConflictModeEndpoints tests only the candidate's start and end for
	// containment in existing slots. This matches the historical behavior
	// that existing installations depend on.
	ConflictModeEndpoints = "endpoints"
	// ConflictModeOverlap is the corrected general interval-overlap test.
	ConflictModeOverlap = "overlap"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	LogLevel    string

	HTTPAddr string

	DBPath  string
	DBReset bool

	// ConflictMode selects how appointment slot conflicts are detected.
	ConflictMode string

	ClinicName    string
	ClinicAddress string
	ClinicEmail   string
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		AppName:       getenv("APP_SERVICE", "clinic"),
		AppVersion:    getenv("APP_VERSION", "0.1.0"),
		Environment:   getenv("ENVIRONMENT", "development"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		HTTPAddr:      getenv("HTTP_ADDR", ":8080"),
		DBPath:        getenv("DATABASE_PATH", "clinic.db"),
		DBReset:       getenvBool("DATABASE_RESET", false),
		ConflictMode:  normalizeConflictMode(getenv("APPOINTMENT_CONFLICT_MODE", ConflictModeEndpoints)),
		ClinicName:    getenv("CLINIC_NAME", "Clinic"),
		ClinicAddress: getenv("CLINIC_ADDRESS", ""),
		ClinicEmail:   getenv("CLINIC_EMAIL", ""),
	}

	return cfg
}

func normalizeConflictMode(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case ConflictModeOverlap:
		return ConflictModeOverlap
	default:
		return ConflictModeEndpoints
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return def
	}
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

var Module = fx.Module("config",
	fx.Provide(Load),
)
