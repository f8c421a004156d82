// Package config resolves file locations and runtime options from the
// environment, optionally seeded from a .env file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvLedgerFile  = "LEDGERMAN_LEDGER_FILE"
	EnvReportFile  = "LEDGERMAN_REPORT_FILE"
	EnvSessionFile = "LEDGERMAN_SESSION_FILE"
	EnvLogLevel    = "LEDGERMAN_LOG_LEVEL"
	EnvAutoLoad    = "LEDGERMAN_AUTOLOAD"
)

// Config holds everything the CLI needs to locate its files.
type Config struct {
	LedgerFile  string
	ReportFile  string
	SessionFile string
	LogLevel    string
	AutoLoad    bool
}

// Load reads .env files (when present) and then the environment.
func Load(envFiles ...string) *Config {
	// a missing .env is normal outside development
	_ = godotenv.Load(envFiles...)

	return &Config{
		LedgerFile:  getEnv(EnvLedgerFile, "financial_transactions.csv"),
		ReportFile:  getEnv(EnvReportFile, "report.txt"),
		SessionFile: getEnv(EnvSessionFile, ".ledgerman-session.tmp"),
		LogLevel:    getEnv(EnvLogLevel, "warn"),
		AutoLoad:    getEnvBool(EnvAutoLoad, true),
	}
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errors []string

	paths := []struct {
		name  string
		value string
	}{
		{"ledger file", c.LedgerFile},
		{"report file", c.ReportFile},
		{"session file", c.SessionFile},
	}
	for _, p := range paths {
		if strings.TrimSpace(p.value) == "" {
			errors = append(errors, fmt.Sprintf("%s path cannot be empty", p.name))
			continue
		}
		if info, err := os.Stat(p.value); err == nil && info.IsDir() {
			errors = append(errors, fmt.Sprintf("%s path '%s' is a directory", p.name, p.value))
		}
	}

	if c.LedgerFile != "" && filepath.Clean(c.LedgerFile) == filepath.Clean(c.ReportFile) {
		errors = append(errors, "ledger file and report file must differ")
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, err.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

// Level returns the configured log level, defaulting to warn.
func (c *Config) Level() slog.Level {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return level
}

// ParseLevel maps debug/info/warn/error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log level '%s': must be debug, info, warn or error", s)
	}
	return level, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
