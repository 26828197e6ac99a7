package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var validLogLevels = map[string]bool{
	"silent": true,
	"error":  true,
	"warn":   true,
	"info":   true,
}

// ValidateConfig checks if the configuration meets the requirements for the current environment
func ValidateConfig(cfg *Config) error {
	var errs []string

	switch cfg.DBDriver {
	case DriverPostgres:
		required := map[string]string{
			"DB_HOST": cfg.DBHost,
			"DB_PORT": cfg.DBPort,
			"DB_USER": cfg.DBUser,
			"DB_NAME": cfg.DBName,
		}
		for _, name := range []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_NAME"} {
			if required[name] == "" {
				errs = append(errs, ValidationError{Field: name, Message: "is required for the postgres driver"}.Error())
			}
		}
		if cfg.DBPassword == "" {
			if GetEnvironment() == CI {
				errs = append(errs, ValidationError{Field: "DB_PASSWORD", Message: "environment variable is required in CI environment"}.Error())
			} else {
				errs = append(errs, ValidationError{Field: "db_password", Message: "secret or DB_PASSWORD is required"}.Error())
			}
		}
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			errs = append(errs, ValidationError{Field: "SQLITE_PATH", Message: "is required for the sqlite driver"}.Error())
		}
	default:
		errs = append(errs, ValidationError{Field: "DB_DRIVER", Message: fmt.Sprintf("unsupported driver %q", cfg.DBDriver)}.Error())
	}

	if !validLogLevels[cfg.DBLogLevel] {
		errs = append(errs, ValidationError{Field: "DB_LOG_LEVEL", Message: fmt.Sprintf("unknown level %q", cfg.DBLogLevel)}.Error())
	}
	if cfg.DBMaxOpenConns < 1 {
		errs = append(errs, ValidationError{Field: "DB_MAX_OPEN_CONNS", Message: "must be at least 1"}.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errs, "\n"))
	}

	return nil
}
