package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/forgekit/create-react-kit/internal/catalog"
	"github.com/forgekit/create-react-kit/pkg/models"
)

// logLevels maps accepted log_level values to slog levels.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// ParseLogLevel converts a log_level value. ok is false for unknown or
// empty values.
func ParseLogLevel(s string) (level slog.Level, ok bool) {
	level, ok = logLevels[strings.ToLower(s)]
	return level, ok
}

// Validate checks every preference and reports all problems at once. The
// returned error wraps ErrInvalidConfig and a FieldErrors.
func Validate(cfg *Config) error {
	var errs FieldErrors

	if !cfg.PackageManager.IsValid() {
		errs = append(errs, &FieldError{
			Field: "package_manager",
			Value: string(cfg.PackageManager),
			Err:   fmt.Errorf("%w: want one of %s", models.ErrUnsupportedPackageManager, packageManagerNames()),
		})
	}

	if cfg.LogLevel != "" {
		if _, ok := ParseLogLevel(cfg.LogLevel); !ok {
			errs = append(errs, &FieldError{
				Field: "log_level",
				Value: cfg.LogLevel,
				Err:   fmt.Errorf("%w: want debug, info, warn or error", ErrInvalidLogLevel),
			})
		}
	}

	if name := cfg.Defaults.ProjectName; name != "" {
		if err := models.ValidateProjectName(name); err != nil {
			errs = append(errs, &FieldError{Field: "defaults.project_name", Value: name, Err: err})
		}
	}

	for _, id := range cfg.Defaults.Libraries {
		if _, ok := catalog.Lookup(id); !ok {
			errs = append(errs, &FieldError{Field: "defaults.libraries", Value: id, Err: ErrUnknownLibrary})
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errs)
	}
	return nil
}

func packageManagerNames() string {
	names := make([]string, 0, len(models.ValidPackageManagers()))
	for _, pm := range models.ValidPackageManagers() {
		names = append(names, string(pm))
	}
	return strings.Join(names, ", ")
}
