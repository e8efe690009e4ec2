package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/forgekit/create-react-kit/pkg/models"
)

// Loader reads the configuration file.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new Loader instance.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{logger: logger}
}

// DefaultPath returns the configuration file location: $CRK_CONFIG when
// set, otherwise config.yaml under the user config directory
// ($XDG_CONFIG_HOME on Linux).
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigFile); p != "" {
		return filepath.Clean(p), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, AppDirName, ConfigFileName), nil
}

// @MX:NOTE: [AUTO] Precedence is compiled defaults, then the YAML file, then CRK_* environment variables.
// Load reads path, merges it over compiled defaults and applies environment
// overrides. A missing file yields the defaults. The merged configuration
// is validated before it is returned.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	loaded, err := loadYAMLFile(path, cfg)
	if err != nil {
		return nil, err
	}
	if loaded {
		l.logger.Debug("config file loaded", "path", path)
	} else {
		l.logger.Debug("config file not found, using defaults", "path", path)
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load resolves DefaultPath and loads it with a discarding logger.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return NewLoader(nil).Load(path)
}

// loadYAMLFile unmarshals the file at path into target. Returns (true, nil)
// if the file was found and parsed, (false, nil) if it does not exist.
func loadYAMLFile(path string, target any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("parse %s: %w: %v", path, ErrInvalidYAML, err)
	}
	return true, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables have higher priority than file-based values.
func applyEnvOverrides(cfg *Config) {
	if pm := os.Getenv(EnvPackageManager); pm != "" {
		cfg.PackageManager = models.PackageManager(pm)
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = level
	}
	if envBool(EnvNoColor) {
		cfg.NoColor = true
	}
	if envBool(EnvSkipInstall) {
		cfg.SkipInstall = true
	}
	if name := os.Getenv(EnvProjectName); name != "" {
		cfg.Defaults.ProjectName = name
	}
}

func envBool(key string) bool {
	v := os.Getenv(key)
	return v == "true" || v == "1"
}
