package config

import "github.com/forgekit/create-react-kit/pkg/models"

// Config holds the user preferences. Every field is optional.
type Config struct {
	PackageManager models.PackageManager `yaml:"package_manager"`
	LogLevel       string                `yaml:"log_level"`
	NoColor        bool                  `yaml:"no_color"`
	SkipInstall    bool                  `yaml:"skip_install"`
	Defaults       DefaultsConfig        `yaml:"defaults"`
}

// DefaultsConfig pre-fills the wizard and supplies headless answers.
type DefaultsConfig struct {
	ProjectName string `yaml:"project_name"`
	// Libraries replaces the catalog's default picks when non-nil. An
	// explicit empty list means nothing is pre-selected.
	Libraries []string `yaml:"libraries"`
}

// LoggingEnabled reports whether diagnostic logging was requested.
func (c *Config) LoggingEnabled() bool {
	return c.LogLevel != ""
}
