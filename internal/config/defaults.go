package config

import "github.com/forgekit/create-react-kit/pkg/models"

// Default value constants.
const (
	DefaultPackageManager = models.PackageManagerNPM
	DefaultProjectName    = "my-react-app"

	// AppDirName is the directory under the user config dir holding config.yaml.
	AppDirName     = "create-react-kit"
	ConfigFileName = "config.yaml"
)

// Environment variables that override file values.
const (
	EnvConfigFile     = "CRK_CONFIG"
	EnvPackageManager = "CRK_PACKAGE_MANAGER"
	EnvLogLevel       = "CRK_LOG_LEVEL"
	EnvNoColor        = "CRK_NO_COLOR"
	EnvSkipInstall    = "CRK_SKIP_INSTALL"
	EnvProjectName    = "CRK_PROJECT_NAME"
)

// NewDefaultConfig returns a Config with all fields set to compiled defaults.
// Logging stays off and Libraries stays nil so the catalog defaults apply.
func NewDefaultConfig() *Config {
	return &Config{
		PackageManager: DefaultPackageManager,
		Defaults: DefaultsConfig{
			ProjectName: DefaultProjectName,
		},
	}
}
