package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/forgekit/create-react-kit/pkg/models"
)

// clearEnv unsets every override so host settings do not leak into tests.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvConfigFile, EnvPackageManager, EnvLogLevel, EnvNoColor, EnvSkipInstall, EnvProjectName} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := NewLoader(nil).Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.PackageManager != DefaultPackageManager {
		t.Errorf("PackageManager = %q, want %q", cfg.PackageManager, DefaultPackageManager)
	}
	if cfg.Defaults.ProjectName != DefaultProjectName {
		t.Errorf("ProjectName = %q, want %q", cfg.Defaults.ProjectName, DefaultProjectName)
	}
	if cfg.LoggingEnabled() || cfg.NoColor || cfg.SkipInstall {
		t.Errorf("unexpected non-default flags: %+v", cfg)
	}
	if cfg.Defaults.Libraries != nil {
		t.Errorf("Libraries = %v, want nil", cfg.Defaults.Libraries)
	}
}

func TestLoad_FileValues(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
package_manager: pnpm
log_level: debug
no_color: true
defaults:
  project_name: dashboard
  libraries: [zustand, vitest]
`)

	cfg, err := NewLoader(nil).Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.PackageManager != models.PackageManagerPNPM {
		t.Errorf("PackageManager = %q", cfg.PackageManager)
	}
	if !cfg.LoggingEnabled() || !cfg.NoColor {
		t.Errorf("flags not loaded: %+v", cfg)
	}
	if cfg.Defaults.ProjectName != "dashboard" || len(cfg.Defaults.Libraries) != 2 {
		t.Errorf("Defaults = %+v", cfg.Defaults)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "package_manager: pnpm\n")

	t.Setenv(EnvPackageManager, "bun")
	t.Setenv(EnvSkipInstall, "1")
	t.Setenv(EnvNoColor, "true")
	t.Setenv(EnvProjectName, "from-env")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := NewLoader(nil).Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.PackageManager != models.PackageManagerBun {
		t.Errorf("PackageManager = %q, want bun", cfg.PackageManager)
	}
	if !cfg.SkipInstall || !cfg.NoColor {
		t.Errorf("bool overrides not applied: %+v", cfg)
	}
	if cfg.Defaults.ProjectName != "from-env" {
		t.Errorf("ProjectName = %q", cfg.Defaults.ProjectName)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoad_EnvBoolRequiresTruthyValue(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSkipInstall, "yes")

	cfg, err := NewLoader(nil).Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.SkipInstall {
		t.Error("only \"1\" and \"true\" enable a flag")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "package_manager: [unclosed\n")

	_, err := NewLoader(nil).Load(path)
	if !errors.Is(err, ErrInvalidYAML) {
		t.Fatalf("Load() error = %v, want ErrInvalidYAML", err)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
package_manager: pip
log_level: verbose
defaults:
  project_name: "has space"
  libraries: [not-a-lib]
`)

	_, err := NewLoader(nil).Load(path)
	var ferrs FieldErrors
	if !errors.As(err, &ferrs) {
		t.Fatalf("Load() error = %v, want FieldErrors", err)
	}
	if len(ferrs) != 4 {
		t.Errorf("got %d field errors, want 4: %v", len(ferrs), ferrs)
	}
	wantFields := []string{"package_manager", "log_level", "defaults.project_name", "defaults.libraries"}
	for i, fe := range ferrs {
		if i < len(wantFields) && fe.Field != wantFields[i] {
			t.Errorf("field error %d = %s, want %s", i, fe.Field, wantFields[i])
		}
	}
	for _, target := range []error{ErrInvalidConfig, models.ErrUnsupportedPackageManager, ErrInvalidLogLevel, models.ErrInvalidProject, ErrUnknownLibrary} {
		if !errors.Is(err, target) {
			t.Errorf("errors.Is(err, %v) = false", target)
		}
	}
}

func TestDefaultPath(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv(EnvConfigFile, "/etc/crk/custom.yaml")

	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error = %v", err)
	}
	if got != "/etc/crk/custom.yaml" {
		t.Errorf("DefaultPath() = %q, want explicit override", got)
	}

	if runtime.GOOS != "linux" {
		return
	}
	t.Setenv(EnvConfigFile, "")
	got, err = DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error = %v", err)
	}
	if want := "/tmp/xdg/create-react-kit/config.yaml"; got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}
