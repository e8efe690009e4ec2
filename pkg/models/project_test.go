package models

import (
	"errors"
	"testing"
)

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "my-app", false},
		{"underscore", "my_app2", false},
		{"uppercase", "MyApp", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"space", "my app", true},
		{"slash", "../evil", true},
		{"dot", "my.app", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProjectName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateProjectName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidProject) {
				t.Errorf("expected ErrInvalidProject, got %v", err)
			}
		})
	}
}

func TestProjectDescriptorValidate(t *testing.T) {
	valid := ProjectDescriptor{Name: "my-app", PackageManager: PackageManagerPNPM}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	badName := ProjectDescriptor{Name: "my app", PackageManager: PackageManagerNPM}
	if err := badName.Validate(); !errors.Is(err, ErrInvalidProject) {
		t.Errorf("Validate() with bad name error = %v, want ErrInvalidProject", err)
	}

	badPM := ProjectDescriptor{Name: "app", PackageManager: "cargo"}
	if err := badPM.Validate(); !errors.Is(err, ErrInvalidProject) {
		t.Errorf("Validate() with bad package manager error = %v, want ErrInvalidProject", err)
	}
}

func TestNewSelection(t *testing.T) {
	sel := NewSelection("vitest", "", "tailwindcss", "vitest")
	if len(sel) != 2 || sel[0] != "vitest" || sel[1] != "tailwindcss" {
		t.Fatalf("NewSelection() = %v, want [vitest tailwindcss]", sel)
	}
	if !sel.Has("tailwindcss") {
		t.Error("Has(tailwindcss) = false, want true")
	}
	if sel.Has("zod") {
		t.Error("Has(zod) = true, want false")
	}
}

func TestPackageManager(t *testing.T) {
	for _, pm := range ValidPackageManagers() {
		if !pm.IsValid() {
			t.Errorf("%q.IsValid() = false", pm)
		}
	}
	if PackageManager("pip").IsValid() {
		t.Error("pip should not be valid")
	}
	if got := PackageManagerNPM.RunCommand(); got != "npm run" {
		t.Errorf("npm RunCommand() = %q", got)
	}
	if got := PackageManagerPNPM.RunCommand(); got != "pnpm" {
		t.Errorf("pnpm RunCommand() = %q", got)
	}
}

func TestInstallCommand(t *testing.T) {
	tests := []struct {
		pm   PackageManager
		want string
	}{
		{PackageManagerNPM, "npm install"},
		{PackageManagerYarn, "yarn install"},
		{PackageManagerPNPM, "pnpm install"},
		{PackageManagerBun, "bun install"},
	}
	for _, tt := range tests {
		got, err := tt.pm.InstallCommand()
		if err != nil {
			t.Fatalf("%s InstallCommand() error = %v", tt.pm, err)
		}
		if got != tt.want {
			t.Errorf("%s InstallCommand() = %q, want %q", tt.pm, got, tt.want)
		}
	}

	if _, err := PackageManager("pip").InstallCommand(); !errors.Is(err, ErrUnsupportedPackageManager) {
		t.Errorf("pip InstallCommand() error = %v, want ErrUnsupportedPackageManager", err)
	}
}
