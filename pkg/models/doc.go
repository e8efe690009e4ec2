// Package models provides shared data models and types for create-react-kit.
//
// # Project Descriptor
//
// A [ProjectDescriptor] is built once from the wizard answers and is
// read-only afterwards. Every artifact generator is a pure function of it:
//
//	desc := models.ProjectDescriptor{
//	    Name:           "my-app",
//	    PackageManager: models.PackageManagerPNPM,
//	    Selection:      models.NewSelection("tailwindcss", "vitest"),
//	}
//	if err := desc.Validate(); err != nil {
//	    return err
//	}
//
// # Package Managers
//
// Four package managers are supported: npm, yarn, pnpm and bun. Use
// [PackageManager.IsValid] to check user input.
//
// # Selection
//
// A [Selection] is the ordered, de-duplicated list of library identifiers
// picked by the user across all catalog categories.
package models
