// Package wizard provides the interactive huh-based prompts that collect a
// project name, a package manager and one library pick list per catalog
// category.
package wizard

import (
	"errors"
	"strings"

	"github.com/forgekit/create-react-kit/internal/catalog"
	"github.com/forgekit/create-react-kit/pkg/models"
)

// WizardResult holds the user's answers.
type WizardResult struct {
	ProjectName    string
	PackageManager models.PackageManager
	// Picks maps each category to the identifiers chosen for it, in the
	// order they were offered.
	Picks map[catalog.Category][]string
}

// Descriptor aggregates the answers into a project descriptor.
func (r *WizardResult) Descriptor() models.ProjectDescriptor {
	return models.ProjectDescriptor{
		Name:           strings.TrimSpace(r.ProjectName),
		PackageManager: r.PackageManager,
		Selection:      catalog.Aggregate(r.Picks),
	}
}

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeInput is a text input question.
	QuestionTypeInput QuestionType = iota
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect
	// QuestionTypeMultiSelect is a pick-any question.
	QuestionTypeMultiSelect
)

// Question defines a single wizard question.
type Question struct {
	ID          string             // Unique identifier
	Type        QuestionType       // Input, Select or MultiSelect
	Title       string             // Question title
	Description string             // Additional description
	Options     []Option           // Options for select questions
	Default     string             // Default value for input and select
	Defaults    []string           // Pre-selected values for multi-select
	Required    bool               // Whether the field is required
	Validate    func(string) error // Extra input validation, shown inline
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
	// ErrInvalidDefault is returned in headless mode when a default answer
	// fails validation.
	ErrInvalidDefault = errors.New("invalid default answer")
	// errRequired is shown inline when a required input is left empty.
	errRequired = errors.New("this field is required")
	// errProjectNameFormat is shown inline for a malformed project name.
	errProjectNameFormat = errors.New("project name may only include letters, numbers, dashes and underscores")
)
