package models

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidProject indicates the project descriptor failed validation.
var ErrInvalidProject = errors.New("models: invalid project descriptor")

// projectNamePattern restricts names to letters, digits, dashes and underscores.
var projectNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Selection is an ordered, de-duplicated collection of library identifiers.
type Selection []string

// NewSelection builds a Selection from ids, dropping empty values and
// duplicates while preserving first-seen order.
func NewSelection(ids ...string) Selection {
	sel := make(Selection, 0, len(ids))
	for _, id := range ids {
		if id == "" || slices.Contains(sel, id) {
			continue
		}
		sel = append(sel, id)
	}
	return sel
}

// Has reports whether id is part of the selection.
func (s Selection) Has(id string) bool {
	return slices.Contains(s, id)
}

// ProjectDescriptor holds everything needed to generate a project.
type ProjectDescriptor struct {
	Name           string         `yaml:"name" json:"name" validate:"required,projectname"`
	PackageManager PackageManager `yaml:"package_manager" json:"package_manager" validate:"required,packagemanager"`
	Selection      Selection      `yaml:"selection" json:"selection"`
}

// ValidateProjectName checks a single project name, used by the prompt loop.
func ValidateProjectName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: project name is required", ErrInvalidProject)
	}
	if !projectNamePattern.MatchString(name) {
		return fmt.Errorf("%w: project name %q may only contain letters, numbers, dashes and underscores", ErrInvalidProject, name)
	}
	return nil
}

// Validate checks the descriptor fields.
func (d ProjectDescriptor) Validate() error {
	err := descriptorValidator.Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidProject, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s (%s): %v", fe.Field(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidProject, strings.Join(msgs, ", "))
}

var descriptorValidator = newDescriptorValidator()

func newDescriptorValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("projectname", func(fl validator.FieldLevel) bool {
		return projectNamePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("packagemanager", func(fl validator.FieldLevel) bool {
		return PackageManager(fl.Field().String()).IsValid()
	})
	return v
}
