package wizard

import (
	"github.com/forgekit/create-react-kit/internal/catalog"
	"github.com/forgekit/create-react-kit/internal/config"
	"github.com/forgekit/create-react-kit/pkg/models"
)

// Question identifiers.
const (
	QuestionProjectName    = "project_name"
	QuestionPackageManager = "package_manager"

	// categoryPrefix prefixes the ID of each per-category question.
	categoryPrefix = "category:"
)

// packageManagerDescs describes each supported package manager.
var packageManagerDescs = map[models.PackageManager]string{
	models.PackageManagerNPM:  "Node's bundled package manager",
	models.PackageManagerYarn: "Classic workspaces-friendly manager",
	models.PackageManagerPNPM: "Content-addressed, disk-efficient",
	models.PackageManagerBun:  "All-in-one JavaScript runtime",
}

// DefaultQuestions returns the wizard questions: project name, package
// manager, then one multi-select per catalog category in declaration
// order. Defaults come from cfg.
func DefaultQuestions(cfg *config.Config) []Question {
	questions := []Question{
		{
			ID:          QuestionProjectName,
			Type:        QuestionTypeInput,
			Title:       "What is the name of your project?",
			Description: "Letters, numbers, dashes and underscores.",
			Default:     cfg.Defaults.ProjectName,
			Required:    true,
			Validate:    validateProjectName,
		},
		{
			ID:          QuestionPackageManager,
			Type:        QuestionTypeSelect,
			Title:       "Which package manager do you want to use?",
			Description: "Dependencies are installed with it after the files are written.",
			Options:     packageManagerOptions(cfg.PackageManager),
			Default:     string(cfg.PackageManager),
			Required:    true,
		},
	}

	for _, c := range catalog.Categories() {
		questions = append(questions, categoryQuestion(c, cfg.DefaultPicks(c)))
	}
	return questions
}

// categoryQuestion builds the multi-select for one category.
func categoryQuestion(c catalog.Category, defaults []string) Question {
	libs := catalog.ByCategory(c)
	opts := make([]Option, len(libs))
	for i, lib := range libs {
		opts[i] = Option{Label: lib.Name, Value: lib.ID}
	}
	return Question{
		ID:          categoryPrefix + string(c),
		Type:        QuestionTypeMultiSelect,
		Title:       string(c),
		Description: "Space to toggle, enter to confirm.",
		Options:     opts,
		Defaults:    defaults,
	}
}

// packageManagerOptions lists the package managers with the preferred one
// first. huh v0.8 scrolls the viewport to the initial selection, so a
// default that is not first hides the options above it.
func packageManagerOptions(preferred models.PackageManager) []Option {
	var opts []Option
	for _, pm := range models.ValidPackageManagers() {
		opt := Option{Label: string(pm), Value: string(pm), Desc: packageManagerDescs[pm]}
		if pm == preferred {
			opts = append([]Option{opt}, opts...)
			continue
		}
		opts = append(opts, opt)
	}
	return opts
}

func validateProjectName(name string) error {
	if err := models.ValidateProjectName(name); err != nil {
		return errProjectNameFormat
	}
	return nil
}
