package wizard

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/forgekit/create-react-kit/internal/catalog"
	"github.com/forgekit/create-react-kit/pkg/models"
)

// boundField is a huh field whose answer is copied into a WizardResult
// once its form completes.
type boundField struct {
	field  huh.Field
	commit func(result *WizardResult)
}

// Run asks every question and returns the answers.
// Each question runs as its own independent huh.Form to avoid the huh v0.8.x
// YOffset scroll bug that occurs when multiple groups share a single viewport.
func Run(ctx context.Context, questions []Question) (*WizardResult, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	result := newResult()
	theme := newWizardTheme()

	for i := range questions {
		bf := buildField(&questions[i])
		form := huh.NewForm(huh.NewGroup(bf.field)).
			WithTheme(theme).
			WithAccessible(false)

		if err := form.RunWithContext(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
		bf.commit(result)
	}

	return result, nil
}

// RunHeadless answers every question with its default. A default that
// fails validation yields ErrInvalidDefault.
func RunHeadless(questions []Question) (*WizardResult, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	result := newResult()
	for i := range questions {
		q := &questions[i]
		switch q.Type {
		case QuestionTypeInput, QuestionTypeSelect:
			v := strings.TrimSpace(q.Default)
			if err := checkInput(q, v); err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDefault, q.ID, err)
			}
			saveAnswer(q.ID, v, result)
		case QuestionTypeMultiSelect:
			saveSelection(q.ID, q.Defaults, result)
		}
	}
	return result, nil
}

func newResult() *WizardResult {
	return &WizardResult{Picks: make(map[catalog.Category][]string)}
}

// buildField creates the huh field for q.
func buildField(q *Question) boundField {
	switch q.Type {
	case QuestionTypeSelect:
		return buildSelectField(q)
	case QuestionTypeMultiSelect:
		return buildMultiSelectField(q)
	default:
		return buildInputField(q)
	}
}

// buildInputField creates a huh.Input with inline validation. An empty
// answer falls back to the default.
func buildInputField(q *Question) boundField {
	value := q.Default

	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&value).
		Validate(func(val string) error {
			return checkInput(q, orDefault(val, q.Default))
		})
	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}

	return boundField{
		field: inp,
		commit: func(result *WizardResult) {
			saveAnswer(q.ID, orDefault(value, q.Default), result)
		},
	}
}

// buildSelectField creates a huh.Select whose initial choice is the default.
func buildSelectField(q *Question) boundField {
	selected := q.Default

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(key, opt.Value)
	}

	sel := huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&selected)

	return boundField{
		field: sel,
		commit: func(result *WizardResult) {
			saveAnswer(q.ID, selected, result)
		},
	}
}

// buildMultiSelectField creates a huh.MultiSelect with the question's
// defaults pre-selected.
func buildMultiSelectField(q *Question) boundField {
	selected := slices.Clone(q.Defaults)

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		opts[i] = huh.NewOption(opt.Label, opt.Value).
			Selected(slices.Contains(q.Defaults, opt.Value))
	}

	ms := huh.NewMultiSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&selected)

	return boundField{
		field: ms,
		commit: func(result *WizardResult) {
			saveSelection(q.ID, orderLike(q.Options, selected), result)
		},
	}
}

// checkInput applies the required flag and the question's validator.
func checkInput(q *Question, v string) error {
	if q.Required && v == "" {
		return errRequired
	}
	if q.Validate != nil && v != "" {
		return q.Validate(v)
	}
	return nil
}

func orDefault(v, def string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	return v
}

// orderLike returns the picked values in option order.
func orderLike(options []Option, picked []string) []string {
	var out []string
	for _, opt := range options {
		if slices.Contains(picked, opt.Value) {
			out = append(out, opt.Value)
		}
	}
	return out
}

// saveAnswer stores a single-value answer in the result.
func saveAnswer(id, value string, result *WizardResult) {
	switch id {
	case QuestionProjectName:
		result.ProjectName = value
	case QuestionPackageManager:
		result.PackageManager = models.PackageManager(value)
	}
}

// saveSelection stores the picks of a category question.
func saveSelection(id string, values []string, result *WizardResult) {
	if c, ok := strings.CutPrefix(id, categoryPrefix); ok {
		result.Picks[catalog.Category(c)] = slices.Clone(values)
	}
}

// Brand colours used by the wizard theme.
const (
	ColorPrimary   = "#61DAFB"
	ColorSecondary = "#8B5CF6"
	ColorSuccess   = "#10B981"
	ColorError     = "#EF4444"
	ColorText      = "#E5E7EB"
	ColorMuted     = "#6B7280"
	ColorBorder    = "#4B5563"
)

// newWizardTheme creates a huh.Theme with the create-react-kit branding.
func newWizardTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#0E7490", Dark: ColorPrimary}
	secondary := lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: ColorSecondary}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: ColorSuccess}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ColorError}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: ColorText}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ColorMuted}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ColorBorder}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(primary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◆ ")
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(text)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◇ ")
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
