package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// showElapsedAfter is how long a spinner runs before the elapsed time is
// appended to its title. Most installs from a warm cache finish sooner.
const showElapsedAfter = 3 * time.Second

// progress implements Progress on top of a writer.
type progress struct {
	theme    *Theme
	headless *HeadlessManager
	out      io.Writer
}

// NewProgress creates a Progress that draws on os.Stdout.
func NewProgress(theme *Theme, hm *HeadlessManager) Progress {
	return newProgress(theme, hm, os.Stdout)
}

func newProgress(theme *Theme, hm *HeadlessManager, w io.Writer) *progress {
	return &progress{theme: theme, headless: hm, out: w}
}

// Spinner animates title on a colour terminal. Otherwise title is printed
// once as a plain line and Stop does nothing.
func (p *progress) Spinner(title string) Spinner {
	if p.headless.IsHeadless() || p.theme.NoColor {
		_, _ = fmt.Fprintln(p.out, title)
		return lineSpinner{}
	}
	return startSpinner(newSpinnerModel(p.theme, title, time.Now), p.out)
}

// lineSpinner is the no-terminal Spinner.
type lineSpinner struct{}

func (lineSpinner) Stop() {}

// stopMsg ends the spinner program.
type stopMsg struct{}

// spinnerModel is the bubbletea model behind the animated spinner.
type spinnerModel struct {
	spin    spinner.Model
	title   string
	muted   lipgloss.Style
	started time.Time
	now     func() time.Time
	stopped bool
}

func newSpinnerModel(theme *Theme, title string, now func() time.Time) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = theme.Style(theme.Colors.Primary)
	return spinnerModel{
		spin:    s,
		title:   title,
		muted:   theme.Style(theme.Colors.Muted),
		started: now(),
		now:     now,
	}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spin.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stopMsg:
		m.stopped = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.stopped {
		return ""
	}
	line := m.spin.View() + " " + m.title
	if d := m.now().Sub(m.started); d >= showElapsedAfter {
		line += " " + m.muted.Render(fmt.Sprintf("(%s)", d.Truncate(time.Second)))
	}
	return line + "\n"
}

// animatedSpinner runs a spinnerModel in its own bubbletea program.
type animatedSpinner struct {
	program *tea.Program
	once    sync.Once
}

// @MX:WARN: [AUTO] The program goroutine exits only after Stop sends stopMsg.
// @MX:REASON: [AUTO] Callers must pair every spinner with Stop, including on error paths.
func startSpinner(m spinnerModel, w io.Writer) *animatedSpinner {
	// The package manager owns the terminal input while the spinner runs, so
	// the program never reads stdin; Ctrl-C reaches the process as SIGINT.
	p := tea.NewProgram(m, tea.WithOutput(w), tea.WithInput(nil))
	go func() {
		_, _ = p.Run()
	}()
	return &animatedSpinner{program: p}
}

func (s *animatedSpinner) Stop() {
	s.once.Do(func() {
		s.program.Send(stopMsg{})
		s.program.Wait()
	})
}
