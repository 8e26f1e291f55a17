// Package tui provides a Bubble Tea terminal user interface for marc-holdings.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/marc-holdings/internal/config"
	"github.com/handiism/marc-holdings/internal/convert"
	"github.com/handiism/marc-holdings/internal/render"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	fileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

const maxLogs = 10

var errCancelled = errors.New("cancelled by user")

// State represents the current UI state.
type State int

const (
	StatePicking State = iota
	StateLoading
	StateConverting
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   convert.ProgressLevel
}

// eventBuffer collects progress events from conversion goroutines until the
// next tick drains them into the model.
type eventBuffer struct {
	mu     sync.Mutex
	events []convert.ProgressEvent
}

func (b *eventBuffer) push(event convert.ProgressEvent) {
	b.mu.Lock()
	b.events = append(b.events, event)
	b.mu.Unlock()
}

func (b *eventBuffer) drain() []convert.ProgressEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	events := b.events
	b.events = nil
	return events
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	picker   filepicker.Model
	spinner  spinner.Model
	progress progress.Model
	settings *config.Settings
	logger   *slog.Logger
	events   *eventBuffer
	logs     []LogEntry
	selected string
	output   string
	notice   string
	err      error

	// Conversion context
	ctx    context.Context
	cancel context.CancelFunc

	manager *convert.Manager

	// Conversion progress
	processed int32
	total     int32
	converted int32
	skipped   int32

	// Options
	format        render.Format
	keepUnmatched bool
	dryRun        bool
	verbose       bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings, logger *slog.Logger) Model {
	fp := filepicker.New()
	fp.AllowedTypes = settings.AllowedExtensions
	fp.CurrentDirectory = settings.StartDirectory

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:         StatePicking,
		picker:        fp,
		spinner:       sp,
		progress:      prog,
		settings:      settings,
		logger:        logger,
		events:        &eventBuffer{},
		logs:          make([]LogEntry, 0),
		ctx:           ctx,
		cancel:        cancel,
		format:        settings.Format(),
		keepUnmatched: settings.KeepUnmatched,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.picker.Init(), m.spinner.Tick)
}

// Message types
type (
	// InitDoneMsg is sent when the input file has been read.
	InitDoneMsg struct {
		Manager *convert.Manager
		Err     error
	}

	// ConvertDoneMsg is sent when conversion and writing complete.
	ConvertDoneMsg struct {
		Output string
		Err    error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateConverting || m.state == StateLoading {
				m.cancel()
				m.state = StateError
				m.err = errCancelled
				return m, nil
			}

		case "f":
			if m.state == StatePicking {
				m.format = nextFormat(m.format)
			}

		case "u":
			if m.state == StatePicking {
				m.keepUnmatched = !m.keepUnmatched
			}

		case "d":
			if m.state == StatePicking {
				m.dryRun = !m.dryRun
			}

		case "v":
			if m.state == StatePicking {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StatePicking || m.state == StateComplete || m.state == StateError {
				m.cancel()
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				m.reset()
				return m, m.picker.Init()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case InitDoneMsg:
		m.collectEvents()
		if m.state != StateLoading {
			return m, nil
		}
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			return m, nil
		}
		m.manager = msg.Manager
		m.state = StateConverting
		cmds = append(cmds, m.startConversion(), m.tickProgress())

	case ConvertDoneMsg:
		m.collectEvents()
		m.updateCounters()
		switch {
		case m.ctx.Err() != nil:
			m.state = StateError
			m.err = errCancelled
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
			m.output = msg.Output
		}

	case TickMsg:
		m.collectEvents()
		if m.manager != nil && m.state == StateConverting {
			m.updateCounters()

			var percent float64
			if m.total > 0 {
				percent = float64(m.processed) / float64(m.total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	if m.state == StatePicking {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		cmds = append(cmds, cmd)

		if ok, path := m.picker.DidSelectFile(msg); ok {
			m.selected = path
			m.notice = ""
			m.state = StateLoading
			cmds = append(cmds, m.initializeConversion(), m.spinner.Tick)
		} else if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
			m.notice = fmt.Sprintf("%s is not a MARC file (%s)", filepath.Base(path), strings.Join(m.settings.AllowedExtensions, ", "))
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) reset() {
	m.state = StatePicking
	m.logs = nil
	m.err = nil
	m.notice = ""
	m.selected = ""
	m.output = ""
	m.processed, m.total, m.converted, m.skipped = 0, 0, 0, 0
	m.manager = nil
	m.events.drain()
	m.ctx, m.cancel = context.WithCancel(context.Background())
}

func (m *Model) collectEvents() {
	for _, event := range m.events.drain() {
		if event.Level == convert.LevelVerbose && !m.verbose {
			continue
		}
		m.logs = append(m.logs, LogEntry{Message: event.Message, Level: event.Level})
	}
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
}

func (m *Model) updateCounters() {
	if m.manager == nil {
		return
	}
	m.processed, m.total, m.converted, m.skipped = m.manager.GetProgress()
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

func nextFormat(f render.Format) render.Format {
	names := render.FormatNames()
	for i, name := range names {
		if name == f.String() {
			next, _ := render.ParseFormat(names[(i+1)%len(names)])
			return next
		}
	}
	return render.FormatText
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("MARC Holdings"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Convert 866 holdings statements into 863/853 fields"))
	b.WriteString("\n\n")

	switch m.state {
	case StatePicking:
		b.WriteString(m.viewPicking())
	case StateLoading:
		b.WriteString(m.viewLoading())
	case StateConverting:
		b.WriteString(m.viewConverting())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewPicking() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Pick a MARC file:"))
	b.WriteString("\n\n")
	b.WriteString(m.picker.View())
	b.WriteString("\n\n")

	if m.notice != "" {
		b.WriteString(warningStyle.Render(m.notice))
		b.WriteString("\n\n")
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Output format: %s (f)\n", m.format))
	b.WriteString(fmt.Sprintf("  %s Keep records without 866 (u)\n", checkbox(m.keepUnmatched)))
	b.WriteString(fmt.Sprintf("  %s Dry run, don't write output (d)\n", checkbox(m.dryRun)))
	b.WriteString(fmt.Sprintf("  %s Verbose output (v)\n", checkbox(m.verbose)))

	return b.String()
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (m Model) viewLoading() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Reading " + filepath.Base(m.selected) + "..."))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewConverting() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(fileStyle.Render(m.selected))
	b.WriteString("\n\n")

	var percent float64
	if m.total > 0 {
		percent = float64(m.processed) / float64(m.total)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf(
		"Records: %d/%d | Converted: %d | Skipped: %d",
		m.processed,
		m.total,
		m.converted,
		m.skipped,
	)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	output := m.output
	if m.dryRun {
		output = "(dry run, nothing written)"
	}

	box := boxStyle.Render(fmt.Sprintf(
		"Conversion Complete!\n\n"+
			"Input: %s\n"+
			"Records: %d\n"+
			"Converted: %d\n"+
			"Skipped: %d\n"+
			"Output: %s",
		filepath.Base(m.selected),
		m.total,
		m.converted,
		m.skipped,
		output,
	))
	b.WriteString(box)
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case convert.LevelError:
			style = errorStyle
			prefix = "✗"
		case convert.LevelWarning:
			style = warningStyle
			prefix = "!"
		case convert.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case convert.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StatePicking:
		return "enter: select • f: format • u: keep unmatched • d: dry run • v: verbose • q: quit"
	case StateLoading, StateConverting:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: convert another • q: quit"
	}
	return ""
}

// runSettings returns a copy of the settings with the UI options applied.
func (m Model) runSettings() *config.Settings {
	s := *m.settings
	s.OutputFormat = m.format.String()
	s.KeepUnmatched = m.keepUnmatched
	return &s
}

// initializeConversion reads the selected file and creates the manager.
func (m Model) initializeConversion() tea.Cmd {
	ctx, path, events := m.ctx, m.selected, m.events
	manager := convert.NewManager(m.runSettings(), m.logger, events.push)

	return func() tea.Msg {
		if err := manager.Initialize(ctx, path); err != nil {
			return InitDoneMsg{Err: err}
		}
		return InitDoneMsg{Manager: manager}
	}
}

// startConversion converts all records in the background and writes the
// result unless this is a dry run.
func (m Model) startConversion() tea.Cmd {
	ctx, manager, dryRun := m.ctx, m.manager, m.dryRun

	return func() tea.Msg {
		if manager == nil {
			return ConvertDoneMsg{Err: convert.ErrNotInitialized}
		}
		if err := manager.Convert(ctx); err != nil {
			return ConvertDoneMsg{Err: err}
		}
		if dryRun {
			return ConvertDoneMsg{}
		}
		path, err := manager.Write(ctx, "")
		return ConvertDoneMsg{Output: path, Err: err}
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings, logger *slog.Logger) error {
	p := tea.NewProgram(NewModel(settings, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
