// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     tui
// Description: Bubbletea demo browser
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package tui is an interactive browser for the demo registry: pick a demo
// from the list, run it and read its output in a scrollable view.
package tui

import (
	"bytes"
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Tom7834/Bookstore-Patterns/internal/demo"
	"github.com/Tom7834/Bookstore-Patterns/pkg/core/i18n"
)

// mode is the screen currently shown
type mode int

const (
	modeList mode = iota
	modeOutput
)

// demoItem implements list.Item
type demoItem struct {
	demo  demo.Demo
	title string
}

func (i demoItem) Title() string       { return i.title }
func (i demoItem) Description() string { return i.demo.Name + " · " + strings.Join(i.demo.Patterns, ", ") }
func (i demoItem) FilterValue() string { return i.demo.Name + " " + i.title }

// Config holds what the browser needs to run demos
type Config struct {
	Context    context.Context
	Registry   *demo.Registry
	Env        demo.Env // Out is replaced per run
	Translator *i18n.Manager
}

// Model is the Bubbletea model of the demo browser
type Model struct {
	// State
	mode    mode
	width   int
	height  int
	running bool
	current string
	err     error

	// Components
	list     list.Model
	viewport viewport.Model
	spinner  spinner.Model

	ctx context.Context
	env demo.Env
	tr  *i18n.Manager
}

// New creates the browser model
func New(cfg Config) Model {
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	if cfg.Registry == nil {
		cfg.Registry = demo.Default()
	}

	demos := cfg.Registry.Demos()
	items := make([]list.Item, len(demos))
	for i, d := range demos {
		items[i] = demoItem{demo: d, title: cfg.Translator.T("demo." + d.Name)}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = SelectedItemStyle
	delegate.Styles.NormalTitle = ListItemStyle

	demoList := list.New(items, delegate, 80, 20)
	demoList.Title = cfg.Translator.T("tui.title")
	demoList.SetShowHelp(false)
	demoList.SetFilteringEnabled(true)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	return Model{
		mode:     modeList,
		width:    80,
		height:   24,
		list:     demoList,
		viewport: viewport.New(76, 16),
		spinner:  sp,
		ctx:      cfg.Context,
		env:      cfg.Env,
		tr:       cfg.Translator,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-2)

		headerHeight := 2 // Title
		footerHeight := 4 // Border + help
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = max(msg.Height-headerHeight-footerHeight, 3)
		return m, nil

	case spinner.TickMsg:
		if m.running {
			m.spinner, cmd = m.spinner.Update(msg)
		}
		return m, cmd

	case demoFinishedMsg:
		m.running = false
		m.current = msg.name
		m.err = msg.err
		output := msg.output
		if strings.TrimSpace(output) == "" {
			output = m.tr.T("tui.empty")
		}
		m.viewport.SetContent(output)
		m.viewport.GotoTop()
		m.mode = modeOutput
		return m, nil
	}

	if m.mode == modeList {
		m.list, cmd = m.list.Update(msg)
	} else {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	switch m.mode {
	case modeOutput:
		switch msg.String() {
		case "esc", "backspace":
			m.mode = modeList
			m.err = nil
			return m, nil
		case "q":
			return m, tea.Quit
		}
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	default:
		// keys belong to the filter input while it is open
		if m.list.FilterState() == list.Filtering {
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "enter":
			if m.running {
				return m, nil
			}
			item, ok := m.list.SelectedItem().(demoItem)
			if !ok {
				return m, nil
			}
			m.running = true
			return m, tea.Batch(m.spinner.Tick, m.run(item.demo))
		}
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
}

// run executes d off the UI loop and captures its output
func (m Model) run(d demo.Demo) tea.Cmd {
	ctx := m.ctx
	env := m.env
	return func() tea.Msg {
		var buf bytes.Buffer
		env.Out = &buf
		err := d.Run(ctx, env)
		return demoFinishedMsg{name: d.Name, output: buf.String(), err: err}
	}
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	switch m.mode {
	case modeOutput:
		title := m.tr.T("tui.output", map[string]interface{}{
			"Name":  m.current,
			"Title": m.tr.T("demo." + m.current),
		})
		b.WriteString(TitleStyle.Render(title))
		b.WriteString("\n")
		b.WriteString(BoxStyle.Width(m.width - 2).Render(m.viewport.View()))
		if m.err != nil {
			b.WriteString("\n")
			b.WriteString(ErrorStyle.Render(m.err.Error()))
		}
	default:
		b.WriteString(m.list.View())
		if m.running {
			b.WriteString("\n")
			b.WriteString(m.spinner.View())
		}
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.tr.T("tui.help")))
	return b.String()
}

// Run starts the browser on the terminal
func Run(cfg Config) error {
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	p := tea.NewProgram(New(cfg), tea.WithAltScreen(), tea.WithContext(cfg.Context))
	_, err := p.Run()
	return err
}
