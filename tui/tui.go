// Package tui is a full-screen bubbletea session over a session.Controller.
//
// Commands typed at the prompt:
//
//	path <src> <dst>   find and highlight the shortest route
//	down <node>        take every edge of node down
//	restore <node>     bring them back up
//	quit
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/render"
	"github.com/katalvlaran/lvroute/session"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginLeft(2)

	graphBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#FFFF00")).
			Padding(0, 1)

	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).MarginLeft(2)
)

type keyMap struct {
	Enter key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "run command"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Enter, k.Quit} }
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Enter, k.Quit}} }

// Model is the bubbletea model.
type Model struct {
	c      *session.Controller
	layout render.Layout
	input  textinput.Model
	help   help.Model
	keys   keyMap

	cols, rows int
	hops       []dijkstra.Hop
	status     string
	statusErr  bool
}

// New returns a model drawing the graph on a cols×rows panel.
func New(c *session.Controller, layout render.Layout, cols, rows int) Model {
	ti := textinput.New()
	ti.Placeholder = "path U Z | down X | restore X | quit"
	ti.CharLimit = 120
	ti.Width = 50
	ti.Focus()

	return Model{
		c:      c,
		layout: layout,
		input:  ti,
		help:   help.New(),
		keys:   keys,
		cols:   cols,
		rows:   rows,
		status: "vertices: " + strings.Join(c.Names(), " "),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Enter):
			line := m.input.Value()
			m.input.Reset()
			return m.execute(line)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

// execute runs one command line.
func (m Model) execute(line string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return m, nil
	}

	switch cmd, args := strings.ToLower(fields[0]), fields[1:]; {
	case cmd == "quit" || cmd == "exit" || cmd == "q":
		return m, tea.Quit
	case cmd == "path" && len(args) == 2:
		r, err := m.c.FindRoute(args[0], args[1])
		if err != nil {
			return m.fail(err), nil
		}
		if !r.Reachable {
			m.hops = nil
			return m.fail(fmt.Errorf("%s to %s is unreachable. Cost is: inf", r.Source, r.Dest)), nil
		}
		m.hops = r.Path.Hops
		m.status, m.statusErr = fmt.Sprintf("%s (cost %d)", r.Path, r.Cost), false
	case (cmd == "down" || cmd == "restore") && len(args) == 1:
		op := m.c.Down
		if cmd == "restore" {
			op = m.c.Restore
		}
		if err := op(args[0]); err != nil {
			return m.fail(err), nil
		}
		m.hops = nil
		m.status, m.statusErr = fmt.Sprintf("%s %s; down: [%s]", cmd, args[0], strings.Join(m.c.DownNames(), " ")), false
	default:
		return m.fail(fmt.Errorf("unknown command %q", line)), nil
	}

	return m, nil
}

func (m Model) fail(err error) Model {
	m.status, m.statusErr = err.Error(), true
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("lvroute · session " + m.c.ID()[:8]))
	b.WriteString("\n\n")

	scene, err := render.NewScene(m.c.Snapshot(), m.hops, m.layout, float64(m.cols), float64(m.rows))
	if err != nil {
		b.WriteString(errorStyle.Render(err.Error()))
	} else {
		b.WriteString(graphBoxStyle.Render(render.Draw(scene, m.cols, m.rows)))
	}
	b.WriteString("\n\n")

	if m.statusErr {
		b.WriteString(errorStyle.Render(m.status))
	} else {
		b.WriteString(successStyle.Render(m.status))
	}
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Run starts the program on the terminal and blocks until quit or ctx is done.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(m, opts...).Run()

	return err
}
