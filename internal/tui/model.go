// Package tui plays Yatzy in a full-screen terminal interface built on
// Bubble Tea.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/yatzy/internal/game"
)

const sidebarWidth = 28

// answer is a line submitted by the player, or a quit request.
type answer struct {
	text string
	quit bool
}

// logMsg appends lines to the game log.
type logMsg struct {
	lines []string
}

// promptMsg asks the player for a line of input.
type promptMsg struct {
	text        string
	placeholder string
}

// playerMsg updates one player's line in the sidebar.
type playerMsg struct {
	player game.Snapshot
}

// Model is the Bubble Tea model. All state changes happen in Update; the
// game goroutine talks to it only through messages and the answers channel.
type Model struct {
	logger *log.Logger

	logViewport viewport.Model
	input       textinput.Model

	lines     []string
	prompt    string
	waiting   bool
	standings []game.Snapshot
	answers   chan<- answer

	width    int
	height   int
	quitting bool
}

func newModel(answers chan<- answer, logger *log.Logger) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 40
	ti.Width = 40
	ti.Prompt = "> "
	ti.PromptStyle = PromptStyle

	return &Model{
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		input:       ti,
		answers:     answers,
	}
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case logMsg:
		m.appendLines(msg.lines...)

	case promptMsg:
		m.prompt = msg.text
		m.input.Placeholder = msg.placeholder
		m.waiting = true

	case playerMsg:
		m.upsertPlayer(msg.player)

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			m.submit(answer{quit: true})
			return m, tea.Quit
		case tea.KeyEnter:
			if m.waiting {
				text := m.input.Value()
				m.appendLines(EchoStyle.Render(m.prompt + text))
				m.input.SetValue("")
				m.waiting = false
				m.submit(answer{text: text})
			}
			return m, nil
		case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.logViewport, cmd = m.logViewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit hands an answer to the game goroutine without ever blocking the UI.
func (m *Model) submit(a answer) {
	select {
	case m.answers <- a:
	default:
		m.logger.Warn("Dropped input, game is not waiting", "input", a.text, "quit", a.quit)
	}
}

// upsertPlayer replaces the sidebar entry with the same name, or appends one
// so players are listed in the order they first appear.
func (m *Model) upsertPlayer(p game.Snapshot) {
	for i := range m.standings {
		if m.standings[i].Name == p.Name {
			m.standings[i] = p
			return
		}
	}
	m.standings = append(m.standings, p)
}

func (m *Model) appendLines(lines ...string) {
	m.lines = append(m.lines, lines...)
	m.logViewport.SetContent(strings.Join(m.lines, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

func (m *Model) resize() {
	// Borders take two columns and rows per pane; the input pane is three rows.
	m.logViewport.Width = max(m.width-sidebarWidth-4, 1)
	m.logViewport.Height = max(m.height-7, 1)
	m.logViewport.GotoBottom()
}

// Lines returns the game log.
func (m *Model) Lines() []string {
	return m.lines
}

// Standings returns the sidebar entries.
func (m *Model) Standings() []game.Snapshot {
	return m.standings
}

// Waiting reports whether the model is collecting an answer.
func (m *Model) Waiting() bool {
	return m.waiting
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	logPane := paneStyle.
		Width(m.logViewport.Width).
		Height(m.logViewport.Height).
		Render(m.logViewport.View())

	sidebar := paneStyle.
		Width(sidebarWidth - 2).
		Height(m.logViewport.Height).
		Render(m.renderStandings())

	inputStyle := paneStyle
	if m.waiting {
		inputStyle = focusedPaneStyle
	}
	inputPane := inputStyle.
		Width(max(m.width-2, 1)).
		Render(m.renderInput())

	top := lipgloss.JoinHorizontal(lipgloss.Top, logPane, sidebar)
	return lipgloss.JoinVertical(lipgloss.Left, top, inputPane)
}

func (m *Model) renderStandings() string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(" Scores "))
	sb.WriteString("\n\n")
	for _, p := range m.standings {
		sb.WriteString(PlayerStyle.Render(fmt.Sprintf("%-12s %4d", truncate(p.Name, 12), p.Total)))
		sb.WriteString("\n")
		sb.WriteString(InfoStyle.Render(fmt.Sprintf("  upper %d, %d left", p.Upper, p.Remaining)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m *Model) renderInput() string {
	if !m.waiting {
		return InfoStyle.Render("Waiting... (Ctrl+C to quit)")
	}
	return PromptStyle.Render(m.prompt) + m.input.View()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
