// Package tui collects relevance judgments from the user: a Bubble Tea
// screen driven one document at a time, plus a plain stdin prompter for
// non-interactive terminals.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"qexpand/internal/domain"
)

// ErrAborted is returned when the user quits before judging the whole
// batch.
var ErrAborted = errors.New("judging aborted")

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	docBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	urlStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	nonHTMLStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	yesStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	noStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// Model steps through a batch asking y/n for each document.
type Model struct {
	iteration int
	query     string
	batch     domain.Batch
	answers   []bool
	cursor    int
	viewport  viewport.Model
	ready     bool
	done      bool
	aborted   bool
}

// NewModel creates a judgment screen for one iteration's batch.
func NewModel(iteration int, query string, batch domain.Batch) Model {
	return Model{
		iteration: iteration,
		query:     query,
		batch:     batch,
		answers:   make([]bool, len(batch)),
		viewport:  viewport.New(0, 0),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update handles key and window events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, bh := docBoxStyle.GetFrameSize()
		reserved := 3 + bh // header, progress, hint
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = vh
		m.viewport.SetContent(m.renderCurrentDoc())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			m.aborted = true
			return m, tea.Quit
		}
		switch msg.String() {
		case "q", "esc":
			m.aborted = true
			return m, tea.Quit
		case "y", "n":
			m.answers[m.cursor] = msg.String() == "y"
			m.cursor++
			if m.cursor >= len(m.batch) {
				m.done = true
				return m, tea.Quit
			}
			m.viewport.SetContent(m.renderCurrentDoc())
			m.viewport.GotoTop()
			return m, nil
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View renders the judgment screen.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := headerStyle.Render(fmt.Sprintf("Iteration %d — query: %s", m.iteration, m.query))
	progress := statusStyle.Render(fmt.Sprintf("Document %d/%d", m.cursor+1, len(m.batch)))
	hint := urlStyle.Render("y: relevant  n: not relevant  q: abort  ↑/↓: scroll")
	return header + "\n" + progress + "\n" + docBoxStyle.Render(m.viewport.View()) + "\n" + hint
}

func (m Model) renderCurrentDoc() string {
	if m.cursor >= len(m.batch) {
		return ""
	}
	doc := m.batch[m.cursor]
	var b strings.Builder
	b.WriteString(titleStyle.Render(doc.Title))
	b.WriteString("\n")
	b.WriteString(urlStyle.Render(doc.URL))
	if !doc.Indexable {
		b.WriteString("  " + nonHTMLStyle.Render("[non-HTML]"))
	}
	b.WriteString("\n\n")
	b.WriteString(doc.Snippet)
	return b.String()
}

// Judge is the interactive domain.Judge backed by the Bubble Tea model.
type Judge struct{}

// NewJudge creates the interactive judge.
func NewJudge() *Judge { return &Judge{} }

// Judge runs the judgment screen for one batch and returns the aligned
// answers, or ErrAborted if the user quit early.
func (j *Judge) Judge(ctx context.Context, iteration int, query string, batch domain.Batch) ([]bool, error) {
	final, err := tea.NewProgram(NewModel(iteration, query, batch), tea.WithContext(ctx)).Run()
	if err != nil {
		return nil, err
	}
	m, ok := final.(Model)
	if !ok || !m.done || m.aborted {
		return nil, ErrAborted
	}
	return m.answers, nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
