// Package tui provides the interactive terminal UI: a single search view
// whose results update live as the user types. Keystrokes go through the
// search session's debounce coordinator, so a rapid burst of input runs
// one query; superseded and stale outcomes are dropped by generation.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RonaldoArSan/clinicflow25-sub001/internal/core/domain"
	"github.com/RonaldoArSan/clinicflow25-sub001/internal/core/ports/driving"
)

// searchOutcomeMsg delivers a settled search outcome to the update loop.
type searchOutcomeMsg struct {
	outcome driving.SearchOutcome
}

// Model is the bubbletea model for the live search view.
type Model struct {
	service driving.SearchService

	input     textinput.Model
	results   []domain.SearchResult
	cursor    int
	width     int
	height    int
	searching bool
	lastGen   uint64
	err       error
}

// NewModel creates the search view bound to a search session.
func NewModel(service driving.SearchService) *Model {
	input := textinput.New()
	input.Placeholder = "Search patients, appointments, doctors..."
	input.Prompt = "> "
	input.Focus()

	return &Model{
		service: service,
		input:   input,
	}
}

// Init starts the cursor blink.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the search view.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case tea.KeyDown:
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			return m, tea.Batch(cmd, m.submit(m.input.Value()))
		}
		return m, cmd

	case searchOutcomeMsg:
		m.applyOutcome(msg.outcome)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit sends the current query through the debounced search session and
// waits for its single outcome.
func (m *Model) submit(query string) tea.Cmd {
	m.searching = true
	ch := m.service.Search(context.Background(), domain.SearchOptions{Query: query})
	return func() tea.Msg {
		return searchOutcomeMsg{outcome: <-ch}
	}
}

// applyOutcome folds a settled outcome into the view, dropping superseded
// and out-of-order generations.
func (m *Model) applyOutcome(outcome driving.SearchOutcome) {
	if outcome.Superseded {
		return
	}
	if outcome.Generation < m.lastGen {
		return
	}
	m.lastGen = outcome.Generation
	m.searching = false

	if outcome.Err != nil {
		m.err = outcome.Err
		return
	}
	m.err = nil
	m.results = outcome.Results
	if m.cursor >= len(m.results) {
		m.cursor = 0
	}
}

// View renders the search view.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("clinicsearch"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))

	case m.searching:
		b.WriteString(dimStyle.Render("Searching..."))

	case strings.TrimSpace(m.input.Value()) == "":
		b.WriteString(m.renderHistory())

	case len(m.results) == 0:
		b.WriteString(dimStyle.Render("No results."))

	default:
		b.WriteString(m.renderResults())
	}

	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("↑/↓ navigate · esc quit"))
	return b.String()
}

// renderHistory shows recent queries while the input is empty.
func (m *Model) renderHistory() string {
	queries := m.service.RecentQueries()
	if len(queries) == 0 {
		return dimStyle.Render("Type to search.")
	}

	var b strings.Builder
	b.WriteString(dimStyle.Render("Recent searches:"))
	b.WriteString("\n")
	for _, q := range queries {
		b.WriteString("  " + q + "\n")
	}
	return b.String()
}

// renderResults lists the current result page, emphasising the matched
// title span.
func (m *Model) renderResults() string {
	var b strings.Builder
	for i := range m.results {
		r := &m.results[i]

		line := renderTitle(r.Title, r.Highlights)
		line += dimStyle.Render("  " + string(r.Type))
		if r.Subtitle != "" {
			line += dimStyle.Render(" · " + r.Subtitle)
		}

		if i == m.cursor {
			b.WriteString(selectedStyle.Render("▸ " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderTitle bolds the highlighted span inside the title, when present.
func renderTitle(title string, highlights []string) string {
	if len(highlights) == 0 {
		return title
	}
	span := highlights[0]
	idx := strings.Index(title, span)
	if idx < 0 {
		return title
	}
	return title[:idx] + highlightStyle.Render(span) + title[idx+len(span):]
}
