package ui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"sortbench/internal/benchmark"
	"sortbench/internal/generator"
)

type sortOrder int

const (
	byScenario sortOrder = iota
	byTime
	byAlgorithm
)

var sortOrderNames = []string{"scenario", "time", "algorithm"}

var resultsTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))

// ResultsTableModel is a bubbletea model for browsing a finished run.
type ResultsTableModel struct {
	table   table.Model
	help    help.Model
	results []benchmark.Result
	format  func(seconds float64) string

	order sortOrder
	// filter is 0 for all input types, otherwise an index into
	// generator.All() plus one.
	filter int

	width  int
	height int
}

// NewResultsTableModel builds the model. format renders a median time.
func NewResultsTableModel(results []benchmark.Result, format func(seconds float64) string) ResultsTableModel {
	columns := []table.Column{
		{Title: "ALGORITHM", Width: 16},
		{Title: "INPUT TYPE", Width: 14},
		{Title: "SIZE", Width: 10},
		{Title: "TIME", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	if format == nil {
		format = func(seconds float64) string { return fmt.Sprintf("%.6fs", seconds) }
	}

	m := ResultsTableModel{
		table:   t,
		help:    help.New(),
		results: results,
		format:  format,
	}
	m.updateTableRows()
	return m
}

func (m ResultsTableModel) Init() tea.Cmd {
	return nil
}

func (m ResultsTableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(m.width)
		m.table.SetHeight(max(m.height-6, 3)) // title, status and help lines
		m.help.Width = m.width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, resultsKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, resultsKeys.Sort):
			m.order = (m.order + 1) % sortOrder(len(sortOrderNames))
			m.updateTableRows()
			return m, nil
		case key.Matches(msg, resultsKeys.Filter):
			m.filter = (m.filter + 1) % (len(generator.All()) + 1)
			m.updateTableRows()
			return m, nil
		}
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ResultsTableModel) filterName() string {
	if m.filter == 0 {
		return "all"
	}
	return generator.All()[m.filter-1].String()
}

func (m *ResultsTableModel) visible() []benchmark.Result {
	var out []benchmark.Result
	for _, r := range m.results {
		if m.filter == 0 || r.InputType == generator.All()[m.filter-1] {
			out = append(out, r)
		}
	}

	slices.SortStableFunc(out, func(a, b benchmark.Result) int {
		switch m.order {
		case byTime:
			return cmp.Compare(a.TimeSeconds, b.TimeSeconds)
		case byAlgorithm:
			return cmp.Compare(a.Algorithm, b.Algorithm)
		}
		if c := cmp.Compare(a.InputType, b.InputType); c != 0 {
			return c
		}
		if c := cmp.Compare(a.InputSize, b.InputSize); c != 0 {
			return c
		}
		return cmp.Compare(a.TimeSeconds, b.TimeSeconds)
	})
	return out
}

func (m *ResultsTableModel) updateTableRows() {
	rows := []table.Row{}
	for _, r := range m.visible() {
		rows = append(rows, table.Row{
			r.Algorithm,
			r.InputType.String(),
			humanize.Comma(int64(r.InputSize)),
			m.format(r.TimeSeconds),
		})
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

func (m ResultsTableModel) View() string {
	var s strings.Builder
	s.WriteString(resultsTitleStyle.Render(" Sorting Benchmark Results") + "\n")
	fmt.Fprintf(&s, "Filter: %s | Sort: %s | %d of %d results\n\n",
		m.filterName(), sortOrderNames[m.order], len(m.table.Rows()), len(m.results))
	s.WriteString(m.table.View())
	s.WriteString("\n" + m.help.View(resultsKeys))
	return s.String()
}

// StartResultsTable runs the results browser until the user quits.
var StartResultsTable = func(results []benchmark.Result, format func(seconds float64) string) error {
	p := tea.NewProgram(NewResultsTableModel(results, format), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
