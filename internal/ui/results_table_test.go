package ui

import (
	"fmt"
	"testing"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sortbench/internal/benchmark"
	"sortbench/internal/generator"
)

func tableResults() []benchmark.Result {
	return []benchmark.Result{
		{Algorithm: "Quick Sort", InputSize: 1000, InputType: generator.Random, TimeSeconds: 0.002},
		{Algorithm: "Merge Sort", InputSize: 1000, InputType: generator.Random, TimeSeconds: 0.001},
		{Algorithm: "Heap Sort", InputSize: 10, InputType: generator.Sorted, TimeSeconds: 0.003},
		{Algorithm: "Insertion Sort", InputSize: 10, InputType: generator.Reverse, TimeSeconds: 0.0005},
	}
}

func ms(seconds float64) string { return fmt.Sprintf("%.1f ms", seconds*1000) }

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m ResultsTableModel, msg tea.Msg) (ResultsTableModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(ResultsTableModel)
	require.True(t, ok)
	return model, cmd
}

func TestResultsTableModelInitialRows(t *testing.T) {
	m := NewResultsTableModel(tableResults(), ms)

	rows := m.table.Rows()
	require.Len(t, rows, 4)
	// Scenario order: input type, then size, then time.
	assert.Equal(t, table.Row{"Merge Sort", "Random", "1,000", "1.0 ms"}, rows[0])
	assert.Equal(t, table.Row{"Quick Sort", "Random", "1,000", "2.0 ms"}, rows[1])
	assert.Equal(t, table.Row{"Heap Sort", "Sorted", "10", "3.0 ms"}, rows[2])
	assert.Equal(t, "Insertion Sort", rows[3][0])
	assert.Nil(t, m.Init())
}

func TestResultsTableModelView(t *testing.T) {
	ConfigureColor(true)
	m := NewResultsTableModel(tableResults(), ms)

	view := m.View()

	assert.Contains(t, view, "Sorting Benchmark Results")
	assert.Contains(t, view, "Filter: all | Sort: scenario | 4 of 4 results")
	assert.Contains(t, view, "ALGORITHM")
	assert.Contains(t, view, "Merge Sort")
	assert.Contains(t, view, "q quit")
}

func TestResultsTableModelSortCycle(t *testing.T) {
	m := NewResultsTableModel(tableResults(), ms)

	m, _ = update(t, m, runeKey('s'))
	assert.Equal(t, byTime, m.order)
	assert.Equal(t, "Insertion Sort", m.table.Rows()[0][0])
	assert.Equal(t, "Heap Sort", m.table.Rows()[3][0])

	m, _ = update(t, m, runeKey('s'))
	assert.Equal(t, byAlgorithm, m.order)
	assert.Equal(t, "Heap Sort", m.table.Rows()[0][0])
	assert.Contains(t, m.View(), "Sort: algorithm")

	m, _ = update(t, m, runeKey('s'))
	assert.Equal(t, byScenario, m.order)
}

func TestResultsTableModelFilterCycle(t *testing.T) {
	m := NewResultsTableModel(tableResults(), ms)

	m, _ = update(t, m, runeKey('f'))
	require.Len(t, m.table.Rows(), 2)
	assert.Contains(t, m.View(), "Filter: Random | Sort: scenario | 2 of 4 results")

	m, _ = update(t, m, runeKey('f'))
	require.Len(t, m.table.Rows(), 1)
	assert.Equal(t, "Heap Sort", m.table.Rows()[0][0])

	m, _ = update(t, m, runeKey('f'))
	m, _ = update(t, m, runeKey('f'))
	assert.Empty(t, m.table.Rows())
	assert.Contains(t, m.View(), "Filter: Nearly Sorted")

	m, _ = update(t, m, runeKey('f'))
	assert.Len(t, m.table.Rows(), 4)
}

func TestResultsTableModelNavigation(t *testing.T) {
	m := NewResultsTableModel(tableResults(), ms)
	assert.Equal(t, 0, m.table.Cursor())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.table.Cursor())

	m, _ = update(t, m, runeKey('j'))
	assert.Equal(t, 2, m.table.Cursor())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, m.table.Cursor())

	// Re-sorting resets the selection.
	m, _ = update(t, m, runeKey('s'))
	assert.Equal(t, 0, m.table.Cursor())
}

func TestResultsTableModelWindowSize(t *testing.T) {
	m := NewResultsTableModel(tableResults(), ms)

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Nil(t, cmd)
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 120, m.help.Width)
	assert.Contains(t, m.View(), "Merge Sort")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 4})
	assert.Contains(t, m.View(), "ALGORITHM")
}

func TestResultsTableModelQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		t.Run(msg.String(), func(t *testing.T) {
			_, cmd := update(t, NewResultsTableModel(tableResults(), ms), msg)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestResultsTableModelDefaultFormat(t *testing.T) {
	m := NewResultsTableModel(tableResults()[:1], nil)
	assert.Equal(t, "0.002000s", m.table.Rows()[0][3])
}
