package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dasher/internal/race"
)

// historyRows is the number of finished races shown below the play field.
const historyRows = 4

// Result describes one finished race of the session.
type Result struct {
	Outcome race.RaceState
	Elapsed float64 // Seconds
	Frames  int
}

// newHistoryTable creates the table listing finished races.
func newHistoryTable(width int) table.Model {
	columns := []table.Column{
		{Title: "Race", Width: 6},
		{Title: "Outcome", Width: 9},
		{Title: "Time", Width: 9},
		{Title: "Frames", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(historyRows),
		table.WithWidth(min(max(width, 0), 40)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// historyTableRows converts results to table rows, newest first.
func historyTableRows(results []Result) []table.Row {
	rows := make([]table.Row, 0, len(results))
	for i := len(results) - 1; i >= 0; i-- {
		r := results[i]
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Outcome.String(),
			fmt.Sprintf("%.2fs", r.Elapsed),
			fmt.Sprintf("%d", r.Frames),
		})
	}
	return rows
}
