package cli

import (
	"fmt"
	"sort"
	"strings"

	"outgo/internal/model"
)

// barWidth is the maximum width of a chart bar in cells.
const barWidth = 30

// BarRow is one labeled value in a horizontal bar chart.
type BarRow struct {
	Label string
	Cents int64
}

// RenderBarChart renders rows as a horizontal bar chart, one line per row.
// Bars are scaled so the largest value fills the full width; zero and
// negative values render no bar. Rows are drawn in the order given.
func RenderBarChart(rows []BarRow, currency string) string {
	if len(rows) == 0 {
		return SubtleStyle.Render("(no data)")
	}

	var max int64
	labelWidth := 0
	for _, row := range rows {
		if row.Cents > max {
			max = row.Cents
		}
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
	}

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}

		width := 0
		if max > 0 && row.Cents > 0 {
			width = int(row.Cents * barWidth / max)
			if width == 0 {
				width = 1
			}
		}

		b.WriteString(fmt.Sprintf("%-*s ", labelWidth, row.Label))
		b.WriteString(BarStyle.Render(strings.Repeat("█", width)))
		if width > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(SubtleStyle.Render(currency + model.FormatCents(row.Cents)))
	}

	return b.String()
}

// CategoryRows converts a per-category summary map into chart rows sorted
// by descending amount.
func CategoryRows(categories map[model.Category]int64) []BarRow {
	rows := make([]BarRow, 0, len(categories))
	for category, cents := range categories {
		rows = append(rows, BarRow{Label: category.String(), Cents: cents})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Cents != rows[j].Cents {
			return rows[i].Cents > rows[j].Cents
		}
		return rows[i].Label < rows[j].Label
	})
	return rows
}

// DailyRows converts a per-day summary map into chart rows in date order.
// Keys are "2006-01-02" strings, so lexicographic order is date order.
func DailyRows(daily map[string]int64) []BarRow {
	rows := make([]BarRow, 0, len(daily))
	for day, cents := range daily {
		rows = append(rows, BarRow{Label: day, Cents: cents})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Label < rows[j].Label })
	return rows
}
