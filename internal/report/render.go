package report

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Render draws the table with Unicode box drawing, or plain ASCII when
// ascii is set. The title sits italic in the corner cell; reference
// temperatures are bold. Cells render to one decimal; supersaturated
// projections (>100%) are shown as-is.
func (t Table) Render(ascii bool) string {
	w := table.NewWriter()

	style := table.StyleLight
	if ascii {
		style = table.StyleDefault
	}
	style.Format.Header = text.FormatDefault
	w.SetStyle(style)

	header := table.Row{text.Italic.Sprint(t.Title)}
	for _, ref := range t.References {
		header = append(header, text.Bold.Sprint(FormatReference(ref)))
	}
	w.AppendHeader(header)

	for _, r := range t.Rows {
		row := table.Row{fmt.Sprintf("%s (%.1f°C)", r.Label, r.Temperature)}
		for _, p := range r.Projected {
			row = append(row, fmt.Sprintf("%.1f%%", p))
		}
		w.AppendRow(row)
	}

	return w.Render()
}
