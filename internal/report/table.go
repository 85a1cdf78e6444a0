// Package report renders classified comparison results for human and
// machine consumption. The terminal renderer and the CSV exporter both
// consume a finished compare.Report; neither reaches back into the
// comparison pipeline.
package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/mcncl/jsoncompare/internal/compare"
	"github.com/mcncl/jsoncompare/internal/config"
)

// TableRenderer writes the detailed field table and the summary table of a
// comparison report to a terminal-oriented writer.
type TableRenderer struct {
	out io.Writer
	cfg *config.Config
}

// NewTableRenderer creates a renderer writing to out using the given
// display configuration.
func NewTableRenderer(out io.Writer, cfg *config.Config) *TableRenderer {
	return &TableRenderer{out: out, cfg: cfg}
}

// Render prints the detailed comparison table followed by the summary and
// the two source file names.
func (r *TableRenderer) Render(rep *compare.Report) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "DETAILED FIELD COMPARISON")

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.AppendHeader(table.Row{
		"Field Name", "File 1", "File 2",
		"Value in File 1", "Value in File 2",
		"Status", "Difference",
	})
	for _, field := range rep.Fields {
		t.AppendRow(table.Row{
			field.Path,
			presence(field.InFirst),
			presence(field.InSecond),
			valueOrDash(field.First, field.InFirst),
			valueOrDash(field.Second, field.InSecond),
			r.statusCell(field.State),
			field.State.Difference(),
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMax: r.cfg.Table.FieldNameWidth},
		{Number: 4, WidthMax: r.cfg.Table.ValueWidth},
		{Number: 5, WidthMax: r.cfg.Table.ValueWidth},
	})
	t.SetStyle(r.tableStyle())
	t.Render()

	r.renderSummary(rep)

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "FILE PATHS:")
	fmt.Fprintf(r.out, "File 1: %s\n", rep.FirstName)
	fmt.Fprintf(r.out, "File 2: %s\n", rep.SecondName)
}

func (r *TableRenderer) renderSummary(rep *compare.Report) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "SUMMARY")

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.AppendHeader(table.Row{"Metric", "File 1", "File 2", "Difference"})
	t.AppendRow(table.Row{
		"Total fields", rep.TotalFirst, rep.TotalSecond,
		totalsDifference(rep.TotalFirst, rep.TotalSecond),
	})
	t.AppendRow(table.Row{"Common fields", rep.CommonFields, rep.CommonFields, 0})
	t.AppendRow(table.Row{"Unique fields", rep.OnlyInFirst, rep.OnlyInSecond, "N/A"})
	t.AppendRow(table.Row{"Different values", rep.DifferentValues, rep.DifferentValues, "N/A"})
	t.SetStyle(r.tableStyle())
	t.Render()
}

func (r *TableRenderer) tableStyle() table.Style {
	style := table.StyleLight
	style.Options.DrawBorder = false
	return style
}

func (r *TableRenderer) statusCell(state compare.FieldState) string {
	label := state.Label()
	if !r.cfg.Color {
		return label
	}
	if state == compare.CommonSame {
		return text.FgGreen.Sprint(label)
	}
	return text.FgYellow.Sprint(label)
}

func presence(in bool) string {
	if in {
		return "Yes"
	}
	return "No"
}

func valueOrDash(value string, present bool) string {
	if !present {
		return "-"
	}
	return value
}

func totalsDifference(first, second int) string {
	if first == second {
		return "Same"
	}
	diff := first - second
	if diff < 0 {
		diff = -diff
	}
	return fmt.Sprintf("%d", diff)
}
