package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"movetest/internal/model"
)

// statRow is one row of the statistics output, passed and failed tests
// alike (§4.8 item 2).
type statRow struct {
	Name  string
	Nanos int64
	Gas   uint64
}

func collectRows(tr TestResults) []statRow {
	var rows []statRow
	for _, mod := range tr.Stats.SortedModules() {
		for _, info := range tr.Stats.Passed[mod] {
			rows = append(rows, statRow{Name: info.Function, Nanos: info.Elapsed.Nanoseconds(), Gas: info.Instructions})
		}
		for _, f := range tr.Stats.Failed[mod] {
			rows = append(rows, statRow{Name: f.Info.Function, Nanos: f.Info.Elapsed.Nanoseconds(), Gas: f.Info.Instructions})
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}

// ReportStatistics renders the per-test timing/gas table in the requested
// format (§6): "csv" emits the header `name,nanos,gas` with only passed
// tests; "template" renders tr through a user-supplied Go template with
// sprig's function map; anything else (including the default "table")
// falls back to the box-drawing table of both passed and failed tests. An
// unrecognized format warns on stderr before falling through to the table
// (§6).
func ReportStatistics(w io.Writer, tr TestResults, format, templateText string) {
	switch format {
	case "csv":
		writeCSV(w, tr)
	case "table", "":
		writeTable(w, tr)
	case "template":
		if err := writeTemplate(w, tr, templateText); err != nil {
			fmt.Fprintf(os.Stderr, "movetest: template report failed: %v; falling back to table\n", err)
			writeTable(w, tr)
		}
	default:
		fmt.Fprintf(os.Stderr, "movetest: unknown report format %q, falling back to table\n", format)
		writeTable(w, tr)
	}
}

// writeCSV emits header `name,nanos,gas`; one row per passed test. Failed
// tests are omitted from CSV (§6).
func writeCSV(w io.Writer, tr TestResults) {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	_ = cw.Write([]string{"name", "nanos", "gas"})
	for _, mod := range tr.Stats.SortedModules() {
		infos := append([]model.TestRunInfo{}, tr.Stats.Passed[mod]...)
		sort.Slice(infos, func(i, j int) bool { return infos[i].Function < infos[j].Function })
		for _, info := range infos {
			_ = cw.Write([]string{info.Function, fmt.Sprintf("%d", info.Elapsed.Nanoseconds()), fmt.Sprintf("%d", info.Instructions)})
		}
	}
}

func writeTable(w io.Writer, tr TestResults) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("FUNCTION"),
		text.FgHiCyan.Sprint("TIME (s)"),
		text.FgHiCyan.Sprint("GAS"),
	})

	for _, row := range collectRows(tr) {
		t.AppendRow(table.Row{row.Name, fmt.Sprintf("%.6f", float64(row.Nanos)/1e9), row.Gas})
	}
	t.Render()
}

const defaultReportTemplate = `{{- range . }}
{{ .Name }}	{{ .Nanos }}ns	{{ .Gas }}gas
{{- end }}
`

func writeTemplate(w io.Writer, tr TestResults, templateText string) error {
	if templateText == "" {
		templateText = defaultReportTemplate
	}
	tmpl, err := template.New("report").Funcs(sprig.TxtFuncMap()).Parse(templateText)
	if err != nil {
		return fmt.Errorf("parsing report template: %w", err)
	}
	return tmpl.Execute(w, collectRows(tr))
}
