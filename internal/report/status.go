// Package report implements the Reporter (§4.8): the per-test streaming
// status writer, the framed failure sections with rendered failure reasons
// and stack traces, the statistics table/CSV/template output, and the
// final summary line. Every write that can be reached from more than one
// worker goroutine is guarded by a single mutex, held only for the
// duration of that write (§5).
package report

import (
	"fmt"
	"io"
	"sync"

	"github.com/jedib0t/go-pretty/v6/text"

	"movetest/internal/driver"
)

// Reporter is the shared sink every Module Test Driver writes its
// PASS/FAIL/TIMEOUT lines through, and the component that renders the
// final failure sections, statistics, and summary (§4.6, §4.8).
//
// Colorize is threaded explicitly rather than read from process-wide state,
// per §9's "Global color control" design note.
type Reporter struct {
	out      io.Writer
	colorize bool
	mu       sync.Mutex
}

// New builds a Reporter writing to out. colorize controls whether
// PASS/FAIL/TIMEOUT lines carry ANSI color. It does not reach the
// statistics table: ReportStatistics colors the table headers whatever
// colorize is set to.
func New(out io.Writer, colorize bool) *Reporter {
	return &Reporter{out: out, colorize: colorize}
}

// WriteStatus implements driver.StatusWriter: one atomic status line,
// colored green/red/yellow when Reporter.colorize is set (§7).
func (r *Reporter) WriteStatus(status driver.Status, qualifiedName string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	label := status.String()
	if r.colorize {
		switch status {
		case driver.StatusPass:
			label = text.FgGreen.Sprint(label)
		case driver.StatusFail:
			label = text.FgRed.Sprint(label)
		case driver.StatusTimeout:
			label = text.FgYellow.Sprint(label)
		}
	}
	fmt.Fprintf(r.out, "%s %s\n", label, qualifiedName)
}
