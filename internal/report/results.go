package report

import (
	"fmt"
	"io"
	"strings"

	"movetest/internal/model"
)

// TestResults is the operation-level output named in §6: the accumulated
// statistics plus the TestPlan needed to resolve stack traces.
type TestResults struct {
	Stats model.TestStatistics
	Plan  model.TestPlan
}

// Summarize renders the failure sections (§4.8 item 1) followed by the
// summary line (§4.8 item 3), and reports whether the run had zero
// failures (§6, §8).
func (tr TestResults) Summarize(w io.Writer) bool {
	for _, mod := range tr.Stats.SortedModules() {
		fails := tr.Stats.Failed[mod]
		if len(fails) == 0 {
			continue
		}
		for _, f := range fails {
			writeFailureBlock(w, mod, f, tr)
		}
	}

	total := tr.Stats.Total()
	passed := tr.Stats.TotalPassed()
	failed := tr.Stats.TotalFailed()

	status := "OK"
	if failed > 0 {
		status = "FAILED"
	}
	fmt.Fprintf(w, "%s. Total: %d, Passed: %d, Failed: %d\n", status, total, passed, failed)

	return failed == 0
}

// writeFailureBlock renders one framed sub-block per failing test (§4.8,
// §7): "┌── <name> ──" / the rendered reason, each line prefixed / a stack
// trace when available / captured output when available /
// "└──────────────────".
func writeFailureBlock(w io.Writer, mod model.ModuleID, f model.TestFailure, tr TestResults) {
	fmt.Fprintf(w, "┌── %s ──\n", f.Info.Function)

	for _, line := range strings.Split(renderReason(f), "\n") {
		fmt.Fprintf(w, "│ %s\n", line)
	}

	if trace := renderStackTrace(f.VMErr, tr.Plan); trace != "" {
		fmt.Fprintln(w, "│")
		for _, line := range strings.Split(trace, "\n") {
			fmt.Fprintf(w, "│ %s\n", line)
		}
	}

	if output := tr.Stats.Output[f.Info.Function]; output != "" {
		fmt.Fprintln(w, "│")
		fmt.Fprintln(w, "│ output:")
		for _, line := range strings.Split(output, "\n") {
			fmt.Fprintf(w, "│   %s\n", line)
		}
	}

	fmt.Fprintln(w, "└──────────────────")
}
