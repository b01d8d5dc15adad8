// Package driver implements the Module Test Driver (§4.6): it iterates the
// tests of one ModuleTestPlan in declaration order, routes each through the
// Cross-Backend Adjudicator, falls through to the Outcome Matcher when the
// adjudicator has not settled the verdict itself, and accumulates the
// module's TestStatistics.
package driver

import (
	"movetest/internal/adjudicator"
	"movetest/internal/matcher"
	"movetest/internal/model"
)

// Status is the three-way streaming verdict emitted for each test (§4.6).
type Status int

const (
	StatusPass Status = iota
	StatusFail
	StatusTimeout
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "PASS"
	case StatusFail:
		return "FAIL"
	case StatusTimeout:
		return "TIMEOUT"
	default:
		return "UNKNOWN"
	}
}

// StatusWriter receives one atomic status line per completed test. A single
// writer is shared by every worker in the Parallel Test Runner; lines from
// different modules may interleave, but each line is atomic and lines
// within one module stay in test order (§5).
type StatusWriter interface {
	WriteStatus(status Status, qualifiedName string)
}

// Driver runs every test of one module end-to-end and owns no state beyond
// its adjudicator and the shared status writer.
type Driver struct {
	Adjudicator *adjudicator.Adjudicator
	Writer      StatusWriter
}

// New builds a Driver.
func New(adj *adjudicator.Adjudicator, writer StatusWriter) *Driver {
	return &Driver{Adjudicator: adj, Writer: writer}
}

// RunModule executes every test in mtp in declaration order and returns the
// module's local TestStatistics, keyed only under mtp.Module.
func (d *Driver) RunModule(mtp model.ModuleTestPlan) model.TestStatistics {
	stats := model.NewTestStatistics()

	for _, tc := range mtp.Tests {
		qualifiedName := mtp.Module.String() + "::" + tc.Name

		outcome, info, failure, handled, output := d.Adjudicator.Run(mtp.Module, tc)

		var pass bool
		if !handled {
			pass, failure = matcher.Match(info, outcome, outcome.Err, tc.Expected)
		}

		if output != "" {
			stats.RecordOutput(qualifiedName, output)
		}

		if pass {
			d.Writer.WriteStatus(StatusPass, qualifiedName)
			stats.RecordPass(mtp.Module, info)
			continue
		}

		status := StatusFail
		if failure.Reason.Kind == model.ReasonTimeout {
			status = StatusTimeout
		}
		d.Writer.WriteStatus(status, qualifiedName)
		stats.RecordFail(mtp.Module, *failure)
	}

	return stats
}
