// Package runner implements the Parallel Test Runner (§4.7): it schedules
// one Module Test Driver per ModuleTestPlan across a bounded worker pool
// and reduces their TestStatistics into a final aggregate via the
// commutative, associative TestStatistics.Combine.
//
// The pool itself is golang.org/x/sync/errgroup with a concurrency limit —
// the "task group with a join channel" alternative named in §9's design
// notes, in place of a hand-rolled channel-and-WaitGroup pool.
package runner

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"movetest/internal/adjudicator"
	"movetest/internal/driver"
	"movetest/internal/model"
)

// Config enumerates the recognized run options (§6).
type Config struct {
	GasLimit                uint64
	NumThreads              int // 0 (default) = runtime.GOMAXPROCS(0); 1 forces serial execution
	CheckReferenceVM        bool
	Verbose                 bool
	ReportStacktraceOnAbort bool
	SourceFiles             []string
	DepFiles                []string
	NamedAddressValues      map[string]model.Address
	ReportFormat            string // "table" (default), "csv", or "template"
}

// Runner distributes module drivers across a fixed-size worker pool.
type Runner struct {
	config      Config
	adjudicator *adjudicator.Adjudicator
	writer      driver.StatusWriter
}

// New builds a Runner. adj must already be configured for single- or
// dual-backend mode per cfg.CheckReferenceVM.
func New(cfg Config, adj *adjudicator.Adjudicator, writer driver.StatusWriter) *Runner {
	return &Runner{config: cfg, adjudicator: adj, writer: writer}
}

// Run executes every module in plan and returns the combined statistics.
// ctx is accepted for API symmetry with the rest of the collaborator
// surface but carries no cancellation semantics here — the only bounded
// execution primitive this runner recognizes is the per-test gas budget
// (§5: "Cancellation: none").
func (r *Runner) Run(ctx context.Context, plan model.TestPlan) model.TestStatistics {
	_ = ctx

	numWorkers := r.config.NumThreads
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	if len(plan.Modules) > 0 && numWorkers > len(plan.Modules) {
		numWorkers = len(plan.Modules)
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	d := driver.New(r.adjudicator, r.writer)

	results := make([]model.TestStatistics, len(plan.Modules))

	var g errgroup.Group
	g.SetLimit(numWorkers)

	for i, mtp := range plan.Modules {
		i, mtp := i, mtp
		g.Go(func() error {
			// One worker processes one module end-to-end; there is no
			// intra-module parallelism (§4.7).
			results[i] = d.RunModule(mtp)
			return nil
		})
	}
	_ = g.Wait() // RunModule never returns an error; individual failures are data.

	final := model.NewTestStatistics()
	for _, s := range results {
		final = final.Combine(s)
	}
	return final
}
