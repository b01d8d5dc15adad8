package runner

import (
	"fmt"

	"movetest/internal/adjudicator"
	"movetest/internal/backend"
	"movetest/internal/bootstrap"
	"movetest/internal/driver"
)

// Session is a fully wired run: a Bootstrapper ready to publish a TestPlan's
// modules, and a Runner ready to execute it. Both cmd and internal/mcpserver
// build one of these from a Config plus the injected VM collaborators
// rather than duplicating the wiring order (store, then reference model,
// then adjudicator, then runner) in two places.
type Session struct {
	Bootstrapper *bootstrap.Bootstrapper
	Runner       *Runner
}

// Assemble wires a Config and the injected backend collaborators into a
// Session. primaryVM and writer are required; referenceVM and modelBuilder
// are only consulted when cfg.CheckReferenceVM is set, and may be nil
// otherwise.
func Assemble(cfg Config, primaryVM backend.PrimaryVM, referenceVM backend.ReferenceVM, modelBuilder backend.ModelBuilder, writer driver.StatusWriter) (*Session, error) {
	store := backend.NewMemoryStore()
	primary := backend.NewPrimaryExecutor(primaryVM, cfg.ReportStacktraceOnAbort)

	var reference *backend.ReferenceExecutor
	if cfg.CheckReferenceVM {
		if referenceVM == nil || modelBuilder == nil {
			return nil, fmt.Errorf("runner: check_reference_vm is enabled but no reference VM collaborator was supplied")
		}
		ref, err := backend.NewReferenceExecutor(referenceVM, modelBuilder, cfg.SourceFiles, cfg.NamedAddressValues)
		if err != nil {
			return nil, err
		}
		reference = ref
	}

	adj := adjudicator.New(primary, reference, backend.DefaultResultAdapter{}, cfg.GasLimit)

	return &Session{
		Bootstrapper: bootstrap.New(store),
		Runner:       New(cfg, adj, writer),
	}, nil
}
