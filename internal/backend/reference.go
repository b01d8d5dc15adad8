package backend

import (
	"fmt"
	"strings"
	"time"

	"movetest/internal/model"
)

// GlobalEnvironment is the model-level description of every module the
// reference interpreter needs, produced by a ModelBuilder (§6). The core
// never inspects it.
type GlobalEnvironment any

// PropertyFailure carries the reference VM's embedded property checker's
// verdict. Details is passed through as opaque free-form text rather than
// further structured.
type PropertyFailure struct {
	Details string
}

// ReferenceVM is the consumed interface (§6) for the "stackless" reference
// interpreter: interpret one test against a pre-built GlobalEnvironment and
// report a property-check verdict alongside the usual result.
type ReferenceVM interface {
	Interpret(module model.ModuleID, function string, args [][]byte, global GlobalEnvironment) (returnValues [][]byte, vmErr *model.VMError, property *PropertyFailure)
}

// ModelBuilder builds a GlobalEnvironment from source file paths and a
// named-address map (§6). Constructing the reference VM parses and rebuilds
// the module model from source; any model-level error is fatal (§4.3).
type ModelBuilder interface {
	Build(sourceFiles []string, namedAddresses map[string]model.Address) (GlobalEnvironment, error)
}

// FilterStaleInterfaceFiles drops compiler-generated interface-file paths
// (any path containing ".interface") before handing the remaining
// paths to a ModelBuilder, matching the original move-unit-test crate's
// filtering step ahead of rebuilding the reference model.
func FilterStaleInterfaceFiles(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if strings.Contains(p, ".interface") {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ReferenceExecutor is the Backend Executor implementation for the
// reference VM (§4.3). It is only constructed when cross-backend checking
// is enabled.
type ReferenceExecutor struct {
	VM     ReferenceVM
	Global GlobalEnvironment
}

// NewReferenceExecutor builds a reference executor from source, filtering
// stale interface files first. A model-level build failure is fatal to the
// whole run (§4.3, §7).
func NewReferenceExecutor(vm ReferenceVM, builder ModelBuilder, sourceFiles []string, namedAddresses map[string]model.Address) (*ReferenceExecutor, error) {
	filtered := FilterStaleInterfaceFiles(sourceFiles)
	global, err := builder.Build(filtered, namedAddresses)
	if err != nil {
		return nil, fmt.Errorf("backend: building reference model: %w", err)
	}
	return &ReferenceExecutor{VM: vm, Global: global}, nil
}

// Execute runs one test against the reference interpreter. Gas is not
// metered on this backend, so TestRunInfo.Instructions is always 0 (§4.3).
func (e *ReferenceExecutor) Execute(module model.ModuleID, function string, args [][]byte) (model.ExecOutcome, model.TestRunInfo, *PropertyFailure) {
	qualifiedName := module.String() + "::" + function

	start := time.Now()
	values, vmErr, property := e.VM.Interpret(module, function, args, e.Global)
	elapsed := time.Since(start)

	info := model.TestRunInfo{Function: qualifiedName, Elapsed: elapsed, Instructions: 0}

	if vmErr != nil {
		return model.ErrOutcome(vmErr), info, property
	}
	return model.OkOutcome(values), info, property
}
