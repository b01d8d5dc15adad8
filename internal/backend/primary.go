package backend

import (
	"time"

	"github.com/google/uuid"

	"movetest/internal/model"
	"movetest/pkg/logging"
)

// PrimaryVM is the consumed interface (§6) for the stack-based bytecode
// interpreter: given a module, an entry function, its arguments and a gas
// meter, execute with no type arguments and return the serialized return
// values (or a VMError) plus the resulting change set. The VM owns the
// session lifecycle; a fresh session is expected per call.
type PrimaryVM interface {
	ExecuteFunction(module model.ModuleID, function string, args [][]byte, meter *GasMeter) (returnValues [][]byte, changes ChangeSet, vmErr *model.VMError)
}

// OutputCapturingVM is an optional PrimaryVM capability: a VM that also
// surfaces the textual output a test produced while running (e.g.
// debug::print traces), alongside its normal result. Execute probes for
// this interface with a type assertion rather than widening PrimaryVM
// itself, so a VM that has nothing to capture is under no obligation to
// implement it.
type OutputCapturingVM interface {
	ExecuteFunctionCapturingOutput(module model.ModuleID, function string, args [][]byte, meter *GasMeter) (returnValues [][]byte, changes ChangeSet, vmErr *model.VMError, output string)
}

// PrimaryExecutor is the Backend Executor implementation for the primary VM
// (§4.2). It is constructed once per run and reused by every worker; it
// holds no per-test state itself — each call creates its own GasMeter.
type PrimaryExecutor struct {
	VM                      PrimaryVM
	ReportStacktraceOnAbort bool
}

// NewPrimaryExecutor wires a PrimaryVM collaborator (already bound to the
// shared ModuleStore, native-function table, and gas schedule at
// construction time, per §4.2) into a Backend Executor.
func NewPrimaryExecutor(vm PrimaryVM, reportStacktraceOnAbort bool) *PrimaryExecutor {
	return &PrimaryExecutor{VM: vm, ReportStacktraceOnAbort: reportStacktraceOnAbort}
}

// Execute runs one test against the primary VM under gasBudget and returns
// the observed outcome, the (discarded-by-core) change set, run metadata,
// and any captured textual output (empty when the VM doesn't implement
// OutputCapturingVM). Timeout classification ("OUT_OF_GAS" -> FailureReason
// Timeout) happens later in the matcher; this layer only reports the raw
// status.
func (e *PrimaryExecutor) Execute(module model.ModuleID, function string, args [][]byte, gasBudget uint64) (model.ExecOutcome, ChangeSet, model.TestRunInfo, string) {
	meter := NewGasMeter(gasBudget)
	sessionID := uuid.NewString()
	qualifiedName := module.String() + "::" + function

	start := time.Now()
	var values [][]byte
	var changes ChangeSet
	var vmErr *model.VMError
	var output string
	if oc, ok := e.VM.(OutputCapturingVM); ok {
		values, changes, vmErr, output = oc.ExecuteFunctionCapturingOutput(module, function, args, meter)
	} else {
		values, changes, vmErr = e.VM.ExecuteFunction(module, function, args, meter)
	}
	elapsed := time.Since(start)

	logging.Debug("backend.primary", "session %s executed %s in %s", logging.TruncateSessionID(sessionID), qualifiedName, elapsed)

	if vmErr != nil && !e.ReportStacktraceOnAbort {
		vmErr.StripExecutionState()
	}

	info := model.TestRunInfo{
		Function:     qualifiedName,
		Elapsed:      elapsed,
		Instructions: meter.Consumed(),
	}

	if vmErr != nil {
		return model.ErrOutcome(vmErr), changes, info, output
	}
	return model.OkOutcome(values), changes, info, output
}
