package model

// StatusCode is the major status a VM execution can terminate with. The
// core treats these as opaque labels supplied by the backend collaborators;
// it only special-cases the three named below (§4.5, §4.2).
type StatusCode string

const (
	// StatusExecuted is the success status. A VM must never pair this with
	// an Err result (§4.5); doing so is an internal invariant violation.
	StatusExecuted StatusCode = "EXECUTED"
	// StatusOutOfGas is the only status the core recognizes as a timeout.
	StatusOutOfGas StatusCode = "OUT_OF_GAS"
	// StatusAborted is the status produced by a user `abort` with a
	// sub-status carrying the abort code.
	StatusAborted StatusCode = "ABORTED"
)

// MoveError is the (major status, optional sub-status, location) triple the
// matcher and adjudicator compare. Equality is componentwise (§3).
type MoveError struct {
	MajorStatus StatusCode
	SubStatus   *uint64
	Location    Location
}

// Equal reports whether two MoveErrors are identical across all three
// components. A nil SubStatus only equals another nil SubStatus.
func (e MoveError) Equal(other MoveError) bool {
	if e.MajorStatus != other.MajorStatus {
		return false
	}
	if !e.Location.Equal(other.Location) {
		return false
	}
	if (e.SubStatus == nil) != (other.SubStatus == nil) {
		return false
	}
	if e.SubStatus != nil && *e.SubStatus != *other.SubStatus {
		return false
	}
	return true
}

// AbortCode returns the sub-status iff the error is an ABORTED with a
// sub-status present, matching the ExpectedWithCode matching rule (§4.5).
func (e MoveError) AbortCode() (uint64, bool) {
	if e.MajorStatus != StatusAborted || e.SubStatus == nil {
		return 0, false
	}
	return *e.SubStatus, true
}

// Offset pinpoints a single VM error frame: the index of the function
// definition in its module and the code offset (program counter) within it.
type Offset struct {
	FunctionDefinitionIndex uint16
	CodeOffset              uint16
}

// StackFrame is one frame of a VM execution-state stack trace.
type StackFrame struct {
	Module                  ModuleID
	Function                string
	FunctionDefinitionIndex uint16
	CodeOffset              uint16
}

// ExecutionState carries the VM's call stack at the point of failure. It is
// retained only for diagnostic rendering and is stripped entirely when the
// caller disables stack-trace reporting on abort (§4.2).
type ExecutionState struct {
	Frames []StackFrame
}

// VMError is the full error a backend executor can return, as named in the
// consumed interfaces of §6. Offsets is never empty for an Err result that
// reached user code; an empty Offsets on a non-verifier error is itself an
// internal invariant violation (§7).
type VMError struct {
	MajorStatus    StatusCode
	SubStatus      *uint64
	Location       Location
	Offsets        []Offset
	ExecutionState *ExecutionState
}

// ToMoveError projects a VMError down to the triple the matcher and
// adjudicator compare.
func (e *VMError) ToMoveError() MoveError {
	if e == nil {
		return MoveError{}
	}
	return MoveError{MajorStatus: e.MajorStatus, SubStatus: e.SubStatus, Location: e.Location}
}

// StripExecutionState clears the diagnostic stack trace. Used by the primary
// executor when report_stacktrace_on_abort is disabled, and applied on the
// executor's return path rather than only at render time.
func (e *VMError) StripExecutionState() {
	if e == nil {
		return
	}
	e.ExecutionState = nil
}
