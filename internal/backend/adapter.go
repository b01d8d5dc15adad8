package backend

import "movetest/internal/model"

// ResultAdapter canonicalizes a primary-VM result into the reference VM's
// result shape so the two can be compared bitwise (§6, §4.4).
type ResultAdapter interface {
	Canonicalize(primary model.ExecOutcome) model.ExecOutcome
}

// DefaultResultAdapter elides the ExecutionState/stack-trace payload from
// any VMError, since that is purely diagnostic and never part of cross-VM
// equivalence. Return values and the (major, sub, location) error triple
// are passed through unchanged.
type DefaultResultAdapter struct{}

func (DefaultResultAdapter) Canonicalize(primary model.ExecOutcome) model.ExecOutcome {
	if primary.Ok || primary.Err == nil {
		return primary
	}
	stripped := *primary.Err
	stripped.ExecutionState = nil
	return model.ErrOutcome(&stripped)
}
