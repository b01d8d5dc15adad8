package model

// ExecOutcome is the canonical shape both backend executors (and the
// Cross-Backend Adjudicator's result adapter) produce: either a successful
// set of serialized return values, or a VM error. Exactly one of Values /
// Err is meaningful, selected by Ok.
type ExecOutcome struct {
	Ok     bool
	Values [][]byte
	Err    *VMError
}

// OkOutcome builds a successful ExecOutcome.
func OkOutcome(values [][]byte) ExecOutcome {
	return ExecOutcome{Ok: true, Values: values}
}

// ErrOutcome builds a failing ExecOutcome.
func ErrOutcome(err *VMError) ExecOutcome {
	return ExecOutcome{Ok: false, Err: err}
}

// Equal reports whether two canonicalized outcomes are equivalent under the
// cross-backend comparison (§4.4): equality ignores ExecutionState entirely
// and compares return values or the (major, sub, location) triple only.
func (o ExecOutcome) Equal(other ExecOutcome) bool {
	if o.Ok != other.Ok {
		return false
	}
	if o.Ok {
		return bytesSlicesEqual(o.Values, other.Values)
	}
	return o.Err.ToMoveError().Equal(other.Err.ToMoveError())
}

func bytesSlicesEqual(a, b [][]byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}
