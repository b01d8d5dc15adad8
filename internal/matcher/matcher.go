// Package matcher implements the Outcome Matcher (§4.5): a pure function
// from an observed primary-VM result and a declared expectation to a
// pass/fail-reason verdict. The Module Test Driver consults it for every
// test the Cross-Backend Adjudicator did not already settle: always when
// cross-backend checking is disabled, and after a dual run has confirmed
// the two backends agree (§4.4).
package matcher

import (
	"fmt"

	"movetest/internal/model"
)

// Match implements the state table in §4.5. info is the primary executor's
// run metadata, carried through unchanged into the returned TestFailure on
// a fail verdict. vmErr is nil when result.Ok is true.
//
// info's instruction count is a cost-unit count under a unit gas schedule,
// not a literal CPU-instruction count.
func Match(info model.TestRunInfo, result model.ExecOutcome, vmErr *model.VMError, expected *model.ExpectedFailure) (pass bool, failure *model.TestFailure) {
	if result.Ok {
		if expected == nil {
			return true, nil
		}
		return false, &model.TestFailure{Info: info, Reason: model.ReasonNoErrorFailure()}
	}

	if vmErr == nil {
		// An Err outcome with no VMError attached is itself malformed
		// input from a backend; treat it as an unexpected error with a
		// placeholder rather than panicking (§7).
		return false, &model.TestFailure{
			Info:   info,
			Reason: model.ReasonUnexpectedErrorFailure(model.MoveError{MajorStatus: "UNKNOWN"}),
		}
	}

	if vmErr.MajorStatus == model.StatusExecuted {
		// Internal invariant violation: a VM must never pair Err with
		// EXECUTED (§4.5). Degrade gracefully instead of panicking (§7).
		placeholder := model.MoveError{MajorStatus: model.StatusCode(fmt.Sprintf("INVARIANT_VIOLATION(%s)", vmErr.MajorStatus))}
		return false, &model.TestFailure{Info: info, VMErr: vmErr, Reason: model.ReasonUnexpectedErrorFailure(placeholder)}
	}

	actual := vmErr.ToMoveError()

	if vmErr.MajorStatus == model.StatusOutOfGas {
		switch {
		case expected == nil:
			return false, &model.TestFailure{Info: info, VMErr: vmErr, Reason: model.ReasonTimeoutFailure()}
		case expected.Kind == model.ExpectedAny:
			return true, nil
		case expected.Kind == model.ExpectedWithError:
			if actual.Equal(expected.Error) {
				return true, nil
			}
			return false, &model.TestFailure{Info: info, VMErr: vmErr, Reason: model.ReasonWrongErrorFailure(expected.Error, actual)}
		case expected.Kind == model.ExpectedWithCode:
			if code, ok := actual.AbortCode(); ok && code == expected.Code {
				return true, nil
			}
			return false, &model.TestFailure{Info: info, VMErr: vmErr, Reason: model.ReasonWrongAbortCodeFailure(expected.Code, actual)}
		}
	}

	// Any other error status.
	switch {
	case expected == nil:
		return false, &model.TestFailure{Info: info, VMErr: vmErr, Reason: model.ReasonUnexpectedErrorFailure(actual)}
	case expected.Kind == model.ExpectedAny:
		return true, nil
	case expected.Kind == model.ExpectedWithError:
		if actual.Equal(expected.Error) {
			return true, nil
		}
		return false, &model.TestFailure{Info: info, VMErr: vmErr, Reason: model.ReasonWrongErrorFailure(expected.Error, actual)}
	case expected.Kind == model.ExpectedWithCode:
		if code, ok := actual.AbortCode(); ok && code == expected.Code {
			return true, nil
		}
		return false, &model.TestFailure{Info: info, VMErr: vmErr, Reason: model.ReasonWrongAbortCodeFailure(expected.Code, actual)}
	}

	// Unreachable: ExpectedKind has exactly three variants, all handled.
	return false, &model.TestFailure{Info: info, VMErr: vmErr, Reason: model.ReasonUnexpectedErrorFailure(actual)}
}
