package report

import (
	"fmt"

	"movetest/internal/model"
)

// renderReason renders a FailureReason's human-readable text (§4.8). It
// never includes the stack trace — that is rendered separately by
// renderStackTrace and appended by the caller.
func renderReason(f model.TestFailure) string {
	switch f.Reason.Kind {
	case model.ReasonNoError:
		return "test was declared to fail, but executed successfully"
	case model.ReasonWrongError:
		return fmt.Sprintf("expected error %s, got %s", describeMoveError(f.Reason.ExpectedError), describeMoveError(f.Reason.ActualError))
	case model.ReasonWrongAbortCode:
		return fmt.Sprintf("expected abort code %d, got %s", f.Reason.ExpectedCode, describeMoveError(f.Reason.ActualError))
	case model.ReasonUnexpectedError:
		return fmt.Sprintf("test was declared to succeed, but failed with %s", describeMoveError(f.Reason.ActualError))
	case model.ReasonTimeout:
		return "execution exhausted its gas budget"
	case model.ReasonMismatch:
		return fmt.Sprintf("primary and reference backends disagreed: primary=%s reference=%s", describeOutcome(f.Reason.PrimaryResult), describeOutcome(f.Reason.ReferenceResult))
	case model.ReasonProperty:
		return fmt.Sprintf("reference VM property check failed: %s", f.Reason.PropertyDetails)
	default:
		return "unknown failure"
	}
}

func describeMoveError(e model.MoveError) string {
	if sub, ok := e.AbortCode(); ok {
		return fmt.Sprintf("%s(code=%d) at %s", e.MajorStatus, sub, e.Location)
	}
	if e.SubStatus != nil {
		return fmt.Sprintf("%s(sub_status=%d) at %s", e.MajorStatus, *e.SubStatus, e.Location)
	}
	return fmt.Sprintf("%s at %s", e.MajorStatus, e.Location)
}

func describeOutcome(o model.ExecOutcome) string {
	if o.Ok {
		return fmt.Sprintf("Ok(%d return values)", len(o.Values))
	}
	return fmt.Sprintf("Err(%s)", describeMoveError(o.Err.ToMoveError()))
}
