package model

import "time"

// TestRunInfo is the function identifier plus run metadata, comparable for
// ordering by (identifier, duration, count) (§3). Less implements that
// ordering for callers that need a stable display sort.
type TestRunInfo struct {
	Function     string
	Elapsed      time.Duration
	Instructions uint64
}

// Less orders TestRunInfo by (Function, Elapsed, Instructions).
func (i TestRunInfo) Less(other TestRunInfo) bool {
	if i.Function != other.Function {
		return i.Function < other.Function
	}
	if i.Elapsed != other.Elapsed {
		return i.Elapsed < other.Elapsed
	}
	return i.Instructions < other.Instructions
}

// FailureReasonKind tags the variant of a FailureReason (§3).
type FailureReasonKind int

const (
	// ReasonNoError: declared to fail, but executed successfully.
	ReasonNoError FailureReasonKind = iota
	// ReasonWrongError: failed, but with a different status than declared.
	ReasonWrongError
	// ReasonWrongAbortCode: the deprecated abort-code form did not match.
	ReasonWrongAbortCode
	// ReasonUnexpectedError: expected to succeed, but failed.
	ReasonUnexpectedError
	// ReasonTimeout: the execution bound was exhausted.
	ReasonTimeout
	// ReasonMismatch: the two backends disagreed (§4.4).
	ReasonMismatch
	// ReasonProperty: the reference VM's property checker reported a
	// violation (§4.3).
	ReasonProperty
)

// FailureReason is the tagged outcome of a failed test (§3). A Mismatch or
// Property reason never also populates Expected/Actual — the invariant is
// enforced by the constructors below, not by zero-value convention alone.
type FailureReason struct {
	Kind FailureReasonKind

	// ReasonWrongError, ReasonWrongAbortCode
	ExpectedError MoveError
	ExpectedCode  uint64

	// ReasonWrongError, ReasonWrongAbortCode, ReasonUnexpectedError
	ActualError MoveError

	// ReasonMismatch
	PrimaryResult   ExecOutcome
	ReferenceResult ExecOutcome

	// ReasonProperty
	PropertyDetails string
}

func ReasonNoErrorFailure() FailureReason { return FailureReason{Kind: ReasonNoError} }

func ReasonWrongErrorFailure(expected, actual MoveError) FailureReason {
	return FailureReason{Kind: ReasonWrongError, ExpectedError: expected, ActualError: actual}
}

func ReasonWrongAbortCodeFailure(expectedCode uint64, actual MoveError) FailureReason {
	return FailureReason{Kind: ReasonWrongAbortCode, ExpectedCode: expectedCode, ActualError: actual}
}

func ReasonUnexpectedErrorFailure(actual MoveError) FailureReason {
	return FailureReason{Kind: ReasonUnexpectedError, ActualError: actual}
}

func ReasonTimeoutFailure() FailureReason { return FailureReason{Kind: ReasonTimeout} }

func ReasonMismatchFailure(primary, reference ExecOutcome) FailureReason {
	return FailureReason{Kind: ReasonMismatch, PrimaryResult: primary, ReferenceResult: reference}
}

func ReasonPropertyFailure(details string) FailureReason {
	return FailureReason{Kind: ReasonProperty, PropertyDetails: details}
}

// TestFailure pairs a failed test's run metadata with its classified reason
// and the optional structured VM error retained for diagnostic rendering
// (§3).
type TestFailure struct {
	Info   TestRunInfo
	VMErr  *VMError
	Reason FailureReason
}
