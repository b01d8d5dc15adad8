package model

// ExpectedKind tags the variant of an ExpectedFailure annotation (§3).
type ExpectedKind int

const (
	// ExpectedAny accepts any failure at all.
	ExpectedAny ExpectedKind = iota
	// ExpectedWithError requires a specific MoveError triple.
	ExpectedWithError
	// ExpectedWithCode requires a specific ABORTED sub-status. Deprecated
	// but still supported (§3).
	ExpectedWithCode
)

// ExpectedFailure is the test-case annotation declaring that a test must
// fail, and optionally how. A nil *ExpectedFailure on a TestCase means the
// test is declared to succeed. The three variants live on one type, not as
// separate optional fields, mirroring the single sum type in the Move
// unit-test crate this was distilled from.
type ExpectedFailure struct {
	Kind  ExpectedKind
	Error MoveError // valid when Kind == ExpectedWithError
	Code  uint64    // valid when Kind == ExpectedWithCode
}

// ExpectAny builds the "any failure is acceptable" annotation.
func ExpectAny() *ExpectedFailure {
	return &ExpectedFailure{Kind: ExpectedAny}
}

// ExpectError builds an annotation requiring an exact MoveError match.
func ExpectError(err MoveError) *ExpectedFailure {
	return &ExpectedFailure{Kind: ExpectedWithError, Error: err}
}

// ExpectCode builds the deprecated abort-code annotation.
func ExpectCode(code uint64) *ExpectedFailure {
	return &ExpectedFailure{Kind: ExpectedWithCode, Code: code}
}
