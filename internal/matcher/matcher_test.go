package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"movetest/internal/model"
)

var mod = model.ModuleID{Address: "0x1", Name: "counter"}

func TestMatch_SucceedsWithNoExpectation(t *testing.T) {
	pass, failure := Match(model.TestRunInfo{}, model.OkOutcome(nil), nil, nil)
	assert.True(t, pass)
	assert.Nil(t, failure)
}

func TestMatch_SucceedsButDeclaredToFail(t *testing.T) {
	pass, failure := Match(model.TestRunInfo{}, model.OkOutcome(nil), nil, model.ExpectAny())
	assert.False(t, pass)
	assert.Equal(t, model.ReasonNoError, failure.Reason.Kind)
}

func TestMatch_FailsButExpectedToSucceed(t *testing.T) {
	vmErr := &model.VMError{MajorStatus: model.StatusAborted, Location: model.Location{Kind: model.LocationModule, Module: mod}}
	pass, failure := Match(model.TestRunInfo{}, model.ErrOutcome(vmErr), vmErr, nil)
	assert.False(t, pass)
	assert.Equal(t, model.ReasonUnexpectedError, failure.Reason.Kind)
}

func TestMatch_ExpectAnyAcceptsAnyAbort(t *testing.T) {
	vmErr := &model.VMError{MajorStatus: model.StatusAborted, Location: model.Location{Kind: model.LocationModule, Module: mod}}
	pass, failure := Match(model.TestRunInfo{}, model.ErrOutcome(vmErr), vmErr, model.ExpectAny())
	assert.True(t, pass)
	assert.Nil(t, failure)
}

func TestMatch_ExpectCodeMatches(t *testing.T) {
	code := uint64(7)
	vmErr := &model.VMError{MajorStatus: model.StatusAborted, SubStatus: &code, Location: model.Location{Kind: model.LocationModule, Module: mod}}
	pass, failure := Match(model.TestRunInfo{}, model.ErrOutcome(vmErr), vmErr, model.ExpectCode(7))
	assert.True(t, pass)
	assert.Nil(t, failure)
}

func TestMatch_ExpectCodeMismatch(t *testing.T) {
	code := uint64(7)
	vmErr := &model.VMError{MajorStatus: model.StatusAborted, SubStatus: &code, Location: model.Location{Kind: model.LocationModule, Module: mod}}
	pass, failure := Match(model.TestRunInfo{}, model.ErrOutcome(vmErr), vmErr, model.ExpectCode(9))
	assert.False(t, pass)
	assert.Equal(t, model.ReasonWrongAbortCode, failure.Reason.Kind)
	assert.EqualValues(t, 9, failure.Reason.ExpectedCode)
}

func TestMatch_ExpectErrorMatchesExactTriple(t *testing.T) {
	code := uint64(3)
	vmErr := &model.VMError{MajorStatus: model.StatusAborted, SubStatus: &code, Location: model.Location{Kind: model.LocationModule, Module: mod}}
	expected := model.MoveError{MajorStatus: model.StatusAborted, SubStatus: &code, Location: model.Location{Kind: model.LocationModule, Module: mod}}

	pass, failure := Match(model.TestRunInfo{}, model.ErrOutcome(vmErr), vmErr, model.ExpectError(expected))
	assert.True(t, pass)
	assert.Nil(t, failure)
}

func TestMatch_ExpectErrorWrongLocationFails(t *testing.T) {
	other := model.ModuleID{Address: "0x1", Name: "other"}
	vmErr := &model.VMError{MajorStatus: model.StatusAborted, Location: model.Location{Kind: model.LocationModule, Module: mod}}
	expected := model.MoveError{MajorStatus: model.StatusAborted, Location: model.Location{Kind: model.LocationModule, Module: other}}

	pass, failure := Match(model.TestRunInfo{}, model.ErrOutcome(vmErr), vmErr, model.ExpectError(expected))
	assert.False(t, pass)
	assert.Equal(t, model.ReasonWrongError, failure.Reason.Kind)
}

func TestMatch_OutOfGasWithNoExpectationIsTimeout(t *testing.T) {
	vmErr := &model.VMError{MajorStatus: model.StatusOutOfGas}
	pass, failure := Match(model.TestRunInfo{}, model.ErrOutcome(vmErr), vmErr, nil)
	assert.False(t, pass)
	assert.Equal(t, model.ReasonTimeout, failure.Reason.Kind)
}

func TestMatch_ExecutedMajorStatusOnErrOutcomeIsInvariantViolation(t *testing.T) {
	vmErr := &model.VMError{MajorStatus: model.StatusExecuted}
	pass, failure := Match(model.TestRunInfo{}, model.ErrOutcome(vmErr), vmErr, nil)
	assert.False(t, pass)
	assert.Equal(t, model.ReasonUnexpectedError, failure.Reason.Kind)
	assert.Contains(t, string(failure.Reason.ActualError.MajorStatus), "INVARIANT_VIOLATION")
}

func TestMatch_NilVMErrOnErrOutcomeDegradesGracefully(t *testing.T) {
	pass, failure := Match(model.TestRunInfo{}, model.ErrOutcome(nil), nil, nil)
	assert.False(t, pass)
	assert.Equal(t, model.ReasonUnexpectedError, failure.Reason.Kind)
	assert.EqualValues(t, "UNKNOWN", failure.Reason.ActualError.MajorStatus)
}
