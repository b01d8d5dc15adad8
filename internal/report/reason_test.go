package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"movetest/internal/model"
)

func TestRenderReason_Timeout(t *testing.T) {
	f := model.TestFailure{Reason: model.ReasonTimeoutFailure()}
	assert.Equal(t, "execution exhausted its gas budget", renderReason(f))
}

func TestRenderReason_WrongAbortCode(t *testing.T) {
	f := model.TestFailure{Reason: model.ReasonWrongAbortCodeFailure(5, model.MoveError{MajorStatus: model.StatusAborted})}
	assert.Contains(t, renderReason(f), "expected abort code 5")
}

func TestRenderReason_Mismatch(t *testing.T) {
	f := model.TestFailure{Reason: model.ReasonMismatchFailure(model.OkOutcome(nil), model.ErrOutcome(&model.VMError{MajorStatus: model.StatusAborted}))}
	assert.Contains(t, renderReason(f), "disagreed")
}

func TestRenderReason_Property(t *testing.T) {
	f := model.TestFailure{Reason: model.ReasonPropertyFailure("loop invariant broken")}
	assert.Contains(t, renderReason(f), "loop invariant broken")
}

func TestDescribeMoveError_IncludesAbortCode(t *testing.T) {
	code := uint64(3)
	e := model.MoveError{MajorStatus: model.StatusAborted, SubStatus: &code}
	assert.Contains(t, describeMoveError(e), "code=3")
}
