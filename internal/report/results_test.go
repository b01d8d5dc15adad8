package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"movetest/internal/model"
)

func TestTestResults_Summarize_AllPassed(t *testing.T) {
	stats := model.NewTestStatistics()
	stats.RecordPass(mod, model.TestRunInfo{Function: "incr"})

	var buf bytes.Buffer
	ok := TestResults{Stats: stats}.Summarize(&buf)
	assert.True(t, ok)
	assert.Contains(t, buf.String(), "OK. Total: 1, Passed: 1, Failed: 0")
}

func TestTestResults_Summarize_RendersFailureBlock(t *testing.T) {
	stats := model.NewTestStatistics()
	stats.RecordFail(mod, model.TestFailure{
		Info:   model.TestRunInfo{Function: "0x1::counter::aborts"},
		Reason: model.ReasonTimeoutFailure(),
	})

	var buf bytes.Buffer
	ok := TestResults{Stats: stats}.Summarize(&buf)
	assert.False(t, ok)

	out := buf.String()
	assert.Contains(t, out, "┌── 0x1::counter::aborts ──")
	assert.Contains(t, out, "execution exhausted its gas budget")
	assert.Contains(t, out, "└──────────────────")
	assert.Contains(t, out, "FAILED. Total: 1, Passed: 0, Failed: 1")
}

func TestTestResults_Summarize_RendersCapturedOutput(t *testing.T) {
	stats := model.NewTestStatistics()
	stats.RecordFail(mod, model.TestFailure{
		Info:   model.TestRunInfo{Function: "0x1::counter::aborts"},
		Reason: model.ReasonTimeoutFailure(),
	})
	stats.RecordOutput("0x1::counter::aborts", "debug::print: 41\ndebug::print: 42")

	var buf bytes.Buffer
	TestResults{Stats: stats}.Summarize(&buf)

	out := buf.String()
	assert.Contains(t, out, "│ output:")
	assert.Contains(t, out, "│   debug::print: 41")
	assert.Contains(t, out, "│   debug::print: 42")
}

func TestTestResults_Summarize_IncludesStackTraceWhenResolvable(t *testing.T) {
	fileHash := [32]byte{2}
	offset := model.Offset{CodeOffset: 1}
	vmErr := &model.VMError{
		MajorStatus:    model.StatusAborted,
		ExecutionState: &model.ExecutionState{Frames: []model.StackFrame{{Module: mod, Function: "incr", CodeOffset: 1}}},
	}
	plan := model.TestPlan{
		Compiled: map[model.ModuleID]model.CompiledModule{
			mod: {SourceMap: model.SourceMap{Locations: map[model.Offset]model.SourceLocation{offset: {FileHash: fileHash, Line: 7}}}},
		},
		Sources: map[[32]byte]model.SourceFile{fileHash: {Filename: "counter.move"}},
	}

	stats := model.NewTestStatistics()
	stats.RecordFail(mod, model.TestFailure{
		Info:   model.TestRunInfo{Function: "0x1::counter::aborts"},
		VMErr:  vmErr,
		Reason: model.ReasonUnexpectedErrorFailure(vmErr.ToMoveError()),
	})

	var buf bytes.Buffer
	TestResults{Stats: stats, Plan: plan}.Summarize(&buf)
	assert.Contains(t, buf.String(), "counter.move:7")
}
