package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"movetest/internal/model"
)

var mod = model.ModuleID{Address: "0x1", Name: "counter"}

func TestRenderStackTrace_EmptyWhenNoExecutionState(t *testing.T) {
	assert.Equal(t, "", renderStackTrace(nil, model.TestPlan{}))
	assert.Equal(t, "", renderStackTrace(&model.VMError{}, model.TestPlan{}))
}

func TestRenderStackTrace_PlaceholderOnLookupFailure(t *testing.T) {
	vmErr := &model.VMError{ExecutionState: &model.ExecutionState{Frames: []model.StackFrame{{Module: mod, Function: "f"}}}}
	plan := model.TestPlan{Compiled: map[model.ModuleID]model.CompiledModule{}}
	assert.Equal(t, stackTracePlaceholder, renderStackTrace(vmErr, plan))
}

func TestRenderStackTrace_RendersResolvedFrame(t *testing.T) {
	fileHash := [32]byte{1}
	offset := model.Offset{FunctionDefinitionIndex: 0, CodeOffset: 4}
	vmErr := &model.VMError{ExecutionState: &model.ExecutionState{
		Frames: []model.StackFrame{{Module: mod, Function: "incr", CodeOffset: 4}},
	}}
	plan := model.TestPlan{
		Compiled: map[model.ModuleID]model.CompiledModule{
			mod: {SourceMap: model.SourceMap{Locations: map[model.Offset]model.SourceLocation{
				offset: {FileHash: fileHash, Line: 12},
			}}},
		},
		Sources: map[[32]byte]model.SourceFile{fileHash: {Filename: "counter.move"}},
	}

	got := renderStackTrace(vmErr, plan)
	assert.Equal(t, "0x1::counter::incr(counter.move:12)", got)
}
