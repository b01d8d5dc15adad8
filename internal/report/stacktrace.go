package report

import (
	"fmt"
	"strings"

	"movetest/internal/model"
)

const stackTracePlaceholder = "<stack trace unavailable: source map lookup failed>"

// renderStackTrace renders each frame as module::function(file:line),
// deriving the line from the source map using the code offset of the
// frame's program counter. If the lookup fails for any frame, the entire
// trace is replaced by a single placeholder string (§4.8).
func renderStackTrace(vmErr *model.VMError, plan model.TestPlan) string {
	if vmErr == nil || vmErr.ExecutionState == nil || len(vmErr.ExecutionState.Frames) == 0 {
		return ""
	}

	lines := make([]string, 0, len(vmErr.ExecutionState.Frames))
	for _, frame := range vmErr.ExecutionState.Frames {
		cm, ok := plan.Compiled[frame.Module]
		if !ok {
			return stackTracePlaceholder
		}
		loc, ok := cm.SourceMap.Lookup(model.Offset{
			FunctionDefinitionIndex: frame.FunctionDefinitionIndex,
			CodeOffset:              frame.CodeOffset,
		})
		if !ok {
			return stackTracePlaceholder
		}
		src, ok := plan.Sources[loc.FileHash]
		if !ok {
			return stackTracePlaceholder
		}
		lines = append(lines, fmt.Sprintf("%s::%s(%s:%d)", frame.Module, frame.Function, src.Filename, loc.Line))
	}
	return strings.Join(lines, "\n")
}
