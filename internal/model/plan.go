package model

import "strings"

// SourceFile is one compiler-supplied source file, keyed elsewhere by its
// content hash. Used only by the reporter for diagnostic rendering (§3).
type SourceFile struct {
	Filename string
	Text     string
}

// SourceLocation is where a single code offset maps back to in source text.
type SourceLocation struct {
	FileHash [32]byte
	Line     uint32
}

// SourceMap maps a compiled code offset (within one module) back to a
// source location. Used only by the reporter's stack-trace rendering.
type SourceMap struct {
	Locations map[Offset]SourceLocation
}

// Lookup resolves a single frame offset. ok is false if the offset is not
// present in the map, the documented failure mode that collapses an entire
// rendered stack trace into a placeholder (§4.8).
func (m SourceMap) Lookup(off Offset) (SourceLocation, bool) {
	loc, ok := m.Locations[off]
	return loc, ok
}

// CompiledModule is the bytecode-compiler output for one module: its
// canonical serialized bytecode, the modules it depends on (consumed by the
// Storage Bootstrapper's topological sort), and its source map.
type CompiledModule struct {
	ID           ModuleID
	Bytecode     []byte
	Dependencies []ModuleID
	SourceMap    SourceMap
}

// TestCase is one entry in a ModuleTestPlan: the ordered argument values to
// pass to the test's entry function, plus an optional expected-failure
// annotation (§3).
type TestCase struct {
	Name      string
	Arguments [][]byte
	Expected  *ExpectedFailure
}

// ModuleTestPlan is a module identifier plus its ordered tests. The slice
// preserves declaration order, which the Module Test Driver and the
// streaming status writer both depend on (§4.6, §5).
type ModuleTestPlan struct {
	Module ModuleID
	Tests  []TestCase
}

// TestPlan is the fully-compiled input to the runner (§3). It is immutable
// after construction.
type TestPlan struct {
	Modules  []ModuleTestPlan
	Compiled map[ModuleID]CompiledModule
	Sources  map[[32]byte]SourceFile
}

// Filter restricts the plan to tests whose "module::test_name" contains
// substr, preserving module and test order. filter(s) applied twice
// yields the same plan as applying it once (§8).
func (p TestPlan) Filter(substr string) TestPlan {
	if substr == "" {
		return p
	}
	out := TestPlan{
		Compiled: p.Compiled,
		Sources:  p.Sources,
	}
	for _, mtp := range p.Modules {
		var kept []TestCase
		for _, tc := range mtp.Tests {
			full := mtp.Module.String() + "::" + tc.Name
			if strings.Contains(full, substr) {
				kept = append(kept, tc)
			}
		}
		if len(kept) > 0 {
			out.Modules = append(out.Modules, ModuleTestPlan{Module: mtp.Module, Tests: kept})
		}
	}
	return out
}

// TestCount returns the total number of tests across all modules.
func (p TestPlan) TestCount() int {
	n := 0
	for _, mtp := range p.Modules {
		n += len(mtp.Tests)
	}
	return n
}
