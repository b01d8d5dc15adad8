package model

import "sort"

// TestStatistics accumulates the outcome of every test executed so far,
// keyed by module (§3). A given (module, test-name) pair appears in
// exactly one of Passed or Failed across a run; Combine never checks this
// invariant itself (it trusts disjoint callers), but every producer in this
// repository upholds it by construction — a module's results are written
// by exactly one worker.
type TestStatistics struct {
	Passed map[ModuleID][]TestRunInfo
	Failed map[ModuleID][]TestFailure
	// Output holds optional per-test textual output, keyed by the test's
	// fully-qualified "module::test" name.
	Output map[string]string
}

// NewTestStatistics returns an empty, ready-to-use TestStatistics.
func NewTestStatistics() TestStatistics {
	return TestStatistics{
		Passed: make(map[ModuleID][]TestRunInfo),
		Failed: make(map[ModuleID][]TestFailure),
		Output: make(map[string]string),
	}
}

// RecordPass appends a passing test's run info under its module.
func (s *TestStatistics) RecordPass(module ModuleID, info TestRunInfo) {
	s.Passed[module] = append(s.Passed[module], info)
}

// RecordFail appends a failing test under its module.
func (s *TestStatistics) RecordFail(module ModuleID, failure TestFailure) {
	s.Failed[module] = append(s.Failed[module], failure)
}

// RecordOutput attaches captured textual output (e.g. a debug::print
// trace) to a test, keyed by its fully-qualified "module::test" name.
// Not every backend captures output; callers only invoke this when there
// is something non-empty to record.
func (s *TestStatistics) RecordOutput(qualifiedName, output string) {
	s.Output[qualifiedName] = output
}

// Combine merges two TestStatistics. It is commutative and associative over
// disjoint module keys (§3, §8), which is what makes the Parallel Test
// Runner's reduction correct regardless of worker scheduling order. Modules
// present in both sides have their slices concatenated; in practice no
// module is ever produced by two workers, so this path only matters for
// repeated merges of the same accumulator.
func (s TestStatistics) Combine(other TestStatistics) TestStatistics {
	out := NewTestStatistics()
	for mod, infos := range s.Passed {
		out.Passed[mod] = append(out.Passed[mod], infos...)
	}
	for mod, infos := range other.Passed {
		out.Passed[mod] = append(out.Passed[mod], infos...)
	}
	for mod, fails := range s.Failed {
		out.Failed[mod] = append(out.Failed[mod], fails...)
	}
	for mod, fails := range other.Failed {
		out.Failed[mod] = append(out.Failed[mod], fails...)
	}
	for name, text := range s.Output {
		out.Output[name] = text
	}
	for name, text := range other.Output {
		out.Output[name] = text
	}
	return out
}

// TotalPassed returns the number of passing tests across all modules.
func (s TestStatistics) TotalPassed() int {
	n := 0
	for _, infos := range s.Passed {
		n += len(infos)
	}
	return n
}

// TotalFailed returns the number of failing tests across all modules.
func (s TestStatistics) TotalFailed() int {
	n := 0
	for _, fails := range s.Failed {
		n += len(fails)
	}
	return n
}

// Total returns TotalPassed() + TotalFailed().
func (s TestStatistics) Total() int {
	return s.TotalPassed() + s.TotalFailed()
}

// OK reports true iff there are no failed tests in any module (§8).
func (s TestStatistics) OK() bool {
	return s.TotalFailed() == 0
}

// SortedModules returns the modules with any recorded result, in a
// deterministic order, so the reporter's final output never depends on
// worker scheduling (§5).
func (s TestStatistics) SortedModules() []ModuleID {
	seen := make(map[ModuleID]struct{})
	for mod := range s.Passed {
		seen[mod] = struct{}{}
	}
	for mod := range s.Failed {
		seen[mod] = struct{}{}
	}
	mods := make([]ModuleID, 0, len(seen))
	for mod := range seen {
		mods = append(mods, mod)
	}
	sort.Slice(mods, func(i, j int) bool {
		if mods[i].Address != mods[j].Address {
			return mods[i].Address < mods[j].Address
		}
		return mods[i].Name < mods[j].Name
	})
	return mods
}
