package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTestStatistics_RecordAndTotals(t *testing.T) {
	stats := NewTestStatistics()
	mod := ModuleID{Address: "0x1", Name: "counter"}

	stats.RecordPass(mod, TestRunInfo{Function: "incr"})
	stats.RecordFail(mod, TestFailure{Info: TestRunInfo{Function: "decr"}})

	assert.Equal(t, 1, stats.TotalPassed())
	assert.Equal(t, 1, stats.TotalFailed())
	assert.Equal(t, 2, stats.Total())
	assert.False(t, stats.OK())
}

func TestTestStatistics_CombineIsAssociativeOverDisjointModules(t *testing.T) {
	a := NewTestStatistics()
	a.RecordPass(ModuleID{Address: "0x1", Name: "a"}, TestRunInfo{Function: "f"})

	b := NewTestStatistics()
	b.RecordPass(ModuleID{Address: "0x1", Name: "b"}, TestRunInfo{Function: "g"})

	c := NewTestStatistics()
	c.RecordFail(ModuleID{Address: "0x1", Name: "c"}, TestFailure{})

	left := a.Combine(b).Combine(c)
	right := a.Combine(b.Combine(c))

	assert.Equal(t, left.TotalPassed(), right.TotalPassed())
	assert.Equal(t, left.TotalFailed(), right.TotalFailed())
	assert.Equal(t, 3, left.Total())
}

func TestTestStatistics_SortedModulesIsDeterministic(t *testing.T) {
	stats := NewTestStatistics()
	stats.RecordPass(ModuleID{Address: "0x2", Name: "z"}, TestRunInfo{})
	stats.RecordPass(ModuleID{Address: "0x1", Name: "a"}, TestRunInfo{})
	stats.RecordFail(ModuleID{Address: "0x1", Name: "b"}, TestFailure{})

	mods := stats.SortedModules()
	assert.Equal(t, []ModuleID{
		{Address: "0x1", Name: "a"},
		{Address: "0x1", Name: "b"},
		{Address: "0x2", Name: "z"},
	}, mods)
}

func TestTestRunInfo_Less(t *testing.T) {
	assert.True(t, TestRunInfo{Function: "a"}.Less(TestRunInfo{Function: "b"}))
	assert.False(t, TestRunInfo{Function: "b"}.Less(TestRunInfo{Function: "a"}))
}
