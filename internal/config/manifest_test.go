package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movetest/internal/model"
)

const manifestYAML = `
modules:
  - address: "0x1"
    name: "counter"
    dependencies: ["0x1::base"]
    tests:
      - name: "increments"
      - name: "aborts_on_overflow"
        abort_code: 1
      - name: "aborts_with_exact_error"
        expect_error:
          major_status: "ABORTED"
          sub_status: 2
      - name: "aborts_any"
        expect_any: true
  - address: "0x1"
    name: "base"
    tests: []
`

func writeManifest(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(manifestYAML), 0644))
	return path
}

func TestLoadPlanManifest_BuildsTestPlan(t *testing.T) {
	plan, err := LoadPlanManifest(writeManifest(t))
	require.NoError(t, err)

	require.Len(t, plan.Modules, 2)
	assert.Equal(t, 4, plan.TestCount())

	counter := model.ModuleID{Address: "0x1", Name: "counter"}
	cm, ok := plan.Compiled[counter]
	require.True(t, ok)
	assert.Equal(t, []model.ModuleID{{Address: "0x1", Name: "base"}}, cm.Dependencies)
}

func TestLoadPlanManifest_ResolvesExpectedFailureVariants(t *testing.T) {
	plan, err := LoadPlanManifest(writeManifest(t))
	require.NoError(t, err)

	counter := model.ModuleID{Address: "0x1", Name: "counter"}
	var mtp model.ModuleTestPlan
	for _, m := range plan.Modules {
		if m.Module == counter {
			mtp = m
		}
	}

	byName := make(map[string]model.TestCase)
	for _, tc := range mtp.Tests {
		byName[tc.Name] = tc
	}

	assert.Nil(t, byName["increments"].Expected)

	require.NotNil(t, byName["aborts_on_overflow"].Expected)
	assert.Equal(t, model.ExpectedWithCode, byName["aborts_on_overflow"].Expected.Kind)
	assert.EqualValues(t, 1, byName["aborts_on_overflow"].Expected.Code)

	require.NotNil(t, byName["aborts_with_exact_error"].Expected)
	assert.Equal(t, model.ExpectedWithError, byName["aborts_with_exact_error"].Expected.Kind)
	assert.EqualValues(t, "ABORTED", byName["aborts_with_exact_error"].Expected.Error.MajorStatus)
	require.NotNil(t, byName["aborts_with_exact_error"].Expected.Error.SubStatus)
	assert.EqualValues(t, 2, *byName["aborts_with_exact_error"].Expected.Error.SubStatus)

	require.NotNil(t, byName["aborts_any"].Expected)
	assert.Equal(t, model.ExpectedAny, byName["aborts_any"].Expected.Kind)
}

func TestLoadPlanManifest_MissingFileIsConfigurationError(t *testing.T) {
	_, err := LoadPlanManifest(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	var cfgErr ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestParseModuleID(t *testing.T) {
	assert.Equal(t, model.ModuleID{Address: "0x1", Name: "base"}, parseModuleID("0x1::base"))
	assert.Equal(t, model.ModuleID{Address: "0x1"}, parseModuleID("0x1"))
}
