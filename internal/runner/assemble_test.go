package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movetest/internal/backend"
	"movetest/internal/driver"
	"movetest/internal/model"
)

type noopWriter struct{}

func (noopWriter) WriteStatus(status driver.Status, qualifiedName string) {}

func TestAssemble_SingleBackendNeedsNoReferenceCollaborators(t *testing.T) {
	cfg := Config{GasLimit: 1000, CheckReferenceVM: false}
	session, err := Assemble(cfg, backend.UnconfiguredVM{}, nil, nil, noopWriter{})
	require.NoError(t, err)
	assert.NotNil(t, session.Bootstrapper)
	assert.NotNil(t, session.Runner)
}

func TestAssemble_DualBackendWithoutCollaboratorsFails(t *testing.T) {
	cfg := Config{GasLimit: 1000, CheckReferenceVM: true}
	_, err := Assemble(cfg, backend.UnconfiguredVM{}, nil, nil, noopWriter{})
	require.Error(t, err)
}

func TestAssemble_DualBackendWithUnconfiguredCollaboratorsSucceeds(t *testing.T) {
	cfg := Config{GasLimit: 1000, CheckReferenceVM: true}
	session, err := Assemble(cfg, backend.UnconfiguredVM{}, backend.UnconfiguredReferenceVM{}, backend.UnconfiguredModelBuilder{}, noopWriter{})
	require.NoError(t, err)
	assert.NotNil(t, session.Runner)
}

func TestAssemble_RunEndToEndOverUnconfiguredBackendReportsFailures(t *testing.T) {
	cfg := Config{GasLimit: 1000}
	session, err := Assemble(cfg, backend.UnconfiguredVM{}, nil, nil, noopWriter{})
	require.NoError(t, err)

	mod := model.ModuleID{Address: "0x1", Name: "counter"}
	plan := model.TestPlan{
		Modules:  []model.ModuleTestPlan{{Module: mod, Tests: []model.TestCase{{Name: "t"}}}},
		Compiled: map[model.ModuleID]model.CompiledModule{mod: {ID: mod}},
	}

	require.NoError(t, session.Bootstrapper.Publish(plan))

	stats := session.Runner.Run(nil, plan) //nolint:staticcheck // Run's ctx carries no cancellation semantics
	assert.Equal(t, 1, stats.TotalFailed())
}
