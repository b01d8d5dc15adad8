package backend

import "movetest/internal/model"

// StatusBackendUnconfigured is returned by UnconfiguredVM in place of a real
// major status, so a run that was never wired to a real VM is reported as a
// distinct, identifiable failure rather than silently passing or panicking.
const StatusBackendUnconfigured model.StatusCode = "BACKEND_UNCONFIGURED"

// UnconfiguredVM is the placeholder PrimaryVM/ReferenceVM used when no real
// bytecode interpreter has been injected (§6: the VM itself is a consumed
// interface, supplied by the embedding binary, not implemented in this
// package). It lets the rest of the pipeline — bootstrap, adjudicator,
// matcher, runner, reporter — be exercised end to end before a real VM is
// wired in.
type UnconfiguredVM struct{}

// ExecuteFunction implements PrimaryVM.
func (UnconfiguredVM) ExecuteFunction(module model.ModuleID, function string, args [][]byte, meter *GasMeter) ([][]byte, ChangeSet, *model.VMError) {
	return nil, ChangeSet{}, &model.VMError{
		MajorStatus: StatusBackendUnconfigured,
		Location:    model.Location{Kind: model.LocationModule, Module: module},
	}
}

// UnconfiguredReferenceVM is the ReferenceVM counterpart to UnconfiguredVM.
type UnconfiguredReferenceVM struct{}

// Interpret implements ReferenceVM.
func (UnconfiguredReferenceVM) Interpret(module model.ModuleID, function string, args [][]byte, global GlobalEnvironment) ([][]byte, *model.VMError, *PropertyFailure) {
	return nil, &model.VMError{
		MajorStatus: StatusBackendUnconfigured,
		Location:    model.Location{Kind: model.LocationModule, Module: module},
	}, nil
}

// UnconfiguredModelBuilder is the ModelBuilder counterpart: it succeeds
// with an empty GlobalEnvironment rather than failing the whole run, so a
// caller that enables dual-backend mode without a real reference VM still
// sees per-test UnconfiguredReferenceVM errors rather than a hard startup
// failure.
type UnconfiguredModelBuilder struct{}

// Build implements ModelBuilder.
func (UnconfiguredModelBuilder) Build(sourceFiles []string, namedAddresses map[string]model.Address) (GlobalEnvironment, error) {
	return GlobalEnvironment(nil), nil
}
