// Package adjudicator implements the Cross-Backend Adjudicator (§4.4): when
// dual-backend mode is enabled, it runs a test on both the primary and
// reference VMs, canonicalizes the two results, and reports a mismatch or a
// reference-only property violation before the Outcome Matcher ever sees
// the test. A cross-VM divergence subsumes any expected-failure analysis,
// since the backends disagreeing invalidates whatever the declared
// expectation assumed about one of them.
package adjudicator

import (
	"movetest/internal/backend"
	"movetest/internal/model"
)

// Adjudicator runs one test against one or both backends depending on
// whether Reference is set.
type Adjudicator struct {
	Primary   *backend.PrimaryExecutor
	Reference *backend.ReferenceExecutor // nil disables dual-backend mode
	Adapter   backend.ResultAdapter
	GasBudget uint64
}

// New builds an Adjudicator. Pass a nil reference executor to run
// single-backend (primary VM only).
func New(primary *backend.PrimaryExecutor, reference *backend.ReferenceExecutor, adapter backend.ResultAdapter, gasBudget uint64) *Adjudicator {
	return &Adjudicator{Primary: primary, Reference: reference, Adapter: adapter, GasBudget: gasBudget}
}

// Run executes module::test_name. It always returns the primary backend's
// outcome, run info, and any captured textual output, for the matcher and
// Module Test Driver to consult when handled is false. When handled is
// true, failure (if non-nil) is the final verdict and the Outcome Matcher
// must not be consulted (§4.4, §8).
func (a *Adjudicator) Run(module model.ModuleID, tc model.TestCase) (outcome model.ExecOutcome, info model.TestRunInfo, failure *model.TestFailure, handled bool, output string) {
	outcome, _, info, output = a.Primary.Execute(module, tc.Name, tc.Arguments, a.GasBudget)

	if a.Reference == nil {
		return outcome, info, nil, false, output
	}

	referenceOutcome, _, property := a.Reference.Execute(module, tc.Name, tc.Arguments)
	canonicalPrimary := a.Adapter.Canonicalize(outcome)

	if !canonicalPrimary.Equal(referenceOutcome) {
		mismatch := &model.TestFailure{Info: info, Reason: model.ReasonMismatchFailure(outcome, referenceOutcome)}
		return outcome, info, mismatch, true, output
	}

	if property != nil {
		propFail := &model.TestFailure{Info: info, Reason: model.ReasonPropertyFailure(property.Details)}
		return outcome, info, propFail, true, output
	}

	return outcome, info, nil, false, output
}
