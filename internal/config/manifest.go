package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"movetest/internal/model"
)

// PlanManifest is the on-disk YAML shape of a TestPlan (§6, "movetest
// mcp-serve accepting a serialized TestPlan manifest"). Compiling Move
// source into bytecode and source maps is an injected collaborator's job
// (§6) and is out of scope here, so a manifest names already-compiled
// modules by address/name and carries only the metadata the core engine
// needs to drive bootstrap, execution, and reporting: it is the boundary
// artifact a compiler front end would emit for this runner to consume.
type PlanManifest struct {
	Modules []ManifestModule `yaml:"modules"`
}

// ManifestModule is one compiled module plus its test cases.
type ManifestModule struct {
	Address      string             `yaml:"address"`
	Name         string             `yaml:"name"`
	Dependencies []string           `yaml:"dependencies,omitempty"` // "address::name" of each dependency
	Tests        []ManifestTestCase `yaml:"tests"`
}

// ManifestTestCase mirrors model.TestCase/model.ExpectedFailure in a form
// that rounds-trips through YAML: ExpectedFailure is a sum type in
// internal/model (Kind tag + payload), so the manifest spells out the same
// three shapes as three optional fields, resolved to the one active Kind
// by resolveExpected. A test with none of the three set is expected to
// succeed (nil *ExpectedFailure).
type ManifestTestCase struct {
	Name        string                `yaml:"name"`
	ExpectAny   bool                  `yaml:"expect_any,omitempty"`   // ExpectedAny: any failure is acceptable
	ExpectError *ManifestExpectedErr  `yaml:"expect_error,omitempty"` // ExpectedWithError: exact (major_status, sub_status, location) match, location always undefined
	AbortCode   *uint64               `yaml:"abort_code,omitempty"`   // ExpectedWithCode (deprecated form, still supported)
}

// ManifestExpectedErr is the manifest spelling of a MoveError: major status
// and optional sub-status only. A manifest cannot name a location, so the
// resulting MoveError always has an undefined location and only matches
// errors whose location is undefined too.
type ManifestExpectedErr struct {
	MajorStatus string  `yaml:"major_status"`
	SubStatus   *uint64 `yaml:"sub_status,omitempty"`
}

func (tc ManifestTestCase) resolveExpected() *model.ExpectedFailure {
	switch {
	case tc.AbortCode != nil:
		return model.ExpectCode(*tc.AbortCode)
	case tc.ExpectError != nil:
		return model.ExpectError(model.MoveError{
			MajorStatus: model.StatusCode(tc.ExpectError.MajorStatus),
			SubStatus:   tc.ExpectError.SubStatus,
		})
	case tc.ExpectAny:
		return model.ExpectAny()
	default:
		return nil
	}
}

// LoadPlanManifest reads and converts a PlanManifest file into the
// model.TestPlan the core engine operates on.
func LoadPlanManifest(path string) (model.TestPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.TestPlan{}, ConfigurationError{FilePath: path, Message: "reading test plan manifest", Cause: err}
	}

	var manifest PlanManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return model.TestPlan{}, ConfigurationError{FilePath: path, Message: "parsing test plan manifest YAML", Cause: err}
	}

	return manifest.toTestPlan(), nil
}

func (m PlanManifest) toTestPlan() model.TestPlan {
	plan := model.TestPlan{
		Compiled: make(map[model.ModuleID]model.CompiledModule, len(m.Modules)),
	}

	for _, mm := range m.Modules {
		id := model.ModuleID{Address: model.Address(mm.Address), Name: mm.Name}

		var deps []model.ModuleID
		for _, depStr := range mm.Dependencies {
			deps = append(deps, parseModuleID(depStr))
		}
		plan.Compiled[id] = model.CompiledModule{ID: id, Dependencies: deps}

		var tests []model.TestCase
		for _, tc := range mm.Tests {
			tests = append(tests, model.TestCase{Name: tc.Name, Expected: tc.resolveExpected()})
		}
		plan.Modules = append(plan.Modules, model.ModuleTestPlan{Module: id, Tests: tests})
	}

	return plan
}

// parseModuleID parses the "address::name" form used for dependency
// references in a manifest; a malformed entry degrades to an empty-name
// module rather than panicking, since a manifest error should surface as a
// reporting anomaly, not a crash.
func parseModuleID(s string) model.ModuleID {
	for i := 0; i+1 < len(s); i++ {
		if s[i] == ':' && s[i+1] == ':' {
			return model.ModuleID{Address: model.Address(s[:i]), Name: s[i+2:]}
		}
	}
	return model.ModuleID{Address: model.Address(s)}
}
