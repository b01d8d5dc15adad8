// Package model defines the data shared by every component of the test
// runner: the compiled test plan, the expected-failure annotations attached
// to each test case, and the statistics the runner accumulates while
// executing them.
package model

import "fmt"

// Address is an account address as produced by the compiler. It is kept as
// an opaque hex string here; the core never interprets its bytes.
type Address string

// ModuleID uniquely names a compiled module.
type ModuleID struct {
	Address Address
	Name    string
}

func (m ModuleID) String() string {
	return fmt.Sprintf("%s::%s", m.Address, m.Name)
}

// LocationKind distinguishes the three shapes a VM error location can take.
type LocationKind int

const (
	// LocationUndefined marks a location the VM could not attribute to any
	// module or script (e.g. a verifier-time failure).
	LocationUndefined LocationKind = iota
	// LocationScript marks an error raised by the top-level test script
	// rather than by a called module.
	LocationScript
	// LocationModule marks an error raised inside a specific module.
	LocationModule
)

// Location is the third component of a MoveError: where the failure was
// attributed. Only Module is populated when Kind is LocationModule.
type Location struct {
	Kind   LocationKind
	Module ModuleID
}

func (l Location) String() string {
	switch l.Kind {
	case LocationScript:
		return "script"
	case LocationModule:
		return l.Module.String()
	default:
		return "undefined"
	}
}

// Equal reports whether two locations refer to the same place. Equality is
// componentwise, matching MoveError's equality contract.
func (l Location) Equal(other Location) bool {
	if l.Kind != other.Kind {
		return false
	}
	if l.Kind == LocationModule {
		return l.Module == other.Module
	}
	return true
}
