// Package bootstrap implements the Storage Bootstrapper (§4.1): before any
// test runs, it computes a dependency-topological order over the modules a
// TestPlan needs and publishes their serialized bytecode into the shared
// in-memory ModuleStore every backend resolves against.
package bootstrap

import (
	"fmt"
	"sort"
	"strings"

	"movetest/internal/backend"
	"movetest/internal/model"
)

// CycleError is returned when the module dependency graph contains a
// cycle. It is fatal: the whole test run aborts (§4.1, §7).
type CycleError struct {
	Cycle []model.ModuleID
}

func (e *CycleError) Error() string {
	names := make([]string, len(e.Cycle))
	for i, id := range e.Cycle {
		names[i] = id.String()
	}
	return fmt.Sprintf("bootstrap: cyclic module dependency: %s", strings.Join(names, " -> "))
}

// Bootstrapper publishes compiled modules into a ModuleStore in dependency
// order.
type Bootstrapper struct {
	Store backend.ModuleStore
}

// New builds a Bootstrapper over the given store.
func New(store backend.ModuleStore) *Bootstrapper {
	return &Bootstrapper{Store: store}
}

// Publish computes the set of modules the plan's retained tests need
// (transitively, following CompiledModule.Dependencies), orders that set
// topologically, and publishes each module's bytecode. This runs after any
// Filter() has narrowed the plan's test list, but the closure still pulls
// in every dependency a surviving module needs, not just modules that
// themselves contain a matching test.
func (b *Bootstrapper) Publish(plan model.TestPlan) error {
	required := requiredModules(plan)

	order, err := topologicalOrder(required)
	if err != nil {
		return err
	}

	for _, id := range order {
		cm := required[id]
		if err := b.Store.Publish(id, cm.Bytecode); err != nil {
			return fmt.Errorf("bootstrap: publishing %s: %w", id, err)
		}
	}
	return nil
}

// requiredModules computes the transitive closure of modules reachable
// from the plan's module test plans.
func requiredModules(plan model.TestPlan) map[model.ModuleID]model.CompiledModule {
	required := make(map[model.ModuleID]model.CompiledModule)

	var include func(id model.ModuleID)
	include = func(id model.ModuleID) {
		if _, done := required[id]; done {
			return
		}
		cm, ok := plan.Compiled[id]
		if !ok {
			return
		}
		required[id] = cm
		for _, dep := range cm.Dependencies {
			include(dep)
		}
	}

	for _, mtp := range plan.Modules {
		include(mtp.Module)
	}
	return required
}

const (
	colorWhite = iota
	colorGray
	colorBlack
)

// topologicalOrder orders modules so that every module appears after all
// of its dependencies, using a depth-first search with cycle detection.
// Input is iterated in a sorted, deterministic order so that two runs over
// the same module set always publish in the same order (§4.1, §5).
func topologicalOrder(modules map[model.ModuleID]model.CompiledModule) ([]model.ModuleID, error) {
	color := make(map[model.ModuleID]int, len(modules))
	order := make([]model.ModuleID, 0, len(modules))
	var path []model.ModuleID

	var visit func(id model.ModuleID) error
	visit = func(id model.ModuleID) error {
		switch color[id] {
		case colorBlack:
			return nil
		case colorGray:
			cycle := append(append([]model.ModuleID{}, path...), id)
			return &CycleError{Cycle: cycle}
		}

		color[id] = colorGray
		path = append(path, id)

		if cm, ok := modules[id]; ok {
			for _, dep := range cm.Dependencies {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		path = path[:len(path)-1]
		color[id] = colorBlack
		order = append(order, id)
		return nil
	}

	ids := make([]model.ModuleID, 0, len(modules))
	for id := range modules {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if ids[i].Address != ids[j].Address {
			return ids[i].Address < ids[j].Address
		}
		return ids[i].Name < ids[j].Name
	})

	for _, id := range ids {
		if err := visit(id); err != nil {
			return nil, err
		}
	}
	return order, nil
}
