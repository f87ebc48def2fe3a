package optimizer

import (
	"sync"

	"github.com/tidwall/btree"

	"mit.edu/dsg/planopt/common"
	"mit.edu/dsg/planopt/planner"
)

// A Rule is a transformation of a whole plan tree.
type Rule interface {
	// Name identifies the rule in configuration, logs and metrics.
	Name() string

	// Apply returns the rewritten plan and the number of rewrites it made. A
	// rule never mutates the plan it is given.
	Apply(root planner.PlanNode) (planner.PlanNode, int)
}

var (
	registryMu sync.RWMutex
	registry   btree.Map[string, Rule]

	// defaultRules are run, in order, when the rule set is "default".
	defaultRules = []string{RemoveRedundantSortRuleName}
)

func init() {
	Register(RemoveRedundantSort{})
}

// Register makes a rule available to the optimizer under its name. It is meant
// to be called from init functions and panics if the name is taken.
func Register(rule Rule) {
	registryMu.Lock()
	defer registryMu.Unlock()

	_, exists := registry.Get(rule.Name())
	common.Assert(!exists, "optimizer rule %s registered twice", rule.Name())
	registry.Set(rule.Name(), rule)
}

// RegisteredRules returns the names of all registered rules in sorted order.
func RegisteredRules() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, registry.Len())
	registry.Scan(func(name string, _ Rule) bool {
		names = append(names, name)
		return true
	})
	return names
}

func lookupRule(name string) (Rule, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registry.Get(name)
}
