package optimizer

import (
	"fmt"
	"slices"

	"mit.edu/dsg/planopt/planner"
)

// RemoveRedundantSortRuleName is the registry name of RemoveRedundantSort.
const RemoveRedundantSortRuleName = "remove-redundant-sort"

// RemoveRedundantSort drops Sort nodes whose ordering no consumer above them
// can observe.
//
// The rule walks the plan once, carrying a flag that says whether the node
// being visited has to hand its rows to its parent in order. Observing nodes
// (the plan's Output, merge joins) set the flag, opaque nodes (joins,
// aggregations, limits) clear it, and every other node passes it on. When a
// node's own flag is clear, any Sort among its direct children is replaced by
// the Sort's input.
type RemoveRedundantSort struct{}

var _ Rule = RemoveRedundantSort{}

func (RemoveRedundantSort) Name() string {
	return RemoveRedundantSortRuleName
}

// Apply rewrites the plan rooted at root and returns the new root along with
// the number of Sort nodes removed. The root is visited as if its consumer
// requires ordering, so a Sort can only be removed below an opaque node.
func (r RemoveRedundantSort) Apply(root planner.PlanNode) (planner.PlanNode, int) {
	removed := 0
	return r.rewrite(root, true, &removed), removed
}

func (r RemoveRedundantSort) rewrite(node planner.PlanNode, orderingRequired bool, removed *int) planner.PlanNode {
	switch policy := node.OrderPolicy(); policy {
	case planner.OrderObserving:
		orderingRequired = true
	case planner.OrderOpaque:
		orderingRequired = false
	case planner.OrderTransparent:
	default:
		panic(fmt.Sprintf("%s: unknown order policy %d", node.String(), policy))
	}

	children := node.Children()
	var newChildren []planner.PlanNode
	for i, child := range children {
		rewritten := r.rewrite(child, orderingRequired, removed)
		if !orderingRequired {
			if sort, ok := rewritten.(*planner.SortNode); ok {
				rewritten = sort.Child
				*removed++
			}
		}
		if rewritten == child {
			continue
		}
		if newChildren == nil {
			newChildren = slices.Clone(children)
		}
		newChildren[i] = rewritten
	}

	if newChildren == nil {
		return node
	}
	return node.WithChildren(newChildren)
}
