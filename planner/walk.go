package planner

import (
	"reflect"

	"mit.edu/dsg/planopt/common"
)

// Walk visits node and its descendants in pre-order. If fn returns false the
// children of the current node are skipped.
func Walk(node PlanNode, fn func(PlanNode) bool) {
	if node == nil || !fn(node) {
		return
	}
	for _, child := range node.Children() {
		Walk(child, fn)
	}
}

// CountNodes returns the number of nodes in the tree for which pred holds.
func CountNodes(node PlanNode, pred func(PlanNode) bool) int {
	count := 0
	Walk(node, func(n PlanNode) bool {
		if pred(n) {
			count++
		}
		return true
	})
	return count
}

// IsSort reports whether node is a SortNode.
func IsSort(node PlanNode) bool {
	_, ok := node.(*SortNode)
	return ok
}

// Validate checks the structural preconditions the optimizer relies on: the
// plan is a tree (no node reachable twice) and no node or child is nil.
func Validate(root PlanNode) error {
	if isNilNode(root) {
		return common.NewError(common.InvalidPlanError, "plan is nil")
	}
	seen := make(map[PlanNode]struct{})
	return validate(root, seen)
}

func validate(node PlanNode, seen map[PlanNode]struct{}) error {
	if _, ok := seen[node]; ok {
		return common.NewError(common.InvalidPlanError, "node %q is reachable through more than one parent", node.String())
	}
	seen[node] = struct{}{}
	for i, child := range node.Children() {
		if isNilNode(child) {
			return common.NewError(common.InvalidPlanError, "child %d of %q is nil", i, node.String())
		}
		if err := validate(child, seen); err != nil {
			return err
		}
	}
	return nil
}

// isNilNode catches both a nil interface and a typed nil pointer.
func isNilNode(node PlanNode) bool {
	if node == nil {
		return true
	}
	v := reflect.ValueOf(node)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
