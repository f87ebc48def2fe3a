package planner

import (
	"mit.edu/dsg/planopt/common"
)

// OrderPolicy describes how a plan node treats the ordering requirement placed
// on it by its consumer when deciding what to demand of its own children.
type OrderPolicy int

const (
	// OrderTransparent nodes neither need nor destroy ordering. Their children
	// inherit whatever the consumer above demanded.
	OrderTransparent OrderPolicy = iota
	// OrderOpaque nodes make the order of their input unobservable in their
	// output. Their children are never required to be ordered.
	OrderOpaque
	// OrderObserving nodes depend on the order of their input. Their children
	// are always required to be ordered.
	OrderObserving
)

func (p OrderPolicy) String() string {
	switch p {
	case OrderTransparent:
		return "transparent"
	case OrderOpaque:
		return "opaque"
	case OrderObserving:
		return "observing"
	}
	return "unknown"
}

// PlanNode represents the static structure of a query plan.
// It is immutable and contains schema information and the plan tree structure.
type PlanNode interface {
	// OutputSchema returns the schema of the tuples produced by this node.
	OutputSchema() []common.Type

	// Children returns the child plan nodes.
	Children() []PlanNode

	// WithChildren returns a copy of the node with its children replaced. All other
	// attributes are carried over unchanged. The number of children must match
	// Children().
	WithChildren(children []PlanNode) PlanNode

	// OrderPolicy classifies how the node propagates ordering requirements.
	OrderPolicy() OrderPolicy

	// String returns a string representation of the plan node.
	String() string
}

func assertArity(n PlanNode, children []PlanNode, want int) {
	common.Assert(len(children) == want, "%s: expected %d children, got %d", n.String(), want, len(children))
}
