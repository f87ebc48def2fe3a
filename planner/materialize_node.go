package planner

import (
	"mit.edu/dsg/planopt/common"
)

// MaterializeNode acts as a pipeline barrier, fully buffering the child to reuse tuples on a rescan
type MaterializeNode struct {
	Child PlanNode
}

func NewMaterializeNode(child PlanNode) *MaterializeNode {
	return &MaterializeNode{
		Child: child,
	}
}

func (n *MaterializeNode) OutputSchema() []common.Type {
	return n.Child.OutputSchema()
}

func (n *MaterializeNode) Children() []PlanNode {
	return []PlanNode{n.Child}
}

func (n *MaterializeNode) WithChildren(children []PlanNode) PlanNode {
	assertArity(n, children, 1)
	return &MaterializeNode{Child: children[0]}
}

// OrderPolicy of Materialize is transparent: the buffer replays tuples in the order they arrived.
func (n *MaterializeNode) OrderPolicy() OrderPolicy {
	return OrderTransparent
}

func (n *MaterializeNode) String() string {
	return "Materialize"
}
