package planner

import (
	"fmt"

	"mit.edu/dsg/planopt/common"
)

// LimitNode limits the number of output tuples.
type LimitNode struct {
	Child PlanNode
	Limit int
}

func NewLimitNode(child PlanNode, limit int) *LimitNode {
	return &LimitNode{
		Child: child,
		Limit: limit,
	}
}

func (n *LimitNode) OutputSchema() []common.Type {
	return n.Child.OutputSchema()
}

func (n *LimitNode) Children() []PlanNode {
	return []PlanNode{n.Child}
}

func (n *LimitNode) WithChildren(children []PlanNode) PlanNode {
	assertArity(n, children, 1)
	c := *n
	c.Child = children[0]
	return &c
}

// OrderPolicy of a plain row-count limit is opaque: it promises no particular
// subset or order of its input.
func (n *LimitNode) OrderPolicy() OrderPolicy {
	return OrderOpaque
}

func (n *LimitNode) String() string {
	return fmt.Sprintf("Limit: %d", n.Limit)
}
