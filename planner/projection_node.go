package planner

import (
	"fmt"
	"strings"

	"mit.edu/dsg/planopt/common"
)

// ProjectionNode projects specific columns or expressions from its child.
type ProjectionNode struct {
	Child       PlanNode
	Expressions []Expr
}

func NewProjectionNode(child PlanNode, exprs []Expr) *ProjectionNode {
	return &ProjectionNode{
		Child:       child,
		Expressions: exprs,
	}
}

func (n *ProjectionNode) OutputSchema() []common.Type {
	out := make([]common.Type, len(n.Expressions))
	for i, e := range n.Expressions {
		out[i] = e.OutputType()
	}
	return out
}

func (n *ProjectionNode) Children() []PlanNode {
	return []PlanNode{n.Child}
}

func (n *ProjectionNode) WithChildren(children []PlanNode) PlanNode {
	assertArity(n, children, 1)
	c := *n
	c.Child = children[0]
	return &c
}

func (n *ProjectionNode) OrderPolicy() OrderPolicy {
	return OrderTransparent
}

func (n *ProjectionNode) String() string {
	parts := make([]string, len(n.Expressions))
	for i, e := range n.Expressions {
		parts[i] = e.String()
	}
	return fmt.Sprintf("Projection: [%s]", strings.Join(parts, ", "))
}
