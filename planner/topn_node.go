package planner

import (
	"fmt"

	"mit.edu/dsg/planopt/common"
)

// TopNNode represents a combined Sort + Limit operation (often using a heap).
type TopNNode struct {
	Child   PlanNode
	Limit   int
	OrderBy []OrderByClause
}

func NewTopNNode(child PlanNode, limit int, orderBy []OrderByClause) *TopNNode {
	return &TopNNode{
		Child:   child,
		Limit:   limit,
		OrderBy: orderBy,
	}
}

func (n *TopNNode) OutputSchema() []common.Type {
	return n.Child.OutputSchema()
}

func (n *TopNNode) Children() []PlanNode {
	return []PlanNode{n.Child}
}

func (n *TopNNode) WithChildren(children []PlanNode) PlanNode {
	assertArity(n, children, 1)
	c := *n
	c.Child = children[0]
	return &c
}

// OrderPolicy of TopN is opaque. It establishes its own order, so the order of
// its input never reaches its consumer.
func (n *TopNNode) OrderPolicy() OrderPolicy {
	return OrderOpaque
}

func (n *TopNNode) String() string {
	return fmt.Sprintf("TopN: Limit %d [%s]", n.Limit, formatOrderBy(n.OrderBy))
}
