package planner

import (
	"fmt"
	"strings"

	"mit.edu/dsg/planopt/common"
)

// OutputNode is the root of a query plan. It hands the rows of its child to the
// client, so whatever order its child produces is observable.
type OutputNode struct {
	Child       PlanNode
	ColumnNames []string
}

func NewOutputNode(child PlanNode, columnNames []string) *OutputNode {
	return &OutputNode{
		Child:       child,
		ColumnNames: columnNames,
	}
}

func (n *OutputNode) OutputSchema() []common.Type {
	return n.Child.OutputSchema()
}

func (n *OutputNode) Children() []PlanNode {
	return []PlanNode{n.Child}
}

func (n *OutputNode) WithChildren(children []PlanNode) PlanNode {
	assertArity(n, children, 1)
	c := *n
	c.Child = children[0]
	return &c
}

func (n *OutputNode) OrderPolicy() OrderPolicy {
	return OrderObserving
}

func (n *OutputNode) String() string {
	return fmt.Sprintf("Output: [%s]", strings.Join(n.ColumnNames, ", "))
}
