package planner

import (
	"fmt"
	"strings"

	"mit.edu/dsg/planopt/common"
)

type SortDirection int

const (
	SortOrderAscending SortDirection = iota
	SortOrderDescending
)

func (d SortDirection) String() string {
	if d == SortOrderDescending {
		return "DESC"
	}
	return "ASC"
}

type OrderByClause struct {
	Expr      Expr
	Direction SortDirection
}

func (c OrderByClause) String() string {
	return fmt.Sprintf("%s %s", c.Expr.String(), c.Direction.String())
}

func formatOrderBy(orderBy []OrderByClause) string {
	parts := make([]string, len(orderBy))
	for i, c := range orderBy {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

// SortNode sorts the input tuples.
type SortNode struct {
	Child   PlanNode
	OrderBy []OrderByClause
}

func NewSortNode(child PlanNode, orderBy []OrderByClause) *SortNode {
	return &SortNode{
		Child:   child,
		OrderBy: orderBy,
	}
}

func (n *SortNode) OutputSchema() []common.Type {
	return n.Child.OutputSchema()
}

func (n *SortNode) Children() []PlanNode {
	return []PlanNode{n.Child}
}

func (n *SortNode) WithChildren(children []PlanNode) PlanNode {
	assertArity(n, children, 1)
	c := *n
	c.Child = children[0]
	return &c
}

// OrderPolicy of a sort is transparent: whether its own input needs to be
// ordered is decided by what sits above the sort.
func (n *SortNode) OrderPolicy() OrderPolicy {
	return OrderTransparent
}

func (n *SortNode) String() string {
	return fmt.Sprintf("Sort: [%s]", formatOrderBy(n.OrderBy))
}
