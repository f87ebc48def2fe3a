package planner

import (
	"fmt"

	"mit.edu/dsg/planopt/common"
)

type AggregatorType int

const (
	AggCount AggregatorType = iota
	AggSum
	AggMin
	AggMax
)

func (a AggregatorType) String() string {
	switch a {
	case AggCount:
		return "COUNT"
	case AggSum:
		return "SUM"
	case AggMin:
		return "MIN"
	case AggMax:
		return "MAX"
	}
	return "???"
}

type AggregateClause struct {
	Type AggregatorType
	Expr Expr
}

func (c AggregateClause) String() string {
	return fmt.Sprintf("%s(%s)", c.Type.String(), c.Expr.String())
}

// AggregateNode represents a group-by and aggregation operation.
type AggregateNode struct {
	Child         PlanNode
	GroupByClause []Expr
	AggClauses    []AggregateClause
	outputSchema  []common.Type
}

func NewAggregateNode(child PlanNode, groupBy []Expr, aggregates []AggregateClause) *AggregateNode {
	outputSchema := make([]common.Type, len(groupBy)+len(aggregates))
	for i, expr := range groupBy {
		outputSchema[i] = expr.OutputType()
	}
	for i, agg := range aggregates {
		if agg.Type == AggCount {
			outputSchema[len(groupBy)+i] = common.IntType
			continue
		}
		outputSchema[len(groupBy)+i] = agg.Expr.OutputType()
	}

	return &AggregateNode{
		Child:         child,
		GroupByClause: groupBy,
		AggClauses:    aggregates,
		outputSchema:  outputSchema,
	}
}

func (n *AggregateNode) OutputSchema() []common.Type {
	return n.outputSchema
}

func (n *AggregateNode) Children() []PlanNode {
	return []PlanNode{n.Child}
}

func (n *AggregateNode) WithChildren(children []PlanNode) PlanNode {
	assertArity(n, children, 1)
	c := *n
	c.Child = children[0]
	return &c
}

func (n *AggregateNode) OrderPolicy() OrderPolicy {
	return OrderOpaque
}

func (n *AggregateNode) String() string {
	return fmt.Sprintf("Aggregate: GroupBy(%v) %v", n.GroupByClause, n.AggClauses)
}
