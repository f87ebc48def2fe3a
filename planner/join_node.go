package planner

import (
	"fmt"

	"mit.edu/dsg/planopt/common"
)

// HashJoinNode represents a hash join between two children.
type HashJoinNode struct {
	Left         PlanNode
	Right        PlanNode
	LeftKeys     []Expr
	RightKeys    []Expr
	outputSchema []common.Type
}

func NewHashJoinNode(left, right PlanNode, leftKeys, rightKeys []Expr) *HashJoinNode {
	return &HashJoinNode{
		Left:         left,
		Right:        right,
		LeftKeys:     leftKeys,
		RightKeys:    rightKeys,
		outputSchema: joinSchema(left, right.OutputSchema()),
	}
}

func (n *HashJoinNode) OutputSchema() []common.Type {
	return n.outputSchema
}

func (n *HashJoinNode) Children() []PlanNode {
	return []PlanNode{n.Left, n.Right}
}

func (n *HashJoinNode) WithChildren(children []PlanNode) PlanNode {
	assertArity(n, children, 2)
	c := *n
	c.Left, c.Right = children[0], children[1]
	return &c
}

func (n *HashJoinNode) OrderPolicy() OrderPolicy {
	return OrderOpaque
}

func (n *HashJoinNode) String() string {
	return fmt.Sprintf("HashJoin: %v = %v", n.LeftKeys, n.RightKeys)
}

// NestedLoopJoinNode represents a block nested loop join.
type NestedLoopJoinNode struct {
	Left         PlanNode
	Right        PlanNode
	Predicate    Expr
	outputSchema []common.Type
}

func NewBlockNestedLoopJoinNode(left, right PlanNode, predicate Expr) *NestedLoopJoinNode {
	return &NestedLoopJoinNode{
		Left:         left,
		Right:        right,
		Predicate:    predicate,
		outputSchema: joinSchema(left, right.OutputSchema()),
	}
}

func (n *NestedLoopJoinNode) OutputSchema() []common.Type {
	return n.outputSchema
}

func (n *NestedLoopJoinNode) Children() []PlanNode {
	return []PlanNode{n.Left, n.Right}
}

func (n *NestedLoopJoinNode) WithChildren(children []PlanNode) PlanNode {
	assertArity(n, children, 2)
	c := *n
	c.Left, c.Right = children[0], children[1]
	return &c
}

func (n *NestedLoopJoinNode) OrderPolicy() OrderPolicy {
	return OrderOpaque
}

func (n *NestedLoopJoinNode) String() string {
	return fmt.Sprintf("BNLJ: %s", n.Predicate.String())
}

// IndexNestedLoopJoinNode represents a join where the right side is accessed via an index lookup.
// The "LeftKeys" here are the expressions from the Left tuple used to probe the Right Index.
type IndexNestedLoopJoinNode struct {
	Left          PlanNode
	LeftKeys      []Expr // Expressions from Left to probe the index
	RightTableOid common.ObjectID
	RightIndexOid common.ObjectID
	ForUpdate     bool
	outputSchema  []common.Type
}

func NewIndexNestedLoopJoinNode(left PlanNode, innerTableOid, innerIndexOid common.ObjectID, leftKeys []Expr, innerSchema []common.Type, forUpdate bool) *IndexNestedLoopJoinNode {
	return &IndexNestedLoopJoinNode{
		Left:          left,
		RightTableOid: innerTableOid,
		RightIndexOid: innerIndexOid,
		LeftKeys:      leftKeys,
		outputSchema:  joinSchema(left, innerSchema),
		ForUpdate:     forUpdate,
	}
}

func (n *IndexNestedLoopJoinNode) OutputSchema() []common.Type {
	return n.outputSchema
}

func (n *IndexNestedLoopJoinNode) Children() []PlanNode {
	return []PlanNode{n.Left}
}

func (n *IndexNestedLoopJoinNode) WithChildren(children []PlanNode) PlanNode {
	assertArity(n, children, 1)
	c := *n
	c.Left = children[0]
	return &c
}

func (n *IndexNestedLoopJoinNode) OrderPolicy() OrderPolicy {
	return OrderOpaque
}

func (n *IndexNestedLoopJoinNode) String() string {
	return fmt.Sprintf("IndexJoin: Table(%d) via Index(%d)", n.RightTableOid, n.RightIndexOid)
}

// SortMergeJoinNode represents a join where both children are sorted on the join keys.
type SortMergeJoinNode struct {
	Left         PlanNode
	Right        PlanNode
	LeftKeys     []Expr
	RightKeys    []Expr
	outputSchema []common.Type
}

func NewSortMergeJoinNode(left, right PlanNode, leftKeys, rightKeys []Expr) *SortMergeJoinNode {
	return &SortMergeJoinNode{
		Left:         left,
		Right:        right,
		LeftKeys:     leftKeys,
		RightKeys:    rightKeys,
		outputSchema: joinSchema(left, right.OutputSchema()),
	}
}

func (n *SortMergeJoinNode) OutputSchema() []common.Type {
	return n.outputSchema
}

func (n *SortMergeJoinNode) Children() []PlanNode {
	return []PlanNode{n.Left, n.Right}
}

func (n *SortMergeJoinNode) WithChildren(children []PlanNode) PlanNode {
	assertArity(n, children, 2)
	c := *n
	c.Left, c.Right = children[0], children[1]
	return &c
}

// OrderPolicy of a merge join is observing: it walks both inputs in key order,
// so the sorts feeding it must stay.
func (n *SortMergeJoinNode) OrderPolicy() OrderPolicy {
	return OrderObserving
}

func (n *SortMergeJoinNode) String() string {
	return fmt.Sprintf("SortMergeJoin: %v = %v", n.LeftKeys, n.RightKeys)
}

// joinSchema concatenates the left schema with the inner one into a fresh slice,
// so that joins never alias the left child's schema.
func joinSchema(left PlanNode, inner []common.Type) []common.Type {
	leftSchema := left.OutputSchema()
	out := make([]common.Type, 0, len(leftSchema)+len(inner))
	out = append(out, leftSchema...)
	return append(out, inner...)
}
