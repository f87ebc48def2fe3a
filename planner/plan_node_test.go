package planner

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mit.edu/dsg/planopt/common"
)

var testSchema = []common.Type{common.IntType, common.StringType}

func scan(oid common.ObjectID) *SeqScanNode {
	return NewSeqScanNode(oid, testSchema, false)
}

func idColumn() Expr {
	return NewColumnValueExpression(0, testSchema, "id")
}

func orderByID() []OrderByClause {
	return []OrderByClause{{Expr: idColumn(), Direction: SortOrderDescending}}
}

func TestOrderPolicyClassification(t *testing.T) {
	leaf := scan(1)
	tests := []struct {
		node     PlanNode
		expected OrderPolicy
	}{
		{NewOutputNode(leaf, []string{"id"}), OrderObserving},
		{NewSortMergeJoinNode(scan(1), scan(2), []Expr{idColumn()}, []Expr{idColumn()}), OrderObserving},
		{NewHashJoinNode(scan(1), scan(2), []Expr{idColumn()}, []Expr{idColumn()}), OrderOpaque},
		{NewBlockNestedLoopJoinNode(scan(1), scan(2), idColumn()), OrderOpaque},
		{NewIndexNestedLoopJoinNode(leaf, 2, 3, []Expr{idColumn()}, testSchema, false), OrderOpaque},
		{NewAggregateNode(leaf, []Expr{idColumn()}, nil), OrderOpaque},
		{NewLimitNode(leaf, 10), OrderOpaque},
		{NewTopNNode(leaf, 10, orderByID()), OrderOpaque},
		{NewSortNode(leaf, orderByID()), OrderTransparent},
		{NewFilterNode(leaf, idColumn()), OrderTransparent},
		{NewProjectionNode(leaf, []Expr{idColumn()}), OrderTransparent},
		{NewMaterializeNode(leaf), OrderTransparent},
		{NewInsertNode(1, leaf), OrderTransparent},
		{NewDeleteNode(1, leaf), OrderTransparent},
		{NewUpdateNode(1, leaf, []int{1}), OrderTransparent},
		{leaf, OrderTransparent},
		{NewIndexScanNode(2, 1, testSchema, ScanBackward, nil, false), OrderTransparent},
		{NewIndexLookupNode(2, 1, testSchema, []common.Value{common.NewIntValue(7)}, false), OrderTransparent},
	}

	for _, tt := range tests {
		t.Run(tt.node.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.node.OrderPolicy())
		})
	}
}

// TestWithChildrenPreservesAttributes checks that rebuilding a node only swaps
// its children.
func TestWithChildrenPreservesAttributes(t *testing.T) {
	oldLeaf, newLeaf := scan(1), scan(9)

	t.Run("sort", func(t *testing.T) {
		n := NewSortNode(oldLeaf, orderByID())
		rebuilt := n.WithChildren([]PlanNode{newLeaf}).(*SortNode)
		assert.NotSame(t, n, rebuilt)
		assert.Same(t, newLeaf, rebuilt.Child)
		assert.Equal(t, n.OrderBy, rebuilt.OrderBy)
		assert.Same(t, oldLeaf, n.Child, "original must not be mutated")
	})

	t.Run("hash join", func(t *testing.T) {
		n := NewHashJoinNode(scan(1), scan(2), []Expr{idColumn()}, []Expr{idColumn()})
		l, r := scan(3), scan(4)
		rebuilt := n.WithChildren([]PlanNode{l, r}).(*HashJoinNode)
		assert.Same(t, l, rebuilt.Left)
		assert.Same(t, r, rebuilt.Right)
		assert.Equal(t, n.LeftKeys, rebuilt.LeftKeys)
		assert.Equal(t, n.OutputSchema(), rebuilt.OutputSchema())
	})

	t.Run("limit", func(t *testing.T) {
		n := NewLimitNode(oldLeaf, 42)
		rebuilt := n.WithChildren([]PlanNode{newLeaf}).(*LimitNode)
		assert.Equal(t, 42, rebuilt.Limit)
		assert.Same(t, newLeaf, rebuilt.Child)
	})

	t.Run("aggregate", func(t *testing.T) {
		n := NewAggregateNode(oldLeaf, []Expr{idColumn()}, []AggregateClause{{Type: AggCount, Expr: idColumn()}})
		rebuilt := n.WithChildren([]PlanNode{newLeaf}).(*AggregateNode)
		assert.Equal(t, n.GroupByClause, rebuilt.GroupByClause)
		assert.Equal(t, n.AggClauses, rebuilt.AggClauses)
		assert.Equal(t, []common.Type{common.IntType, common.IntType}, rebuilt.OutputSchema())
	})

	t.Run("output", func(t *testing.T) {
		n := NewOutputNode(oldLeaf, []string{"id", "name"})
		rebuilt := n.WithChildren([]PlanNode{newLeaf}).(*OutputNode)
		assert.Equal(t, []string{"id", "name"}, rebuilt.ColumnNames)
	})

	t.Run("update", func(t *testing.T) {
		n := NewUpdateNode(5, oldLeaf, []int{0, 1})
		rebuilt := n.WithChildren([]PlanNode{newLeaf}).(*UpdateNode)
		assert.Equal(t, common.ObjectID(5), rebuilt.TableOid)
		assert.Equal(t, []int{0, 1}, rebuilt.ProjectionList)
	})

	t.Run("leaf", func(t *testing.T) {
		assert.Same(t, oldLeaf, oldLeaf.WithChildren(nil))
	})
}

func TestWithChildrenArity(t *testing.T) {
	assert.Panics(t, func() { NewSortNode(scan(1), nil).WithChildren(nil) })
	assert.Panics(t, func() {
		NewHashJoinNode(scan(1), scan(2), nil, nil).WithChildren([]PlanNode{scan(3)})
	})
	assert.Panics(t, func() { scan(1).WithChildren([]PlanNode{scan(2)}) })
}

func TestJoinSchemaDoesNotAlias(t *testing.T) {
	leftSchema := make([]common.Type, 1, 8)
	leftSchema[0] = common.IntType
	left := NewSeqScanNode(1, leftSchema, false)

	j1 := NewHashJoinNode(left, NewSeqScanNode(2, []common.Type{common.StringType}, false), nil, nil)
	j2 := NewHashJoinNode(left, NewSeqScanNode(3, []common.Type{common.IntType}, false), nil, nil)

	assert.Equal(t, []common.Type{common.IntType, common.StringType}, j1.OutputSchema())
	assert.Equal(t, []common.Type{common.IntType, common.IntType}, j2.OutputSchema())
}

func TestFormat(t *testing.T) {
	plan := NewOutputNode(
		NewHashJoinNode(
			NewSortNode(NewFilterNode(scan(1), NewComparisonExpression(idColumn(), NewConstantValueExpression(common.NewIntValue(3)), LessThan)), orderByID()),
			scan(2),
			[]Expr{idColumn()}, []Expr{idColumn()}),
		[]string{"id"})

	expected := strings.Join([]string{
		"Output: [id]",
		"  HashJoin: [id] = [id]",
		"    Sort: [id DESC]",
		"      Filter: (id < 3)",
		"        SeqScan: TableOID(1)",
		"    SeqScan: TableOID(2)",
		"",
	}, "\n")
	assert.Equal(t, expected, Format(plan))
}

func TestWalkAndCount(t *testing.T) {
	plan := NewOutputNode(
		NewLimitNode(NewSortNode(NewSortNode(scan(1), orderByID()), orderByID()), 1),
		[]string{"id"})

	assert.Equal(t, 5, CountNodes(plan, func(PlanNode) bool { return true }))
	assert.Equal(t, 2, CountNodes(plan, IsSort))

	var visited []string
	Walk(plan, func(n PlanNode) bool {
		visited = append(visited, n.String())
		_, isLimit := n.(*LimitNode)
		return !isLimit
	})
	assert.Equal(t, []string{"Output: [id]", "Limit: 1"}, visited)
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		plan := NewOutputNode(NewHashJoinNode(scan(1), scan(2), nil, nil), []string{"id"})
		require.NoError(t, Validate(plan))
	})

	t.Run("nil root", func(t *testing.T) {
		var sort *SortNode
		assertInvalidPlan(t, Validate(nil))
		assertInvalidPlan(t, Validate(sort))
	})

	t.Run("nil child", func(t *testing.T) {
		assertInvalidPlan(t, Validate(NewOutputNode(&SortNode{}, []string{"id"})))
	})

	t.Run("shared subtree", func(t *testing.T) {
		shared := scan(1)
		plan := &HashJoinNode{Left: shared, Right: shared}
		assertInvalidPlan(t, Validate(plan))
	})

	t.Run("cycle", func(t *testing.T) {
		sort := &SortNode{}
		sort.Child = NewFilterNode(sort, idColumn())
		assertInvalidPlan(t, Validate(sort))
	})
}

func assertInvalidPlan(t *testing.T, err error) {
	t.Helper()
	var dbErr common.GoDBError
	require.True(t, errors.As(err, &dbErr), "expected GoDBError, got %v", err)
	assert.Equal(t, common.InvalidPlanError, dbErr.Code)
}
