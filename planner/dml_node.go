package planner

import (
	"fmt"

	"mit.edu/dsg/planopt/common"
)

// The DML nodes below report a row count and are treated as order
// transparent: the optimizer never relaxes an ordering the statement's
// consumer might have asked for.

// InsertNode represents an insertion into a table.
type InsertNode struct {
	TableOid common.ObjectID
	Child    PlanNode
}

func NewInsertNode(tableOid common.ObjectID, child PlanNode) *InsertNode {
	return &InsertNode{
		TableOid: tableOid,
		Child:    child,
	}
}

func (n *InsertNode) OutputSchema() []common.Type {
	return []common.Type{common.IntType} // Returns count of inserted rows
}

func (n *InsertNode) Children() []PlanNode {
	return []PlanNode{n.Child}
}

func (n *InsertNode) WithChildren(children []PlanNode) PlanNode {
	assertArity(n, children, 1)
	return &InsertNode{TableOid: n.TableOid, Child: children[0]}
}

func (n *InsertNode) OrderPolicy() OrderPolicy {
	return OrderTransparent
}

func (n *InsertNode) String() string {
	return fmt.Sprintf("Insert: TableOID(%d)", n.TableOid)
}

// DeletionNode represents a deletion from a table.
type DeletionNode struct {
	TableOid common.ObjectID
	Child    PlanNode
}

func NewDeleteNode(tableOid common.ObjectID, child PlanNode) *DeletionNode {
	return &DeletionNode{
		TableOid: tableOid,
		Child:    child,
	}
}

func (n *DeletionNode) OutputSchema() []common.Type {
	return []common.Type{common.IntType} // Returns count of deleted rows
}

func (n *DeletionNode) Children() []PlanNode {
	return []PlanNode{n.Child}
}

func (n *DeletionNode) WithChildren(children []PlanNode) PlanNode {
	assertArity(n, children, 1)
	return &DeletionNode{TableOid: n.TableOid, Child: children[0]}
}

func (n *DeletionNode) OrderPolicy() OrderPolicy {
	return OrderTransparent
}

func (n *DeletionNode) String() string {
	return fmt.Sprintf("Delete: TableOID(%d)", n.TableOid)
}

// UpdateNode represents an update to a table.
type UpdateNode struct {
	TableOid       common.ObjectID
	ProjectionList []int
	Child          PlanNode
}

func NewUpdateNode(tableOid common.ObjectID, child PlanNode, projectionList []int) *UpdateNode {
	return &UpdateNode{
		TableOid:       tableOid,
		ProjectionList: projectionList,
		Child:          child,
	}
}

func (n *UpdateNode) OutputSchema() []common.Type {
	return []common.Type{common.IntType}
}

func (n *UpdateNode) Children() []PlanNode {
	return []PlanNode{n.Child}
}

func (n *UpdateNode) WithChildren(children []PlanNode) PlanNode {
	assertArity(n, children, 1)
	c := *n
	c.Child = children[0]
	return &c
}

func (n *UpdateNode) OrderPolicy() OrderPolicy {
	return OrderTransparent
}

func (n *UpdateNode) String() string {
	return fmt.Sprintf("Update: TableOID(%d)", n.TableOid)
}
