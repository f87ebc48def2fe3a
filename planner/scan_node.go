package planner

import (
	"fmt"

	"mit.edu/dsg/planopt/common"
)

type ScanDirection int

const (
	ScanForward ScanDirection = iota
	ScanBackward
)

func (d ScanDirection) String() string {
	if d == ScanBackward {
		return "backward"
	}
	return "forward"
}

// SeqScanNode represents a sequential scan over a table.
// It uses the TableOid to identify the target table.
type SeqScanNode struct {
	TableOid     common.ObjectID
	ForUpdate    bool
	outputSchema []common.Type
}

func NewSeqScanNode(tableOid common.ObjectID, outputSchema []common.Type, forUpdate bool) *SeqScanNode {
	return &SeqScanNode{
		TableOid:     tableOid,
		ForUpdate:    forUpdate,
		outputSchema: outputSchema,
	}
}

func (n *SeqScanNode) OutputSchema() []common.Type {
	return n.outputSchema
}

func (n *SeqScanNode) Children() []PlanNode {
	return nil
}

func (n *SeqScanNode) WithChildren(children []PlanNode) PlanNode {
	assertArity(n, children, 0)
	return n
}

func (n *SeqScanNode) OrderPolicy() OrderPolicy {
	return OrderTransparent
}

func (n *SeqScanNode) String() string {
	return fmt.Sprintf("SeqScan: TableOID(%d)", n.TableOid)
}

// IndexScanNode represents a scan using an index.
type IndexScanNode struct {
	IndexOid     common.ObjectID
	TableOid     common.ObjectID
	StartKey     []common.Value
	Direction    ScanDirection
	ForUpdate    bool
	outputSchema []common.Type
}

func NewIndexScanNode(indexOid common.ObjectID, tableOid common.ObjectID, outputSchema []common.Type, direction ScanDirection, startKey []common.Value, forUpdate bool) *IndexScanNode {
	return &IndexScanNode{
		IndexOid:     indexOid,
		TableOid:     tableOid,
		StartKey:     startKey,
		Direction:    direction,
		outputSchema: outputSchema,
		ForUpdate:    forUpdate,
	}
}

func (n *IndexScanNode) OutputSchema() []common.Type {
	return n.outputSchema
}

func (n *IndexScanNode) Children() []PlanNode {
	return nil
}

func (n *IndexScanNode) WithChildren(children []PlanNode) PlanNode {
	assertArity(n, children, 0)
	return n
}

func (n *IndexScanNode) OrderPolicy() OrderPolicy {
	return OrderTransparent
}

func (n *IndexScanNode) String() string {
	return fmt.Sprintf("IndexScan: IndexOID(%d) on TableOID(%d) %s", n.IndexOid, n.TableOid, n.Direction)
}

// IndexLookupNode represents a point lookup (equality match) using an index.
type IndexLookupNode struct {
	IndexOid     common.ObjectID
	TableOid     common.ObjectID
	EqualityKey  []common.Value
	ForUpdate    bool
	outputSchema []common.Type
}

func NewIndexLookupNode(indexOid common.ObjectID, tableOid common.ObjectID, outputSchema []common.Type, key []common.Value, forUpdate bool) *IndexLookupNode {
	return &IndexLookupNode{
		IndexOid:     indexOid,
		TableOid:     tableOid,
		EqualityKey:  key,
		outputSchema: outputSchema,
		ForUpdate:    forUpdate,
	}
}

func (n *IndexLookupNode) OutputSchema() []common.Type {
	return n.outputSchema
}

func (n *IndexLookupNode) Children() []PlanNode {
	return nil
}

func (n *IndexLookupNode) WithChildren(children []PlanNode) PlanNode {
	assertArity(n, children, 0)
	return n
}

func (n *IndexLookupNode) OrderPolicy() OrderPolicy {
	return OrderTransparent
}

func (n *IndexLookupNode) String() string {
	return fmt.Sprintf("IndexProbe: IndexOID(%d) %v", n.IndexOid, n.EqualityKey)
}
