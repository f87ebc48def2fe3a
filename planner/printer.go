package planner

import (
	"fmt"
	"io"
	"strings"
)

// Format renders the plan rooted at node as an indented tree, one node per line.
func Format(node PlanNode) string {
	var sb strings.Builder
	_ = Fprint(&sb, node)
	return sb.String()
}

// Fprint writes the tree rendering of node to w.
func Fprint(w io.Writer, node PlanNode) error {
	return fprint(w, node, 0)
}

func fprint(w io.Writer, node PlanNode, depth int) error {
	indent := strings.Repeat("  ", depth)
	if node == nil {
		_, err := fmt.Fprintf(w, "%s<nil>\n", indent)
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%s\n", indent, node.String()); err != nil {
		return err
	}
	for _, child := range node.Children() {
		if err := fprint(w, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}
