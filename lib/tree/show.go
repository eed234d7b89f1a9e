package tree

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
)

// ShowTango renders the whole preferred-path forest in key order, one
// node per line, crossing External boundaries. Members of a preferred
// path (Regular nodes) are rendered in red, boundaries in plain text.
func ShowTango(root *Node) string {
	var sb strings.Builder
	showTangoRec(&sb, root, 0)
	return sb.String()
}

func showTangoRec(sb *strings.Builder, h *Node, indent int) {
	if h.IsDummy() {
		return
	}
	showTangoRec(sb, h.left, indent+3)
	line := fmt.Sprintf("(%d, d=%d)", h.key, h.depth)
	sb.WriteString(strings.Repeat(" ", indent))
	sb.WriteString(lo.Ternary(h.kind == Regular, text.FgRed.Sprint(line), line))
	sb.WriteByte('\n')
	showTangoRec(sb, h.right, indent+3)
}

// Show renders a single auxiliary or standalone tree in key order with
// its per-node bookkeeping, stopping at boundaries.
func Show(t *Node) string {
	var sb strings.Builder
	showRec(&sb, t, 0)
	return sb.String()
}

func showRec(sb *strings.Builder, t *Node, indent int) {
	if t.IsEmpty() {
		return
	}
	showRec(sb, t.left, indent+3)
	fmt.Fprintf(sb, "%s(%d, c=%s, t=%s, min=%d, max=%d)\n",
		strings.Repeat(" ", indent), t.key, t.color, t.kind, t.minDepth, t.maxDepth)
	showRec(sb, t.right, indent+3)
}
