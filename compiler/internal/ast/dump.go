package ast

import (
	"strings"

	"github.com/desilang/cminus/compiler/internal/term"
)

/*** DUMP (pretty outline for CLI) ***/

// Dump renders the tree one node per line:
//
//	- FUN_DEF (main) [linha 1]
//	  - TIPO (int) [linha 1]
func Dump(n *Node) string {
	var b strings.Builder
	dump(&b, n, 0)
	return b.String()
}

func dump(b *strings.Builder, n *Node, depth int) {
	if n == nil {
		return
	}
	b.WriteString(strings.Repeat("  ", depth))
	term.Bprintf(b, "- %s", n.Name())
	if n.Value != "" {
		term.Bprintf(b, " (%s)", n.Value)
	}
	term.Bprintf(b, " [linha %d]\n", n.Line)
	for _, c := range n.Children {
		dump(b, c, depth+1)
	}
}
