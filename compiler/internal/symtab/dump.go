package symtab

import (
	"io"
	"strings"

	"github.com/desilang/cminus/compiler/internal/term"
)

var rule = strings.Repeat("=", 80)

// Fprint writes the symbol table report, most recent declaration first.
func Fprint(w io.Writer, t *Table) {
	term.Wprintf(w, "\n%s\n", rule)
	term.Wprintf(w, "%s\n", center("TABELA DE SIMBOLOS", 80))
	term.Wprintf(w, "%s\n", rule)
	term.Wprintf(w, "%-20s %-10s %-15s %-8s %-10s\n", "Nome", "Tipo", "Escopo", "Linha", "Categoria")
	term.Wprintf(w, "%s\n", strings.Repeat("-", 80))
	for i := len(t.order) - 1; i >= 0; i-- {
		s := t.order[i]
		term.Wprintf(w, "%-20s %-10s %-15s %-8d %-10s\n", s.Name, s.Type, s.Scope, s.Line, s.Category())
	}
	term.Wprintf(w, "%s\n", rule)
}

func center(s string, width int) string {
	pad := (width - len(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
