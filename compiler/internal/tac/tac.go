package tac

import (
	"fmt"
	"io"
	"strings"

	"github.com/desilang/cminus/compiler/internal/ast"
	"github.com/desilang/cminus/compiler/internal/term"
)

// Instr is one three-address instruction: Result = Arg1 Op Arg2.
// Copies use Op "=" and leave Arg2 empty. Indexed loads (Op "[]") read
// Arg1[Arg2]; indexed stores (Op "[]=") write Arg2 into Result[Arg1].
type Instr struct {
	N      int
	Op     string
	Arg1   string
	Arg2   string
	Result string
}

func (i Instr) String() string {
	switch i.Op {
	case "=":
		return fmt.Sprintf("%s = %s", i.Result, i.Arg1)
	case "[]":
		return fmt.Sprintf("%s = %s[%s]", i.Result, i.Arg1, i.Arg2)
	case "[]=":
		return fmt.Sprintf("%s[%s] = %s", i.Result, i.Arg1, i.Arg2)
	}
	return fmt.Sprintf("%s = %s %s %s", i.Result, i.Arg1, i.Op, i.Arg2)
}

var ops = map[ast.Kind]string{
	ast.KindAddition:       "+",
	ast.KindSubtraction:    "-",
	ast.KindMultiplication: "*",
	ast.KindDivision:       "/",
}

type generator struct {
	code  []Instr
	temps int
}

// Generate linearizes root into three-address code. root must already have
// passed semantic analysis with zero errors; Generate performs no checks.
func Generate(root *ast.Node) []Instr {
	g := &generator{}
	if root == nil {
		return nil
	}
	g.gen(root)
	return g.code
}

func (g *generator) emit(op, a1, a2, res string) {
	g.code = append(g.code, Instr{N: len(g.code) + 1, Op: op, Arg1: a1, Arg2: a2, Result: res})
}

func (g *generator) temp() string {
	t := fmt.Sprintf("t%d", g.temps)
	g.temps++
	return t
}

// gen returns the operand that holds n's value, or "" when n has none.
func (g *generator) gen(n *ast.Node) string {
	if n == nil {
		return ""
	}
	if n.Kind.IsArithmetic() {
		a1 := g.gen(n.Child(0))
		a2 := g.gen(n.Child(1))
		t := g.temp()
		g.emit(ops[n.Kind], a1, a2, t)
		return t
	}
	switch n.Kind {
	case ast.KindArrayIdentifier:
		idx := g.gen(n.Child(0))
		t := g.temp()
		g.emit("[]", n.Value, idx, t)
		return t
	case ast.KindAssignment:
		v := g.gen(n.Child(1))
		l := n.Child(0)
		switch {
		case l == nil:
			return v
		case l.Kind == ast.KindIdentifier:
			g.emit("=", v, "", l.Value)
			return l.Value
		case l.Kind == ast.KindArrayIdentifier:
			idx := g.gen(l.Child(0))
			g.emit("[]=", idx, v, l.Value)
			return v
		}
		return v
	case ast.KindNumber, ast.KindIdentifier:
		return n.Value
	default:
		var last string
		for _, c := range n.Children {
			if r := g.gen(c); r != "" {
				last = r
			}
		}
		return last
	}
}

var rule = strings.Repeat("=", 80)

// Fprint writes the instruction table.
func Fprint(w io.Writer, code []Instr) {
	term.Wprintf(w, "\n%s\n", rule)
	term.Wprintf(w, "%s\n", "                        CODIGO INTERMEDIARIO (3-ADDRESS CODE)")
	term.Wprintf(w, "%s\n", rule)
	term.Wprintf(w, "%-8s %-10s %-15s %-15s %-15s\n", "Num", "Op", "Operando1", "Operando2", "Resultado")
	term.Wprintf(w, "%s\n", strings.Repeat("-", 80))
	for _, in := range code {
		term.Wprintf(w, "%-8d %-10s %-15s %-15s %-15s\n", in.N, in.Op, in.Arg1, in.Arg2, in.Result)
	}
	term.Wprintf(w, "%s\n", rule)
}
