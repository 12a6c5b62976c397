package check

import (
	"github.com/desilang/cminus/compiler/internal/ast"
	"github.com/desilang/cminus/compiler/internal/diag"
	"github.com/desilang/cminus/compiler/internal/symtab"
)

/* ---------- declarations ---------- */

// declType reads the type tag in the first child and applies the array
// marker when array is set.
func declType(n *ast.Node, array bool) symtab.Type {
	var t symtab.Type
	if c := n.Child(0); c != nil && c.Kind == ast.KindTypeTag {
		t = symtab.ParseType(c.Value)
	}
	t.Array = array
	return t
}

func (a *Analyzer) declareVar(n *ast.Node) {
	typ := declType(n, n.Kind == ast.KindArrayVarDecl)
	if !a.table.Insert(symtab.Variable(n.Value, typ, a.scope, n.Line)) {
		a.report(diag.KeyVarRedeclared, n.Line, n.Value)
	}
}

func (a *Analyzer) declareFunc(n *ast.Node) {
	ret := declType(n, false)
	params := paramCount(n.Child(1))

	if !a.table.Insert(symtab.Function(n.Value, ret, n.Line, params)) {
		a.report(diag.KeyFuncRedeclared, n.Line, n.Value)
	}

	prev := a.scope
	a.scope = n.Value
	a.visit(n.Child(1))
	a.visit(n.Child(2))
	a.scope = prev
}

// paramCount distinguishes only "no parameters" from "some parameters":
// "void" or an empty list is 0, anything else is 1. Callers rely on this
// coarse count; it is not the arity.
func paramCount(p *ast.Node) int {
	if p == nil || p.Kind != ast.KindParams {
		return 0
	}
	if p.Value == "void" {
		return 0
	}
	if len(p.Children) > 0 {
		return 1
	}
	return 0
}

func (a *Analyzer) declareParam(n *ast.Node) {
	typ := declType(n, n.Kind == ast.KindArrayParam)
	if !a.table.Insert(symtab.Variable(n.Value, typ, a.scope, n.Line)) {
		a.report(diag.KeyParamRedeclared, n.Line, n.Value)
	}
}
