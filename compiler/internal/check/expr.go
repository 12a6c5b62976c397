package check

import (
	"github.com/desilang/cminus/compiler/internal/ast"
	"github.com/desilang/cminus/compiler/internal/diag"
	"github.com/desilang/cminus/compiler/internal/symtab"
)

/* ---------- assignments + arithmetic ---------- */

// operandType resolves the static type of an assignment or arithmetic
// operand. Only identifiers, indexed arrays and (when literals is set)
// numbers have one; anything else yields the zero Type, which is skipped.
func (a *Analyzer) operandType(n *ast.Node, literals bool) symtab.Type {
	switch n.Kind {
	case ast.KindIdentifier:
		if s := a.table.Lookup(n.Value, a.scope); s != nil {
			return s.Type
		}
	case ast.KindArrayIdentifier:
		if s := a.table.Lookup(n.Value, a.scope); s != nil {
			return s.Type.Elem()
		}
	case ast.KindNumber:
		if literals {
			return symtab.Int
		}
	}
	return symtab.Type{}
}

// checkAssign walks the target before the value, then compares their types.
// A literal on the left is never typed.
func (a *Analyzer) checkAssign(n *ast.Node) {
	var lt, rt symtab.Type
	if l := n.Child(0); l != nil {
		a.visit(l)
		lt = a.operandType(l, false)
	}
	if r := n.Child(1); r != nil {
		a.visit(r)
		rt = a.operandType(r, true)
	}
	if lt.Known() && rt.Known() && lt.String() != rt.String() {
		a.report(diag.KeyAssignMismatch, n.Line, lt.String(), rt.String())
	}
}

func (a *Analyzer) checkArith(n *ast.Node) {
	var lt, rt symtab.Type
	if l := n.Child(0); l != nil {
		a.visit(l)
		lt = a.operandType(l, true)
	}
	if r := n.Child(1); r != nil {
		a.visit(r)
		rt = a.operandType(r, true)
	}
	if notInt(lt) || notInt(rt) {
		a.report(diag.KeyArithNonInt, n.Line, lt.String(), rt.String())
	}
}

func notInt(t symtab.Type) bool {
	return t.Known() && t.String() != symtab.Int.String()
}
