package check

import (
	"io"

	"github.com/desilang/cminus/compiler/internal/ast"
	"github.com/desilang/cminus/compiler/internal/diag"
	"github.com/desilang/cminus/compiler/internal/symtab"
	"github.com/desilang/cminus/compiler/internal/term"
)

// EntryPoint is the function every program must declare.
const EntryPoint = "main"

// Options tune diagnostic output.
type Options struct {
	Out  io.Writer // diagnostic stream; nil keeps diagnostics in memory only
	Lang diag.Lang // message templates; zero value is diag.LangPT
}

// Analyzer is one semantic-analysis context: the symbol table it populates,
// the current-scope register and the running error count. Independent
// compilation units need independent Analyzers and tables.
type Analyzer struct {
	table *symtab.Table
	opts  Options

	scope  string
	errors int
	diags  []diag.Diagnostic
}

// New returns an analyzer that declares into table.
func New(table *symtab.Table, opts Options) *Analyzer {
	if table == nil {
		table = symtab.New()
	}
	if opts.Lang == "" {
		opts.Lang = diag.LangPT
	}
	return &Analyzer{table: table, opts: opts, scope: symtab.Global}
}

// Analyze runs the semantic pass over root (which may be nil) and returns the
// number of semantic errors. Every violation is written to Options.Out as
// soon as it is found; the walk never stops early. A non-zero result means
// later stages must not run.
//
// Analyze does not clear the table. Call Table().Clear() before re-running
// on the same table to get an identical transcript.
func (a *Analyzer) Analyze(root *ast.Node) int {
	a.errors = 0
	a.diags = nil
	a.scope = symtab.Global

	a.declareBuiltins()

	if root != nil {
		a.visit(root)
	}

	if s := a.table.LookupInScope(EntryPoint, symtab.Global); s == nil || !s.IsFunction() {
		a.report(diag.KeyMainMissing, 0)
	}
	return a.errors
}

// Table exposes the populated table to later stages and reports.
func (a *Analyzer) Table() *symtab.Table { return a.table }

// Errors is the count returned by the last Analyze.
func (a *Analyzer) Errors() int { return a.errors }

// Diagnostics returns the transcript of the last Analyze in emission order.
func (a *Analyzer) Diagnostics() []diag.Diagnostic {
	out := make([]diag.Diagnostic, len(a.diags))
	copy(out, a.diags)
	return out
}

// Analyze is a convenience for a one-shot run with Portuguese messages.
func Analyze(root *ast.Node, table *symtab.Table, out io.Writer) int {
	return New(table, Options{Out: out}).Analyze(root)
}

// library routines every C- program can call
func (a *Analyzer) declareBuiltins() {
	a.table.Insert(symtab.Function("input", symtab.Int, 0, 0))
	a.table.Insert(symtab.Function("output", symtab.Void, 0, 1))
}

func (a *Analyzer) report(key string, line int, args ...any) {
	d := diag.Make(a.opts.Lang, key, line, args...)
	a.diags = append(a.diags, d)
	a.errors++
	if a.opts.Out != nil {
		term.Wprintf(a.opts.Out, "%s\n", d.Error())
	}
}

/* ---------- walk ---------- */

func (a *Analyzer) visit(n *ast.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case ast.KindVarDecl, ast.KindArrayVarDecl:
		a.declareVar(n)
	case ast.KindFunctionDecl:
		a.declareFunc(n)
	case ast.KindIdentifier:
		a.resolve(n, diag.KeyVarUndeclared)
	case ast.KindArrayIdentifier:
		a.resolve(n, diag.KeyArrayUndeclared)
		a.visitChildren(n)
	case ast.KindAssignment:
		a.checkAssign(n)
	case ast.KindAddition, ast.KindSubtraction, ast.KindMultiplication, ast.KindDivision:
		a.checkArith(n)
	case ast.KindReturn:
		a.visitChildren(n)
	case ast.KindParam, ast.KindArrayParam:
		a.declareParam(n)
		a.visitChildren(n)
	case ast.KindParams, ast.KindParamList:
		a.visitChildren(n)
	case ast.KindTypeTag, ast.KindNumber, ast.KindOther:
		a.visitChildren(n)
	}
}

func (a *Analyzer) visitChildren(n *ast.Node) {
	for _, c := range n.Children {
		a.visit(c)
	}
}

func (a *Analyzer) resolve(n *ast.Node, key string) *symtab.Symbol {
	s := a.table.Lookup(n.Value, a.scope)
	if s == nil {
		a.report(key, n.Line, n.Value)
	}
	return s
}
