package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/desilang/cminus/compiler/internal/ast"
	"github.com/desilang/cminus/compiler/internal/build"
	"github.com/desilang/cminus/compiler/internal/check"
	"github.com/desilang/cminus/compiler/internal/config"
	"github.com/desilang/cminus/compiler/internal/symtab"
	"github.com/desilang/cminus/compiler/internal/term"
)

// app holds the streams and persistent flags shared by every subcommand.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath  string
	lang        string
	diagStderr  bool
	maxChildren int
	strictKinds bool
	verbose     bool

	log term.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "cmc",
		Short: "cmc: C- semantic front-end",
		Long: `cmc checks syntax trees of C- programs produced by the parser.

Trees are YAML or JSON documents of {kind, value, line, children} nodes.
Kinds are the parser tags (VAR, FUN_DEF, ID, ATRIB, SOMA, ...) or their
canonical names (VarDecl, FunctionDecl, Identifier, ...).

Exit status: 0 ok, 1 semantic errors, 2 usage or I/O errors.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log = term.Logger{W: a.stderr, Enabled: a.verbose}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "config file (default ./"+config.DefaultFile+" if present)")
	pf.StringVar(&a.lang, "lang", "", "diagnostic language: pt or en")
	pf.BoolVar(&a.diagStderr, "diag-stderr", false, "write diagnostics to stderr instead of stdout")
	pf.IntVar(&a.maxChildren, "max-children", 0, "fan-out bound for tree nodes (default 5)")
	pf.BoolVar(&a.strictKinds, "strict-kinds", false, "reject node kinds the analyzer does not know")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log pipeline steps to stderr")

	root.AddCommand(
		newVersionCmd(a),
		newTreeCmd(a),
		newCheckCmd(a),
		newSymbolsCmd(a),
		newTacCmd(a),
		newBuildCmd(a),
	)
	return root
}

/* ---------- shared pipeline ---------- */

// settings loads the config file and applies flag overrides.
func (a *app) settings() (*config.Config, error) {
	c, err := config.Load(a.configPath)
	if err != nil {
		return nil, err
	}
	if a.lang != "" {
		c.Lang = a.lang
	}
	if a.diagStderr {
		c.Diagnostics = config.Stderr
	}
	if a.maxChildren > 0 {
		c.MaxChildren = a.maxChildren
	}
	if a.strictKinds {
		c.StrictKinds = true
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.Path != "" {
		a.log.Logf("config %s", c.Path)
	}
	return c, nil
}

func (a *app) loadTree(c *config.Config, path string) (*ast.Node, error) {
	root, err := build.LoadTree(path, build.Options{MaxChildren: c.MaxChildren, StrictKinds: c.StrictKinds})
	if err != nil {
		return nil, err
	}
	a.log.Logf("loaded %s", path)
	return root, nil
}

// analyze runs the semantic pass and prints the summary line.
func (a *app) analyze(c *config.Config, root *ast.Node) (*check.Analyzer, int) {
	an := check.New(symtab.New(), check.Options{
		Out:  c.DiagWriter(a.stdout, a.stderr),
		Lang: c.DiagLang(),
	})
	n := an.Analyze(root)
	a.log.Logf("analysis done, %d symbol(s)", an.Table().Len())
	term.Wprintf(a.stderr, "summary: %d error(s)\n", n)
	return an, n
}

// prepare is settings + loadTree + analyze, the prefix of every command
// that needs a checked tree.
func (a *app) prepare(path string) (*config.Config, *ast.Node, *check.Analyzer, error) {
	c, err := a.settings()
	if err != nil {
		return nil, nil, nil, &exitError{code: 2, err: err}
	}
	root, err := a.loadTree(c, path)
	if err != nil {
		return nil, nil, nil, &exitError{code: 2, err: err}
	}
	an, n := a.analyze(c, root)
	if n > 0 {
		return c, root, an, &exitError{code: 1}
	}
	return c, root, an, nil
}
