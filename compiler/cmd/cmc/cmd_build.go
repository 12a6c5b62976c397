package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/desilang/cminus/compiler/internal/ast"
	"github.com/desilang/cminus/compiler/internal/symtab"
	"github.com/desilang/cminus/compiler/internal/tac"
	"github.com/desilang/cminus/compiler/internal/term"
)

/* ---------- build (tree → check → symbols → tac) ---------- */

type buildArgs struct {
	out    string // directory for <basename>.tac; empty skips the file
	noTree bool
	noSyms bool
	noTac  bool
}

func newBuildCmd(a *app) *cobra.Command {
	var b buildArgs
	cmd := &cobra.Command{
		Use:   "build [--out=dir] [--no-tree] [--no-symbols] [--no-tac] <file>",
		Short: "Run the whole front-end: outline, analysis, symbol table, three-address code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.build(args[0], b)
		},
	}
	f := cmd.Flags()
	f.StringVar(&b.out, "out", "", "also write the three-address code to <dir>/<basename>.tac")
	f.BoolVar(&b.noTree, "no-tree", false, "skip the tree outline")
	f.BoolVar(&b.noSyms, "no-symbols", false, "skip the symbol table")
	f.BoolVar(&b.noTac, "no-tac", false, "skip the three-address code listing")
	return cmd
}

func (a *app) build(file string, b buildArgs) error {
	c, err := a.settings()
	if err != nil {
		return &exitError{code: 2, err: err}
	}
	root, err := a.loadTree(c, file)
	if err != nil {
		return &exitError{code: 2, err: err}
	}

	if c.Dump.Tree && !b.noTree {
		term.Wprintf(a.stdout, "%s", ast.Dump(root))
	}

	// semantic errors block everything downstream
	an, n := a.analyze(c, root)
	if n > 0 {
		term.Wprintf(a.stderr, "code generation skipped\n")
		return &exitError{code: 1}
	}

	if c.Dump.Symbols && !b.noSyms {
		symtab.Fprint(a.stdout, an.Table())
	}

	code := tac.Generate(root)
	if c.Dump.TAC && !b.noTac {
		tac.Fprint(a.stdout, code)
	}

	if b.out != "" {
		path, err := writeTAC(b.out, file, code)
		if err != nil {
			return &exitError{code: 2, err: err}
		}
		term.Wprintf(a.stderr, "wrote %s\n", path)
	}
	return nil
}

// writeTAC emits one instruction per line to <dir>/<basename>.tac.
func writeTAC(dir, src string, code []tac.Instr) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	path := filepath.Join(dir, base+".tac")

	var sb strings.Builder
	for _, in := range code {
		term.Bprintf(&sb, "%d: %s\n", in.N, in.String())
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
