package main

import (
	"github.com/spf13/cobra"

	"github.com/desilang/cminus/compiler/internal/ast"
	"github.com/desilang/cminus/compiler/internal/term"
)

/* ---------- tree ---------- */

func newTreeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tree <file>",
		Short: "Load a syntax tree and print its outline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.settings()
			if err != nil {
				return &exitError{code: 2, err: err}
			}
			root, err := a.loadTree(c, args[0])
			if err != nil {
				return &exitError{code: 2, err: err}
			}
			term.Wprintf(a.stdout, "%s", ast.Dump(root))
			return nil
		},
	}
}
