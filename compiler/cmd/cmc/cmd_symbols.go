package main

import (
	"github.com/spf13/cobra"

	"github.com/desilang/cminus/compiler/internal/symtab"
)

/* ---------- symbols ---------- */

func newSymbolsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "symbols <file>",
		Short: "Analyze a tree and print its symbol table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, an, err := a.prepare(args[0])
			if err != nil {
				return err
			}
			symtab.Fprint(a.stdout, an.Table())
			return nil
		},
	}
}
