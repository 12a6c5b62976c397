package main

import (
	"github.com/spf13/cobra"

	"github.com/desilang/cminus/compiler/internal/tac"
)

/* ---------- tac ---------- */

func newTacCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tac <file>",
		Short: "Analyze a tree and print its three-address code",
		Long:  "Analyze a tree and print its three-address code. Nothing is generated when analysis reports errors.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, root, _, err := a.prepare(args[0])
			if err != nil {
				return err
			}
			code := tac.Generate(root)
			a.log.Logf("generated %d instruction(s)", len(code))
			tac.Fprint(a.stdout, code)
			return nil
		},
	}
}
