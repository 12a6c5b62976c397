package main

import "github.com/spf13/cobra"

/* ---------- check ---------- */

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Run semantic analysis and report diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, _, err := a.prepare(args[0])
			return err
		},
	}
}
