package main

import (
	"github.com/spf13/cobra"

	"github.com/desilang/cminus/compiler/internal/term"
	"github.com/desilang/cminus/compiler/internal/version"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			term.Wprintf(a.stdout, "%s\n", version.String())
		},
	}
}
