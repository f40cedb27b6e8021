package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/footprint-tools/parallax/internal/app"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the parallax version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "parallax version %s\n", app.Version)
		},
	}
}
