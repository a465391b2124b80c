package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "curbside v"+version)
		},
	}
}
