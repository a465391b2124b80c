package main

import "github.com/spf13/cobra"

// newRootCmd creates the top-level "curbside" command with all subcommands
// registered.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "curbside",
		Short: "A citizen report service",
		Long: "Curbside accepts citizen-submitted reports over HTTP and stores\n" +
			"them in an append-only CSV table. Administrators sign in with\n" +
			"Basic auth to retrieve stored reports.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newVersionCmd())

	return root
}
