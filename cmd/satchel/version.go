package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	version    = "0.1.0"
	modulePath = "github.com/petar-djukic/satchel"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the satchel version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "satchel v%s\nmodule: %s\n", version, modulePath)
		return nil
	},
}
