// Package cmd holds the command line entry points of the API.
package cmd

import (
	"context"
	"os"

	"github.com/acl-api/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "acl-api",
	Short: "User, role and permission management API",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadEnv()
	},
}

// Execute runs the command selected on the command line
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
