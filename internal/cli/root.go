// Package cli implements the catalogctl command tree.
package cli

import (
	"os"

	"github.com/omlco/catalog/internal/client"
	"github.com/spf13/cobra"
)

var serverAddr string

// rootCmd is the catalogctl entry point
var rootCmd = &cobra.Command{
	Use:           "catalogctl",
	Short:         "Manage the OML&CO product catalog",
	Long:          `catalogctl talks to a running catalog server over its REST API: list, inspect, create, update and delete products, or browse the shop interactively.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverAddr, "addr", "http://localhost:3000", "base URL of the catalog server")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(browseCmd)
}

// apiClient builds the API client for the configured server address.
func apiClient() *client.Client {
	return client.New(serverAddr)
}
