// Package main is the entry point for the character builder
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-charbuilder/cmd/server/client"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "charbuilder",
	Short: "D&D 5e character builder",
	Long: `charbuilder runs the character builder gRPC service, applies its database
migrations, and provides a client for walking a character draft through creation.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "charbuilder.yaml", "path to the YAML config file (optional)")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(repairDraftsCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
