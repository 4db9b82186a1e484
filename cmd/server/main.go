package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "projtrack",
	Short: "Project tracking backend",
	Long: `projtrack stores users, student and faculty profiles, projects and the
technologies, themes and departments linked to them, and serves them over HTTP.

Without a subcommand it runs the HTTP server.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var initDBCmd = &cobra.Command{
	Use:   "initdb",
	Short: "Create missing tables and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInitDB()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default: ./config.yaml or ./config/config.yaml)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initDBCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
