package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "formview",
	Short: "Project intake form with constraint validation",
	Long: `formview mounts the project intake form (title, description, people)
and two project lists from HTML templates, validates submissions and hands
accepted projects to the configured sink.

  formview serve    # Serve the form over HTTP
  formview prompt   # Fill the form from the terminal
  formview render   # Print the mounted page`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "formview.yaml", "config file path")
}
