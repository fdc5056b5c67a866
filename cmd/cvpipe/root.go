package main

import (
	"github.com/spf13/cobra"
)

const app = "cvpipe"

var rootCmd = &cobra.Command{
	Use:   app,
	Short: "cvpipe turns résumé documents into structured JSON records",
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info); overrides CVPIPE_LOG_LEVEL")
	rootCmd.PersistentFlags().String("log-format", "", "log format (console, json); overrides CVPIPE_LOG_FORMAT")
}
