package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"omni/logx"
)

var rootCmd = &cobra.Command{
	Use:   "omni",
	Short: "Omni token ledger node CLI",
	Long:  "Command line interface for running and managing an Omni token ledger domain.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logx.Error("CMD", "Command execution failed:", err)
		os.Exit(1)
	}
}
