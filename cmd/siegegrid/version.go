package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/siegegrid"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of siegegrid",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("siegegrid version %s\n", siegegrid.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
