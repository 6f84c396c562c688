package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/siegegrid/resize"
)

var minCmd = &cobra.Command{
	Use:   "min [template-file]",
	Short: "Report the smallest feasible size of a template",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tpl, err := loadTemplate(cmd, args)
		if err != nil {
			return err
		}
		w, h := resize.MinSize(tpl)
		fmt.Printf("%dx%d\n", w, h)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(minCmd)
}
