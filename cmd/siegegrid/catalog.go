package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/siegegrid/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List available templates",
	Long:  `Lists the built-in templates, or the entries of a YAML catalog given with --catalog.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := catalog.Builtin()
		if path, _ := cmd.Flags().GetString("catalog"); path != "" {
			var err error
			if cat, err = catalog.Load(path); err != nil {
				return err
			}
		}

		if name, _ := cmd.Flags().GetString("show"); name != "" {
			entry, err := cat.Get(name)
			if err != nil {
				return err
			}
			grid, err := entry.Parse()
			if err != nil {
				return err
			}
			fmt.Println(grid.String())
			return nil
		}

		for _, name := range cat.Names() {
			entry, _ := cat.Get(name)
			grid, err := entry.Parse()
			if err != nil {
				return err
			}
			fmt.Printf("%-12s %dx%d\n", name, grid.Width(), grid.Height())
		}

		return nil
	},
}

func init() {
	catalogCmd.Flags().String("show", "", "Print the named template instead of listing")
	rootCmd.AddCommand(catalogCmd)
}
