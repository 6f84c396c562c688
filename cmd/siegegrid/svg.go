package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/siegegrid/geometry"
)

var svgCmd = &cobra.Command{
	Use:   "svg [template-file]",
	Short: "Resize a template and write it as an SVG document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tpl, err := loadTemplate(cmd, args)
		if err != nil {
			return err
		}
		tpl, err = resizeForFlags(cmd, tpl)
		if err != nil {
			return err
		}

		scale, _ := cmd.Flags().GetFloat64("scale")
		opts := geometry.DefaultOptions()
		opts.Scale = scale
		paths, err := geometry.Emit(tpl.Grid, opts)
		if err != nil {
			return err
		}

		out := os.Stdout
		if path, _ := cmd.Flags().GetString("output"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
			logger.Debug("writing svg", "path", path, "paths", len(paths))
		}

		return geometry.WriteSVG(out, paths, geometry.DefaultSVGOptions())
	},
}

func init() {
	svgCmd.Flags().IntP("width", "W", 0, "Target width (0 keeps the template width)")
	svgCmd.Flags().IntP("height", "H", 0, "Target height (0 keeps the template height)")
	svgCmd.Flags().Float64("scale", 10, "Output units per grid cell")
	svgCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(svgCmd)
}
