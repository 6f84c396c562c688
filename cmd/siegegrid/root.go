package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/siegegrid/catalog"
	"github.com/katalvlaran/siegegrid/internal/logging"
	"github.com/katalvlaran/siegegrid/template"
	"github.com/katalvlaran/siegegrid/topology"
)

var rootCmd = &cobra.Command{
	Use:   "siegegrid",
	Short: "siegegrid generates resizable siege-engine structures from ASCII templates",
	Long: `siegegrid parses compact ASCII templates of walls, towers, ramps and
bridges, rescales them to any feasible size without losing a corner, a
spur or a ground post, and renders the result as ASCII or SVG.`,
}

var logger = logging.NewNop()

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("template", "", "Use a named catalog template instead of a file")
	rootCmd.PersistentFlags().String("catalog", "", "YAML catalog file to load named templates from")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cobra.OnInitialize(func() {
		level := slog.LevelError
		if v, _ := rootCmd.PersistentFlags().GetBool("verbose"); v {
			level = slog.LevelDebug
		}
		logger = logging.New(level)
	})
}

// loadTemplate resolves the template source: a file path argument, or a
// catalog name given with --template (searched in --catalog, falling
// back to the built-in catalog).
func loadTemplate(cmd *cobra.Command, args []string) (*topology.Template, error) {
	name, _ := cmd.Flags().GetString("template")
	switch {
	case name != "":
		cat := catalog.Builtin()
		if path, _ := cmd.Flags().GetString("catalog"); path != "" {
			var err error
			if cat, err = catalog.Load(path); err != nil {
				return nil, err
			}
		}
		entry, err := cat.Get(name)
		if err != nil {
			return nil, err
		}
		grid, err := entry.Parse()
		if err != nil {
			return nil, err
		}
		return topology.Extract(grid)
	case len(args) > 0:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, err
		}
		grid, err := template.Parse(string(data), template.DefaultParseOptions())
		if err != nil {
			return nil, err
		}
		return topology.Extract(grid)
	default:
		return nil, fmt.Errorf("need a template file argument or --template name")
	}
}
