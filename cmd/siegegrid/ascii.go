package main

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/siegegrid/resize"
	"github.com/katalvlaran/siegegrid/topology"
)

var asciiCmd = &cobra.Command{
	Use:   "ascii [template-file]",
	Short: "Resize a template and print it as ASCII",
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

		out := tpl.Grid.String()
		if color, _ := cmd.Flags().GetBool("color"); color {
			out = colorize(out)
		}
		fmt.Println(out)

		return nil
	},
}

func init() {
	asciiCmd.Flags().IntP("width", "W", 0, "Target width (0 keeps the template width)")
	asciiCmd.Flags().IntP("height", "H", 0, "Target height (0 keeps the template height)")
	asciiCmd.Flags().Bool("color", false, "Colorize walls, corners and ground posts")
	rootCmd.AddCommand(asciiCmd)
}

// resizeForFlags applies -W/-H when given, keeping the original
// dimension for any axis left at zero.
func resizeForFlags(cmd *cobra.Command, tpl *topology.Template) (*topology.Template, error) {
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	if width == 0 {
		width = tpl.Grid.Width()
	}
	if height == 0 {
		height = tpl.Grid.Height()
	}
	if width == tpl.Grid.Width() && height == tpl.Grid.Height() {
		return tpl, nil
	}
	logger.Debug("resizing template",
		"from_width", tpl.Grid.Width(), "from_height", tpl.Grid.Height(),
		"width", width, "height", height)

	return resize.Resize(tpl, width, height)
}

// colorize paints structural runes: corners yellow, walls cyan, ground
// posts red, floors dim.
func colorize(s string) string {
	p := termenv.ColorProfile()
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '+':
			sb.WriteString(termenv.String(string(r)).Foreground(p.Color("3")).Bold().String())
		case '-', '|':
			sb.WriteString(termenv.String(string(r)).Foreground(p.Color("6")).String())
		case 'o':
			sb.WriteString(termenv.String(string(r)).Foreground(p.Color("1")).Bold().String())
		case '.':
			sb.WriteString(termenv.String(string(r)).Faint().String())
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
