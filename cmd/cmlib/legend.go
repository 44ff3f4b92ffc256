package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/titusjan/cmlib/pkg/config"
	"github.com/titusjan/cmlib/pkg/legend"
)

func newLegendCmd(cfg *config.Config) *cobra.Command {
	var dataDir string
	var output string
	var width, height int
	var border bool
	var title bool
	var quiet bool

	cmd := &cobra.Command{
		Use:   "legend KEY",
		Short: "Render the legend bar of a color map as SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := loadLibrary(dataDir, quiet)
			if err != nil {
				return err
			}

			cm := lib.FindByKey(args[0])
			if cm == nil {
				return fmt.Errorf("no color map with key %q", args[0])
			}

			opts := legend.Options{
				Width:      width,
				Height:     height,
				DrawBorder: border,
			}
			if title {
				opts.Title = cm.PrettyName()
			}

			svg, err := legend.New(cm, opts).Generate()
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = fmt.Fprint(os.Stdout, svg)
				return err
			}
			return os.WriteFile(output, []byte(svg), 0644)
		},
	}
	cmd.Flags().StringVar(&dataDir, "data", cfg.DataDir, "Catalog data directory")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().IntVar(&width, "width", cfg.LegendWidth, "Legend width in pixels")
	cmd.Flags().IntVar(&height, "height", cfg.LegendHeight, "Legend height in pixels")
	cmd.Flags().BoolVar(&border, "border", false, "Draw a border around the bar")
	cmd.Flags().BoolVar(&title, "title", false, "Draw the map name inside the bar")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Disable progress spinner")
	return cmd
}
