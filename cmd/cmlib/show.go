package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/titusjan/cmlib/pkg/config"
)

func newShowCmd(cfg *config.Config) *cobra.Command {
	var dataDir string
	var jsonOutput bool
	var quiet bool

	cmd := &cobra.Command{
		Use:   "show KEY",
		Short: "Show the full metadata of one color map",
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

			md := cm.MetaData()
			if jsonOutput {
				return printJSON(md)
			}

			argb, err := cm.ARGBBytes()
			if err != nil {
				return err
			}
			size, _ := argb.Dims()

			catalog := cm.CatalogMetaData()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			_, _ = fmt.Fprintf(w, "Key:\t%s\n", cm.Key())
			_, _ = fmt.Fprintf(w, "Name:\t%s\n", md.Name)
			_, _ = fmt.Fprintf(w, "Pretty name:\t%s\n", md.PrettyName)
			_, _ = fmt.Fprintf(w, "Catalog:\t%s (%s %s)\n", catalog.Name, catalog.Version, catalog.Date)
			_, _ = fmt.Fprintf(w, "License:\t%s\n", catalog.License)
			_, _ = fmt.Fprintf(w, "Category:\t%s\n", md.Category)
			_, _ = fmt.Fprintf(w, "Colors:\t%d\n", size)
			_, _ = fmt.Fprintf(w, "Recommended:\t%v\n", md.Recommended)
			_, _ = fmt.Fprintf(w, "Perceptually uniform:\t%v\n", md.PerceptuallyUniform)
			_, _ = fmt.Fprintf(w, "Black & white friendly:\t%v\n", md.BlackWhiteFriendly)
			_, _ = fmt.Fprintf(w, "Color blind friendly:\t%v\n", md.ColorBlindFriendly)
			_, _ = fmt.Fprintf(w, "Isoluminant:\t%v\n", md.Isoluminant)
			if md.Favorite != nil {
				_, _ = fmt.Fprintf(w, "Favorite:\t%v\n", *md.Favorite)
			}
			_, _ = fmt.Fprintf(w, "Tags:\t%s\n", strings.Join(md.Tags, ", "))
			if md.Notes != "" {
				_, _ = fmt.Fprintf(w, "Notes:\t%s\n", md.Notes)
			}
			_, _ = fmt.Fprintf(w, "Data file:\t%s\n", cm.RGBFileName())
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&dataDir, "data", cfg.DataDir, "Catalog data directory")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Disable progress spinner")
	return cmd
}
