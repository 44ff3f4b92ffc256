package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/titusjan/cmlib/pkg/cmap"
	"github.com/titusjan/cmlib/pkg/config"
)

func newInfoCmd(cfg *config.Config) *cobra.Command {
	var dataDir string
	var jsonOutput bool
	var quiet bool

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print summary statistics of the library",
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := loadLibrary(dataDir, quiet)
			if err != nil {
				return err
			}

			stats := cmap.Summarize(lib.ColorMaps())
			if jsonOutput {
				return printJSON(stats)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			_, _ = fmt.Fprintf(w, "Color maps:\t%d\n", stats.MapCount)
			_, _ = fmt.Fprintf(w, "Catalogs:\t%d\n", stats.CatalogCount)
			_, _ = fmt.Fprintln(w)

			_, _ = fmt.Fprintln(w, "Catalog\tMaps")
			_, _ = fmt.Fprintln(w, "-------\t----")
			for _, key := range sortedKeys(stats.PerCatalog) {
				_, _ = fmt.Fprintf(w, "%s\t%d\n", key, stats.PerCatalog[key])
			}
			_, _ = fmt.Fprintln(w)

			_, _ = fmt.Fprintln(w, "Category\tMaps")
			_, _ = fmt.Fprintln(w, "--------\t----")
			for _, name := range sortedKeys(stats.PerCategory) {
				_, _ = fmt.Fprintf(w, "%s\t%d\n", name, stats.PerCategory[name])
			}
			_, _ = fmt.Fprintln(w)

			_, _ = fmt.Fprintf(w, "Recommended:\t%d\n", stats.Recommended)
			_, _ = fmt.Fprintf(w, "Perceptually uniform:\t%d\n", stats.PerceptuallyUniform)
			_, _ = fmt.Fprintf(w, "Black & white friendly:\t%d\n", stats.BlackWhiteFriendly)
			_, _ = fmt.Fprintf(w, "Color blind friendly:\t%d\n", stats.ColorBlindFriendly)
			_, _ = fmt.Fprintf(w, "Isoluminant:\t%d\n", stats.Isoluminant)
			_, _ = fmt.Fprintf(w, "Favorites:\t%d\n", stats.Favorites)
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&dataDir, "data", cfg.DataDir, "Catalog data directory")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Disable progress spinner")
	return cmd
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
