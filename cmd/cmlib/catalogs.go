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

func newCatalogsCmd(cfg *config.Config) *cobra.Command {
	var dataDir string
	var jsonOutput bool
	var quiet bool

	cmd := &cobra.Command{
		Use:   "catalogs",
		Short: "List the loaded catalog records",
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := loadLibrary(dataDir, quiet)
			if err != nil {
				return err
			}

			seen := make(map[string]*cmap.CatalogMetaData)
			var keys []string
			for _, cm := range lib.ColorMaps() {
				catalog := cm.CatalogMetaData()
				if _, ok := seen[catalog.Key]; !ok {
					seen[catalog.Key] = catalog
					keys = append(keys, catalog.Key)
				}
			}
			sort.Strings(keys)

			if jsonOutput {
				var catalogs []*cmap.CatalogMetaData
				for _, key := range keys {
					catalogs = append(catalogs, seen[key])
				}
				return printJSON(catalogs)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			_, _ = fmt.Fprintln(w, "Key\tName\tVersion\tDate\tLicense")
			_, _ = fmt.Fprintln(w, "---\t----\t-------\t----\t-------")
			for _, key := range keys {
				c := seen[key]
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					c.Key, c.Name, c.Version, c.Date, c.License)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&dataDir, "data", cfg.DataDir, "Catalog data directory")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Disable progress spinner")
	return cmd
}
