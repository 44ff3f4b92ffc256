package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/titusjan/cmlib/pkg/browser"
	"github.com/titusjan/cmlib/pkg/config"
	"github.com/titusjan/cmlib/pkg/filter"
)

// listColumns are the columns printed by the list command, a subset of the
// full browser table that fits a terminal.
var listColumns = []browser.Column{
	browser.ColKey, browser.ColCategory, browser.ColSize,
	browser.ColRecommended, browser.ColUniform, browser.ColColorBlind,
	browser.ColTags,
}

func newListCmd(cfg *config.Config) *cobra.Command {
	var dataDir string
	var catalog string
	var category string
	var tags []string
	var sortBy string
	var descending bool
	var jsonOutput bool
	var quiet bool

	qualityFlags := map[filter.QualityAttr]*bool{}
	for _, attr := range filter.QualityAttrs() {
		qualityFlags[attr] = new(bool)
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List color maps, optionally filtered and sorted",
		RunE: func(cmd *cobra.Command, args []string) error {
			sortCol, err := browser.ColumnByName(sortBy)
			if err != nil {
				return err
			}

			lib, err := loadLibrary(dataDir, quiet)
			if err != nil {
				return err
			}

			engine := filter.NewEngine()
			engine.SelectCatalog(catalog)
			engine.SelectCategory(category)
			for _, attr := range filter.QualityAttrs() {
				if *qualityFlags[attr] {
					engine.ToggleQuality(attr, true, true)
				}
			}
			for _, tag := range tags {
				engine.ToggleTag(tag, true)
			}

			table := browser.NewTable(filter.NewView(lib, engine))
			table.SetSort(sortCol, !descending)
			rows := table.Rows()

			if jsonOutput {
				var keys []string
				for _, cm := range rows {
					keys = append(keys, cm.Key())
				}
				return printJSON(keys)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			for i, col := range listColumns {
				if i > 0 {
					_, _ = fmt.Fprint(w, "\t")
				}
				_, _ = fmt.Fprint(w, browser.Headers[col])
			}
			_, _ = fmt.Fprintln(w)
			for _, cm := range rows {
				for i, col := range listColumns {
					if i > 0 {
						_, _ = fmt.Fprint(w, "\t")
					}
					_, _ = fmt.Fprint(w, table.Value(cm, col))
				}
				_, _ = fmt.Fprintln(w)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", cfg.DataDir, "Catalog data directory")
	cmd.Flags().StringVar(&catalog, "catalog", filter.All, "Only show maps from this catalog")
	cmd.Flags().StringVar(&category, "category", filter.All, "Only show maps of this category")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Only show maps carrying this tag (repeatable, AND)")
	cmd.Flags().StringVar(&sortBy, "sort", "Key", "Column to sort on")
	cmd.Flags().BoolVar(&descending, "desc", false, "Sort in descending order")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the keys in JSON format")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Disable progress spinner")
	for _, attr := range filter.QualityAttrs() {
		cmd.Flags().BoolVar(qualityFlags[attr], string(attr), false,
			fmt.Sprintf("Only show maps with the %s flag set", attr))
	}
	return cmd
}
