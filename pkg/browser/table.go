// Package browser provides the non-GUI table model behind the color map
// browser: column definitions, string cell values and a deterministic sort.
// GUI bindings and the CLI consume the same model.
package browser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/titusjan/cmlib/pkg/cmap"
	"github.com/titusjan/cmlib/pkg/filter"
)

// Column identifies a table column.
type Column int

const (
	ColFavorite Column = iota
	ColKey
	ColCatalog
	ColName
	ColCategory
	ColSize
	ColRecommended
	ColUniform
	ColBlackWhite
	ColColorBlind
	ColIsoluminant
	ColTags
	ColNotes
)

// Headers holds the display name per column.
var Headers = [...]string{
	ColFavorite:    "Favorite",
	ColKey:         "Key",
	ColCatalog:     "Catalog",
	ColName:        "Name",
	ColCategory:    "Category",
	ColSize:        "Size",
	ColRecommended: "Recommended",
	ColUniform:     "P. Uniform",
	ColBlackWhite:  "B & W",
	ColColorBlind:  "Color Blind",
	ColIsoluminant: "Isoluminant",
	ColTags:        "Tags",
	ColNotes:       "Notes",
}

// CheckMark is shown for true boolean cells; false cells stay empty.
const CheckMark = "✓"

// ColumnByName resolves a case-insensitive column name to its Column.
func ColumnByName(name string) (Column, error) {
	for col, header := range Headers {
		if strings.EqualFold(header, name) {
			return Column(col), nil
		}
	}
	return 0, fmt.Errorf("unknown column: %q", name)
}

// Table presents a filtered view of the library as rows and string cells
// with a stable sort order.
type Table struct {
	view       *filter.View
	sortColumn Column
	ascending  bool
}

// NewTable creates a table over the given view, sorted by category like the
// original browser.
func NewTable(view *filter.View) *Table {
	return &Table{view: view, sortColumn: ColCategory, ascending: true}
}

// View returns the underlying filtered view.
func (t *Table) View() *filter.View {
	return t.view
}

// SetSort selects the sort column and direction.
func (t *Table) SetSort(col Column, ascending bool) {
	t.sortColumn = col
	t.ascending = ascending
}

// Rows returns the visible color maps in sorted order. Rows sort on the
// sort-column value with the map key as tie breaker, so the order is a
// deterministic total order even when primary values collide.
func (t *Table) Rows() []*cmap.ColorMap {
	visible := t.view.Rows()
	rows := make([]*cmap.ColorMap, len(visible))
	copy(rows, visible)

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !t.ascending {
			a, b = b, a
		}
		av, bv := t.SortValue(a), t.SortValue(b)
		if av != bv {
			return av < bv
		}
		return a.Key() < b.Key()
	})
	return rows
}

// Value returns the display string for one cell.
func (t *Table) Value(cm *cmap.ColorMap, col Column) string {
	md := cm.MetaData()
	switch col {
	case ColFavorite:
		return boolToStr(md.IsFavorite())
	case ColKey:
		return cm.Key()
	case ColCatalog:
		return cm.CatalogMetaData().Key
	case ColName:
		return md.PrettyName
	case ColCategory:
		return md.Category.String()
	case ColSize:
		return fmt.Sprintf("%d", t.mapSize(cm))
	case ColRecommended:
		return boolToStr(md.Recommended)
	case ColUniform:
		return boolToStr(md.PerceptuallyUniform)
	case ColBlackWhite:
		return boolToStr(md.BlackWhiteFriendly)
	case ColColorBlind:
		return boolToStr(md.ColorBlindFriendly)
	case ColIsoluminant:
		return boolToStr(md.Isoluminant)
	case ColTags:
		return strings.Join(md.Tags, ", ")
	case ColNotes:
		return md.Notes
	default:
		panic(fmt.Sprintf("unexpected column: %d", col))
	}
}

// SortValue returns the string a row sorts on for the current sort column.
// Numeric columns are zero padded so string comparison matches numeric
// order; boolean columns sort checked rows first.
func (t *Table) SortValue(cm *cmap.ColorMap) string {
	switch t.sortColumn {
	case ColSize:
		return fmt.Sprintf("%06d", t.mapSize(cm))
	case ColFavorite, ColRecommended, ColUniform, ColBlackWhite,
		ColColorBlind, ColIsoluminant:
		if t.Value(cm, t.sortColumn) == CheckMark {
			return "0"
		}
		return "1"
	default:
		return t.Value(cm, t.sortColumn)
	}
}

// mapSize returns the number of colors in the map, or 0 if the data file
// cannot be read. Accessing the size triggers the lazy load.
func (t *Table) mapSize(cm *cmap.ColorMap) int {
	argb, err := cm.ARGBBytes()
	if err != nil {
		return 0
	}
	rows, _ := argb.Dims()
	return rows
}

func boolToStr(v bool) string {
	if v {
		return CheckMark
	}
	return ""
}
