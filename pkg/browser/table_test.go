package browser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/titusjan/cmlib/pkg/cmap"
	"github.com/titusjan/cmlib/pkg/filter"
)

func testMap(t *testing.T, catalog, name string, category cmap.DataCategory, colors string) *cmap.ColorMap {
	t.Helper()
	path := filepath.Join(t.TempDir(), name+".csv")
	require.NoError(t, os.WriteFile(path, []byte(colors), 0644))

	md := cmap.NewCmMetaData(name)
	md.FileName = name + ".csv"
	md.Category = category
	return cmap.NewColorMap(md, &cmap.CatalogMetaData{Key: catalog, Name: catalog}, path)
}

func testTable(t *testing.T, maps ...*cmap.ColorMap) *Table {
	t.Helper()
	lib := cmap.NewLibrary()
	for _, cm := range maps {
		lib.Add(cm)
	}
	return NewTable(filter.NewView(lib, filter.NewEngine()))
}

func keysOf(rows []*cmap.ColorMap) []string {
	var keys []string
	for _, cm := range rows {
		keys = append(keys, cm.Key())
	}
	return keys
}

func TestTable_SortTieBreaksOnKey(t *testing.T) {
	// All three share the same category, so the primary sort value
	// collides and the key decides.
	a := testMap(t, "CET", "linear_grey_0-100", cmap.CategorySequential, "0, 0, 0\n")
	b := testMap(t, "MatPlotLib", "viridis", cmap.CategorySequential, "0, 0, 0\n")
	c := testMap(t, "CET", "linear_kryw_0-100", cmap.CategorySequential, "0, 0, 0\n")

	expected := []string{
		"CET/Linear-Grey-0-100", "CET/Linear-Kryw-0-100", "MatPlotLib/Viridis",
	}

	// The result must not depend on insertion order.
	table := testTable(t, a, b, c)
	table.SetSort(ColCategory, true)
	assert.Equal(t, expected, keysOf(table.Rows()))

	table = testTable(t, c, b, a)
	table.SetSort(ColCategory, true)
	assert.Equal(t, expected, keysOf(table.Rows()))
}

func TestTable_SortDescending(t *testing.T) {
	a := testMap(t, "CET", "linear_grey_0-100", cmap.CategorySequential, "0, 0, 0\n")
	b := testMap(t, "MatPlotLib", "twilight", cmap.CategoryCyclic, "0, 0, 0\n")

	table := testTable(t, a, b)
	table.SetSort(ColCategory, false)
	assert.Equal(t,
		[]string{"CET/Linear-Grey-0-100", "MatPlotLib/Twilight"},
		keysOf(table.Rows()), "Sequential sorts after Cyclic when descending")
}

func TestTable_SortBySize(t *testing.T) {
	// 2 colors vs 10 colors: numeric order, not string order.
	small := testMap(t, "CET", "small", cmap.CategoryOther, "0, 0, 0\n1, 1, 1\n")
	var rowsData string
	for i := 0; i < 10; i++ {
		rowsData += "0.5, 0.5, 0.5\n"
	}
	large := testMap(t, "CET", "large", cmap.CategoryOther, rowsData)

	table := testTable(t, large, small)
	table.SetSort(ColSize, true)
	assert.Equal(t, []string{"CET/Small", "CET/Large"}, keysOf(table.Rows()))
}

func TestTable_Values(t *testing.T) {
	cm := testMap(t, "CET", "linear_kryw_0-100", cmap.CategorySequential,
		"0, 0, 0\n0.5, 0.5, 0.5\n1, 1, 1\n")
	md := cm.MetaData()
	md.Recommended = true
	md.Tags = []string{"geographical", "3d"}
	md.Notes = "aka fire"
	md.SetFavorite(true)

	table := testTable(t, cm)

	tests := []struct {
		col      Column
		expected string
	}{
		{ColFavorite, CheckMark},
		{ColKey, "CET/Linear-Kryw-0-100"},
		{ColCatalog, "CET"},
		{ColName, "Linear-Kryw-0-100"},
		{ColCategory, "Sequential"},
		{ColSize, "3"},
		{ColRecommended, CheckMark},
		{ColUniform, ""},
		{ColBlackWhite, ""},
		{ColColorBlind, ""},
		{ColIsoluminant, ""},
		{ColTags, "geographical, 3d"},
		{ColNotes, "aka fire"},
	}

	for _, tt := range tests {
		t.Run(Headers[tt.col], func(t *testing.T) {
			assert.Equal(t, tt.expected, table.Value(cm, tt.col))
		})
	}
}

func TestTable_FilteredRows(t *testing.T) {
	a := testMap(t, "CET", "linear_grey_0-100", cmap.CategorySequential, "0, 0, 0\n")
	b := testMap(t, "MatPlotLib", "viridis", cmap.CategorySequential, "0, 0, 0\n")

	table := testTable(t, a, b)
	table.View().Engine().SelectCatalog("MatPlotLib")
	assert.Equal(t, []string{"MatPlotLib/Viridis"}, keysOf(table.Rows()))
}

func TestColumnByName(t *testing.T) {
	col, err := ColumnByName("key")
	require.NoError(t, err)
	assert.Equal(t, ColKey, col)

	col, err = ColumnByName("P. Uniform")
	require.NoError(t, err)
	assert.Equal(t, ColUniform, col)

	_, err = ColumnByName("bogus")
	assert.Error(t, err)
}
