package legend

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/titusjan/cmlib/pkg/cmap"
)

func testColorMap(t *testing.T, colors string) *cmap.ColorMap {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.csv")
	require.NoError(t, os.WriteFile(path, []byte(colors), 0644))

	md := cmap.NewCmMetaData("linear_grey_0-100")
	md.FileName = "map.csv"
	return cmap.NewColorMap(md, &cmap.CatalogMetaData{Key: "CET", Name: "CET"}, path)
}

func TestGenerate(t *testing.T) {
	cm := testColorMap(t, "0, 0, 0\n0.5, 0.5, 0.5\n1, 1, 1\n")

	svg, err := New(cm, Options{Width: 300, Height: 30}).Generate()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.Equal(t, 3, strings.Count(svg, "shape-rendering"),
		"one rect per color row")
	assert.Contains(t, svg, `width="300"`)
	assert.Contains(t, svg, "#000000")
	assert.Contains(t, svg, "#808080")
	assert.Contains(t, svg, "#ffffff")
	assert.NotContains(t, svg, "stroke", "no border requested")
	assert.NotContains(t, svg, "<text")
}

func TestGenerate_BorderAndTitle(t *testing.T) {
	cm := testColorMap(t, "0, 0, 0\n0.1, 0.1, 0.1\n")

	svg, err := New(cm, Options{
		Width: 100, Height: 20, DrawBorder: true, Title: "Linear-Grey",
	}).Generate()
	require.NoError(t, err)

	assert.Contains(t, svg, `stroke="black"`)
	assert.Contains(t, svg, ">Linear-Grey</text>")
	assert.Contains(t, svg, `fill="white"`, "dark bar gets a white title")
}

func TestGenerate_LightBarGetsBlackTitle(t *testing.T) {
	cm := testColorMap(t, "1, 1, 1\n0.9, 0.9, 0.9\n")

	svg, err := New(cm, Options{Width: 100, Height: 20, Title: "Bright"}).Generate()
	require.NoError(t, err)
	assert.Contains(t, svg, `fill="black"`)
}

func TestGenerate_DefaultDimensions(t *testing.T) {
	cm := testColorMap(t, "0, 0, 0\n")

	svg, err := New(cm, Options{}).Generate()
	require.NoError(t, err)
	assert.Contains(t, svg, `width="512"`)
	assert.Contains(t, svg, `height="32"`)
}

func TestGenerate_MissingDataFile(t *testing.T) {
	md := cmap.NewCmMetaData("gone")
	md.FileName = "gone.csv"
	cm := cmap.NewColorMap(md, &cmap.CatalogMetaData{Key: "X", Name: "X"},
		filepath.Join(t.TempDir(), "gone.csv"))

	_, err := New(cm, Options{}).Generate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "X/Gone")
}
