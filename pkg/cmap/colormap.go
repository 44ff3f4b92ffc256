package cmap

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/titusjan/cmlib/pkg/rgbdata"
)

// ColorMap pairs one map metadata record with its catalog record and the
// path of the file holding the actual color data.
//
// The color data is loaded lazily: the float and byte representations are
// each read from the backing file on first access and then cached
// independently, so loading one never populates the other.
type ColorMap struct {
	rgbFileName string
	metaData    *CmMetaData
	catalog     *CatalogMetaData

	key       string // memoized, empty means not yet computed
	rgbFloats *mat.Dense
	argbBytes *rgbdata.ByteMatrix
}

// NewColorMap creates a color map from its two metadata records and the
// path of its RGB data file.
func NewColorMap(metaData *CmMetaData, catalog *CatalogMetaData, rgbFileName string) *ColorMap {
	return &ColorMap{
		rgbFileName: rgbFileName,
		metaData:    metaData,
		catalog:     catalog,
	}
}

func (c *ColorMap) String() string {
	return fmt.Sprintf("<ColorMap %s>", c.Key())
}

// Key uniquely identifies the map as "{catalog key}/{pretty name}".
// The pretty name is used (rather than the raw name) because all pretty
// names start with a capital, which yields better sorting.
func (c *ColorMap) Key() string {
	if c.key == "" {
		c.key = fmt.Sprintf("%s/%s", c.catalog.Key, c.metaData.PrettyName)
	}
	return c.key
}

// PrettyName returns the display name from the metadata.
func (c *ColorMap) PrettyName() string {
	return c.metaData.PrettyName
}

// MetaData returns the map metadata record.
func (c *ColorMap) MetaData() *CmMetaData {
	return c.metaData
}

// SetMetaData replaces the metadata record and invalidates the memoized key.
func (c *ColorMap) SetMetaData(md *CmMetaData) {
	c.metaData = md
	c.key = ""
}

// CatalogMetaData returns the catalog record.
func (c *ColorMap) CatalogMetaData() *CatalogMetaData {
	return c.catalog
}

// SetCatalogMetaData replaces the catalog record and invalidates the
// memoized key.
func (c *ColorMap) SetCatalogMetaData(cmd *CatalogMetaData) {
	c.catalog = cmd
	c.key = ""
}

// RGBFileName returns the path of the backing data file.
func (c *ColorMap) RGBFileName() string {
	return c.rgbFileName
}

// RGBFloats returns the color data as an N×3 matrix of intensities in
// [0, 1], loading it from the data file on first access.
func (c *ColorMap) RGBFloats() (*mat.Dense, error) {
	if c.rgbFloats == nil {
		if err := c.LoadRGBFloats(c.rgbFileName); err != nil {
			return nil, err
		}
	}
	return c.rgbFloats, nil
}

// LoadRGBFloats (re)loads the float cache from the given file.
func (c *ColorMap) LoadRGBFloats(fileName string) error {
	m, err := rgbdata.Load(fileName)
	if err != nil {
		return err
	}
	return c.SetRGBFloats(dropAlphaColumn(m))
}

// SetRGBFloats explicitly sets the float color data.
// Typically not used directly because the data is loaded when needed.
func (c *ColorMap) SetRGBFloats(m *mat.Dense) error {
	rows, cols := m.Dims()
	if cols != 3 {
		return fmt.Errorf("expected a %d×3 matrix, got %d×%d", rows, rows, cols)
	}
	c.rgbFloats = m
	return nil
}

// ARGBBytes returns the color data as an N×4 byte matrix with R, G, B and a
// fixed 255 alpha per row. The bytes are derived by scaling the floats by
// 256 and clamping to [0, 255]. The result is cached independently of the
// float representation; it is loaded from the data file on first access.
func (c *ColorMap) ARGBBytes() (*rgbdata.ByteMatrix, error) {
	if c.argbBytes == nil {
		if err := c.LoadARGBBytes(c.rgbFileName); err != nil {
			return nil, err
		}
	}
	return c.argbBytes, nil
}

// LoadARGBBytes (re)loads the byte cache from the given file.
func (c *ColorMap) LoadARGBBytes(fileName string) error {
	m, err := rgbdata.Load(fileName)
	if err != nil {
		return err
	}
	return c.SetARGBBytes(argbBytesFromFloats(dropAlphaColumn(m)))
}

// SetARGBBytes explicitly sets the byte color data.
// Typically not used directly because the data is loaded when needed.
func (c *ColorMap) SetARGBBytes(b *rgbdata.ByteMatrix) error {
	rows, cols := b.Dims()
	if cols != 4 {
		return fmt.Errorf("expected a %d×4 byte matrix, got %d×%d", rows, rows, cols)
	}
	c.argbBytes = b
	return nil
}

// dropAlphaColumn reduces a legacy 4-column matrix to its RGB columns.
func dropAlphaColumn(m *mat.Dense) *mat.Dense {
	rows, cols := m.Dims()
	if cols != 4 {
		return m
	}
	return m.Slice(0, rows, 0, 3).(*mat.Dense)
}

// argbBytesFromFloats converts an N×3 float matrix in [0, 1] to N×4 bytes.
// Values are scaled by 256 and clamped so that only an input of exactly 1.0
// maps to 255. This matches the conversion the original data was ingested
// with, keeping legend bars bit-identical across sources.
func argbBytesFromFloats(m *mat.Dense) *rgbdata.ByteMatrix {
	rows, _ := m.Dims()
	out := rgbdata.NewByteMatrix(rows, 4)
	for i := 0; i < rows; i++ {
		for j := 0; j < 3; j++ {
			v := m.At(i, j) * 256
			if v < 0 {
				v = 0
			}
			if v > 255 {
				v = 255
			}
			out.Set(i, j, uint8(v))
		}
		out.Set(i, 3, 255)
	}
	return out
}
