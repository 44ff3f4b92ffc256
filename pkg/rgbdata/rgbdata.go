// Package rgbdata reads and writes the common colormap data format: plain
// text files with one color per row and comma-separated float fields in the
// range [0, 1]. All catalogs (CET, Matplotlib, ColorBrewer, Scientific Colour
// Maps) are converted to this format at ingest time, so a single loader
// suffices for every source.
package rgbdata

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Delimiter used when writing data files. Reading is tolerant and accepts
// plain commas with arbitrary surrounding whitespace.
const Delimiter = ", "

// Load reads a colormap data file into a dense matrix of floats.
// The result has one row per color and 3 columns (or 4 for legacy files that
// carry an alpha channel). Every row must have the same number of fields.
func Load(path string) (*mat.Dense, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	slog.Debug("Loading RGB values", "file", absPath)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var values []float64
	cols := 0
	rows := 0

	for lineNo, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if cols == 0 {
			if len(fields) != 3 && len(fields) != 4 {
				return nil, fmt.Errorf("%s:%d: expected 3 or 4 fields per row, got %d",
					path, lineNo+1, len(fields))
			}
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, fmt.Errorf("%s:%d: expected %d fields per row, got %d",
				path, lineNo+1, cols, len(fields))
		}

		for _, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", path, lineNo+1, err)
			}
			values = append(values, v)
		}
		rows++
	}

	if rows == 0 {
		return nil, fmt.Errorf("%s: no color rows found", path)
	}

	return mat.NewDense(rows, cols, values), nil
}

// Save writes a float matrix to a colormap data file using the fixed
// 6-decimal format shared by all ingested catalogs.
func Save(path string, m mat.Matrix) error {
	slog.Debug("Saving RGB values", "file", path)

	rows, cols := m.Dims()
	var sb strings.Builder
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if j > 0 {
				sb.WriteString(Delimiter)
			}
			fmt.Fprintf(&sb, "%8.6f", m.At(i, j))
		}
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
