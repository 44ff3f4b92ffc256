package rgbdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.csv")
	content := "0.000000, 0.000000, 0.000000\n" +
		"0.500000, 0.250000, 0.125000\n" +
		"1.000000, 1.000000, 1.000000\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	m, err := Load(path)
	require.NoError(t, err)

	rows, cols := m.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 3, cols)
	assert.InDelta(t, 0.25, m.At(1, 1), 1e-9)
}

func TestLoad_FourColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.csv")
	require.NoError(t, os.WriteFile(path,
		[]byte("0.1, 0.2, 0.3, 1.0\n0.4, 0.5, 0.6, 1.0\n"), 0644))

	m, err := Load(path)
	require.NoError(t, err)

	rows, cols := m.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 4, cols)
}

func TestLoad_SkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.csv")
	require.NoError(t, os.WriteFile(path,
		[]byte("0, 0, 0\n\n1, 1, 1\n\n"), 0644))

	m, err := Load(path)
	require.NoError(t, err)

	rows, _ := m.Dims()
	assert.Equal(t, 2, rows)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{"wrong field count", "0, 0\n", "expected 3 or 4 fields"},
		{"inconsistent rows", "0, 0, 0\n0, 0, 0, 0\n", "expected 3 fields"},
		{"not a number", "0, zero, 0\n", "zero"},
		{"empty file", "", "no color rows"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.csv")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
			assert.Contains(t, err.Error(), "bad.csv",
				"errors must identify the file")
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.csv")
	m := mat.NewDense(2, 3, []float64{0, 0.5, 1, 0.123456, 0.654321, 0.999999})

	require.NoError(t, Save(path, m))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "0.123456, 0.654321, 0.999999",
		"fixed 6-decimal comma-space format")

	got, err := Load(path)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(m, got, 1e-6))
}

func TestByteMatrix(t *testing.T) {
	m := NewByteMatrix(2, 4)
	rows, cols := m.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 4, cols)

	m.Set(1, 2, 200)
	m.Set(1, 3, 255)
	assert.Equal(t, uint8(200), m.At(1, 2))
	assert.Equal(t, []uint8{0, 0, 200, 255}, m.Row(1))
	assert.Len(t, m.Raw(), 8)

	// Row slices alias the matrix.
	m.Row(0)[0] = 42
	assert.Equal(t, uint8(42), m.At(0, 0))
}
