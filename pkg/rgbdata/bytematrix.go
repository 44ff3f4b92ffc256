package rgbdata

// ByteMatrix is a dense, row-major matrix of unsigned 8-bit values.
// It is the byte-packed counterpart of the float matrices handled by this
// package, used for ARGB pixel data where gonum's float64 matrices would
// waste memory and force conversions at the GUI boundary.
type ByteMatrix struct {
	rows, cols int
	data       []uint8
}

// NewByteMatrix creates a zeroed rows×cols byte matrix.
func NewByteMatrix(rows, cols int) *ByteMatrix {
	return &ByteMatrix{
		rows: rows,
		cols: cols,
		data: make([]uint8, rows*cols),
	}
}

// Dims returns the number of rows and columns.
func (m *ByteMatrix) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// At returns the value at row i, column j.
func (m *ByteMatrix) At(i, j int) uint8 {
	return m.data[i*m.cols+j]
}

// Set stores v at row i, column j.
func (m *ByteMatrix) Set(i, j int, v uint8) {
	m.data[i*m.cols+j] = v
}

// Row returns a slice aliasing row i. The slice shares memory with the
// matrix, which lets GUI bindings blit rows without copying.
func (m *ByteMatrix) Row(i int) []uint8 {
	return m.data[i*m.cols : (i+1)*m.cols]
}

// Raw returns the underlying row-major data slice.
func (m *ByteMatrix) Raw() []uint8 {
	return m.data
}
