package linalg

import "fmt"

// Coord is a square sparse symmetric matrix stored as its lower triangle in
// coordinate form: parallel Rows/Cols/Data slices of equal length. Duplicate
// (row, col) entries are admissible and are summed by consumers. Entries
// above the diagonal may be present in caller-supplied data; solvers discard
// them via Tril before use.
//
// The caller owns the slices; solver calls never retain a mutable alias
// beyond the call (pattern slices are copied where reuse is needed).
type Coord struct {
	n    int
	Rows []int
	Cols []int
	Data []float64
}

// NewCoord validates and wraps coordinate data for an n×n symmetric matrix.
//
// Error Conditions:
//   - ErrBadDim    : n <= 0.
//   - ErrBadTriple : slice lengths differ, or an index is outside [0, n).
//
// Complexity: O(nnz).
func NewCoord(n int, rows, cols []int, data []float64) (*Coord, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadDim, n)
	}
	if len(rows) != len(cols) || len(rows) != len(data) {
		return nil, fmt.Errorf("%w: lengths rows=%d cols=%d data=%d",
			ErrBadTriple, len(rows), len(cols), len(data))
	}
	for i := range rows {
		if rows[i] < 0 || rows[i] >= n || cols[i] < 0 || cols[i] >= n {
			return nil, fmt.Errorf("%w: entry %d at (%d,%d) outside %d×%d",
				ErrBadTriple, i, rows[i], cols[i], n, n)
		}
	}

	return &Coord{n: n, Rows: rows, Cols: cols, Data: data}, nil
}

// Dim returns the matrix dimension n.
func (m *Coord) Dim() int { return m.n }

// NNZ returns the number of stored entries (duplicates counted).
func (m *Coord) NNZ() int { return len(m.Rows) }

// Tril returns the matrix restricted to its lower triangle (row ≥ col),
// preserving entry order. When no strict-upper entries are present the
// receiver itself is returned, so the row/col slices of already-triangular
// matrices keep their identity across calls.
// Complexity: O(nnz).
func (m *Coord) Tril() *Coord {
	upper := 0
	for i := range m.Rows {
		if m.Rows[i] < m.Cols[i] {
			upper++
		}
	}
	if upper == 0 {
		return m
	}
	keep := len(m.Rows) - upper
	t := &Coord{
		n:    m.n,
		Rows: make([]int, 0, keep),
		Cols: make([]int, 0, keep),
		Data: make([]float64, 0, keep),
	}
	for i := range m.Rows {
		if m.Rows[i] < m.Cols[i] {
			continue
		}
		t.Rows = append(t.Rows, m.Rows[i])
		t.Cols = append(t.Cols, m.Cols[i])
		t.Data = append(t.Data, m.Data[i])
	}

	return t
}

// Clone returns a deep copy of the matrix.
func (m *Coord) Clone() *Coord {
	c := &Coord{
		n:    m.n,
		Rows: make([]int, len(m.Rows)),
		Cols: make([]int, len(m.Cols)),
		Data: make([]float64, len(m.Data)),
	}
	copy(c.Rows, m.Rows)
	copy(c.Cols, m.Cols)
	copy(c.Data, m.Data)

	return c
}

// SamePattern reports whether other stores the identical sparsity pattern:
// equal dimension and element-wise equal Rows/Cols arrays (order included).
// This is the pattern-identity contract between symbolic and numeric phases.
func (m *Coord) SamePattern(other *Coord) bool {
	if m.n != other.n || len(m.Rows) != len(other.Rows) {
		return false
	}
	for i := range m.Rows {
		if m.Rows[i] != other.Rows[i] || m.Cols[i] != other.Cols[i] {
			return false
		}
	}

	return true
}

// MulVec returns y = A·x where A is the symmetric matrix implied by the
// lower-triangular entries (strict-upper entries are ignored): each
// off-diagonal entry contributes to both y[row] and y[col].
//
// Error Conditions:
//   - ErrDimMismatch : len(x) != Dim().
//
// Complexity: O(nnz).
func (m *Coord) MulVec(x []float64) ([]float64, error) {
	if len(x) != m.n {
		return nil, fmt.Errorf("%w: vector %d, matrix %d", ErrDimMismatch, len(x), m.n)
	}
	y := make([]float64, m.n)
	for i := range m.Rows {
		r, c := m.Rows[i], m.Cols[i]
		if r < c {
			continue
		}
		v := m.Data[i]
		y[r] += v * x[c]
		if r != c {
			y[c] += v * x[r]
		}
	}

	return y, nil
}
