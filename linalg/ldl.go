package linalg

import (
	"fmt"
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// SparseLDL is a native sparse direct solver computing A = L·D·Lᵀ with L
// unit lower triangular and D diagonal, without pivoting.
//
// The symbolic phase builds the elimination tree of the lower-triangle
// pattern and precomputes, per row, the fill-in pattern of L and the
// locations of the row's input entries — everything the numeric phase needs
// to run in O(flops) straight off the caller's Data slice. Refactorizing
// with new values over the identical Rows/Cols arrays reuses all of it.
//
// Without pivoting a zero pivot stops the factorization with StatusSingular;
// interior-point KKT matrices are regularized by the caller to keep pivots
// away from zero.
type SparseLDL struct {
	phase phase
	n     int

	// Symbolic results.
	rows, cols []int       // stored lower-triangle pattern
	parent     []int       // elimination tree (-1 at roots)
	pattern    [][]int     // per row k: columns j<k of L's row k, ascending
	rowEntry   [][]coordAt // per row k: input entries (col, data index)

	// Numeric results.
	d     []float64  // D diagonal
	lcols [][]lentry // per column j: (row i>j, L[i][j]), rows ascending
}

// coordAt locates one input entry of a row inside the coordinate Data slice.
type coordAt struct {
	col int
	at  int
}

// lentry is one stored entry of a column of L.
type lentry struct {
	row int
	val float64
}

// NewSparseLDL creates an uninitialized sparse LDLᵀ solver.
func NewSparseLDL() *SparseLDL { return &SparseLDL{} }

// DoSymbolicFactorization analyzes the lower-triangle pattern of m: it
// builds the elimination tree, then computes each row's reach (the columns
// of L's row, fill-in included) by climbing the tree from the row's input
// columns, marking visited nodes in a bit set. Values are never read, so a
// degenerate all-zero matrix is a valid pattern carrier.
//
// Complexity: O(nnz + fill) time, O(n + fill) space.
func (s *SparseLDL) DoSymbolicFactorization(m *Coord) (Status, error) {
	if m == nil {
		return StatusError, ErrNilMatrix
	}
	t := m.Tril()
	n := t.Dim()

	s.n = n
	s.rows = append(s.rows[:0], t.Rows...)
	s.cols = append(s.cols[:0], t.Cols...)

	// Group input entries by row, remembering where each lives in Data so
	// the numeric phase can read values without re-scanning coordinates.
	s.rowEntry = make([][]coordAt, n)
	for i := range t.Rows {
		r := t.Rows[i]
		s.rowEntry[r] = append(s.rowEntry[r], coordAt{col: t.Cols[i], at: i})
	}

	// Elimination tree: parent[j] is the first row k > j whose factor row
	// reaches column j.
	s.parent = make([]int, n)
	for j := range s.parent {
		s.parent[j] = -1
	}
	for k := 0; k < n; k++ {
		for _, e := range s.rowEntry[k] {
			if e.col >= k {
				continue
			}
			r := e.col
			for s.parent[r] != -1 && s.parent[r] != k {
				r = s.parent[r]
			}
			if s.parent[r] == -1 && r != k {
				s.parent[r] = k
			}
		}
	}

	// Row patterns: climb the tree from every input column until reaching
	// the row itself; marks guarantee each node is collected once.
	s.pattern = make([][]int, n)
	marks := bitset.New(uint(n))
	for k := 0; k < n; k++ {
		marks.ClearAll()
		var reach []int
		for _, e := range s.rowEntry[k] {
			for j := e.col; j != -1 && j < k && !marks.Test(uint(j)); j = s.parent[j] {
				marks.Set(uint(j))
				reach = append(reach, j)
			}
		}
		sort.Ints(reach)
		s.pattern[k] = reach
	}

	s.phase = phaseSymbolic

	return StatusSuccessful, nil
}

// DoNumericFactorization runs the up-looking LDLᵀ factorization over m's
// values, reusing the symbolic pattern.
//
// Error Conditions:
//   - ErrNoSymbolic      : called before DoSymbolicFactorization.
//   - ErrNilMatrix       : m is nil.
//   - ErrPatternMismatch : m's lower-triangle pattern differs from symbolic.
//
// A zero pivot reports StatusSingular with a nil error and leaves the
// solver symbolic-ready.
//
// Complexity: O(flops of the factorization).
func (s *SparseLDL) DoNumericFactorization(m *Coord) (Status, error) {
	if s.phase < phaseSymbolic {
		return StatusError, ErrNoSymbolic
	}
	if m == nil {
		return StatusError, ErrNilMatrix
	}
	t := m.Tril()
	if !s.patternMatches(t) {
		return StatusError, fmt.Errorf("%w: numeric matrix has %d lower entries, symbolic had %d",
			ErrPatternMismatch, t.NNZ(), len(s.rows))
	}

	n := s.n
	s.d = make([]float64, n)
	s.lcols = make([][]lentry, n)
	y := make([]float64, n) // sparse scatter workspace, zero outside pattern

	for k := 0; k < n; k++ {
		// Scatter row k of A (lower part) into the workspace; duplicates sum.
		dk := 0.0
		for _, e := range s.rowEntry[k] {
			v := t.Data[e.at]
			if e.col == k {
				dk += v
			} else {
				y[e.col] += v
			}
		}

		// Eliminate along the precomputed pattern, ascending columns.
		for _, j := range s.pattern[k] {
			yj := y[j]
			y[j] = 0
			for _, le := range s.lcols[j] {
				y[le.row] -= le.val * yj
			}
			l := yj / s.d[j]
			dk -= l * yj
			s.lcols[j] = append(s.lcols[j], lentry{row: k, val: l})
		}

		if dk == 0 {
			s.d = nil
			s.lcols = nil
			s.phase = phaseSymbolic

			return StatusSingular, nil
		}
		s.d[k] = dk
	}

	s.phase = phaseNumeric

	return StatusSuccessful, nil
}

// DoBackSolve solves L·z = rhs, D·y = z, Lᵀ·x = y. The stored factors are
// read-only here, so the call is repeatable with any number of right-hand
// sides. rhs is not mutated.
//
// Error Conditions:
//   - ErrNotFactorized : no successful numeric factorization yet.
//   - ErrBadRHS        : len(rhs) != factorized dimension.
//
// Complexity: O(nnz(L) + n) per call.
func (s *SparseLDL) DoBackSolve(rhs []float64) ([]float64, error) {
	if s.phase < phaseNumeric {
		return nil, ErrNotFactorized
	}
	if len(rhs) != s.n {
		return nil, fmt.Errorf("%w: rhs %d, matrix %d", ErrBadRHS, len(rhs), s.n)
	}

	x := make([]float64, s.n)
	copy(x, rhs)

	// Forward substitution with unit lower-triangular L (column sweep).
	for j := 0; j < s.n; j++ {
		for _, le := range s.lcols[j] {
			x[le.row] -= le.val * x[j]
		}
	}
	// Diagonal solve.
	for j := 0; j < s.n; j++ {
		x[j] /= s.d[j]
	}
	// Backward substitution with Lᵀ (column sweep, descending).
	for j := s.n - 1; j >= 0; j-- {
		for _, le := range s.lcols[j] {
			x[j] -= le.val * x[le.row]
		}
	}

	return x, nil
}

func (s *SparseLDL) patternMatches(t *Coord) bool {
	if t.Dim() != s.n || t.NNZ() != len(s.rows) {
		return false
	}
	for i := range s.rows {
		if t.Rows[i] != s.rows[i] || t.Cols[i] != s.cols[i] {
			return false
		}
	}

	return true
}
