package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optimod/linalg"
)

// testMatrix is the shared 3×3 symmetric system used across backend tests,
// stored as its lower triangle:
//
//	| 1 7 3 |
//	| 7 4 0 |
//	| 3 0 6 |
func testMatrix(t *testing.T) *linalg.Coord {
	t.Helper()
	m, err := linalg.NewCoord(3,
		[]int{0, 1, 1, 2, 2},
		[]int{0, 0, 1, 0, 2},
		[]float64{1, 7, 4, 3, 6})
	require.NoError(t, err)

	return m
}

// backends enumerates every solver implementation under test.
func backends() map[string]func() linalg.LinearSolver {
	return map[string]func() linalg.LinearSolver{
		"dense_lu":   func() linalg.LinearSolver { return linalg.NewDenseLU() },
		"sparse_ldl": func() linalg.LinearSolver { return linalg.NewSparseLDL() },
	}
}

func TestNewCoord_Validation(t *testing.T) {
	_, err := linalg.NewCoord(0, nil, nil, nil)
	assert.ErrorIs(t, err, linalg.ErrBadDim)

	_, err = linalg.NewCoord(2, []int{0, 1}, []int{0}, []float64{1, 2})
	assert.ErrorIs(t, err, linalg.ErrBadTriple)

	_, err = linalg.NewCoord(2, []int{0, 2}, []int{0, 0}, []float64{1, 2})
	assert.ErrorIs(t, err, linalg.ErrBadTriple, "out-of-range row index")
}

func TestCoord_Tril(t *testing.T) {
	// An already-lower matrix keeps slice identity through Tril.
	m := testMatrix(t)
	assert.Same(t, m, m.Tril())

	// Strict-upper entries are dropped, order of survivors preserved.
	mixed, err := linalg.NewCoord(3,
		[]int{0, 0, 1, 2},
		[]int{0, 1, 1, 0},
		[]float64{1, 9, 4, 3})
	require.NoError(t, err)
	tril := mixed.Tril()
	assert.Equal(t, []int{0, 1, 2}, tril.Rows)
	assert.Equal(t, []int{0, 1, 0}, tril.Cols)
	assert.Equal(t, []float64{1, 4, 3}, tril.Data)
}

func TestCoord_MulVec(t *testing.T) {
	m := testMatrix(t)

	y, err := m.MulVec([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{24, 15, 21}, y, 1e-12)

	_, err = m.MulVec([]float64{1, 2})
	assert.ErrorIs(t, err, linalg.ErrDimMismatch)

	// Strict-upper entries contribute nothing: the lower triangle alone
	// defines the symmetric matrix.
	withUpper, err := linalg.NewCoord(3,
		[]int{0, 1, 1, 2, 2, 0},
		[]int{0, 0, 1, 0, 2, 2},
		[]float64{1, 7, 4, 3, 6, 99})
	require.NoError(t, err)
	y2, err := withUpper.MulVec([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.InDeltaSlice(t, y, y2, 1e-12)
}

// TestSolver_FactorAndSolve runs the full three-phase lifecycle on every
// backend: symbolic analysis over a values-free pattern carrier, numeric
// factorization over the real values, and repeated back-solves without
// refactorizing.
func TestSolver_FactorAndSolve(t *testing.T) {
	for name, mk := range backends() {
		t.Run(name, func(t *testing.T) {
			solver := mk()
			m := testMatrix(t)

			// Symbolic phase sees the pattern only: all-zero values are fine.
			carrier, err := linalg.NewCoord(m.Dim(), m.Rows, m.Cols, make([]float64, m.NNZ()))
			require.NoError(t, err)
			st, err := solver.DoSymbolicFactorization(carrier)
			require.NoError(t, err)
			require.Equal(t, linalg.StatusSuccessful, st)

			st, err = solver.DoNumericFactorization(m)
			require.NoError(t, err)
			require.Equal(t, linalg.StatusSuccessful, st)

			// First solve: rhs = A·[1,2,3].
			x, err := solver.DoBackSolve([]float64{24, 15, 21})
			require.NoError(t, err)
			assert.InDeltaSlice(t, []float64{1, 2, 3}, x, 1e-6)

			// Second solve with a fresh rhs reuses the stored factorization.
			rhs, err := m.MulVec([]float64{4, 2, 3})
			require.NoError(t, err)
			x, err = solver.DoBackSolve(rhs)
			require.NoError(t, err)
			assert.InDeltaSlice(t, []float64{4, 2, 3}, x, 1e-6)
		})
	}
}

// TestSolver_Refactorize verifies that new values over the identical pattern
// reuse the symbolic analysis.
func TestSolver_Refactorize(t *testing.T) {
	for name, mk := range backends() {
		t.Run(name, func(t *testing.T) {
			solver := mk()
			m := testMatrix(t)

			st, err := solver.DoSymbolicFactorization(m)
			require.NoError(t, err)
			require.Equal(t, linalg.StatusSuccessful, st)
			st, err = solver.DoNumericFactorization(m)
			require.NoError(t, err)
			require.Equal(t, linalg.StatusSuccessful, st)

			// Scale every value by 2: same pattern, new factorization.
			scaled := m.Clone()
			for i := range scaled.Data {
				scaled.Data[i] *= 2
			}
			st, err = solver.DoNumericFactorization(scaled)
			require.NoError(t, err)
			require.Equal(t, linalg.StatusSuccessful, st)

			rhs, err := scaled.MulVec([]float64{1, 2, 3})
			require.NoError(t, err)
			x, err := solver.DoBackSolve(rhs)
			require.NoError(t, err)
			assert.InDeltaSlice(t, []float64{1, 2, 3}, x, 1e-6)
		})
	}
}

// TestSolver_StateMachine verifies the phase ordering errors: back-solve and
// numeric factorization refuse to run before their prerequisites.
func TestSolver_StateMachine(t *testing.T) {
	for name, mk := range backends() {
		t.Run(name, func(t *testing.T) {
			solver := mk()
			m := testMatrix(t)

			st, err := solver.DoNumericFactorization(m)
			assert.ErrorIs(t, err, linalg.ErrNoSymbolic)
			assert.Equal(t, linalg.StatusError, st)

			_, err = solver.DoBackSolve([]float64{1, 2, 3})
			assert.ErrorIs(t, err, linalg.ErrNotFactorized)

			st, err = solver.DoSymbolicFactorization(m)
			require.NoError(t, err)
			require.Equal(t, linalg.StatusSuccessful, st)

			// Symbolic-ready still refuses to back-solve.
			_, err = solver.DoBackSolve([]float64{1, 2, 3})
			assert.ErrorIs(t, err, linalg.ErrNotFactorized)

			st, err = solver.DoNumericFactorization(m)
			require.NoError(t, err)
			require.Equal(t, linalg.StatusSuccessful, st)

			_, err = solver.DoBackSolve([]float64{1, 2})
			assert.ErrorIs(t, err, linalg.ErrBadRHS)
		})
	}
}

// TestSolver_PatternMismatch verifies that the numeric phase rejects a matrix
// whose lower-triangle pattern differs from the one analyzed symbolically.
func TestSolver_PatternMismatch(t *testing.T) {
	for name, mk := range backends() {
		t.Run(name, func(t *testing.T) {
			solver := mk()
			m := testMatrix(t)

			st, err := solver.DoSymbolicFactorization(m)
			require.NoError(t, err)
			require.Equal(t, linalg.StatusSuccessful, st)

			other, err := linalg.NewCoord(3,
				[]int{0, 1, 2},
				[]int{0, 1, 2},
				[]float64{1, 2, 3})
			require.NoError(t, err)
			st, err = solver.DoNumericFactorization(other)
			assert.ErrorIs(t, err, linalg.ErrPatternMismatch)
			assert.Equal(t, linalg.StatusError, st)
		})
	}
}

// TestSolver_Singular verifies the singular outcome: StatusSingular with a
// nil error, and the solver stays symbolic-ready (a later factorization with
// the same pattern may still succeed).
func TestSolver_Singular(t *testing.T) {
	// [[1,1],[1,1]] is rank one.
	singular, err := linalg.NewCoord(2,
		[]int{0, 1, 1},
		[]int{0, 0, 1},
		[]float64{1, 1, 1})
	require.NoError(t, err)

	for name, mk := range backends() {
		t.Run(name, func(t *testing.T) {
			solver := mk()

			st, err := solver.DoSymbolicFactorization(singular)
			require.NoError(t, err)
			require.Equal(t, linalg.StatusSuccessful, st)

			st, err = solver.DoNumericFactorization(singular)
			require.NoError(t, err)
			assert.Equal(t, linalg.StatusSingular, st)

			_, err = solver.DoBackSolve([]float64{1, 1})
			assert.ErrorIs(t, err, linalg.ErrNotFactorized,
				"a singular factorization must not leave a usable factor behind")

			// Same pattern, nonsingular values: recoverable without a new
			// symbolic phase.
			ok, err := linalg.NewCoord(2,
				[]int{0, 1, 1},
				[]int{0, 0, 1},
				[]float64{2, 1, 1})
			require.NoError(t, err)
			st, err = solver.DoNumericFactorization(ok)
			require.NoError(t, err)
			require.Equal(t, linalg.StatusSuccessful, st)
			x, err := solver.DoBackSolve([]float64{3, 2})
			require.NoError(t, err)
			assert.InDeltaSlice(t, []float64{1, 1}, x, 1e-6)
		})
	}
}

// TestSolver_NilMatrix covers the nil-matrix guard of both phases.
func TestSolver_NilMatrix(t *testing.T) {
	for name, mk := range backends() {
		t.Run(name, func(t *testing.T) {
			solver := mk()

			st, err := solver.DoSymbolicFactorization(nil)
			assert.ErrorIs(t, err, linalg.ErrNilMatrix)
			assert.Equal(t, linalg.StatusError, st)

			m := testMatrix(t)
			st, err = solver.DoSymbolicFactorization(m)
			require.NoError(t, err)
			require.Equal(t, linalg.StatusSuccessful, st)

			st, err = solver.DoNumericFactorization(nil)
			assert.ErrorIs(t, err, linalg.ErrNilMatrix)
			assert.Equal(t, linalg.StatusError, st)
		})
	}
}

// TestSolver_DuplicateEntries verifies that repeated coordinates sum:
// splitting the (1,0) entry in two must not change the solution.
func TestSolver_DuplicateEntries(t *testing.T) {
	split, err := linalg.NewCoord(3,
		[]int{0, 1, 1, 1, 2, 2},
		[]int{0, 0, 0, 1, 0, 2},
		[]float64{1, 3, 4, 4, 3, 6})
	require.NoError(t, err)

	for name, mk := range backends() {
		t.Run(name, func(t *testing.T) {
			solver := mk()

			st, err := solver.DoSymbolicFactorization(split)
			require.NoError(t, err)
			require.Equal(t, linalg.StatusSuccessful, st)
			st, err = solver.DoNumericFactorization(split)
			require.NoError(t, err)
			require.Equal(t, linalg.StatusSuccessful, st)

			x, err := solver.DoBackSolve([]float64{24, 15, 21})
			require.NoError(t, err)
			assert.InDeltaSlice(t, []float64{1, 2, 3}, x, 1e-6)
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "successful", linalg.StatusSuccessful.String())
	assert.Equal(t, "singular", linalg.StatusSingular.String())
	assert.Equal(t, "error", linalg.StatusError.String())
	assert.Equal(t, "unknown", linalg.Status(42).String())
}
