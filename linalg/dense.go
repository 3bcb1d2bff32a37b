package linalg

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DenseLU is the reference backend: it mirrors the lower triangle into a
// dense symmetric matrix and delegates factorization and back-substitution
// to gonum's LU with partial pivoting. Use it to validate sparse backends
// and for small systems; its cost is O(n³) regardless of sparsity.
type DenseLU struct {
	phase phase
	n     int
	rows  []int // pattern fixed by symbolic phase
	cols  []int
	lu    mat.LU
}

// NewDenseLU creates an uninitialized dense reference solver.
func NewDenseLU() *DenseLU { return &DenseLU{} }

// DoSymbolicFactorization records the lower-triangle sparsity pattern for
// the pattern-identity check performed by the numeric phase. Values are not
// inspected (an all-zero matrix is accepted).
func (s *DenseLU) DoSymbolicFactorization(m *Coord) (Status, error) {
	if m == nil {
		return StatusError, ErrNilMatrix
	}
	t := m.Tril()
	s.n = t.Dim()
	s.rows = append(s.rows[:0], t.Rows...)
	s.cols = append(s.cols[:0], t.Cols...)
	s.phase = phaseSymbolic

	return StatusSuccessful, nil
}

// DoNumericFactorization factorizes the symmetric expansion of m.
//
// Error Conditions:
//   - ErrNoSymbolic       : called before DoSymbolicFactorization.
//   - ErrNilMatrix        : m is nil.
//   - ErrPatternMismatch  : m's lower-triangle pattern differs from symbolic.
//
// A numerically singular matrix reports StatusSingular with a nil error and
// leaves the solver symbolic-ready.
func (s *DenseLU) DoNumericFactorization(m *Coord) (Status, error) {
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

	dense := mat.NewDense(s.n, s.n, nil)
	for i := range t.Rows {
		r, c, v := t.Rows[i], t.Cols[i], t.Data[i]
		dense.Set(r, c, dense.At(r, c)+v)
		if r != c {
			dense.Set(c, r, dense.At(c, r)+v)
		}
	}
	s.lu.Factorize(dense)

	det := s.lu.Det()
	if det == 0 || math.IsNaN(det) {
		s.phase = phaseSymbolic
		return StatusSingular, nil
	}
	s.phase = phaseNumeric

	return StatusSuccessful, nil
}

// DoBackSolve solves A·x = rhs with the stored factorization. Repeatable
// with different right-hand sides; rhs is not mutated.
//
// Error Conditions:
//   - ErrNotFactorized : no successful numeric factorization yet.
//   - ErrBadRHS        : len(rhs) != Dim of the factorized matrix.
func (s *DenseLU) DoBackSolve(rhs []float64) ([]float64, error) {
	if s.phase < phaseNumeric {
		return nil, ErrNotFactorized
	}
	if len(rhs) != s.n {
		return nil, fmt.Errorf("%w: rhs %d, matrix %d", ErrBadRHS, len(rhs), s.n)
	}
	b := mat.NewVecDense(s.n, nil)
	for i, v := range rhs {
		b.SetVec(i, v)
	}
	var x mat.VecDense
	if err := s.lu.SolveVecTo(&x, false, b); err != nil {
		// gonum reports ill-conditioning via mat.Condition while still
		// producing a usable solution; only hard failures abort.
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, err
		}
	}
	out := make([]float64, s.n)
	for i := range out {
		out[i] = x.AtVec(i)
	}

	return out, nil
}

func (s *DenseLU) patternMatches(t *Coord) bool {
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
