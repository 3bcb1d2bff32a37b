package linalg

// Status reports the numerical outcome of a factorization phase. All
// backends use exactly this vocabulary, so callers can branch on it without
// knowing which backend they hold.
type Status int

const (
	// StatusSuccessful means the phase completed and the solver advanced.
	StatusSuccessful Status = iota
	// StatusSingular means the matrix is numerically (or structurally)
	// singular; the solver stays in its previous state.
	StatusSingular
	// StatusError means the phase failed for a non-numerical reason; the
	// accompanying error carries the cause.
	StatusError
)

// String renders the status name for diagnostics.
func (s Status) String() string {
	switch s {
	case StatusSuccessful:
		return "successful"
	case StatusSingular:
		return "singular"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// LinearSolver is the uniform three-phase contract of all sparse solver
// backends. Matrices are symmetric, supplied as their lower triangle in
// coordinate form; entries above the diagonal are discarded.
//
// The numeric matrix must carry the identical Rows/Cols arrays the symbolic
// phase saw (values may differ, including all-zero values at symbolic time).
// DoBackSolve may be called repeatedly with different right-hand sides
// without refactorizing. Instances are not safe for concurrent use.
type LinearSolver interface {
	// DoSymbolicFactorization fixes pattern-dependent structure.
	// Transitions uninitialized → symbolic-ready.
	DoSymbolicFactorization(m *Coord) (Status, error)

	// DoNumericFactorization computes the factorization values.
	// Requires symbolic-ready (or later); transitions to numeric-ready.
	DoNumericFactorization(m *Coord) (Status, error)

	// DoBackSolve returns x with A·x ≈ rhs using the stored factorization.
	// Requires numeric-ready.
	DoBackSolve(rhs []float64) ([]float64, error)
}

// phase is the solver state-machine position.
type phase int

const (
	phaseNone     phase = iota // uninitialized
	phaseSymbolic              // symbolic-ready
	phaseNumeric               // numeric-ready
)
