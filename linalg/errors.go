package linalg

import "errors"

// Sentinel errors for the solver contract. Numerical failures (singularity)
// are reported through Status, not through these; errors mark misuse.
var (
	// ErrNilMatrix indicates a nil *Coord was passed to a solver or operation.
	ErrNilMatrix = errors.New("linalg: matrix is nil")

	// ErrBadTriple indicates inconsistent coordinate data: unequal slice
	// lengths or an index outside [0, n).
	ErrBadTriple = errors.New("linalg: invalid coordinate triples")

	// ErrBadDim indicates a non-positive matrix dimension.
	ErrBadDim = errors.New("linalg: dimension must be positive")

	// ErrNoSymbolic indicates a numeric factorization was requested before
	// any symbolic factorization.
	ErrNoSymbolic = errors.New("linalg: numeric factorization before symbolic factorization")

	// ErrNotFactorized indicates a back-solve was requested before a
	// successful numeric factorization.
	ErrNotFactorized = errors.New("linalg: back solve before numeric factorization")

	// ErrPatternMismatch indicates the numeric matrix's sparsity pattern
	// differs from the one fixed by the symbolic phase.
	ErrPatternMismatch = errors.New("linalg: sparsity pattern differs from symbolic factorization")

	// ErrBadRHS indicates a right-hand side whose length differs from the
	// factorized dimension.
	ErrBadRHS = errors.New("linalg: right-hand side length mismatch")

	// ErrDimMismatch indicates operand dimensions that do not agree.
	ErrDimMismatch = errors.New("linalg: dimension mismatch")
)
