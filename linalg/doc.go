// Package linalg defines the sparse linear-solver contract used by the
// optimization layer to solve symmetric KKT systems, together with two
// interchangeable backends.
//
// Matrices are symmetric and are handed to solvers as the lower triangle in
// coordinate (COO) form — see Coord. Solvers follow a three-state contract:
//
//	uninitialized → DoSymbolicFactorization → symbolic-ready
//	symbolic-ready → DoNumericFactorization → numeric-ready
//	numeric-ready  → DoBackSolve (repeatable, any number of right-hand sides)
//
// The symbolic phase fixes everything that depends only on the sparsity
// pattern; the numeric phase may then be repeated with different values over
// the identical Rows/Cols arrays (a pattern change requires a new symbolic
// phase — backends detect and reject mismatched patterns). DoBackSolve never
// refactorizes.
//
// Numerical outcomes are reported through the Status vocabulary
// (StatusSuccessful, StatusSingular, StatusError); errors are reserved for
// contract misuse (wrong state, bad dimensions, mismatched pattern). All
// backends share both vocabularies exactly, so the caller's iteration loop
// is backend-agnostic.
//
// Backends:
//
//   - DenseLU — reference backend: mirrors the lower triangle into a dense
//     symmetric matrix and delegates to gonum's LU factorization. Intended
//     for validation and small systems.
//   - SparseLDL — native up-looking sparse LDLᵀ factorization with a
//     symbolic phase (elimination tree + per-row fill-in patterns) that is
//     reused across numeric refactorizations. No pivoting: a zero pivot
//     reports StatusSingular.
//
// Factorization objects are not safe for concurrent use; guard shared
// instances externally.
package linalg
