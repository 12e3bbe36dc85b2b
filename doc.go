// Package sparsec is a sparse-matrix algebra engine built around the
// Compressed-Sparse-Column (CSC) storage format, together with the
// symbolic-numeric triangular-solver stack that sits in the inner loop of
// sparse Cholesky/LU-style factorizations.
//
// 🚀 What is sparsec?
//
//	A single-threaded, allocation-conscious reference library that brings together:
//		• CSC storage: the Matrix container, growable backing arrays, invariants
//		• Structural ops: transpose, scaled addition, sparse×sparse and sparse×dense
//		  multiplication, permutation construction and application
//		• Dense substitution: in-place forward (SolveLower) and backward (SolveUpper) sweeps
//		• Symbolic reachability: explicit-stack DFS over the implicit sparsity graph
//		• Sparse triangular solve: pattern discovery + elimination, column by column
//		• Elimination trees: path-compressed construction, with or without forming AᵀA
//		• Row patterns from the tree: O(fill of a row) instead of a full reachability search
//
// ✨ Why choose sparsec?
//
//   - Exact workspace contracts: every kernel accepts optional pre-sized
//     scratch buffers and validates them before touching any output
//   - Rock-solid error surface: sentinel errors matched via errors.Is,
//     no panics on user input, no logging inside the core
//   - Pure Go: no cgo, no hidden deps
//
// Everything is organized under three subpackages:
//
//	csc/        - the Matrix container, Dense companion, workspace provisioning,
//	              constructors and opt-in structural validation
//	ops/        - structural operations on CSC matrices
//	triangular/ - dense substitution, reachability, sparse solve,
//	              elimination tree and row-pattern kernels
//
// Concurrent calls are safe as long as they do not share an output matrix or
// a workspace buffer instance; all state lives in the arguments.
//
//	go get github.com/katalvlaran/sparsec
package sparsec
