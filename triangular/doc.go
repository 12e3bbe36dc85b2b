// Package triangular implements the symbolic-numeric triangular-solver
// stack of sparsec, the inner loop of sparse Cholesky/LU-style
// factorizations:
//
//   - SolveLower / SolveUpper: in-place dense forward and backward
//     substitution against a CSC triangular matrix.
//   - Reach: explicit-stack depth-first search over the implicit sparsity
//     graph, discovering which rows of the solution become non-zero and in
//     which substitution-safe (topological) order.
//   - SolveColumn / Solve: sparse right-hand-side triangular solving that
//     combines reachability with dense-style elimination, touching only the
//     discovered pattern.
//   - EliminationTree: path-compressed construction of the elimination tree
//     of A, or of AᵀA without materializing the product.
//   - RowPatternFromTree: the non-zero pattern of one row of the Cholesky
//     factor straight from the tree, cheaper than a reachability search.
//
// Caller contracts the kernels trust without checking, exactly as the
// reference algorithms do: lower-triangular inputs store the diagonal as
// the first entry of each column, upper-triangular ones as the last, and
// diagonals are non-zero. A structurally singular diagonal is not detected;
// the division simply propagates ±Inf/NaN into the result. Run
// csc.Validate at a boundary if you want the checked variant of the
// structural invariants.
//
// Workspace parameters follow the csc provisioning contract; supplying one
// shorter than the documented minimum fails with csc.ErrWorkspaceTooShort
// before any output is touched. Errors carry an operation tag and are
// matched with errors.Is.
package triangular
