// Package csc defines the Compressed-Sparse-Column storage container and the
// small set of shared utilities every sparsec kernel is built on.
//
// The csc package provides:
//
//   - Matrix, the CSC container: per-column half-open index ranges (ColIdx),
//     stored row indices (NzRows) and values (NzValues), a populated-entry
//     count (NzLength) and the advisory IndicesSorted flag.
//   - Dense, a flat row-major companion used by sparse×dense multiplication,
//     substitution right-hand sides and test densification.
//   - Workspace provisioning (IntWorkspace, FloatWorkspace): a validating
//     allocator for caller-supplied scratch buffers with exact minimum-length
//     contracts.
//   - Constructors: NewMatrix, Identity, Diag, FromDense.
//   - Opt-in structural validation (Validate with functional options), kept
//     strictly outside the hot kernels.
//
// A Matrix instance exclusively owns its three backing arrays. Operations
// that receive an output matrix take ownership of the write target and may
// resize it; capacity of the backing arrays may exceed NzLength. A matrix
// with NzLength == 0 is valid and represents an all-zero matrix.
package csc
