// Package ops implements the structural operations of sparsec on CSC
// matrices: transpose, scaled addition, sparse×sparse and sparse×dense
// multiplication, scalar scale/divide, element scans, and permutation
// construction, inversion and application.
//
// Conventions shared by every operation:
//
//   - Operands documented "not modified" are read-only; an output matrix is
//     owned by the call and may be reshaped or regrown (copy-and-replace).
//     Passing nil as the output makes the operation allocate one.
//   - Optional workspace parameters follow the csc provisioning contract:
//     nil allocates, too short fails with csc.ErrWorkspaceTooShort before
//     any output is mutated, long enough has only the required prefix
//     touched.
//   - Shape incompatibilities fail eagerly with csc.ErrShapeMismatch; no
//     partial output is produced.
//   - Errors are csc sentinels wrapped with an operation tag
//     ("Transpose: ...", "Mult: ..."); match them with errors.Is.
//
// All operations are single-threaded and synchronous. Concurrent calls are
// safe when they share neither an output matrix nor a workspace instance.
package ops
