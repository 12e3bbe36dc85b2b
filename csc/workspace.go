// SPDX-License-Identifier: MIT

// Package csc: workspace provisioning. Every structural and solver routine
// in this module calls one of these two helpers for each scratch buffer it
// needs, instead of scattering ad hoc nil checks per call site. The helpers
// are pure precondition-checking allocators with no hidden state.
package csc

// IntWorkspace validates or allocates an integer scratch buffer.
//
// Contract:
//   - existing == nil: a new zero-initialized buffer of exactly minLen is
//     allocated and returned.
//   - len(existing) < minLen: ErrWorkspaceTooShort is returned before any
//     side effect.
//   - otherwise: existing is returned with its first zeroFirst elements set
//     to zero; the tail beyond zeroFirst is never read nor written, it stays
//     the caller's responsibility. Pass zeroFirst == 0 for no clearing.
//
// zeroFirst must not exceed minLen; the prefix-only promise is what lets
// repeated solver calls reuse one oversized buffer.
// Complexity: O(minLen) on allocation, O(zeroFirst) otherwise.
func IntWorkspace(minLen int, existing []int, zeroFirst int) ([]int, error) {
	if existing == nil {
		return make([]int, minLen), nil
	}
	if len(existing) < minLen {
		return nil, ErrWorkspaceTooShort
	}
	for i := 0; i < zeroFirst; i++ {
		existing[i] = 0
	}

	return existing, nil
}

// FloatWorkspace validates or allocates a float64 scratch buffer.
//
// Same contract as IntWorkspace but without a clearing policy: the dense
// accumulator algorithms in this module sparse-clear exactly the positions
// they are about to use, so a blanket zero-fill would only add O(n) cost.
// Complexity: O(minLen) on allocation, O(1) otherwise.
func FloatWorkspace(minLen int, existing []float64) ([]float64, error) {
	if existing == nil {
		return make([]float64, minLen), nil
	}
	if len(existing) < minLen {
		return nil, ErrWorkspaceTooShort
	}

	return existing, nil
}
