// SPDX-License-Identifier: MIT
// Package triangular: operation tags and shared error wrapping, mirroring
// the ops package so the whole module keeps one error surface.

package triangular

import "fmt"

// Operation name constants for unified error wrapping, no magic strings.
const (
	opSolveLower         = "SolveLower"
	opSolveUpper         = "SolveUpper"
	opReach              = "Reach"
	opSolveColumn        = "SolveColumn"
	opSolve              = "Solve"
	opEliminationTree    = "EliminationTree"
	opRowPatternFromTree = "RowPatternFromTree"
)

// opErrorf wraps err with an operation tag, preserving the sentinel for
// errors.Is/As. Call only with err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
