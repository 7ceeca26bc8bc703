package simplex

import "context"

// SolveContext wraps Solve with a context. The context is checked
// between pivots; if it is cancelled or times out the solution search is
// aborted and the context error is returned.
func SolveContext(ctx context.Context, constraints [][]float64, objective []float64, dir direction, reported int, opts ...Option) (*SolveResult, error) {
	s, err := buildSettings(opts)
	if err != nil {
		return nil, err
	}

	return solveObjective(ctx, s, constraints, objective, dir, reported)
}

// SolveTableauContext wraps SolveTableau with a context, see SolveContext.
func SolveTableauContext(ctx context.Context, constraints [][]float64, objectiveRow []float64, dir direction, reported int, opts ...Option) (*SolveResult, error) {
	s, err := buildSettings(opts)
	if err != nil {
		return nil, err
	}

	return solveTableau(ctx, s, constraints, objectiveRow, dir, reported)
}
