package solver

// Options control the engine's search policies. Zero values are not
// meaningful; start from DefaultOptions and override fields as needed.
type Options struct {
	// VarDecay is the multiplicative decay of variable activities; the
	// bump increment is divided by it after each conflict.
	VarDecay float64
	// ClauseDecay is the multiplicative decay of learnt-clause activities.
	ClauseDecay float64

	// RestartPolicy selects Luby or geometric restarts.
	RestartPolicy RestartPolicy
	// RestartFirst is the conflict allowance of the first restart round.
	RestartFirst int
	// RestartInc is the growth base of the restart allowance.
	RestartInc float64

	// LearntSizeFactor sets the initial learnt-clause budget, as a fraction
	// of the number of original clauses.
	LearntSizeFactor float64
	// LearntSizeInc multiplies the learnt-clause budget at each adjustment.
	LearntSizeInc float64

	// ConflictBudget bounds the total number of conflicts a Solve call may
	// spend before returning Interrupted. Negative means no bound.
	ConflictBudget int64

	// PhaseSaving makes decisions reuse the last value a variable was
	// assigned, instead of always branching negative first.
	PhaseSaving bool
}

// DefaultOptions are the values used by NewDefaultSolver.
var DefaultOptions = Options{
	VarDecay:         0.95,
	ClauseDecay:      0.999,
	RestartPolicy:    LubyRestarts,
	RestartFirst:     100,
	RestartInc:       2.0,
	LearntSizeFactor: 1.0 / 3.0,
	LearntSizeInc:    1.1,
	ConflictBudget:   -1,
	PhaseSaving:      true,
}
