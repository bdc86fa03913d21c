package solver

import "math"

// Restart scheduling. The driver asks, before opening a new restart round,
// how many conflicts the round may consume; once that many conflicts have
// occurred the search backtracks to level 0 (keeping all learnt clauses)
// and a new round begins.

// RestartPolicy selects how the conflict allowance grows from one restart
// to the next.
type RestartPolicy byte

const (
	// LubyRestarts follows the Luby et al. sequence: the allowance for
	// restart x is restartInc^k * restartFirst, where k is the exponent of
	// the finite Luby subsequence containing x.
	LubyRestarts = RestartPolicy(iota)
	// GeometricRestarts multiplies the allowance by restartInc after each
	// restart.
	GeometricRestarts
)

// luby returns the term of the Luby sequence for index x (0-based), with
// base y: 1, 1, y, 1, 1, y, y^2, 1, 1, y, 1, 1, y, y^2, y^3, ...
func luby(y float64, x int) float64 {
	// Find the finite subsequence containing x, and the size of that
	// subsequence.
	size, seq := 1, 0
	for size < x+1 {
		seq++
		size = 2*size + 1
	}
	for size-1 != x {
		size = (size - 1) / 2
		seq--
		x %= size
	}
	return math.Pow(y, float64(seq))
}

// numConflicts returns the conflict allowance for the given restart round.
func (s *Solver) numConflicts(restarts int) int {
	switch s.opts.RestartPolicy {
	case LubyRestarts:
		return int(luby(s.opts.RestartInc, restarts) * float64(s.opts.RestartFirst))
	case GeometricRestarts:
		return int(math.Pow(s.opts.RestartInc, float64(restarts)) * float64(s.opts.RestartFirst))
	default:
		panic("invalid restart policy")
	}
}
