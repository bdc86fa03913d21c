package solver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssumptionsXor(t *testing.T) {
	clauses := [][]int32{{1, 2}, {3, 4}, {-1, -2}, {-3, -4}}
	s := newSolverFromInts(DefaultOptions, clauses)
	require.Equal(t, Sat, s.Solve())
	checkModel(t, s, clauses)

	s.Assume(IntToLit(1), IntToLit(2))
	require.Equal(t, Unsat, s.Solve())
	require.True(t, s.Failed(IntToLit(1)))
	require.True(t, s.Failed(IntToLit(2)))
	require.False(t, s.Failed(IntToLit(3)))

	// The assumptions were consumed: the problem is satisfiable again.
	require.Equal(t, Sat, s.Solve())
	checkModel(t, s, clauses)
}

func TestContradictoryAssumptions(t *testing.T) {
	s := newSolverFromInts(DefaultOptions, [][]int32{{1, 2}})
	s.Assume(IntToLit(1))
	s.Assume(IntToLit(-1))
	require.Equal(t, Unsat, s.Solve())
	require.True(t, s.Failed(IntToLit(1)))
	require.True(t, s.Failed(IntToLit(-1)))
	require.Equal(t, Sat, s.Solve())
}

func TestFailedIsSubset(t *testing.T) {
	s := newSolverFromInts(DefaultOptions, [][]int32{{-1, -2}, {3, 4}})
	s.Assume(IntToLit(1), IntToLit(2), IntToLit(3))
	require.Equal(t, Unsat, s.Solve())
	require.True(t, s.Failed(IntToLit(1)))
	require.True(t, s.Failed(IntToLit(2)))
	require.False(t, s.Failed(IntToLit(3)), "an assumption never reached cannot have failed")
}

// Entailment queries: the clauses encode x1 -> x2 -> x3; assuming x1 and
// the negation of x3 must fail, and the failed set must name both.
func TestEntailmentThroughAssumptions(t *testing.T) {
	s := newSolverFromInts(DefaultOptions, [][]int32{{-1, 2}, {-2, 3}})
	s.Assume(IntToLit(-3), IntToLit(1))
	require.Equal(t, Unsat, s.Solve())
	require.True(t, s.Failed(IntToLit(-3)))
	require.True(t, s.Failed(IntToLit(1)))
}

func TestAssumptionAlreadySatisfied(t *testing.T) {
	s := newSolverFromInts(DefaultOptions, [][]int32{{1}})
	s.NewVar() // Variable 2, mentioned by no clause.
	// The first assumption already holds at level 0: it gets a dummy
	// decision level and the search goes on with the next one.
	s.Assume(IntToLit(1), IntToLit(2))
	require.Equal(t, Sat, s.Solve())
	require.Equal(t, Sat, s.Value(IntToLit(2)))
}

func TestIncrementalStrengthening(t *testing.T) {
	s := NewDefaultSolver()
	for i := 0; i < 3; i++ {
		s.NewVar()
	}
	s.AddClause([]Lit{IntToLit(1), IntToLit(2), IntToLit(3)})
	require.Equal(t, Sat, s.Solve())

	s.AddClause([]Lit{IntToLit(-1)})
	s.AddClause([]Lit{IntToLit(-2)})
	require.Equal(t, Sat, s.Solve())
	require.Equal(t, Sat, s.Value(IntToLit(3)), "x3 is forced once x1 and x2 are out")

	s.AddClause([]Lit{IntToLit(-3)})
	require.Equal(t, Unsat, s.Solve())
	require.Equal(t, Unsat, s.Solve(), "unsatisfiability without assumptions is final")
}

func TestNewVarBetweenSolves(t *testing.T) {
	s := NewDefaultSolver()
	x := s.NewVar()
	s.AddClause([]Lit{x.Lit()})
	require.Equal(t, Sat, s.Solve())

	y := s.NewVar()
	s.AddClause([]Lit{x.Lit().Negation(), y.Lit().Negation()})
	require.Equal(t, Sat, s.Solve())
	require.Equal(t, Unsat, s.Value(y.Lit()))
}

func TestAddClauseInvalidatesModel(t *testing.T) {
	s := newSolverFromInts(DefaultOptions, [][]int32{{1, 2}})
	require.Equal(t, Sat, s.Solve())
	model := s.Model()

	// Force x1 to the opposite of the model's choice: the unit clause is
	// assigned at level 0 and the stale model must not be consulted anymore.
	forced := IntToLit(1)
	if model[0] {
		forced = forced.Negation()
	}
	s.AddClause([]Lit{forced})
	require.Equal(t, Sat, s.Value(forced))
	require.Equal(t, Unsat, s.Value(forced.Negation()))
	require.Panics(t, func() { s.Model() }, "the model no longer holds")
	require.Equal(t, Sat, s.Solve())
}

func TestInterruptedKeepsLearnts(t *testing.T) {
	s := newSolverFromInts(DefaultOptions, pigeonhole(6, 5))
	s.SetConflictBudget(10)
	require.Equal(t, Interrupted, s.Solve())
	learned := s.Stats.NbLearned
	require.Greater(t, learned, 0)
	require.Greater(t, s.NumLearnts()+s.Stats.NbUnitLearned, 0)

	// Resuming picks the search up with the learnt clauses kept.
	s.SetConflictBudget(-1)
	require.Equal(t, Unsat, s.Solve())
	require.Greater(t, s.Stats.NbLearned, learned)
}

func TestSolveIsRepeatable(t *testing.T) {
	clauses := pigeonhole(4, 4)
	s := newSolverFromInts(DefaultOptions, clauses)
	for i := 0; i < 5; i++ {
		require.Equal(t, Sat, s.Solve())
		checkModel(t, s, clauses)
	}
}
