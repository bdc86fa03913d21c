package solver

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEnqueueAndValues(t *testing.T) {
	s := NewDefaultSolver()
	x, y := s.NewVar(), s.NewVar()
	if s.varValue(x) != Indet || s.litValue(y.Lit()) != Indet {
		t.Fatalf("fresh variables should be unassigned")
	}
	s.uncheckedEnqueue(x.Lit(), ClauseRefUndef)
	s.uncheckedEnqueue(y.Lit().Negation(), ClauseRefUndef)
	if s.varValue(x) != Sat {
		t.Errorf("x should be true")
	}
	if s.litValue(y.Lit()) != Unsat || s.litValue(y.Lit().Negation()) != Sat {
		t.Errorf("y should be false")
	}
	if !s.enqueue(x.Lit(), ClauseRefUndef) {
		t.Errorf("enqueueing an already-true literal should succeed")
	}
	if s.enqueue(y.Lit(), ClauseRefUndef) {
		t.Errorf("enqueueing an already-false literal should fail")
	}
	if diff := cmp.Diff([]Lit{x.Lit(), y.Lit().Negation()}, s.trail); diff != "" {
		t.Errorf("unexpected trail (-want +got):\n%s", diff)
	}
}

func TestCancelUntil(t *testing.T) {
	s := NewDefaultSolver()
	x, y, z := s.NewVar(), s.NewVar(), s.NewVar()
	s.uncheckedEnqueue(z.Lit(), ClauseRefUndef) // Level 0 fact.
	s.newDecisionLevel()
	s.uncheckedEnqueue(x.Lit(), ClauseRefUndef)
	s.newDecisionLevel()
	s.uncheckedEnqueue(y.Lit().Negation(), ClauseRefUndef)
	if s.decisionLevel() != 2 {
		t.Fatalf("expected level 2, got %d", s.decisionLevel())
	}

	s.cancelUntil(1)
	if s.decisionLevel() != 1 {
		t.Errorf("expected level 1, got %d", s.decisionLevel())
	}
	if s.varValue(y) != Indet {
		t.Errorf("y should have been unassigned")
	}
	if s.varValue(x) != Sat || s.varValue(z) != Sat {
		t.Errorf("x and z should still be assigned")
	}
	if s.polarity[y] {
		t.Errorf("y was assigned false, its saved polarity should be false")
	}
	if !s.order.contains(int(y)) {
		t.Errorf("y should be back in the order heap")
	}

	s.cancelUntil(0)
	if s.varValue(x) != Indet {
		t.Errorf("x should have been unassigned")
	}
	if s.varValue(z) != Sat {
		t.Errorf("level-0 assignments must survive backtracking")
	}
	if diff := cmp.Diff([]Lit{z.Lit()}, s.trail); diff != "" {
		t.Errorf("unexpected trail (-want +got):\n%s", diff)
	}
}
