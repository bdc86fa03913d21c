package solver

// Assignment bookkeeping: the three-valued truth state of each variable,
// the chronological trail of assigned literals, and the decision level
// marks used for backtracking.

// varData keeps, for an assigned variable, the clause that forced it (or
// ClauseRefUndef for decisions and assumptions) and the decision level the
// assignment was made at.
type varData struct {
	reason ClauseRef
	level  int
}

// litValue returns Sat if l is true under the current assignment, Unsat if
// it is false, and Indet if its variable is unassigned.
func (s *Solver) litValue(l Lit) Status {
	assign := s.assigns[l.Var()]
	if assign == 0 {
		return Indet
	}
	if (assign > 0) == l.IsPositive() {
		return Sat
	}
	return Unsat
}

// varValue is like litValue for the positive literal of v.
func (s *Solver) varValue(v Var) Status {
	switch s.assigns[v] {
	case 0:
		return Indet
	case 1:
		return Sat
	default:
		return Unsat
	}
}

// decisionLevel returns the current decision level, i.e the number of
// decisions on the trail.
func (s *Solver) decisionLevel() int {
	return len(s.trailLim)
}

// newDecisionLevel opens a new decision level by recording the current
// trail length.
func (s *Solver) newDecisionLevel() {
	s.trailLim = append(s.trailLim, len(s.trail))
}

// uncheckedEnqueue assigns l and pushes it on the trail. The literal's
// variable must be unassigned.
func (s *Solver) uncheckedEnqueue(l Lit, from ClauseRef) {
	v := l.Var()
	if l.IsPositive() {
		s.assigns[v] = 1
	} else {
		s.assigns[v] = -1
	}
	s.varData[v] = varData{reason: from, level: s.decisionLevel()}
	s.trail = append(s.trail, l)
}

// enqueue assigns l with the given reason if it is currently unassigned.
// It returns false iff l is already false, i.e the assignment conflicts.
func (s *Solver) enqueue(l Lit, from ClauseRef) bool {
	switch s.litValue(l) {
	case Sat:
		return true // No-op: already true.
	case Unsat:
		return false
	default:
		s.uncheckedEnqueue(l, from)
		return true
	}
}

// cancelUntil backtracks to the given decision level: every literal
// assigned at a higher level is unassigned, its preferred polarity is
// saved, and its variable is reinserted in the order heap.
func (s *Solver) cancelUntil(level int) {
	if s.decisionLevel() <= level {
		return
	}
	bound := s.trailLim[level]
	for i := len(s.trail) - 1; i >= bound; i-- {
		l := s.trail[i]
		v := l.Var()
		s.assigns[v] = 0
		s.varData[v] = varData{reason: ClauseRefUndef, level: -1}
		s.polarity[v] = l.IsPositive()
		s.order.insert(int(v))
	}
	s.trail = s.trail[:bound]
	s.trailLim = s.trailLim[:level]
	if s.qhead > bound {
		s.qhead = bound
	}
}
