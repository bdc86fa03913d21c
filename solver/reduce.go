package solver

import "sort"

// Learnt-clause database reduction: periodically remove the least useful
// half of the learnt clauses so propagation stays fast. Binary clauses are
// cheap to propagate and never removed; clauses currently serving as the
// reason of an assignment must survive, whatever their activity.

// locked reports whether the clause is the reason of its first literal's
// assignment.
func (s *Solver) locked(cref ClauseRef) bool {
	first := s.arena.get(cref).First()
	return s.litValue(first) == Sat && s.varData[first.Var()].reason == cref
}

// reduceLearnts removes roughly half of the learnt clauses: those in the
// low-activity half of the sorted database, plus any clause whose activity
// fell below extraLim.
func (s *Solver) reduceLearnts() {
	if len(s.learnts) == 0 {
		return
	}
	extraLim := s.clauseInc / float64(len(s.learnts))
	ar := &s.arena
	sort.Slice(s.learnts, func(i, j int) bool {
		ci, cj := ar.get(s.learnts[i]), ar.get(s.learnts[j])
		return ci.Len() > 2 && (cj.Len() == 2 || ci.activity() < cj.activity())
	})
	limit := len(s.learnts) / 2
	j := 0
	for i, cref := range s.learnts {
		c := ar.get(cref)
		if c.Len() > 2 && !s.locked(cref) && (i < limit || c.activity() < extraLim) {
			s.unwatchClause(cref)
			ar.free(cref)
			s.Stats.NbDeleted++
		} else {
			s.learnts[j] = cref
			j++
		}
	}
	s.learnts = s.learnts[:j]
	if ar.shouldCompact() {
		s.compactArena()
	}
}

// compactArena reclaims the space of freed clauses and remaps every cached
// reference: the clause DB, the watch lists, and the reasons of currently
// assigned variables.
func (s *Solver) compactArena() {
	remap := s.arena.compact()
	for i, cref := range s.clauses {
		s.clauses[i] = remap[cref]
	}
	for i, cref := range s.learnts {
		s.learnts[i] = remap[cref]
	}
	for l := range s.watches {
		for i := range s.watches[l] {
			s.watches[l][i].cref = remap[s.watches[l][i].cref]
		}
	}
	// Only assigned variables can hold a reason.
	for _, l := range s.trail {
		v := l.Var()
		if r := s.varData[v].reason; r != ClauseRefUndef {
			s.varData[v].reason = remap[r]
		}
	}
}
