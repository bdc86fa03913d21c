package solver

// The watch index: for each literal, the list of clauses to inspect when
// that literal becomes true. Each entry caches a blocker literal from the
// clause; when the blocker is already true the clause is necessarily
// satisfied and propagation can skip it without touching clause memory.

type watcher struct {
	cref    ClauseRef
	blocker Lit // Another lit from the clause, usually the other watched one.
}

// watchClause registers the clause in the watch lists of the negations of
// its first two literals. Those two slots are, by invariant, the watched
// literals of every alive clause.
func (s *Solver) watchClause(cref ClauseRef) {
	c := s.arena.get(cref)
	first, second := c.First(), c.Second()
	s.watches[first.Negation()] = append(s.watches[first.Negation()], watcher{cref: cref, blocker: second})
	s.watches[second.Negation()] = append(s.watches[second.Negation()], watcher{cref: cref, blocker: first})
}

// unwatchClause removes the clause from the two watch lists it appears in.
// It must be called before the clause is freed.
func (s *Solver) unwatchClause(cref ClauseRef) {
	c := s.arena.get(cref)
	for i := 0; i < 2; i++ {
		neg := c.Get(i).Negation()
		wl := s.watches[neg]
		j := 0
		// The clause must be present in the list; this panics otherwise.
		for wl[j].cref != cref {
			j++
		}
		wl[j] = wl[len(wl)-1]
		s.watches[neg] = wl[:len(wl)-1]
	}
}

// propagate performs unit propagation until fixpoint, starting from the
// first unprocessed trail literal. It returns the conflicting clause, or
// ClauseRefUndef if no conflict arose.
func (s *Solver) propagate() ClauseRef {
	for s.qhead < len(s.trail) {
		p := s.trail[s.qhead] // p is now true; clauses watching its negation may react.
		s.qhead++
		s.Stats.NbPropagations++
		falseLit := p.Negation()
		ws := s.watches[p]
		j := 0
		for i := 0; i < len(ws); i++ {
			w := ws[i]
			if s.litValue(w.blocker) == Sat {
				ws[j] = w
				j++
				continue
			}
			// Make sure the false literal sits in slot 1.
			c := s.arena.get(w.cref)
			if c.First() == falseLit {
				c.swap(0, 1)
			}
			first := c.First()
			nw := watcher{cref: w.cref, blocker: first}
			if first != w.blocker && s.litValue(first) == Sat {
				// Clause already satisfied by the other watched literal.
				ws[j] = nw
				j++
				continue
			}
			// Look for an unfalsified literal to watch instead.
			moved := false
			for k := 2; k < c.Len(); k++ {
				if s.litValue(c.Get(k)) != Unsat {
					c.swap(1, k)
					neg := c.Second().Negation()
					s.watches[neg] = append(s.watches[neg], nw)
					moved = true
					break
				}
			}
			if moved {
				continue
			}
			// No alternative: the clause is unit or conflicting.
			ws[j] = nw
			j++
			if s.litValue(first) == Unsat {
				// Conflict. Keep the remaining watchers and stop propagating.
				for i++; i < len(ws); i++ {
					ws[j] = ws[i]
					j++
				}
				s.watches[p] = ws[:j]
				s.qhead = len(s.trail)
				return w.cref
			}
			s.uncheckedEnqueue(first, w.cref)
		}
		s.watches[p] = ws[:j]
	}
	return ClauseRefUndef
}
