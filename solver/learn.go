package solver

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Conflict analysis: derive a learnt clause and a backjump level from a
// conflicting clause, following the first unique implication point scheme.

// analyze walks the trail backward from the conflict, resolving each
// current-level literal with its reason clause, until a single literal from
// the current decision level remains. It returns the learnt clause, with
// the asserting literal in slot 0 and a literal from the backjump level in
// slot 1 (if any), together with the backjump level.
// Every variable met during the walk has its activity bumped.
func (s *Solver) analyze(confl ClauseRef) ([]Lit, int) {
	learnt := append(s.learntBuf[:0], LitUndef) // Slot 0 is for the asserting literal.
	pathC := 0
	p := LitUndef
	index := len(s.trail) - 1

	for {
		c := s.arena.get(confl)
		if c.Learnt() {
			s.clauseBumpActivity(confl)
		}
		start := 0
		if p != LitUndef {
			start = 1 // Slot 0 of a reason clause is the literal it implied.
		}
		for k := start; k < c.Len(); k++ {
			q := c.Get(k)
			v := q.Var()
			if s.seen[v] || s.varData[v].level == 0 {
				continue
			}
			s.seen[v] = true
			s.seenToClear = append(s.seenToClear, v)
			s.varBumpActivity(v)
			if s.varData[v].level == s.decisionLevel() {
				pathC++
			} else {
				learnt = append(learnt, q)
			}
		}
		// Select the next trail literal taking part in the conflict.
		for !s.seen[s.trail[index].Var()] {
			index--
		}
		p = s.trail[index]
		index--
		confl = s.varData[p.Var()].reason
		s.seen[p.Var()] = false
		pathC--
		if pathC <= 0 {
			break
		}
	}
	learnt[0] = p.Negation()

	learnt = learnt[:s.minimizeLearnt(learnt)]
	s.learntBuf = learnt

	// The backjump level is the second-highest level in the clause. Move a
	// literal from that level into slot 1, so it is watched after learning.
	btLevel := 0
	if len(learnt) > 1 {
		maxIdx := 1
		for i := 2; i < len(learnt); i++ {
			if s.varData[learnt[i].Var()].level > s.varData[learnt[maxIdx].Var()].level {
				maxIdx = i
			}
		}
		learnt[1], learnt[maxIdx] = learnt[maxIdx], learnt[1]
		btLevel = s.varData[learnt[1].Var()].level
	}

	for _, v := range s.seenToClear {
		s.seen[v] = false
	}
	s.seenToClear = s.seenToClear[:0]
	return learnt, btLevel
}

// minimizeLearnt removes literals that are implied by the rest of the
// clause (self-subsuming resolution with their reason) and returns the new
// length. The asserting literal in slot 0 is always kept.
func (s *Solver) minimizeLearnt(learnt []Lit) int {
	sz := 1
	for i := 1; i < len(learnt); i++ {
		v := learnt[i].Var()
		reason := s.varData[v].reason
		if reason == ClauseRefUndef {
			learnt[sz] = learnt[i]
			sz++
			continue
		}
		c := s.arena.get(reason)
		for k := 1; k < c.Len(); k++ {
			if v2 := c.Get(k).Var(); !s.seen[v2] && s.varData[v2].level > 0 {
				learnt[sz] = learnt[i]
				sz++
				break
			}
		}
	}
	return sz
}

// analyzeFinal computes the set of assumptions responsible for forcing the
// assumption p to fail, by walking the reason graph back from p. The result
// is stored in s.failed, expressed as the assumption literals themselves.
func (s *Solver) analyzeFinal(p Lit) {
	s.failed = mapset.NewThreadUnsafeSet[Lit]()
	s.failed.Add(p)
	if s.decisionLevel() == 0 {
		return
	}
	s.seen[p.Var()] = true
	for i := len(s.trail) - 1; i >= s.trailLim[0]; i-- {
		l := s.trail[i]
		v := l.Var()
		if !s.seen[v] {
			continue
		}
		if reason := s.varData[v].reason; reason == ClauseRefUndef {
			// Reason-less above level 0: an assumption.
			if s.varData[v].level > 0 {
				s.failed.Add(l)
			}
		} else {
			c := s.arena.get(reason)
			for k := 1; k < c.Len(); k++ {
				if v2 := c.Get(k).Var(); s.varData[v2].level > 0 {
					s.seen[v2] = true
				}
			}
		}
		s.seen[v] = false
	}
	s.seen[p.Var()] = false
}
