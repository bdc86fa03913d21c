package solver

import (
	"fmt"
	"math"
)

// A Clause is a view on a list of Lit stored in the arena, together with a
// learnt flag and an activity score. While the clause is alive, its first
// two literals are the watched ones.
type Clause struct {
	a   *arena
	ref ClauseRef
}

// Len returns the nb of lits in the clause.
func (c Clause) Len() int {
	return int(c.a.data[c.ref] & hdrSizeMask)
}

// Learnt returns true iff c was derived by conflict analysis rather than
// added by the caller.
func (c Clause) Learnt() bool {
	return c.a.data[c.ref]&hdrLearntMask != 0
}

// First returns the first lit from the clause.
func (c Clause) First() Lit {
	return Lit(c.a.data[c.ref+clauseHdrWords])
}

// Second returns the second lit from the clause.
func (c Clause) Second() Lit {
	return Lit(c.a.data[c.ref+clauseHdrWords+1])
}

// Get returns the ith literal from the clause.
func (c Clause) Get(i int) Lit {
	return Lit(c.a.data[c.ref+clauseHdrWords+ClauseRef(i)])
}

// Set sets the ith literal of the clause.
func (c Clause) Set(i int, l Lit) {
	c.a.data[c.ref+clauseHdrWords+ClauseRef(i)] = uint32(l)
}

// swap swaps the ith and jth lits from the clause.
func (c Clause) swap(i, j int) {
	li, lj := c.Get(i), c.Get(j)
	c.Set(i, lj)
	c.Set(j, li)
}

func (c Clause) activity() float64 {
	hi := uint64(c.a.data[c.ref+1])
	lo := uint64(c.a.data[c.ref+2])
	return math.Float64frombits(hi<<32 | lo)
}

func (c Clause) setActivity(act float64) {
	bits := math.Float64bits(act)
	c.a.data[c.ref+1] = uint32(bits >> 32)
	c.a.data[c.ref+2] = uint32(bits)
}

// CNF returns a DIMACS CNF representation of the clause.
func (c Clause) CNF() string {
	res := ""
	for i := 0; i < c.Len(); i++ {
		res += fmt.Sprintf("%d ", c.Get(i).Int())
	}
	return res + "0"
}
