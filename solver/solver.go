package solver

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

const (
	// Learnt-budget adjustment schedule: the budget grows by LearntSizeInc
	// every adjustInterval conflicts, and the interval itself grows.
	adjustStartConfl = 100
	adjustInc        = 1.5
	// Rescaling bounds for activity scores, to avoid overflowing.
	maxVarActivity    = 1e100
	maxClauseActivity = 1e20
)

// Stats are statistics about the search. They are provided for information
// purpose only and are not part of the solving contract.
type Stats struct {
	NbRestarts      int
	NbConflicts     int
	NbDecisions     int
	NbPropagations  int
	NbLearned       int // How many clauses were learned
	NbUnitLearned   int // How many unit clauses were learned
	NbBinaryLearned int // How many binary clauses were learned
	NbDeleted       int // How many learnt clauses were deleted
}

// A Solver is an incremental CDCL engine. It is the main data structure.
//
// A Solver owns all of its state exclusively and must not be shared between
// goroutines; concurrent workloads should give each worker its own instance.
type Solver struct {
	Verbose bool  // Indicates whether the solver should display progress information while solving. False by default.
	Stats   Stats // Statistics about the solving process.

	opts   Options
	nbVars int
	status Status
	unsat  bool // The clause set itself was proven unsatisfiable: permanent.

	arena   arena
	clauses []ClauseRef // Original clauses, never removed.
	learnts []ClauseRef // Learnt clauses, subject to reduction.
	watches [][]watcher // For each literal, the clauses watching its negation.

	assigns  []int8 // Truth state per variable: 0 unassigned, 1 true, -1 false.
	varData  []varData
	trail    []Lit
	trailLim []int
	qhead    int // Index of the first trail literal not propagated yet.

	activity  []float64 // How often each var is involved in conflicts.
	varInc    float64   // On each var bump, how big the increment should be.
	clauseInc float64   // Same for learnt clauses.
	order     queue
	polarity  []bool // Last assigned sign of each var, for phase saving.

	assumptions []Lit           // Staged for the next Solve call only.
	failed      mapset.Set[Lit] // Assumptions in the last conflicting core.
	lastModel   []int8          // Assignment snapshot of the last Sat answer.

	maxLearnts  float64 // Current learnt-clause budget.
	adjustCnt   int
	adjustConfl float64

	// Buffers reused across conflicts to reduce allocations.
	seen        []bool
	seenToClear []Var
	learntBuf   []Lit
}

// NewSolver makes an empty solver with the given options. Variables and
// clauses are then added incrementally with NewVar and AddClause.
func NewSolver(opts Options) *Solver {
	s := &Solver{
		opts:      opts,
		status:    Indet,
		varInc:    1.0,
		clauseInc: 1.0,
		arena:     newArena(1024),
	}
	s.order = newQueue(s.activity)
	return s
}

// NewDefaultSolver makes an empty solver with DefaultOptions.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

// NewVar allocates a fresh variable and grows all per-variable storage.
func (s *Solver) NewVar() Var {
	v := Var(s.nbVars)
	s.nbVars++
	s.assigns = append(s.assigns, 0)
	s.varData = append(s.varData, varData{reason: ClauseRefUndef, level: -1})
	s.activity = append(s.activity, 0)
	s.polarity = append(s.polarity, false)
	s.seen = append(s.seen, false)
	s.watches = append(s.watches, nil, nil)
	s.order.activity = s.activity // The slice may have been reallocated.
	s.order.insert(int(v))
	return v
}

// checkLits panics if one of the literals refers to a variable that was
// never created. Such a literal is a programming error on the caller's
// side: tolerating it would corrupt the trail.
func (s *Solver) checkLits(lits []Lit) {
	for _, l := range lits {
		if v := l.Var(); v < 0 || int(v) >= s.nbVars {
			panic(fmt.Sprintf("literal %d refers to an unknown variable", l.Int()))
		}
	}
}

// AddClause appends an original (permanent) clause to the solver.
// It panics if lits is empty or mentions an unknown variable.
// The slice is copied: the caller keeps ownership of lits.
// The model of a previous Sat answer is invalidated: Value answers from
// the level-0 assignment again until the next Solve call.
func (s *Solver) AddClause(lits []Lit) {
	if len(lits) == 0 {
		panic("empty clause added to the solver")
	}
	s.checkLits(lits)
	if s.unsat {
		return
	}
	s.status = Indet
	s.cancelUntil(0)

	// Simplify against the level-0 assignment: drop false and duplicate
	// literals, ignore clauses that are tautological or already true.
	ls := make([]Lit, len(lits))
	copy(ls, lits)
	sortLits(ls)
	j := 0
	prev := LitUndef
	for _, l := range ls {
		switch {
		case s.litValue(l) == Sat:
			return // Satisfied at level 0.
		case l == prev:
			continue
		case prev != LitUndef && l == prev.Negation():
			return // Tautology: l and its negation both present.
		case s.litValue(l) == Unsat:
			continue // False at level 0: the literal cannot help.
		default:
			ls[j] = l
			j++
			prev = l
		}
	}
	ls = ls[:j]

	switch len(ls) {
	case 0:
		// All literals were false at level 0.
		s.setUnsat()
	case 1:
		if !s.enqueue(ls[0], ClauseRefUndef) || s.propagate() != ClauseRefUndef {
			s.setUnsat()
		}
	default:
		cref := s.arena.alloc(ls, false)
		s.clauses = append(s.clauses, cref)
		s.watchClause(cref)
	}
}

// sortLits orders literals by their encoding, so that duplicates and
// opposite pairs end up adjacent.
func sortLits(lits []Lit) {
	for i := 1; i < len(lits); i++ {
		for j := i; j > 0 && lits[j] < lits[j-1]; j-- {
			lits[j], lits[j-1] = lits[j-1], lits[j]
		}
	}
}

// Assume stages literals as forced decisions for the next Solve call.
// Assumptions do not survive that call: Solve consumes them.
// Assume panics if a literal mentions an unknown variable.
func (s *Solver) Assume(lits ...Lit) {
	s.checkLits(lits)
	s.assumptions = append(s.assumptions, lits...)
}

// SetConflictBudget bounds the number of conflicts each subsequent Solve
// call may spend before giving up and returning Interrupted. A negative
// value removes the bound.
func (s *Solver) SetConflictBudget(n int64) {
	s.opts.ConflictBudget = n
}

// setUnsat records that the clause set itself is unsatisfiable.
func (s *Solver) setUnsat() {
	s.unsat = true
	s.status = Unsat
}

// Solve runs the CDCL search under the currently staged assumptions and
// returns Sat, Unsat or Interrupted. The assumptions are consumed: a
// subsequent Solve call starts over from the bare clause set.
//
// An Unsat answer obtained under assumptions is not final: Failed tells
// which assumptions took part in the conflict, and dropping them may make
// the problem satisfiable again. An Unsat answer with no assumption
// involved is permanent.
func (s *Solver) Solve() Status {
	defer func() { s.assumptions = s.assumptions[:0] }()
	if s.unsat {
		s.status = Unsat
		return Unsat
	}
	s.status = Indet
	s.failed = nil
	s.lastModel = nil
	s.cancelUntil(0)
	if s.propagate() != ClauseRefUndef {
		s.setUnsat()
		return Unsat
	}

	s.maxLearnts = float64(len(s.clauses)) * s.opts.LearntSizeFactor
	s.adjustConfl = adjustStartConfl
	s.adjustCnt = adjustStartConfl
	startConfl := s.Stats.NbConflicts

	if s.Verbose {
		fmt.Printf("c =========================================================\n")
		fmt.Printf("c | Restarts |  Conflicts  |  Learnts  |  Deleted  | Vars |\n")
		fmt.Printf("c =========================================================\n")
	}
	restarts := 0
	status := Indet
	for status == Indet {
		status = s.search(s.numConflicts(restarts), startConfl)
		if status == Indet {
			restarts++
			s.Stats.NbRestarts++
			s.rebuildOrderHeap()
			if s.Verbose {
				fmt.Printf("c | %8d | %11d | %9d | %9d | %4d |\n",
					restarts, s.Stats.NbConflicts, len(s.learnts), s.Stats.NbDeleted, s.nbVars)
			}
		}
	}
	if s.Verbose {
		fmt.Printf("c =========================================================\n")
	}
	if status == Sat {
		s.lastModel = make([]int8, len(s.assigns))
		copy(s.lastModel, s.assigns)
	}
	s.cancelUntil(0)
	s.status = status
	return status
}

// search runs the propagate/analyze/backjump cycle until the problem is
// decided, the restart allowance nofConflicts is exhausted (Indet is
// returned and the driver restarts), or the conflict budget runs out.
func (s *Solver) search(nofConflicts, startConfl int) Status {
	conflictC := 0
	for {
		if confl := s.propagate(); confl != ClauseRefUndef {
			s.Stats.NbConflicts++
			conflictC++
			if s.decisionLevel() == 0 {
				// The conflict does not depend on any assumption.
				s.unsat = true
				return Unsat
			}
			s.handleConflict(confl)
			continue
		}

		// No conflict.
		if s.opts.ConflictBudget >= 0 && int64(s.Stats.NbConflicts-startConfl) >= s.opts.ConflictBudget {
			s.cancelUntil(0)
			return Interrupted
		}
		if conflictC >= nofConflicts {
			s.cancelUntil(0)
			return Indet
		}
		if float64(len(s.learnts)-len(s.trail)) >= s.maxLearnts {
			s.reduceLearnts()
		}

		// Re-establish assumptions, then branch.
		next := LitUndef
		for next == LitUndef && s.decisionLevel() < len(s.assumptions) {
			p := s.assumptions[s.decisionLevel()]
			switch s.litValue(p) {
			case Sat:
				// Already holds: open a dummy level so indices line up.
				s.newDecisionLevel()
			case Unsat:
				s.analyzeFinal(p)
				return Unsat
			default:
				next = p
			}
		}
		if next == LitUndef {
			next = s.chooseDecision()
			if next == LitUndef {
				return Sat // All variables are assigned.
			}
			s.Stats.NbDecisions++
		}
		s.newDecisionLevel()
		s.uncheckedEnqueue(next, ClauseRefUndef)
	}
}

// handleConflict learns a clause from the conflict, backjumps, and asserts
// the learnt clause's first literal.
func (s *Solver) handleConflict(confl ClauseRef) {
	learnt, btLevel := s.analyze(confl)
	s.cancelUntil(btLevel)
	if len(learnt) == 1 {
		s.Stats.NbUnitLearned++
		s.uncheckedEnqueue(learnt[0], ClauseRefUndef)
	} else {
		cref := s.arena.alloc(learnt, true)
		s.learnts = append(s.learnts, cref)
		s.watchClause(cref)
		s.clauseBumpActivity(cref)
		if len(learnt) == 2 {
			s.Stats.NbBinaryLearned++
		}
		s.uncheckedEnqueue(learnt[0], cref)
	}
	s.Stats.NbLearned++
	s.varDecayActivity()
	s.clauseDecayActivity()

	s.adjustCnt--
	if s.adjustCnt <= 0 {
		s.adjustConfl *= adjustInc
		s.adjustCnt = int(s.adjustConfl)
		s.maxLearnts *= s.opts.LearntSizeInc
	}
}

// rebuildOrderHeap rebuilds the branching heap from scratch, keeping only
// the currently unassigned variables. It is called after a restart, when
// the trail holds nothing but level-0 facts.
func (s *Solver) rebuildOrderHeap() {
	ints := make([]int, 0, s.nbVars)
	for v := 0; v < s.nbVars; v++ {
		if s.assigns[v] == 0 {
			ints = append(ints, v)
		}
	}
	s.order.build(ints)
}

// chooseDecision pops unassigned variables off the order heap until one is
// found, and returns it with its preferred polarity. It returns LitUndef
// when every variable is assigned.
func (s *Solver) chooseDecision() Lit {
	for !s.order.empty() {
		v := Var(s.order.removeMax())
		if s.assigns[v] != 0 {
			continue
		}
		signed := true // Branch negative by default.
		if s.opts.PhaseSaving {
			signed = !s.polarity[v]
		}
		return v.SignedLit(signed)
	}
	return LitUndef
}

func (s *Solver) varDecayActivity() {
	s.varInc *= 1 / s.opts.VarDecay
}

func (s *Solver) varBumpActivity(v Var) {
	s.activity[v] += s.varInc
	if s.activity[v] > maxVarActivity { // Rescaling is needed to avoid overflowing.
		for i := range s.activity {
			s.activity[i] *= 1 / maxVarActivity
		}
		s.varInc *= 1 / maxVarActivity
	}
	if s.order.contains(int(v)) {
		s.order.decrease(int(v))
	}
}

func (s *Solver) clauseDecayActivity() {
	s.clauseInc *= 1 / s.opts.ClauseDecay
}

func (s *Solver) clauseBumpActivity(cref ClauseRef) {
	c := s.arena.get(cref)
	act := c.activity() + s.clauseInc
	c.setActivity(act)
	if act > maxClauseActivity { // Rescale to avoid overflow.
		for _, ref := range s.learnts {
			c2 := s.arena.get(ref)
			c2.setActivity(c2.activity() * (1 / maxClauseActivity))
		}
		s.clauseInc *= 1 / maxClauseActivity
	}
}

// Value returns the truth value of l: Sat if true, Unsat if false, Indet if
// unassigned. After a Sat answer it reads the model; otherwise it reflects
// the current (possibly partial) assignment.
func (s *Solver) Value(l Lit) Status {
	if s.status == Sat && int(l.Var()) < len(s.lastModel) {
		assign := s.lastModel[l.Var()]
		if assign == 0 {
			return Indet
		}
		if (assign > 0) == l.IsPositive() {
			return Sat
		}
		return Unsat
	}
	return s.litValue(l)
}

// VarValue is like Value for the positive literal of v.
func (s *Solver) VarValue(v Var) Status {
	return s.Value(v.Lit())
}

// Model returns the satisfying assignment found by the last Solve call,
// one bool per variable. It panics if that call did not return Sat.
func (s *Solver) Model() []bool {
	if s.status != Sat || s.lastModel == nil {
		panic("cannot call Model() on a non-Sat solver")
	}
	res := make([]bool, s.nbVars)
	for i, assign := range s.lastModel {
		res[i] = assign > 0
	}
	return res
}

// Failed reports, after an assumption-driven Unsat answer, whether l is one
// of the assumptions that took part in the conflict.
func (s *Solver) Failed(l Lit) bool {
	return s.failed != nil && s.failed.Contains(l)
}

// CNF returns a DIMACS CNF representation of the problem: the unit facts
// already assigned at level 0, then the stored original clauses.
func (s *Solver) CNF() string {
	units := s.trail
	if s.decisionLevel() > 0 {
		units = s.trail[:s.trailLim[0]]
	}
	res := fmt.Sprintf("p cnf %d %d\n", s.nbVars, len(units)+len(s.clauses))
	for _, l := range units {
		res += fmt.Sprintf("%d 0\n", l.Int())
	}
	for _, cref := range s.clauses {
		res += fmt.Sprintf("%s\n", s.arena.get(cref).CNF())
	}
	return res
}

// NumVars returns the number of variables created so far.
func (s *Solver) NumVars() int { return s.nbVars }

// NumClauses returns the number of alive original clauses.
func (s *Solver) NumClauses() int { return len(s.clauses) }

// NumLearnts returns the number of alive learnt clauses.
func (s *Solver) NumLearnts() int { return len(s.learnts) }
