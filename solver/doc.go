// Package solver provides an incremental SAT engine based on
// conflict-driven clause learning.
//
// Problems are built in place: variables are created with NewVar, clauses
// added with AddClause, and the engine is queried with Solve. Between two
// calls to Solve, more variables and clauses may be added; everything the
// engine learned during earlier calls is kept.
//
//	s := solver.NewDefaultSolver()
//	x, y := s.NewVar(), s.NewVar()
//	s.AddClause([]solver.Lit{x.Lit(), y.Lit()})
//	s.AddClause([]solver.Lit{x.Lit().Negation(), y.Lit().Negation()})
//	if s.Solve() == solver.Sat {
//		fmt.Println(s.Model())
//	}
//
// A Solve call can also be made under assumptions, i.e literals that are
// treated as temporary unit clauses:
//
//	s.Assume(x.Lit())
//	if s.Solve() == solver.Unsat {
//		// s.Failed(x.Lit()) tells whether the assumption took part
//		// in the conflict.
//	}
//
// Assumptions only hold for the next Solve call. When the answer is Unsat
// under assumptions, Failed gives a (not necessarily minimal) subset of the
// assumptions that is already unsatisfiable together with the clauses.
//
// Long-running calls can be bounded with SetConflictBudget; a Solve call
// that exhausts its budget returns Interrupted and can be retried later,
// keeping all learnt clauses.
package solver
