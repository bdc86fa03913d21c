package solver

// Basic types and constants used throughout the engine.

// Status is the outcome of a solving step, or the truth value of a literal
// under the current assignment.
type Status byte

const (
	// Indet means the problem was not proven sat or unsat yet.
	// For a literal, it means the literal is currently unassigned.
	Indet = Status(iota)
	// Sat means the problem is satisfiable. For a literal, it means the
	// literal is true under the current assignment.
	Sat
	// Unsat means the problem is unsatisfiable, either globally or under
	// the current assumptions. For a literal, it means the literal is false.
	Unsat
	// Interrupted means the conflict budget was exhausted before the search
	// could decide the problem. The solver remains usable: a later call to
	// Solve resumes with all learnt clauses and activities intact.
	Interrupted
)

func (s Status) String() string {
	switch s {
	case Indet:
		return "INDETERMINATE"
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	case Interrupted:
		return "INTERRUPTED"
	default:
		panic("invalid status")
	}
}

// Var start at 0; thus the CNF variable 1 is encoded as the Var 0.
type Var int32

// Lit start at 0 and are positive; the sign is the last bit.
// Thus the CNF literal -3 is encoded as 2*(3-1) + 1 = 5.
type Lit int32

// LitUndef is a sentinel value standing for "no literal".
const LitUndef = Lit(-1)

// IntToLit converts a CNF literal (1-based, signed) to a Lit.
// It panics if i is 0, since 0 terminates clauses in the CNF format
// and never denotes a literal.
func IntToLit(i int32) Lit {
	if i == 0 {
		panic("cannot convert the literal 0")
	}
	if i < 0 {
		return Lit(2*(-i-1) + 1)
	}
	return Lit(2 * (i - 1))
}

// Lit returns the positive Lit associated to v.
func (v Var) Lit() Lit {
	return Lit(v * 2)
}

// SignedLit returns the Lit associated to v, negated if 'signed', positive else.
func (v Var) SignedLit(signed bool) Lit {
	if signed {
		return Lit(v*2) + 1
	}
	return Lit(v * 2)
}

// Var returns the variable of l.
func (l Lit) Var() Var {
	return Var(l / 2)
}

// Int returns the equivalent CNF literal.
func (l Lit) Int() int32 {
	res := int32(l/2 + 1)
	if l&1 == 1 {
		return -res
	}
	return res
}

// IsPositive is true iff l is a positive literal.
func (l Lit) IsPositive() bool {
	return l&1 == 0
}

// Negation returns the opposite literal of l.
func (l Lit) Negation() Lit {
	return l ^ 1
}
