package solver

import "testing"

func TestIntToLitRoundTrip(t *testing.T) {
	for i := int32(-8); i <= 8; i++ {
		if i == 0 {
			continue
		}
		l := IntToLit(i)
		if l.Int() != i {
			t.Errorf("IntToLit(%d).Int() == %d", i, l.Int())
		}
		if l.IsPositive() != (i > 0) {
			t.Errorf("IntToLit(%d).IsPositive() == %v", i, l.IsPositive())
		}
		if l.Negation().Negation() != l {
			t.Errorf("double negation of %d is not involutive", i)
		}
		if l.Negation().Var() != l.Var() {
			t.Errorf("negation of %d changed the variable", i)
		}
	}
}

func TestIntToLitZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("IntToLit(0) should have panicked")
		}
	}()
	IntToLit(0)
}

func TestVarLit(t *testing.T) {
	v := Var(3)
	if v.Lit() != IntToLit(4) {
		t.Errorf("Var(3).Lit() should be the CNF literal 4, got %d", v.Lit().Int())
	}
	if v.SignedLit(true) != IntToLit(-4) {
		t.Errorf("Var(3).SignedLit(true) should be the CNF literal -4, got %d", v.SignedLit(true).Int())
	}
	if v.SignedLit(false) != v.Lit() {
		t.Errorf("SignedLit(false) should agree with Lit()")
	}
}

func TestStatusString(t *testing.T) {
	tests := map[Status]string{
		Indet:       "INDETERMINATE",
		Sat:         "SAT",
		Unsat:       "UNSAT",
		Interrupted: "INTERRUPTED",
	}
	for st, expected := range tests {
		if st.String() != expected {
			t.Errorf("expected %q, got %q", expected, st.String())
		}
	}
}
