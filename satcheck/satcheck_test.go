package satcheck

import (
	"errors"
	"testing"

	"github.com/signadot/robdd/bdd"
	"github.com/signadot/robdd/parse"
)

func TestOracleAgreement(t *testing.T) {
	m, err := bdd.New([]string{"a", "b", "c", "d"})
	if err != nil {
		t.Fatal(err)
	}
	formulas := []string{
		"a",
		"~a",
		"a & b",
		"a | b",
		"a ^ b",
		"a -> b",
		"a <-> b",
		"a & ~a",
		"a | ~a",
		"(a & b) | (c & d)",
		"(a & ~c) | (b ^ d)",
		"((a -> b) & (b -> c)) -> (a -> c)",
		"(a <-> b) ^ (a <-> b)",
	}
	for _, formula := range formulas {
		root, err := parse.Parse(m, formula)
		if err != nil {
			t.Fatalf("Parse(%q): %v", formula, err)
		}
		sat, err := Sat(m, root)
		if err != nil {
			t.Fatalf("Sat(%q): %v", formula, err)
		}
		if want := root != bdd.False; sat != want {
			t.Errorf("Sat(%q) = %v, want %v", formula, sat, want)
		}
		taut, err := Tautology(m, root)
		if err != nil {
			t.Fatalf("Tautology(%q): %v", formula, err)
		}
		if want := root == bdd.True; taut != want {
			t.Errorf("Tautology(%q) = %v, want %v", formula, taut, want)
		}
	}
}

func TestEquivalent(t *testing.T) {
	m, err := bdd.New([]string{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		x, y string
		want bool
	}{
		{"de morgan", "~(a & b)", "~a | ~b", true},
		{"contrapositive", "a -> b", "~b -> ~a", true},
		{"xor as iff", "a ^ b", "~(a <-> b)", true},
		{"and vs or", "a & b", "a | b", false},
		{"negation", "a", "~a", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := parse.Parse(m, tt.x)
			if err != nil {
				t.Fatal(err)
			}
			y, err := parse.Parse(m, tt.y)
			if err != nil {
				t.Fatal(err)
			}
			got, err := Equivalent(m, x, y)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Equivalent(%q, %q) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
			if refs := x == y; got != refs {
				t.Errorf("solver disagrees with refs for %q vs %q: solver %v, refs %v",
					tt.x, tt.y, got, refs)
			}
		})
	}
}

func TestTerminals(t *testing.T) {
	m, err := bdd.New([]string{"a"})
	if err != nil {
		t.Fatal(err)
	}
	if sat, err := Sat(m, bdd.False); err != nil || sat {
		t.Errorf("Sat(False) = %v, %v, want false, nil", sat, err)
	}
	if sat, err := Sat(m, bdd.True); err != nil || !sat {
		t.Errorf("Sat(True) = %v, %v, want true, nil", sat, err)
	}
	if taut, err := Tautology(m, bdd.False); err != nil || taut {
		t.Errorf("Tautology(False) = %v, %v, want false, nil", taut, err)
	}
	if taut, err := Tautology(m, bdd.True); err != nil || !taut {
		t.Errorf("Tautology(True) = %v, %v, want true, nil", taut, err)
	}
	if eq, err := Equivalent(m, bdd.False, bdd.True); err != nil || eq {
		t.Errorf("Equivalent(False, True) = %v, %v, want false, nil", eq, err)
	}
}

func TestBadRefs(t *testing.T) {
	m, err := bdd.New([]string{"a"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Sat(m, 99); !errors.Is(err, bdd.ErrOutOfRange) {
		t.Errorf("Sat(99) error = %v, want ErrOutOfRange", err)
	}
	if _, err := Tautology(m, -1); !errors.Is(err, bdd.ErrOutOfRange) {
		t.Errorf("Tautology(-1) error = %v, want ErrOutOfRange", err)
	}
	if _, err := Equivalent(m, bdd.True, 99); !errors.Is(err, bdd.ErrOutOfRange) {
		t.Errorf("Equivalent(True, 99) error = %v, want ErrOutOfRange", err)
	}
}
