package bdd

import (
	"errors"
	"testing"
)

func mustVar(t *testing.T, m *Manager, name string) Ref {
	t.Helper()
	r, err := m.Variable(name)
	if err != nil {
		t.Fatalf("Variable(%s) error = %v", name, err)
	}
	return r
}

func TestTerminalIdentities(t *testing.T) {
	m, err := New([]string{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}
	a := mustVar(t, m, "a")
	b := mustVar(t, m, "b")
	f, err := m.And(a, b)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		got  func() (Ref, error)
		want Ref
	}{
		{"and false left", func() (Ref, error) { return m.And(False, f) }, False},
		{"and false right", func() (Ref, error) { return m.And(f, False) }, False},
		{"and true left", func() (Ref, error) { return m.And(True, f) }, f},
		{"and true right", func() (Ref, error) { return m.And(f, True) }, f},
		{"or true left", func() (Ref, error) { return m.Or(True, f) }, True},
		{"or true right", func() (Ref, error) { return m.Or(f, True) }, True},
		{"or false left", func() (Ref, error) { return m.Or(False, f) }, f},
		{"or false right", func() (Ref, error) { return m.Or(f, False) }, f},
		{"xor self", func() (Ref, error) { return m.Xor(f, f) }, False},
		{"xor false", func() (Ref, error) { return m.Xor(f, False) }, f},
		{"implies from false", func() (Ref, error) { return m.Implies(False, f) }, True},
		{"implies to true", func() (Ref, error) { return m.Implies(f, True) }, True},
		{"iff self", func() (Ref, error) { return m.Iff(f, f) }, True},
		{"not false", func() (Ref, error) { return m.Not(False) }, True},
		{"not true", func() (Ref, error) { return m.Not(True) }, False},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.got()
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if got != tt.want {
				t.Errorf("got ref %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDoubleNegation(t *testing.T) {
	m, err := New([]string{"a", "b", "c"})
	if err != nil {
		t.Fatal(err)
	}
	a := mustVar(t, m, "a")
	b := mustVar(t, m, "b")
	c := mustVar(t, m, "c")

	fs := []Ref{False, True, a}
	if f, err := m.And(a, b); err == nil {
		fs = append(fs, f)
	} else {
		t.Fatal(err)
	}
	if f, err := m.Xor(b, c); err == nil {
		fs = append(fs, f)
	} else {
		t.Fatal(err)
	}

	for _, f := range fs {
		n1, err := m.Not(f)
		if err != nil {
			t.Fatal(err)
		}
		n2, err := m.Not(n1)
		if err != nil {
			t.Fatal(err)
		}
		if n2 != f {
			t.Errorf("Not(Not(%d)) = %d, want %d", f, n2, f)
		}
	}
}

func TestDeMorgan(t *testing.T) {
	m, err := New([]string{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}
	a := mustVar(t, m, "a")
	b := mustVar(t, m, "b")

	andAB, _ := m.And(a, b)
	notAnd, err := m.Not(andAB)
	if err != nil {
		t.Fatal(err)
	}
	na, _ := m.Not(a)
	nb, _ := m.Not(b)
	orNots, err := m.Or(na, nb)
	if err != nil {
		t.Fatal(err)
	}
	if notAnd != orNots {
		t.Errorf("~(a & b) = %d, ~a | ~b = %d, want equal refs", notAnd, orNots)
	}

	orAB, _ := m.Or(a, b)
	notOr, err := m.Not(orAB)
	if err != nil {
		t.Fatal(err)
	}
	andNots, err := m.And(na, nb)
	if err != nil {
		t.Fatal(err)
	}
	if notOr != andNots {
		t.Errorf("~(a | b) = %d, ~a & ~b = %d, want equal refs", notOr, andNots)
	}
}

func TestExcludedMiddle(t *testing.T) {
	m, err := New([]string{"a"})
	if err != nil {
		t.Fatal(err)
	}
	a := mustVar(t, m, "a")
	na, _ := m.Not(a)

	taut, err := m.Or(a, na)
	if err != nil {
		t.Fatal(err)
	}
	if taut != True {
		t.Errorf("a | ~a = %d, want True", taut)
	}

	contra, err := m.And(a, na)
	if err != nil {
		t.Fatal(err)
	}
	if contra != False {
		t.Errorf("a & ~a = %d, want False", contra)
	}
}

// The transitivity of implication is a tautology under every variable
// ordering, while the intermediate node counts differ.
func TestTransitivityAllOrderings(t *testing.T) {
	orderings := [][]string{
		{"A", "B", "C"},
		{"A", "C", "B"},
		{"B", "A", "C"},
		{"B", "C", "A"},
		{"C", "A", "B"},
		{"C", "B", "A"},
	}
	for _, ord := range orderings {
		m, err := New(ord)
		if err != nil {
			t.Fatal(err)
		}
		a := mustVar(t, m, "A")
		b := mustVar(t, m, "B")
		c := mustVar(t, m, "C")

		ab, _ := m.Implies(a, b)
		bc, _ := m.Implies(b, c)
		ac, _ := m.Implies(a, c)
		left, _ := m.And(ab, bc)
		root, err := m.Implies(left, ac)
		if err != nil {
			t.Fatal(err)
		}
		if root != True {
			t.Errorf("ordering %v: ((A -> B) & (B -> C)) -> (A -> C) = %d, want True", ord, root)
		}
	}
}

func TestXorShape(t *testing.T) {
	m, err := New([]string{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}
	a := mustVar(t, m, "a")
	b := mustVar(t, m, "b")
	x, err := m.Xor(a, b)
	if err != nil {
		t.Fatal(err)
	}

	root, err := m.At(x)
	if err != nil {
		t.Fatal(err)
	}
	if root.Var != "a" {
		t.Fatalf("root tests %q, want a", root.Var)
	}
	low, err := m.At(root.Low)
	if err != nil {
		t.Fatal(err)
	}
	high, err := m.At(root.High)
	if err != nil {
		t.Fatal(err)
	}
	if low.Var != "b" || low.Low != False || low.High != True {
		t.Errorf("low branch = %+v, want b with 0 -> False, 1 -> True", low)
	}
	if high.Var != "b" || high.Low != True || high.High != False {
		t.Errorf("high branch = %+v, want b with 0 -> True, 1 -> False", high)
	}

	reach, err := m.Reachable(x)
	if err != nil {
		t.Fatal(err)
	}
	if len(reach) != 5 {
		t.Errorf("xor reaches %d refs, want 5", len(reach))
	}
}

func TestIte(t *testing.T) {
	m, err := New([]string{"a", "b", "c"})
	if err != nil {
		t.Fatal(err)
	}
	a := mustVar(t, m, "a")
	b := mustVar(t, m, "b")
	c := mustVar(t, m, "c")

	if got, err := m.Ite(a, True, False); err != nil || got != a {
		t.Errorf("Ite(a, True, False) = %d, %v, want %d", got, err, a)
	}
	na, _ := m.Not(a)
	if got, err := m.Ite(a, False, True); err != nil || got != na {
		t.Errorf("Ite(a, False, True) = %d, %v, want %d", got, err, na)
	}

	ite, err := m.Ite(a, b, c)
	if err != nil {
		t.Fatal(err)
	}
	ab, _ := m.And(a, b)
	nac, _ := m.And(na, c)
	want, _ := m.Or(ab, nac)
	if ite != want {
		t.Errorf("Ite(a, b, c) = %d, want %d", ite, want)
	}
}

func TestApplyDispatch(t *testing.T) {
	m, err := New([]string{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}
	a := mustVar(t, m, "a")
	b := mustVar(t, m, "b")

	ops := []Op{OpAnd, OpOr, OpXor, OpImplies, OpIff}
	for _, op := range ops {
		t.Run(op.String(), func(t *testing.T) {
			got, err := m.Apply(op, a, b)
			if err != nil {
				t.Fatalf("Apply(%s) error = %v", op, err)
			}
			var want Ref
			switch op {
			case OpAnd:
				want, err = m.And(a, b)
			case OpOr:
				want, err = m.Or(a, b)
			case OpXor:
				want, err = m.Xor(a, b)
			case OpImplies:
				want, err = m.Implies(a, b)
			case OpIff:
				want, err = m.Iff(a, b)
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Errorf("Apply(%s, a, b) = %d, want %d", op, got, want)
			}
		})
	}

	if _, err := m.Apply(Op(42), a, b); !errors.Is(err, ErrBadOp) {
		t.Errorf("Apply(42) error = %v, want ErrBadOp", err)
	}
	if _, err := m.Apply(OpAnd, Ref(99), b); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Apply with bad ref error = %v, want ErrOutOfRange", err)
	}
	if _, err := m.Not(Ref(99)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Not(99) error = %v, want ErrOutOfRange", err)
	}
}

// The result caches are an accelerator only: with and without, the same
// construction sequence produces the same refs and the same table.
func TestCacheTransparency(t *testing.T) {
	build := func(m *Manager) []Ref {
		a := mustVar(t, m, "a")
		b := mustVar(t, m, "b")
		c := mustVar(t, m, "c")
		d := mustVar(t, m, "d")

		var out []Ref
		nc, _ := m.Not(c)
		anc, _ := m.And(a, nc)
		bxd, _ := m.Xor(b, d)
		f1, _ := m.Or(anc, bxd)
		out = append(out, f1)

		ab, _ := m.Implies(a, b)
		bc, _ := m.Implies(b, c)
		f2, _ := m.Iff(ab, bc)
		out = append(out, f2)

		f3, _ := m.And(f1, f2)
		out = append(out, f3)
		return out
	}

	ord := []string{"a", "b", "c", "d"}
	cached, err := New(ord)
	if err != nil {
		t.Fatal(err)
	}
	plain, err := New(ord, NoCache())
	if err != nil {
		t.Fatal(err)
	}

	got := build(cached)
	want := build(plain)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("formula %d: cached ref %d, uncached ref %d", i, got[i], want[i])
		}
	}
	if cached.NodeCount() != plain.NodeCount() {
		t.Errorf("NodeCount: cached %d, uncached %d", cached.NodeCount(), plain.NodeCount())
	}
}
