package robdd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/signadot/robdd/bdd"
	"github.com/signadot/robdd/encode"
)

func TestBuild(t *testing.T) {
	m, root, err := Build([]string{"a", "b"}, "a & b")
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if m.NodeCount() != 5 {
		t.Errorf("NodeCount() = %d, want 5", m.NodeCount())
	}
	if root == bdd.False || root == bdd.True {
		t.Errorf("root = %d, want a decision node", root)
	}
}

func TestBuildErrors(t *testing.T) {
	if _, _, err := Build(nil, "a"); !errors.Is(err, bdd.ErrOrdering) {
		t.Errorf("Build(nil, ...) error = %v, want ErrOrdering", err)
	}
	if _, _, err := Build([]string{"a"}, "a &"); err == nil {
		t.Errorf("Build with malformed formula: error = nil, want error")
	}
	if _, _, err := Build([]string{"a"}, "a & b"); !errors.Is(err, bdd.ErrUnknownVariable) {
		t.Errorf("Build with unknown variable: error = %v, want ErrUnknownVariable", err)
	}
}

func TestEquivalent(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"commuted and", "a & b", "b & a", true},
		{"de morgan", "~(a & b)", "~a | ~b", true},
		{"absorption", "a & (a | b)", "a", true},
		{"distribution", "a & (b | c)", "(a & b) | (a & c)", true},
		{"negation", "a", "~a", false},
		{"weakening", "a & b", "a", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Equivalent([]string{"a", "b", "c"}, tt.a, tt.b)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Equivalent(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestExport(t *testing.T) {
	m, root, err := Build([]string{"a"}, "a | ~a")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Export(m, root, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !strings.Contains(buf.String(), "TAUTOLOGY") {
		t.Errorf("export missing tautology marker:\n%s", buf.String())
	}
	buf.Reset()
	if err := Export(m, root, &buf, encode.EncodeFormat(encode.DotFormat)); err != nil {
		t.Fatalf("Export(dot) error = %v", err)
	}
	if !strings.Contains(buf.String(), "digraph BDD") {
		t.Errorf("dot export missing preamble:\n%s", buf.String())
	}
}
