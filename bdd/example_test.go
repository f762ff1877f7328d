package bdd_test

import (
	"fmt"
	"log"

	"github.com/signadot/robdd/bdd"
)

// This example shows the basic usage of the package: fix an ordering,
// build a function from variables, and inspect the result.
func Example_basic() {
	m, err := bdd.New([]string{"a", "b"})
	if err != nil {
		log.Fatal(err)
	}
	a, _ := m.Variable("a")
	b, _ := m.Variable("b")
	// f == a & b
	f, _ := m.And(a, b)
	count, _ := m.Satcount(f)
	fmt.Printf("root: %d\n", f)
	fmt.Printf("nodes: %d\n", m.NodeCount())
	fmt.Printf("sat. assignments: %s\n", count)
	// Output:
	// root: 4
	// nodes: 5
	// sat. assignments: 1
}

// Equivalent formulas land on the same ref, so equivalence checking is
// ref comparison.
func Example_canonicity() {
	m, err := bdd.New([]string{"a", "b"})
	if err != nil {
		log.Fatal(err)
	}
	a, _ := m.Variable("a")
	b, _ := m.Variable("b")

	ab, _ := m.And(a, b)
	notAB, _ := m.Not(ab)
	na, _ := m.Not(a)
	nb, _ := m.Not(b)
	deMorgan, _ := m.Or(na, nb)

	fmt.Println(notAB == deMorgan)
	// Output:
	// true
}
