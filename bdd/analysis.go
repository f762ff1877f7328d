package bdd

import (
	"fmt"
	"math/big"

	mapset "github.com/deckarep/golang-set/v2"
)

// Satcount computes the number of satisfying assignments over the full
// ordering for the function denoted by root.  The count is exact in
// arbitrary precision: 2^n fits for any ordering length n.
func (m *Manager) Satcount(root Ref) (*big.Int, error) {
	if err := m.checkRef(root); err != nil {
		return nil, err
	}
	// variables above the root are free: weight by 2^level
	res := big.NewInt(0)
	res.SetBit(res, m.nodes[root].level, 1)
	memo := map[Ref]*big.Int{}
	return res.Mul(res, m.satcount(root, memo)), nil
}

func (m *Manager) satcount(r Ref, memo map[Ref]*big.Int) *big.Int {
	if r < 2 {
		return big.NewInt(int64(r))
	}
	if res, ok := memo[r]; ok {
		return res
	}
	n := m.nodes[r]
	res := big.NewInt(0)
	w := big.NewInt(0)
	w.SetBit(w, m.nodes[n.low].level-n.level-1, 1)
	res.Add(res, w.Mul(w, m.satcount(n.low, memo)))
	w = big.NewInt(0)
	w.SetBit(w, m.nodes[n.high].level-n.level-1, 1)
	res.Add(res, w.Mul(w, m.satcount(n.high, memo)))
	memo[r] = res
	return res
}

// Allsat calls f once per satisfying assignment class of root.  The
// slice passed to f has one entry per ordering position: 0, 1, or -1
// for don't care.  Don't-care entries stand for both values at once, so
// no assignment is reported twice.  A non-nil error from f stops the
// iteration and is returned.
//
// The slice is reused between calls; f must copy it to retain it.
func (m *Manager) Allsat(root Ref, f func(assign []int) error) error {
	if err := m.checkRef(root); err != nil {
		return err
	}
	prof := make([]int, len(m.ordering))
	for i := range prof {
		prof[i] = -1
	}
	return m.allsat(root, prof, f)
}

func (m *Manager) allsat(r Ref, prof []int, f func([]int) error) error {
	if r == True {
		return f(prof)
	}
	if r == False {
		return nil
	}
	n := m.nodes[r]
	if n.low != False {
		prof[n.level] = 0
		for v := m.nodes[n.low].level - 1; v > n.level; v-- {
			prof[v] = -1
		}
		if err := m.allsat(n.low, prof, f); err != nil {
			return err
		}
	}
	if n.high != False {
		prof[n.level] = 1
		for v := m.nodes[n.high].level - 1; v > n.level; v-- {
			prof[v] = -1
		}
		if err := m.allsat(n.high, prof, f); err != nil {
			return err
		}
	}
	return nil
}

// Anysat returns one satisfying assignment as a name to value map,
// leaving don't-care variables out.  The result is nil without error
// when root is False.  True yields a non-nil empty map.
func (m *Manager) Anysat(root Ref) (map[string]bool, error) {
	if err := m.checkRef(root); err != nil {
		return nil, err
	}
	if root == False {
		return nil, nil
	}
	assign := map[string]bool{}
	for r := root; r != True; {
		// a reduced non-terminal has at least one non-False child
		n := m.nodes[r]
		if n.low != False {
			assign[m.ordering[n.level]] = false
			r = n.low
		} else {
			assign[m.ordering[n.level]] = true
			r = n.high
		}
	}
	return assign, nil
}

// Support returns the set of variables the function denoted by root
// actually depends on.
func (m *Manager) Support(root Ref) (mapset.Set[string], error) {
	if err := m.checkRef(root); err != nil {
		return nil, err
	}
	set := mapset.NewSet[string]()
	seen := map[Ref]bool{}
	var walk func(Ref)
	walk = func(r Ref) {
		if r < 2 || seen[r] {
			return
		}
		seen[r] = true
		n := m.nodes[r]
		set.Add(m.ordering[n.level])
		walk(n.low)
		walk(n.high)
	}
	walk(root)
	return set, nil
}

// Restrict fixes one variable of the function denoted by root to a
// constant and returns the cofactor.
func (m *Manager) Restrict(root Ref, variable string, value bool) (Ref, error) {
	if err := m.checkRef(root); err != nil {
		return False, err
	}
	level, ok := m.levels[variable]
	if !ok {
		return False, fmt.Errorf("%w: %q not in ordering %v", ErrUnknownVariable, variable, m.ordering)
	}
	memo := map[Ref]Ref{}
	var rec func(Ref) Ref
	rec = func(r Ref) Ref {
		n := m.nodes[r]
		if n.level > level {
			// terminals included: the variable cannot occur below here
			return r
		}
		if n.level == level {
			if value {
				return n.high
			}
			return n.low
		}
		if res, ok := memo[r]; ok {
			return res
		}
		res := m.makenode(n.level, rec(n.low), rec(n.high))
		memo[r] = res
		return res
	}
	return rec(root), nil
}
