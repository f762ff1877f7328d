package robdd

import (
	"io"

	"github.com/signadot/robdd/bdd"
	"github.com/signadot/robdd/encode"
	"github.com/signadot/robdd/parse"
)

// Build constructs a manager over ordering and parses formula into it.
func Build(ordering []string, formula string, opts ...parse.ParseOption) (*bdd.Manager, bdd.Ref, error) {
	m, err := bdd.New(ordering)
	if err != nil {
		return nil, bdd.False, err
	}
	root, err := parse.Parse(m, formula, opts...)
	if err != nil {
		return nil, bdd.False, err
	}
	return m, root, nil
}

// Equivalent reports whether two formulas denote the same function over
// ordering.  Canonicity makes this a ref comparison.
func Equivalent(ordering []string, a, b string, opts ...parse.ParseOption) (bool, error) {
	m, x, err := Build(ordering, a, opts...)
	if err != nil {
		return false, err
	}
	y, err := parse.Parse(m, b, opts...)
	if err != nil {
		return false, err
	}
	return x == y, nil
}

// Export writes the diagram rooted at root to w.
func Export(m *bdd.Manager, root bdd.Ref, w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(m, root, w, opts...)
}
