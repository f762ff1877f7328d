// Package parse parses Boolean formula text into BDD nodes.
//
// # Usage
//
//	m, err := bdd.New([]string{"a", "b", "c"})
//	if err != nil {
//	    return err
//	}
//	root, err := parse.Parse(m, "(a & b) -> ~c")
//	if err != nil {
//	    return err
//	}
//
//	// Reject junk characters instead of skipping them
//	root, err = parse.Parse(m, formula, parse.Strict())
//
// The grammar, loosest binding first: <->, ->, ^, |, &, ~, then
// parenthesized groups and variable names.
//
// # Related Packages
//
//   - github.com/signadot/robdd/token - Tokenization
//   - github.com/signadot/robdd/bdd - Diagram construction
//   - github.com/signadot/robdd/encode - Encode diagrams to text
package parse
