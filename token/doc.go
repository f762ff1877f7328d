// Package token tokenizes Boolean formula text.
//
// # Usage
//
//	toks, err := token.Tokenize("a & ~(b | c)")
//	if err != nil {
//	    return err
//	}
//
//	// Fail on junk instead of skipping it
//	toks, err = token.Tokenize("a $ b", token.Strict())
//
// Identifiers are maximal runs of letters, digits and underscores; the
// operators are ~ & | ^ -> <-> plus parentheses.
//
// # Related Packages
//
//   - github.com/signadot/robdd/parse - Formula parsing
//   - github.com/signadot/robdd/bdd - Diagram construction
package token
