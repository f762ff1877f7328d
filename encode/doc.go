// Package encode renders BDD node tables to text.
//
// # Usage
//
//	// Text listing of the table under root
//	err := encode.Encode(m, root, os.Stdout)
//
//	// Graphviz DOT instead
//	err = encode.Encode(m, root, f, encode.EncodeFormat(encode.DotFormat))
//
//	// Colored listing for terminals
//	err = encode.Encode(m, root, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// Output is deterministic for a given table and root, so listings can
// be compared byte for byte.
//
// # Related Packages
//
//   - github.com/signadot/robdd/bdd - Diagram construction
//   - github.com/signadot/robdd/parse - Parse formula text
package encode
