// Package suite runs YAML-described batches of formulas.
//
// A suite file names formulas, their variable orderings and the export
// formats to write:
//
//	outdir: outputs
//	cases:
//	  - name: transitivity
//	    formula: "((A -> B) & (B -> C)) -> (A -> C)"
//	    vars: [A, B, C]
//	    formats: [text, dot]
//	    verify: true
//
// Run builds each case in its own manager, prints a report and writes
// one file per format to <outdir>/<name><suffix>.  Cases marked verify
// are cross-checked against the satcheck solver.
//
// # Usage
//
//	s, err := suite.Load("suite.yaml")
//	if err != nil {
//	    return err
//	}
//	if err := s.Run(os.Stdout); err != nil {
//	    return err
//	}
//
// # Related Packages
//
//   - github.com/signadot/robdd/encode - Export formats
//   - github.com/signadot/robdd/satcheck - Solver cross-checks
package suite
