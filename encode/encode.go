package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/robdd/bdd"
)

type EncState struct {
	format   Format
	allNodes bool

	Color func(ColorAttr, string) string
}

// Encode writes the diagram rooted at root to w.  The default is the
// text listing over the whole table; EncodeFormat(DotFormat) switches to
// Graphviz DOT, AllNodes(false) limits the listing to reachable nodes.
// Colors apply to the text listing only.
func Encode(m *bdd.Manager, root bdd.Ref, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		allNodes: true,
	}
	for _, opt := range opts {
		opt(es)
	}
	if _, err := m.At(root); err != nil {
		return err
	}
	switch es.format {
	case TextFormat:
		return encodeText(m, root, w, es)
	case DotFormat:
		return encodeDot(m, root, w)
	default:
		return fmt.Errorf("%w: %d", ErrBadFormat, int(es.format))
	}
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func (es *EncState) color(a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(a, s)
}

func encodeText(m *bdd.Manager, root bdd.Ref, w io.Writer, es *EncState) error {
	banner := strings.Repeat("=", 50)
	for _, ln := range []string{banner, "ROBDD Output", banner, ""} {
		if err := writeString(w, es.color(HeaderColor, ln)+"\n"); err != nil {
			return err
		}
	}

	refs, err := m.Reachable(root)
	if err != nil {
		return err
	}
	ordering := fmt.Sprintf("%v", m.Ordering())
	lines := []string{
		fmt.Sprintf("Variable ordering: %s", es.color(VarColor, ordering)),
		fmt.Sprintf("Root node index: %s", es.color(RefColor, fmt.Sprintf("%d", root))),
	}
	if es.allNodes {
		lines = append(lines, fmt.Sprintf("Total nodes: %d", m.NodeCount()))
	} else {
		lines = append(lines, fmt.Sprintf("Reachable nodes: %d", len(refs)))
	}
	lines = append(lines, "")
	for _, ln := range lines {
		if err := writeString(w, ln+"\n"); err != nil {
			return err
		}
	}

	if m.IsTrue(root) {
		if err := writeString(w, es.color(ResultColor, "Result: TAUTOLOGY (always TRUE)")+"\n\n"); err != nil {
			return err
		}
	} else if m.IsFalse(root) {
		if err := writeString(w, es.color(ResultColor, "Result: CONTRADICTION (always FALSE)")+"\n\n"); err != nil {
			return err
		}
	}

	if err := writeString(w, "Node listing:\n"+strings.Repeat("-", 40)+"\n"); err != nil {
		return err
	}
	if es.allNodes {
		refs = make([]bdd.Ref, 0, m.NodeCount())
		for i := 0; i < m.NodeCount(); i++ {
			refs = append(refs, bdd.Ref(i))
		}
	}
	for _, r := range refs {
		n, err := m.At(r)
		if err != nil {
			return err
		}
		if err := writeNodeListing(w, n, es); err != nil {
			return err
		}
	}
	return nil
}

func writeNodeListing(w io.Writer, n bdd.Node, es *EncState) error {
	idx := es.color(RefColor, fmt.Sprintf("[%d]", n.Ref))
	if n.Terminal {
		val := "0 (FALSE)"
		attr := FalseColor
		if n.Value {
			val = "1 (TRUE)"
			attr = TrueColor
		}
		return writeString(w, fmt.Sprintf("  %s Terminal: %s\n", idx, es.color(attr, val)))
	}
	if err := writeString(w, fmt.Sprintf("  %s Variable: %s\n", idx, es.color(VarColor, n.Var))); err != nil {
		return err
	}
	low := es.color(EdgeColor, fmt.Sprintf("        Low (0) -> %d", n.Low))
	if err := writeString(w, low+"\n"); err != nil {
		return err
	}
	high := es.color(EdgeColor, fmt.Sprintf("        High (1) -> %d", n.High))
	return writeString(w, high+"\n")
}

// encodeDot emits Graphviz DOT: terminals as filled boxes, decision
// nodes as circles, dashed red low edges and solid blue high edges.
// Nodes appear in first-visit order of a low-first walk from the root,
// so output is deterministic.
func encodeDot(m *bdd.Manager, root bdd.Ref, w io.Writer) error {
	for _, ln := range []string{
		"digraph BDD {",
		"    rankdir=TB;",
		"    node [shape=circle];",
		"",
		"    // Terminal nodes",
		`    0 [label="0", shape=box, style=filled, fillcolor="#ffcccc"];`,
		`    1 [label="1", shape=box, style=filled, fillcolor="#ccffcc"];`,
		"",
		"    // Decision nodes and edges",
	} {
		if err := writeString(w, ln+"\n"); err != nil {
			return err
		}
	}

	visited := map[bdd.Ref]bool{}
	var draw func(r bdd.Ref) error
	draw = func(r bdd.Ref) error {
		if visited[r] {
			return nil
		}
		visited[r] = true
		n, err := m.At(r)
		if err != nil {
			return err
		}
		if n.Terminal {
			return nil
		}
		lines := []string{
			fmt.Sprintf("    %d [label=%q];", n.Ref, n.Var),
			fmt.Sprintf(`    %d -> %d [style=dashed, color=red, label="0"];`, n.Ref, n.Low),
			fmt.Sprintf(`    %d -> %d [style=solid, color=blue, label="1"];`, n.Ref, n.High),
		}
		for _, ln := range lines {
			if err := writeString(w, ln+"\n"); err != nil {
				return err
			}
		}
		if err := draw(n.Low); err != nil {
			return err
		}
		return draw(n.High)
	}
	if err := draw(root); err != nil {
		return err
	}
	return writeString(w, "}\n")
}
