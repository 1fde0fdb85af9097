package sipfsm

import "github.com/enetx/g"

// ToDOT generates a DOT language string representation of the tracker for visualization.
// The current state is highlighted.
func (t *Tracker) ToDOT() g.String {
	b := g.NewBuilder()

	b.WriteString("digraph Tracker {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=circle, style=filled, fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	b.WriteString("  __start [shape=point, style=invis];\n")
	b.WriteString(g.Format("  __start -> \"{}\" [label=\" initial\"];\n\n", Tracking.Label()))

	for state := range States().Iter() {
		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\"{}\"", state.Label()))

		if state == t.current {
			attrs.Push("fillcolor=\"#90ee90\"", "shape=doublecircle")
		}

		b.WriteString(g.Format("  \"{}\" [{}];\n", state.Label(), attrs.Join(", ")))
	}

	b.WriteByte('\n')

	for from := range States().Iter() {
		for tr := range transitions[from].Iter() {
			b.WriteString(g.Format("  \"{}\" -> \"{}\" [label=\" {} \"];\n", from.Label(), tr.to.Label(), tr.event))
		}
	}

	b.WriteString("\n  subgraph cluster_legend {\n")
	b.WriteString("    label = \"Legend\";\n")
	b.WriteString("    style = dashed;\n")
	b.WriteString(`    key [label=<
      <table border="0" cellpadding="4" cellspacing="0" cellborder="0">
        <tr><td align="right">●</td><td>State</td></tr>
        <tr><td align="right"><font color="green">◎</font></td><td>Current state</td></tr>
      </table>
    >, shape=none];`)

	b.WriteString("  }\n")
	b.WriteString("}\n")

	return b.String()
}
