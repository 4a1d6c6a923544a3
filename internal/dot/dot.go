// Package dot renders module connectivity as Graphviz documents:
// ports and cell instances become nodes, shared signal bits become
// edges. The output is descriptive only; nothing here validates or
// rewrites the netlist.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/goccy/go-graphviz"

	"github.com/agentic-research/yosysnet/netlist"
)

// endpoint is one attachment of a node to a signal. An inout
// attachment both drives and reads.
type endpoint struct {
	node   string
	drives bool
	reads  bool
}

type edge struct {
	from, to string
	signals  []int64
}

// Graph returns a DOT digraph for one module. An edge runs from every
// node driving a signal to every node reading it, labeled with the
// shared signal ids. Constant bits and unconnected signals produce no
// edges.
func Graph(name string, mod *netlist.Module) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", name)
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [fontname=\"monospace\", fontsize=12];\n\n")

	signals := map[int64][]endpoint{}
	attach := func(node string, drives, reads bool, bits []netlist.Bit) {
		for _, b := range bits {
			if id, ok := b.SignalID(); ok {
				signals[id] = append(signals[id], endpoint{node: node, drives: drives, reads: reads})
			}
		}
	}

	for pair := mod.Ports.Oldest(); pair != nil; pair = pair.Next() {
		node := "port " + pair.Key
		fmt.Fprintf(&buf, "  %q [label=%q, shape=ellipse];\n", node, pair.Key)
		// An input port drives the module's internal signals, an
		// output port reads them, an inout port does both.
		dir := pair.Value.Direction
		attach(node, dir != netlist.Output, dir != netlist.Input, pair.Value.Bits)
	}
	for pair := mod.Cells.Oldest(); pair != nil; pair = pair.Next() {
		node := "cell " + pair.Key
		fmt.Fprintf(&buf, "  %q [label=%q, shape=box];\n", node, pair.Key+"\\n"+pair.Value.Type)
		for conn := pair.Value.Connections.Oldest(); conn != nil; conn = conn.Next() {
			// A connection with no declared direction is treated as a
			// read so undeclared sinks still show up.
			dir, ok := pair.Value.PortDirections.Get(conn.Key)
			attach(node, ok && dir != netlist.Input, !ok || dir != netlist.Output, conn.Value)
		}
	}
	buf.WriteByte('\n')

	ids := make([]int64, 0, len(signals))
	for id := range signals {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var edges []*edge
	index := map[string]*edge{}
	for _, id := range ids {
		for _, from := range signals[id] {
			if !from.drives {
				continue
			}
			for _, to := range signals[id] {
				if !to.reads || to.node == from.node {
					continue
				}
				key := from.node + "\x00" + to.node
				e, ok := index[key]
				if !ok {
					e = &edge{from: from.node, to: to.node}
					index[key] = e
					edges = append(edges, e)
				}
				e.signals = append(e.signals, id)
			}
		}
	}
	for _, e := range edges {
		label := ""
		for i, id := range e.signals {
			if i > 0 {
				label += ","
			}
			label += fmt.Sprintf("%d", id)
		}
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.from, e.to, label)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders DOT source to SVG in process via the embedded
// Graphviz runtime.
func RenderSVG(ctx context.Context, dotSrc string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dotSrc))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render SVG: %w", err)
	}
	return buf.Bytes(), nil
}
