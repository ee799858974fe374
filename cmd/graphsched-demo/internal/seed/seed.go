// Package seed parses the demo CLI's edge-list format and drives the
// acyclic-break pipeline over it.
package seed

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphsched/acyclic"
	"github.com/katalvlaran/graphsched/graph"
)

// Document is a parsed edge list: a graph plus the vertex names in
// first-seen order, for stable, readable output.
type Document struct {
	Graph  *graph.Graph
	Names  map[*graph.Vertex]string
	Order  []string
	byName map[string]*graph.Vertex
}

// Parse reads "from,to,weight,cutable" lines from r. weight defaults to
// 1 and cutable defaults to true when omitted. Blank lines and lines
// starting with "#" are skipped; a header line ("from,to,...") is
// tolerated and skipped.
func Parse(r io.Reader) (*Document, error) {
	doc := &Document{
		Graph:  graph.New(),
		Names:  make(map[*graph.Vertex]string),
		byName: make(map[string]*graph.Vertex),
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		if strings.EqualFold(fields[0], "from") {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("seed: malformed line %q", line)
		}

		weight := int64(1)
		if len(fields) > 2 && fields[2] != "" {
			w, err := strconv.ParseInt(fields[2], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("seed: bad weight in %q: %w", line, err)
			}
			weight = w
		}

		cutable := true
		if len(fields) > 3 && fields[3] != "" {
			c, err := strconv.ParseBool(fields[3])
			if err != nil {
				return nil, fmt.Errorf("seed: bad cutable flag in %q: %w", line, err)
			}
			cutable = c
		}

		from := doc.vertex(fields[0])
		to := doc.vertex(fields[1])
		e := doc.Graph.NewEdge(from, to, weight)
		doc.Graph.SetCutable(e, cutable)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}

	return doc, nil
}

func (doc *Document) vertex(name string) *graph.Vertex {
	if v, ok := doc.byName[name]; ok {
		return v
	}
	v := doc.Graph.NewVertex()
	doc.byName[name] = v
	doc.Names[v] = name
	doc.Order = append(doc.Order, name)

	return v
}

// Run executes the acyclic-break pipeline over doc's graph.
func Run(doc *Document) (*acyclic.Stats, error) {
	return acyclic.Break(doc.Graph, nil, nil)
}

// Report writes a human-readable summary of result to w.
func Report(w io.Writer, doc *Document, result *acyclic.Stats) {
	fmt.Fprintf(w, "vertices: %d, cut edges: %d\n", len(doc.Order), result.CutEdges)
	fmt.Fprintln(w, "ranks (break graph):")
	for _, name := range doc.Order {
		v := doc.byName[name]
		if result.BreakGraph.ToBreak.Has(v) {
			bv := result.BreakGraph.ToBreak.Get(v)
			fmt.Fprintf(w, "  %s: rank=%d\n", name, result.Rank.Get(bv))
		}
	}
	if result.Loopy() {
		fmt.Fprintln(w, "warning: residual cycle detected after placement")
	}
}
