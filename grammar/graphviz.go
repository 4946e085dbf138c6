package grammar

import (
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
)

// symbol dependency edge, from a left hand side to a symbol of one of its
// right hand sides
type depEdge struct {
	from, to string
}

// ToGraphViz exports the symbol dependency graph of a grammar to the Graphviz
// Dot format. Every non-terminal is connected to the symbols of its right hand
// sides. The start symbol is highlighted, terminals are drawn as boxes and
// undeclared symbols are drawn in red.
func ToGraphViz(g *Grammar, w io.Writer) error {
	edges := arraylist.New()
	seen := make(map[depEdge]struct{})
	g.EachProduction(func(A string, rhs RHS) {
		for _, sym := range rhs {
			e := depEdge{from: A, to: sym}
			if _, ok := seen[e]; !ok {
				seen[e] = exists
				edges.Add(e)
			}
		}
	})
	var b strings.Builder
	b.WriteString(`digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	g.Symbols().Each(func(sym string) {
		b.WriteString(fmt.Sprintf("%s [fillcolor=%s shape=%s label=\"%s\"]\n",
			nodeID(sym), nodecolor(g, sym), nodeshape(g, sym), forGraphviz(sym)))
	})
	it := edges.Iterator()
	for it.Next() {
		e := it.Value().(depEdge)
		b.WriteString(fmt.Sprintf("%s -> %s\n", nodeID(e.from), nodeID(e.to)))
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func nodeID(sym string) string {
	return fmt.Sprintf("%q", sym)
}

func nodecolor(g *Grammar, sym string) string {
	switch {
	case sym == g.Start():
		return "lightgray"
	case !g.IsDeclared(sym):
		return "lightpink"
	}
	return "white"
}

func nodeshape(g *Grammar, sym string) string {
	if g.IsTerminal(sym) {
		return "box"
	}
	return "Mrecord"
}

// forGraphviz escapes characters which have a special meaning in record labels.
func forGraphviz(sym string) string {
	r := strings.NewReplacer(`"`, `\"`, "{", `\{`, "}", `\}`, "|", `\|`, "<", `\<`, ">", `\>`)
	return r.Replace(sym)
}
