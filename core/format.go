// File: format.go
// Role: Text rendering of a graph.
// Format (one block per node, ascending):
//
//	<node> (
//	  <dst> | <weight>
//	)
//
// Edge lines follow traversal order. Values are rendered with %v.

package core

import (
	"bytes"
	"fmt"
	"io"
)

// WriteTo renders g to w and returns the number of bytes written.
//
// Complexity: O(V + E).
func (g *Graph[N, E]) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	g.render(&buf)

	return buf.WriteTo(w)
}

// String renders g in the same format as WriteTo.
func (g *Graph[N, E]) String() string {
	var buf bytes.Buffer
	g.render(&buf)

	return buf.String()
}

func (g *Graph[N, E]) render(buf *bytes.Buffer) {
	bi := 0
	buckets := g.edges.buckets
	for _, h := range g.nodes.order {
		fmt.Fprintf(buf, "%v (\n", g.nodes.value(h))
		// buckets of h are contiguous and ordered like nodes.order
		for ; bi < len(buckets) && buckets[bi].src == h; bi++ {
			dst := g.nodes.value(buckets[bi].dst)
			for _, wt := range buckets[bi].weights {
				fmt.Fprintf(buf, "  %v | %v\n", dst, wt)
			}
		}
		buf.WriteString(")\n")
	}
}
