package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/paretopath/core"
	"github.com/katalvlaran/paretopath/dijkstra"
	"github.com/katalvlaran/paretopath/point"
)

// ExampleDijkstra minimizes the second objective of a two-objective graph.
func ExampleDijkstra() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", point.Of(2, 7))
	_, _ = g.AddEdge("A", "C", point.Of(1, 1))
	_, _ = g.AddEdge("C", "B", point.Of(1, 1))

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.Objective(1), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[B]=%g via %s\n", dist["B"], prev["B"])
	// Output: dist[B]=2 via C
}
