package sigil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func countEdges(t Topology, match func(Edge) bool) int {
	n := 0
	for _, e := range t.Edges {
		if match(e) {
			n++
		}
	}
	return n
}

func isSpoke(from Ring) func(Edge) bool {
	return func(e Edge) bool {
		return (e.From.Ring == from && e.To.Ring == Center) || (e.To.Ring == from && e.From.Ring == Center)
	}
}

func within(r Ring) func(Edge) bool {
	return func(e Edge) bool { return e.From.Ring == r && e.To.Ring == r }
}

func TestTopologyCon(t *testing.T) {
	topo := Con.Topology()
	assert.Len(t, topo.Edges, 5)
	assert.Equal(t, 5, countEdges(topo, isSpoke(Five)))
	assert.Equal(t, []Ring{Five}, topo.Rings)
	assert.Zero(t, countEdges(topo, within(Five)), "no edges between five-ring slots")
}

func TestTopologyChaIsComplete(t *testing.T) {
	topo := Cha.Topology()
	pairs := map[[2]int]bool{}
	for _, e := range topo.Edges {
		if !within(Five)(e) {
			continue
		}
		a, b := e.From.Index, e.To.Index
		if a > b {
			a, b = b, a
		}
		pairs[[2]int{a, b}] = true
	}
	assert.Len(t, pairs, 10, "every pair of five-ring slots is joined")
	assert.Equal(t, 3, countEdges(topo, within(Three)))
}

func TestTopologiesAreDistinct(t *testing.T) {
	seen := map[string]Category{}
	for _, c := range Categories() {
		topo := c.Topology()
		key := ""
		for _, e := range topo.Edges {
			key += e.From.Ring.String() + string(rune('0'+e.From.Index)) + e.To.Ring.String() + string(rune('0'+e.To.Index)) + ";"
		}
		for _, r := range topo.Rings {
			key += "ring:" + r.String()
		}
		if prev, ok := seen[key]; ok {
			t.Errorf("%v and %v share a topology", prev, c)
		}
		seen[key] = c
	}
}

func TestTopologyEdgeCounts(t *testing.T) {
	tests := []struct {
		cat   Category
		edges int
		rings int
	}{
		{NoSave, 0, 2},
		{Attack, 6, 0},
		{Str, 8, 0},
		{Dex, 5, 0},
		{Con, 5, 1},
		{Int, 6, 1},
		{Wis, 5, 1},
		{Cha, 13, 0},
	}
	for _, tt := range tests {
		topo := tt.cat.Topology()
		assert.Len(t, topo.Edges, tt.edges, tt.cat.String())
		assert.Len(t, topo.Rings, tt.rings, tt.cat.String())
		for _, e := range topo.Edges {
			assert.NotEqual(t, e.From, e.To, "%v has a degenerate edge", tt.cat)
		}
	}
}
