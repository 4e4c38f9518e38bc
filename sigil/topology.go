package sigil

// Node is a connective endpoint: the sigil center or a slot of one ring.
type Node struct {
	Ring  Ring
	Index int
}

// Edge is a straight connective between two nodes.
type Edge struct {
	From, To Node
}

// Topology is the connective pattern of a category: straight edges plus
// full circles drawn at ring radii.
type Topology struct {
	Edges []Edge
	Rings []Ring
}

var center = Node{Ring: Center}

func t3(i int) Node { return Node{Ring: Three, Index: i} }
func t5(i int) Node { return Node{Ring: Five, Index: i} }

// Five-ring indices: 0 DURATION, 1 TARGET, 2 SCHOOL, 3 DAMAGE, 4 RANGE.
// Three-ring indices: 0 LEVEL, 1 C/R, 2 CASTINGTIME.

var (
	triangle = []Edge{
		{t3(0), t3(1)}, {t3(1), t3(2)}, {t3(2), t3(0)},
	}
	pentagon = []Edge{
		{t5(0), t5(1)}, {t5(1), t5(2)}, {t5(2), t5(3)}, {t5(3), t5(4)}, {t5(4), t5(0)},
	}
	pentagram = []Edge{
		{t5(0), t5(2)}, {t5(2), t5(4)}, {t5(4), t5(1)}, {t5(1), t5(3)}, {t5(3), t5(0)},
	}
)

// Topology returns the connective pattern of c.
func (c Category) Topology() Topology {
	switch c {
	case NoSave:
		return Topology{Rings: []Ring{Three, Five}}
	case Attack:
		return Topology{Edges: concat(triangle, []Edge{
			{t3(0), center}, {t3(1), center}, {t3(2), center},
		})}
	case Str:
		return Topology{Edges: concat(pentagon, triangle)}
	case Dex:
		return Topology{Edges: concat(pentagram)}
	case Con:
		return Topology{
			Edges: []Edge{
				{t5(0), center}, {t5(1), center}, {t5(2), center}, {t5(3), center}, {t5(4), center},
			},
			Rings: []Ring{Five},
		}
	case Int:
		return Topology{
			Edges: []Edge{
				{t3(0), t5(4)}, {t3(0), t5(0)},
				{t3(1), t5(1)}, {t3(1), t5(2)},
				{t3(2), t5(2)}, {t3(2), t5(3)},
			},
			Rings: []Ring{Three},
		}
	case Wis:
		return Topology{Edges: concat(pentagon), Rings: []Ring{Three}}
	case Cha:
		return Topology{Edges: concat(pentagon, pentagram, triangle)}
	}
	return Topology{}
}

func concat(parts ...[]Edge) []Edge {
	var out []Edge
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
