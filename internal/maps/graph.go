package maps

import (
	"slices"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// MaxMaps is the number of possible map ids.
const MaxMaps = 256

// map ids that are referenced by warps but are no real maps.
const (
	LastMap  = 0xED // elevator warp destination
	NoMap    = 0xFF
	startMap = 0
)

// Graph contains every map that is reachable from the start map.
type Graph struct {
	Maps     [MaxMaps]*Submap
	Order    []byte       // discovery order
	Trainers []TrainerRef // trainers in discovery order

	visited set.Set[byte]
}

// Submap returns the map with the given id or nil if it was not discovered.
func (g *Graph) Submap(id byte) *Submap {
	return g.Maps[id]
}

// Visited returns whether the map id was reached by the traversal.
func (g *Graph) Visited(id byte) bool {
	return g.visited.Contains(id)
}

// IDs returns the discovered map ids in ascending order.
func (g *Graph) IDs() []byte {
	ids := slices.Clone(g.Order)
	slices.Sort(ids)
	return ids
}

// Excluded returns whether a map id is never traversed.
func Excluded(id byte) bool {
	return id == LastMap || id == NoMap
}

// discover walks all maps reachable from the start map, following the
// connections first and then the warps of every map.
func (l *Loader) discover(start byte) *Graph {
	g := &Graph{
		visited: set.New[byte](),
	}

	stack := []byte{start}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if Excluded(id) || g.visited.Contains(id) {
			continue
		}
		g.visited.Add(id)

		offset, err := l.layout.MapAddress(l.img, id)
		if err != nil {
			l.logger.Warn("Resolving map address failed",
				log.Hex("map", id),
				log.Err(err))
			continue
		}

		s := l.load(id, offset)
		if s.Err != nil {
			l.logger.Warn("Parsing map failed",
				log.Hex("map", id),
				log.Err(s.Err))
		}
		g.Maps[id] = s
		g.Order = append(g.Order, id)
		g.Trainers = append(g.Trainers, s.Trainers()...)

		// push in reverse to visit in encoding order
		for i := len(s.Warps) - 1; i >= 0; i-- {
			stack = append(stack, s.Warps[i].ToMap)
		}
		for i := len(s.Connections) - 1; i >= 0; i-- {
			stack = append(stack, s.Connections[i].MapID)
		}
	}
	return g
}
