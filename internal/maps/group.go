package maps

import (
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// Member is a map of a group together with its position in steps of 16
// pixels relative to the group root.
type Member struct {
	Submap *Submap
	X      int
	Y      int
}

// Group is a set of maps that are connected to each other and form a single
// picture, like the overworld.
type Group struct {
	Root    byte
	Members []Member // discovery order, the root first
}

type placement struct {
	id     byte
	offset int
	x, y   int
}

// Groups splits the discovered maps into connected groups. Every map header
// address is placed only once over all groups, roots are processed in
// ascending map id order.
func (l *Loader) Groups() []Group {
	g := l.Graph()
	loaded := set.New[int]()

	var groups []Group
	for _, id := range g.IDs() {
		s := g.Submap(id)
		if s == nil || loaded.Contains(s.Offset) {
			continue
		}
		group := l.group(g, s, loaded)
		if len(group.Members) > 0 {
			groups = append(groups, group)
		}
	}
	return groups
}

// group collects the maps reachable by connections from the root in depth
// first order.
func (l *Loader) group(g *Graph, root *Submap, loaded set.Set[int]) Group {
	group := Group{Root: root.ID}
	stack := []placement{{id: root.ID, offset: root.Offset}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if loaded.Contains(p.offset) {
			continue
		}
		loaded.Add(p.offset)

		s := g.Submap(p.id)
		if s == nil || s.Offset != p.offset {
			s = l.load(p.id, p.offset)
		}
		if s.Err != nil {
			l.logger.Debug("Skipping unparsable map in group",
				log.Hex("map", p.id),
				log.Err(s.Err))
			continue
		}
		group.Members = append(group.Members, Member{Submap: s, X: p.x, Y: p.y})

		for i := len(s.Connections) - 1; i >= 0; i-- {
			c := s.Connections[i]
			offset, err := l.layout.MapAddress(l.img, c.MapID)
			if err != nil {
				l.logger.Warn("Resolving connected map failed",
					log.Hex("map", s.ID),
					log.Hex("connection", c.MapID),
					log.Err(err))
				continue
			}
			x, y := c.Place(p.x, p.y, s.Header.Width, s.Header.Height)
			stack = append(stack, placement{id: c.MapID, offset: offset, x: x, y: y})
		}
	}
	return group
}
