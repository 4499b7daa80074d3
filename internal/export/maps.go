package export

import (
	"cmp"
	"fmt"
	"path"
	"slices"

	"github.com/retroenv/gbextract/internal/compositor"
	"github.com/retroenv/gbextract/internal/maps"
)

// MapMember is a map of a composite map with its placement in steps.
type MapMember struct {
	*maps.Submap

	X int `json:"x"`
	Y int `json:"y"`
}

// MapDocument describes a composite map in maps.json.
type MapDocument struct {
	ID      byte                `json:"id"`
	Width   int                 `json:"width"`  // in steps
	Height  int                 `json:"height"` // in steps
	Image   string              `json:"image"`
	Members []MapMember         `json:"members"`
	Objects []compositor.Object `json:"objects"`
}

// MapImageName returns the relative path of the picture of a composite map.
func MapImageName(id byte) string {
	return path.Join("maps", fmt.Sprintf("map-%02X.png", id))
}

// NewMapDocument returns the JSON description of a composite map. Objects
// are sorted by their position.
func NewMapDocument(m *compositor.Map) MapDocument {
	doc := MapDocument{
		ID:      m.ID,
		Width:   m.Width,
		Height:  m.Height,
		Image:   MapImageName(m.ID),
		Members: make([]MapMember, 0, len(m.Members)),
		Objects: make([]compositor.Object, 0, len(m.Objects)),
	}
	for _, member := range m.Members {
		doc.Members = append(doc.Members, MapMember{
			Submap: member.Submap,
			X:      member.X,
			Y:      member.Y,
		})
	}
	for _, obj := range m.Objects {
		doc.Objects = append(doc.Objects, obj)
	}
	slices.SortFunc(doc.Objects, func(a, b compositor.Object) int {
		return cmp.Or(cmp.Compare(a.Y, b.Y), cmp.Compare(a.X, b.X))
	})
	return doc
}

// Maps writes a picture per composite map and maps.json.
func (e *Exporter) Maps(list []*compositor.Map) error {
	docs := make([]MapDocument, 0, len(list))
	for _, m := range list {
		doc := NewMapDocument(m)
		name, err := e.path(doc.Image)
		if err != nil {
			return err
		}
		if err := writePNG(name, m.Image, 1); err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	name, err := e.path("maps.json")
	if err != nil {
		return err
	}
	return writeJSON(name, docs)
}
