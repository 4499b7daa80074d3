package maps

import (
	"fmt"

	"github.com/retroenv/gbextract/internal/rom"
)

// Submap is a single map as stored in the ROM, including its objects.
type Submap struct {
	ID            byte         `json:"id"`
	Offset        int          `json:"offset"` // absolute offset of the header
	Header        Header       `json:"header"`
	Connections   []Connection `json:"connections"`
	ObjectPointer uint16       `json:"objectPointer"`
	Border        byte         `json:"border"`
	Warps         []Warp       `json:"warps"`
	Signs         []Sign       `json:"signs"`
	Entities      []Entity     `json:"entities"`
	Tileset       Tileset      `json:"tileset"`
	Wild          Wild         `json:"wild"`
	Hidden        []Hidden     `json:"hidden,omitempty"`

	// Err is set if the map could only be partially parsed.
	Err error `json:"-"`
}

// Bank returns the bank containing the map header.
func (s *Submap) Bank() int {
	return rom.BankOf(s.Offset)
}

// BlocksOffset returns the absolute offset of the block id grid.
func (s *Submap) BlocksOffset() int {
	return rom.Resolve(s.Bank(), s.Header.MapPointer)
}

// Block returns the block id at the block position, 0 is returned for
// positions that are not contained in the ROM.
func (s *Submap) Block(img *rom.Image, x, y int) byte {
	b, err := img.U8(s.BlocksOffset() + y*int(s.Header.Width) + x)
	if err != nil {
		return 0
	}
	return b
}

// Trainers returns the trainers and static encounters of the map.
func (s *Submap) Trainers() []TrainerRef {
	var refs []TrainerRef
	for _, e := range s.Entities {
		if ref, ok := e.TrainerRef(s.ID); ok {
			refs = append(refs, ref)
		}
	}
	return refs
}

// load parses the map with the given id at the header offset. Parsing stops
// at the first failing section, the returned submap contains everything that
// was read until then.
func (l *Loader) load(id byte, offset int) *Submap {
	s := &Submap{
		ID:     id,
		Offset: offset,
	}

	r := rom.NewReader(l.img, offset)
	s.Header = readHeader(r)
	s.Connections = readConnections(r, s.Header.ConnectByte)
	s.ObjectPointer = r.U16()
	if err := r.Err(); err != nil {
		s.Err = fmt.Errorf("reading header: %w", err)
		return s
	}

	r = rom.NewReader(l.img, rom.Resolve(s.Bank(), s.ObjectPointer))
	s.readObjects(l.img, l.logger, r)
	if err := r.Err(); err != nil {
		s.Err = fmt.Errorf("reading object data: %w", err)
		return s
	}

	ts, err := readTileset(l.img, l.layout, s.Header.Tileset)
	s.Tileset = ts
	if err != nil {
		s.Err = err
		return s
	}

	l.loadExtras(s)
	return s
}
