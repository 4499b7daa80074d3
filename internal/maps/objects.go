package maps

import (
	"github.com/retroenv/gbextract/internal/rom"
	"github.com/retroenv/gbextract/internal/text"
	"github.com/retroenv/retrogolib/log"
)

const (
	entityOffset   = 4 // entity coordinates are stored with this offset
	trainerFlag    = 1 << 6
	itemFlag       = 1 << 7
	trainerClassID = 0xC9 // first trainer class in the extra byte
)

// Warp is a map transition point.
type Warp struct {
	Y       byte `json:"y"`
	X       byte `json:"x"`
	ToPoint byte `json:"toPoint"`
	ToMap   byte `json:"toMap"`
}

// Sign is a readable sign.
type Sign struct {
	Y      byte   `json:"y"`
	X      byte   `json:"x"`
	TextID byte   `json:"textId"`
	Text   string `json:"text,omitempty"`
}

// EntityKind classifies an entity by its text id flags.
type EntityKind uint8

// entity kinds.
const (
	Person EntityKind = iota
	Trainer
	Item
)

func (k EntityKind) String() string {
	switch k {
	case Trainer:
		return "trainer"
	case Item:
		return "item"
	default:
		return "person"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k EntityKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Entity is a person, trainer or item placed on a map.
type Entity struct {
	Picture     byte       `json:"picture"`
	Y           byte       `json:"y"`
	X           byte       `json:"x"`
	Movement    byte       `json:"movement"`
	Orientation byte       `json:"orientation"`
	TextID      byte       `json:"textId"`
	Kind        EntityKind `json:"kind"`
	Extra1      byte       `json:"extra1,omitempty"` // trainer class, static species or item id
	Extra2      byte       `json:"extra2,omitempty"` // party set or static level
	ItemName    string     `json:"itemName,omitempty"`
}

// TrainerRef references a trainer or a static encounter found on a map.
type TrainerRef struct {
	MapID  byte `json:"mapId"`
	X      byte `json:"x"`
	Y      byte `json:"y"`
	Static bool `json:"static"`
	Class  byte `json:"class,omitempty"` // trainer class, for trainers
	Set    byte `json:"set,omitempty"`
	Mon    byte `json:"mon,omitempty"` // rom species id, for statics
	Level  byte `json:"level,omitempty"`
}

// TrainerRef returns the trainer reference of a trainer entity.
func (e Entity) TrainerRef(mapID byte) (TrainerRef, bool) {
	if e.Kind != Trainer {
		return TrainerRef{}, false
	}
	ref := TrainerRef{
		MapID: mapID,
		X:     e.X,
		Y:     e.Y,
	}
	if e.Extra1 >= trainerClassID {
		ref.Class = e.Extra1 - trainerClassID
		ref.Set = e.Extra2
	} else {
		ref.Static = true
		ref.Mon = e.Extra1
		ref.Level = e.Extra2
	}
	return ref, true
}

// readObjects reads the object data following the border tile. Sign texts
// are resolved through the text pointer table of the map.
func (s *Submap) readObjects(img *rom.Image, logger *log.Logger, r *rom.Reader) {
	s.Border = r.U8()

	count := int(r.U8())
	for range count {
		s.Warps = append(s.Warps, Warp{
			Y:       r.U8(),
			X:       r.U8(),
			ToPoint: r.U8(),
			ToMap:   r.U8(),
		})
	}

	count = int(r.U8())
	for range count {
		sign := Sign{
			Y:      r.U8(),
			X:      r.U8(),
			TextID: r.U8(),
		}
		if r.Err() == nil {
			sign.Text = signText(img, rom.BankOf(r.Offset()), s.Header.TextPointer, sign.TextID)
		}
		s.Signs = append(s.Signs, sign)
	}

	count = int(r.U8())
	for range count {
		e := Entity{
			Picture:     r.U8(),
			Y:           r.U8() - entityOffset,
			X:           r.U8() - entityOffset,
			Movement:    r.U8(),
			Orientation: r.U8(),
			TextID:      r.U8(),
		}
		switch {
		case e.TextID&trainerFlag != 0:
			e.Kind = Trainer
			e.Extra1 = r.U8()
			e.Extra2 = r.U8()
		case e.TextID&itemFlag != 0:
			e.Kind = Item
			e.Extra1 = r.U8()
			if e.Extra1 != 0 {
				name, err := text.ItemName(img, e.Extra1)
				if err != nil {
					logger.Debug("Item name not available",
						log.Hex("map", s.ID),
						log.Hex("item", e.Extra1),
						log.Err(err))
				}
				e.ItemName = name
			}
		}
		s.Entities = append(s.Entities, e)
	}
}

// signText returns the text of a sign, an empty string is returned if the
// text entry is not a plain text command.
func signText(img *rom.Image, bank int, textPointers uint16, textID byte) string {
	base := bank * rom.BankSize
	entry := base + (int(textPointers)+2*(int(textID)-1))%rom.BankSize
	ptr, err := img.U16(entry)
	if err != nil {
		return ""
	}

	textPointer := int(ptr)
	if ptr >= rom.BankSize {
		textPointer = base + int(ptr)%rom.BankSize
	}

	r := rom.NewReader(img, textPointer)
	if r.U8() != textCommand {
		return ""
	}
	addr := r.U16()
	textBank := r.U8()
	if r.Err() != nil {
		return ""
	}

	// skip the text start byte
	s, err := text.Read(rom.NewReader(img, rom.Resolve(int(textBank), addr)+1))
	if err != nil {
		return ""
	}
	return s
}

const textCommand = 0x17
