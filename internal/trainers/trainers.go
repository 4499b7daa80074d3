// Package trainers resolves the trainers found on maps to their class, their
// party and their picture.
package trainers

import (
	"context"
	"errors"
	"fmt"

	"github.com/retroenv/gbextract/internal/maps"
	"github.com/retroenv/gbextract/internal/pokedex"
	"github.com/retroenv/gbextract/internal/rom"
	"github.com/retroenv/gbextract/internal/sprite"
	"github.com/retroenv/gbextract/internal/text"
	"github.com/retroenv/retrogolib/log"
)

// PictureDim is the size of every trainer picture, 7x7 tiles.
const PictureDim = 0x77

var (
	parties = rom.Address{Bank: 0x0E, Addr: 0x5D3B} // party list pointer by class
	headers = rom.Address{Bank: 0x0E, Addr: 0x5914} // class headers
)

const (
	headerSize   = 5
	pictureBank  = 0x13
	pairedLevels = 0xFF // party of level and species pairs
	maxSetSize   = 64
)

// ErrUnterminated is returned for a party set without a terminator.
var ErrUnterminated = errors.New("unterminated party set")

// Member is a pokemon of a party.
type Member struct {
	Level byte   `json:"level"`
	RomID byte   `json:"romId"`
	DexID byte   `json:"dexId"`
	Name  string `json:"name"`
}

// Trainer is a trainer or a static encounter placed on a map.
type Trainer struct {
	maps.TrainerRef

	Name  string   `json:"name"`
	Party []Member `json:"party"`
}

// Class is a trainer class with its base prize money. The prize is the base
// money multiplied by the level of the last pokemon of the party.
type Class struct {
	ID        byte   `json:"id"`
	Name      string `json:"name"`
	BaseMoney int    `json:"baseMoney"`
	Picture   uint16 `json:"picture"`
}

// Resolve reads the party of a trainer reference. Statics resolve to a
// single pokemon.
func Resolve(img *rom.Image, ref maps.TrainerRef) (*Trainer, error) {
	t := &Trainer{TrainerRef: ref}

	if ref.Static {
		m, err := member(img, ref.Level, ref.Mon)
		if err != nil {
			return nil, err
		}
		t.Name = m.Name
		t.Party = []Member{m}
		return t, nil
	}

	var err error
	t.Name, err = text.Name(img, text.Trainers, ref.Class+1)
	if err != nil {
		return nil, err
	}
	t.Party, err = Party(img, ref.Class, ref.Set)
	if err != nil {
		return nil, fmt.Errorf("reading party %d of class %d: %w", ref.Set, ref.Class, err)
	}
	return t, nil
}

// Party reads a party set of a trainer class. Sets are one based and stored
// as zero terminated lists after each other.
func Party(img *rom.Image, class, set byte) ([]Member, error) {
	offset, err := img.Pointer(parties.Bank, parties.Offset()+2*int(class))
	if err != nil {
		return nil, err
	}
	r := rom.NewReader(img, offset)
	for i := 1; i < int(set); i++ {
		if err := skipSet(r); err != nil {
			return nil, err
		}
	}

	level := r.U8()
	var raw []byte
	for range maxSetSize {
		b := r.U8()
		if err := r.Err(); err != nil {
			return nil, err
		}
		if b == 0 {
			break
		}
		raw = append(raw, b)
	}

	var party []Member
	if level != pairedLevels {
		for _, mon := range raw {
			m, err := member(img, level, mon)
			if err != nil {
				return nil, err
			}
			party = append(party, m)
		}
		return party, nil
	}

	for i := 0; i+1 < len(raw); i += 2 {
		m, err := member(img, raw[i], raw[i+1])
		if err != nil {
			return nil, err
		}
		party = append(party, m)
	}
	return party, nil
}

func skipSet(r *rom.Reader) error {
	for range maxSetSize {
		b := r.U8()
		if err := r.Err(); err != nil {
			return err
		}
		if b == 0 {
			return nil
		}
	}
	return ErrUnterminated
}

func member(img *rom.Image, level, romID byte) (Member, error) {
	dexID, err := pokedex.DexID(img, romID)
	if err != nil {
		return Member{}, err
	}
	name, err := text.PokemonName(img, romID)
	if err != nil {
		return Member{}, err
	}
	return Member{
		Level: level,
		RomID: romID,
		DexID: dexID,
		Name:  name,
	}, nil
}

// LoadClass reads the name, the prize money and the picture address of a
// trainer class.
func LoadClass(img *rom.Image, id byte) (*Class, error) {
	r := rom.NewReader(img, headers.Offset()+headerSize*int(id))
	picture := r.U16()
	money := r.Bytes(3)
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("reading class %d header: %w", id, err)
	}

	name, err := text.Name(img, text.Trainers, id+1)
	if err != nil {
		return nil, err
	}
	return &Class{
		ID:        id,
		Name:      name,
		BaseMoney: text.BCD(money[1]), // only the middle byte is in use
		Picture:   picture,
	}, nil
}

// Sprite decodes the picture of a trainer class.
func (c *Class) Sprite(img *rom.Image) (*sprite.Frame, error) {
	offset := rom.Resolve(pictureBank, c.Picture)
	buf, err := sprite.Decode(img, offset)
	if err != nil {
		return nil, fmt.Errorf("decoding picture of class %d at 0x%X: %w", c.ID, offset, err)
	}
	return sprite.Assemble(buf, PictureDim)
}

// ClassCount estimates the number of trainer classes from the highest class
// that is used on a map.
func ClassCount(refs []maps.TrainerRef) int {
	count := 0
	for _, ref := range refs {
		if !ref.Static {
			count = max(count, int(ref.Class)+1)
		}
	}
	return count
}

// Result holds the resolved trainers and the classes that they use.
type Result struct {
	Trainers []*Trainer `json:"trainers"`
	Classes  []*Class   `json:"classes"`
}

// Load resolves all trainer references and loads the trainer classes. A
// trainer that can not be resolved is logged and skipped.
func Load(ctx context.Context, img *rom.Image, logger *log.Logger, refs []maps.TrainerRef) (*Result, error) {
	result := &Result{}
	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("loading trainers: %w", err)
		}

		t, err := Resolve(img, ref)
		if err != nil {
			logger.Warn("Skipping trainer",
				log.Hex("map", ref.MapID),
				log.Int("x", int(ref.X)),
				log.Int("y", int(ref.Y)),
				log.Err(err))
			continue
		}
		result.Trainers = append(result.Trainers, t)
	}

	for id := range ClassCount(refs) {
		c, err := LoadClass(img, byte(id))
		if err != nil {
			return nil, err
		}
		result.Classes = append(result.Classes, c)
	}
	return result, nil
}
