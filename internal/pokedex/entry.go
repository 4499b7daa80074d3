package pokedex

import (
	"context"
	"fmt"
	"math/bits"

	"github.com/retroenv/gbextract/internal/rom"
	"github.com/retroenv/gbextract/internal/text"
	"github.com/retroenv/retrogolib/log"
)

const (
	machineCount = 55 // 50 TMs and 5 HMs
	firstMachine = 201
)

// GrowthRate is the experience curve of a species.
type GrowthRate byte

// growth rates used by the game.
const (
	MediumFast GrowthRate = 0
	MediumSlow GrowthRate = 3
	Fast       GrowthRate = 4
	Slow       GrowthRate = 5
)

func (g GrowthRate) String() string {
	switch g {
	case MediumFast:
		return "Medium Fast"
	case MediumSlow:
		return "Medium Slow"
	case Fast:
		return "Fast"
	case Slow:
		return "Slow"
	default:
		return fmt.Sprintf("Unknown (%d)", byte(g))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (g GrowthRate) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// EvolutionKind is the trigger of an evolution.
type EvolutionKind byte

// evolution triggers.
const (
	ByLevel    EvolutionKind = 1
	ByStone    EvolutionKind = 2
	ByExchange EvolutionKind = 3
)

func (k EvolutionKind) String() string {
	switch k {
	case ByLevel:
		return "level"
	case ByStone:
		return "stone"
	case ByExchange:
		return "exchange"
	default:
		return fmt.Sprintf("EvolutionKind(%d)", byte(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k EvolutionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Evolution of a species into another one.
type Evolution struct {
	Kind  EvolutionKind `json:"kind"`
	Level byte          `json:"level,omitempty"`
	Stone string        `json:"stone,omitempty"`
	DexID byte          `json:"dexId"`
}

// Attack is a move that is learned at a level, level 0 are the initial
// moves.
type Attack struct {
	Level byte   `json:"level"`
	Name  string `json:"name"`
}

// Machine is a TM or HM that a species can learn.
type Machine struct {
	Item string `json:"item"`
	Move string `json:"move"`
}

// Entry is the complete Pokédex entry of a species.
type Entry struct {
	Header

	RomID       byte        `json:"romId"`
	Name        string      `json:"name"`
	Species     string      `json:"species"`
	Types       []string    `json:"typeNames"`
	Height      string      `json:"height"`
	Weight      string      `json:"weight"`
	Description string      `json:"description"`
	Growth      GrowthRate  `json:"growth"`
	Learnset    []Attack    `json:"learnset"`
	Evolutions  []Evolution `json:"evolutions,omitempty"`
	Learnable   []Machine   `json:"machines,omitempty"`
}

// Load reads the Pokédex entries of all species in Pokédex order. Missing
// optional data is logged and left empty.
func Load(ctx context.Context, img *rom.Image, logger *log.Logger) ([]*Entry, error) {
	entries := make([]*Entry, 0, Species)
	for dexID := 1; dexID <= Species; dexID++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("loading pokedex: %w", err)
		}

		e, err := LoadEntry(img, logger, byte(dexID))
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// LoadEntry reads the Pokédex entry of a species.
func LoadEntry(img *rom.Image, logger *log.Logger, dexID byte) (*Entry, error) {
	h, err := ReadHeader(img, dexID)
	if err != nil {
		return nil, err
	}
	romID, err := RomID(img, dexID)
	if err != nil {
		return nil, err
	}

	e := &Entry{
		Header: *h,
		RomID:  romID,
		Growth: GrowthRate(h.GrowthRate),
	}
	if e.Name, err = text.PokemonName(img, romID); err != nil {
		return nil, err
	}

	loaders := []struct {
		name string
		load func(*rom.Image, *Entry) error
	}{
		{"details", loadDetails},
		{"types", loadTypes},
		{"attacks", loadAttacks},
		{"events", loadEvents},
		{"machines", loadMachines},
	}
	for _, l := range loaders {
		if err := l.load(img, e); err != nil {
			logger.Warn("Incomplete pokedex entry",
				log.Int("dex", int(dexID)),
				log.String("part", l.name),
				log.Err(err))
		}
	}
	return e, nil
}

// loadDetails reads species name, height, weight and the description.
func loadDetails(img *rom.Image, e *Entry) error {
	offset, err := img.Pointer(details.Bank, details.Offset()+2*(int(e.RomID)-1))
	if err != nil {
		return err
	}
	r := rom.NewReader(img, offset)
	if e.Species, err = text.Read(r); err != nil {
		return err
	}

	feet := r.U8()
	inches := r.U8()
	pounds := r.U16()
	if err := r.Err(); err != nil {
		return fmt.Errorf("reading size: %w", err)
	}
	e.Height = fmt.Sprintf("%d'%02d\"", feet, inches)
	e.Weight = fmt.Sprintf("%d.%dlb", pounds/10, pounds%10)

	e.Description, err = text.Command(img, r)
	return err
}

func loadTypes(img *rom.Image, e *Entry) error {
	e.Types = nil
	for i, typ := range e.Header.Types {
		if i > 0 && typ == e.Header.Types[0] {
			break
		}
		offset, err := img.Pointer(typeNames.Bank, typeNames.Offset()+2*int(typ))
		if err != nil {
			return err
		}
		name, err := text.Read(rom.NewReader(img, offset))
		if err != nil {
			return err
		}
		e.Types = append(e.Types, name)
	}
	return nil
}

// loadAttacks reads the names of the initial moves.
func loadAttacks(img *rom.Image, e *Entry) error {
	for _, id := range e.Header.Attacks {
		if id == 0 {
			break
		}
		name, err := text.Name(img, text.Attacks, id)
		if err != nil {
			return err
		}
		e.Learnset = append(e.Learnset, Attack{Name: name})
	}
	return nil
}

// loadEvents reads the evolutions followed by the moves learned by level,
// both lists are zero terminated.
func loadEvents(img *rom.Image, e *Entry) error {
	offset, err := img.Pointer(events.Bank, events.Offset()+2*(int(e.RomID)-1))
	if err != nil {
		return err
	}
	r := rom.NewReader(img, offset)

	for {
		kind := EvolutionKind(r.U8())
		if kind == 0 {
			break
		}
		evo := Evolution{Kind: kind}
		switch kind {
		case ByLevel:
			evo.Level = r.U8()
		case ByStone:
			if evo.Stone, err = text.ItemName(img, r.U8()); err != nil {
				return err
			}
			r.Skip(1) // level, always 1
		case ByExchange:
			r.Skip(1) // level, always 1
		default:
			return fmt.Errorf("unknown evolution 0x%02X", byte(kind))
		}
		if evo.DexID, err = DexID(img, r.U8()); err != nil {
			return err
		}
		if err := r.Err(); err != nil {
			return fmt.Errorf("reading evolutions: %w", err)
		}
		e.Evolutions = append(e.Evolutions, evo)
	}

	for {
		level := r.U8()
		if level == 0 {
			break
		}
		name, err := text.Name(img, text.Attacks, r.U8())
		if err != nil {
			return err
		}
		e.Learnset = append(e.Learnset, Attack{Level: level, Name: name})
	}
	if err := r.Err(); err != nil {
		return fmt.Errorf("reading learnset: %w", err)
	}
	return nil
}

// loadMachines resolves the TM/HM bit field to item and move names.
func loadMachines(img *rom.Image, e *Entry) error {
	var mask uint64
	for i, b := range e.Header.Machines {
		mask |= uint64(b) << (8 * i)
	}

	for mask != 0 {
		id := bits.TrailingZeros64(mask)
		mask &= mask - 1
		if id >= machineCount {
			break
		}

		move, err := img.U8(machines.Offset() + id)
		if err != nil {
			return err
		}
		item, err := text.ItemName(img, byte(firstMachine+id))
		if err != nil {
			return err
		}
		name, err := text.Name(img, text.Attacks, move)
		if err != nil {
			return err
		}
		e.Learnable = append(e.Learnable, Machine{Item: item, Move: name})
	}
	return nil
}
