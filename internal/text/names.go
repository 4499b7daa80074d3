package text

import (
	"errors"
	"fmt"

	"github.com/retroenv/gbextract/internal/rom"
)

// MaxLength limits the number of bytes read for a single string.
const MaxLength = 512

// PokemonNameLength is the size of a fixed length species name.
const PokemonNameLength = 10

const (
	namePointers  = 0x375D // bank 0 table of name list pointers
	pokemonNames  = 0x421E
	pokemonBank   = 0x07
	textCommand   = 0x17
	hmBase        = 250
	tmBase        = 200
	scriptCommand = 0x08
)

// ErrInvalidID is returned for a zero id in a one based list.
var ErrInvalidID = errors.New("invalid id")

// NameList selects one of the packed name lists.
type NameList int

// name lists referenced by the name pointer table.
const (
	Pokemons NameList = iota
	Attacks
	Items
	Trainers
)

var nameLists = map[NameList]struct {
	index int
	bank  int
}{
	Pokemons: {0, 0x07},
	Attacks:  {1, 0x2C},
	Items:    {3, 0x01},
	Trainers: {6, 0x0E},
}

func (l NameList) String() string {
	switch l {
	case Pokemons:
		return "pokemons"
	case Attacks:
		return "attacks"
	case Items:
		return "items"
	case Trainers:
		return "trainers"
	default:
		return fmt.Sprintf("list(%d)", int(l))
	}
}

// ListOffset returns the absolute offset of the first string of a name list.
func ListOffset(img *rom.Image, list NameList) (int, error) {
	entry, ok := nameLists[list]
	if !ok {
		return 0, fmt.Errorf("unsupported name list %s", list)
	}
	offset, err := img.Pointer(entry.bank, namePointers+2*entry.index)
	if err != nil {
		return 0, fmt.Errorf("reading %s name pointer: %w", list, err)
	}
	return offset, nil
}

// Read reads and decodes a string at the reader position. The reader is left
// after the terminator.
func Read(r *rom.Reader) (string, error) {
	var buf []byte
	for range MaxLength {
		c := r.U8()
		if err := r.Err(); err != nil {
			return "", fmt.Errorf("reading text: %w", err)
		}
		if IsTerminator(c) {
			break
		}
		buf = append(buf, c)
	}
	s, _ := Decode(buf)
	return s, nil
}

// Packed returns entry id of a list of 0x50 separated strings starting at
// the absolute offset. Ids are one based.
func Packed(img *rom.Image, offset int, id byte) (string, error) {
	if id == 0 {
		return "", ErrInvalidID
	}
	r := rom.NewReader(img, offset)
	for range int(id) - 1 {
		if err := skipString(r); err != nil {
			return "", err
		}
	}
	return Read(r)
}

func skipString(r *rom.Reader) error {
	for range MaxLength {
		c := r.U8()
		if err := r.Err(); err != nil {
			return fmt.Errorf("skipping text: %w", err)
		}
		if c == End {
			return nil
		}
	}
	return nil
}

// Name returns entry id of a packed name list.
func Name(img *rom.Image, list NameList, id byte) (string, error) {
	offset, err := ListOffset(img, list)
	if err != nil {
		return "", err
	}
	s, err := Packed(img, offset, id)
	if err != nil {
		return "", fmt.Errorf("reading %s name %d: %w", list, id, err)
	}
	return s, nil
}

// ItemName returns the name of an item. Machines are named by their number.
func ItemName(img *rom.Image, id byte) (string, error) {
	switch {
	case id > hmBase:
		return fmt.Sprintf("HM%02d", id-hmBase), nil
	case id > tmBase:
		return fmt.Sprintf("TM%02d", id-tmBase), nil
	default:
		return Name(img, Items, id)
	}
}

// PokemonName returns the fixed length name of a species by its rom id.
func PokemonName(img *rom.Image, romID byte) (string, error) {
	if romID == 0 {
		return "", ErrInvalidID
	}
	offset := rom.Resolve(pokemonBank, pokemonNames) + PokemonNameLength*(int(romID)-1)
	b, err := img.Slice(offset, PokemonNameLength)
	if err != nil {
		return "", fmt.Errorf("reading pokemon name %d: %w", romID, err)
	}
	return DecodeBytes(b), nil
}

// Command decodes a text command at the reader position. Command 0x17 points
// to a string in another bank, scripts are returned as a marker.
func Command(img *rom.Image, r *rom.Reader) (string, error) {
	cmd := r.U8()
	if err := r.Err(); err != nil {
		return "", fmt.Errorf("reading text command: %w", err)
	}

	switch cmd {
	case textCommand:
		addr := r.U16()
		bank := r.U8()
		if err := r.Err(); err != nil {
			return "", fmt.Errorf("reading text pointer: %w", err)
		}
		// skip the text start byte
		return Read(rom.NewReader(img, rom.Resolve(int(bank), addr)+1))
	case scriptCommand:
		return "<Script>", nil
	case 0xF5:
		return "<Script: Vending machine>", nil
	case 0xF6:
		return "<Script: Cable club>", nil
	case 0xF7:
		return "<Script: Prize vendor>", nil
	case 0xFE:
		return "<Script: Mart>", nil
	case 0xFF:
		return "<Script: Nurse>", nil
	default:
		return fmt.Sprintf("<Command %02X>", cmd), nil
	}
}
