// Package pokedex reads the species data of Pokémon Red/Blue: the Pokédex
// order, the species headers with base stats and the species sprites.
package pokedex

import (
	"errors"
	"fmt"

	"github.com/retroenv/gbextract/internal/rom"
)

// Species is the number of species in the Pokédex.
const Species = 151

// HeaderSize is the size of a species header.
const HeaderSize = 0x1C

// locations of the species tables.
var (
	orderTable = rom.Address{Bank: 0x10, Addr: 0x5024} // dex id by rom id - 1
	headers    = rom.Address{Bank: 0x0E, Addr: 0x43DE} // dex ids 1-150
	mewHeader  = rom.Address{Bank: 0x01, Addr: 0x425B}
	typeNames  = rom.Address{Bank: 0x09, Addr: 0x7DAE}
	details    = rom.Address{Bank: 0x10, Addr: 0x447E}
	events     = rom.Address{Bank: 0x0E, Addr: 0x705C} // evolutions and learnset
	machines   = rom.Address{Bank: 0x04, Addr: 0x7773} // move id by machine
)

const (
	mewDexID = 151
	mewRomID = 0x15
	maxRomID = 0xFE
)

// errors returned by the Pokédex functions.
var (
	ErrInvalidID = errors.New("invalid species id")
	ErrNotFound  = errors.New("species not found")
	ErrSkipped   = errors.New("species has no sprite")
)

// Header is the species header with base stats and sprite pointers.
type Header struct {
	DexID          byte    `json:"dexId"`
	HP             byte    `json:"hp"`
	Attack         byte    `json:"attack"`
	Defense        byte    `json:"defense"`
	Speed          byte    `json:"speed"`
	Special        byte    `json:"special"`
	Types          [2]byte `json:"types"`
	CaptureRate    byte    `json:"captureRate"`
	BaseExperience byte    `json:"baseExperience"`
	FrontDim       byte    `json:"frontDim"`
	Front          uint16  `json:"front"`
	Back           uint16  `json:"back"`
	Attacks        [4]byte `json:"attacks"`
	GrowthRate     byte    `json:"growthRate"`
	Machines       [8]byte `json:"machines"` // TM/HM bit field
}

// DexID returns the Pokédex number of a species. Glitch species have
// number 0.
func DexID(img *rom.Image, romID byte) (byte, error) {
	if romID == 0 {
		return 0, ErrInvalidID
	}
	id, err := img.U8(orderTable.Offset() + int(romID) - 1)
	if err != nil {
		return 0, fmt.Errorf("reading dex id of 0x%02X: %w", romID, err)
	}
	return id, nil
}

// RomID returns the internal species id for a Pokédex number by searching
// the order table the same way the game does.
func RomID(img *rom.Image, dexID byte) (byte, error) {
	if dexID == 0 {
		return 0, ErrInvalidID
	}
	r := rom.NewReader(img, orderTable.Offset())
	for romID := 1; romID <= maxRomID; romID++ {
		id := r.U8()
		if err := r.Err(); err != nil {
			return 0, fmt.Errorf("searching dex id %d: %w", dexID, err)
		}
		if id == dexID {
			return byte(romID), nil
		}
	}
	return 0, fmt.Errorf("%w: dex id %d", ErrNotFound, dexID)
}

// headerOffset returns the offset of the species header of a Pokédex number.
// Mew is stored outside of the header table. Number 0 results in the bytes
// in front of the table, like in the game.
func headerOffset(dexID byte) int {
	if dexID == mewDexID {
		return mewHeader.Offset()
	}
	return headers.Offset() + (int(dexID)-1)*HeaderSize
}

// ReadHeader reads the species header of a Pokédex number.
func ReadHeader(img *rom.Image, dexID byte) (*Header, error) {
	if dexID == 0 || dexID > Species {
		return nil, fmt.Errorf("%w: dex id %d", ErrInvalidID, dexID)
	}
	return readHeader(img, headerOffset(dexID))
}

func readHeader(img *rom.Image, offset int) (*Header, error) {
	r := rom.NewReader(img, offset)
	h := &Header{
		DexID:   r.U8(),
		HP:      r.U8(),
		Attack:  r.U8(),
		Defense: r.U8(),
		Speed:   r.U8(),
		Special: r.U8(),
	}
	copy(h.Types[:], r.Bytes(2))
	h.CaptureRate = r.U8()
	h.BaseExperience = r.U8()
	h.FrontDim = r.U8()
	h.Front = r.U16()
	h.Back = r.U16()
	copy(h.Attacks[:], r.Bytes(4))
	h.GrowthRate = r.U8()
	copy(h.Machines[:], r.Bytes(8))

	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("reading species header at 0x%X: %w", offset, err)
	}
	return h, nil
}
