package pokedex

import (
	"fmt"

	"github.com/retroenv/gbextract/internal/rom"
	"github.com/retroenv/gbextract/internal/sprite"
)

// BackDim is the size of every back sprite, 4x4 tiles.
const BackDim = 0x44

// special is a species whose sprite is not referenced by a species header.
type special struct {
	addr uint16
	dim  byte
}

var specials = map[byte]special{
	0xB6: {addr: 0x79E8, dim: 0x66}, // fossil Kabutops
	0xB7: {addr: 0x6536, dim: 0x77}, // fossil Aerodactyl
	0xB8: {addr: 0x66B5, dim: 0x66}, // ghost
}

// ids whose sprite data crashes the decoder.
var skipped = map[byte]struct{}{
	193: {}, 196: {}, 199: {}, 202: {}, 210: {},
	213: {}, 216: {}, 219: {}, 253: {},
}

// Skipped returns whether a species id has no decodable sprite.
func Skipped(romID byte) bool {
	_, ok := skipped[romID]
	return ok
}

// Bank returns the bank that holds the sprites of a species.
func Bank(romID byte) int {
	switch {
	case romID == mewRomID:
		return 0x01
	case romID == 0xB6:
		return 0x0B
	case romID < 0x1F:
		return 0x09
	case romID < 0x4A:
		return 0x0A
	case romID < 0x74:
		return 0x0B
	case romID < 0x99:
		return 0x0C
	default:
		return 0x0D
	}
}

// Sprite decodes the front or back sprite of a species.
func Sprite(img *rom.Image, romID byte, side sprite.Side) (*sprite.Frame, error) {
	if romID == 0 {
		return nil, ErrInvalidID
	}
	if Skipped(romID) {
		return nil, fmt.Errorf("%w: 0x%02X", ErrSkipped, romID)
	}

	addr, dim, err := spriteLocation(img, romID, side)
	if err != nil {
		return nil, err
	}

	offset := rom.Resolve(Bank(romID), addr)
	buf, err := sprite.Decode(img, offset)
	if err != nil {
		return nil, fmt.Errorf("decoding %s sprite of 0x%02X at 0x%X: %w", side, romID, offset, err)
	}
	frame, err := sprite.Assemble(buf, dim)
	if err != nil {
		return nil, fmt.Errorf("assembling %s sprite of 0x%02X: %w", side, romID, err)
	}
	return frame, nil
}

// spriteLocation returns the in-bank address and the dimensions of a sprite.
func spriteLocation(img *rom.Image, romID byte, side sprite.Side) (uint16, byte, error) {
	if s, ok := specials[romID]; ok {
		if side == sprite.Back {
			return 0, 0, fmt.Errorf("%w: no back sprite for 0x%02X", ErrSkipped, romID)
		}
		return s.addr, s.dim, nil
	}

	offset := mewHeader.Offset()
	if romID != mewRomID {
		dexID, err := DexID(img, romID)
		if err != nil {
			return 0, 0, err
		}
		offset = headerOffset(dexID)
	}

	h, err := readHeader(img, offset)
	if err != nil {
		return 0, 0, err
	}
	if side == sprite.Back {
		return h.Back, BackDim, nil
	}
	return h.Front, h.FrontDim, nil
}
