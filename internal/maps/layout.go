package maps

import "github.com/retroenv/gbextract/internal/rom"

// Layout contains the locations of the map related tables.
type Layout struct {
	MapBanks          rom.Address // bank of every map header, indexed by map id
	MapPointers       rom.Address // in-bank address of every map header
	Tilesets          rom.Address
	EntityDecals      rom.Address
	Wild              rom.Address // pointer table of the wild encounter tables
	WildProbabilities rom.Address
	HiddenMaps        rom.Address // 0xFF terminated list of map ids
	HiddenPointers    rom.Address
	HiddenItemScript  rom.Address
	HiddenCoinScript  rom.Address
}

// RedBlue is the table layout of the english Red and Blue cartridges.
var RedBlue = Layout{
	MapBanks:          rom.Address{Bank: 0x03, Addr: 0x423D},
	MapPointers:       rom.Address{Bank: 0x00, Addr: 0x01AE},
	Tilesets:          rom.Address{Bank: 0x03, Addr: 0x47BE},
	EntityDecals:      rom.Address{Bank: 0x05, Addr: 0x7B27},
	Wild:              rom.Address{Bank: 0x03, Addr: 0x4EEB},
	WildProbabilities: rom.Address{Bank: 0x04, Addr: 0x7918},
	HiddenMaps:        rom.Address{Bank: 0x11, Addr: 0x6A40},
	HiddenPointers:    rom.Address{Bank: 0x11, Addr: 0x6A96},
	HiddenItemScript:  rom.Address{Bank: 0x1D, Addr: 0x6688},
	HiddenCoinScript:  rom.Address{Bank: 0x1D, Addr: 0x6799},
}

// MapAddress returns the absolute offset of the header of a map.
func (l Layout) MapAddress(img *rom.Image, id byte) (int, error) {
	bank, err := img.U8(l.MapBanks.Offset() + int(id))
	if err != nil {
		return 0, err
	}
	offset, err := img.Pointer(int(bank), l.MapPointers.Offset()+2*int(id))
	if err != nil {
		return 0, err
	}
	return offset, nil
}
