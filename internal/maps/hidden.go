package maps

import (
	"fmt"

	"github.com/retroenv/gbextract/internal/rom"
	"github.com/retroenv/gbextract/internal/text"
	"github.com/retroenv/retrogolib/log"
)

const (
	listEnd         = 0xFF
	maxHiddenMaps   = 0xFF
	maxHiddenPerMap = 0x40
)

// HiddenKind classifies a hidden object by the script that handles it.
type HiddenKind uint8

// hidden object kinds.
const (
	HiddenOther HiddenKind = iota
	HiddenItem
	HiddenCoins
)

func (k HiddenKind) String() string {
	switch k {
	case HiddenItem:
		return "item"
	case HiddenCoins:
		return "coins"
	default:
		return "other"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k HiddenKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Hidden is a hidden object of a map, it is only found by interacting with
// its position.
type Hidden struct {
	Y       byte       `json:"y"`
	X       byte       `json:"x"`
	ID      byte       `json:"id"` // item id, coin count or text id
	Bank    byte       `json:"bank"`
	Script  uint16     `json:"script"`
	Kind    HiddenKind `json:"kind"`
	Content string     `json:"content,omitempty"`
}

// hiddenIndex maps a map id to the offsets of its hidden object lists.
type hiddenIndex map[byte][]int

func readHiddenIndex(img *rom.Image, layout Layout) (hiddenIndex, error) {
	index := hiddenIndex{}
	r := rom.NewReader(img, layout.HiddenMaps.Offset())
	for i := range maxHiddenMaps {
		id := r.U8()
		if err := r.Err(); err != nil {
			return nil, fmt.Errorf("reading hidden object map list: %w", err)
		}
		if id == listEnd {
			break
		}

		offset, err := img.Pointer(layout.HiddenPointers.Bank, layout.HiddenPointers.Add(2*i).Offset())
		if err != nil {
			return nil, fmt.Errorf("reading hidden object pointer %d: %w", i, err)
		}
		index[id] = append(index[id], offset)
	}
	return index, nil
}

// readHidden reads the hidden object lists of a map, every list ends with a
// 0xFF y coordinate.
func readHidden(img *rom.Image, logger *log.Logger, layout Layout, offsets []int) ([]Hidden, error) {
	var hidden []Hidden
	for _, offset := range offsets {
		r := rom.NewReader(img, offset)
		for range maxHiddenPerMap {
			h := Hidden{Y: r.U8()}
			if h.Y == listEnd {
				break
			}
			h.X = r.U8()
			h.ID = r.U8()
			h.Bank = r.U8()
			h.Script = r.U16()
			if err := r.Err(); err != nil {
				return hidden, fmt.Errorf("reading hidden object: %w", err)
			}

			script := rom.Address{Bank: int(h.Bank), Addr: h.Script}
			switch script {
			case layout.HiddenItemScript:
				h.Kind = HiddenItem
				name, err := text.ItemName(img, h.ID)
				if err != nil {
					logger.Debug("Hidden item name not available",
						log.Hex("item", h.ID),
						log.Err(err))
				}
				h.Content = name
			case layout.HiddenCoinScript:
				h.Kind = HiddenCoins
				h.Content = fmt.Sprintf("%d coins", h.ID)
			}
			hidden = append(hidden, h)
		}
	}
	return hidden, nil
}
