package maps

import (
	"fmt"

	"github.com/retroenv/gbextract/internal/rom"
)

// WildSlots is the number of encounter slots of an area.
const WildSlots = 10

// WildSlot is a single encounter slot.
type WildSlot struct {
	Level       byte `json:"level"`
	Species     byte `json:"species"` // rom id
	Probability byte `json:"probability"`
}

// WildArea is the encounter table of grass or water tiles.
type WildArea struct {
	Rate  byte       `json:"rate"`
	Slots []WildSlot `json:"slots"`
}

// Wild contains the wild encounters of a map.
type Wild struct {
	Grass *WildArea `json:"grass,omitempty"`
	Water *WildArea `json:"water,omitempty"`
}

// slotProbabilities returns the probability of every slot out of 256,
// calculated from the cumulative table of (probability, slot*2) entries.
func slotProbabilities(img *rom.Image, layout Layout) ([WildSlots]byte, error) {
	var probabilities [WildSlots]byte
	r := rom.NewReader(img, layout.WildProbabilities.Offset())
	var previous byte
	for i := range probabilities {
		cumulative := r.U8()
		r.Skip(1)
		probabilities[i] = cumulative - previous
		previous = cumulative
	}
	if err := r.Err(); err != nil {
		return probabilities, fmt.Errorf("reading wild probabilities: %w", err)
	}
	return probabilities, nil
}

func readWild(img *rom.Image, layout Layout, id byte, probabilities [WildSlots]byte) (Wild, error) {
	table, err := img.Pointer(layout.Wild.Bank, layout.Wild.Add(2*int(id)).Offset())
	if err != nil {
		return Wild{}, fmt.Errorf("reading wild table pointer: %w", err)
	}

	r := rom.NewReader(img, table)
	var wild Wild
	wild.Grass = readWildArea(r, probabilities)
	wild.Water = readWildArea(r, probabilities)
	if err := r.Err(); err != nil {
		return Wild{}, fmt.Errorf("reading wild table: %w", err)
	}
	return wild, nil
}

// readWildArea reads the rate and, for a non zero rate, the 10 slots. A slot
// with level 0 ends the list.
func readWildArea(r *rom.Reader, probabilities [WildSlots]byte) *WildArea {
	rate := r.U8()
	if rate == 0 {
		return nil
	}

	area := &WildArea{Rate: rate}
	ended := false
	for i := range WildSlots {
		slot := WildSlot{
			Level:       r.U8(),
			Species:     r.U8(),
			Probability: probabilities[i],
		}
		if slot.Level == 0 {
			ended = true
		}
		if !ended {
			area.Slots = append(area.Slots, slot)
		}
	}
	return area
}
