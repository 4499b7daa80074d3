// Package detector handles game detection from the cartridge header.
package detector

import (
	"strings"

	"github.com/retroenv/gbextract/internal/rom"
	"github.com/retroenv/retrogolib/log"
)

// title location in the cartridge header.
const (
	titleOffset = 0x0134
	titleLength = 16
)

// Game is a supported cartridge.
type Game string

// detected games.
const (
	Red     Game = "red"
	Blue    Game = "blue"
	Unknown Game = "unknown"
)

func (g Game) String() string {
	return string(g)
}

var titles = map[string]Game{
	"POKEMON RED":  Red,
	"POKEMON BLUE": Blue,
}

// Detector handles game detection from the cartridge title.
type Detector struct {
	logger *log.Logger
}

// New creates a new game detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the game from the cartridge title. Unknown titles are
// reported with a warning, extraction continues with the Red/Blue layout.
func (d *Detector) Detect(img *rom.Image) Game {
	title := Title(img)
	game, ok := titles[title]
	if !ok {
		d.logger.Warn("Unknown cartridge title, assuming Red/Blue layout",
			log.String("title", title))
		return Unknown
	}

	d.logger.Debug("Detected game",
		log.Stringer("game", game),
		log.String("title", title))
	return game
}

// Title returns the cartridge title without padding.
func Title(img *rom.Image) string {
	b, err := img.Slice(titleOffset, titleLength)
	if err != nil {
		return ""
	}
	if i := strings.IndexByte(string(b), 0); i >= 0 {
		b = b[:i]
	}
	return strings.TrimSpace(string(b))
}
