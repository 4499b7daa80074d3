// Package maps loads the world maps from the ROM by following the map
// header pointers, connections and warps.
package maps

import (
	"sync"

	"github.com/retroenv/gbextract/internal/rom"
	"github.com/retroenv/retrogolib/log"
)

// Loader loads the map graph of a ROM once and caches it.
type Loader struct {
	img    *rom.Image
	logger *log.Logger
	layout Layout

	once          sync.Once
	graph         *Graph
	hidden        hiddenIndex
	probabilities [WildSlots]byte
}

// Option configures a Loader.
type Option func(*Loader)

// WithLayout sets the table layout, it defaults to RedBlue.
func WithLayout(layout Layout) Option {
	return func(l *Loader) {
		l.layout = layout
	}
}

// NewLoader returns a new map loader for the ROM.
func NewLoader(img *rom.Image, logger *log.Logger, options ...Option) *Loader {
	l := &Loader{
		img:    img,
		logger: logger,
		layout: RedBlue,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

// Image returns the ROM image of the loader.
func (l *Loader) Image() *rom.Image {
	return l.img
}

// Layout returns the table layout used by the loader.
func (l *Loader) Layout() Layout {
	return l.layout
}

// Graph returns the map graph, it is built on the first call.
func (l *Loader) Graph() *Graph {
	l.once.Do(func() {
		l.loadTables()
		l.graph = l.discover(startMap)
		l.logger.Debug("Map graph loaded",
			log.Int("maps", len(l.graph.Order)),
			log.Int("trainers", len(l.graph.Trainers)))
	})
	return l.graph
}

// loadTables reads the tables that are shared by all maps. The wild
// encounter and hidden object tables are optional.
func (l *Loader) loadTables() {
	probabilities, err := slotProbabilities(l.img, l.layout)
	if err != nil {
		l.logger.Debug("Wild encounter probabilities not available", log.Err(err))
	}
	l.probabilities = probabilities

	hidden, err := readHiddenIndex(l.img, l.layout)
	if err != nil {
		l.logger.Debug("Hidden object table not available", log.Err(err))
	}
	l.hidden = hidden
}

func (l *Loader) loadExtras(s *Submap) {
	wild, err := readWild(l.img, l.layout, s.ID, l.probabilities)
	if err != nil {
		l.logger.Debug("Wild encounters not available",
			log.Hex("map", s.ID),
			log.Err(err))
	}
	s.Wild = wild

	hidden, err := readHidden(l.img, l.logger, l.layout, l.hidden[s.ID])
	if err != nil {
		l.logger.Warn("Reading hidden objects failed",
			log.Hex("map", s.ID),
			log.Err(err))
	}
	s.Hidden = hidden
}
