// Package app provides the main application helper for the extractor.
package app

import (
	"github.com/retroenv/gbextract/internal/detector"
	"github.com/retroenv/gbextract/internal/options"
	"github.com/retroenv/gbextract/internal/rom"
	"github.com/retroenv/retrogolib/log"
)

// PrintInfo prints the information about the input file and the cartridge.
func PrintInfo(logger *log.Logger, opts options.Program, game detector.Game, img *rom.Image) {
	if opts.Quiet {
		return
	}

	logger.Info("Processing Game Boy ROM",
		log.String("file", opts.Input),
		log.String("title", detector.Title(img)),
		log.Stringer("game", game),
		log.Int("banks", img.Banks()),
		log.String("output", opts.Output),
	)
}
