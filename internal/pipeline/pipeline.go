// Package pipeline orchestrates the extraction workflow stages.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/retroenv/gbextract/internal/app"
	"github.com/retroenv/gbextract/internal/compositor"
	"github.com/retroenv/gbextract/internal/config"
	"github.com/retroenv/gbextract/internal/detector"
	"github.com/retroenv/gbextract/internal/disasm"
	"github.com/retroenv/gbextract/internal/export"
	"github.com/retroenv/gbextract/internal/loader"
	"github.com/retroenv/gbextract/internal/maps"
	"github.com/retroenv/gbextract/internal/options"
	"github.com/retroenv/gbextract/internal/pokedex"
	"github.com/retroenv/gbextract/internal/program"
	"github.com/retroenv/gbextract/internal/rom"
	"github.com/retroenv/gbextract/internal/sprite"
	"github.com/retroenv/gbextract/internal/taskqueue"
	"github.com/retroenv/gbextract/internal/trainers"
	"github.com/retroenv/gbextract/internal/verification"
	"github.com/retroenv/gbextract/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// species ids that have sprites.
const (
	firstSpecies = 1
	lastSpecies  = 0xFF
)

// Pipeline orchestrates the complete extraction workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
	layout   maps.Layout
}

// Result summarizes the written outputs.
type Result struct {
	Game     detector.Game
	Listings int
	Maps     int
	Sprites  int
	Pokedex  int
	Trainers int
}

// New creates a new extraction pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
		layout:   maps.RedBlue,
	}
}

// Execute loads the ROM file and runs the selected extractors.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, extractors options.Extractor) (*Result, error) {
	img, err := p.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading cartridge: %w", err)
	}
	return p.ExecuteWithImage(ctx, img, opts, extractors)
}

// ExecuteWithImage runs the extraction pipeline with a pre-loaded image.
// This is useful for testing and programmatic usage where the ROM is already in memory.
func (p *Pipeline) ExecuteWithImage(ctx context.Context, img *rom.Image, opts options.Program,
	extractors options.Extractor) (*Result, error) {

	result := &Result{
		Game: p.detector.Detect(img),
	}
	app.PrintInfo(p.logger, opts, result.Game, img)

	exp, err := export.New(opts.Output, config.Scale(opts.Scale))
	if err != nil {
		return nil, err
	}

	mapLoader := maps.NewLoader(img, p.logger, maps.WithLayout(p.layout))

	stages := []struct {
		name    string
		enabled bool
		run     func(ctx context.Context) error
	}{
		{options.Disasm, extractors.Disasm, func(ctx context.Context) error {
			return p.disassemble(ctx, img, opts, exp, result)
		}},
		{options.Maps, extractors.Maps, func(ctx context.Context) error {
			return p.renderMaps(ctx, img, opts, mapLoader, exp, result)
		}},
		{options.Sprites + "/" + options.Pokedex, extractors.Sprites || extractors.Pokedex, func(ctx context.Context) error {
			return p.species(ctx, img, opts, extractors, exp, result)
		}},
		{options.Trainers, extractors.Trainers, func(ctx context.Context) error {
			return p.trainers(ctx, img, mapLoader, exp, result)
		}},
	}

	for _, stage := range stages {
		if !stage.enabled {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("extracting %s: %w", stage.name, err)
		}
		if err := stage.run(ctx); err != nil {
			return nil, fmt.Errorf("extracting %s: %w", stage.name, err)
		}
	}
	return result, nil
}

// disassemble writes the listing of the selected bank or of all banks.
func (p *Pipeline) disassemble(ctx context.Context, img *rom.Image, opts options.Program,
	exp *export.Exporter, result *Result) error {

	dis := disasm.New(img, p.logger)

	var listings []*program.Listing
	if opts.Bank >= 0 {
		listing, err := dis.Bank(opts.Bank)
		if err != nil {
			return err
		}
		listings = []*program.Listing{listing}
	} else {
		var err error
		listings, err = dis.All()
		if err != nil {
			return err
		}
	}

	writerOptions := writer.Options{References: !opts.NoReferences}
	for _, listing := range listings {
		if err := ctx.Err(); err != nil {
			return err
		}

		name, err := exp.Listing(listing, writerOptions)
		if err != nil {
			return err
		}
		p.logger.Debug("Listing written", log.String("file", name))

		if opts.Verify {
			if err := verification.VerifyOutput(p.logger, img, listing); err != nil {
				return fmt.Errorf("verification failed: %w", err)
			}
		}
		result.Listings++
	}

	if opts.Verify {
		p.logger.Info("Verification successful", log.Int("banks", len(listings)))
	}
	return nil
}

func (p *Pipeline) renderMaps(ctx context.Context, img *rom.Image, opts options.Program,
	mapLoader *maps.Loader, exp *export.Exporter, result *Result) error {

	c := compositor.New(img, p.logger, compositor.Options{
		Labels: opts.Labels,
		Layout: p.layout,
	})
	rendered, err := c.Render(ctx, mapLoader)
	if err != nil {
		return err
	}
	if err := exp.Maps(rendered); err != nil {
		return err
	}

	result.Maps = len(rendered)
	p.logger.Info("Maps extracted",
		log.Int("maps", len(mapLoader.Graph().Order)),
		log.Int("composites", len(rendered)))
	return nil
}

// spriteJob is a single sprite decode, the frame is stored at the index of
// the job.
type spriteJob struct {
	romID byte
	side  sprite.Side
}

// spriteSet holds the decoded sprites indexed by rom id and side.
type spriteSet [lastSpecies + 1][2]*sprite.Frame

func (s *spriteSet) has(romID byte, side sprite.Side) bool {
	return s[romID][side] != nil
}

// decodeSprites decodes the front and back sprites of all species
// concurrently. Species without a sprite are skipped.
func (p *Pipeline) decodeSprites(ctx context.Context, img *rom.Image, workers int) (*spriteSet, error) {
	set := &spriteSet{}
	q, err := taskqueue.New(ctx, workers, workers, func(_ context.Context, job spriteJob) error {
		frame, err := pokedex.Sprite(img, job.romID, job.side)
		if err != nil {
			if !errors.Is(err, pokedex.ErrSkipped) {
				p.logger.Warn("Sprite not decodable",
					log.Hex("species", job.romID),
					log.Stringer("side", job.side),
					log.Err(err))
			}
			return nil
		}
		set[job.romID][job.side] = frame
		return nil
	})
	if err != nil {
		return nil, err
	}
	defer q.Close()

	for id := firstSpecies; id <= lastSpecies; id++ {
		for _, side := range []sprite.Side{sprite.Front, sprite.Back} {
			q.Submit(spriteJob{romID: byte(id), side: side})
		}
	}
	if err := q.Wait(); err != nil {
		return nil, err
	}
	return set, nil
}

// species writes the sprites and the Pokédex.
func (p *Pipeline) species(ctx context.Context, img *rom.Image, opts options.Program,
	extractors options.Extractor, exp *export.Exporter, result *Result) error {

	set := &spriteSet{}
	if extractors.Sprites {
		var err error
		set, err = p.decodeSprites(ctx, img, config.Workers(opts.Workers))
		if err != nil {
			return err
		}

		for id := firstSpecies; id <= lastSpecies; id++ {
			for _, side := range []sprite.Side{sprite.Front, sprite.Back} {
				frame := set[id][side]
				if frame == nil {
					continue
				}
				if err := exp.Sprite(byte(id), side, frame); err != nil {
					return err
				}
				result.Sprites++
			}
		}
		p.logger.Info("Sprites extracted", log.Int("sprites", result.Sprites))
	}

	if !extractors.Pokedex {
		return nil
	}
	entries, err := pokedex.Load(ctx, img, p.logger)
	if err != nil {
		return err
	}
	if err := exp.Pokedex(entries, set.has); err != nil {
		return err
	}
	result.Pokedex = len(entries)
	p.logger.Info("Pokedex extracted", log.Int("species", len(entries)))
	return nil
}

// trainers resolves the trainers found on the maps and writes the class
// pictures.
func (p *Pipeline) trainers(ctx context.Context, img *rom.Image, mapLoader *maps.Loader,
	exp *export.Exporter, result *Result) error {

	loaded, err := trainers.Load(ctx, img, p.logger, mapLoader.Graph().Trainers)
	if err != nil {
		return err
	}

	pictures := make(map[byte]*sprite.Frame, len(loaded.Classes))
	for _, class := range loaded.Classes {
		frame, err := class.Sprite(img)
		if err != nil {
			p.logger.Warn("Trainer picture not decodable",
				log.Int("class", int(class.ID)),
				log.Err(err))
			continue
		}
		pictures[class.ID] = frame
	}

	if err := exp.Trainers(loaded, pictures); err != nil {
		return err
	}
	result.Trainers = len(loaded.Trainers)
	p.logger.Info("Trainers extracted",
		log.Int("trainers", len(loaded.Trainers)),
		log.Int("classes", len(loaded.Classes)))
	return nil
}
