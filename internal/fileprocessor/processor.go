// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/retroenv/gbextract/internal/options"
	"github.com/retroenv/gbextract/internal/pipeline"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete file processing workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, extractors options.Extractor) error {
	p := pipeline.New(logger)
	result, err := p.Execute(ctx, opts, extractors)
	if err != nil {
		return err
	}

	logger.Info("Extraction finished",
		log.String("output", opts.Output),
		log.Int("listings", result.Listings),
		log.Int("maps", result.Maps),
		log.Int("sprites", result.Sprites),
		log.Int("pokedex", result.Pokedex),
		log.Int("trainers", result.Trainers))
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputDir generates the output directory name for a given input file
func GenerateOutputDir(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + "_extract"
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("gbextract", log.String("version", buildinfo.Version(version, commit, date)))
}
