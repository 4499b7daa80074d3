// Package options contains the program options.
package options

import (
	"fmt"
	"strings"
)

// Positional contains positional arguments.
type Positional struct {
	File string `arg:"positional" usage:"ROM file to extract"`
}

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input ROM file"`
	Output string `flag:"o" usage:"output directory (default: <rom name>_extract)"`
	Batch  string `flag:"batch" usage:"batch process files matching pattern (e.g. *.gb)"`
}

// Flags contains behavior options.
type Flags struct {
	Extractors string `flag:"x" usage:"comma separated extractors: disasm,maps,sprites,pokedex,trainers" default:"all"`
	Bank       int    `flag:"bank" usage:"bank to disassemble, -1 for all" default:"-1"`
	Verify     bool   `flag:"verify" usage:"verify disassembly listings against the ROM"`
	Workers    int    `flag:"workers" usage:"sprite decoding workers (default: number of CPUs)"`
	Debug      bool   `flag:"debug" usage:"enable debug logging"`
	Quiet      bool   `flag:"q" usage:"quiet mode"`
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	Labels       bool `flag:"labels" usage:"draw map ids on composite maps"`
	Scale        int  `flag:"scale" usage:"integer upscale factor for sprite PNGs" default:"1"`
	NoReferences bool `flag:"noxrefs" usage:"omit jump cross reference comments in listings"`
}

// Program options of the extractor.
type Program struct {
	Parameters
	Flags
	OutputFlags
}

// extractor names.
const (
	Disasm   = "disasm"
	Maps     = "maps"
	Sprites  = "sprites"
	Pokedex  = "pokedex"
	Trainers = "trainers"
	All      = "all"
)

// Extractor selects the extraction stages to run.
type Extractor struct {
	Disasm   bool
	Maps     bool
	Sprites  bool
	Pokedex  bool
	Trainers bool
}

// AllExtractors enables every stage.
var AllExtractors = Extractor{
	Disasm:   true,
	Maps:     true,
	Sprites:  true,
	Pokedex:  true,
	Trainers: true,
}

// ParseExtractors parses a comma separated list of extractor names.
func ParseExtractors(list string) (Extractor, error) {
	var e Extractor
	for name := range strings.SplitSeq(list, ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "":
		case All:
			return AllExtractors, nil
		case Disasm:
			e.Disasm = true
		case Maps:
			e.Maps = true
		case Sprites:
			e.Sprites = true
		case Pokedex:
			e.Pokedex = true
		case Trainers:
			e.Trainers = true
		default:
			return Extractor{}, fmt.Errorf("unsupported extractor '%s'. Valid options: %s",
				name, strings.Join([]string{Disasm, Maps, Sprites, Pokedex, Trainers, All}, ", "))
		}
	}
	if e == (Extractor{}) {
		return AllExtractors, nil
	}
	return e, nil
}
