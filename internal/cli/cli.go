// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/gbextract/internal/options"
)

// ParseFlags parses command line flags and returns program options and the
// selected extractors.
func ParseFlags() (options.Program, options.Extractor, error) {
	return parse(os.Args)
}

func parse(args []string) (options.Program, options.Extractor, error) {
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(args[1:])
	rest := flags.Args()
	if err != nil || (len(rest) == 0 && opts.Batch == "" && opts.Input == "") {
		return opts, options.Extractor{}, &UsageError{flags: flags}
	}

	if err := validateArgs(rest); err != nil {
		return opts, options.Extractor{}, err
	}

	extractors, err := options.ParseExtractors(opts.Extractors)
	if err != nil {
		return opts, options.Extractor{}, err
	}

	if err := validateOptionCombinations(opts, extractors); err != nil {
		return opts, options.Extractor{}, err
	}

	if opts.Batch == "" && len(rest) > 0 {
		opts.Input = rest[0]
	}
	return opts, extractors, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage and the flag defaults.
func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: gbextract [options] <rom file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after the ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// validateOptionCombinations rejects options that can not be used together.
func validateOptionCombinations(opts options.Program, extractors options.Extractor) error {
	if opts.Verify && !extractors.Disasm {
		return fmt.Errorf("-verify requires the %s extractor", options.Disasm)
	}
	if opts.Bank < -1 {
		return fmt.Errorf("invalid bank %d", opts.Bank)
	}
	if opts.Scale < 1 {
		return fmt.Errorf("invalid scale %d, must be at least 1", opts.Scale)
	}
	if opts.Workers < 0 {
		return fmt.Errorf("invalid worker count %d", opts.Workers)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Output, "o", "", "output directory, <rom name>_extract if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask, for example *.gb")
	flags.StringVar(&opts.Extractors, "x", options.All, "comma separated extractors: disasm,maps,sprites,pokedex,trainers")
	flags.IntVar(&opts.Bank, "bank", -1, "bank to disassemble, -1 for all")
	flags.BoolVar(&opts.Verify, "verify", false, "verify the disassembly listings against the ROM")
	flags.IntVar(&opts.Workers, "workers", 0, "sprite decoding workers, number of CPUs if not set")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")

	flags.BoolVar(&opts.Labels, "labels", false, "draw map ids on composite maps")
	flags.IntVar(&opts.Scale, "scale", 1, "integer upscale factor for sprite PNGs")
	flags.BoolVar(&opts.NoReferences, "noxrefs", false, "do not output jump cross reference comments")
}
