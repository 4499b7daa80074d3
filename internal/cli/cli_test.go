package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/gbextract/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

//nolint:funlen // test functions can be long
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		extractors options.Extractor
		check      func(t *testing.T, opts options.Program)
	}{
		{
			name:       "defaults",
			args:       []string{"prog", "red.gb"},
			extractors: options.AllExtractors,
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.Equal(t, "red.gb", opts.Input)
				assert.Equal(t, -1, opts.Bank)
				assert.Equal(t, 1, opts.Scale)
				assert.Equal(t, 0, opts.Workers)
				assert.False(t, opts.Labels)
			},
		},
		{
			name:       "selected extractors",
			args:       []string{"prog", "-x", "maps,trainers", "-labels", "red.gb"},
			extractors: options.Extractor{Maps: true, Trainers: true},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.True(t, opts.Labels)
			},
		},
		{
			name:       "disassembly options",
			args:       []string{"prog", "-x", "disasm", "-bank", "3", "-verify", "-noxrefs", "-o", "out", "red.gb"},
			extractors: options.Extractor{Disasm: true},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.Equal(t, 3, opts.Bank)
				assert.True(t, opts.Verify)
				assert.True(t, opts.NoReferences)
				assert.Equal(t, "out", opts.Output)
			},
		},
		{
			name:       "sprite options",
			args:       []string{"prog", "-x", "sprites", "-scale", "4", "-workers", "2", "red.gb"},
			extractors: options.Extractor{Sprites: true},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.Equal(t, 4, opts.Scale)
				assert.Equal(t, 2, opts.Workers)
			},
		},
		{
			name:       "batch without file",
			args:       []string{"prog", "-batch", "*.gb"},
			extractors: options.AllExtractors,
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.Equal(t, "*.gb", opts.Batch)
				assert.Equal(t, "", opts.Input)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			opts, extractors, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.extractors, extractors)
			tt.check(t, opts)
		})
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		usage bool
	}{
		{name: "no file", args: []string{"prog"}, usage: true},
		{name: "flag after file", args: []string{"prog", "red.gb", "-q"}, usage: true},
		{name: "unknown extractor", args: []string{"prog", "-x", "music", "red.gb"}},
		{name: "verify without disasm", args: []string{"prog", "-x", "maps", "-verify", "red.gb"}},
		{name: "invalid scale", args: []string{"prog", "-scale", "0", "red.gb"}},
		{name: "invalid bank", args: []string{"prog", "-bank", "-2", "red.gb"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parse(tt.args)
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usage, errors.As(err, &usageErr))
		})
	}
}

func TestParseExtractors(t *testing.T) {
	tests := []struct {
		list     string
		expected options.Extractor
	}{
		{"", options.AllExtractors},
		{"all", options.AllExtractors},
		{"disasm", options.Extractor{Disasm: true}},
		{"Sprites, pokedex", options.Extractor{Sprites: true, Pokedex: true}},
		{"maps,all", options.AllExtractors},
	}

	for _, tt := range tests {
		t.Run(tt.list, func(t *testing.T) {
			e, err := options.ParseExtractors(tt.list)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, e)
		})
	}
}
