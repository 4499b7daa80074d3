package fileprocessor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/gbextract/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestGenerateOutputDir(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"red.gb", "red_extract"},
		{filepath.Join("roms", "blue.gbc"), filepath.Join("roms", "blue_extract")},
		{"rom", "rom_extract"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateOutputDir(tt.input))
		})
	}
}

func TestGetFilesToProcess(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.gb", "b.gb", "c.txt"} {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}

	opts := &options.Program{}
	opts.Batch = filepath.Join(dir, "*.gb")
	files, err := GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Len(t, files, 2)

	opts = &options.Program{}
	opts.Input = "red.gb"
	files, err = GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Equal(t, []string{"red.gb"}, files)
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "red.gb")
	data := make([]byte, 0x8000)
	copy(data[0x0134:], "POKEMON RED")
	assert.NoError(t, os.WriteFile(input, data, 0o600))

	opts := options.Program{}
	opts.Input = input
	opts.Output = GenerateOutputDir(input)
	opts.Bank = -1
	opts.Scale = 1
	opts.Verify = true

	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, options.Extractor{Disasm: true})
	assert.NoError(t, err)

	for _, name := range []string{"bank00.asm", "bank01.asm"} {
		_, err := os.Stat(filepath.Join(opts.Output, name))
		assert.NoError(t, err)
	}
}

func TestProcessFileMissing(t *testing.T) {
	opts := options.Program{}
	opts.Input = filepath.Join(t.TempDir(), "missing.gb")
	opts.Output = t.TempDir()

	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, options.AllExtractors)
	assert.ErrorContains(t, err, "loading cartridge")
}
