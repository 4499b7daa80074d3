// Package loader handles cartridge file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/gbextract/internal/rom"
)

// HeaderEnd is the end of the cartridge header, smaller files are rejected.
const HeaderEnd = 0x0150

// ErrTooSmall is returned for files that do not contain a cartridge header.
var ErrTooSmall = errors.New("file too small for a cartridge header")

// Loader handles loading cartridge files from disk.
type Loader struct{}

// New creates a new cartridge loader.
func New() *Loader {
	return &Loader{}
}

// Load reads a ROM file into an image.
func (l *Loader) Load(path string) (*rom.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	img, err := l.LoadReader(file)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return img, nil
}

// LoadReader reads a ROM image from a reader.
func (l *Loader) LoadReader(reader io.Reader) (*rom.Image, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading rom: %w", err)
	}
	if len(data) < HeaderEnd {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooSmall, len(data))
	}
	return rom.New(data), nil
}
