// Package export writes the extracted data as PNG, JSON and listing files
// into an output directory.
package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

const (
	bufferSize = 1024 * 1024
	dirMode    = 0o755
	fileMode   = 0o644
)

// Exporter writes files below an output directory.
type Exporter struct {
	dir   string
	scale int
}

// New returns an exporter for the directory, it is created if missing.
// Sprite pictures are upscaled by scale.
func New(dir string, scale int) (*Exporter, error) {
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Exporter{
		dir:   dir,
		scale: max(scale, 1),
	}, nil
}

// Dir returns the output directory.
func (e *Exporter) Dir() string {
	return e.dir
}

// path returns the path of a file below the output directory and creates
// its parent directory.
func (e *Exporter) path(elem ...string) (string, error) {
	name := filepath.Join(append([]string{e.dir}, elem...)...)
	if err := os.MkdirAll(filepath.Dir(name), dirMode); err != nil {
		return "", fmt.Errorf("creating directory: %w", err)
	}
	return name, nil
}

// create opens a file for writing and passes a buffered writer to write.
func create(name string, write func(w *bufio.Writer) error) (err error) {
	f, err := os.OpenFile(name, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, fileMode)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing file %s: %w", name, cerr)
		}
	}()

	bo := bufio.NewWriterSize(f, bufferSize)
	if err := write(bo); err != nil {
		return fmt.Errorf("writing file %s: %w", name, err)
	}
	if err := bo.Flush(); err != nil {
		return fmt.Errorf("writing file %s: %w", name, err)
	}
	return nil
}

// writePNG encodes the image as PNG, upscaled by the scale factor using
// nearest neighbor sampling.
func writePNG(name string, img image.Image, scale int) error {
	if scale > 1 {
		b := img.Bounds()
		scaled := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, b, draw.Src, nil)
		img = scaled
	}

	return create(name, func(w *bufio.Writer) error {
		return png.Encode(w, img)
	})
}

func writeJSON(name string, v any) error {
	return create(name, func(w *bufio.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	})
}
