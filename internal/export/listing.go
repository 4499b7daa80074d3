package export

import (
	"bufio"
	"fmt"

	"github.com/retroenv/gbextract/internal/program"
	"github.com/retroenv/gbextract/internal/writer"
)

// ListingName returns the file name of a bank listing.
func ListingName(bank int) string {
	return fmt.Sprintf("bank%02X.asm", bank)
}

// Listing writes the disassembly of a bank to bankNN.asm.
func (e *Exporter) Listing(listing *program.Listing, options writer.Options) (string, error) {
	name, err := e.path(ListingName(listing.Bank))
	if err != nil {
		return "", err
	}

	err = create(name, func(w *bufio.Writer) error {
		return writer.New(w, options).Write(listing)
	})
	if err != nil {
		return "", err
	}
	return name, nil
}
