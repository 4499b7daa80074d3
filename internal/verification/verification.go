// Package verification verifies that disassembly listings recreate the input.
package verification

import (
	"errors"
	"fmt"

	"github.com/retroenv/gbextract/internal/program"
	"github.com/retroenv/gbextract/internal/rom"
	"github.com/retroenv/retrogolib/log"
)

var errMismatch = errors.New("listing does not match rom")

// VerifyOutput verifies that the raw bytes of all listing lines recreate the
// exact content of the listed bank.
func VerifyOutput(logger *log.Logger, img *rom.Image, listing *program.Listing) error {
	expected, err := img.Bank(listing.Bank)
	if err != nil {
		return fmt.Errorf("reading bank %d: %w", listing.Bank, err)
	}

	output := make([]byte, 0, listing.Size())
	for _, line := range listing.Lines {
		output = append(output, line.Raw...)
	}

	if err := checkBufferEqual(logger, expected, output); err != nil {
		return fmt.Errorf("bank %d mismatch: %w", listing.Bank, err)
	}
	return nil
}

func checkBufferEqual(logger *log.Logger, input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("%w: mismatched lengths, %d != %d", errMismatch, len(input), len(output))
	}

	var diffs uint64
	first := -1
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if first < 0 {
			first = i
		}
		if diffs < 10 {
			logger.Debug("Offset mismatch",
				log.Hex("offset", i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d offset mismatches, first at 0x%04X expected 0x%02X got 0x%02X",
		errMismatch, diffs, first, input[first], output[first])
}
