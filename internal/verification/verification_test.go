package verification

import (
	"errors"
	"testing"

	"github.com/retroenv/gbextract/internal/disasm"
	"github.com/retroenv/gbextract/internal/rom"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestVerifyOutput(t *testing.T) {
	data := make([]byte, 2*rom.BankSize)
	for i := range data {
		data[i] = byte(i * 7)
	}
	img := rom.New(data)
	logger := log.NewTestLogger(t)

	listings, err := disasm.New(img, logger).All()
	assert.NoError(t, err)
	for _, listing := range listings {
		assert.NoError(t, VerifyOutput(logger, img, listing))
	}

	original := listings[1].Lines[0].Raw
	listings[1].Lines[0].Raw = append([]byte{0xff}, original[1:]...)
	err = VerifyOutput(logger, img, listings[1])
	assert.True(t, errors.Is(err, errMismatch))
	assert.ErrorContains(t, err, "1 offset mismatches, first at 0x0000 expected 0x00 got 0xFF")

	listings[1].Lines = listings[1].Lines[1:]
	assert.ErrorContains(t, VerifyOutput(logger, img, listings[1]), "mismatched lengths")
}
