package detector

import (
	"testing"

	"github.com/retroenv/gbextract/internal/rom"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestDetect(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name     string
		title    string
		wantGame Game
	}{
		{
			name:     "red",
			title:    "POKEMON RED",
			wantGame: Red,
		},
		{
			name:     "blue",
			title:    "POKEMON BLUE",
			wantGame: Blue,
		},
		{
			name:     "other title",
			title:    "TETRIS",
			wantGame: Unknown,
		},
		{
			name:     "empty title",
			title:    "",
			wantGame: Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]byte, 0x8000)
			copy(data[titleOffset:], tt.title)

			got := d.Detect(rom.New(data))
			assert.Equal(t, tt.wantGame, got)
		})
	}
}

func TestTitle(t *testing.T) {
	data := make([]byte, 0x150)
	copy(data[titleOffset:], "POKEMON RED\x00\x00\x00\x00\x80")
	assert.Equal(t, "POKEMON RED", Title(rom.New(data)))

	assert.Equal(t, "", Title(rom.New(make([]byte, 0x100))))
}
