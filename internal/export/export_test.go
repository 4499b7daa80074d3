package export

import (
	"encoding/json"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/gbextract/internal/compositor"
	"github.com/retroenv/gbextract/internal/maps"
	"github.com/retroenv/gbextract/internal/pokedex"
	"github.com/retroenv/gbextract/internal/program"
	"github.com/retroenv/gbextract/internal/sprite"
	"github.com/retroenv/gbextract/internal/tile"
	"github.com/retroenv/gbextract/internal/trainers"
	"github.com/retroenv/gbextract/internal/writer"
	"github.com/retroenv/retrogolib/assert"
)

func decodePNG(t *testing.T, name string) image.Image {
	t.Helper()
	f, err := os.Open(name)
	assert.NoError(t, err)
	defer func() { _ = f.Close() }()

	img, err := png.Decode(f)
	assert.NoError(t, err)
	return img
}

func TestSpriteScale(t *testing.T) {
	tests := []struct {
		name  string
		scale int
	}{
		{"original size", 1},
		{"zero scale", 0},
		{"upscaled", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(t.TempDir(), tt.scale)
			assert.NoError(t, err)

			frame := &sprite.Frame{}
			frame.Data[0] = 0x80
			assert.NoError(t, e.Sprite(7, sprite.Back, frame))

			img := decodePNG(t, filepath.Join(e.Dir(), "sprites", "007-back.png"))
			size := sprite.FramePixels * max(tt.scale, 1)
			assert.Equal(t, size, img.Bounds().Dx())
			assert.Equal(t, size, img.Bounds().Dy())

			r, g, b, _ := img.At(0, 0).RGBA()
			er, eg, eb, _ := tile.Default[2].RGBA()
			assert.Equal(t, []uint32{er, eg, eb}, []uint32{r, g, b})
		})
	}
}

func TestListing(t *testing.T) {
	e, err := New(t.TempDir(), 1)
	assert.NoError(t, err)

	listing := program.New(0x12)
	listing.Lines = append(listing.Lines, &program.Line{Address: 0x4000, Raw: []byte{0x00}, Code: "nop"})

	name, err := e.Listing(listing, writer.Options{})
	assert.NoError(t, err)
	assert.Equal(t, "bank12.asm", filepath.Base(name))

	data, err := os.ReadFile(name)
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(string(data)), "nop"))
}

func TestMaps(t *testing.T) {
	e, err := New(t.TempDir(), 4)
	assert.NoError(t, err)

	s := &maps.Submap{ID: 3, Header: maps.Header{Width: 1, Height: 1}}
	warp := &maps.Warp{ToMap: 5}
	sign := &maps.Sign{Text: "HELLO"}
	m := &compositor.Map{
		ID:      3,
		Width:   2,
		Height:  2,
		Image:   tile.NewRGB(image.Rect(0, 0, 32, 32)),
		Members: []compositor.Member{{Submap: s, X: 0, Y: 0}},
		Objects: map[image.Point]compositor.Object{
			image.Pt(1, 1): {MapID: 3, X: 1, Y: 1, Sign: sign},
			image.Pt(0, 1): {MapID: 3, X: 0, Y: 1, Warp: warp},
		},
	}
	assert.NoError(t, e.Maps([]*compositor.Map{m}))

	// map pictures are not scaled
	img := decodePNG(t, filepath.Join(e.Dir(), "maps", "map-03.png"))
	assert.Equal(t, 32, img.Bounds().Dx())

	data, err := os.ReadFile(filepath.Join(e.Dir(), "maps.json"))
	assert.NoError(t, err)

	var docs []struct {
		ID      byte   `json:"id"`
		Image   string `json:"image"`
		Members []struct {
			ID byte `json:"id"`
			X  int  `json:"x"`
		} `json:"members"`
		Objects []struct {
			X    int             `json:"x"`
			Sign json.RawMessage `json:"sign"`
		} `json:"objects"`
	}
	assert.NoError(t, json.Unmarshal(data, &docs))
	assert.Len(t, docs, 1)
	assert.Equal(t, "maps/map-03.png", docs[0].Image)
	assert.Equal(t, byte(3), docs[0].Members[0].ID)
	assert.Len(t, docs[0].Objects, 2)
	assert.Equal(t, 0, docs[0].Objects[0].X)
	assert.Contains(t, string(docs[0].Objects[1].Sign), "HELLO")
}

func TestPokedexAndTrainers(t *testing.T) {
	e, err := New(t.TempDir(), 1)
	assert.NoError(t, err)

	entries := []*pokedex.Entry{
		{Header: pokedex.Header{DexID: 1}, RomID: 0x99, Name: "BULBASAUR"},
	}
	written := func(romID byte, side sprite.Side) bool {
		return side == sprite.Front
	}
	assert.NoError(t, e.Pokedex(entries, written))

	data, err := os.ReadFile(filepath.Join(e.Dir(), "pokedex.json"))
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"frontSprite": "sprites/153-front.png"`)
	assert.False(t, strings.Contains(string(data), "backSprite"))
	assert.Contains(t, string(data), `"name": "BULBASAUR"`)

	result := &trainers.Result{
		Trainers: []*trainers.Trainer{{Name: "YOUNGSTER"}},
		Classes: []*trainers.Class{
			{ID: 0, Name: "YOUNGSTER"},
			{ID: 1, Name: "BUG CATCHER"},
		},
	}
	assert.NoError(t, e.Trainers(result, map[byte]*sprite.Frame{1: {}}))

	_, err = os.Stat(filepath.Join(e.Dir(), "trainers", "trainer-01.png"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(e.Dir(), "trainers", "trainer-00.png"))
	assert.True(t, os.IsNotExist(err))

	data, err = os.ReadFile(filepath.Join(e.Dir(), "trainers.json"))
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"image": "trainers/trainer-01.png"`)
}
