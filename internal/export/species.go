package export

import (
	"fmt"
	"path"

	"github.com/retroenv/gbextract/internal/pokedex"
	"github.com/retroenv/gbextract/internal/sprite"
	"github.com/retroenv/gbextract/internal/tile"
	"github.com/retroenv/gbextract/internal/trainers"
)

// SpriteName returns the relative path of a species sprite.
func SpriteName(romID byte, side sprite.Side) string {
	return path.Join("sprites", fmt.Sprintf("%03d-%s.png", romID, side))
}

// Sprite writes a species sprite to sprites/NNN-front.png or
// sprites/NNN-back.png.
func (e *Exporter) Sprite(romID byte, side sprite.Side, frame *sprite.Frame) error {
	name, err := e.path(SpriteName(romID, side))
	if err != nil {
		return err
	}
	return writePNG(name, frame.RGB(tile.Default), e.scale)
}

// PokedexEntry is a Pokédex entry with the paths of its sprites.
type PokedexEntry struct {
	*pokedex.Entry

	FrontSprite string `json:"frontSprite,omitempty"`
	BackSprite  string `json:"backSprite,omitempty"`
}

// Pokedex writes pokedex.json. Sprite paths are only set for sprites that
// are marked as written.
func (e *Exporter) Pokedex(entries []*pokedex.Entry, written func(romID byte, side sprite.Side) bool) error {
	docs := make([]PokedexEntry, 0, len(entries))
	for _, entry := range entries {
		doc := PokedexEntry{Entry: entry}
		if written(entry.RomID, sprite.Front) {
			doc.FrontSprite = SpriteName(entry.RomID, sprite.Front)
		}
		if written(entry.RomID, sprite.Back) {
			doc.BackSprite = SpriteName(entry.RomID, sprite.Back)
		}
		docs = append(docs, doc)
	}

	name, err := e.path("pokedex.json")
	if err != nil {
		return err
	}
	return writeJSON(name, docs)
}

// TrainerPictureName returns the relative path of a trainer class picture.
func TrainerPictureName(class byte) string {
	return path.Join("trainers", fmt.Sprintf("trainer-%02X.png", class))
}

// TrainerClass is a trainer class with the path of its picture.
type TrainerClass struct {
	*trainers.Class

	Image string `json:"image,omitempty"`
}

// TrainersDocument is the content of trainers.json.
type TrainersDocument struct {
	Trainers []*trainers.Trainer `json:"trainers"`
	Classes  []TrainerClass      `json:"classes"`
}

// Trainers writes the class pictures and trainers.json. Classes without a
// picture frame are listed without image.
func (e *Exporter) Trainers(result *trainers.Result, pictures map[byte]*sprite.Frame) error {
	doc := TrainersDocument{
		Trainers: result.Trainers,
		Classes:  make([]TrainerClass, 0, len(result.Classes)),
	}

	for _, class := range result.Classes {
		entry := TrainerClass{Class: class}
		if frame, ok := pictures[class.ID]; ok {
			entry.Image = TrainerPictureName(class.ID)
			name, err := e.path(entry.Image)
			if err != nil {
				return err
			}
			if err := writePNG(name, frame.RGB(tile.Default), e.scale); err != nil {
				return err
			}
		}
		doc.Classes = append(doc.Classes, entry)
	}

	name, err := e.path("trainers.json")
	if err != nil {
		return err
	}
	return writeJSON(name, doc)
}
