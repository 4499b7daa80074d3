package maps

import (
	"fmt"

	"github.com/retroenv/gbextract/internal/rom"
)

// HeaderSize is the encoded size of a map header.
const HeaderSize = 10

// ConnectionSize is the encoded size of a map connection.
const ConnectionSize = 11

// Direction is a map connection direction, its value is the bit in the
// connection byte of the header.
type Direction uint8

// connection directions.
const (
	East  Direction = 1 << 0
	West  Direction = 1 << 1
	South Direction = 1 << 2
	North Direction = 1 << 3
)

// Directions lists the connection directions in encoding order.
var Directions = [...]Direction{North, South, West, East}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case West:
		return "W"
	case East:
		return "E"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Header is the fixed part of a map header.
type Header struct {
	Tileset       byte   `json:"tileset"`
	Height        byte   `json:"height"` // in blocks
	Width         byte   `json:"width"`  // in blocks
	MapPointer    uint16 `json:"mapPointer"`
	TextPointer   uint16 `json:"textPointer"`
	ScriptPointer uint16 `json:"scriptPointer"`
	ConnectByte   byte   `json:"connectByte"`
}

// Connection links a map to a neighbour map.
type Connection struct {
	Direction    Direction `json:"direction"`
	MapID        byte      `json:"mapId"`
	ConnectedMap uint16    `json:"connectedMap"`
	CurrentMap   uint16    `json:"currentMap"`
	Bigness      byte      `json:"bigness"`
	Width        byte      `json:"width"`
	YAlign       byte      `json:"yAlign"`
	XAlign       byte      `json:"xAlign"`
	Window       uint16    `json:"window"`
}

func readHeader(r *rom.Reader) Header {
	return Header{
		Tileset:       r.U8(),
		Height:        r.U8(),
		Width:         r.U8(),
		MapPointer:    r.U16(),
		TextPointer:   r.U16(),
		ScriptPointer: r.U16(),
		ConnectByte:   r.U8(),
	}
}

// readConnections reads the connections that are flagged in the connection
// byte, they are stored in north, south, west, east order.
func readConnections(r *rom.Reader, connectByte byte) []Connection {
	var connections []Connection
	for _, dir := range Directions {
		if connectByte&byte(dir) == 0 {
			continue
		}
		connections = append(connections, Connection{
			Direction:    dir,
			MapID:        r.U8(),
			ConnectedMap: r.U16(),
			CurrentMap:   r.U16(),
			Bigness:      r.U8(),
			Width:        r.U8(),
			YAlign:       r.U8(),
			XAlign:       r.U8(),
			Window:       r.U16(),
		})
	}
	return connections
}

// Place returns the position of the connected map, given the position and
// size in blocks of the current map. Positions are in steps of 2x2 tiles.
func (c Connection) Place(x, y int, width, height byte) (int, int) {
	w := 2 * int(width)
	h := 2 * int(height)
	xa := int(int8(c.XAlign))
	ya := int(int8(c.YAlign))

	switch c.Direction {
	case North:
		return x - xa, y - int(c.YAlign) - 1
	case South:
		return x - xa, y - ya + h
	case West:
		return x - xa - 1, y - ya
	case East:
		return x - xa + w, y - ya
	default:
		return x, y
	}
}
