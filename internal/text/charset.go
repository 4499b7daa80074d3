// Package text implements the cartridge character encoding and the lookup of
// the name lists stored in the ROM.
package text

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Unknown is emitted for bytes without a character mapping.
const Unknown = "¿?"

// string terminators.
const (
	Nul         = 0x00
	End         = 0x50 // generic end of a name
	Done        = 0x57 // end of a sign text
	DexEnd      = 0x5F // end of a pokedex description
	maxTokenLen = len("<PlayerName>")
)

var errUnencodable = errors.New("character can not be encoded")

var charset = [256]string{
	0x49: "\n",
	0x4E: "\n",
	0x4F: "\n",
	0x51: "\n\n",
	0x52: "<PlayerName>",
	0x53: "<RivalName>",
	0x54: "POKé",
	0x55: "\n",
	0x7F: " ",
	0x9A: "(",
	0x9B: ")",
	0x9C: ":",
	0x9D: ";",
	0x9E: "]",
	0x9F: "[",
	0xBA: "é",
	0xBB: "'d",
	0xBC: "'l",
	0xBD: "'s",
	0xBE: "'t",
	0xBF: "'v",
	0xE0: "'",
	0xE1: "PK",
	0xE2: "MN",
	0xE3: "-",
	0xE4: "'r",
	0xE5: "'m",
	0xE6: "?",
	0xE7: "!",
	0xE8: ".",
	0xEF: "♂",
	0xF0: "$",
	0xF1: "x",
	0xF2: ".",
	0xF3: "/",
	0xF4: ",",
	0xF5: "♀",
}

// encoding maps every character sequence to its preferred byte.
var encoding = map[string]byte{}

func init() {
	for i := range 26 {
		charset[0x80+i] = string(rune('A' + i))
		charset[0xA0+i] = string(rune('a' + i))
	}
	for i := range 10 {
		charset[0xF6+i] = string(rune('0' + i))
	}

	for i, s := range charset {
		if s == "" {
			continue
		}
		if _, ok := encoding[s]; !ok {
			encoding[s] = byte(i)
		}
	}
	encoding["\n"] = 0x4E
}

// Char returns the text of a single encoded byte.
func Char(b byte) (string, bool) {
	s := charset[b]
	return s, s != ""
}

// IsTerminator returns whether the byte ends a text string.
func IsTerminator(b byte) bool {
	switch b {
	case Nul, End, Done, DexEnd:
		return true
	default:
		return false
	}
}

// Decode decodes the bytes up to the first terminator. Unknown bytes are
// replaced by the Unknown marker and reported by a false ok.
func Decode(b []byte) (string, bool) {
	var sb strings.Builder
	ok := true
	for _, c := range b {
		if IsTerminator(c) {
			break
		}
		s, known := Char(c)
		if !known {
			ok = false
			s = Unknown
		}
		sb.WriteString(s)
	}
	return sb.String(), ok
}

// DecodeBytes decodes a fixed length name buffer that is padded with 0x50.
func DecodeBytes(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		if c == End {
			break
		}
		s, known := Char(c)
		if !known {
			s = Unknown
		}
		sb.WriteString(s)
	}
	return sb.String()
}

// Encode converts a string to the cartridge encoding using the longest
// matching character sequence at each position. The result is not
// terminated.
func Encode(s string) ([]byte, error) {
	var out []byte
	for i := 0; i < len(s); {
		n := min(maxTokenLen, len(s)-i)
		for ; n > 0; n-- {
			if b, ok := encoding[s[i:i+n]]; ok {
				out = append(out, b)
				break
			}
		}
		if n == 0 {
			r, _ := utf8.DecodeRuneInString(s[i:])
			return nil, fmt.Errorf("%w: %q at position %d", errUnencodable, r, i)
		}
		i += n
	}
	return out, nil
}

// BCD decodes a packed binary coded decimal byte.
func BCD(b byte) int {
	return int(b>>4)*10 + int(b&0x0F)
}
