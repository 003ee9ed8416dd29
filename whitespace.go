// Package whitespace encodes arbitrary bytes as text made of two whitespace
// characters and decodes such text back into bytes.
//
// Every byte becomes 8 characters, most significant bit first:
//   - High (U+0020, space) represents a 1 bit
//   - Low (U+200B, zero width space) represents a 0 bit
package whitespace

import (
	"strings"
	"unicode/utf8"

	"github.com/yyyoichi/whitespace/internal/bitconv"
)

const (
	// High is the character of a 1 bit.
	High rune = ' '
	// Low is the character of a 0 bit.
	Low rune = '\u200b'
)

// Encode converts data into whitespace text.
// The result always holds exactly 8*len(data) characters.
func Encode(data []byte) string {
	return EncodeBools(bitconv.BytesToBools(data))
}

// EncodeBools converts a bit sequence into whitespace text, one character per bit.
func EncodeBools(bits []bool) string {
	var sb strings.Builder
	sb.Grow(len(bits) * utf8.RuneLen(Low))
	for _, bit := range bits {
		if bit {
			sb.WriteRune(High)
		} else {
			sb.WriteRune(Low)
		}
	}
	return sb.String()
}

// Decode converts whitespace text back into bytes.
//
// The text is scanned left to right and the first character that is neither
// High nor Low is reported as an *InvalidCharacterError. Only when every
// character is valid is the length checked: a character count that is not a
// multiple of 8 is reported as an *InvalidLengthError.
func Decode(text string) ([]byte, error) {
	bits, err := DecodeBools(text)
	if err != nil {
		return nil, err
	}
	if len(bits)%8 != 0 {
		return nil, &InvalidLengthError{Length: len(bits)}
	}
	return bitconv.BoolsToBytes(bits), nil
}

// DecodeBools converts whitespace text into a bit sequence, one bit per character.
// It stops at the first character outside the alphabet and returns an
// *InvalidCharacterError. Any number of characters is accepted.
func DecodeBools(text string) ([]bool, error) {
	bits := make([]bool, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		switch r {
		case High:
			bits = append(bits, true)
		case Low:
			bits = append(bits, false)
		default:
			return nil, &InvalidCharacterError{Position: len(bits), Character: r}
		}
	}
	return bits, nil
}
