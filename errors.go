package whitespace

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCharacter = errors.New("invalid character")
	ErrInvalidLength    = errors.New("invalid input length")
)

// InvalidCharacterError reports the first character of the input that is
// neither High nor Low. Position counts characters, not bytes, from zero.
type InvalidCharacterError struct {
	Position  int
	Character rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("%s %q at position %d", ErrInvalidCharacter, e.Character, e.Position)
}

func (e *InvalidCharacterError) Unwrap() error {
	return ErrInvalidCharacter
}

// InvalidLengthError reports a fully valid input whose bit count is not a
// multiple of 8.
type InvalidLengthError struct {
	Length int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("%s %d: must be divisible by 8", ErrInvalidLength, e.Length)
}

func (e *InvalidLengthError) Unwrap() error {
	return ErrInvalidLength
}
