// SPDX-License-Identifier: MIT

package alphabet

import (
	"errors"
	"fmt"
)

// Size is the number of letters in the alphabet.
const Size = 26

// ErrNotLetter indicates a rune outside 'A'..'Z' / 'a'..'z'.
var ErrNotLetter = errors.New("alphabet: not a letter A-Z")

// Letter is an upper-case ASCII letter 'A'..'Z'.
// The zero value is not a valid Letter; use Valid to check.
type Letter byte

// Letters returns A..Z in alphabetical order. The slice is freshly
// allocated and may be modified by the caller.
func Letters() []Letter {
	out := make([]Letter, Size)
	for i := range out {
		out[i] = Letter('A' + i)
	}

	return out
}

// FromIndex returns the letter at position i (0 → 'A').
// It panics when i is outside [0, Size); callers index with values they
// obtained from Index, so an out-of-range i is a programmer error.
func FromIndex(i int) Letter {
	if i < 0 || i >= Size {
		panic(fmt.Sprintf("alphabet: index %d out of range", i))
	}

	return Letter('A' + i)
}

// Parse case-folds r and returns the corresponding Letter.
// Returns ErrNotLetter for any rune that is not an ASCII letter.
func Parse(r rune) (Letter, error) {
	switch {
	case r >= 'A' && r <= 'Z':
		return Letter(r), nil
	case r >= 'a' && r <= 'z':
		return Letter(r - 'a' + 'A'), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrNotLetter, r)
	}
}

// IsLetter reports whether r is alphabetic in the engine's sense.
func IsLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// IsLower reports whether r is a lower-case ASCII letter.
func IsLower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// Valid reports whether l is one of 'A'..'Z'.
func (l Letter) Valid() bool {
	return l >= 'A' && l <= 'Z'
}

// Index returns the 0-based position of l in the alphabet.
// The result is meaningless for invalid letters; check Valid first.
func (l Letter) Index() int {
	return int(l - 'A')
}

// Lower returns the lower-case rune for l.
func (l Letter) Lower() rune {
	return rune(l) - 'A' + 'a'
}

// String renders l as a one-character string, or "?" when invalid.
func (l Letter) String() string {
	if !l.Valid() {
		return "?"
	}

	return string(rune(l))
}
