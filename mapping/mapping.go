// SPDX-License-Identifier: MIT

package mapping

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/recipro/alphabet"
)

// Identity returns the mapping in which every letter maps to itself.
func Identity() Mapping {
	var m Mapping
	m.Reset()

	return m
}

// Reset sets m to the identity mapping. It cannot fail.
func (m *Mapping) Reset() {
	for i := range m {
		m[i] = alphabet.FromIndex(i)
	}
}

// Partner returns the letter l is currently paired with (l itself for a
// fixed point). Invalid letters are returned unchanged.
func (m Mapping) Partner(l alphabet.Letter) alphabet.Letter {
	if !l.Valid() {
		return l
	}

	return m[l.Index()]
}

// IsReciprocal recomputes the invariant from scratch: every entry is a
// valid letter and m[m[a]] == a for all a. It never mutates m.
//
// Complexity: O(26).
func (m Mapping) IsReciprocal() bool {
	for i, p := range m {
		if !p.Valid() {
			return false
		}
		if m[p.Index()] != alphabet.FromIndex(i) {
			return false
		}
	}

	return true
}

// Pairs lists every 2-cycle exactly once, ordered by the lower letter.
// Fixed points are not included; see FixedPoints.
func (m Mapping) Pairs() []Pair {
	var out []Pair
	for i, p := range m {
		l := alphabet.FromIndex(i)
		if l < p {
			out = append(out, Pair{A: l, B: p})
		}
	}

	return out
}

// FixedPoints lists the letters currently mapped to themselves, A..Z.
func (m Mapping) FixedPoints() []alphabet.Letter {
	var out []alphabet.Letter
	for i, p := range m {
		if alphabet.FromIndex(i) == p {
			out = append(out, p)
		}
	}

	return out
}

// Key returns the 26-letter image string m[A] m[B] ... m[Z].
// ParseKey(m.Key()) reproduces m.
func (m Mapping) Key() string {
	var sb strings.Builder
	sb.Grow(alphabet.Size)
	for _, p := range m {
		sb.WriteByte(byte(p))
	}

	return sb.String()
}

// String renders m as "A->B B->A C->C ...".
func (m Mapping) String() string {
	parts := make([]string, alphabet.Size)
	for i, p := range m {
		parts[i] = fmt.Sprintf("%s->%s", alphabet.FromIndex(i), p)
	}

	return strings.Join(parts, " ")
}

// ParseKey builds a Mapping from a 26-letter image string (case-insensitive).
//
// Errors:
//   - ErrInvalidKey   : wrong length or a non-letter character.
//   - ErrNotReciprocal: the table is a valid function but not self-inverse.
func ParseKey(key string) (Mapping, error) {
	var m Mapping
	if len(key) != alphabet.Size {
		return m, fmt.Errorf("%w: got %d characters", ErrInvalidKey, len(key))
	}
	for i := 0; i < len(key); i++ {
		l, err := alphabet.Parse(rune(key[i]))
		if err != nil {
			return Mapping{}, fmt.Errorf("%w: position %d: %w", ErrInvalidKey, i, err)
		}
		m[i] = l
	}
	if !m.IsReciprocal() {
		return Mapping{}, fmt.Errorf("%w: %s", ErrNotReciprocal, key)
	}

	return m, nil
}

// pair writes a↔b. Callers guarantee the result is reciprocal.
func (m *Mapping) pair(a, b alphabet.Letter) {
	m[a.Index()] = b
	m[b.Index()] = a
}
