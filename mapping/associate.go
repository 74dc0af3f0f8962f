// SPDX-License-Identifier: MIT

package mapping

import (
	"fmt"

	"github.com/katalvlaran/recipro/alphabet"
)

// Associate re-pairs a with b and restores the reciprocal invariant.
//
// Algorithm:
//  1. Validate a and b; on failure return ErrInvalidLetter, m untouched.
//  2. a == b is a no-op.
//  3. Remember the current partners pa = m[a], pb = m[b].
//  4. Force a↔b.
//  5. Orphans = {pa, pb} \ {a, b}: old partners left pointing at a or b.
//  6. Two orphans are paired with each other, a single orphan becomes a
//     fixed point, no orphan needs nothing.
//
// Example (from identity):
//
//	Associate('A','B')  →  A↔B
//	Associate('A','C')  →  A↔C, orphan {B} → B↔B
//
// Complexity: O(1).
func (m *Mapping) Associate(a, b alphabet.Letter) error {
	if err := validateLetter(a); err != nil {
		return err
	}
	if err := validateLetter(b); err != nil {
		return err
	}
	if a == b {
		return nil
	}

	pa, pb := m[a.Index()], m[b.Index()]
	m.pair(a, b)

	var orphans [2]alphabet.Letter
	n := 0
	for _, p := range [2]alphabet.Letter{pa, pb} {
		if p != a && p != b {
			orphans[n] = p
			n++
		}
	}

	switch n {
	case 2:
		m.pair(orphans[0], orphans[1])
	case 1:
		m.pair(orphans[0], orphans[0])
	}

	return nil
}

// AssociateRunes parses a and b case-insensitively and calls Associate.
func (m *Mapping) AssociateRunes(a, b rune) error {
	la, err := alphabet.Parse(a)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLetter, err)
	}
	lb, err := alphabet.Parse(b)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLetter, err)
	}

	return m.Associate(la, lb)
}

// Associate is the value form of (*Mapping).Associate: it returns the
// edited copy and leaves m alone. On error the input mapping is returned.
func Associate(m Mapping, a, b alphabet.Letter) (Mapping, error) {
	out := m
	if err := out.Associate(a, b); err != nil {
		return m, err
	}

	return out, nil
}

func validateLetter(l alphabet.Letter) error {
	if l.Valid() {
		return nil
	}

	return fmt.Errorf("%w: %w: %q", ErrInvalidLetter, alphabet.ErrNotLetter, byte(l))
}
