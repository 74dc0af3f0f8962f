// SPDX-License-Identifier: MIT

package mapping

import (
	"fmt"

	"github.com/katalvlaran/recipro/alphabet"
	"github.com/katalvlaran/recipro/frequency"
)

// Seed replaces m with a greedy pairing of ranked (observed cipher letters,
// most frequent first) against canonical (reference letters, most frequent
// first).
//
// Algorithm (two independent cursors i over ranked, j over canonical):
//   - ranked[i] already paired this pass    → i++
//   - canonical[j] already paired this pass → j++
//   - ranked[i] == canonical[j]             → policy decides:
//     SkipSelfPair: i++; AllowSelfPair: fixed point, i++, j++
//   - otherwise pair them, i++, j++
//
// The walk stops when either list runs out. Letters never paired keep the
// identity mapping they were reset to.
//
// Errors:
//   - ErrInvalidRanking: an invalid or repeated letter in either list;
//     m is left untouched.
//
// Complexity: O(len(ranked) + len(canonical)).
func (m *Mapping) Seed(ranked, canonical []alphabet.Letter, policy SelfPairPolicy) error {
	if err := validateRanking("ranked", ranked); err != nil {
		return err
	}
	if err := validateRanking("canonical", canonical); err != nil {
		return err
	}
	m.seed(ranked, canonical, policy)

	return nil
}

// SeedByFrequency ranks the letters of ciphertext and seeds a fresh mapping
// against the canonical English ranking. Equal inputs give equal mappings.
func SeedByFrequency(ciphertext string, policy SelfPairPolicy) Mapping {
	var m Mapping
	m.seed(frequency.Rank(frequency.Compute(ciphertext)), frequency.EnglishRanking(), policy)

	return m
}

func (m *Mapping) seed(ranked, canonical []alphabet.Letter, policy SelfPairPolicy) {
	m.Reset()

	var used [alphabet.Size]bool
	i, j := 0, 0
	for i < len(ranked) && j < len(canonical) {
		c, p := ranked[i], canonical[j]
		switch {
		case used[c.Index()]:
			i++
		case used[p.Index()]:
			j++
		case c == p && policy == SkipSelfPair:
			i++
		default:
			// c == p under AllowSelfPair leaves c as a fixed point.
			m.pair(c, p)
			used[c.Index()] = true
			used[p.Index()] = true
			i++
			j++
		}
	}
}

func validateRanking(name string, ls []alphabet.Letter) error {
	var seen [alphabet.Size]bool
	for i, l := range ls {
		if !l.Valid() {
			return fmt.Errorf("%w: %s[%d] is not a letter", ErrInvalidRanking, name, i)
		}
		if seen[l.Index()] {
			return fmt.Errorf("%w: %s[%d] repeats %s", ErrInvalidRanking, name, i, l)
		}
		seen[l.Index()] = true
	}

	return nil
}
