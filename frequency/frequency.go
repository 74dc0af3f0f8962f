// SPDX-License-Identifier: MIT

package frequency

import (
	"sort"

	"github.com/katalvlaran/recipro/alphabet"
)

// Count case-folds text and counts each letter A..Z.
// Every non-alphabetic rune is ignored.
//
// Complexity: O(len(text)).
func Count(text string) Counts {
	var c Counts
	for _, r := range text {
		l, err := alphabet.Parse(r)
		if err != nil {
			continue
		}
		c[l.Index()]++
	}

	return c
}

// Compute returns the normalised letter distribution of text.
//
// Each count is divided by the number of alphabetic characters, not by
// len(text). A text with no letters yields the all-zero Table.
//
// Complexity: O(len(text)).
func Compute(text string) Table {
	return FromCounts(Count(text))
}

// FromCounts normalises c into a Table.
func FromCounts(c Counts) Table {
	var t Table
	total := c.Total()
	if total == 0 {
		return t // degenerate input: nothing to divide by
	}
	for i, v := range c {
		t[i] = float64(v) / float64(total)
	}

	return t
}

// Rank returns all 26 letters ordered by descending frequency in t.
// Equal frequencies keep alphabetical order, so the result depends on t
// alone and seeding built on it is reproducible.
//
// Complexity: O(26 log 26).
func Rank(t Table) []alphabet.Letter {
	out := alphabet.Letters()
	sort.SliceStable(out, func(i, j int) bool {
		return t[out[i].Index()] > t[out[j].Index()]
	})

	return out
}
