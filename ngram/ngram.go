// SPDX-License-Identifier: MIT

package ngram

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/recipro/alphabet"
)

// Top returns the k most frequent letter n-grams of text.
//
// Errors:
//   - ErrBadWindow: n < 1.
//
// Degenerate inputs (k <= 0, fewer than n letters) return an empty,
// non-nil slice.
func Top(text string, n, k int) ([]Count, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadWindow, n)
	}

	return top(letters(text), n, k), nil
}

// TopTrigrams returns the k most frequent trigrams of text, ties in order
// of first appearance.
//
//	TopTrigrams("ABAB", 5) == [{ABA 1} {BAB 1}]
//	TopTrigrams("AB", 5)   == []
func TopTrigrams(text string, k int) []Count {
	return top(letters(text), Trigram, k)
}

// letters filters text down to its upper-cased letters.
func letters(text string) []byte {
	out := make([]byte, 0, len(text))
	for _, r := range text {
		if l, err := alphabet.Parse(r); err == nil {
			out = append(out, byte(l))
		}
	}

	return out
}

func top(ls []byte, n, k int) []Count {
	if k <= 0 || len(ls) < n {
		return []Count{}
	}

	// counts in first-seen order; index maps a gram to its slot.
	var counts []Count
	index := make(map[string]int)
	for i := 0; i+n <= len(ls); i++ {
		g := string(ls[i : i+n])
		if slot, ok := index[g]; ok {
			counts[slot].N++
			continue
		}
		index[g] = len(counts)
		counts = append(counts, Count{Gram: g, N: 1})
	}

	// Stable sort keeps first-seen order among equal counts.
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].N > counts[j].N
	})
	if k < len(counts) {
		counts = counts[:k]
	}

	return counts
}
