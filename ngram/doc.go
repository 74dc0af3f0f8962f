// SPDX-License-Identifier: MIT

// Package ngram ranks the most frequent letter n-grams of a text.
//
// 🚀 Why trigrams?
//
//	After each edit of the mapping the analyst decodes the ciphertext and
//	looks at its most common trigrams. Real English trigrams ("THE",
//	"AND", "ING") rising to the top is a strong sign the pairing is
//	converging.
//
// ✨ Semantics:
//   - The text is reduced to its letters (upper-cased); spaces and
//     punctuation are dropped, so windows may span word boundaries.
//   - Every overlapping window of length n is counted.
//   - Results are ordered by descending count; equal counts keep the
//     order in which each gram first appeared.
//   - Fewer than n letters yields an empty result, not an error.
//
// ⚙️ Usage:
//
//	top := ngram.TopTrigrams(plaintext, 10)
//	for _, c := range top { fmt.Println(c.Gram, c.N) }
//
// Complexity: O(L·n) time, O(distinct grams) memory, L = number of letters.
package ngram
