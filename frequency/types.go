// SPDX-License-Identifier: MIT

package frequency

import "github.com/katalvlaran/recipro/alphabet"

// Counts holds raw occurrence counts indexed by Letter.Index().
type Counts [alphabet.Size]int

// Table maps each letter (by Letter.Index()) to a fraction in [0,1].
type Table [alphabet.Size]float64

// Total returns the number of alphabetic characters counted.
func (c Counts) Total() int {
	var n int
	for _, v := range c {
		n += v
	}

	return n
}

// Get returns the count for l. Invalid letters yield 0.
func (c Counts) Get(l alphabet.Letter) int {
	if !l.Valid() {
		return 0
	}

	return c[l.Index()]
}

// Get returns the fraction for l. Invalid letters yield 0.
func (t Table) Get(l alphabet.Letter) float64 {
	if !l.Valid() {
		return 0
	}

	return t[l.Index()]
}

// Sum returns the sum of all fractions: 1 (up to rounding) for any text
// with at least one letter, exactly 0 otherwise.
func (t Table) Sum() float64 {
	var s float64
	for _, v := range t {
		s += v
	}

	return s
}

// EnglishOrder is the canonical ranking of English letters by corpus
// frequency, most frequent first.
const EnglishOrder = "ETAOINSHRDLCUMWFGYPBVKJXQZ"

// englishValues are the frequencies of EnglishOrder, position by position.
var englishValues = [alphabet.Size]float64{
	0.12702, 0.09056, 0.08167, 0.07507, 0.06966, 0.06749, 0.06327, 0.06094, 0.05987,
	0.04253, 0.04025, 0.02782, 0.02758, 0.02406, 0.02360, 0.02228, 0.02015, 0.01974,
	0.01929, 0.01492, 0.00978, 0.00772, 0.00153, 0.00150, 0.00095, 0.00074,
}

// English is the canonical English letter-frequency table.
var English = func() Table {
	var t Table
	for i := 0; i < len(EnglishOrder); i++ {
		t[alphabet.Letter(EnglishOrder[i]).Index()] = englishValues[i]
	}

	return t
}()

// EnglishRanking returns EnglishOrder as a fresh slice of letters.
func EnglishRanking() []alphabet.Letter {
	out := make([]alphabet.Letter, len(EnglishOrder))
	for i := range out {
		out[i] = alphabet.Letter(EnglishOrder[i])
	}

	return out
}
