// SPDX-License-Identifier: MIT

package ngram

import (
	"errors"
	"fmt"
)

// ErrBadWindow indicates a window length below 1.
var ErrBadWindow = errors.New("ngram: window length must be >= 1")

// Trigram is the window length used for plausibility scoring.
const Trigram = 3

// Count is one ranked n-gram and its number of occurrences.
type Count struct {
	Gram string
	N    int
}

// String renders the count as "THE:12".
func (c Count) String() string {
	return fmt.Sprintf("%s:%d", c.Gram, c.N)
}
