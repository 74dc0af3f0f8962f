// SPDX-License-Identifier: MIT

package mapping

import "errors"

// Sentinel errors. Callers branch with errors.Is; context is attached with
// %w at the return site.
var (
	// ErrInvalidLetter is returned by Associate when either argument is
	// outside A..Z. The mapping is left untouched.
	ErrInvalidLetter = errors.New("mapping: letter must be A-Z")

	// ErrInvalidRanking is returned by Seed when a ranking contains an
	// invalid or repeated letter.
	ErrInvalidRanking = errors.New("mapping: invalid ranking")

	// ErrInvalidKey is returned by ParseKey for a key that is not 26 letters.
	ErrInvalidKey = errors.New("mapping: key must be 26 letters A-Z")

	// ErrNotReciprocal is returned when a table violates m[m[a]] == a.
	ErrNotReciprocal = errors.New("mapping: table is not reciprocal")
)
