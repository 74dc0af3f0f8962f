// SPDX-License-Identifier: MIT

package mapping

import (
	"fmt"

	"github.com/katalvlaran/recipro/alphabet"
)

// Mapping is a reciprocal substitution table indexed by Letter.Index().
// The zero value is not valid; start from Identity.
type Mapping [alphabet.Size]alphabet.Letter

// Pair is one 2-cycle of a Mapping, with A < B.
type Pair struct {
	A, B alphabet.Letter
}

// String renders the pair as "A↔B".
func (p Pair) String() string {
	return fmt.Sprintf("%s↔%s", p.A, p.B)
}

// SelfPairPolicy decides what Seed does when the next cipher letter and
// the next canonical letter are the same letter.
type SelfPairPolicy int

const (
	// SkipSelfPair advances the cipher cursor without forming a pair, so the
	// letter stays available for a later canonical letter.
	SkipSelfPair SelfPairPolicy = iota

	// AllowSelfPair consumes both cursors and leaves the letter as a fixed
	// point.
	AllowSelfPair
)

// String returns the policy name used in configuration files.
func (p SelfPairPolicy) String() string {
	switch p {
	case SkipSelfPair:
		return "skip"
	case AllowSelfPair:
		return "allow"
	default:
		return fmt.Sprintf("SelfPairPolicy(%d)", int(p))
	}
}

// ParseSelfPairPolicy is the inverse of SelfPairPolicy.String.
func ParseSelfPairPolicy(s string) (SelfPairPolicy, error) {
	switch s {
	case "skip", "":
		return SkipSelfPair, nil
	case "allow":
		return AllowSelfPair, nil
	default:
		return 0, fmt.Errorf("mapping: unknown self-pair policy %q", s)
	}
}
