// SPDX-License-Identifier: MIT

package session

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/recipro/mapping"
)

// DefaultTrigramLimit is the number of trigrams Trigrams returns by default.
const DefaultTrigramLimit = 10

// Option customizes a Session at construction time.
// Option constructors panic on meaningless values; these are programmer
// errors, not user input.
type Option func(*Session)

// WithSelfPairPolicy selects how SeedByFrequency treats a cipher letter that
// meets itself in the canonical ranking.
func WithSelfPairPolicy(p mapping.SelfPairPolicy) Option {
	if p != mapping.SkipSelfPair && p != mapping.AllowSelfPair {
		panic(fmt.Sprintf("session: WithSelfPairPolicy(%d)", int(p)))
	}
	return func(s *Session) {
		s.policy = p
	}
}

// WithTrigramLimit sets how many trigrams Trigrams returns. Panics on k < 1.
func WithTrigramLimit(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("session: WithTrigramLimit(%d)", k))
	}
	return func(s *Session) {
		s.trigramLimit = k
	}
}

// WithLogger replaces the default logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("session: WithLogger(nil)")
	}
	return func(s *Session) {
		s.log = l
	}
}
