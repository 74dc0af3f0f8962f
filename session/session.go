// SPDX-License-Identifier: MIT

package session

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/recipro/decode"
	"github.com/katalvlaran/recipro/frequency"
	"github.com/katalvlaran/recipro/internal/logging"
	"github.com/katalvlaran/recipro/mapping"
	"github.com/katalvlaran/recipro/ngram"
)

var (
	// ErrEmptyCiphertext is returned by Load for blank input.
	ErrEmptyCiphertext = errors.New("session: ciphertext is empty")

	// ErrNotLoaded is returned by operations that need a ciphertext.
	ErrNotLoaded = errors.New("session: no ciphertext loaded")
)

// Session holds a ciphertext and the mapping being refined against it.
type Session struct {
	ciphertext   string
	m            mapping.Mapping
	policy       mapping.SelfPairPolicy
	trigramLimit int
	log          *slog.Logger
}

// New returns a Session with no ciphertext and the identity mapping.
func New(opts ...Option) *Session {
	s := &Session{
		m:            mapping.Identity(),
		policy:       mapping.SkipSelfPair,
		trigramLimit: DefaultTrigramLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logging.New("session")
	}

	return s
}

// Load sets the ciphertext. The mapping is kept, so an analyst can load a
// second message encrypted with the same key.
func (s *Session) Load(ciphertext string) error {
	if strings.TrimSpace(ciphertext) == "" {
		return ErrEmptyCiphertext
	}
	s.ciphertext = ciphertext
	s.log.Info("ciphertext loaded",
		slog.Int("bytes", len(ciphertext)),
		slog.Int("letters", frequency.Count(ciphertext).Total()))

	return nil
}

// Loaded reports whether a ciphertext is present.
func (s *Session) Loaded() bool {
	return s.ciphertext != ""
}

// Ciphertext returns the loaded ciphertext ("" if none).
func (s *Session) Ciphertext() string {
	return s.ciphertext
}

// Policy returns the configured self-pair policy.
func (s *Session) Policy() mapping.SelfPairPolicy {
	return s.policy
}

// SeedByFrequency replaces the mapping with the frequency-rank seeding of
// the loaded ciphertext.
func (s *Session) SeedByFrequency() error {
	if !s.Loaded() {
		return ErrNotLoaded
	}
	s.m = mapping.SeedByFrequency(s.ciphertext, s.policy)
	s.log.Info("mapping seeded by frequency",
		slog.String("policy", s.policy.String()),
		slog.Int("pairs", len(s.m.Pairs())))

	return nil
}

// Associate pairs a with b (case-insensitive). On error the mapping is
// unchanged.
func (s *Session) Associate(a, b rune) error {
	if err := s.m.AssociateRunes(a, b); err != nil {
		s.log.Debug("associate rejected", slog.String("a", string(a)), slog.String("b", string(b)), slog.Any("error", err))
		return err
	}
	s.log.Info("letters associated", slog.String("a", string(a)), slog.String("b", string(b)))

	return nil
}

// Reset returns the mapping to identity.
func (s *Session) Reset() {
	s.m.Reset()
	s.log.Info("mapping reset")
}

// Mapping returns a copy of the current mapping.
func (s *Session) Mapping() mapping.Mapping {
	return s.m
}

// Restore replaces the mapping wholesale, e.g. from a saved session.
// Non-reciprocal tables are rejected with mapping.ErrNotReciprocal.
func (s *Session) Restore(m mapping.Mapping) error {
	if !m.IsReciprocal() {
		return fmt.Errorf("restore: %w", mapping.ErrNotReciprocal)
	}
	s.m = m
	s.log.Info("mapping restored", slog.String("key", m.Key()))

	return nil
}

// Decoded applies the current mapping to the ciphertext.
func (s *Session) Decoded() string {
	return decode.Decode(s.ciphertext, s.m)
}

// Trigrams returns the top trigrams of the decoded ciphertext.
func (s *Session) Trigrams() []ngram.Count {
	return ngram.TopTrigrams(s.Decoded(), s.trigramLimit)
}

// Frequencies returns the letter distribution of the ciphertext.
func (s *Session) Frequencies() frequency.Table {
	return frequency.Compute(s.ciphertext)
}

// Check reports whether the current mapping is reciprocal. It is always
// true for a Session driven through its methods.
func (s *Session) Check() bool {
	return s.m.IsReciprocal()
}
