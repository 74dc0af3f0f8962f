// SPDX-License-Identifier: MIT

// Package session bundles one analyst's working state: the ciphertext
// under attack and the current reciprocal mapping.
//
// A Session is an explicit value owned by its caller. There is no
// package-level state, so two sessions never observe each other's edits.
// Every method delegates to the engine packages (frequency, mapping,
// decode, ngram) and adds only input checks and one structured log line
// per mutation.
//
// A Session is not safe for concurrent use.
//
//	s := session.New(session.WithSelfPairPolicy(mapping.AllowSelfPair))
//	_ = s.Load(ciphertext)
//	_ = s.SeedByFrequency()
//	_ = s.Associate('q', 'e')
//	fmt.Println(s.Decoded(), s.Trigrams())
package session
