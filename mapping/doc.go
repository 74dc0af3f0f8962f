// SPDX-License-Identifier: MIT

// Package mapping owns the reciprocal letter substitution at the heart of
// recipro: a total function over the 26-letter alphabet that is its own
// inverse.
//
// 🚀 What is a reciprocal Mapping?
//
//	A Mapping m satisfies m[m[a]] == a for every letter a. Equivalently it
//	is a perfect matching of the alphabet into disjoint pairs (a↔b) and
//	fixed points (a↔a). Encrypting and decrypting are the same operation.
//
//	    A↔C   B↔B   D↔E   F↔F ...
//
// ✨ Operations:
//   - Identity / Reset  : every letter maps to itself
//   - Seed              : greedy two-cursor pairing of observed letter rank
//     against a canonical ranking (see SelfPairPolicy)
//   - Associate         : force a↔b and repair the at most two letters
//     orphaned by the edit, in O(1)
//   - IsReciprocal      : O(26) recomputation of the invariant
//
// 🔒 Invariant:
//
//	Every exported operation either succeeds and leaves a reciprocal
//	Mapping, or fails before writing anything. Validation always precedes
//	mutation; there is no partially applied state.
//
// ⚙️ Usage:
//
//	m := mapping.SeedByFrequency(ciphertext, mapping.SkipSelfPair)
//	if err := m.Associate('Q', 'E'); err != nil { ... }
//	plain := decode.Decode(ciphertext, m)
//
// Representation:
//
//	Mapping is a [26]alphabet.Letter value. Copying a Mapping copies the
//	whole table, so values handed out are snapshots.
package mapping
