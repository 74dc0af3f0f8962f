// SPDX-License-Identifier: MIT

// Package alphabet defines the fixed 26-letter alphabet every other
// recipro package is indexed over.
//
// 🚀 What is a Letter?
//
//	A Letter is a single upper-case ASCII letter 'A'..'Z'. All engine state
//	(frequency tables, mappings) is a 26-entry array addressed by
//	Letter.Index(). Case is a presentation concern only: Parse folds
//	'a'..'z' onto the same Letter, and callers that care about case
//	(the decoder) re-apply it themselves.
//
// ✨ What counts as alphabetic?
//
//	Exactly the 52 ASCII letters. Digits, punctuation, whitespace and
//	non-ASCII letters ('é', 'ß', ...) are non-alphabetic: they are
//	excluded from frequency denominators, skipped by the n-gram scorer
//	and copied through unchanged by the decoder.
//
// ⚙️ Usage:
//
//	l, err := alphabet.Parse('q')  // l == 'Q'
//	i := l.Index()                 // 16
//	for _, l := range alphabet.Letters() { ... }
package alphabet
