// SPDX-License-Identifier: MIT

// Package frequency computes per-letter frequency distributions over text
// and ranks letters by them.
//
// 🚀 What does it provide?
//
//	Count   : raw A..Z occurrence counts (case-folded)
//	Compute : counts normalised by the number of alphabetic characters
//	Rank    : the 26 letters ordered by descending frequency
//	English : the canonical English frequency table, used as the seeding
//	          target and as the reference series in bar charts
//
// ✨ Guarantees:
//   - Non-alphabetic characters never enter the denominator.
//   - A text without a single letter yields an all-zero Table, never NaN.
//   - Rank is deterministic: ties are broken alphabetically.
//
// ⚙️ Usage:
//
//	t := frequency.Compute("XYZ XYZ XYZ")  // X=Y=Z=1/3
//	order := frequency.Rank(t)             // [X Y Z A B C ...]
//
// Complexity: O(len(text)) for Count/Compute, O(26 log 26) for Rank.
package frequency
