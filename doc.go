// Package recipro is a workbench for breaking reciprocal substitution
// ciphers: ciphers whose key is a pairing of letters, so that the same
// table both encrypts and decrypts.
//
// 🚀 What is recipro?
//
//	A small, deterministic engine plus an analyst CLI that brings together:
//		• Frequency analysis: letter counts, relative frequencies, ranking
//		• Reciprocal mappings: seeding by frequency rank, associate with orphan repair
//		• Decoding: case-preserving substitution through the current mapping
//		• N-gram scoring: top trigrams of the decoded text
//		• Sessions: load, refine, save and reopen work in progress
//
// ✨ Guarantees
//
//   - Every mapping the engine hands out is reciprocal: m[m[x]] == x
//   - Same input, same output: ties are broken by a fixed order
//   - Engine packages never log and never touch the filesystem
//
// Packages:
//
//	alphabet/  : the 26 upper-case Latin letters as a value type
//	frequency/ : counting, relative frequencies, ranking, English reference
//	mapping/   : the reciprocal Mapping, Associate and frequency seeding
//	decode/    : applying a Mapping to text
//	ngram/     : top-k n-gram counting (trigrams by default)
//	session/   : the mutable analyst session behind the CLI
//	cmd/recipro: the command-line tool
//
// Quick example:
//
//	m := mapping.SeedByFrequency(ciphertext, mapping.SkipSelfPair)
//	_ = m.AssociateRunes('Q', 'E')
//	fmt.Println(decode.Decode(ciphertext, m))
//
//	go install github.com/katalvlaran/recipro/cmd/recipro@latest
package recipro
