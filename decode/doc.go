// Package decode applies a reciprocal mapping to arbitrary text.
//
// Alphabetic characters are case-folded for the lookup and the original
// case is re-applied to the substituted letter; every other byte is copied
// through at the same position. Because every mapping.Mapping is its own
// inverse, Decode(Decode(s, m), m) == s for any s.
//
//	decode.Decode("Uryyb, Jbeyq!", rot13) == "Hello, World!"
package decode
