package decode_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/recipro/alphabet"
	"github.com/katalvlaran/recipro/decode"
	"github.com/katalvlaran/recipro/mapping"
)

// rot13 is a fully paired reciprocal mapping: A↔N, B↔O, ..., M↔Z.
func rot13(t testing.TB) mapping.Mapping {
	t.Helper()
	m := mapping.Identity()
	for i := 0; i < 13; i++ {
		require.NoError(t, m.Associate(alphabet.FromIndex(i), alphabet.FromIndex(i+13)))
	}

	return m
}

func TestDecode_Rot13(t *testing.T) {
	m := rot13(t)
	assert.Equal(t, "Hello, World!", decode.Decode("Uryyb, Jbeyq!", m))
}

func TestDecode_IdentityIsNoOp(t *testing.T) {
	const s = "Nothing changes: 123, ÄÖÜ, tabs\tand\nnewlines."
	assert.Equal(t, s, decode.Decode(s, mapping.Identity()))
}

// TestDecode_PreservesStructure: non-letters stay at the same positions
// and case is kept letter by letter.
func TestDecode_PreservesStructure(t *testing.T) {
	m := mapping.Identity()
	require.NoError(t, m.Associate('A', 'E'))

	assert.Equal(t, "e-A e!E 42", decode.Decode("a-E a!A 42", m))
	assert.Equal(t, "", decode.Decode("", m))
	assert.Equal(t, "   ", decode.Decode("   ", m))
}

// TestDecode_Involution: decoding twice restores the text for random
// reciprocal mappings and mixed input.
func TestDecode_Involution(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	texts := []string{
		"",
		"MOBUEWO LI QOUOYNYVA PZYF BOPPOQ",
		"Mixed Case, punctuation; digits 0-9 and ünïcödé!",
		"a",
		"ab\xffcd",
		"\xc3(\xa0\xa1 Bad UTF-8 \xe2\x82",
	}
	letters := alphabet.Letters()

	for trial := 0; trial < 200; trial++ {
		m := mapping.Identity()
		for k := 0; k < 15; k++ {
			require.NoError(t, m.Associate(letters[rng.Intn(26)], letters[rng.Intn(26)]))
		}
		for _, s := range texts {
			assert.Equal(t, s, decode.Decode(decode.Decode(s, m), m))
		}
	}
}

// TestDecode_RawBytes: bytes outside A..Z/a..z, including invalid UTF-8,
// are copied as they are.
func TestDecode_RawBytes(t *testing.T) {
	m := mapping.Identity()
	require.NoError(t, m.Associate('A', 'B'))

	got := decode.Decode("ab\xffcd", m)
	assert.Equal(t, "ba\xffcd", got)
	assert.Len(t, got, 5)
	assert.Equal(t, "Bä€ a", decode.Decode("Aä€ b", m))
}

func TestDecode_Seeded(t *testing.T) {
	m := mapping.SeedByFrequency("OOOO ZZZ PP", mapping.SkipSelfPair)
	assert.Equal(t, "eta ETA", decode.Decode("ozp OZP", m))
}
