package mapping_test

import (
	"testing"

	"github.com/katalvlaran/recipro/alphabet"
	"github.com/katalvlaran/recipro/mapping"
)

// BenchmarkAssociate cycles through all letter pairs on one mapping.
func BenchmarkAssociate(b *testing.B) {
	m := mapping.Identity()
	letters := alphabet.Letters()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a := letters[i%alphabet.Size]
		c := letters[(i*7+3)%alphabet.Size]
		if err := m.Associate(a, c); err != nil {
			b.Fatalf("Associate failed: %v", err)
		}
	}
}

func BenchmarkSeedByFrequency(b *testing.B) {
	const ct = "MOBUEWO LI QOUOYNYVA PZYF BOPPOQ IEC GQO EVO ES PZO SOM UZEFOV PE NYFYP CF GP PZO SYSPZ VOJP WEVPZ"
	for i := 0; i < b.N; i++ {
		_ = mapping.SeedByFrequency(ct, mapping.SkipSelfPair)
	}
}

func BenchmarkIsReciprocal(b *testing.B) {
	m := mapping.SeedByFrequency("the quick brown fox", mapping.SkipSelfPair)
	for i := 0; i < b.N; i++ {
		_ = m.IsReciprocal()
	}
}
