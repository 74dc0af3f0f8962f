package frequency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/recipro/alphabet"
	"github.com/katalvlaran/recipro/frequency"
)

const eps = 1e-12

// TestCompute_XYZ checks the worked example: three equally frequent letters,
// spaces excluded from the denominator.
func TestCompute_XYZ(t *testing.T) {
	tab := frequency.Compute("XYZ XYZ XYZ")

	for _, l := range alphabet.Letters() {
		switch l {
		case 'X', 'Y', 'Z':
			assert.InDelta(t, 1.0/3.0, tab.Get(l), eps, "letter %s", l)
		default:
			assert.Equal(t, 0.0, tab.Get(l), "letter %s", l)
		}
	}
	assert.InDelta(t, 1.0, tab.Sum(), eps)
}

// TestCompute_NoLetters is the zero-alphabetic guard: every entry is exactly
// zero and nothing divides by zero.
func TestCompute_NoLetters(t *testing.T) {
	for _, text := range []string{"", "!!! 123", "   \n\t", "éàü"} {
		tab := frequency.Compute(text)
		assert.Equal(t, frequency.Table{}, tab, "text %q", text)
		assert.Equal(t, 0.0, tab.Sum())
	}
}

// TestCompute_CaseFolded ensures upper- and lower-case forms count together.
func TestCompute_CaseFolded(t *testing.T) {
	tab := frequency.Compute("aA bB, ab!")
	assert.InDelta(t, 0.5, tab.Get('A'), eps)
	assert.InDelta(t, 0.5, tab.Get('B'), eps)
}

func TestCount_Total(t *testing.T) {
	c := frequency.Count("Hello, World!")
	assert.Equal(t, 10, c.Total())
	assert.Equal(t, 3, c.Get('L'))
	assert.Equal(t, 2, c.Get('O'))
	assert.Equal(t, 0, c.Get(alphabet.Letter('?')))
}

// TestRank_DescendingWithAlphabeticalTies verifies the ordering contract.
func TestRank_DescendingWithAlphabeticalTies(t *testing.T) {
	// Q:3, B:2, Z:2, A:1, everything else 0.
	order := frequency.Rank(frequency.Compute("QQQ BB ZZ A"))
	require.Len(t, order, alphabet.Size)

	assert.Equal(t, []alphabet.Letter{'Q', 'B', 'Z', 'A', 'C', 'D'}, order[:6])
	assert.Equal(t, alphabet.Letter('Y'), order[25])
}

// TestRank_IsPermutation checks every letter appears exactly once.
func TestRank_IsPermutation(t *testing.T) {
	order := frequency.Rank(frequency.Compute("the quick brown fox jumps over the lazy dog"))
	seen := map[alphabet.Letter]bool{}
	for _, l := range order {
		assert.False(t, seen[l], "duplicate %s", l)
		seen[l] = true
	}
	assert.Len(t, seen, alphabet.Size)
}

// TestRank_EmptyTableIsAlphabetical covers the degenerate table.
func TestRank_EmptyTableIsAlphabetical(t *testing.T) {
	assert.Equal(t, alphabet.Letters(), frequency.Rank(frequency.Table{}))
}

// TestEnglish_MatchesOrder verifies the canonical table ranks back to
// EnglishOrder and is (almost) a distribution.
func TestEnglish_MatchesOrder(t *testing.T) {
	assert.Equal(t, frequency.EnglishRanking(), frequency.Rank(frequency.English))
	assert.InDelta(t, 1.0, frequency.English.Sum(), 1e-4)
	assert.InDelta(t, 0.12702, frequency.English.Get('E'), eps)
	assert.InDelta(t, 0.00074, frequency.English.Get('Z'), eps)
}
