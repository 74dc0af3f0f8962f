package mapping_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/recipro/alphabet"
	"github.com/katalvlaran/recipro/mapping"
)

// expectPairs builds the mapping obtained from identity by applying the
// given disjoint pairs directly. Used to state expected results.
func expectPairs(t *testing.T, pairs ...string) mapping.Mapping {
	t.Helper()
	m := mapping.Identity()
	for _, p := range pairs {
		require.Len(t, p, 2)
		require.NoError(t, m.Associate(alphabet.Letter(p[0]), alphabet.Letter(p[1])))
	}
	require.True(t, m.IsReciprocal())

	return m
}

// TestAssociate_WorkedExample: A↔B then A↔C leaves B as a fixed point.
func TestAssociate_WorkedExample(t *testing.T) {
	m := mapping.Identity()

	require.NoError(t, m.Associate('A', 'B'))
	assert.Equal(t, alphabet.Letter('B'), m.Partner('A'))
	assert.Equal(t, alphabet.Letter('A'), m.Partner('B'))
	assert.Equal(t, []mapping.Pair{{A: 'A', B: 'B'}}, m.Pairs())

	require.NoError(t, m.Associate('A', 'C'))
	assert.Equal(t, alphabet.Letter('C'), m.Partner('A'))
	assert.Equal(t, alphabet.Letter('A'), m.Partner('C'))
	assert.Equal(t, alphabet.Letter('B'), m.Partner('B'), "single orphan must become a fixed point")
	assert.Equal(t, []mapping.Pair{{A: 'A', B: 'C'}}, m.Pairs())
	assert.True(t, m.IsReciprocal())
}

// TestAssociate_Orphans walks the 0/1/2-orphan case split.
func TestAssociate_Orphans(t *testing.T) {
	cases := []struct {
		name  string
		start []string
		a, b  alphabet.Letter
		want  []string
	}{
		{"two fixed points", nil, 'A', 'B', []string{"AB"}},
		{"already paired", []string{"AB"}, 'A', 'B', []string{"AB"}},
		{"already paired reversed", []string{"AB"}, 'B', 'A', []string{"AB"}},
		{"two orphans are paired", []string{"AB", "CD"}, 'A', 'C', []string{"AC", "BD"}},
		{"one orphan from a", []string{"AB"}, 'A', 'C', []string{"AC"}},
		{"one orphan from b", []string{"CD"}, 'A', 'C', []string{"AC"}},
		{"b is a's partner's partner", []string{"AB", "CD"}, 'B', 'D', []string{"BD", "AC"}},
		{"untouched pairs survive", []string{"AB", "CD", "YZ"}, 'A', 'D', []string{"AD", "BC", "YZ"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := expectPairs(t, tc.start...)
			require.NoError(t, m.Associate(tc.a, tc.b))

			want := expectPairs(t, tc.want...)
			if diff := cmp.Diff(want.String(), m.String()); diff != "" {
				t.Fatalf("mapping mismatch (-want +got):\n%s", diff)
			}
			assert.True(t, m.IsReciprocal())
		})
	}
}

// TestAssociate_SelfIsNoOp: associate(m, a, a) leaves m bit-for-bit equal,
// for every a and for a non-trivial starting state.
func TestAssociate_SelfIsNoOp(t *testing.T) {
	base := expectPairs(t, "AE", "QT", "XZ")
	for _, l := range alphabet.Letters() {
		m := base
		require.NoError(t, m.Associate(l, l))
		assert.Equal(t, base, m, "letter %s", l)
	}
}

// TestAssociate_InvalidLeavesMappingUntouched covers the validation error.
func TestAssociate_InvalidLeavesMappingUntouched(t *testing.T) {
	base := expectPairs(t, "AB", "CD")
	for _, bad := range []struct{ a, b alphabet.Letter }{
		{'a', 'B'},
		{'A', '1'},
		{0, 'C'},
		{'[', '['},
	} {
		m := base
		err := m.Associate(bad.a, bad.b)
		assert.ErrorIs(t, err, mapping.ErrInvalidLetter)
		assert.ErrorIs(t, err, alphabet.ErrNotLetter)
		assert.Equal(t, base, m)
	}
}

func TestAssociateRunes_CaseInsensitive(t *testing.T) {
	m := mapping.Identity()
	require.NoError(t, m.AssociateRunes('q', 'E'))
	assert.Equal(t, alphabet.Letter('E'), m.Partner('Q'))

	before := m
	err := m.AssociateRunes('q', '7')
	assert.ErrorIs(t, err, mapping.ErrInvalidLetter)
	assert.Equal(t, before, m)
}

// TestAssociate_ValueForm checks the copy-returning variant leaves its input
// alone.
func TestAssociate_ValueForm(t *testing.T) {
	in := mapping.Identity()
	out, err := mapping.Associate(in, 'A', 'B')
	require.NoError(t, err)
	assert.Equal(t, mapping.Identity(), in)
	assert.Equal(t, alphabet.Letter('B'), out.Partner('A'))

	same, err := mapping.Associate(out, 'A', '!')
	assert.ErrorIs(t, err, mapping.ErrInvalidLetter)
	assert.Equal(t, out, same)
}

// TestInvariant_RandomOperationSequences drives long random sequences of
// Reset / Seed / Associate and checks the reciprocal invariant after every
// single call.
func TestInvariant_RandomOperationSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	letters := alphabet.Letters()
	m := mapping.Identity()

	for step := 0; step < 20000; step++ {
		switch op := rng.Intn(100); {
		case op == 0:
			m.Reset()
		case op == 1:
			ranked := append([]alphabet.Letter(nil), letters...)
			rng.Shuffle(len(ranked), func(i, j int) { ranked[i], ranked[j] = ranked[j], ranked[i] })
			policy := mapping.SelfPairPolicy(rng.Intn(2))
			require.NoError(t, m.Seed(ranked, letters, policy))
		default:
			a := letters[rng.Intn(len(letters))]
			b := letters[rng.Intn(len(letters))]
			require.NoError(t, m.Associate(a, b))
			require.Equal(t, b, m.Partner(a), "step %d: forced pair missing", step)
		}
		if !m.IsReciprocal() {
			t.Fatalf("step %d: invariant broken: %s", step, m)
		}
	}
}

// TestAssociate_Exhaustive tries every (a, b) on a fully paired mapping.
func TestAssociate_Exhaustive(t *testing.T) {
	base := expectPairs(t, "AB", "CD", "EF", "GH", "IJ", "KL", "MN", "OP", "QR", "ST", "UV", "WX", "YZ")
	for _, a := range alphabet.Letters() {
		for _, b := range alphabet.Letters() {
			m := base
			require.NoError(t, m.Associate(a, b))
			assert.True(t, m.IsReciprocal(), "%s %s", a, b)
			assert.Equal(t, b, m.Partner(a))
		}
	}
}
