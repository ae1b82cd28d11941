package ssz

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlattenBasics(t *testing.T) {
	require.Empty(t, Flatten[int](nil))
	require.Empty(t, Flatten([][]int{}))
	require.Empty(t, Flatten([][]int{{}, {}}))
	require.Equal(t, []int{1, 2, 3}, Flatten([][]int{{1, 2}, {3}}))
	require.Equal(t, []string{"a", "b", "c"}, Flatten([][]string{{"a"}, {}, {"b", "c"}}))

	require.Equal(t, 0, FlattenLength[int](nil))
	require.Equal(t, 0, FlattenLength([][]int{{}, {}}))
	require.Equal(t, 3, FlattenLength([][]int{{1, 2}, {3}}))
}

func TestFlattenPreservesMultiplicity(t *testing.T) {
	got := Flatten([][]int{{7, 7}, {7}, {}, {7}})
	require.Equal(t, []int{7, 7, 7, 7}, got)
}

func randomSeqs(rng *rand.Rand) [][]byte {
	outer := rng.Intn(8)
	seqs := make([][]byte, outer)
	for i := range seqs {
		inner := make([]byte, rng.Intn(10))
		rng.Read(inner)
		seqs[i] = inner
	}
	return seqs
}

func TestFlattenSplitConcat(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 200; iter++ {
		a := randomSeqs(rng)
		b := randomSeqs(rng)
		both := append(append([][]byte{}, a...), b...)

		want := append(append([]byte{}, Flatten(a)...), Flatten(b)...)
		require.Equal(t, want, Flatten(both))
		require.Equal(t, FlattenLength(a)+FlattenLength(b), FlattenLength(both))
	}
}

func TestFlattenLengthMatchesFlatten(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for iter := 0; iter < 200; iter++ {
		seqs := randomSeqs(rng)
		require.Equal(t, len(Flatten(seqs)), FlattenLength(seqs))
	}
}

func TestPrefixMonotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for iter := 0; iter < 100; iter++ {
		seqs := randomSeqs(rng)
		prev := 0
		for i := 0; i <= len(seqs); i++ {
			cur := FlattenLength(seqs[:i])
			require.GreaterOrEqual(t, cur, prev, "prefix length must not shrink")
			require.LessOrEqual(t, cur, FlattenLength(seqs))
			prev = cur
		}
	}
}

func TestMembership(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	for iter := 0; iter < 50; iter++ {
		seqs := randomSeqs(rng)
		flat := Flatten(seqs)

		inInner := map[byte]bool{}
		for _, s := range seqs {
			for _, x := range s {
				inInner[x] = true
			}
		}
		inFlat := map[byte]bool{}
		for _, x := range flat {
			inFlat[x] = true
		}
		require.Equal(t, inInner, inFlat)
	}
}

func TestOffsetCorrespondenceConcrete(t *testing.T) {
	s := [][]int{{10, 11}, {20}, {30, 31, 32}}

	require.Equal(t, []int{10, 11, 20, 30, 31, 32}, Flatten(s))
	require.Equal(t, 3, FlattenLength(s[:2]))
	require.Equal(t, []int{0, 2, 3}, Offsets(s))

	off, err := OffsetAt(s, 2, 1)
	require.NoError(t, err)
	require.Equal(t, 4, off)
	require.Equal(t, s[2][1], Flatten(s)[off])
}

func TestOffsetCorrespondenceRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for iter := 0; iter < 100; iter++ {
		seqs := randomSeqs(rng)
		flat := Flatten(seqs)
		offs := Offsets(seqs)
		total := FlattenLength(seqs)

		for i := range seqs {
			require.Equal(t, FlattenLength(seqs[:i]), offs[i])
			for j := range seqs[i] {
				off, err := OffsetAt(seqs, i, j)
				require.NoError(t, err)
				require.Less(t, off, FlattenLength(seqs[:i+1]), "offset must stay inside inner sequence %d", i)
				require.Less(t, off, total)
				require.Equal(t, seqs[i][j], flat[off])
			}
		}
	}
}

func TestOffsetAtErrors(t *testing.T) {
	s := [][]int{{1}, {}}

	_, err := OffsetAt(s, -1, 0)
	require.Error(t, err)
	_, err = OffsetAt(s, 2, 0)
	require.Error(t, err)
	_, err = OffsetAt(s, 0, 1)
	require.Error(t, err)
	_, err = OffsetAt(s, 1, 0)
	require.Error(t, err, "empty inner sequence has no addressable element")

	off, err := OffsetAt(s, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, off)
}

func TestFlattenEncodedLeaves(t *testing.T) {
	leaves := []Value{
		BoolValue(true),
		Uint8Value(200),
		BitlistValue([]bool{true, false, true}),
		Bytes32Value([32]byte{0xAA}),
	}
	encoded := make([][]byte, len(leaves))
	for i, leaf := range leaves {
		enc, err := Serialize(leaf)
		require.NoError(t, err)
		encoded[i] = enc
	}

	buf := Flatten(encoded)
	require.Len(t, buf, FlattenLength(encoded))

	offs := Offsets(encoded)
	for i, leaf := range leaves {
		end := offs[i] + len(encoded[i])
		dec, err := Deserialize(buf[offs[i]:end], leaf.Type)
		require.NoError(t, err)
		require.True(t, Equal(leaf, dec), "leaf %d must be recoverable from its byte range", i)
	}
}
