package ssz

import "fmt"

// Flatten concatenates the inner sequences of seqs in order, preserving
// element order and multiplicity.
func Flatten[T any](seqs [][]T) []T {
	out := make([]T, 0, FlattenLength(seqs))
	for _, s := range seqs {
		out = append(out, s...)
	}
	return out
}

// FlattenLength returns len(Flatten(seqs)) without materializing the
// concatenation. Composite encoders use it to place several encoded
// leaves into one buffer and compute each leaf's byte range up front.
func FlattenLength[T any](seqs [][]T) int {
	total := 0
	for _, s := range seqs {
		total += len(s)
	}
	return total
}

// Offsets returns the start offset of every inner sequence inside
// Flatten(seqs). Offsets(seqs)[i] == FlattenLength(seqs[:i]).
func Offsets[T any](seqs [][]T) []int {
	out := make([]int, len(seqs))
	total := 0
	for i, s := range seqs {
		out[i] = total
		total += len(s)
	}
	return out
}

// OffsetAt returns the global index of seqs[i][j] inside Flatten(seqs):
// FlattenLength(seqs[:i]) + j. The result never overlaps a neighboring
// inner sequence.
func OffsetAt[T any](seqs [][]T, i, j int) (int, error) {
	if i < 0 || i >= len(seqs) {
		return 0, fmt.Errorf("outer index %d out of range [0,%d)", i, len(seqs))
	}
	if j < 0 || j >= len(seqs[i]) {
		return 0, fmt.Errorf("inner index %d out of range [0,%d)", j, len(seqs[i]))
	}
	return FlattenLength(seqs[:i]) + j, nil
}
