package gen

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/justanotherdot/hedgehog-sub000/seed"
)

// TestMetaIntRangeBounds drives IntRange's own bounds through rapid,
// picking the range and the sampling seed as meta-inputs, to check the
// invariant at a much wider spread of (range, seed) pairs than a table of
// fixed examples would cover.
func TestMetaIntRangeBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		lo := rapid.IntRange(-1000, 1000).Draw(rt, "lo")
		span := rapid.IntRange(0, 2000).Draw(rt, "span")
		hi := lo + span
		rawSeed := rapid.Uint64().Draw(rt, "seed")

		g := IntRange(lo, hi)
		tr := g.Generate(NewSize(30), seed.FromUint64(rawSeed))
		if tr.Value < lo || tr.Value > hi {
			rt.Fatalf("value %d outside [%d,%d]", tr.Value, lo, hi)
		}
		for _, c := range tr.Children() {
			if c.Value < lo || c.Value > hi {
				rt.Fatalf("shrink child %d outside [%d,%d]", c.Value, lo, hi)
			}
		}
	})
}

// TestMetaDeterminism checks that any (Size, Seed) pair reproduces the
// same IntRange value across repeated calls.
func TestMetaDeterminism(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		rawSeed := rapid.Uint64().Draw(rt, "seed")
		size := rapid.IntRange(0, 100).Draw(rt, "size")

		g := IntRange(0, 1000)
		s := seed.FromUint64(rawSeed)
		first := g.Generate(NewSize(size), s).Value
		second := g.Generate(NewSize(size), s).Value
		if first != second {
			rt.Fatalf("same (size, seed) produced %d then %d", first, second)
		}
	})
}

// TestMetaSliceShrinkMonotone checks that every shrink child of a
// generated slice is no longer than its parent, across a range of element
// ranges and sizes.
func TestMetaSliceShrinkMonotone(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		size := rapid.IntRange(0, 20).Draw(rt, "size")
		rawSeed := rapid.Uint64().Draw(rt, "seed")

		g := SliceOf(IntRange(0, 50), NewSize(size))
		tr := g.Generate(NewSize(size), seed.FromUint64(rawSeed))
		for _, c := range tr.Children() {
			if len(c.Value) > len(tr.Value) {
				rt.Fatalf("shrink child length %d exceeds parent length %d", len(c.Value), len(tr.Value))
			}
		}
	})
}
