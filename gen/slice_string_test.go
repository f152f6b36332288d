package gen

import (
	"testing"

	"github.com/justanotherdot/hedgehog-sub000/seed"
)

func TestSliceShrinkLengthMonotonic(t *testing.T) {
	g := SliceOf(IntRange(0, 10), NewSize(8))
	tr := g.Generate(NewSize(8), seed.FromUint64(5))
	for _, c := range tr.Children() {
		if len(c.Value) > len(tr.Value) {
			t.Fatalf("shrink child length %d exceeds parent length %d", len(c.Value), len(tr.Value))
		}
	}
}

func TestStringShrinkLengthMonotonic(t *testing.T) {
	g := StringAlpha(NewSize(12))
	tr := g.Generate(NewSize(12), seed.FromUint64(9))
	for _, c := range tr.Children() {
		if len(c.Value) > len(tr.Value) {
			t.Fatalf("shrink child length %d exceeds parent length %d", len(c.Value), len(tr.Value))
		}
	}
}

func TestStringEmptyHasNoShrinks(t *testing.T) {
	g := StringAlpha(NewSize(0))
	tr := g.Generate(NewSize(0), seed.FromUint64(1))
	if tr.Value != "" {
		t.Fatalf("expected empty string at size 0, got %q", tr.Value)
	}
	if tr.HasShrinks() {
		t.Fatalf("empty string should have no shrinks")
	}
}

func TestOptionShrinksToNone(t *testing.T) {
	g := OptionOf(IntRange(1, 50))
	tr := g.Generate(NewSize(10), seed.FromUint64(2))
	if !tr.Value.Present {
		return
	}
	found := false
	for _, c := range tr.Children() {
		if !c.Value.Present {
			found = true
		}
	}
	if !found {
		t.Fatal("Some(v) must shrink to None")
	}
}

func TestResultErrShrinksToOk(t *testing.T) {
	okGen := IntRange(0, 10)
	errGen := StringAlpha(NewSize(5))
	g := ResultOf[int, string](okGen, errGen, 1, 1)

	for i := uint64(0); i < 50; i++ {
		tr := g.Generate(NewSize(5), seed.FromUint64(i))
		if tr.Value.IsOk {
			continue
		}
		found := false
		for _, c := range tr.Children() {
			if c.Value.IsOk {
				found = true
			}
		}
		if !found {
			t.Fatal("Err(e) must shrink to at least one Ok(_)")
		}
		return
	}
}
