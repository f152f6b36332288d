package gen

import (
	"testing"

	"github.com/justanotherdot/hedgehog-sub000/seed"
)

func TestGenerateIsDeterministic(t *testing.T) {
	g := IntRange(-100, 100)
	s := seed.FromUint64(42)
	size := NewSize(30)

	a := g.Generate(size, s)
	b := g.Generate(size, s)

	if a.Value != b.Value {
		t.Fatalf("same (size, seed) produced different values: %v vs %v", a.Value, b.Value)
	}
}

func TestMapComposition(t *testing.T) {
	g := IntRange(0, 50)
	s := seed.FromUint64(7)
	size := NewSize(20)

	f := func(x int) int { return x + 1 }
	h := func(x int) int { return x * 2 }

	left := Map(Map(g, f), h)
	right := Map(g, func(x int) int { return h(f(x)) })

	lv := left.Generate(size, s).Value
	rv := right.Generate(size, s).Value
	if lv != rv {
		t.Fatalf("map composition mismatch: %v vs %v", lv, rv)
	}
}

func TestBindAssociativity(t *testing.T) {
	g := IntRange(0, 10)
	f := func(x int) Gen[int] { return IntRange(x, x+10) }
	h := func(x int) Gen[int] { return Constant(x * 2) }

	left := Bind(Bind(g, f), h)
	right := Bind(g, func(x int) Gen[int] { return Bind(f(x), h) })

	s := seed.FromUint64(99)
	size := NewSize(15)

	lv := left.Generate(size, s).Value
	rv := right.Generate(size, s).Value
	if lv != rv {
		t.Fatalf("bind associativity mismatch: %v vs %v", lv, rv)
	}
}

func TestFrequencyEmptyIsInvalid(t *testing.T) {
	if _, err := Frequency[int](); err == nil {
		t.Fatal("expected error for empty frequency list")
	}
}

func TestFrequencyZeroWeightIsInvalid(t *testing.T) {
	_, err := Frequency(
		WeightedChoice[int]{Weight: 0, Generator: Constant(1)},
		WeightedChoice[int]{Weight: 0, Generator: Constant(2)},
	)
	if err == nil {
		t.Fatal("expected error when every weight is zero")
	}
}

func TestFilterPruning(t *testing.T) {
	g := Filter(IntRange(0, 100), func(x int) bool { return x%2 == 0 }, 50)
	s := seed.FromUint64(3)
	size := NewSize(40)

	tr := g.Generate(size, s)
	if tr.Value%2 != 0 {
		t.Fatalf("filter did not prune odd value %d", tr.Value)
	}
	for _, c := range tr.Children() {
		if c.Value%2 != 0 {
			t.Errorf("filter shrink child %d violates predicate", c.Value)
		}
	}
}

func TestIntRangeBounds(t *testing.T) {
	g := IntRange(-5, 5)
	for i := uint64(0); i < 200; i++ {
		tr := g.Generate(NewSize(10), seed.FromUint64(i))
		if tr.Value < -5 || tr.Value > 5 {
			t.Fatalf("value %d out of range [-5,5]", tr.Value)
		}
	}
}

func TestIntOriginInShrinks(t *testing.T) {
	r := NewRange(-100, 100).WithOrigin(0)
	g := Int(r)
	tr := g.Generate(NewSize(50), seed.FromUint64(11))
	if tr.Value == 0 {
		return
	}
	found := false
	for _, c := range tr.Children() {
		if c.Value == 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("origin 0 not found among shrink children of %d", tr.Value)
	}
}
