// Package gen provides generators for property-based testing. A Gen[T] is
// a function from (Size, Seed) to a lazy Tree[T]: the tree's root is the
// generated value, and its children are candidate "smaller" values a
// shrink search may fall back to when the root causes a failure.
package gen

import (
	"fmt"

	"github.com/justanotherdot/hedgehog-sub000/seed"
	"github.com/justanotherdot/hedgehog-sub000/tree"
)

// Size bounds the scale of generated structures (collection length, integer
// magnitude, and so on). Zero must produce minimal structures.
type Size struct {
	value int
}

// NewSize builds a Size, clamping negative inputs to zero.
func NewSize(v int) Size {
	if v < 0 {
		v = 0
	}
	return Size{value: v}
}

// Get returns the underlying magnitude.
func (s Size) Get() int { return s.value }

// Gen is a first-class generator: given a Size and a Seed it deterministically
// produces a Tree of values, largest (least-shrunk) value at the root.
type Gen[T any] struct {
	run func(Size, seed.Seed) tree.Tree[T]
}

// New builds a Gen from its generating function.
func New[T any](run func(Size, seed.Seed) tree.Tree[T]) Gen[T] {
	return Gen[T]{run: run}
}

// Generate runs the generator, producing its shrink tree.
func (g Gen[T]) Generate(size Size, s seed.Seed) tree.Tree[T] {
	return g.run(size, s)
}

// Sample draws one value using a fixed, convenient (Size, Seed) pair —
// handy for interactive exploration when a single representative value is
// wanted rather than a reproducible series.
func (g Gen[T]) Sample() T {
	return g.run(NewSize(30), seed.FromUint64(1337)).Value
}

// Constant always returns v with no shrink children.
func Constant[T any](v T) Gen[T] {
	return New(func(Size, seed.Seed) tree.Tree[T] {
		return tree.Singleton(v)
	})
}

// Map transforms every generated value (and every shrink candidate) with f.
func Map[A, B any](g Gen[A], f func(A) B) Gen[B] {
	return New(func(size Size, s seed.Seed) tree.Tree[B] {
		return tree.Map(g.Generate(size, s), f)
	})
}

// Bind threads a generated value through f to build a dependent generator.
// The seed is split so the two generation phases draw from independent
// streams; the resulting tree prefers shrinking within f's generator
// before falling back to re-deriving from a shrunk source value.
func Bind[A, B any](g Gen[A], f func(A) Gen[B]) Gen[B] {
	return New(func(size Size, s seed.Seed) tree.Tree[B] {
		s1, s2 := s.Split()
		t := g.Generate(size, s1)
		return tree.Bind(t, func(a A) tree.Tree[B] {
			return f(a).Generate(size, s2)
		})
	})
}

// Filter retries the generator up to maxTries times until the predicate
// holds, shrinking the surviving subtree with the predicate as a guard so
// every emitted shrink candidate also satisfies it. If every attempt fails
// the predicate, it falls back to returning the last generated value as an
// unshrinkable singleton, matching the tolerant behavior spec.md allows.
func Filter[T any](g Gen[T], predicate func(T) bool, maxTries int) Gen[T] {
	return New(func(size Size, s seed.Seed) tree.Tree[T] {
		current := s
		var last tree.Tree[T]
		for i := 0; i < maxTries; i++ {
			var trial seed.Seed
			trial, current = current.Split()
			t := g.Generate(size, trial)
			last = t
			if filtered, ok := t.Filter(predicate); ok {
				return filtered
			}
		}
		return tree.Singleton(last.Value)
	})
}

// WeightedChoice pairs a non-negative weight with a generator for use with
// Frequency.
type WeightedChoice[T any] struct {
	Weight    float64
	Generator Gen[T]
}

// Frequency selects among generators with probability proportional to
// their weight. It returns an error if choices is empty or every weight is
// zero — both are InvalidGenerator conditions per the construction-time
// error tier.
func Frequency[T any](choices ...WeightedChoice[T]) (Gen[T], error) {
	if len(choices) == 0 {
		return Gen[T]{}, fmt.Errorf("gen: frequency choices list cannot be empty")
	}
	total := 0.0
	for _, c := range choices {
		total += c.Weight
	}
	if total <= 0 {
		return Gen[T]{}, fmt.Errorf("gen: frequency total weight cannot be zero")
	}
	return New(func(size Size, s seed.Seed) tree.Tree[T] {
		pick, next := s.NextFloat64()
		target := pick * total
		cumulative := 0.0
		for _, c := range choices {
			cumulative += c.Weight
			if target < cumulative {
				return c.Generator.Generate(size, next)
			}
		}
		return choices[len(choices)-1].Generator.Generate(size, next)
	}), nil
}

// OneOf selects uniformly among generators; it is Frequency with equal
// weights.
func OneOf[T any](gens ...Gen[T]) (Gen[T], error) {
	choices := make([]WeightedChoice[T], len(gens))
	for i, g := range gens {
		choices[i] = WeightedChoice[T]{Weight: 1, Generator: g}
	}
	return Frequency(choices...)
}

// Bool generates a uniformly distributed boolean, shrinking true toward
// false.
func Bool() Gen[bool] {
	return New(func(_ Size, s seed.Seed) tree.Tree[bool] {
		v, _ := s.NextBool()
		if !v {
			return tree.Singleton(false)
		}
		return tree.New(true, []func() tree.Tree[bool]{
			func() tree.Tree[bool] { return tree.Singleton(false) },
		})
	})
}

// towards produces the canonical bisection-toward-destination shrink
// sequence: destination first, then halves of the remaining distance,
// stopping short of reproducing x itself or the destination twice.
func towards(destination, x int) []int {
	if destination == x {
		return nil
	}
	out := []int{destination}
	diff := x - destination
	for diff != 0 {
		diff /= 2
		candidate := x - diff
		if candidate != x && (len(out) == 0 || candidate != out[len(out)-1]) {
			out = append(out, candidate)
		}
		if diff == 0 {
			break
		}
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
