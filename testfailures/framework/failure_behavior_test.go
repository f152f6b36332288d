//go:build demo
// +build demo

// Package framework contains tests that verify the framework's behavior
// when properties fail intentionally. These tests ensure that the library
// correctly drives generation, failure reporting, and shrinking.
package framework

import (
	"testing"

	"github.com/justanotherdot/hedgehog-sub000/gen"
	"github.com/justanotherdot/hedgehog-sub000/prop"
	"github.com/justanotherdot/hedgehog-sub000/seed"
	"github.com/justanotherdot/hedgehog-sub000/tree"
)

// constWithShrinks builds a generator that always produces value and whose
// shrink tree walks down through steps (value-1, value-2, ..., 0),
// regardless of the size or seed passed in — useful for exercising the
// shrink-search path deterministically.
func constWithShrinks(value int) gen.Gen[int] {
	return gen.New(func(_ gen.Size, _ seed.Seed) tree.Tree[int] {
		return stepDownTree(value)
	})
}

func stepDownTree(value int) tree.Tree[int] {
	if value <= 0 {
		return tree.Singleton(0)
	}
	return tree.New(value, []func() tree.Tree[int]{
		func() tree.Tree[int] { return stepDownTree(value - 1) },
	})
}

// TestForAll_SequentialFailureCodePath verifies that the framework reports
// a failure when the body always fails, even with no shrink candidates.
func TestForAll_SequentialFailureCodePath(t *testing.T) {
	cfg := prop.Default().WithTests(1).WithShrinks(2)
	prop.Check(t, cfg, gen.Constant(42), func(t *testing.T, val int) {
		t.Errorf("this should fail: got %d", val)
	})
}

// TestForAll_SequentialFailureWithShrinking verifies that the framework
// walks the shrink tree toward a minimal counterexample when every
// generated value fails.
func TestForAll_SequentialFailureWithShrinking(t *testing.T) {
	cfg := prop.Default().WithTests(1).WithShrinks(10)
	prop.Check(t, cfg, constWithShrinks(5), func(t *testing.T, val int) {
		t.Errorf("this should fail: got %d", val)
	})
}
