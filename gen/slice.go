package gen

import (
	"github.com/justanotherdot/hedgehog-sub000/seed"
	"github.com/justanotherdot/hedgehog-sub000/tree"
)

// SliceOf generates a slice of elem, whose length is drawn uniformly from
// [0, size.Get()].
//
// Shrinking first tries removing contiguous blocks (length, length/2, …,
// 1 elements at a time), then substitutes a single element with one of
// that element's own shrink candidates, preserving the slice's length so
// structural shrinking and per-element shrinking both get a turn.
func SliceOf[T any](elem Gen[T], size Size) Gen[[]T] {
	return New(func(_ Size, s seed.Seed) tree.Tree[[]T] {
		lengthSeed, elemSeed := s.Split()
		length, _ := lengthSeed.NextBounded(uint64(size.Get()) + 1)

		values := make([]T, length)
		elemTrees := make([]tree.Tree[T], length)
		cur := elemSeed
		for i := range values {
			var elemSplit seed.Seed
			elemSplit, cur = cur.Split()
			t := elem.Generate(size, elemSplit)
			elemTrees[i] = t
			values[i] = t.Value
		}

		return sliceTree(values, elemTrees)
	})
}

func sliceTree[T any](values []T, elemTrees []tree.Tree[T]) tree.Tree[[]T] {
	children := blockRemovalChildren(values, elemTrees)
	children = append(children, elementWiseChildren(values, elemTrees)...)
	return tree.New(append([]T(nil), values...), children)
}

func blockRemovalChildren[T any](values []T, elemTrees []tree.Tree[T]) []func() tree.Tree[[]T] {
	n := len(values)
	var out []func() tree.Tree[[]T]
	for chunk := n; chunk > 0; chunk /= 2 {
		for start := 0; start+chunk <= n; start += chunk {
			start := start
			candidateVals := removeSlice(values, start, chunk)
			candidateTrees := removeSlice(elemTrees, start, chunk)
			out = append(out, func() tree.Tree[[]T] { return sliceTree(candidateVals, candidateTrees) })
		}
		if chunk == 1 {
			break
		}
	}
	return out
}

func removeSlice[T any](s []T, start, count int) []T {
	out := make([]T, 0, len(s)-count)
	out = append(out, s[:start]...)
	out = append(out, s[start+count:]...)
	return out
}

func elementWiseChildren[T any](values []T, elemTrees []tree.Tree[T]) []func() tree.Tree[[]T] {
	var out []func() tree.Tree[[]T]
	for i := range values {
		i := i
		for _, c := range elemTrees[i].Children() {
			child := c
			out = append(out, func() tree.Tree[[]T] {
				newValues := append([]T(nil), values...)
				newValues[i] = child.Value
				newTrees := append([]tree.Tree[T](nil), elemTrees...)
				newTrees[i] = child
				return sliceTree(newValues, newTrees)
			})
		}
	}
	return out
}
