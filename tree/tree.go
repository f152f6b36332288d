// Package tree implements the lazy rose trees that back shrinking. A
// Tree[T] pairs a generated value with a lazily-expanded sequence of
// "smaller" candidates, each itself a Tree. Children are stored as thunks
// so that a shrink search only pays for the branches it actually visits,
// which matters once a generator's shrink space is large or unbounded
// (slices, strings, recursive structures).
package tree

// Tree is a value together with a lazily-produced list of child trees, each
// representing a shrink candidate derived from the value.
type Tree[T any] struct {
	Value    T
	children []func() Tree[T]
}

// Singleton builds a Tree with no children — a value that cannot shrink
// further.
func Singleton[T any](value T) Tree[T] {
	return Tree[T]{Value: value}
}

// New builds a Tree from a value and a set of lazily-evaluated children.
func New[T any](value T, children []func() Tree[T]) Tree[T] {
	return Tree[T]{Value: value, children: children}
}

// Children forces and returns the receiver's immediate child trees.
func (t Tree[T]) Children() []Tree[T] {
	out := make([]Tree[T], len(t.children))
	for i, c := range t.children {
		out[i] = c()
	}
	return out
}

// HasShrinks reports whether the tree has any children to try.
func (t Tree[T]) HasShrinks() bool {
	return len(t.children) > 0
}

// Map transforms the value at every node of the tree with f, preserving
// structure.
func Map[A, B any](t Tree[A], f func(A) B) Tree[B] {
	children := make([]func() Tree[B], len(t.children))
	for i, c := range t.children {
		c := c
		children[i] = func() Tree[B] { return Map(c(), f) }
	}
	return Tree[B]{Value: f(t.Value), children: children}
}

// Bind threads the value at every node of the tree through f, which
// produces a new subtree. The children produced by f are expanded first
// (they represent smaller values close to the new root), followed by the
// original tree's children mapped through f — so shrinking prefers the
// bound generator's own candidates before falling back to the source
// generator's.
func Bind[A, B any](t Tree[A], f func(A) Tree[B]) Tree[B] {
	inner := f(t.Value)
	children := make([]func() Tree[B], 0, len(inner.children)+len(t.children))
	for _, c := range inner.children {
		children = append(children, c)
	}
	for _, c := range t.children {
		c := c
		children = append(children, func() Tree[B] { return Bind(c(), f) })
	}
	return Tree[B]{Value: inner.Value, children: children}
}

// Expand eagerly forces the tree down to maxDepth levels, which is useful
// for tests and rendering but defeats the laziness optimization — do not
// call it on generators with large shrink spaces.
func (t Tree[T]) Expand(maxDepth int) Tree[T] {
	if maxDepth <= 0 {
		return Tree[T]{Value: t.Value}
	}
	children := t.Children()
	out := make([]func() Tree[T], len(children))
	for i, c := range children {
		expanded := c.Expand(maxDepth - 1)
		out[i] = func() Tree[T] { return expanded }
	}
	return Tree[T]{Value: t.Value, children: out}
}

// Filter keeps only the subtrees whose value satisfies predicate. If the
// root itself fails the predicate, Filter reports ok=false. A child that
// fails is dropped together with its whole subtree, matching the standard
// rose-tree shrink-filter semantics.
func (t Tree[T]) Filter(predicate func(T) bool) (Tree[T], bool) {
	if !predicate(t.Value) {
		return Tree[T]{}, false
	}
	var kept []func() Tree[T]
	for _, c := range t.children {
		child := c()
		if !predicate(child.Value) {
			continue
		}
		kept = append(kept, func() Tree[T] {
			filtered, _ := child.Filter(predicate)
			return filtered
		})
	}
	return Tree[T]{Value: t.Value, children: kept}, true
}

// Shrinks returns every descendant value in breadth-first order — not just
// the immediate children. It forces the whole tree; the render package uses
// it for its flat and numbered listings.
func (t Tree[T]) Shrinks() []T {
	var out []T
	queue := t.Children()
	for len(queue) > 0 {
		head := queue[0]
		queue = queue[1:]
		out = append(out, head.Value)
		queue = append(queue, head.Children()...)
	}
	return out
}

// CountNodes returns the total number of nodes reachable from the
// receiver, including itself. It forces the whole tree, so use it only for
// diagnostics on trees already known to be small.
func (t Tree[T]) CountNodes() int {
	count := 1
	for _, c := range t.Children() {
		count += c.CountNodes()
	}
	return count
}

// Depth returns the length of the longest path from the receiver to a
// leaf. It forces the whole tree.
func (t Tree[T]) Depth() int {
	max := 0
	for _, c := range t.Children() {
		if d := c.Depth() + 1; d > max {
			max = d
		}
	}
	return max
}
