// Package render turns shrink trees into diagnostic text (and, optionally,
// SVG) for humans debugging a failing property. None of it participates in
// generation or shrinking — it only formats values the rest of the module
// already produced.
package render

import (
	"fmt"
	"strings"

	"github.com/justanotherdot/hedgehog-sub000/tree"
)

// Tree renders the full tree structure using box-drawing characters, one
// line per node.
func Tree[T any](t tree.Tree[T]) string {
	var b strings.Builder
	renderRecursive(&b, t, "", true)
	return b.String()
}

func renderRecursive[T any](b *strings.Builder, t tree.Tree[T], prefix string, isLast bool) {
	b.WriteString(prefix)
	if isLast {
		b.WriteString("└── ")
	} else {
		b.WriteString("├── ")
	}
	fmt.Fprintf(b, "%v\n", t.Value)

	childPrefix := prefix + "│   "
	if isLast {
		childPrefix = prefix + "    "
	}
	children := t.Children()
	for i, c := range children {
		renderRecursive(b, c, childPrefix, i == len(children)-1)
	}
}

// Compact renders the tree on a single line, e.g. "10[5[2], 0]".
func Compact[T any](t tree.Tree[T]) string {
	children := t.Children()
	if len(children) == 0 {
		return fmt.Sprintf("%v", t.Value)
	}
	parts := make([]string, len(children))
	for i, c := range children {
		parts[i] = Compact(c)
	}
	return fmt.Sprintf("%v[%s]", t.Value, strings.Join(parts, ", "))
}

// Shrinks renders the flat breadth-first shrink sequence, e.g.
// "10 → [5, 0, 2]".
func Shrinks[T any](t tree.Tree[T]) string {
	shrinks := t.Shrinks()
	if len(shrinks) == 0 {
		return fmt.Sprintf("%v (no shrinks)", t.Value)
	}
	parts := make([]string, len(shrinks))
	for i, v := range shrinks {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return fmt.Sprintf("%v → [%s]", t.Value, strings.Join(parts, ", "))
}

// Numbered renders the shrink sequence as a numbered list, convenient for
// pointing at a specific shrink step in a bug report.
func Numbered[T any](t tree.Tree[T]) string {
	shrinks := t.Shrinks()
	if len(shrinks) == 0 {
		return fmt.Sprintf("%v (no shrinks)", t.Value)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Original: %v\nShrinks:\n", t.Value)
	for i, v := range shrinks {
		fmt.Fprintf(&b, "  %d: %v\n", i+1, v)
	}
	return b.String()
}
