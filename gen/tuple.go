package gen

import (
	"github.com/justanotherdot/hedgehog-sub000/seed"
	"github.com/justanotherdot/hedgehog-sub000/tree"
)

// Pair is a generated 2-tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Tuple2 generates a Pair, shrinking one coordinate at a time while
// holding the other fixed.
func Tuple2[A, B any](ga Gen[A], gb Gen[B]) Gen[Pair[A, B]] {
	return New(func(size Size, s seed.Seed) tree.Tree[Pair[A, B]] {
		sa, sb := s.Split()
		return pairTree(ga.Generate(size, sa), gb.Generate(size, sb))
	})
}

func pairTree[A, B any](ta tree.Tree[A], tb tree.Tree[B]) tree.Tree[Pair[A, B]] {
	var children []func() tree.Tree[Pair[A, B]]
	for _, c := range ta.Children() {
		c := c
		children = append(children, func() tree.Tree[Pair[A, B]] { return pairTree(c, tb) })
	}
	for _, c := range tb.Children() {
		c := c
		children = append(children, func() tree.Tree[Pair[A, B]] { return pairTree(ta, c) })
	}
	return tree.New(Pair[A, B]{First: ta.Value, Second: tb.Value}, children)
}

// Triple is a generated 3-tuple.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Tuple3 generates a Triple, shrinking one coordinate at a time.
func Tuple3[A, B, C any](ga Gen[A], gb Gen[B], gc Gen[C]) Gen[Triple[A, B, C]] {
	return New(func(size Size, s seed.Seed) tree.Tree[Triple[A, B, C]] {
		s1, rest := s.Split()
		s2, s3 := rest.Split()
		return tripleTree(ga.Generate(size, s1), gb.Generate(size, s2), gc.Generate(size, s3))
	})
}

func tripleTree[A, B, C any](ta tree.Tree[A], tb tree.Tree[B], tc tree.Tree[C]) tree.Tree[Triple[A, B, C]] {
	var children []func() tree.Tree[Triple[A, B, C]]
	for _, c := range ta.Children() {
		c := c
		children = append(children, func() tree.Tree[Triple[A, B, C]] { return tripleTree(c, tb, tc) })
	}
	for _, c := range tb.Children() {
		c := c
		children = append(children, func() tree.Tree[Triple[A, B, C]] { return tripleTree(ta, c, tc) })
	}
	for _, c := range tc.Children() {
		c := c
		children = append(children, func() tree.Tree[Triple[A, B, C]] { return tripleTree(ta, tb, c) })
	}
	return tree.New(Triple[A, B, C]{First: ta.Value, Second: tb.Value, Third: tc.Value}, children)
}

// Quad is a generated 4-tuple.
type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Tuple4 generates a Quad, shrinking one coordinate at a time.
func Tuple4[A, B, C, D any](ga Gen[A], gb Gen[B], gc Gen[C], gd Gen[D]) Gen[Quad[A, B, C, D]] {
	return New(func(size Size, s seed.Seed) tree.Tree[Quad[A, B, C, D]] {
		s1, rest1 := s.Split()
		s2, rest2 := rest1.Split()
		s3, s4 := rest2.Split()
		return quadTree(ga.Generate(size, s1), gb.Generate(size, s2), gc.Generate(size, s3), gd.Generate(size, s4))
	})
}

func quadTree[A, B, C, D any](ta tree.Tree[A], tb tree.Tree[B], tc tree.Tree[C], td tree.Tree[D]) tree.Tree[Quad[A, B, C, D]] {
	var children []func() tree.Tree[Quad[A, B, C, D]]
	for _, c := range ta.Children() {
		c := c
		children = append(children, func() tree.Tree[Quad[A, B, C, D]] { return quadTree(c, tb, tc, td) })
	}
	for _, c := range tb.Children() {
		c := c
		children = append(children, func() tree.Tree[Quad[A, B, C, D]] { return quadTree(ta, c, tc, td) })
	}
	for _, c := range tc.Children() {
		c := c
		children = append(children, func() tree.Tree[Quad[A, B, C, D]] { return quadTree(ta, tb, c, td) })
	}
	for _, c := range td.Children() {
		c := c
		children = append(children, func() tree.Tree[Quad[A, B, C, D]] { return quadTree(ta, tb, tc, c) })
	}
	return tree.New(Quad[A, B, C, D]{First: ta.Value, Second: tb.Value, Third: tc.Value, Fourth: td.Value}, children)
}

// Quint is a generated 5-tuple.
type Quint[A, B, C, D, E any] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
}

// Tuple5 generates a Quint, shrinking one coordinate at a time.
func Tuple5[A, B, C, D, E any](ga Gen[A], gb Gen[B], gc Gen[C], gd Gen[D], ge Gen[E]) Gen[Quint[A, B, C, D, E]] {
	return New(func(size Size, s seed.Seed) tree.Tree[Quint[A, B, C, D, E]] {
		s1, rest1 := s.Split()
		s2, rest2 := rest1.Split()
		s3, rest3 := rest2.Split()
		s4, s5 := rest3.Split()
		return quintTree(
			ga.Generate(size, s1), gb.Generate(size, s2), gc.Generate(size, s3),
			gd.Generate(size, s4), ge.Generate(size, s5),
		)
	})
}

func quintTree[A, B, C, D, E any](
	ta tree.Tree[A], tb tree.Tree[B], tc tree.Tree[C], td tree.Tree[D], te tree.Tree[E],
) tree.Tree[Quint[A, B, C, D, E]] {
	var children []func() tree.Tree[Quint[A, B, C, D, E]]
	for _, c := range ta.Children() {
		c := c
		children = append(children, func() tree.Tree[Quint[A, B, C, D, E]] { return quintTree(c, tb, tc, td, te) })
	}
	for _, c := range tb.Children() {
		c := c
		children = append(children, func() tree.Tree[Quint[A, B, C, D, E]] { return quintTree(ta, c, tc, td, te) })
	}
	for _, c := range tc.Children() {
		c := c
		children = append(children, func() tree.Tree[Quint[A, B, C, D, E]] { return quintTree(ta, tb, c, td, te) })
	}
	for _, c := range td.Children() {
		c := c
		children = append(children, func() tree.Tree[Quint[A, B, C, D, E]] { return quintTree(ta, tb, tc, c, te) })
	}
	for _, c := range te.Children() {
		c := c
		children = append(children, func() tree.Tree[Quint[A, B, C, D, E]] { return quintTree(ta, tb, tc, td, c) })
	}
	return tree.New(Quint[A, B, C, D, E]{First: ta.Value, Second: tb.Value, Third: tc.Value, Fourth: td.Value, Fifth: te.Value}, children)
}
