package gen

import (
	"github.com/justanotherdot/hedgehog-sub000/seed"
	"github.com/justanotherdot/hedgehog-sub000/tree"
)

// Option is the generated counterpart of Rust's Option<T>: Value is
// meaningful only when Present is true.
type Option[T any] struct {
	Value   T
	Present bool
}

// Some wraps v as a present Option.
func Some[T any](v T) Option[T] { return Option[T]{Value: v, Present: true} }

// None is the absent Option.
func None[T any]() Option[T] { return Option[T]{} }

// OptionOf generates Some(v) about half the time and None the rest.
// Shrinking always tries None first, then Some(v') for each shrink
// candidate v' of the wrapped value.
func OptionOf[T any](g Gen[T]) Gen[Option[T]] {
	return New(func(size Size, s seed.Seed) tree.Tree[Option[T]] {
		present, next := s.NextBool()
		if !present {
			return tree.Singleton(None[T]())
		}
		inner := g.Generate(size, next)
		return optionTree(inner)
	})
}

func optionTree[T any](inner tree.Tree[T]) tree.Tree[Option[T]] {
	children := []func() tree.Tree[Option[T]]{
		func() tree.Tree[Option[T]] { return tree.Singleton(None[T]()) },
	}
	for _, c := range inner.Children() {
		c := c
		children = append(children, func() tree.Tree[Option[T]] { return optionTree(c) })
	}
	return tree.New(Some(inner.Value), children)
}

// Result is the generated counterpart of Rust's Result<T, E>.
type Result[T, E any] struct {
	Ok    T
	Err   E
	IsOk  bool
}

// Ok wraps v as a successful Result.
func Ok[T, E any](v T) Result[T, E] { return Result[T, E]{Ok: v, IsOk: true} }

// Err wraps e as a failed Result.
func Err[T, E any](e E) Result[T, E] { return Result[T, E]{Err: e} }

// ResultOf generates an Ok most of the time and an Err occasionally,
// weighted by okWeight:errWeight. An Err shrinks first to Ok(v0) where v0
// is okGen's minimal-size sample, then to Err(e') for each shrink of e.
func ResultOf[T, E any](okGen Gen[T], errGen Gen[E], okWeight, errWeight float64) Gen[Result[T, E]] {
	return New(func(size Size, s seed.Seed) tree.Tree[Result[T, E]] {
		total := okWeight + errWeight
		pick, next := s.NextFloat64()
		if pick*total < okWeight {
			return resultOkTree[T, E](okGen.Generate(size, next))
		}
		minimal := okGen.Generate(NewSize(0), next).Value
		return resultErrTree(minimal, errGen.Generate(size, next))
	})
}

func resultOkTree[T, E any](inner tree.Tree[T]) tree.Tree[Result[T, E]] {
	var children []func() tree.Tree[Result[T, E]]
	for _, c := range inner.Children() {
		c := c
		children = append(children, func() tree.Tree[Result[T, E]] { return resultOkTree[T, E](c) })
	}
	return tree.New(Ok[T, E](inner.Value), children)
}

func resultErrTree[T, E any](okFallback T, inner tree.Tree[E]) tree.Tree[Result[T, E]] {
	children := []func() tree.Tree[Result[T, E]]{
		func() tree.Tree[Result[T, E]] { return tree.Singleton(Ok[T, E](okFallback)) },
	}
	for _, c := range inner.Children() {
		c := c
		children = append(children, func() tree.Tree[Result[T, E]] { return resultErrTree(okFallback, c) })
	}
	return tree.New(Err[T, E](inner.Value), children)
}
