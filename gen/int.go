package gen

import (
	"github.com/justanotherdot/hedgehog-sub000/seed"
	"github.com/justanotherdot/hedgehog-sub000/tree"
)

// Int generates an integer from the given Range, shrinking toward the
// Range's origin.
//
// Shrink candidates are the bisection-toward-origin sequence (origin
// first, then successively finer halves of the remaining distance),
// followed by a binary-search midpoint walk between the value and the
// origin to accelerate convergence on wide ranges. Every candidate is
// clipped to [Min, Max] and emitted as a singleton child, so shrinking a
// shrink candidate re-derives its own sequence from its own value.
func Int(r Range) Gen[int] {
	return New(func(_ Size, s seed.Seed) tree.Tree[int] {
		v, _ := r.Sample(s)
		return intTree(v, r)
	})
}

func intTree(v int, r Range) tree.Tree[int] {
	origin := clampInt(r.Origin(), r.Min, r.Max)
	children := intShrinkChildren(v, origin, r)
	return tree.New(v, children)
}

func intShrinkChildren(v, origin int, r Range) []func() tree.Tree[int] {
	if v == origin {
		return nil
	}
	seen := map[int]bool{v: true}
	var out []func() tree.Tree[int]
	push := func(candidate int) {
		candidate = clampInt(candidate, r.Min, r.Max)
		if seen[candidate] {
			return
		}
		seen[candidate] = true
		out = append(out, func() tree.Tree[int] { return intTree(candidate, r) })
	}

	for _, c := range towards(origin, v) {
		push(c)
	}

	low, high := minInt(origin, v), maxInt(origin, v)
	for high-low > 1 {
		mid := low + (high-low)/2
		if mid != v {
			push(mid)
		}
		if v < mid {
			high = mid
		} else {
			low = mid
		}
	}

	return out
}

// IntRange is sugar for Int(NewRange(min, max)).
func IntRange(min, max int) Gen[int] {
	return Int(NewRange(min, max))
}
