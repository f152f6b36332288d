package gen

import (
	"math"

	"github.com/justanotherdot/hedgehog-sub000/seed"
	"github.com/justanotherdot/hedgehog-sub000/tree"
)

// simpleFloatCandidates are fixed "nice" values tried before falling back
// to arithmetic bisection — they converge a failing property onto a round
// number whenever one happens to also fail.
var simpleFloatCandidates = []float64{0.0, 1.0, -1.0, 0.5, -0.5}

// Float64Range generates a float64 uniformly within [min, max], shrinking
// toward origin (0.0 when in range, otherwise the nearer bound).
func Float64Range(min, max float64) Gen[float64] {
	return New(func(_ Size, s seed.Seed) tree.Tree[float64] {
		u, _ := s.NextFloat64()
		v := min + u*(max-min)
		return floatTree(v, min, max)
	})
}

func floatOrigin(min, max float64) float64 {
	if min <= 0 && 0 <= max {
		return 0
	}
	if math.Abs(min) < math.Abs(max) {
		return min
	}
	return max
}

func floatTree(v, min, max float64) tree.Tree[float64] {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return tree.Singleton(v)
	}
	origin := floatOrigin(min, max)
	seen := map[float64]bool{v: true}
	var children []func() tree.Tree[float64]
	push := func(candidate float64) {
		if candidate < min || candidate > max || seen[candidate] {
			return
		}
		seen[candidate] = true
		children = append(children, func() tree.Tree[float64] { return floatTree(candidate, min, max) })
	}

	if v != origin {
		push(origin)
	}
	for _, c := range simpleFloatCandidates {
		push(c)
	}
	diff := v - origin
	for i := 0; i < 10 && diff != 0; i++ {
		diff /= 2
		push(v - diff)
	}

	return tree.New(v, children)
}
