package gen

import (
	"math"

	"github.com/justanotherdot/hedgehog-sub000/seed"
)

// DistributionKind selects how a Range maps a draw to an offset within its
// span.
type DistributionKind int

const (
	// DistUniform spreads offsets evenly across the range.
	DistUniform DistributionKind = iota
	// DistLinear biases toward the low end of the range.
	DistLinear
	// DistExponential biases strongly toward the low end.
	DistExponential
	// DistConstant always selects the low end.
	DistConstant
)

// exponentialPower controls how sharply DistExponential concentrates mass
// near the low end; higher values push more than half the mass into the
// lowest quartile.
const exponentialPower = 3

// sampleOffset maps a uniform seed draw to an offset in [0, size) according
// to kind.
func sampleOffset(kind DistributionKind, size uint64, s seed.Seed) (uint64, seed.Seed) {
	if size == 0 {
		return 0, s
	}
	switch kind {
	case DistConstant:
		return 0, s
	case DistLinear:
		u, next := s.NextFloat64()
		offset := float64(size) * (1 - math.Sqrt(u))
		return clampOffset(offset, size), next
	case DistExponential:
		u, next := s.NextFloat64()
		powered := 1.0
		for i := 0; i < exponentialPower; i++ {
			powered *= u
		}
		offset := float64(size) * powered
		return clampOffset(offset, size), next
	default:
		return s.NextBounded(size)
	}
}

func clampOffset(offset float64, size uint64) uint64 {
	if offset < 0 {
		return 0
	}
	o := uint64(offset)
	if o >= size {
		return size - 1
	}
	return o
}

// Range describes a bounded integer span with an optional explicit shrink
// target (origin) and a sampling shape.
type Range struct {
	Min, Max     int
	origin       int
	hasOrigin    bool
	distribution DistributionKind
}

// NewRange builds a uniformly-sampled Range over [min, max].
func NewRange(min, max int) Range {
	return Range{Min: min, Max: max, distribution: DistUniform}
}

// Linear builds a Range biased toward min.
func Linear(min, max int) Range {
	return Range{Min: min, Max: max, distribution: DistLinear}
}

// Exponential builds a Range strongly biased toward min.
func Exponential(min, max int) Range {
	return Range{Min: min, Max: max, distribution: DistExponential}
}

// ConstantRange always samples min.
func ConstantRange(v int) Range {
	return Range{Min: v, Max: v, distribution: DistConstant}
}

// Positive is the Range of strictly positive ints, linearly biased toward 1.
func Positive() Range { return Linear(1, 1<<30) }

// Natural is the Range of non-negative ints, linearly biased toward 0.
func Natural() Range { return Linear(0, 1<<30) }

// SmallPositive is a Range suited to sizes and counts.
func SmallPositive() Range { return Linear(1, 100) }

// WithOrigin sets the explicit shrink target.
func (r Range) WithOrigin(o int) Range {
	r.origin = o
	r.hasOrigin = true
	return r
}

// Origin returns the Range's shrink target: the explicit origin if set,
// otherwise zero if it lies within the range, otherwise the bound nearest
// zero.
func (r Range) Origin() int {
	if r.hasOrigin {
		return r.origin
	}
	if r.Min <= 0 && 0 <= r.Max {
		return 0
	}
	if abs(r.Min) < abs(r.Max) {
		return r.Min
	}
	return r.Max
}

// Sample draws a single in-range value and its next seed.
func (r Range) Sample(s seed.Seed) (int, seed.Seed) {
	span := uint64(r.Max - r.Min)
	offset, next := sampleOffset(r.distribution, span+1, s)
	return r.Min + int(offset), next
}
