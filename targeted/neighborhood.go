package targeted

import "github.com/justanotherdot/hedgehog-sub000/seed"

// IntNeighborhood perturbs an int by an amount scaled by temperature,
// clamped to [Min, Max]. Scale controls how large a full-temperature jump
// can be.
func IntNeighborhood(min, max int, scale float64) Neighborhood[int] {
	return NeighborhoodFunc[int](func(input int, temperature float64, s seed.Seed) (int, bool) {
		span := int(temperature * scale)
		if span < 1 {
			span = 1
		}
		offsetSeed, _ := s.Split()
		magnitude, _ := offsetSeed.NextBounded(uint64(2*span + 1))
		delta := int(magnitude) - span
		next := input + delta
		if next < min {
			next = min
		}
		if next > max {
			next = max
		}
		return next, true
	})
}

// Float64Neighborhood perturbs a float64 by an amount scaled by
// temperature, clamped to [min, max].
func Float64Neighborhood(min, max, scale float64) Neighborhood[float64] {
	return NeighborhoodFunc[float64](func(input float64, temperature float64, s seed.Seed) (float64, bool) {
		roll, _ := s.NextFloat64()
		delta := (roll*2 - 1) * temperature * scale
		next := input + delta
		if next < min {
			next = min
		}
		if next > max {
			next = max
		}
		return next, true
	})
}

// StringNeighborhood replaces characters of a string with characters drawn
// from alphabet, each at a random position — int(temperature*scale)+1
// replacements (at most len(input)), so the hotter the temperature, the
// more positions get perturbed at once.
func StringNeighborhood(alphabet string, scale float64) Neighborhood[string] {
	return NeighborhoodFunc[string](func(input string, temperature float64, s seed.Seed) (string, bool) {
		if len(input) == 0 || len(alphabet) == 0 {
			return input, false
		}
		mutations := int(temperature*scale) + 1
		if mutations > len(input) {
			mutations = len(input)
		}
		chars := []byte(input)
		cur := s
		for i := 0; i < mutations; i++ {
			var posSeed, charSeed seed.Seed
			posSeed, cur = cur.Split()
			charSeed, cur = cur.Split()
			pos, _ := posSeed.NextBounded(uint64(len(chars)))
			idx, _ := charSeed.NextBounded(uint64(len(alphabet)))
			chars[pos] = alphabet[idx]
		}
		return string(chars), true
	})
}

// SliceNeighborhood perturbs a single element of a slice using elem's
// neighborhood function. An empty slice becomes a one-element slice holding
// zero; the length of a non-empty slice never changes.
func SliceNeighborhood[T any](elem Neighborhood[T], zero T) Neighborhood[[]T] {
	return NeighborhoodFunc[[]T](func(input []T, temperature float64, s seed.Seed) ([]T, bool) {
		if len(input) == 0 {
			return []T{zero}, true
		}
		idxSeed, rest := s.Split()
		idx, _ := idxSeed.NextBounded(uint64(len(input)))
		next := append([]T(nil), input...)
		perturbed, ok := elem.Neighbor(next[idx], temperature, rest)
		if !ok {
			return input, false
		}
		next[idx] = perturbed
		return next, true
	})
}
