// Package targeted implements search-guided property testing: instead of
// drawing inputs independently, a simulated-annealing search walks a
// neighborhood of previously-tried inputs toward ones that maximize (or
// minimize) a caller-supplied utility function, biasing generation toward
// inputs more likely to expose a failure.
//
// The approach follows "Targeted Property-Based Testing" (Löscher &
// Sagonas, ISSTA 2017).
package targeted

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/justanotherdot/hedgehog-sub000/gen"
	"github.com/justanotherdot/hedgehog-sub000/seed"
)

// ResultKind distinguishes the three shapes a targeted run can end in.
type ResultKind int

const (
	ResultPass ResultKind = iota
	ResultFail
	ResultDiscard
)

// Result is the outcome of a targeted search, carrying the utility value of
// whichever input it reports on.
type Result struct {
	Kind             ResultKind
	TestsRun         int
	PropertyName     string
	ModulePath       string
	Utility          float64
	Counterexample   string
	ShrinksPerformed int
	AssertionType    string
	ShrinkSteps      []string
}

// IsPass reports whether the search ended on a passing input.
func (r Result) IsPass() bool { return r.Kind == ResultPass }

// IsFail reports whether the search ended on a failing input.
func (r Result) IsFail() bool { return r.Kind == ResultFail }

// SearchObjective selects whether the search maximizes or minimizes utility.
type SearchObjective int

const (
	Maximize SearchObjective = iota
	Minimize
)

// Config bounds a simulated-annealing search.
type Config struct {
	Objective          SearchObjective
	SearchSteps        int
	InitialTemperature float64
	CoolingRate        float64
	MinTemperature     float64
	InitialSamples     int
	MaxSearchTime      time.Duration
	SizeLimit          int
}

// DefaultConfig mirrors the reference implementation's tuning: 1000 search
// steps, temperature starting at 100 and cooling by a factor of 0.95 per
// step down to a floor of 0.01, preceded by 100 random samples, bounded to
// one minute of wall-clock time.
func DefaultConfig() Config {
	return Config{
		Objective:          Maximize,
		SearchSteps:        1000,
		InitialTemperature: 100.0,
		CoolingRate:        0.95,
		MinTemperature:     0.01,
		InitialSamples:     100,
		MaxSearchTime:      60 * time.Second,
		SizeLimit:          100,
	}
}

// Stats reports what the search actually did, for diagnostics.
type Stats struct {
	Evaluations    int
	AcceptedMoves  int
	BestUtility    float64
	FinalTemp      float64
	SearchTime     time.Duration
	UtilityHistory []float64
	Converged      bool
}

// String renders the stats using human-readable durations and counts, the
// same diagnostic register parallel.PerformanceMetrics.String uses.
func (st Stats) String() string {
	acceptRate := 0.0
	if st.Evaluations > 0 {
		acceptRate = float64(st.AcceptedMoves) / float64(st.Evaluations)
	}
	return fmt.Sprintf("evaluations=%s accepted=%s (%.1f%%) best-utility=%.4f final-temp=%.4f search-time=%s converged=%v",
		humanize.Comma(int64(st.Evaluations)), humanize.Comma(int64(st.AcceptedMoves)), acceptRate*100,
		st.BestUtility, st.FinalTemp, st.SearchTime, st.Converged)
}

// Neighborhood generates a candidate near input, scaled by temperature (a
// higher temperature should produce a larger jump). It returns ok=false if
// no valid neighbor exists for this input.
type Neighborhood[T any] interface {
	Neighbor(input T, temperature float64, s seed.Seed) (T, bool)
}

// NeighborhoodFunc adapts a plain function to the Neighborhood interface.
type NeighborhoodFunc[T any] func(input T, temperature float64, s seed.Seed) (T, bool)

func (f NeighborhoodFunc[T]) Neighbor(input T, temperature float64, s seed.Seed) (T, bool) {
	return f(input, temperature, s)
}

// SimulatedAnnealing is a targeted search over generator-produced inputs of
// type T, driven by a utility function and a neighborhood function.
type SimulatedAnnealing[T any] struct {
	generator    gen.Gen[T]
	utility      func(input T, result Result) float64
	test         func(input T) Result
	neighborhood Neighborhood[T]
	config       Config
}

// New builds a SimulatedAnnealing search.
func New[T any](
	generator gen.Gen[T],
	utility func(input T, result Result) float64,
	test func(input T) Result,
	neighborhood Neighborhood[T],
	config Config,
) *SimulatedAnnealing[T] {
	return &SimulatedAnnealing[T]{
		generator:    generator,
		utility:      utility,
		test:         test,
		neighborhood: neighborhood,
		config:       config,
	}
}

// ForAll builds a SimulatedAnnealing search using DefaultConfig.
func ForAll[T any](
	generator gen.Gen[T],
	utility func(input T, result Result) float64,
	test func(input T) Result,
	neighborhood Neighborhood[T],
) *SimulatedAnnealing[T] {
	return New(generator, utility, test, neighborhood, DefaultConfig())
}

// Search runs initial random sampling followed by simulated annealing,
// returning the best result found and statistics about the search.
func (sa *SimulatedAnnealing[T]) Search() (Result, Stats) {
	start := time.Now()
	stats := Stats{
		BestUtility: negInfOrInf(sa.config.Objective == Minimize),
	}

	currentInput := sa.initialSampling(&stats)
	currentResult := sa.test(currentInput)
	currentUtility := sa.utility(currentInput, currentResult)

	bestResult := currentResult
	bestUtility := currentUtility
	stats.BestUtility = bestUtility
	stats.UtilityHistory = append(stats.UtilityHistory, currentUtility)

	temperature := sa.config.InitialTemperature
	step := 0
	rngSeed := seed.Random()

	for step < sa.config.SearchSteps && temperature > sa.config.MinTemperature {
		if sa.config.MaxSearchTime > 0 && time.Since(start) > sa.config.MaxSearchTime {
			break
		}

		var neighborSeed seed.Seed
		neighborSeed, rngSeed = rngSeed.Split()
		neighbor, ok := sa.neighborhood.Neighbor(currentInput, temperature, neighborSeed)
		if ok {
			neighborResult := sa.test(neighbor)
			neighborUtility := sa.utility(neighbor, neighborResult)

			stats.Evaluations++
			stats.UtilityHistory = append(stats.UtilityHistory, neighborUtility)

			var acceptSeed seed.Seed
			acceptSeed, rngSeed = rngSeed.Split()
			if sa.shouldAccept(currentUtility, neighborUtility, temperature, acceptSeed) {
				currentInput = neighbor
				currentUtility = neighborUtility
				stats.AcceptedMoves++

				if sa.isBetterUtility(neighborUtility, bestUtility) {
					bestResult = neighborResult
					bestUtility = neighborUtility
					stats.BestUtility = bestUtility
				}
			}
		}

		temperature *= sa.config.CoolingRate
		step++
	}

	stats.FinalTemp = temperature
	stats.SearchTime = time.Since(start)
	stats.Converged = temperature <= sa.config.MinTemperature

	return bestResult, stats
}

func negInfOrInf(minimize bool) float64 {
	if minimize {
		return posInf
	}
	return negInf
}

var (
	zero   float64
	posInf = 1 / zero
	negInf = -posInf
)

// initialSampling draws InitialSamples inputs directly from the generator
// (scaling Size across the batch the way a normal property run would) and
// keeps whichever scores best, seeding the search before it starts moving
// through the neighborhood.
func (sa *SimulatedAnnealing[T]) initialSampling(stats *Stats) T {
	s := seed.Random()
	var bestInput T
	haveBest := false
	bestUtility := negInfOrInf(sa.config.Objective == Minimize)

	samples := sa.config.InitialSamples
	if samples <= 0 {
		samples = 1
	}

	for i := 0; i < samples; i++ {
		var sampleSeed seed.Seed
		sampleSeed, s = s.Split()
		size := gen.NewSize((i * sa.config.SizeLimit) / samples)

		tr := sa.generator.Generate(size, sampleSeed)
		input := tr.Value
		result := sa.test(input)
		utility := sa.utility(input, result)

		stats.Evaluations++

		if !haveBest || sa.isBetterUtility(utility, bestUtility) {
			bestInput = input
			bestUtility = utility
			haveBest = true
		}
	}

	if !haveBest {
		tr := sa.generator.Generate(gen.NewSize(50), seed.Random())
		return tr.Value
	}
	return bestInput
}

// shouldAccept implements the Metropolis criterion: always accept a better
// neighbor, otherwise accept a worse one with probability
// exp(-delta/temperature), where delta >= 0 is how much worse the neighbor
// is under the objective. An equally good neighbor (delta == 0) is always
// accepted.
func (sa *SimulatedAnnealing[T]) shouldAccept(currentUtility, neighborUtility, temperature float64, s seed.Seed) bool {
	if sa.isBetterUtility(neighborUtility, currentUtility) {
		return true
	}
	var delta float64
	if sa.config.Objective == Maximize {
		delta = currentUtility - neighborUtility
	} else {
		delta = neighborUtility - currentUtility
	}
	probability := expApprox(-delta / temperature)
	roll, _ := s.NextFloat64()
	return roll < probability
}

func (sa *SimulatedAnnealing[T]) isBetterUtility(a, b float64) bool {
	if sa.config.Objective == Maximize {
		return a > b
	}
	return a < b
}

// expApprox computes e^x by subtracting whole multiples of ln(2) until the
// remainder lies within [-ln(2), ln(2)], summing the first 30 terms of the
// Taylor series for that remainder, and scaling by the matching power of
// two — avoiding a dependency on the math package for a single
// transcendental function.
func expApprox(x float64) float64 {
	if x > 700 {
		return posInf
	}
	if x < -700 {
		return 0
	}
	const ln2 = 0.6931471805599453
	k := 0
	for x > ln2 {
		x -= ln2
		k++
	}
	for x < -ln2 {
		x += ln2
		k--
	}
	term := 1.0
	sum := 1.0
	for i := 1; i <= 30; i++ {
		term *= x / float64(i)
		sum += term
	}
	for ; k > 0; k-- {
		sum *= 2
	}
	for ; k < 0; k++ {
		sum /= 2
	}
	return sum
}
