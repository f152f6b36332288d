package targeted

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/justanotherdot/hedgehog-sub000/gen"
	"github.com/justanotherdot/hedgehog-sub000/seed"
)

func constGen(v int) gen.Gen[int] { return gen.Constant(v) }

func mustSeed() seed.Seed { return seed.FromUint64(7) }

// peakUtility rewards inputs near 500: utility is highest at exactly 500
// and falls off linearly in both directions, giving the search a single
// well-defined target to climb toward.
func peakUtility(input int, _ Result) float64 {
	diff := input - 500
	if diff < 0 {
		diff = -diff
	}
	return 1000.0 - float64(diff)
}

func alwaysPass(input int) Result {
	return Result{Kind: ResultPass, Utility: peakUtility(input, Result{})}
}

func TestSimulatedAnnealingClimbsTowardPeak(t *testing.T) {
	gen := constGen(0)
	cfg := DefaultConfig()
	cfg.SearchSteps = 300
	cfg.InitialSamples = 20

	sa := New[int](gen, peakUtility, alwaysPass, IntNeighborhood(0, 1000, 2.0), cfg)
	result, stats := sa.Search()

	require.True(t, result.IsPass(), "expected a passing result, got kind %v", result.Kind)
	require.NotZero(t, stats.Evaluations, "expected at least one neighborhood evaluation")
	require.Greater(t, stats.BestUtility, 500.0, "expected search to climb above the baseline utility of the start input 0")
	require.Contains(t, stats.String(), "evaluations=")
}

func TestStatsStringHandlesZeroEvaluations(t *testing.T) {
	require.Contains(t, Stats{}.String(), "accepted=0 (0.0%)")
}

func TestShouldAcceptAlwaysTakesBetter(t *testing.T) {
	cfg := DefaultConfig()
	sa := &SimulatedAnnealing[int]{config: cfg}
	seed := mustSeed()
	require.True(t, sa.shouldAccept(10, 20, 50, seed), "a strictly better neighbor under Maximize must always be accepted")
}

func TestIsBetterUtilityRespectsObjective(t *testing.T) {
	maxCfg := DefaultConfig()
	maxCfg.Objective = Maximize
	saMax := &SimulatedAnnealing[int]{config: maxCfg}
	require.True(t, saMax.isBetterUtility(5, 3), "under Maximize, 5 should be better than 3")

	minCfg := DefaultConfig()
	minCfg.Objective = Minimize
	saMin := &SimulatedAnnealing[int]{config: minCfg}
	require.True(t, saMin.isBetterUtility(3, 5), "under Minimize, 3 should be better than 5")
}
