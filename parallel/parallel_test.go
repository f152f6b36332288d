package parallel

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/justanotherdot/hedgehog-sub000/gen"
	"github.com/justanotherdot/hedgehog-sub000/prop"
)

func TestDistributeWorkRoundRobin(t *testing.T) {
	work := distributeWork(10, 3, RoundRobin)
	sum := 0
	for _, w := range work {
		sum += w
	}
	if sum != 10 {
		t.Fatalf("expected total work of 10, got %d (%v)", sum, work)
	}
	if len(work) != 3 {
		t.Fatalf("expected 3 shares, got %d", len(work))
	}
}

func TestDistributeWorkChunkBased(t *testing.T) {
	work := distributeWork(10, 3, ChunkBased)
	sum := 0
	for _, w := range work {
		sum += w
	}
	if sum != 10 {
		t.Fatalf("expected total work of 10, got %d (%v)", sum, work)
	}
}

func TestDistributeWorkStealingFallsBackToRoundRobin(t *testing.T) {
	a := distributeWork(10, 3, RoundRobin)
	b := distributeWork(10, 3, WorkStealing)
	if fmt.Sprint(a) != fmt.Sprint(b) {
		t.Fatalf("expected WorkStealing to behave like RoundRobin: %v != %v", a, b)
	}
}

func TestRunAggregatesPassingWorkers(t *testing.T) {
	pcfg := prop.Default().WithTests(40)
	ccfg := DefaultConfig()
	ccfg.WorkerCount = 4

	result := Run(pcfg, ccfg, gen.IntRange(1, 100), func(n int) error {
		if n < 1 || n > 100 {
			return fmt.Errorf("out of range: %d", n)
		}
		return nil
	})

	require.True(t, result.Outcome.IsPass(), "expected aggregate pass, got %v", result.Outcome)
	require.Len(t, result.WorkerResults, ccfg.WorkerCount)
}

func TestRunSurfacesWorkerFailure(t *testing.T) {
	pcfg := prop.Default().WithTests(20)
	ccfg := DefaultConfig()
	ccfg.WorkerCount = 2

	result := Run(pcfg, ccfg, gen.IntRange(1, 100), func(n int) error {
		if n > 50 {
			return fmt.Errorf("exceeded threshold: %d", n)
		}
		return nil
	})

	if result.Outcome.IsPass() {
		t.Skip("generation got lucky and never produced a value above 50")
	}
	if !result.Outcome.IsFail() {
		t.Fatalf("expected aggregate fail, got %v", result.Outcome)
	}
	require.Zero(t, result.ConcurrencyIssues.NonDeterministicResults,
		"an ordinary deterministic failure must not be counted as non-determinism")
}

func TestRunRecoversWorkerPanic(t *testing.T) {
	pcfg := prop.Default().WithTests(20)
	ccfg := DefaultConfig()
	ccfg.WorkerCount = 2

	result := Run(pcfg, ccfg, gen.IntRange(1, 100), func(n int) error {
		if n == 13 {
			panic("unlucky")
		}
		return nil
	})

	if len(result.ConcurrencyIssues.WorkerFailures) == 0 {
		t.Skip("generation never produced the panicking value")
	}
	require.True(t, result.Outcome.IsFail(), "a recovered panic must surface as an aggregate failure")
}

func TestRunDetectsNonDeterminism(t *testing.T) {
	pcfg := prop.Default().WithTests(20)
	ccfg := DefaultConfig()
	ccfg.WorkerCount = 2
	ccfg.DetectNonDeterminism = true

	var calls atomic.Int64
	result := Run(pcfg, ccfg, gen.IntRange(1, 100), func(n int) error {
		if calls.Add(1)%2 == 0 {
			return fmt.Errorf("flaky call")
		}
		return nil
	})

	require.NotZero(t, result.ConcurrencyIssues.NonDeterministicResults,
		"a body that disagrees with itself across two calls on the same input must be flagged non-deterministic")
}
