// Package parallel distributes a property's generated test inputs across
// multiple goroutines to run them concurrently — distinct from the
// stateful package's linearizability-checked concurrent execution, this is
// purely a throughput optimization: every input runs the same test
// function, and results are aggregated afterward.
package parallel

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/justanotherdot/hedgehog-sub000/gen"
	"github.com/justanotherdot/hedgehog-sub000/prop"
	"github.com/justanotherdot/hedgehog-sub000/seed"
)

// WorkDistribution selects how the pre-generated inputs are carved up
// across workers.
type WorkDistribution int

const (
	RoundRobin WorkDistribution = iota
	ChunkBased
	WorkStealing
)

// Config bounds a parallel run.
type Config struct {
	WorkerCount          int
	WorkDistribution     WorkDistribution
	Timeout              time.Duration
	DetectNonDeterminism bool
}

// DefaultConfig uses one worker per available CPU, round-robin
// distribution, and a ten-second timeout.
func DefaultConfig() Config {
	return Config{
		WorkerCount:          runtime.GOMAXPROCS(0),
		WorkDistribution:     RoundRobin,
		Timeout:              10 * time.Second,
		DetectNonDeterminism: true,
	}
}

// PerformanceMetrics reports on a parallel run's wall-clock behavior.
type PerformanceMetrics struct {
	TotalDuration    time.Duration
	EstimatedCPUTime time.Duration
	SpeedupFactor    float64
	WorkerEfficiency float64
}

// String renders the metrics using human-readable durations.
func (m PerformanceMetrics) String() string {
	return fmt.Sprintf("wall=%s cpu-estimate=%s speedup=%.2fx efficiency=%.2f",
		humanize.RelTime(time.Now().Add(-m.TotalDuration), time.Now(), "", ""),
		m.EstimatedCPUTime, m.SpeedupFactor, m.WorkerEfficiency)
}

// ConcurrencyIssues tallies problems noticed while aggregating worker
// results.
type ConcurrencyIssues struct {
	NonDeterministicResults int
	Timeouts                int
	WorkerFailures          []string
}

// Result is the outcome of a parallel property run: the aggregated
// pass/fail outcome, each worker's individual result, and diagnostics.
type Result struct {
	Outcome           prop.TestResult
	WorkerResults     []prop.TestResult
	Performance       PerformanceMetrics
	ConcurrencyIssues ConcurrencyIssues
}

// Run pre-generates cfg's full batch of test inputs (so Gen[T] itself never
// has to be shared across goroutines), distributes them across workers per
// the configured WorkDistribution, and runs each worker's share against
// body concurrently. Any worker's first failure becomes the aggregate
// outcome; a timeout or panic is recorded as a concurrency issue and
// reported as a failure rather than crashing the process. When
// ccfg.DetectNonDeterminism is set, each input is run twice per worker and
// a pass/fail disagreement between the two runs is tallied separately from
// ordinary failures.
func Run[T any](pcfg prop.Config, ccfg Config, g gen.Gen[T], body func(T) error) Result {
	start := time.Now()

	total := pcfg.TestLimit
	inputs := make([]T, total)
	s := seed.Random()
	for i := 0; i < total; i++ {
		var thisSeed seed.Seed
		thisSeed, s = s.Split()
		size := gen.NewSize((i * pcfg.SizeLimit) / maxInt(total, 1))
		inputs[i] = g.Generate(size, thisSeed).Value
	}

	workers := ccfg.WorkerCount
	if workers <= 0 {
		workers = 1
	}
	shares := distributeWork(total, workers, ccfg.WorkDistribution)

	workerResults := make([]prop.TestResult, len(shares))
	issues := ConcurrencyIssues{}
	var issuesMu sync.Mutex

	ctx := context.Background()
	if ccfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ccfg.Timeout)
		defer cancel()
	}

	eg, ctx := errgroup.WithContext(ctx)
	offset := 0
	for w, count := range shares {
		w, start, count := w, offset, count
		offset += count
		eg.Go(func() error {
			oc := runWorker(ctx, inputs[start:start+count], body, ccfg.DetectNonDeterminism)
			workerResults[w] = oc.result

			issuesMu.Lock()
			issues.NonDeterministicResults += oc.nonDeterministic
			if oc.timedOut {
				issues.Timeouts++
			}
			if oc.panicMessage != "" {
				issues.WorkerFailures = append(issues.WorkerFailures, oc.panicMessage)
			}
			issuesMu.Unlock()
			return nil
		})
	}
	_ = eg.Wait()

	outcome := aggregate(workerResults)
	elapsed := time.Since(start)
	estimatedSequential := elapsed * time.Duration(workers)
	speedup := 1.0
	if elapsed > 0 {
		speedup = estimatedSequential.Seconds() / elapsed.Seconds()
	}

	return Result{
		Outcome:       outcome,
		WorkerResults: workerResults,
		Performance: PerformanceMetrics{
			TotalDuration:    elapsed,
			EstimatedCPUTime: estimatedSequential,
			SpeedupFactor:    speedup,
			WorkerEfficiency: speedup / float64(workers),
		},
		ConcurrencyIssues: issues,
	}
}

// workerOutcome carries a worker's TestResult plus the concurrency
// diagnostics runWorker observed directly: a panic (captured rather than
// left to crash the process, mirroring prop/runner.go's safeEvaluate), a
// timeout, or a body that disagreed with itself on a repeat call.
type workerOutcome struct {
	result           prop.TestResult
	nonDeterministic int
	timedOut         bool
	panicMessage     string
}

// runWorker runs body against each of inputs in order, stopping at the
// first failure, a context timeout, or a panic. A panic is recovered and
// recorded as a worker failure rather than crashing the process. When
// detectNonDeterminism is set, each input's body is called a second time
// immediately after the first and the two outcomes (pass vs. fail) are
// compared; a disagreement is recorded but does not itself fail the
// worker, since it is evidence of flakiness in body, not in the harness.
func runWorker[T any](ctx context.Context, inputs []T, body func(T) error, detectNonDeterminism bool) (outcome workerOutcome) {
	testsRun := 0
	defer func() {
		if r := recover(); r != nil {
			outcome.panicMessage = fmt.Sprintf("%v", r)
			outcome.result = prop.TestResult{Kind: prop.ResultFail, TestsRun: testsRun, AssertionType: "panic", Counterexample: fmt.Sprintf("%v", r)}
		}
	}()

	for _, input := range inputs {
		select {
		case <-ctx.Done():
			outcome.timedOut = true
			outcome.result = prop.TestResult{Kind: prop.ResultFail, TestsRun: testsRun, Counterexample: "worker timed out"}
			return outcome
		default:
		}
		testsRun++
		err := body(input)

		if detectNonDeterminism {
			if err2 := body(input); (err2 == nil) != (err == nil) {
				outcome.nonDeterministic++
			}
		}

		if err != nil {
			outcome.result = prop.TestResult{
				Kind:           prop.ResultFail,
				TestsRun:       testsRun,
				Counterexample: fmt.Sprintf("%v", input),
				AssertionType:  err.Error(),
			}
			return outcome
		}
	}
	outcome.result = prop.TestResult{Kind: prop.ResultPass, TestsRun: testsRun}
	return outcome
}

// distributeWork computes how many inputs each of workerCount workers
// handles. RoundRobin and ChunkBased both partition [0, total) fully, but
// round-robin spreads the remainder one-per-worker from the front while
// chunk-based gives every worker but the last a full ceil(total/workers)
// share. WorkStealing falls back to round-robin: implementing true work
// stealing needs a shared queue and per-worker backoff, and the
// pre-generation step above already removes the main reason to want it
// (no worker ever blocks waiting on the generator).
func distributeWork(total, workerCount int, dist WorkDistribution) []int {
	switch dist {
	case ChunkBased:
		chunk := (total + workerCount - 1) / workerCount
		out := make([]int, workerCount)
		for i := 0; i < workerCount; i++ {
			startIdx := i * chunk
			endIdx := minInt((i+1)*chunk, total)
			if endIdx < startIdx {
				endIdx = startIdx
			}
			out[i] = endIdx - startIdx
		}
		return out
	default: // RoundRobin, WorkStealing
		base := total / workerCount
		remainder := total % workerCount
		out := make([]int, workerCount)
		for i := 0; i < workerCount; i++ {
			out[i] = base
			if i < remainder {
				out[i]++
			}
		}
		return out
	}
}

func aggregate(results []prop.TestResult) prop.TestResult {
	total := 0
	for _, r := range results {
		if r.IsFail() {
			return r
		}
		total += r.TestsRun
	}
	return prop.TestResult{Kind: prop.ResultPass, TestsRun: total}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
