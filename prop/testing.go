package prop

import (
	"fmt"
	"testing"

	"github.com/justanotherdot/hedgehog-sub000/gen"
	rendertree "github.com/justanotherdot/hedgehog-sub000/render"
	"github.com/justanotherdot/hedgehog-sub000/seed"
)

// Check runs g through body for cfg.TestLimit generated subtests via
// t.Run, shrinking automatically toward a minimal counterexample whenever
// a subtest fails. It is the entry point most callers reach for directly
// from a *testing.T, mirroring the library's own test suite.
func Check[T any](t *testing.T, cfg Config, g gen.Gen[T], body func(*testing.T, T)) {
	t.Helper()
	runID := newRunID()
	s := seedFor(cfg)

	t.Logf("[hedgehog] run=%s tests=%d shrinks=%d size=%d", runID, cfg.TestLimit, cfg.ShrinkLimit, cfg.SizeLimit)

	for i := 0; i < cfg.TestLimit; i++ {
		var thisSeed seed.Seed
		thisSeed, s = s.Split()
		size := gen.NewSize((i * cfg.SizeLimit) / maxInt(cfg.TestLimit, 1))
		tr := g.Generate(size, thisSeed)

		name := fmt.Sprintf("ex#%d", i+1)
		if t.Run(name, func(st *testing.T) { body(st, tr.Value) }) {
			continue
		}

		current := tr
		steps := 0
		for steps < cfg.ShrinkLimit {
			children := current.Children()
			advanced := false
			for _, child := range children {
				sname := fmt.Sprintf("%s/shrink#%d", name, steps+1)
				if !t.Run(sname, func(st *testing.T) { body(st, child.Value) }) {
					current = child
					steps++
					advanced = true
					break
				}
			}
			if !advanced {
				break
			}
		}

		t.Fatalf("[hedgehog] property failed; run=%s tests_run=%d shrinks_performed=%d\ncounterexample: %s\n%s",
			runID, i+1, steps, render(current.Value), rendertree.Numbered(current))
		return
	}
}

// seedFor builds the initial seed for a run. It always returns a fresh
// random seed; cfg is not consulted. Callers that need exact
// reproducibility should call Run directly with an explicit seed.Seed.
func seedFor(cfg Config) seed.Seed {
	return seed.Random()
}
