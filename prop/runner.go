package prop

import (
	"github.com/justanotherdot/hedgehog-sub000/gen"
	rendertree "github.com/justanotherdot/hedgehog-sub000/render"
	"github.com/justanotherdot/hedgehog-sub000/seed"
	"github.com/justanotherdot/hedgehog-sub000/tree"
)

// Run drives property under cfg, returning a TestResult. It mirrors the
// reference runner: seed splitting per iteration, size scheduled linearly
// across TestLimit, classifiers/collectors accumulated on pass, and a
// greedy shrink search entered on the first failure.
func Run[T any](property Property[T], cfg Config, initialSeed seed.Seed) TestResult {
	s := initialSeed
	discards := 0
	passed := 0
	classCounts := map[string]int{}
	collectValues := map[string][]float64{}

	for i := 0; i < cfg.TestLimit; i++ {
		var t tree.Tree[T]
		var thisSeed seed.Seed
		thisSeed, s = s.Split()

		if useExample, ex := property.exampleFor(i, cfg.TestLimit); useExample {
			t = tree.Singleton(ex)
		} else {
			size := gen.NewSize((i * cfg.SizeLimit) / maxInt(cfg.TestLimit, 1))
			t = property.generator.Generate(size, thisSeed)
		}

		outcome := safeEvaluate(property.predicate, t.Value)
		switch outcome.Kind {
		case OutcomePass:
			passed++
			for _, c := range property.classifiers {
				if c.pred(t.Value) {
					classCounts[c.label]++
				}
			}
			for _, c := range property.collectors {
				collectValues[c.label] = append(collectValues[c.label], c.value(t.Value))
			}
		case OutcomeDiscard:
			discards++
			if discards >= cfg.DiscardLimit {
				return TestResult{Kind: ResultDiscard, RunID: newRunID(), DiscardLimit: cfg.DiscardLimit}
			}
		case OutcomeFail:
			return shrinkSearch(property, t, i+1, cfg)
		}
	}

	if len(classCounts) == 0 && len(collectValues) == 0 {
		return TestResult{
			Kind:         ResultPass,
			RunID:        newRunID(),
			TestsRun:     passed,
			PropertyName: property.identifier,
		}
	}
	return TestResult{
		Kind:         ResultPassWithStatistics,
		RunID:        newRunID(),
		TestsRun:     passed,
		PropertyName: property.identifier,
		Statistics:   Statistics{Classifications: classCounts, Collections: collectValues},
	}
}

// exampleFor decides, for iteration i, whether to draw from the curated
// example list instead of the generator, returning the example to use if
// so.
func (p Property[T]) exampleFor(i, testLimit int) (bool, T) {
	var zero T
	if len(p.examples) == 0 {
		return false, zero
	}
	switch p.strategy {
	case ExamplesFirst:
		if i < len(p.examples) {
			return true, p.examples[i]
		}
	case GeneratedFirst:
		start := testLimit - len(p.examples)
		if i >= start {
			return true, p.examples[i-start]
		}
	case Mixed:
		if i%2 == 0 && i/2 < len(p.examples) {
			return true, p.examples[i/2]
		}
	case ExamplesUpTo:
		if i < p.exampleUpTo && i < len(p.examples) {
			return true, p.examples[i]
		}
	}
	return false, zero
}

// safeEvaluate runs predicate and converts a panic into a Fail outcome
// tagged assertion_type "panic", so the runner never aborts mid-test.
func safeEvaluate[T any](predicate func(T) Outcome, v T) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = Outcome{Kind: OutcomeFail, Reason: "panic"}
		}
	}()
	return predicate(v)
}

// shrinkSearch performs the greedy, best-first shrink search of §4.6:
// from the failing tree, repeatedly walk to the first child (in the
// generator's declared order) that still fails, until no child fails or
// the shrink budget is exhausted. Predicate panics during shrinking count
// as additional failures rather than aborting the search.
func shrinkSearch[T any](property Property[T], failing tree.Tree[T], testsRun int, cfg Config) TestResult {
	current := failing
	steps := 0
	var shrinkSteps []string
	assertionType := ""

	for steps < cfg.ShrinkLimit {
		children := current.Children()
		advanced := false
		for _, child := range children {
			outcome := safeEvaluate(property.predicate, child.Value)
			if outcome.Kind == OutcomeFail {
				current = child
				steps++
				shrinkSteps = append(shrinkSteps, render(child.Value))
				if outcome.Reason == "panic" {
					assertionType = "panic"
				}
				advanced = true
				break
			}
		}
		if !advanced {
			break
		}
	}

	return TestResult{
		Kind:             ResultFail,
		RunID:            newRunID(),
		TestsRun:         testsRun,
		PropertyName:     property.identifier,
		Counterexample:   render(current.Value),
		ShrinksPerformed: steps,
		AssertionType:    assertionType,
		ShrinkSteps:      shrinkSteps,
		// current is already the fully-shrunk counterexample, so forcing its
		// (typically small, terminating) remaining shrink space here is safe
		// in a way forcing the raw failing tree up front would not be.
		ShrinkTree: rendertree.Tree(current),
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
