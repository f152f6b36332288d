// Package prop implements the property runner: it drives a generator
// against a predicate under a Config, classifies and collects statistics
// about the values it sees, and — on failure — runs a greedy shrink
// search to report a small counterexample.
package prop

import (
	"fmt"

	"github.com/justanotherdot/hedgehog-sub000/gen"
)

// ExampleStrategy controls how curated examples are interleaved with
// generated inputs.
type ExampleStrategy int

const (
	// ExamplesFirst runs every example before any generated input.
	ExamplesFirst ExampleStrategy = iota
	// GeneratedFirst runs every generated input before any example.
	GeneratedFirst
	// Mixed alternates between examples and generated inputs.
	Mixed
	// ExamplesUpTo runs examples only for the first N iterations, then
	// switches to generated inputs.
	ExamplesUpTo
)

type classifier[T any] struct {
	label string
	pred  func(T) bool
}

type collector[T any] struct {
	label string
	value func(T) float64
}

// Property bundles a generator with a predicate and optional diagnostics:
// classifiers (boolean labels tallied across the run), collectors
// (numeric series tallied across the run), and curated examples to run
// alongside generated inputs.
type Property[T any] struct {
	generator    gen.Gen[T]
	predicate    func(T) Outcome
	classifiers  []classifier[T]
	collectors   []collector[T]
	examples     []T
	exampleUpTo  int
	strategy     ExampleStrategy
	variableName string
	identifier   string
}

// New builds a Property from a generator and a predicate that returns a
// full Outcome (Pass, Fail, or Discard).
func New[T any](g gen.Gen[T], predicate func(T) Outcome) Property[T] {
	return Property[T]{generator: g, predicate: predicate, variableName: "x"}
}

// ForAll builds a Property from a generator and a plain boolean condition:
// true is Pass, false becomes a generic Fail.
func ForAll[T any](g gen.Gen[T], condition func(T) bool) Property[T] {
	return New(g, func(v T) Outcome {
		if condition(v) {
			return Pass()
		}
		return Fail("property failed")
	})
}

// Classify registers a named predicate whose truth is tallied across the
// run and reported in PassWithStatistics.
func (p Property[T]) Classify(label string, pred func(T) bool) Property[T] {
	p.classifiers = append(p.classifiers, classifier[T]{label: label, pred: pred})
	return p
}

// Collect registers a named numeric projection whose values are tallied
// across the run and reported in PassWithStatistics.
func (p Property[T]) Collect(label string, value func(T) float64) Property[T] {
	p.collectors = append(p.collectors, collector[T]{label: label, value: value})
	return p
}

// WithExamples attaches curated examples and the strategy for interleaving
// them with generated inputs.
func (p Property[T]) WithExamples(strategy ExampleStrategy, examples ...T) Property[T] {
	p.examples = examples
	p.strategy = strategy
	return p
}

// ExamplesUpToN attaches curated examples that are used only for the
// first n iterations.
func (p Property[T]) ExamplesUpToN(n int, examples ...T) Property[T] {
	p.examples = examples
	p.strategy = ExamplesUpTo
	p.exampleUpTo = n
	return p
}

// WithVariableName records a binding name on the property. The runner does
// not read it: counterexamples in TestResult are rendered without a
// variable name, and TestResult.Render takes the name as its own argument.
func (p Property[T]) WithVariableName(name string) Property[T] {
	p.variableName = name
	return p
}

// WithIdentifier sets a human-readable name for the property, surfaced in
// TestResult.PropertyName.
func (p Property[T]) WithIdentifier(id string) Property[T] {
	p.identifier = id
	return p
}

// render formats a value for inclusion in a counterexample trace.
func render[T any](v T) string {
	return fmt.Sprintf("%#v", v)
}
