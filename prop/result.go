package prop

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// OutcomeKind tags what a predicate decided about a single generated
// value.
type OutcomeKind int

const (
	// OutcomePass means the predicate held.
	OutcomePass OutcomeKind = iota
	// OutcomeFail means the predicate was violated.
	OutcomeFail
	// OutcomeDiscard means the input is skipped: it is not counted in
	// TestsRun, and it counts against DiscardLimit.
	OutcomeDiscard
)

// Outcome is what a property predicate returns for one generated value.
type Outcome struct {
	Kind   OutcomeKind
	Reason string
}

// Pass reports a satisfied predicate.
func Pass() Outcome { return Outcome{Kind: OutcomePass} }

// Fail reports a violated predicate with a human-readable reason.
func Fail(reason string) Outcome { return Outcome{Kind: OutcomeFail, Reason: reason} }

// Discard reports that the input should be skipped rather than counted.
func Discard() Outcome { return Outcome{Kind: OutcomeDiscard} }

// Statistics carries the classification and collection data accumulated
// across a run, present only on PassWithStatistics.
type Statistics struct {
	Classifications map[string]int
	Collections     map[string][]float64
}

// ResultKind tags which TestResult variant is populated.
type ResultKind int

const (
	// ResultPass means every test passed with no classifiers/collectors
	// registered.
	ResultPass ResultKind = iota
	// ResultPassWithStatistics means every test passed and classification
	// or collection data was gathered.
	ResultPassWithStatistics
	// ResultFail means a counterexample was found (and, if possible,
	// shrunk).
	ResultFail
	// ResultDiscard means the discard limit was hit before TestLimit
	// passes were accumulated.
	ResultDiscard
)

// TestResult is the outcome of running a Property under a Config: a
// four-way sum represented as a tagged struct since Go has no native sum
// types.
type TestResult struct {
	Kind  ResultKind
	RunID string

	TestsRun     int
	PropertyName string
	ModulePath   string

	Statistics Statistics

	Counterexample   string
	ShrinksPerformed int
	AssertionType    string
	ShrinkSteps      []string
	ShrinkTree       string

	DiscardLimit int
}

// newRunID tags a TestResult with a fresh run identifier so parallel
// workers' diagnostics can be correlated back to the run that produced
// them.
func newRunID() string {
	return uuid.NewString()
}

// IsPass reports whether the result is Pass or PassWithStatistics.
func (r TestResult) IsPass() bool {
	return r.Kind == ResultPass || r.Kind == ResultPassWithStatistics
}

// IsFail reports whether the result is Fail.
func (r TestResult) IsFail() bool { return r.Kind == ResultFail }

// String renders the result using the module's stable diagnostic markers:
// "✓" for a pass, "✗ ... after N tests and M shrinks: ..." for a failure,
// "? ... gave up after N discards" for a discard.
func (r TestResult) String() string {
	switch r.Kind {
	case ResultPass, ResultPassWithStatistics:
		return "✓ Property test passed"
	case ResultFail:
		return fmt.Sprintf("✗ Property test failed after %d tests and %d shrinks: %s",
			r.TestsRun, r.ShrinksPerformed, r.Counterexample)
	case ResultDiscard:
		return fmt.Sprintf("? Property test gave up after %d discards", r.DiscardLimit)
	default:
		return "? unknown result"
	}
}

// Render produces the full diagnostic block for a Fail result: a header
// naming the module, a summary line, and a shrinking progression with one
// "forAll" line per step — the contract the (out-of-scope) CLI renderer
// depends on.
func (r TestResult) Render(variableName string) string {
	if r.Kind != ResultFail {
		return r.String()
	}
	var b strings.Builder
	module := r.ModulePath
	if module == "" {
		module = r.PropertyName
	}
	fmt.Fprintf(&b, "━━━ %s ━━━\n", module)
	fmt.Fprintf(&b, "✗ property failed after %d tests and %d shrinks.\n", r.TestsRun, r.ShrinksPerformed)
	for _, step := range r.ShrinkSteps {
		fmt.Fprintf(&b, "│ forAll %s = %s -- %s\n", variableName, step, variableName)
	}
	if r.ShrinkTree != "" {
		b.WriteString("shrink tree rooted at the final counterexample:\n")
		b.WriteString(r.ShrinkTree)
	}
	return b.String()
}
