// Package hedgehog provides property-based testing functionality for Go. It
// allows you to test properties of your code by generating random test
// cases and automatically shrinking counterexamples when failures are
// found.
//
// This is the main entry point for the library. It re-exports the most
// commonly used types and functions from the internal packages to provide a
// clean and simple API for users.
//
// Example usage:
//
//	import "github.com/justanotherdot/hedgehog-sub000"
//
//	func TestAdditionIdentity(t *testing.T) {
//		hedgehog.Check(t, hedgehog.Default(), hedgehog.IntRange(-1000, 1000), func(t *testing.T, x int) {
//			if x+0 != x {
//				t.Errorf("addition identity failed for %d", x)
//			}
//		})
//	}
package hedgehog

import (
	"testing"

	"github.com/justanotherdot/hedgehog-sub000/gen"
	"github.com/justanotherdot/hedgehog-sub000/gen/domain"
	"github.com/justanotherdot/hedgehog-sub000/prop"
	"github.com/justanotherdot/hedgehog-sub000/quick"
)

// =============================================================================
// PROPERTY-BASED TESTING
// =============================================================================

// Config holds the configuration for property-based testing.
type Config = prop.Config

// Default returns a default configuration for property-based testing. This
// configuration uses sensible defaults and can be customized via
// command-line flags or by modifying the returned Config struct.
func Default() Config {
	return prop.Default()
}

// Check runs a property-based test with the given configuration and
// generator, shrinking automatically toward a minimal counterexample
// whenever the body fails.
func Check[T any](t *testing.T, cfg Config, g gen.Gen[T], body func(*testing.T, T)) {
	prop.Check(t, cfg, g, body)
}

// =============================================================================
// GENERATORS
// =============================================================================

// Gen is the type every generator produces values of.
type Gen[T any] = gen.Gen[T]

// Size controls the scale of generated structures.
type Size = gen.Size

// NewSize builds a Size from a plain int.
func NewSize(n int) Size { return gen.NewSize(n) }

// Bool generates random boolean values, shrinking true toward false.
func Bool() Gen[bool] { return gen.Bool() }

// IntRange generates integers within [min, max].
func IntRange(min, max int) Gen[int] { return gen.IntRange(min, max) }

// Float64Range generates float64 values within [min, max].
func Float64Range(min, max float64) Gen[float64] { return gen.Float64Range(min, max) }

// String generates strings drawn from alphabet, up to size.Get() long.
func String(alphabet string, size Size) Gen[string] { return gen.String(alphabet, size) }

// StringAlpha generates alphabetic strings.
func StringAlpha(size Size) Gen[string] { return gen.StringAlpha(size) }

// StringAlphaNum generates alphanumeric strings.
func StringAlphaNum(size Size) Gen[string] { return gen.StringAlphaNum(size) }

// StringDigits generates digit strings.
func StringDigits(size Size) Gen[string] { return gen.StringDigits(size) }

// StringASCII generates printable-ASCII strings.
func StringASCII(size Size) Gen[string] { return gen.StringASCII(size) }

// SliceOf generates slices of g, up to size.Get() elements long.
func SliceOf[T any](g Gen[T], size Size) Gen[[]T] { return gen.SliceOf(g, size) }

// OneOf picks uniformly among the given generators. It returns an error if
// gens is empty.
func OneOf[T any](gens ...Gen[T]) (Gen[T], error) { return gen.OneOf(gens...) }

// Constant always produces v, with no shrink candidates.
func Constant[T any](v T) Gen[T] { return gen.Constant(v) }

// Map transforms a generator's output while preserving its shrink tree.
func Map[A, B any](ga Gen[A], f func(A) B) Gen[B] { return gen.Map(ga, f) }

// Filter keeps only values satisfying pred, retrying up to 100 times before
// giving up and returning the last candidate unshrunk.
func Filter[T any](g Gen[T], pred func(T) bool) Gen[T] { return gen.Filter(g, pred, 100) }

// Bind sequences generation: f's generator may depend on ga's drawn value.
func Bind[A, B any](ga Gen[A], f func(A) Gen[B]) Gen[B] { return gen.Bind(ga, f) }

// =============================================================================
// DOMAIN-SPECIFIC GENERATORS
// =============================================================================

// CPF generates valid Brazilian CPF (Cadastro de Pessoas Físicas) numbers.
// If masked is true, returns the formatted form (e.g. "123.456.789-09");
// otherwise the raw digit string.
func CPF(masked bool) Gen[string] { return domain.CPF(masked) }

// CPFAny generates CPF numbers with random masking (50/50 chance).
func CPFAny() Gen[string] { return domain.CPFAny() }

// ValidCPF validates a CPF string, masked or not.
func ValidCPF(s string) bool { return domain.ValidCPF(s) }

// MaskCPF formats a raw CPF with dots and a dash.
func MaskCPF(raw string) string { return domain.MaskCPF(raw) }

// UnmaskCPF removes formatting from a CPF string.
func UnmaskCPF(s string) string { return domain.UnmaskCPF(s) }

// =============================================================================
// TESTING UTILITIES
// =============================================================================

// Equal compares two values using go-cmp and fails the test with a diff if
// they are not equal.
func Equal[T any](t *testing.T, got, want T) {
	quick.Equal(t, got, want)
}
