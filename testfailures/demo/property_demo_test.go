//go:build demo
// +build demo

// Package demo contains demonstration tests that are designed to fail intentionally.
// These tests showcase the shrinking mechanism and property-based testing capabilities
// of the hedgehog library. They are meant for educational and demonstration purposes.
package demo

import (
	"testing"

	"github.com/justanotherdot/hedgehog-sub000/gen"
	"github.com/justanotherdot/hedgehog-sub000/gen/domain"
	"github.com/justanotherdot/hedgehog-sub000/prop"
)

// Test_String_FalseRule demonstrates a property-based test that is designed
// to fail. It claims every generated string is empty, which the shrinking
// mechanism then reduces to a minimal single-character counterexample.
func Test_String_FalseRule(t *testing.T) {
	prop.Check(t, prop.Default(), gen.StringAlphaNum(gen.NewSize(32)), func(t *testing.T, s string) {
		if s != "" {
			t.Fatalf("expected empty string, got %q", s)
		}
	})
}

// Test_CPF_Invalid demonstrates a property-based test that is designed to
// fail. It expects all CPF numbers to start with '9', which is not true for
// valid CPF generation.
func Test_CPF_Invalid(t *testing.T) {
	prop.Check(t, prop.Default(), domain.CPF(false), func(t *testing.T, cpf string) {
		if cpf[0] != '9' {
			t.Fatalf("expected to start with 9, but got %q", cpf)
		}
	})
}
