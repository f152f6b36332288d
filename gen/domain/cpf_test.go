package domain

import (
	"strings"
	"testing"

	"github.com/justanotherdot/hedgehog-sub000/gen"
	"github.com/justanotherdot/hedgehog-sub000/seed"
)

func TestCPFUnmaskedShape(t *testing.T) {
	tr := CPF(false).Generate(gen.NewSize(0), seed.FromUint64(123))
	if len(tr.Value) != 11 {
		t.Fatalf("CPF(false) = %q (len=%d), want len 11", tr.Value, len(tr.Value))
	}
	if !ValidCPF(tr.Value) {
		t.Fatalf("CPF(false) = %q is not a valid CPF", tr.Value)
	}
}

func TestCPFMaskedShape(t *testing.T) {
	tr := CPF(true).Generate(gen.NewSize(0), seed.FromUint64(456))
	if !strings.Contains(tr.Value, ".") || !strings.Contains(tr.Value, "-") {
		t.Fatalf("CPF(true) = %q, want masked format", tr.Value)
	}
	if !ValidCPF(tr.Value) {
		t.Fatalf("CPF(true) = %q is not a valid CPF", tr.Value)
	}
}

func TestCPFShrinksStayValid(t *testing.T) {
	tr := CPF(false).Generate(gen.NewSize(0), seed.FromUint64(7))
	for _, child := range tr.Children() {
		if !ValidCPF(child.Value) {
			t.Errorf("shrink candidate %q is not a valid CPF", child.Value)
		}
	}
}

func TestMaskUnmaskRoundTrip(t *testing.T) {
	raw := "12345678909"
	if UnmaskCPF(MaskCPF(raw)) != raw {
		t.Fatalf("mask/unmask round trip failed for %q", raw)
	}
}

func TestValidCPFRejectsAllSameDigits(t *testing.T) {
	if ValidCPF("11111111111") {
		t.Fatal("all-same-digit CPF must be invalid")
	}
}
