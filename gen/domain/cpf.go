// Package domain collects curated generators for values with real-world
// structure — shapes where an independently-random string or integer
// would almost never land on a valid instance, so the generator bakes in
// the construction rules directly.
package domain

import (
	"errors"
	"strings"
	"unicode"

	"github.com/justanotherdot/hedgehog-sub000/gen"
	"github.com/justanotherdot/hedgehog-sub000/seed"
	"github.com/justanotherdot/hedgehog-sub000/tree"
)

// CPF generates valid Brazilian CPF (tax id) numbers; masked controls
// whether the result is formatted with dots and a dash.
func CPF(masked bool) gen.Gen[string] {
	return gen.New(func(_ gen.Size, s seed.Seed) tree.Tree[string] {
		root, _ := generateCPFRoot(s)
		return cpfTree(root, masked)
	})
}

// CPFAny generates CPF numbers with a 50/50 chance of being masked.
func CPFAny() gen.Gen[string] {
	return gen.New(func(size gen.Size, s seed.Seed) tree.Tree[string] {
		maskedPick, next := s.NextBool()
		return CPF(maskedPick).Generate(size, next)
	})
}

// generateCPFRoot draws 9 digits that are not all identical (an
// all-identical root is never a valid CPF).
func generateCPFRoot(s seed.Seed) ([]byte, seed.Seed) {
	cur := s
	for {
		root := make([]byte, 9)
		for i := range root {
			var d uint64
			d, cur = cur.NextBounded(10)
			root[i] = byte(d)
		}
		if !allSameDigits(root) {
			return root, cur
		}
	}
}

// cpfTree builds the CPF string for root and attaches shrink candidates:
// unmasking (if masked), zeroing each digit left-to-right, then
// decrementing each digit right-to-left — each only kept when it still
// yields a non-all-identical root.
func cpfTree(root []byte, masked bool) tree.Tree[string] {
	value := buildCPFString(root, masked)

	var children []func() tree.Tree[string]
	if masked {
		children = append(children, func() tree.Tree[string] { return cpfTree(root, false) })
	}

	for i := range root {
		if root[i] == 0 {
			continue
		}
		candidate := append([]byte(nil), root...)
		candidate[i] = 0
		if !allSameDigits(candidate) {
			candidate := candidate
			children = append(children, func() tree.Tree[string] { return cpfTree(candidate, masked) })
		}
	}

	for j := len(root) - 1; j >= 0; j-- {
		if root[j] == 0 {
			continue
		}
		candidate := append([]byte(nil), root...)
		candidate[j]--
		if !allSameDigits(candidate) {
			candidate := candidate
			children = append(children, func() tree.Tree[string] { return cpfTree(candidate, masked) })
		}
	}

	return tree.New(value, children)
}

func buildCPFString(root []byte, masked bool) string {
	d1, d2 := computeCPFVerifiers(root)
	buf := make([]byte, 0, 11)
	for _, n := range root {
		buf = append(buf, '0'+n)
	}
	buf = append(buf, d1, d2)
	raw := string(buf)
	if masked {
		return MaskCPF(raw)
	}
	return raw
}

// ValidCPF checks if a string is a valid CPF number.
func ValidCPF(s string) bool {
	raw := UnmaskCPF(s)
	if len(raw) != 11 {
		return false
	}
	b := []byte(raw)
	if allSameByte(b) {
		return false
	}
	root := make([]byte, 9)
	for i := range root {
		root[i] = b[i] - '0'
	}
	d1, d2 := computeCPFVerifiers(root)
	return b[9] == d1 && b[10] == d2
}

// MaskCPF formats a raw CPF string with dots and a dash.
func MaskCPF(raw string) string {
	raw = UnmaskCPF(raw)
	if len(raw) != 11 {
		panic(errors.New("domain: MaskCPF needs 11 digits"))
	}
	return raw[0:3] + "." + raw[3:6] + "." + raw[6:9] + "-" + raw[9:11]
}

// UnmaskCPF removes all non-digit characters from a CPF string.
func UnmaskCPF(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allSameByte(b []byte) bool {
	if len(b) == 0 {
		return true
	}
	for _, x := range b[1:] {
		if x != b[0] {
			return false
		}
	}
	return true
}

func allSameDigits(digits []byte) bool {
	return allSameByte(digits)
}

// computeCPFVerifiers calculates the two CPF check digits from a 9-digit
// root (each element already in [0,9], not ASCII).
func computeCPFVerifiers(root []byte) (d1, d2 byte) {
	if len(root) != 9 {
		panic(errors.New("domain: computeCPFVerifiers root len != 9"))
	}
	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(root[i]) * (10 - i)
	}
	rest := sum % 11
	if rest < 2 {
		d1 = '0'
	} else {
		d1 = byte(11-rest) + '0'
	}

	sum = 0
	for i := 0; i < 9; i++ {
		sum += int(root[i]) * (11 - i)
	}
	sum += int(d1-'0') * 2
	rest = sum % 11
	if rest < 2 {
		d2 = '0'
	} else {
		d2 = byte(11-rest) + '0'
	}
	return
}
