package gen

import (
	"strings"

	"github.com/justanotherdot/hedgehog-sub000/seed"
	"github.com/justanotherdot/hedgehog-sub000/tree"
)

// Alphabet character classes for String.
const (
	AlphabetLower   = "abcdefghijklmnopqrstuvwxyz"
	AlphabetUpper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	AlphabetAlpha   = AlphabetLower + AlphabetUpper
	AlphabetDigits  = "0123456789"
	AlphabetAlnum   = AlphabetAlpha + AlphabetDigits
	AlphabetASCII   = AlphabetAlnum + " !\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// simplifyChar maps a character toward a canonical simpler form: uppercase
// drops to lowercase, digits decrease toward '0', punctuation collapses to
// 'a', and letters step toward 'a'.
func simplifyChar(ch byte) byte {
	switch {
	case ch >= 'A' && ch <= 'Z':
		return ch - 'A' + 'a'
	case ch >= '1' && ch <= '9':
		return ch - 1
	case ch >= 'b' && ch <= 'z':
		return ch - 1
	default:
		return 'a'
	}
}

// Char generates a single byte from alphabet.
func Char(alphabet string) Gen[byte] {
	return New(func(_ Size, s seed.Seed) tree.Tree[byte] {
		idx, _ := s.NextBounded(uint64(len(alphabet)))
		ch := alphabet[idx]
		return tree.New(ch, charChildren(ch, alphabet))
	})
}

func charChildren(ch byte, alphabet string) []func() tree.Tree[byte] {
	if strings.IndexByte(alphabet, alphabet[0]) >= 0 && ch == alphabet[0] {
		return nil
	}
	simplified := simplifyChar(ch)
	if simplified == ch || strings.IndexByte(alphabet, simplified) < 0 {
		return nil
	}
	return []func() tree.Tree[byte]{
		func() tree.Tree[byte] { return tree.New(simplified, charChildren(simplified, alphabet)) },
	}
}

// String generates a string drawn from alphabet whose length is governed
// by size (length is in [0, size.Get()]).
//
// Shrink priority matches the integrated-shrinking reference: empty string
// first, then block-removal over the character sequence, then a single
// character simplified toward the alphabet's canonical form, then the
// first- and second-half substrings.
func String(alphabet string, size Size) Gen[string] {
	return New(func(_ Size, s seed.Seed) tree.Tree[string] {
		lengthSeed, charsSeed := s.Split()
		length, _ := lengthSeed.NextBounded(uint64(size.Get()) + 1)
		chars := make([]byte, length)
		cur := charsSeed
		for i := range chars {
			var idx uint64
			idx, cur = cur.NextBounded(uint64(len(alphabet)))
			chars[i] = alphabet[idx]
		}
		return stringTree(string(chars), alphabet)
	})
}

func stringTree(value, alphabet string) tree.Tree[string] {
	var children []func() tree.Tree[string]
	n := len(value)

	if n > 0 {
		children = append(children, func() tree.Tree[string] { return tree.Singleton("") })
	}

	for chunk := n; chunk > 0; chunk /= 2 {
		for start := 0; start+chunk <= n; start += chunk {
			start := start
			candidate := value[:start] + value[start+chunk:]
			if candidate != value {
				children = append(children, func() tree.Tree[string] { return stringTree(candidate, alphabet) })
			}
		}
		if chunk == 1 {
			break
		}
	}

	for i := 0; i < n; i++ {
		simplified := simplifyChar(value[i])
		if simplified != value[i] && strings.IndexByte(alphabet, simplified) >= 0 {
			candidate := value[:i] + string(simplified) + value[i+1:]
			children = append(children, func() tree.Tree[string] { return stringTree(candidate, alphabet) })
			break
		}
	}

	if n > 1 {
		half := n / 2
		first, second := value[:half], value[half:]
		children = append(children, func() tree.Tree[string] { return stringTree(first, alphabet) })
		children = append(children, func() tree.Tree[string] { return stringTree(second, alphabet) })
	}

	return tree.New(value, children)
}

// StringAlpha generates alphabetic strings.
func StringAlpha(size Size) Gen[string] { return String(AlphabetAlpha, size) }

// StringAlphaNum generates alphanumeric strings.
func StringAlphaNum(size Size) Gen[string] { return String(AlphabetAlnum, size) }

// StringDigits generates digit strings.
func StringDigits(size Size) Gen[string] { return String(AlphabetDigits, size) }

// StringASCII generates printable-ASCII strings.
func StringASCII(size Size) Gen[string] { return String(AlphabetASCII, size) }
