package gen

import (
	"fmt"

	"github.com/justanotherdot/hedgehog-sub000/seed"
	"github.com/justanotherdot/hedgehog-sub000/tree"
)

// FromElements picks uniformly among a fixed list of values, each a leaf
// with no further shrink children — useful for small enumerations where
// every element is equally "simple".
func FromElements[T any](elements ...T) Gen[T] {
	return New(func(_ Size, s seed.Seed) tree.Tree[T] {
		idx, _ := s.NextBounded(uint64(len(elements)))
		return tree.Singleton(elements[idx])
	})
}

// FromDictionary mixes a curated list of interesting values with a
// fallback generator, weighted by dictWeight and fallbackWeight. Dictionary
// picks a value uniformly within dictionary; fallback defers entirely to
// the fallback generator's own shrinking.
func FromDictionary[T any](dictionary []T, fallback Gen[T], dictWeight, fallbackWeight float64) (Gen[T], error) {
	choices := []WeightedChoice[T]{
		{Weight: dictWeight, Generator: FromElements(dictionary...)},
		{Weight: fallbackWeight, Generator: fallback},
	}
	return Frequency(choices...)
}

// webTLDs and webLabels back WebDomain's curated dictionary.
var (
	webTLDs   = []string{"com", "org", "net", "io", "dev"}
	webLabels = []string{"example", "test", "acme", "widgets", "service"}
)

// WebDomain generates plausible "label.tld" domain names.
func WebDomain() Gen[string] {
	return New(func(size Size, s seed.Seed) tree.Tree[string] {
		labelIdx, s1 := s.NextBounded(uint64(len(webLabels)))
		tldIdx, _ := s1.NextBounded(uint64(len(webTLDs)))
		return tree.Singleton(fmt.Sprintf("%s.%s", webLabels[labelIdx], webTLDs[tldIdx]))
	})
}

// Email generates "local@domain" strings shaped like email addresses.
func Email() Gen[string] {
	return Bind(StringAlphaNum(NewSize(8)), func(local string) Gen[string] {
		if local == "" {
			local = "user"
		}
		return Map(WebDomain(), func(domain string) string {
			return local + "@" + domain
		})
	})
}

// sqlKeywords are avoided when generating identifier-shaped strings so the
// result is always a syntactically valid, non-reserved identifier.
var sqlKeywords = map[string]bool{
	"select": true, "from": true, "where": true, "table": true, "drop": true,
}

// SQLIdentifier generates a lowercase-letter-leading alphanumeric/underscore
// identifier that avoids common SQL reserved words.
func SQLIdentifier() Gen[string] {
	return Filter(
		Bind(Char(AlphabetLower), func(first byte) Gen[string] {
			return Map(String(AlphabetAlnum+"_", NewSize(10)), func(rest string) string {
				return string(first) + rest
			})
		}),
		func(ident string) bool { return !sqlKeywords[ident] },
		20,
	)
}

// NetworkPort generates a TCP/UDP port number, biased toward the
// well-known range where most interesting bugs live.
func NetworkPort() Gen[int] {
	return Int(Linear(1, 65535))
}

// httpStatusCodes are the status codes HTTPStatus samples from.
var httpStatusCodes = []int{200, 201, 204, 301, 302, 400, 401, 403, 404, 409, 422, 429, 500, 502, 503}

// HTTPStatus generates a real HTTP status code.
func HTTPStatus() Gen[int] {
	return FromElements(httpStatusCodes...)
}

// programmingTokens are archetypal source-level tokens used by
// ProgrammingToken to stress lexer/parser-shaped properties.
var programmingTokens = []string{
	"let", "func", "return", "if", "else", "for", "while", "struct", "interface", "_", "x", "i", "err",
}

// ProgrammingToken generates a string shaped like a source-code token.
func ProgrammingToken() Gen[string] {
	return FromElements(programmingTokens...)
}
