package prop

import "flag"

// Config bounds a property run: how many tests to attempt, how hard to
// search for a minimal counterexample, how large generated structures are
// allowed to grow, and how many discards are tolerated before giving up.
type Config struct {
	TestLimit    int
	ShrinkLimit  int
	SizeLimit    int
	DiscardLimit int
}

var (
	flagTests    = flag.Int("hedgehog.tests", 100, "number of tests to run per property")
	flagShrinks  = flag.Int("hedgehog.shrinks", 1000, "maximum shrink steps per failure")
	flagSize     = flag.Int("hedgehog.size", 100, "maximum generation size")
	flagDiscards = flag.Int("hedgehog.discards", 100, "maximum discards before giving up")
)

// Default returns a Config built from command-line flags, falling back to
// the library's standard limits (100 tests, 1000 shrinks, size 100, 100
// discards) when the flags are left unset.
func Default() Config {
	return Config{
		TestLimit:    *flagTests,
		ShrinkLimit:  *flagShrinks,
		SizeLimit:    *flagSize,
		DiscardLimit: *flagDiscards,
	}
}

// WithTests overrides TestLimit.
func (c Config) WithTests(n int) Config { c.TestLimit = n; return c }

// WithShrinks overrides ShrinkLimit.
func (c Config) WithShrinks(n int) Config { c.ShrinkLimit = n; return c }

// WithSizeLimit overrides SizeLimit.
func (c Config) WithSizeLimit(n int) Config { c.SizeLimit = n; return c }

// WithDiscardLimit overrides DiscardLimit.
func (c Config) WithDiscardLimit(n int) Config { c.DiscardLimit = n; return c }
