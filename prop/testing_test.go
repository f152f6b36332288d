package prop

import (
	"testing"

	"github.com/justanotherdot/hedgehog-sub000/gen"
)

func TestCheckRunsGeneratedSubtests(t *testing.T) {
	Check(t, Default().WithTests(20), gen.IntRange(-50, 50), func(st *testing.T, x int) {
		if x < -50 || x > 50 {
			st.Fatalf("value %d out of range", x)
		}
	})
}
