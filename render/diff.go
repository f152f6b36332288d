package render

import "github.com/google/go-cmp/cmp"

// Diff formats a structural diff between a failing value and whatever
// baseline it's compared against, reusing the same comparer quick.Equal
// uses so diagnostics stay consistent across the module.
func Diff(got, want any) string {
	return cmp.Diff(want, got)
}
