package stateful

// linearize enumerates every interleaving of branch1 and branch2's
// captured checks — C(len1+len2, len1) of them — and replays each in
// order, invoking the ensure thunks as it goes. It succeeds (returns
// true) the moment any interleaving's replay satisfies every check; this
// realizes "if any interleaving satisfies every Ensure, the execution is
// linearizable".
//
// Branch budgets should stay small (a handful of actions each): the
// enumeration is combinatorial, not polynomial.
func linearize[State any](branch1, branch2 []capturedCheck[State]) bool {
	found := false
	interleave(len(branch1), len(branch2), func(order []bool) bool {
		if replay(branch1, branch2, order) {
			found = true
			return false // stop: an interleaving satisfied every check
		}
		return true // keep searching
	})
	return found
}

// interleave recursively generates every sequence of len1+len2 booleans
// containing exactly len1 `true` (branch1) entries and len2 `false`
// (branch2) entries, calling visit with each in turn until it returns
// false.
func interleave(len1, len2 int, visit func(order []bool) bool) {
	order := make([]bool, 0, len1+len2)
	var gen func(remaining1, remaining2 int) bool
	gen = func(remaining1, remaining2 int) bool {
		if remaining1 == 0 && remaining2 == 0 {
			return visit(append([]bool(nil), order...))
		}
		if remaining1 > 0 {
			order = append(order, true)
			cont := gen(remaining1-1, remaining2)
			order = order[:len(order)-1]
			if !cont {
				return false
			}
		}
		if remaining2 > 0 {
			order = append(order, false)
			cont := gen(remaining1, remaining2-1)
			order = order[:len(order)-1]
			if !cont {
				return false
			}
		}
		return true
	}
	gen(len1, len2)
}

// replay walks order, taking the next unused check from branch1 or
// branch2 as indicated, and invokes its ensure thunk. It stops and
// reports failure at the first thunk that returns an error.
func replay[State any](branch1, branch2 []capturedCheck[State], order []bool) bool {
	i1, i2 := 0, 0
	for _, fromBranch1 := range order {
		var check capturedCheck[State]
		if fromBranch1 {
			check = branch1[i1]
			i1++
		} else {
			check = branch2[i2]
			i2++
		}
		if err := check.ensure(); err != nil {
			return false
		}
	}
	return true
}
