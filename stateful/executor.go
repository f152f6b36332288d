package stateful

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ExecuteSequential runs actions in order against the system under test,
// binding each output in env, evolving state via Update, and checking
// Ensure immediately after. The first Ensure failure halts execution and
// is returned.
func ExecuteSequential[State any](state State, env *Environment, actions []Action[State]) (State, error) {
	for i, action := range actions {
		before := state
		output := action.command.Execute(action.Input)
		env.Insert(action.Output.ID(), output)

		if action.command.Update != nil {
			state = action.command.Update(before, action.Input, Concrete(output))
		}

		if action.command.Ensure != nil {
			if err := action.command.Ensure(before, state, action.Input, output); err != nil {
				return state, fmt.Errorf("action %d (%s): %w", i, action.Name, err)
			}
		}
	}
	return state, nil
}

// capturedCheck records one branch action's effect without invoking its
// Ensure callback yet, so the linearizability search can replay checks in
// whatever interleaving order it is testing.
type capturedCheck[State any] struct {
	name   string
	before State
	after  State
	ensure func() error
}

// runBranch executes a branch sequentially against a private copy of
// state, capturing each action's before/after state and a thunk that will
// invoke its Ensure callback when called — but does not call it yet.
func runBranch[State any](state State, env *Environment, actions []Action[State]) []capturedCheck[State] {
	checks := make([]capturedCheck[State], 0, len(actions))
	for _, action := range actions {
		before := state
		output := action.command.Execute(action.Input)
		env.Insert(action.Output.ID(), output)
		if action.command.Update != nil {
			state = action.command.Update(before, action.Input, Concrete(output))
		}
		after := state

		cmd := action.command
		input := action.Input
		checks = append(checks, capturedCheck[State]{
			name:   action.Name,
			before: before,
			after:  after,
			ensure: func() error {
				if cmd.Ensure == nil {
					return nil
				}
				return cmd.Ensure(before, after, input, output)
			},
		})
	}
	return checks
}

// ExecuteParallel runs the prefix sequentially (with full Ensure
// checking), then runs both branches concurrently on two goroutines
// against a shared post-prefix state snapshot, capturing effects without
// running their Ensure callbacks. After both branches finish, it searches
// for an interleaving of the captured checks whose replay satisfies every
// Ensure — if one exists, the execution is linearizable; if none does, a
// linearizability violation is reported.
func ExecuteParallel[State any](state State, env *Environment, p Parallel[State]) (State, error) {
	state, err := ExecuteSequential(state, env, p.Prefix)
	if err != nil {
		return state, err
	}

	var checks1, checks2 []capturedCheck[State]
	env1, env2 := NewEnvironment(), NewEnvironment()

	// Each branch gets its own private Environment during capture: env is a
	// plain map with no internal locking, and two goroutines calling Insert
	// on it concurrently — even on disjoint keys — is a data race Go's
	// runtime treats as fatal and unrecoverable. The branches' symbolic ids
	// never overlap (see ActionGenerator.GenerateParallel), so merging
	// env1/env2 into env after the join is equivalent to having shared it.
	runCaptured := func(branch int, actions []Action[State], branchEnv *Environment, out *[]capturedCheck[State]) func() (err error) {
		return func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("branch %d panicked: %v", branch, r)
				}
			}()
			*out = runBranch(state, branchEnv, actions)
			return nil
		}
	}

	var eg errgroup.Group
	eg.Go(runCaptured(1, p.Branch1, env1, &checks1))
	eg.Go(runCaptured(2, p.Branch2, env2, &checks2))
	if err := eg.Wait(); err != nil {
		return state, err
	}
	env.Merge(env1)
	env.Merge(env2)

	if !linearize(checks1, checks2) {
		return state, fmt.Errorf("linearizability violation: no interleaving of %d+%d branch actions satisfies every postcondition",
			len(checks1), len(checks2))
	}
	return state, nil
}
