package stateful

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/justanotherdot/hedgehog-sub000/gen"
	"github.com/justanotherdot/hedgehog-sub000/prop"
	"github.com/justanotherdot/hedgehog-sub000/seed"
)

var errAlwaysFails = errors.New("postcondition never satisfied")

// TestPrecondition_GateExcludesIneligibleCommands drives many random
// sequence generations and checks that withdraw, whose input_gen refuses
// an empty balance, never appears as an action against a state where the
// model balance was zero at generation time.
func TestPrecondition_GateExcludesIneligibleCommands(t *testing.T) {
	prop.Check(t, prop.Default().WithTests(200), gen.IntRange(0, 1<<30), func(t *testing.T, rawSeed int) {
		ag := NewActionGenerator[bankState]().AddCommand(depositCommand()).AddCommand(withdrawCommand())
		sequence := ag.GenerateSequential(bankState{}, 20, seed.FromUint64(uint64(rawSeed)))

		replay := bankState{}
		for _, action := range sequence.Actions {
			if action.Name == "withdraw" && replay.balance <= 0 {
				t.Fatalf("withdraw fired against a zero/negative balance: %+v", replay)
			}
			amount := action.Input.(int)
			switch action.Name {
			case "deposit":
				replay.balance += amount
			case "withdraw":
				replay.balance -= amount
			}
		}
	})
}

// TestLinearizability_SoundnessOverManySequences drives many random
// parallel generations over the bank model and asserts that every
// generated parallel execution linearizes — the model's invariants (no
// negative balance) never give an interleaving with no satisfying order.
func TestLinearizability_SoundnessOverManySequences(t *testing.T) {
	prop.Check(t, prop.Default().WithTests(100), gen.IntRange(0, 1<<30), func(t *testing.T, rawSeed int) {
		ag := NewActionGenerator[bankState]().AddCommand(depositCommand()).AddCommand(withdrawCommand())
		parallel := ag.GenerateParallel(bankState{balance: 50}, 2, 3, seed.FromUint64(uint64(rawSeed)))

		env := NewEnvironment()
		final, err := ExecuteParallel(bankState{balance: 50}, env, parallel)
		require.NoError(t, err, "no interleaving satisfied every postcondition")
		require.GreaterOrEqual(t, final.balance, 0, "linearized final state violates the non-negative balance invariant")
	})
}

// TestLinearizability_RejectsNonLinearizableHistory builds a command whose
// Ensure callback can never be satisfied by any interleaving (it always
// errors), confirming ExecuteParallel surfaces this as a failure instead
// of silently accepting an unsound history.
func TestLinearizability_RejectsNonLinearizableHistory(t *testing.T) {
	type counterState struct{ value int }

	alwaysFails := NewCommand[counterState, int, int](
		"poison",
		func(counterState) (gen.Gen[int], bool) { return gen.Constant(1), true },
		func(v int) int { return v },
	).WithUpdate(func(s counterState, v int, _ Var) counterState {
		s.value += v
		return s
	}).WithEnsure(func(_, _ counterState, _, _ int) error {
		return errAlwaysFails
	}).Build()

	ag := NewActionGenerator[counterState]().AddCommand(alwaysFails)
	parallel := ag.GenerateParallel(counterState{}, 0, 1, seed.FromUint64(3))

	env := NewEnvironment()
	_, err := ExecuteParallel(counterState{}, env, parallel)
	require.Error(t, err, "expected ExecuteParallel to reject a history with no satisfying interleaving")
}
