package stateful

import (
	"fmt"
	"testing"

	"github.com/justanotherdot/hedgehog-sub000/gen"
	"github.com/justanotherdot/hedgehog-sub000/seed"
)

// bankState models a single account: its believed balance and a count of
// transactions the model has observed.
type bankState struct {
	balance          int
	transactionCount int
}

func depositCommand() Command[bankState] {
	return NewCommand[bankState, int, int](
		"deposit",
		func(bankState) (gen.Gen[int], bool) { return gen.IntRange(1, 100), true },
		func(amount int) int { return amount }, // execute: return new balance delta applied by the test harness
	).WithUpdate(func(s bankState, amount int, _ Var) bankState {
		s.balance += amount
		s.transactionCount++
		return s
	}).WithEnsure(func(before, after bankState, amount, _ int) error {
		if after.balance != before.balance+amount {
			return fmt.Errorf("balance mismatch: before=%d amount=%d after=%d", before.balance, amount, after.balance)
		}
		return nil
	}).Build()
}

func withdrawCommand() Command[bankState] {
	return NewCommand[bankState, int, int](
		"withdraw",
		func(s bankState) (gen.Gen[int], bool) {
			if s.balance <= 0 {
				return gen.Gen[int]{}, false
			}
			return gen.IntRange(1, s.balance), true
		},
		func(amount int) int { return amount },
	).WithRequire(func(s bankState, amount int) bool {
		return amount <= s.balance
	}).WithUpdate(func(s bankState, amount int, _ Var) bankState {
		s.balance -= amount
		s.transactionCount++
		return s
	}).WithEnsure(func(before, after bankState, amount, _ int) error {
		if after.balance < 0 {
			return fmt.Errorf("balance went negative: %d", after.balance)
		}
		return nil
	}).Build()
}

func TestSequentialBankInvariantHolds(t *testing.T) {
	ag := NewActionGenerator[bankState]().AddCommand(depositCommand()).AddCommand(withdrawCommand())
	sequence := ag.GenerateSequential(bankState{}, 20, seed.FromUint64(42))

	env := NewEnvironment()
	final, err := ExecuteSequential(bankState{}, env, sequence.Actions)
	if err != nil {
		t.Fatalf("sequential execution failed: %v", err)
	}
	if final.balance < 0 {
		t.Fatalf("final balance went negative: %d", final.balance)
	}
	if final.transactionCount != len(sequence.Actions) {
		t.Fatalf("transaction_count %d != action_count %d", final.transactionCount, len(sequence.Actions))
	}
}

func TestWithdrawNeverFiresOnEmptyAccount(t *testing.T) {
	withdraw := withdrawCommand()
	if withdraw.CanFire(bankState{balance: 0}) {
		t.Fatal("withdraw must not be available when balance is zero")
	}
	if !withdraw.CanFire(bankState{balance: 10}) {
		t.Fatal("withdraw must be available when balance is positive")
	}
}

func TestParallelBankLinearizes(t *testing.T) {
	ag := NewActionGenerator[bankState]().AddCommand(depositCommand()).AddCommand(withdrawCommand())
	parallel := ag.GenerateParallel(bankState{balance: 50}, 2, 3, seed.FromUint64(7))

	env := NewEnvironment()
	final, err := ExecuteParallel(bankState{balance: 50}, env, parallel)
	if err != nil {
		t.Fatalf("parallel execution failed: %v", err)
	}
	if final.balance < 0 {
		t.Fatalf("final balance went negative: %d", final.balance)
	}
}
