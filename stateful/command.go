package stateful

import "github.com/justanotherdot/hedgehog-sub000/gen"

// Command describes one kind of operation against the model: how to
// generate an input in a given state, how to execute it, and the three
// callbacks that gate, evolve, and check it. Input and Output are
// type-erased to `any` so a single ActionGenerator can hold commands with
// different Input/Output types — see NewCommand for the typed builder
// that keeps call sites generic.
type Command[State any] struct {
	Name string

	// InputGen returns a generator for this command's input given the
	// current state, or ok=false if the command cannot fire in this
	// state — the precondition gate described in spec.md's input_gen
	// contract.
	InputGen func(state State) (g gen.Gen[any], ok bool)

	// Require is an additional precondition checked against the drawn
	// input; returning false discards this generation step.
	Require func(state State, input any) bool

	// Execute runs the command against the system under test.
	Execute func(input any) any

	// Update evolves the model. output is the Var (symbolic during
	// generation, concrete during execution) so the same callback can be
	// shared across both phases.
	Update func(state State, input any, output Var) State

	// Ensure is the postcondition: given the state before and after
	// execution plus the concrete input/output, it returns an error if
	// the system under test misbehaved.
	Ensure func(before, after State, input, output any) error
}

// CanFire reports whether this command's InputGen accepts the given
// state.
func (c Command[State]) CanFire(state State) bool {
	if c.InputGen == nil {
		return false
	}
	_, ok := c.InputGen(state)
	return ok
}

// Builder assembles a Command[State] for a specific Input/Output pair,
// erasing both to `any` on Build so the ActionGenerator can treat commands
// uniformly.
type Builder[State, Input, Output any] struct {
	name     string
	inputGen func(State) (gen.Gen[Input], bool)
	require  func(State, Input) bool
	execute  func(Input) Output
	update   func(State, Input, Var) State
	ensure   func(before, after State, input Input, output Output) error
}

// NewCommand starts a Builder for a command named name.
func NewCommand[State, Input, Output any](
	name string,
	inputGen func(State) (gen.Gen[Input], bool),
	execute func(Input) Output,
) *Builder[State, Input, Output] {
	return &Builder[State, Input, Output]{name: name, inputGen: inputGen, execute: execute}
}

// WithRequire attaches an additional precondition.
func (b *Builder[State, Input, Output]) WithRequire(require func(State, Input) bool) *Builder[State, Input, Output] {
	b.require = require
	return b
}

// WithUpdate attaches the model-evolution callback.
func (b *Builder[State, Input, Output]) WithUpdate(update func(State, Input, Var) State) *Builder[State, Input, Output] {
	b.update = update
	return b
}

// WithEnsure attaches the postcondition callback.
func (b *Builder[State, Input, Output]) WithEnsure(ensure func(before, after State, input Input, output Output) error) *Builder[State, Input, Output] {
	b.ensure = ensure
	return b
}

// Build type-erases the Builder into a Command[State].
func (b *Builder[State, Input, Output]) Build() Command[State] {
	cmd := Command[State]{Name: b.name}

	cmd.InputGen = func(state State) (gen.Gen[any], bool) {
		g, ok := b.inputGen(state)
		if !ok {
			return gen.Gen[any]{}, false
		}
		return gen.Map(g, func(i Input) any { return i }), true
	}

	if b.require != nil {
		cmd.Require = func(state State, input any) bool {
			return b.require(state, input.(Input))
		}
	}

	cmd.Execute = func(input any) any {
		return b.execute(input.(Input))
	}

	if b.update != nil {
		cmd.Update = func(state State, input any, output Var) State {
			return b.update(state, input.(Input), output)
		}
	}

	if b.ensure != nil {
		cmd.Ensure = func(before, after State, input, output any) error {
			return b.ensure(before, after, input.(Input), output.(Output))
		}
	}

	return cmd
}
