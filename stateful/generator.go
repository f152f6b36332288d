package stateful

import (
	"github.com/justanotherdot/hedgehog-sub000/gen"
	"github.com/justanotherdot/hedgehog-sub000/seed"
)

// generationSize is the fixed Size used when drawing command inputs —
// stateful sequences care about command choice and ordering, not about
// scaling individual inputs with a test's size budget.
const generationSize = 30

// context carries per-generation mutable state: the PRNG stream, the
// model state, and the strictly-increasing symbolic id counter.
type context[State any] struct {
	seed   seed.Seed
	state  State
	nextID SymbolicId
}

func (c *context[State]) nextSeed() seed.Seed {
	s, rest := c.seed.Split()
	c.seed = rest
	return s
}

func (c *context[State]) newVar() SymbolicId {
	id := c.nextID
	c.nextID++
	return id
}

// ActionGenerator builds Sequential and Parallel action sequences from a
// registered set of Commands, threading a model state through generation
// so later commands see the effects of earlier ones.
type ActionGenerator[State any] struct {
	commands []Command[State]
}

// NewActionGenerator builds an empty ActionGenerator.
func NewActionGenerator[State any]() *ActionGenerator[State] {
	return &ActionGenerator[State]{}
}

// AddCommand registers a command and returns the generator for chaining.
func (g *ActionGenerator[State]) AddCommand(c Command[State]) *ActionGenerator[State] {
	g.commands = append(g.commands, c)
	return g
}

// availableCommands returns the indices of commands whose InputGen
// accepts state — the precondition pre-filtering gate.
func (g *ActionGenerator[State]) availableCommands(state State) []int {
	var out []int
	for i, c := range g.commands {
		if c.CanFire(state) {
			out = append(out, i)
		}
	}
	return out
}

// generateStep draws one action from the available commands against ctx,
// retrying a bounded number of times when a Require callback rejects the
// drawn input. It returns ok=false if no command is available or every
// retry is rejected.
func (g *ActionGenerator[State]) generateStep(ctx *context[State]) (Action[State], bool) {
	available := g.availableCommands(ctx.state)
	if len(available) == 0 {
		return Action[State]{}, false
	}

	const maxAttempts = 10
	for attempt := 0; attempt < maxAttempts; attempt++ {
		idxSeed := ctx.nextSeed()
		pick, _ := idxSeed.NextBounded(uint64(len(available)))
		cmd := g.commands[available[pick]]

		inputGen, ok := cmd.InputGen(ctx.state)
		if !ok {
			continue
		}
		inputTree := inputGen.Generate(gen.NewSize(generationSize), ctx.nextSeed())
		input := inputTree.Value

		if cmd.Require != nil && !cmd.Require(ctx.state, input) {
			continue
		}

		id := ctx.newVar()
		output := Symbolic(id)
		if cmd.Update != nil {
			ctx.state = cmd.Update(ctx.state, input, output)
		}

		return Action[State]{Name: cmd.Name, Input: input, Output: output, command: cmd}, true
	}
	return Action[State]{}, false
}

// GenerateSequential generates up to length actions in order, stopping
// early if no command is ever available.
func (g *ActionGenerator[State]) GenerateSequential(initialState State, length int, s seed.Seed) Sequential[State] {
	ctx := &context[State]{seed: s, state: initialState}
	var actions []Action[State]
	for i := 0; i < length; i++ {
		action, ok := g.generateStep(ctx)
		if !ok {
			break
		}
		actions = append(actions, action)
	}
	return Sequential[State]{Actions: actions}
}

// GenerateParallel generates a sequential prefix, then two branches from
// the same post-prefix state snapshot. Branch2's id counter is advanced
// past prefix+branch1's allocations first, so the two branches' symbolic
// ids never collide even though they were generated independently.
func (g *ActionGenerator[State]) GenerateParallel(initialState State, prefixLen, branchLen int, s seed.Seed) Parallel[State] {
	prefixSeed, rest := s.Split()
	prefixCtx := &context[State]{seed: prefixSeed, state: initialState}
	var prefix []Action[State]
	for i := 0; i < prefixLen; i++ {
		action, ok := g.generateStep(prefixCtx)
		if !ok {
			break
		}
		prefix = append(prefix, action)
	}

	branch1Seed, branch2Seed := rest.Split()

	branch1Ctx := &context[State]{seed: branch1Seed, state: prefixCtx.state, nextID: prefixCtx.nextID}
	var branch1 []Action[State]
	for i := 0; i < branchLen; i++ {
		action, ok := g.generateStep(branch1Ctx)
		if !ok {
			break
		}
		branch1 = append(branch1, action)
	}

	branch2Ctx := &context[State]{seed: branch2Seed, state: prefixCtx.state, nextID: branch1Ctx.nextID}
	var branch2 []Action[State]
	for i := 0; i < branchLen; i++ {
		action, ok := g.generateStep(branch2Ctx)
		if !ok {
			break
		}
		branch2 = append(branch2, action)
	}

	return Parallel[State]{Prefix: prefix, Branch1: branch1, Branch2: branch2}
}
