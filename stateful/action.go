package stateful

// Action is an instantiated Command: a concrete input drawn from the
// command's generator, the symbolic id standing in for its not-yet-run
// output, and a reference back to the command for execution and
// callbacks.
type Action[State any] struct {
	Name    string
	Input   any
	Output  Var
	command Command[State]
}

// Sequential is an ordered action list generated and executed in order.
type Sequential[State any] struct {
	Actions []Action[State]
}

// Parallel is a sequential prefix followed by two branches generated from
// the same post-prefix state and intended to run concurrently.
type Parallel[State any] struct {
	Prefix  []Action[State]
	Branch1 []Action[State]
	Branch2 []Action[State]
}
