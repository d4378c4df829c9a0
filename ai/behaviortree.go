package ai

// Status is a behavior tree node result.
type Status int

const (
	Failure Status = iota
	Success
	Running
)

// Context is what nodes see when ticked.
type Context struct {
	BB         *Blackboard
	Perception Perception
}

// Node is a single behavior tree node.
type Node interface {
	Tick(ctx *Context) Status
}

// Sequence runs children in order and fails on the first failure.
type Sequence struct {
	Children []Node
}

func (s *Sequence) Tick(ctx *Context) Status {
	for _, child := range s.Children {
		switch child.Tick(ctx) {
		case Failure:
			return Failure
		case Running:
			return Running
		}
	}
	return Success
}

// Selector runs children in order and succeeds on the first success.
type Selector struct {
	Children []Node
}

func (s *Selector) Tick(ctx *Context) Status {
	for _, child := range s.Children {
		switch child.Tick(ctx) {
		case Success:
			return Success
		case Running:
			return Running
		}
	}
	return Failure
}

// Condition wraps a predicate.
type Condition struct {
	Check func(ctx *Context) bool
}

func (c *Condition) Tick(ctx *Context) Status {
	if c.Check(ctx) {
		return Success
	}
	return Failure
}

// Action wraps a leaf behavior.
type Action struct {
	Run func(ctx *Context) Status
}

func (a *Action) Tick(ctx *Context) Status {
	return a.Run(ctx)
}

// Do is a convenience action that always succeeds.
func Do(run func(ctx *Context)) *Action {
	return &Action{Run: func(ctx *Context) Status {
		run(ctx)
		return Success
	}}
}

// If is a convenience condition.
func If(check func(ctx *Context) bool) *Condition {
	return &Condition{Check: check}
}
