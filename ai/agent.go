package ai

import "github.com/mossforge/forestfall/config"

// Agent bundles one enemy's senses, memory and decision tree. Decisions run
// on a fixed cadence so per-frame movement stays decoupled from thinking.
type Agent struct {
	Tree    Node
	BB      *Blackboard
	Sensors *Sensors

	decisionTimer float64
	lastDecision  string
}

// NewAgent builds an agent for an archetype parameter set.
func NewAgent(params config.AIParams) *Agent {
	sensors := NewSensors(SensorParams{
		SightRange:   params.SightRange,
		FOV:          params.FOVDegrees * (3.141592653589793 / 180.0),
		HearingRange: params.HearingRange,
	})
	return &Agent{
		Tree:         BuildTree(params.Tree, params.AttackRange, params.RetreatThreshold),
		BB:           NewBlackboard(),
		Sensors:      sensors,
		lastDecision: DecidePatrol,
	}
}

// LastDecision returns the most recent tree output.
func (a *Agent) LastDecision() string { return a.lastDecision }

// ForceDecision overrides the held decision without waiting for the next
// evaluation, used when taking damage demands an immediate reaction.
func (a *Agent) ForceDecision(state string) {
	a.lastDecision = state
	a.BB.Set(KeyNextState, state)
}

// Decide advances the agent one tick. It always updates senses and timers but
// only re-evaluates the tree every config.AIDecisionInterval seconds. The
// returned bool is true when a fresh decision was made this tick.
func (a *Agent) Decide(dt float64, perception Perception) (string, bool) {
	a.BB.Update(dt)

	a.decisionTimer += dt
	if a.decisionTimer < config.AIDecisionInterval {
		return a.lastDecision, false
	}
	a.decisionTimer -= config.AIDecisionInterval

	ctx := &Context{BB: a.BB, Perception: perception}
	a.Tree.Tick(ctx)
	if next := a.BB.GetString(KeyNextState); next != "" {
		a.lastDecision = next
	}
	return a.lastDecision, true
}
