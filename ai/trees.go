package ai

import "github.com/mossforge/forestfall/config"

// Decision keys written to the blackboard by tree actions.
const (
	KeyNextState  = "next_state"
	KeySearchPos  = "search_pos"
	KeyRetreating = "retreating"
)

// retreatExitMargin is the health fraction regained above the retreat
// threshold before an enemy re-engages. Keeps it from flapping between
// retreat and attack right at the threshold.
const retreatExitMargin = 0.2

// Decision values. These map onto the enemy state machine.
const (
	DecideIdle    = "idle"
	DecidePatrol  = "patrol"
	DecideSearch  = "search"
	DecideChase   = "chase"
	DecideAttack  = "attack"
	DecideRetreat = "retreat"
)

func playerVisible(ctx *Context) bool {
	return ctx.Perception.PlayerVisible
}

func playerInAttackRange(attackRange float64) func(*Context) bool {
	return func(ctx *Context) bool {
		return ctx.Perception.PlayerVisible && ctx.Perception.PlayerDistance <= attackRange
	}
}

func playerTooClose(minRange float64) func(*Context) bool {
	return func(ctx *Context) bool {
		return ctx.Perception.PlayerVisible && ctx.Perception.PlayerDistance < minRange
	}
}

// shouldRetreat latches once health falls to the threshold and holds until it
// recovers past the threshold plus the exit margin.
func shouldRetreat(threshold float64) func(*Context) bool {
	return func(ctx *Context) bool {
		retreating := false
		if v, ok := ctx.BB.Get(KeyRetreating); ok {
			retreating, _ = v.(bool)
		}

		if retreating {
			if ctx.Perception.HealthFraction > threshold+retreatExitMargin {
				ctx.BB.Set(KeyRetreating, false)
				return false
			}
			return true
		}
		if ctx.Perception.HealthFraction <= threshold {
			ctx.BB.Set(KeyRetreating, true)
			return true
		}
		return false
	}
}

func shouldInvestigate(ctx *Context) bool {
	return ctx.Perception.Alert >= config.AlertAlerted && ctx.Perception.HasLastKnown
}

func decide(state string) *Action {
	return Do(func(ctx *Context) {
		ctx.BB.Set(KeyNextState, state)
		if state == DecideSearch {
			ctx.BB.Set(KeySearchPos, ctx.Perception.LastKnown)
		}
	})
}

// BuildTree constructs the behavior tree for an archetype. Unknown names get
// the basic tree.
func BuildTree(name string, attackRange, retreatThreshold float64) Node {
	switch name {
	case "aggressive":
		return buildAggressiveTree(attackRange, retreatThreshold)
	case "defensive":
		return buildDefensiveTree(attackRange, retreatThreshold)
	default:
		return buildBasicTree(attackRange, retreatThreshold)
	}
}

// buildAggressiveTree closes distance and commits to attacks. Retreat only at
// critically low health.
func buildAggressiveTree(attackRange, retreatThreshold float64) Node {
	return &Selector{Children: []Node{
		&Sequence{Children: []Node{
			If(shouldRetreat(retreatThreshold)),
			decide(DecideRetreat),
		}},
		&Sequence{Children: []Node{
			If(playerInAttackRange(attackRange)),
			decide(DecideAttack),
		}},
		&Sequence{Children: []Node{
			If(playerVisible),
			decide(DecideChase),
		}},
		&Sequence{Children: []Node{
			If(shouldInvestigate),
			decide(DecideSearch),
		}},
		decide(DecidePatrol),
	}}
}

// buildDefensiveTree keeps the player at ranged attack distance and backs off
// early when hurt or crowded.
func buildDefensiveTree(attackRange, retreatThreshold float64) Node {
	return &Selector{Children: []Node{
		&Sequence{Children: []Node{
			If(shouldRetreat(retreatThreshold)),
			decide(DecideRetreat),
		}},
		&Sequence{Children: []Node{
			If(playerTooClose(attackRange * 0.4)),
			decide(DecideRetreat),
		}},
		&Sequence{Children: []Node{
			If(playerInAttackRange(attackRange)),
			decide(DecideAttack),
		}},
		&Sequence{Children: []Node{
			If(playerVisible),
			decide(DecideChase),
		}},
		&Sequence{Children: []Node{
			If(shouldInvestigate),
			decide(DecideSearch),
		}},
		decide(DecidePatrol),
	}}
}

// buildBasicTree is the simple chase-and-attack loop.
func buildBasicTree(attackRange, retreatThreshold float64) Node {
	return &Selector{Children: []Node{
		&Sequence{Children: []Node{
			If(shouldRetreat(retreatThreshold)),
			decide(DecideRetreat),
		}},
		&Sequence{Children: []Node{
			If(playerInAttackRange(attackRange)),
			decide(DecideAttack),
		}},
		&Sequence{Children: []Node{
			If(playerVisible),
			decide(DecideChase),
		}},
		&Sequence{Children: []Node{
			If(shouldInvestigate),
			decide(DecideSearch),
		}},
		decide(DecidePatrol),
	}}
}
