package systems

import (
	"math"

	"github.com/mossforge/forestfall/ai"
	"github.com/mossforge/forestfall/components"
	cfg "github.com/mossforge/forestfall/config"
	"github.com/mossforge/forestfall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	patrolArriveDistance = 8.0
	patrolDwellTime      = 1.0
	searchArriveDistance = 12.0
)

// UpdateEnemies runs every enemy's senses, behavior tree decision and state
// machine. Sensors always update so alert levels decay even while the tree
// holds its last decision.
func UpdateEnemies(e *ecs.ECS) {
	dt := DT(e)

	playerEntry, _ := components.Player.First(e.World)
	var playerObject *resolv.Object
	if playerEntry != nil {
		playerObject = components.Object.Get(playerEntry).Object
	}

	obstacles := collectSightBlockers(e)

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		state := components.State.Get(entry)
		state.StateTimer += dt
		if state.CurrentState == cfg.EnemyDying {
			return
		}
		updateSingleEnemy(e, entry, playerObject, obstacles, dt)
	})
}

// collectSightBlockers gathers wall rects for line of sight tests. Platforms
// are thin and jump-through, they don't block vision.
func collectSightBlockers(e *ecs.ECS) []ai.Rect {
	var rects []ai.Rect
	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		rects = append(rects, ai.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H})
	})
	return rects
}

func updateSingleEnemy(e *ecs.ECS, entry *donburi.Entry, playerObject *resolv.Object, obstacles []ai.Rect, dt float64) {
	enemy := components.Enemy.Get(entry)
	physics := components.Physics.Get(entry)
	state := components.State.Get(entry)
	obj := components.Object.Get(entry).Object

	if enemy.AttackCooldownTimer > 0 {
		enemy.AttackCooldownTimer -= dt
	}
	if enemy.InvulnTimer > 0 {
		enemy.InvulnTimer -= dt
	}
	if enemy.PauseTimer > 0 {
		enemy.PauseTimer -= dt
	}

	// Stun locks out thinking and moving until it runs out
	if state.CurrentState == cfg.EnemyStunned {
		enemy.StunTimer -= dt
		if enemy.StunTimer > 0 {
			return
		}
		state.SetState(cfg.EnemyIdle)
	}

	perception := senseWorld(enemy, obj, playerObject, obstacles, entry, dt)
	decision, _ := enemy.Agent.Decide(dt, perception)
	applyDecision(enemy, state, decision, perception)

	switch state.CurrentState {
	case cfg.EnemyIdle:
		physics.VelX = 0

	case cfg.EnemyPatrol:
		runPatrol(enemy, physics, obj)

	case cfg.EnemySearch:
		runSearch(enemy, physics, obj, dt)

	case cfg.EnemyChase:
		runChase(enemy, physics, obj, perception)

	case cfg.EnemyAttack:
		runAttack(e, entry, enemy, physics, state, obj, perception)

	case cfg.EnemyRetreat:
		runRetreat(enemy, physics, obj, perception)
	}
}

func senseWorld(enemy *components.EnemyData, obj *resolv.Object, playerObject *resolv.Object, obstacles []ai.Rect, entry *donburi.Entry, dt float64) ai.Perception {
	self := ai.Vec2{X: obj.X + obj.W/2, Y: obj.Y + obj.H/2}

	// No player means nothing to see; a far-away stand-in keeps the senses
	// ticking so alert decay still runs.
	player := ai.Vec2{X: self.X + 1e6, Y: self.Y}
	if playerObject != nil {
		player = ai.Vec2{X: playerObject.X + playerObject.W/2, Y: playerObject.Y + playerObject.H/2}
	}

	hp := components.Health.Get(entry)
	healthFraction := float64(hp.Current) / float64(hp.Max)

	return enemy.Agent.Sensors.Update(dt, self, enemy.Direction.X, player, obstacles, healthFraction)
}

// applyDecision maps a tree decision onto the enemy state machine. Attack is
// only entered off cooldown; the tree re-issues it next tick otherwise.
func applyDecision(enemy *components.EnemyData, state *components.StateData, decision string, perception ai.Perception) {
	switch decision {
	case ai.DecideIdle:
		state.SetState(cfg.EnemyIdle)
	case ai.DecidePatrol:
		state.SetState(cfg.EnemyPatrol)
	case ai.DecideSearch:
		if state.CurrentState != cfg.EnemySearch {
			state.SetState(cfg.EnemySearch)
			enemy.SearchTarget = components.Vector{X: perception.LastKnown.X, Y: perception.LastKnown.Y}
			enemy.SearchTimer = 0
		}
	case ai.DecideChase:
		state.SetState(cfg.EnemyChase)
	case ai.DecideAttack:
		if enemy.AttackCooldownTimer <= 0 {
			if state.CurrentState != cfg.EnemyAttack {
				state.SetState(cfg.EnemyAttack)
			}
		} else if state.CurrentState != cfg.EnemyAttack {
			state.SetState(cfg.EnemyChase)
		}
	case ai.DecideRetreat:
		state.SetState(cfg.EnemyRetreat)
	}
}

// runPatrol walks the ring of points around the spawn, dwelling briefly at
// each one.
func runPatrol(enemy *components.EnemyData, physics *components.PhysicsData, obj *resolv.Object) {
	if len(enemy.PatrolPoints) == 0 || enemy.PauseTimer > 0 {
		physics.VelX = 0
		return
	}

	target := enemy.PatrolPoints[enemy.PatrolIndex]
	dx := target.X - (obj.X + obj.W/2)
	if math.Abs(dx) < patrolArriveDistance {
		enemy.PatrolIndex = (enemy.PatrolIndex + 1) % len(enemy.PatrolPoints)
		enemy.PauseTimer = patrolDwellTime
		physics.VelX = 0
		return
	}
	moveToward(enemy, physics, dx, enemy.Params.MoveSpeed)
}

// runSearch moves to the last known player position and gives up after the
// archetype's search time.
func runSearch(enemy *components.EnemyData, physics *components.PhysicsData, obj *resolv.Object, dt float64) {
	enemy.SearchTimer += dt
	if enemy.SearchTimer >= enemy.Params.SearchTime {
		enemy.Agent.Sensors.ClearLastKnown()
		physics.VelX = 0
		return
	}

	dx := enemy.SearchTarget.X - (obj.X + obj.W/2)
	if math.Abs(dx) < searchArriveDistance {
		// At the spot: look around by flipping facing
		physics.VelX = 0
		if int(enemy.SearchTimer)%2 == 0 {
			enemy.Direction.X = cfg.DirectionRight
		} else {
			enemy.Direction.X = cfg.DirectionLeft
		}
		return
	}
	moveToward(enemy, physics, dx, enemy.Params.MoveSpeed)
}

func runChase(enemy *components.EnemyData, physics *components.PhysicsData, obj *resolv.Object, perception ai.Perception) {
	target := perception.PlayerPos
	if !perception.PlayerVisible && perception.HasLastKnown {
		target = perception.LastKnown
	}
	dx := target.X - (obj.X + obj.W/2)

	// Stop just inside attack range instead of shoving the player
	if math.Abs(dx) < enemy.Params.AttackRange*0.8 {
		physics.VelX = 0
		faceToward(enemy, dx)
		return
	}
	moveToward(enemy, physics, dx, enemy.Params.MoveSpeed)
}

func runAttack(e *ecs.ECS, entry *donburi.Entry, enemy *components.EnemyData, physics *components.PhysicsData, state *components.StateData, obj *resolv.Object, perception ai.Perception) {
	physics.VelX = 0
	faceToward(enemy, perception.PlayerPos.X-(obj.X+obj.W/2))

	// The swing fires once at the start of the attack state
	if enemy.ActiveHitbox == nil && enemy.AttackCooldownTimer <= 0 && state.StateTimer < 0.1 {
		attack := cfg.AttackData{
			Name:      "Enemy Strike",
			Damage:    enemy.Params.AttackDamage,
			Range:     enemy.Params.AttackRange,
			Duration:  0.2,
			Knockback: 200,
			HitStun:   0.3,
		}
		CreateHitbox(e, entry, attack, false)
		enemy.AttackCooldownTimer = enemy.Params.AttackCooldown
		PlaySFX(e, cfg.SoundAttackSwing)
	}
}

// runRetreat backs away from the player while still facing them.
func runRetreat(enemy *components.EnemyData, physics *components.PhysicsData, obj *resolv.Object, perception ai.Perception) {
	dx := perception.PlayerPos.X - (obj.X + obj.W/2)
	faceToward(enemy, dx)

	speed := enemy.Params.RetreatSpeed
	if speed == 0 {
		speed = enemy.Params.MoveSpeed
	}
	if dx > 0 {
		physics.VelX = -speed
	} else {
		physics.VelX = speed
	}
}

func moveToward(enemy *components.EnemyData, physics *components.PhysicsData, dx, speed float64) {
	faceToward(enemy, dx)
	if dx > 0 {
		physics.VelX = speed
	} else {
		physics.VelX = -speed
	}
}

func faceToward(enemy *components.EnemyData, dx float64) {
	if dx > 0 {
		enemy.Direction.X = cfg.DirectionRight
	} else if dx < 0 {
		enemy.Direction.X = cfg.DirectionLeft
	}
}
