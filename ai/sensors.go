package ai

import (
	"math"

	"github.com/mossforge/forestfall/config"
)

// SensorParams tunes one agent's senses.
type SensorParams struct {
	SightRange   float64
	FOV          float64 // radians, centered on facing
	HearingRange float64
}

// Noise is a sound event agents can hear. Noises fade out after
// config.AINoiseLifetime seconds.
type Noise struct {
	Pos Vec2
	Age float64
}

// Perception is the per-tick snapshot handed to the behavior tree.
type Perception struct {
	PlayerVisible  bool
	PlayerDistance float64
	PlayerPos      Vec2
	SelfPos        Vec2
	LastKnown      Vec2
	HasLastKnown   bool
	HeardNoise     bool
	Alert          config.AlertLevel
	HealthFraction float64
}

// Sensors tracks what an agent currently knows about the player.
type Sensors struct {
	Params SensorParams

	alert         config.AlertLevel
	timeSinceSeen float64
	lastKnown     Vec2
	hasLastKnown  bool
	noises        []Noise
}

func NewSensors(params SensorParams) *Sensors {
	return &Sensors{Params: params, timeSinceSeen: math.MaxFloat64 / 2}
}

func (s *Sensors) Alert() config.AlertLevel { return s.alert }

// RegisterNoise records a sound event at a position. Taking damage and loud
// player actions route through this.
func (s *Sensors) RegisterNoise(pos Vec2) {
	s.noises = append(s.noises, Noise{Pos: pos})
}

// ForceAlert raises the alert level directly, used by the damage contract.
func (s *Sensors) ForceAlert(level config.AlertLevel) {
	if level > s.alert {
		s.alert = level
	}
}

// SetLastKnown seeds the last known player position, used when damage reveals
// the player without a sighting.
func (s *Sensors) SetLastKnown(pos Vec2) {
	s.lastKnown = pos
	s.hasLastKnown = true
}

// ClearLastKnown forgets the stored position, used when a search at the spot
// comes up empty.
func (s *Sensors) ClearLastKnown() {
	s.hasLastKnown = false
}

// Update advances the senses one tick and returns the perception snapshot.
// facing is -1 or 1 on the X axis. obstacles block line of sight.
func (s *Sensors) Update(dt float64, self Vec2, facing float64, player Vec2, obstacles []Rect, healthFraction float64) Perception {
	s.timeSinceSeen += dt

	dx, dy := player.X-self.X, player.Y-self.Y
	dist := math.Hypot(dx, dy)

	visible := dist <= s.Params.SightRange &&
		s.inCone(facing, dx, dy) &&
		lineOfSight(self, player, obstacles)

	if visible {
		s.timeSinceSeen = 0
		s.lastKnown = player
		s.hasLastKnown = true
		s.escalate()
	}

	heard := false
	if !visible && dist <= s.Params.HearingRange {
		// Close movement is audible even without sight.
		heard = true
		if s.alert == config.AlertUnaware {
			s.alert = config.AlertSuspicious
		}
		s.lastKnown = player
		s.hasLastKnown = true
	}

	// Age out noise events and react to the ones in range.
	kept := s.noises[:0]
	for _, n := range s.noises {
		n.Age += dt
		if n.Age > config.AINoiseLifetime {
			continue
		}
		nd := math.Hypot(n.Pos.X-self.X, n.Pos.Y-self.Y)
		if nd <= s.Params.HearingRange {
			heard = true
			if s.alert == config.AlertUnaware {
				s.alert = config.AlertSuspicious
			}
			s.lastKnown = n.Pos
			s.hasLastKnown = true
			continue // consumed
		}
		kept = append(kept, n)
	}
	s.noises = kept

	s.decay()

	return Perception{
		PlayerVisible:  visible,
		PlayerDistance: dist,
		PlayerPos:      player,
		SelfPos:        self,
		LastKnown:      s.lastKnown,
		HasLastKnown:   s.hasLastKnown,
		HeardNoise:     heard,
		Alert:          s.alert,
		HealthFraction: healthFraction,
	}
}

func (s *Sensors) inCone(facing, dx, dy float64) bool {
	if s.Params.FOV >= 2*math.Pi {
		return true
	}
	if dx == 0 && dy == 0 {
		return true
	}
	angle := math.Atan2(dy, dx)
	forward := 0.0
	if facing < 0 {
		forward = math.Pi
	}
	diff := math.Abs(normalizeAngle(angle - forward))
	return diff <= s.Params.FOV/2
}

func (s *Sensors) escalate() {
	switch s.alert {
	case config.AlertUnaware:
		s.alert = config.AlertSuspicious
	case config.AlertSuspicious:
		s.alert = config.AlertAlerted
	case config.AlertAlerted:
		s.alert = config.AlertCombat
	}
}

func (s *Sensors) decay() {
	switch {
	case s.alert == config.AlertCombat && s.timeSinceSeen > config.AlertDecayCombat:
		s.alert = config.AlertAlerted
	case s.alert == config.AlertAlerted && s.timeSinceSeen > config.AlertDecayAlert:
		s.alert = config.AlertSuspicious
	case s.alert == config.AlertSuspicious && s.timeSinceSeen > config.AlertDecaySuspicious:
		s.alert = config.AlertUnaware
	}
}

// lineOfSight ray-marches between two points and fails when any obstacle rect
// blocks the ray.
func lineOfSight(from, to Vec2, obstacles []Rect) bool {
	const step = 8.0
	dx, dy := to.X-from.X, to.Y-from.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return true
	}
	steps := int(dist / step)
	for i := 1; i <= steps; i++ {
		t := float64(i) * step / dist
		p := Vec2{X: from.X + dx*t, Y: from.Y + dy*t}
		for _, o := range obstacles {
			if o.Contains(p) {
				return false
			}
		}
	}
	return true
}

func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
