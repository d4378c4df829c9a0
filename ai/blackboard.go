// Package ai holds the engine-independent enemy intelligence: perception,
// alert tracking, a blackboard and the behavior trees that drive enemy state
// decisions. Nothing here touches the ECS or the renderer, which keeps the
// decision logic testable on its own.
package ai

// Vec2 is a plain 2D point.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned box used for line of sight checks.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the rect.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Blackboard is shared memory between behavior tree nodes: arbitrary keyed
// values plus named countdown timers.
type Blackboard struct {
	values map[string]any
	timers map[string]float64
}

func NewBlackboard() *Blackboard {
	return &Blackboard{
		values: make(map[string]any),
		timers: make(map[string]float64),
	}
}

func (b *Blackboard) Set(key string, value any) {
	b.values[key] = value
}

func (b *Blackboard) Get(key string) (any, bool) {
	v, ok := b.values[key]
	return v, ok
}

// GetString returns the value as a string, or "" when absent or mistyped.
func (b *Blackboard) GetString(key string) string {
	if v, ok := b.values[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetVec returns the value as a Vec2, reporting whether it was present.
func (b *Blackboard) GetVec(key string) (Vec2, bool) {
	if v, ok := b.values[key]; ok {
		if p, ok := v.(Vec2); ok {
			return p, true
		}
	}
	return Vec2{}, false
}

func (b *Blackboard) Delete(key string) {
	delete(b.values, key)
}

// SetTimer starts a named countdown in seconds.
func (b *Blackboard) SetTimer(name string, seconds float64) {
	b.timers[name] = seconds
}

// TimerExpired reports whether a named timer has run out. Timers that were
// never set count as expired.
func (b *Blackboard) TimerExpired(name string) bool {
	t, ok := b.timers[name]
	return !ok || t <= 0
}

// TimerRemaining returns the seconds left on a named timer.
func (b *Blackboard) TimerRemaining(name string) float64 {
	t := b.timers[name]
	if t < 0 {
		return 0
	}
	return t
}

// Update advances all timers.
func (b *Blackboard) Update(dt float64) {
	for name, t := range b.timers {
		if t > 0 {
			b.timers[name] = t - dt
		}
	}
}
