package components

import (
	"math"
	"math/rand"

	"github.com/mossforge/forestfall/config"
	"github.com/yohamta/donburi"
)

// Particle is one live particle. Kept flat for cache-friendly updates.
type Particle struct {
	X, Y       float64
	VelX, VelY float64
	Size       float64
	Lifetime   float64
	MaxLife    float64
	Gravity    float64
	Drag       float64
	WindFactor float64
	Rotation   float64
	Spin       float64
	Type       config.ParticleType
	Blend      config.ParticleBlend
	Color      [4]uint8
	EndColor   [4]uint8
}

// Progress is 0 at spawn, 1 at expiry.
func (p *Particle) Progress() float64 {
	if p.MaxLife <= 0 {
		return 1
	}
	return 1 - p.Lifetime/p.MaxLife
}

// Emitter spawns particles continuously. Fractional emission accumulates so
// low rates still emit.
type Emitter struct {
	X, Y     float64
	Config   config.ParticleConfig
	Rate     float64 // particles per second
	Duration float64 // seconds, negative means forever
	elapsed  float64
	pending  float64
	active   bool
}

// ParticleSystemData is the singleton particle pool. All simulation lives on
// this struct so the pool stays testable without a world.
type ParticleSystemData struct {
	Particles []Particle
	Emitters  []*Emitter

	WindX, WindY float64
	Rng          *rand.Rand

	MaxParticles int
	Enabled      bool
}

var ParticleSystem = donburi.NewComponentType[ParticleSystemData]()

// NewParticleSystemData builds a pool with the configured cap. A fixed seed
// keeps effect tests reproducible.
func NewParticleSystemData(seed int64) ParticleSystemData {
	return ParticleSystemData{
		Rng:          rand.New(rand.NewSource(seed)),
		MaxParticles: config.Particles.MaxParticles,
		Enabled:      true,
	}
}

// SetWind sets the environmental wind force applied to susceptible particles.
func (ps *ParticleSystemData) SetWind(x, y float64) {
	ps.WindX, ps.WindY = x, y
}

// Burst emits cfg.Count particles at a position immediately.
func (ps *ParticleSystemData) Burst(x, y float64, cfg config.ParticleConfig) {
	if !ps.Enabled {
		return
	}
	for i := 0; i < cfg.Count; i++ {
		ps.add(ps.spawn(x, y, cfg))
	}
}

// BurstPreset is Burst with a named preset. Unknown names are a no-op.
func (ps *ParticleSystemData) BurstPreset(x, y float64, name string) {
	cfg, ok := config.ParticlePresets[name]
	if !ok {
		return
	}
	ps.Burst(x, y, cfg)
}

// CreateEmitter attaches a continuous emitter. Returns nil when the emitter
// cap is reached.
func (ps *ParticleSystemData) CreateEmitter(x, y float64, cfg config.ParticleConfig, rate, duration float64) *Emitter {
	if len(ps.Emitters) >= config.Particles.MaxEmitters {
		return nil
	}
	e := &Emitter{X: x, Y: y, Config: cfg, Rate: rate, Duration: duration, active: true}
	ps.Emitters = append(ps.Emitters, e)
	return e
}

// Stop deactivates an emitter. Its particles live out their lifetimes.
func (e *Emitter) Stop() { e.active = false }

// Step advances every particle and emitter by dt seconds.
func (ps *ParticleSystemData) Step(dt float64) {
	if !ps.Enabled {
		return
	}

	// Emitters first so newborn particles render this frame.
	kept := ps.Emitters[:0]
	for _, e := range ps.Emitters {
		if !e.active {
			continue
		}
		e.elapsed += dt
		if e.Duration >= 0 && e.elapsed >= e.Duration {
			continue
		}
		e.pending += e.Rate * dt
		for e.pending >= 1 {
			e.pending--
			ps.add(ps.spawn(e.X, e.Y, e.Config))
		}
		kept = append(kept, e)
	}
	ps.Emitters = kept

	live := ps.Particles[:0]
	for i := range ps.Particles {
		p := ps.Particles[i]
		p.Lifetime -= dt
		if p.Lifetime <= 0 {
			continue
		}
		p.VelX += ps.WindX * p.WindFactor * dt
		p.VelY += (ps.WindY*p.WindFactor + p.Gravity) * dt
		if p.Drag > 0 {
			decay := 1 - p.Drag*dt
			if decay < 0 {
				decay = 0
			}
			p.VelX *= decay
			p.VelY *= decay
		}
		p.X += p.VelX * dt
		p.Y += p.VelY * dt
		p.Rotation += p.Spin * dt
		live = append(live, p)
	}
	ps.Particles = live
}

// Clear drops all particles and emitters.
func (ps *ParticleSystemData) Clear() {
	ps.Particles = ps.Particles[:0]
	ps.Emitters = ps.Emitters[:0]
}

// Count returns the live particle count.
func (ps *ParticleSystemData) Count() int { return len(ps.Particles) }

// add inserts a particle, evicting the oldest when at capacity.
func (ps *ParticleSystemData) add(p Particle) {
	if len(ps.Particles) >= ps.MaxParticles {
		copy(ps.Particles, ps.Particles[1:])
		ps.Particles[len(ps.Particles)-1] = p
		return
	}
	ps.Particles = append(ps.Particles, p)
}

func (ps *ParticleSystemData) spawn(x, y float64, cfg config.ParticleConfig) Particle {
	angle := cfg.Direction + (ps.Rng.Float64()-0.5)*cfg.SpreadAngle
	speed := cfg.SpeedMin + ps.Rng.Float64()*(cfg.SpeedMax-cfg.SpeedMin)
	size := cfg.SizeMin + ps.Rng.Float64()*(cfg.SizeMax-cfg.SizeMin)

	p := Particle{
		X: x, Y: y,
		VelX:       math.Cos(angle) * speed,
		VelY:       math.Sin(angle) * speed,
		Size:       size,
		Lifetime:   cfg.Lifetime,
		MaxLife:    cfg.Lifetime,
		Gravity:    cfg.Gravity,
		Drag:       cfg.Drag,
		WindFactor: 1.0,
		Type:       cfg.Type,
		Blend:      cfg.Blend,
		Color:      [4]uint8{cfg.Color.R, cfg.Color.G, cfg.Color.B, cfg.Color.A},
		EndColor:   [4]uint8{cfg.EndColor.R, cfg.EndColor.G, cfg.EndColor.B, cfg.EndColor.A},
	}

	// Per-type physics character.
	switch cfg.Type {
	case config.ParticleDust:
		p.WindFactor = 0.8
	case config.ParticleSpark:
		p.Spin = (ps.Rng.Float64() - 0.5) * 12
	case config.ParticleSmoke:
		p.WindFactor = 0.7
		if p.Gravity > -10 {
			p.Gravity = -50
		}
	case config.ParticleLeaf:
		p.WindFactor = 1.4
		p.Spin = (ps.Rng.Float64() - 0.5) * 6
	case config.ParticleMagic:
		p.WindFactor = 0
	case config.ParticleHeal:
		p.WindFactor = 0
		if p.Gravity > -10 {
			p.Gravity = -60
		}
	}
	return p
}
