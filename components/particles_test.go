package components

import (
	"image/color"
	"testing"

	"github.com/mossforge/forestfall/config"
)

func testParticleConfig() config.ParticleConfig {
	return config.ParticleConfig{
		Type:     config.ParticleDust,
		Count:    5,
		Lifetime: 1.0,
		SpeedMin: 10,
		SpeedMax: 20,
		SizeMin:  2,
		SizeMax:  4,
		Color:    color.RGBA{R: 200, G: 200, B: 200, A: 255},
	}
}

func TestBurstSpawnsConfiguredCount(t *testing.T) {
	ps := NewParticleSystemData(1)
	ps.Burst(0, 0, testParticleConfig())

	if got := ps.Count(); got != 5 {
		t.Errorf("Count() = %d, want 5", got)
	}
}

func TestParticlesExpire(t *testing.T) {
	ps := NewParticleSystemData(1)
	ps.Burst(0, 0, testParticleConfig())

	ps.Step(0.5)
	if got := ps.Count(); got != 5 {
		t.Errorf("Count() mid-life = %d, want 5", got)
	}

	ps.Step(0.6)
	if got := ps.Count(); got != 0 {
		t.Errorf("Count() past lifetime = %d, want 0", got)
	}
}

func TestPoolEvictsOldestAtCapacity(t *testing.T) {
	ps := NewParticleSystemData(1)
	ps.MaxParticles = 10

	pc := testParticleConfig()
	pc.Count = 10
	ps.Burst(0, 0, pc)
	ps.Step(0.5) // ages the first batch

	pc.Count = 3
	ps.Burst(100, 0, pc)

	if got := ps.Count(); got != 10 {
		t.Fatalf("Count() = %d, want cap 10", got)
	}
	// The three newest live at the tail with full lifetime.
	for i := 7; i < 10; i++ {
		if ps.Particles[i].Lifetime != pc.Lifetime {
			t.Errorf("particle %d lifetime = %v, want fresh %v", i, ps.Particles[i].Lifetime, pc.Lifetime)
		}
	}
}

func TestEmitterAccumulatesFractionalEmission(t *testing.T) {
	ps := NewParticleSystemData(1)
	e := ps.CreateEmitter(0, 0, testParticleConfig(), 2.0, -1)
	if e == nil {
		t.Fatal("CreateEmitter returned nil under the cap")
	}

	// 2 particles per second: a quarter second emits nothing yet.
	ps.Step(0.25)
	if got := ps.Count(); got != 0 {
		t.Errorf("Count() after 0.25s = %d, want 0", got)
	}

	ps.Step(0.25)
	if got := ps.Count(); got != 1 {
		t.Errorf("Count() after 0.5s = %d, want 1", got)
	}
}

func TestEmitterDurationExpires(t *testing.T) {
	ps := NewParticleSystemData(1)
	ps.CreateEmitter(0, 0, testParticleConfig(), 100, 0.5)

	ps.Step(0.6)
	if got := len(ps.Emitters); got != 0 {
		t.Errorf("expired emitter still registered, emitters = %d", got)
	}
}

func TestEmitterCapReached(t *testing.T) {
	ps := NewParticleSystemData(1)
	for i := 0; i < config.Particles.MaxEmitters; i++ {
		if e := ps.CreateEmitter(0, 0, testParticleConfig(), 1, -1); e == nil {
			t.Fatalf("emitter %d rejected under the cap", i)
		}
	}
	if e := ps.CreateEmitter(0, 0, testParticleConfig(), 1, -1); e != nil {
		t.Error("emitter beyond the cap should be rejected")
	}
}

func TestStoppedEmitterRemoved(t *testing.T) {
	ps := NewParticleSystemData(1)
	e := ps.CreateEmitter(0, 0, testParticleConfig(), 100, -1)

	e.Stop()
	ps.Step(0.1)

	if got := len(ps.Emitters); got != 0 {
		t.Errorf("stopped emitter still registered, emitters = %d", got)
	}
	if got := ps.Count(); got != 0 {
		t.Errorf("stopped emitter emitted %d particles", got)
	}
}

func TestWindPushesSusceptibleParticles(t *testing.T) {
	ps := NewParticleSystemData(1)
	ps.SetWind(100, 0)

	pc := testParticleConfig()
	pc.Type = config.ParticleLeaf
	pc.Count = 1
	pc.SpeedMin, pc.SpeedMax = 0, 0
	ps.Burst(0, 0, pc)

	ps.Step(0.5)
	if ps.Count() != 1 {
		t.Fatal("leaf should still be alive")
	}
	if ps.Particles[0].VelX <= 0 {
		t.Errorf("leaf VelX = %v, want wind-driven positive drift", ps.Particles[0].VelX)
	}
}

func TestClearDropsEverything(t *testing.T) {
	ps := NewParticleSystemData(1)
	ps.Burst(0, 0, testParticleConfig())
	ps.CreateEmitter(0, 0, testParticleConfig(), 1, -1)

	ps.Clear()
	if ps.Count() != 0 || len(ps.Emitters) != 0 {
		t.Errorf("Clear left %d particles, %d emitters", ps.Count(), len(ps.Emitters))
	}
}

func TestDisabledSystemIgnoresWork(t *testing.T) {
	ps := NewParticleSystemData(1)
	ps.Enabled = false

	ps.Burst(0, 0, testParticleConfig())
	if got := ps.Count(); got != 0 {
		t.Errorf("disabled system spawned %d particles", got)
	}
}

func TestParticleProgress(t *testing.T) {
	p := Particle{Lifetime: 0.25, MaxLife: 1.0}
	if got := p.Progress(); got != 0.75 {
		t.Errorf("Progress() = %v, want 0.75", got)
	}
	zero := Particle{}
	if got := zero.Progress(); got != 1 {
		t.Errorf("Progress() with no MaxLife = %v, want 1", got)
	}
}

func TestBurstPresetUnknownNameIsNoOp(t *testing.T) {
	ps := NewParticleSystemData(1)
	ps.BurstPreset(0, 0, "no_such_preset")
	if got := ps.Count(); got != 0 {
		t.Errorf("unknown preset spawned %d particles", got)
	}
}
