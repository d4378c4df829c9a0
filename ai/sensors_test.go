package ai

import (
	"math"
	"testing"

	"github.com/mossforge/forestfall/config"
)

func testSensorParams() SensorParams {
	return SensorParams{
		SightRange:   200,
		FOV:          120 * math.Pi / 180,
		HearingRange: 80,
	}
}

func TestSightEscalatesAlertOneStepPerTick(t *testing.T) {
	s := NewSensors(testSensorParams())
	self := Vec2{X: 0, Y: 0}
	player := Vec2{X: 100, Y: 0}

	want := []config.AlertLevel{
		config.AlertSuspicious,
		config.AlertAlerted,
		config.AlertCombat,
		config.AlertCombat, // caps at combat
	}
	for i, w := range want {
		p := s.Update(0.1, self, 1, player, nil, 1.0)
		if !p.PlayerVisible {
			t.Fatalf("tick %d: player at %v should be visible", i, player)
		}
		if p.Alert != w {
			t.Errorf("tick %d: alert = %s, want %s", i, p.Alert, w)
		}
	}
}

func TestAlertDecaysWithoutSightings(t *testing.T) {
	s := NewSensors(testSensorParams())
	self := Vec2{X: 0, Y: 0}

	// Escalate to combat first.
	for i := 0; i < 3; i++ {
		s.Update(0.1, self, 1, Vec2{X: 100, Y: 0}, nil, 1.0)
	}
	if s.Alert() != config.AlertCombat {
		t.Fatalf("alert = %s, want combat", s.Alert())
	}

	// Player gone far away, out of sight and hearing.
	far := Vec2{X: 5000, Y: 0}
	s.Update(31, self, 1, far, nil, 1.0)
	if s.Alert() != config.AlertAlerted {
		t.Errorf("after 31s unseen: alert = %s, want alert", s.Alert())
	}
	s.Update(0.1, self, 1, far, nil, 1.0)
	if s.Alert() != config.AlertSuspicious {
		t.Errorf("next decay step: alert = %s, want suspicious", s.Alert())
	}
	s.Update(0.1, self, 1, far, nil, 1.0)
	if s.Alert() != config.AlertUnaware {
		t.Errorf("final decay step: alert = %s, want unaware", s.Alert())
	}
}

func TestObstacleBlocksLineOfSight(t *testing.T) {
	s := NewSensors(testSensorParams())
	self := Vec2{X: 0, Y: 0}
	player := Vec2{X: 100, Y: 0}
	wall := []Rect{{X: 40, Y: -50, W: 20, H: 100}}

	p := s.Update(0.1, self, 1, player, wall, 1.0)
	if p.PlayerVisible {
		t.Error("player behind a wall should not be visible")
	}
}

func TestFacingConeHidesPlayerBehind(t *testing.T) {
	s := NewSensors(testSensorParams())
	self := Vec2{X: 0, Y: 0}
	behind := Vec2{X: -150, Y: 0} // outside hearing, inside sight range

	p := s.Update(0.1, self, 1, behind, nil, 1.0)
	if p.PlayerVisible {
		t.Error("player behind the facing direction should not be visible")
	}

	p = s.Update(0.1, self, -1, behind, nil, 1.0)
	if !p.PlayerVisible {
		t.Error("player in front after turning around should be visible")
	}
}

func TestFullCircleFOVSeesAllDirections(t *testing.T) {
	params := testSensorParams()
	params.FOV = 2 * math.Pi
	s := NewSensors(params)

	p := s.Update(0.1, Vec2{}, 1, Vec2{X: -150, Y: 0}, nil, 1.0)
	if !p.PlayerVisible {
		t.Error("360 degree FOV should see the player behind")
	}
}

func TestHearingRevealsNearbyPlayer(t *testing.T) {
	s := NewSensors(testSensorParams())
	self := Vec2{X: 0, Y: 0}
	behind := Vec2{X: -50, Y: 0} // out of cone, within hearing

	p := s.Update(0.1, self, 1, behind, nil, 1.0)
	if p.PlayerVisible {
		t.Error("player out of the cone should not be visible")
	}
	if !p.HeardNoise {
		t.Error("player inside hearing range should be heard")
	}
	if !p.HasLastKnown {
		t.Fatal("hearing should record a last known position")
	}
	if p.LastKnown != behind {
		t.Errorf("LastKnown = %+v, want %+v", p.LastKnown, behind)
	}
}

func TestRegisteredNoiseInRangeIsHeard(t *testing.T) {
	s := NewSensors(testSensorParams())
	self := Vec2{X: 0, Y: 0}
	far := Vec2{X: 5000, Y: 0}

	noisePos := Vec2{X: 30, Y: 10}
	s.RegisterNoise(noisePos)

	p := s.Update(0.1, self, 1, far, nil, 1.0)
	if !p.HeardNoise {
		t.Error("noise within hearing range should be heard")
	}
	if p.LastKnown != noisePos {
		t.Errorf("LastKnown = %+v, want noise position %+v", p.LastKnown, noisePos)
	}

	// Consumed: the same noise does not fire twice.
	p = s.Update(0.1, self, 1, far, nil, 1.0)
	if p.HeardNoise {
		t.Error("consumed noise should not be heard again")
	}
}

func TestNoiseOutOfRangeAgesOut(t *testing.T) {
	s := NewSensors(testSensorParams())
	self := Vec2{X: 0, Y: 0}
	far := Vec2{X: 5000, Y: 0}

	s.RegisterNoise(Vec2{X: 300, Y: 0}) // beyond hearing range

	p := s.Update(0.1, self, 1, far, nil, 1.0)
	if p.HeardNoise {
		t.Error("noise beyond hearing range should not be heard")
	}

	// Walk into range after the noise has expired.
	p = s.Update(config.AINoiseLifetime+1, Vec2{X: 280, Y: 0}, 1, far, nil, 1.0)
	if p.HeardNoise {
		t.Error("expired noise should not be heard")
	}
}

func TestForceAlertOnlyRaises(t *testing.T) {
	s := NewSensors(testSensorParams())

	s.ForceAlert(config.AlertCombat)
	if s.Alert() != config.AlertCombat {
		t.Errorf("alert = %s, want combat", s.Alert())
	}

	s.ForceAlert(config.AlertSuspicious)
	if s.Alert() != config.AlertCombat {
		t.Errorf("ForceAlert should never lower the level, got %s", s.Alert())
	}
}

func TestSetAndClearLastKnown(t *testing.T) {
	s := NewSensors(testSensorParams())
	pos := Vec2{X: 42, Y: 7}
	far := Vec2{X: 5000, Y: 0}

	s.SetLastKnown(pos)
	p := s.Update(0.1, Vec2{}, 1, far, nil, 1.0)
	if !p.HasLastKnown || p.LastKnown != pos {
		t.Errorf("LastKnown = %+v (has=%v), want %+v", p.LastKnown, p.HasLastKnown, pos)
	}

	s.ClearLastKnown()
	p = s.Update(0.1, Vec2{}, 1, far, nil, 1.0)
	if p.HasLastKnown {
		t.Error("HasLastKnown should be false after ClearLastKnown")
	}
}
