package assets

import (
	"math/rand"
	"testing"

	cfg "github.com/mossforge/forestfall/config"
)

func TestSynthesizeLength(t *testing.T) {
	spec := cfg.ToneSpec{Freq: 440, Duration: 0.5, Volume: 0.5}
	buf := Synthesize(spec, 44100, rand.New(rand.NewSource(1)))

	// 16-bit stereo: 4 bytes per frame.
	want := int(spec.Duration*44100) * 4
	if len(buf) != want {
		t.Errorf("len = %d, want %d", len(buf), want)
	}
}

func TestSynthesizeZeroDuration(t *testing.T) {
	buf := Synthesize(cfg.ToneSpec{Freq: 440}, 44100, rand.New(rand.NewSource(1)))
	if buf != nil {
		t.Errorf("zero duration tone produced %d bytes, want none", len(buf))
	}
}

func TestSynthesizeProducesSignal(t *testing.T) {
	spec := cfg.ToneSpec{Freq: 440, Duration: 0.1, Volume: 0.5}
	buf := Synthesize(spec, 44100, rand.New(rand.NewSource(1)))

	allZero := true
	for _, b := range buf {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		t.Error("synthesized tone is silent")
	}
}

func TestSynthesizeAllCoversEveryTone(t *testing.T) {
	samples := SynthesizeAll(cfg.Audio.SampleRate)

	if len(samples) != len(cfg.Tones) {
		t.Errorf("rendered %d tones, want %d", len(samples), len(cfg.Tones))
	}
	for id := range cfg.Tones {
		pcm, ok := samples[id]
		if !ok {
			t.Errorf("tone %v missing from output", id)
			continue
		}
		if len(pcm) == 0 {
			t.Errorf("tone %v rendered empty", id)
		}
		if len(pcm)%4 != 0 {
			t.Errorf("tone %v length %d not frame-aligned", id, len(pcm))
		}
	}
}

func TestSynthesizeAmbienceLoop(t *testing.T) {
	buf := SynthesizeAmbience(cfg.Audio.SampleRate)

	if want := 4 * cfg.Audio.SampleRate * 4; len(buf) != want {
		t.Errorf("len = %d, want %d", len(buf), want)
	}

	allZero := true
	for _, b := range buf {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		t.Error("ambience loop is silent")
	}
}
