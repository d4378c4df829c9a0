// Package assets generates the game's audio at startup. Every cue is
// synthesized from a small envelope description, so the binary ships no
// sound files.
package assets

import (
	"math"
	"math/rand"

	cfg "github.com/mossforge/forestfall/config"
)

// SynthesizeAll renders PCM for every registered tone at the given sample
// rate. The result maps sound ids to 16-bit little-endian stereo PCM, the
// format ebiten audio players consume directly.
func SynthesizeAll(sampleRate int) map[cfg.SoundID][]byte {
	out := make(map[cfg.SoundID][]byte, len(cfg.Tones))
	rng := rand.New(rand.NewSource(1))
	for id, spec := range cfg.Tones {
		out[id] = Synthesize(spec, sampleRate, rng)
	}
	return out
}

// SynthesizeAmbience renders a loopable wind bed played behind gameplay.
// The modulation uses whole cycles over the buffer so the loop point is
// seamless.
func SynthesizeAmbience(sampleRate int) []byte {
	const duration = 4.0
	const volume = 0.12
	n := int(duration * float64(sampleRate))
	buf := make([]byte, n*4)

	rng := rand.New(rand.NewSource(7))
	filtered := 0.0
	const alpha = 0.04 // one-pole low pass keeps only the rumble
	for i := 0; i < n; i++ {
		white := rng.Float64()*2 - 1
		filtered += alpha * (white - filtered)

		progress := float64(i) / float64(n)
		// Two full swell cycles per loop
		swell := 0.7 + 0.3*math.Sin(2*math.Pi*2*progress)

		v := int16(filtered * swell * volume * math.MaxInt16)
		lo, hi := byte(v), byte(v>>8)
		buf[i*4+0], buf[i*4+1] = lo, hi
		buf[i*4+2], buf[i*4+3] = lo, hi
	}
	return buf
}

// Synthesize renders one tone: a sine or noise body with a frequency sweep
// and a linear attack/decay envelope.
func Synthesize(spec cfg.ToneSpec, sampleRate int, rng *rand.Rand) []byte {
	n := int(spec.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n*4) // 16-bit stereo

	endFreq := spec.EndFreq
	if endFreq == 0 {
		endFreq = spec.Freq
	}

	const attack = 0.005 // seconds, avoids clicks
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		progress := float64(i) / float64(n)

		freq := spec.Freq + (endFreq-spec.Freq)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		var sample float64
		if spec.Noise {
			sample = rng.Float64()*2 - 1
			// Let the sweep shade the noise with a tonal core.
			sample = 0.6*sample + 0.4*math.Sin(phase)
		} else {
			sample = math.Sin(phase)
		}

		env := 1 - progress // linear decay
		if t < attack {
			env *= t / attack
		}
		sample *= env * spec.Volume

		v := int16(sample * math.MaxInt16)
		lo, hi := byte(v), byte(v>>8)
		buf[i*4+0], buf[i*4+1] = lo, hi // left
		buf[i*4+2], buf[i*4+3] = lo, hi // right
	}
	return buf
}
