package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Movement
	SoundJump
	SoundLand
	SoundDash
	// Combat
	SoundAttackSwing
	SoundHit
	SoundCrit
	SoundEnemyDeath
	SoundPlayerHurt
	SoundPlayerDeath
	// Shield
	SoundShieldRaise
	SoundShieldBlock
	SoundPerfectBlock
	SoundShieldBreak
	// UI
	SoundMenuNavigate
	SoundMenuSelect
)

// ToneSpec describes a synthesized cue. All sounds are generated at startup
// from simple envelopes, there are no audio files to load.
type ToneSpec struct {
	Freq     float64 // base frequency in hz
	EndFreq  float64 // sweep target, 0 means hold Freq
	Duration float64 // seconds
	Volume   float64 // 0..1 pre-mix gain
	Noise    bool    // white-noise body instead of a sine
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// Audio is the global audio configuration
var Audio AudioConfig

// Tones maps sound ids to their synthesis parameters.
var Tones map[SoundID]ToneSpec

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.75,
		DefaultSFXVol:   1.0,
	}

	Tones = map[SoundID]ToneSpec{
		SoundJump:         {Freq: 320, EndFreq: 620, Duration: 0.12, Volume: 0.5},
		SoundLand:         {Freq: 140, EndFreq: 60, Duration: 0.10, Volume: 0.5},
		SoundDash:         {Freq: 200, EndFreq: 900, Duration: 0.15, Volume: 0.4, Noise: true},
		SoundAttackSwing:  {Freq: 500, EndFreq: 200, Duration: 0.08, Volume: 0.4, Noise: true},
		SoundHit:          {Freq: 220, EndFreq: 90, Duration: 0.10, Volume: 0.7},
		SoundCrit:         {Freq: 880, EndFreq: 220, Duration: 0.18, Volume: 0.8},
		SoundEnemyDeath:   {Freq: 300, EndFreq: 40, Duration: 0.35, Volume: 0.7, Noise: true},
		SoundPlayerHurt:   {Freq: 260, EndFreq: 120, Duration: 0.20, Volume: 0.7},
		SoundPlayerDeath:  {Freq: 220, EndFreq: 30, Duration: 0.80, Volume: 0.8},
		SoundShieldRaise:  {Freq: 400, EndFreq: 700, Duration: 0.08, Volume: 0.4},
		SoundShieldBlock:  {Freq: 600, EndFreq: 400, Duration: 0.10, Volume: 0.6},
		SoundPerfectBlock: {Freq: 900, EndFreq: 1400, Duration: 0.20, Volume: 0.8},
		SoundShieldBreak:  {Freq: 500, EndFreq: 60, Duration: 0.40, Volume: 0.8, Noise: true},
		SoundMenuNavigate: {Freq: 700, Duration: 0.05, Volume: 0.3},
		SoundMenuSelect:   {Freq: 900, EndFreq: 1200, Duration: 0.10, Volume: 0.4},
	}
}
