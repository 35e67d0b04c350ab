package audio

import "time"

// Sound timing
const (
	TickDuration    = 30 * time.Millisecond
	TickAttack      = 2 * time.Millisecond
	TickRelease     = 20 * time.Millisecond
	ArrivalDuration = 180 * time.Millisecond
)

// Config holds audio settings
type Config struct {
	Enabled    bool
	SampleRate int
	Frequency  float64 // Base pitch of the tick in Hz
	Volume     float64 // 0.0 to 1.0
}

// DefaultConfig returns audio enabled at 44.1kHz with an A5 tick
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		SampleRate: 44100,
		Frequency:  880,
		Volume:     0.4,
	}
}
