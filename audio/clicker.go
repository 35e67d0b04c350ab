package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

// Clicker plays feedback sounds for widget value changes
// Every method is safe without a working audio device, sounds are then dropped
type Clicker struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
	lastTick    time.Time
	minInterval time.Duration
	log         zerolog.Logger
}

// NewClicker creates a clicker, Initialize must succeed before anything is heard
func NewClicker(cfg Config, log zerolog.Logger) *Clicker {
	return &Clicker{
		cfg:         cfg,
		mixer:       &beep.Mixer{},
		minInterval: TickDuration,
		log:         log.With().Str("component", "audio").Logger(),
	}
}

// Initialize opens the speaker, a disabled config is not an error
func (c *Clicker) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized || !c.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(c.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init at %d Hz: %w", c.cfg.SampleRate, err)
	}

	speaker.Play(c.mixer)
	c.initialized = true
	c.log.Info().Int("sample_rate", c.cfg.SampleRate).Msg("speaker ready")
	return nil
}

// Active reports whether sounds reach the speaker
func (c *Clicker) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

// Cleanup silences and detaches everything
func (c *Clicker) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
}

// Tick plays a click whose pitch follows ratio, rate-limited to one per tick length
func (c *Clicker) Tick(ratio uint8) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	now := time.Now()
	if now.Sub(c.lastTick) < c.minInterval {
		return
	}
	c.lastTick = now
	c.add(CreateTick(c.cfg, ratio))
}

// Arrive plays the settle chime
func (c *Clicker) Arrive() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	c.add(CreateArrival(c.cfg))
}

// add hands a stream to the mixer under the speaker lock, caller holds c.mu
func (c *Clicker) add(s beep.Streamer) {
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}
