// Package config loads the dashboard configuration.
//
// Values come from a TOML file, then VIGAUGE_* environment variables, over
// built-in defaults. WriteDefault emits the defaults as a starting file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/lixenwraith/vi-gauge/core"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// FileName is the config searched for when no path is given
const FileName = "vi-gauge.toml"

// EnvPrefix prefixes environment overrides, e.g. VIGAUGE_METER_MAX
const EnvPrefix = "VIGAUGE"

// Indicator kinds accepted in [[meter.indicators]]
const (
	KindArc         = "arc"
	KindNeedleLine  = "needle_line"
	KindNeedleImage = "needle_image"
	KindScaleLines  = "scale_lines"
)

// Slider bindings accepted in an indicator's follow key
const (
	FollowNone  = ""
	FollowValue = "value" // indicator value tracks the slider value
	FollowRange = "range" // start and end track the slider start and value
)

// Config is the full application configuration
type Config struct {
	Meter  MeterConfig       `mapstructure:"meter" toml:"meter"`
	Slider SliderConfig      `mapstructure:"slider" toml:"slider"`
	Audio  AudioConfig       `mapstructure:"audio" toml:"audio"`
	Log    LogConfig         `mapstructure:"log" toml:"log"`
	UI     UIConfig          `mapstructure:"ui" toml:"ui"`
	Keys   map[string]string `mapstructure:"keys" toml:"keys"`
}

// MeterConfig holds the scale and its indicators
type MeterConfig struct {
	Min         int32  `mapstructure:"min" toml:"min"`
	Max         int32  `mapstructure:"max" toml:"max"`
	AngleRange  uint32 `mapstructure:"angle_range" toml:"angle_range"`
	Rotation    uint32 `mapstructure:"rotation" toml:"rotation"`
	TickCount   uint16 `mapstructure:"tick_count" toml:"tick_count"`
	TickWidth   uint16 `mapstructure:"tick_width" toml:"tick_width"`
	TickLength  uint16 `mapstructure:"tick_length" toml:"tick_length"`
	TickColor   string `mapstructure:"tick_color" toml:"tick_color"`
	MajorNth    uint16 `mapstructure:"major_nth" toml:"major_nth"`
	MajorWidth  uint16 `mapstructure:"major_width" toml:"major_width"`
	MajorLength uint16 `mapstructure:"major_length" toml:"major_length"`
	MajorColor  string `mapstructure:"major_color" toml:"major_color"`
	LabelGap    int16  `mapstructure:"label_gap" toml:"label_gap"`
	RadiusMod   int16  `mapstructure:"radius_mod" toml:"radius_mod"`

	Indicators []IndicatorConfig `mapstructure:"indicators" toml:"indicators"`
}

// IndicatorConfig describes one indicator, fields unused by its kind are ignored
type IndicatorConfig struct {
	Kind       string `mapstructure:"kind" toml:"kind"`
	Color      string `mapstructure:"color" toml:"color"`
	ColorEnd   string `mapstructure:"color_end" toml:"color_end,omitempty"`
	Width      uint16 `mapstructure:"width" toml:"width"`
	RadiusMod  int16  `mapstructure:"r_mod" toml:"r_mod"`
	StartValue int32  `mapstructure:"start_value" toml:"start_value"`
	EndValue   int32  `mapstructure:"end_value" toml:"end_value"`
	Local      bool   `mapstructure:"local" toml:"local,omitempty"`
	Opa        uint8  `mapstructure:"opa" toml:"opa"`
	Follow     string `mapstructure:"follow" toml:"follow,omitempty"`
}

// SliderConfig holds the range control
type SliderConfig struct {
	Min        int32  `mapstructure:"min" toml:"min"`
	Max        int32  `mapstructure:"max" toml:"max"`
	Mode       string `mapstructure:"mode" toml:"mode"`
	Value      int32  `mapstructure:"value" toml:"value"`
	StartValue int32  `mapstructure:"start_value" toml:"start_value"`
	RTL        bool   `mapstructure:"rtl" toml:"rtl"`
}

// AudioConfig holds click feedback settings
type AudioConfig struct {
	Enabled   bool    `mapstructure:"enabled" toml:"enabled"`
	Frequency float64 `mapstructure:"frequency" toml:"frequency"`
	Volume    float64 `mapstructure:"volume" toml:"volume"`
}

// LogConfig holds logging settings, an empty file disables logging
type LogConfig struct {
	File  string `mapstructure:"file" toml:"file"`
	Level string `mapstructure:"level" toml:"level"`
}

// UIConfig holds loop and interaction settings
type UIConfig struct {
	FPS         int    `mapstructure:"fps" toml:"fps"`
	ScrollLimit int    `mapstructure:"scroll_limit" toml:"scroll_limit"`
	AnimationMs int    `mapstructure:"animation_ms" toml:"animation_ms"`
	Background  string `mapstructure:"background" toml:"background"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Meter: MeterConfig{
			Min:         0,
			Max:         100,
			AngleRange:  270,
			Rotation:    135,
			TickCount:   21,
			TickWidth:   1,
			TickLength:  6,
			TickColor:   "#7f7f7f",
			MajorNth:    5,
			MajorWidth:  2,
			MajorLength: 10,
			MajorColor:  "#e0e0e0",
			LabelGap:    4,
			RadiusMod:   -4,
			Indicators: []IndicatorConfig{
				{Kind: KindScaleLines, Color: "#2e7dff", ColorEnd: "#ff3b30", Opa: 255},
				{Kind: KindArc, Color: "#2e7dff", Width: 4, RadiusMod: -2, StartValue: 20, EndValue: 60, Opa: 160, Follow: FollowRange},
				{Kind: KindNeedleLine, Color: "#ffcc00", Width: 2, RadiusMod: -8, EndValue: 60, Opa: 255, Follow: FollowValue},
			},
		},
		Slider: SliderConfig{
			Min:        0,
			Max:        100,
			Mode:       "range",
			Value:      60,
			StartValue: 20,
		},
		Audio: AudioConfig{
			Enabled:   true,
			Frequency: 880,
			Volume:    0.4,
		},
		Log: LogConfig{
			File:  "",
			Level: "info",
		},
		UI: UIConfig{
			FPS:         30,
			ScrollLimit: 2,
			AnimationMs: 250,
			Background:  "#101418",
		},
		Keys: map[string]string{},
	}
}

// NewViper returns a viper instance with defaults and environment overrides registered
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults registers scalar keys so environment overrides resolve
// Indicators and keys are table-shaped and only come from the file
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("meter.min", d.Meter.Min)
	v.SetDefault("meter.max", d.Meter.Max)
	v.SetDefault("meter.angle_range", d.Meter.AngleRange)
	v.SetDefault("meter.rotation", d.Meter.Rotation)
	v.SetDefault("meter.tick_count", d.Meter.TickCount)
	v.SetDefault("meter.tick_width", d.Meter.TickWidth)
	v.SetDefault("meter.tick_length", d.Meter.TickLength)
	v.SetDefault("meter.tick_color", d.Meter.TickColor)
	v.SetDefault("meter.major_nth", d.Meter.MajorNth)
	v.SetDefault("meter.major_width", d.Meter.MajorWidth)
	v.SetDefault("meter.major_length", d.Meter.MajorLength)
	v.SetDefault("meter.major_color", d.Meter.MajorColor)
	v.SetDefault("meter.label_gap", d.Meter.LabelGap)
	v.SetDefault("meter.radius_mod", d.Meter.RadiusMod)

	v.SetDefault("slider.min", d.Slider.Min)
	v.SetDefault("slider.max", d.Slider.Max)
	v.SetDefault("slider.mode", d.Slider.Mode)
	v.SetDefault("slider.value", d.Slider.Value)
	v.SetDefault("slider.start_value", d.Slider.StartValue)
	v.SetDefault("slider.rtl", d.Slider.RTL)

	v.SetDefault("audio.enabled", d.Audio.Enabled)
	v.SetDefault("audio.frequency", d.Audio.Frequency)
	v.SetDefault("audio.volume", d.Audio.Volume)

	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)

	v.SetDefault("ui.fps", d.UI.FPS)
	v.SetDefault("ui.scroll_limit", d.UI.ScrollLimit)
	v.SetDefault("ui.animation_ms", d.UI.AnimationMs)
	v.SetDefault("ui.background", d.UI.Background)
}

// Load reads path into a validated Config
// An empty path searches FileName in the working and user config directories,
// and a missing file there falls back to defaults
func Load(v *viper.Viper, path string) (*Config, error) {
	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "vi-gauge"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", describe(path), err)
		}
	}

	cfg := Default()
	// Decoding into a non-empty slice would keep trailing defaults
	if v.IsSet("meter.indicators") {
		cfg.Meter.Indicators = nil
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func describe(path string) string {
	if path == "" {
		return FileName
	}
	return path
}

// Validate checks ranges, names and colors
func (c *Config) Validate() error {
	m := c.Meter
	if m.Max <= m.Min {
		return fmt.Errorf("%w: meter max %d must exceed min %d", ErrInvalid, m.Max, m.Min)
	}
	if m.TickCount < 2 {
		return fmt.Errorf("%w: meter tick_count %d, need at least 2", ErrInvalid, m.TickCount)
	}
	if m.AngleRange == 0 || m.AngleRange > 360 {
		return fmt.Errorf("%w: meter angle_range %d outside 1..360", ErrInvalid, m.AngleRange)
	}
	for _, s := range []string{m.TickColor, m.MajorColor} {
		if _, err := ParseColor(s); err != nil {
			return err
		}
	}

	for i, ind := range m.Indicators {
		if err := ind.validate(); err != nil {
			return fmt.Errorf("meter.indicators[%d]: %w", i, err)
		}
	}

	s := c.Slider
	if s.Max <= s.Min {
		return fmt.Errorf("%w: slider max %d must exceed min %d", ErrInvalid, s.Max, s.Min)
	}
	switch s.Mode {
	case "", "normal", "symmetrical", "range":
	default:
		return fmt.Errorf("%w: slider mode %q", ErrInvalid, s.Mode)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio volume %.2f outside 0..1", ErrInvalid, c.Audio.Volume)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	if c.UI.FPS <= 0 {
		return fmt.Errorf("%w: ui fps %d", ErrInvalid, c.UI.FPS)
	}
	if _, err := ParseColor(c.UI.Background); err != nil {
		return err
	}
	return nil
}

func (ind IndicatorConfig) validate() error {
	switch ind.Kind {
	case KindArc, KindNeedleLine, KindNeedleImage:
	case KindScaleLines:
		if _, err := ParseColor(ind.ColorEnd); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: indicator kind %q", ErrInvalid, ind.Kind)
	}
	if _, err := ParseColor(ind.Color); err != nil {
		return err
	}
	switch ind.Follow {
	case FollowNone, FollowValue, FollowRange:
	default:
		return fmt.Errorf("%w: indicator follow %q", ErrInvalid, ind.Follow)
	}
	return nil
}

// ParseColor parses "#rrggbb" or "#rgb"
func ParseColor(s string) (core.RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return core.RGB{}, fmt.Errorf("%w: color %q: %v", ErrInvalid, s, err)
	}
	r, g, b := c.RGB255()
	return core.RGB{R: r, G: g, B: b}, nil
}

// MustColor parses a color already accepted by Validate
func MustColor(s string) core.RGB {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WriteDefault writes the default configuration to path, refusing to overwrite
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	defer f.Close()

	return Default().WriteTOML(f)
}

// WriteTOML encodes c as TOML
func (c *Config) WriteTOML(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return nil
}
