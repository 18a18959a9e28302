package config

import (
	"io"
	"math"
	"time"

	"github.com/alexisbeaulieu97/widgetry/internal/logger"
	"github.com/alexisbeaulieu97/widgetry/internal/paging"
	"github.com/alexisbeaulieu97/widgetry/internal/scroll"
)

// Config represents the full widgetry configuration document.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Theme  string       `yaml:"theme" validate:"required,theme_name"`
	Touch  bool         `yaml:"touch"`
	Scroll ScrollConfig `yaml:"scroll"`
	Paging PagingConfig `yaml:"paging"`
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level         string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error disabled"`
	HumanReadable bool   `yaml:"human_readable"`
	File          string `yaml:"file,omitempty"`
}

// ScrollConfig holds the animation parameters passed to animated surfaces.
type ScrollConfig struct {
	FPS        int     `yaml:"fps" validate:"min=1,max=240"`
	Frequency  float64 `yaml:"frequency" validate:"gt=0,lte=100"`
	Damping    float64 `yaml:"damping" validate:"gt=0,lte=10"`
	WheelDelta int     `yaml:"wheel_delta" validate:"min=1,max=100"`
}

// PagingConfig holds the page navigator policy.
type PagingConfig struct {
	Physics         string        `yaml:"physics" validate:"required,physics"`
	Axis            string        `yaml:"axis" validate:"required,axis"`
	SettleTimeout   time.Duration `yaml:"settle_timeout" validate:"required"`
	SettleTolerance float64       `yaml:"settle_tolerance" validate:"gt=0,lte=1"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	spring := scroll.DefaultSpring()
	return Config{
		Log:   LogConfig{Level: "info", HumanReadable: true},
		Theme: "dark",
		Scroll: ScrollConfig{
			FPS:        spring.FPS,
			Frequency:  spring.Frequency,
			Damping:    spring.Damping,
			WheelDelta: 3,
		},
		Paging: PagingConfig{
			Physics:         paging.PhysicsClamped.String(),
			Axis:            scroll.AxisHorizontal.String(),
			SettleTimeout:   paging.DefaultSettleTimeout,
			SettleTolerance: paging.DefaultSettleTolerance,
		},
	}
}

// Spring returns the spring for surfaces under the configured physics. Bouncy physics is
// rendered with an under-damped spring so the overscroll is visible.
func (c Config) Spring() scroll.SpringConfig {
	cfg := scroll.SpringConfig{FPS: c.Scroll.FPS, Frequency: c.Scroll.Frequency, Damping: c.Scroll.Damping}
	if c.PhysicsValue().AllowsOverscroll() {
		cfg.Damping = math.Min(cfg.Damping, scroll.BouncySpring().Damping)
	}
	return cfg
}

// PhysicsValue returns the parsed physics. Validation guarantees it is known.
func (c Config) PhysicsValue() paging.Physics {
	p, _ := paging.ParsePhysics(c.Paging.Physics)
	return p
}

// AxisValue returns the parsed paging axis.
func (c Config) AxisValue() scroll.Axis {
	a, _ := scroll.ParseAxis(c.Paging.Axis)
	return a
}

// FrameInterval is the wall-clock time between animation frames.
func (c Config) FrameInterval() time.Duration {
	fps := c.Scroll.FPS
	if fps <= 0 {
		fps = scroll.DefaultSpring().FPS
	}
	return time.Second / time.Duration(fps)
}

// NavigatorOptions maps the paging section onto navigator options.
func (c Config) NavigatorOptions(count int) paging.Options {
	return paging.Options{
		Count:           count,
		Physics:         c.PhysicsValue(),
		SettleTimeout:   c.Paging.SettleTimeout,
		SettleTolerance: c.Paging.SettleTolerance,
	}
}

// LoggerOptions maps the log section onto logger options writing to w.
func (c Config) LoggerOptions(w io.Writer) logger.Options {
	return logger.Options{
		Level:         c.Log.Level,
		HumanReadable: c.Log.HumanReadable,
		Writer:        w,
	}
}
