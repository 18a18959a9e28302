package replay

import (
	"fmt"
	"os"
	"time"

	"github.com/alexisbeaulieu97/widgetry/internal/config"
	"github.com/alexisbeaulieu97/widgetry/internal/paging"
	"github.com/alexisbeaulieu97/widgetry/internal/scroll"
	widgetryerrors "github.com/alexisbeaulieu97/widgetry/pkg/errors"
)

// Step operations.
const (
	OpScrollTo       = "scroll_to"
	OpScrollBy       = "scroll_by"
	OpScrollToTop    = "scroll_to_top"
	OpScrollToBottom = "scroll_to_bottom"
	OpSetPage        = "set_page"
	OpNextPage       = "next_page"
	OpPreviousPage   = "previous_page"
	OpUserScroll     = "user_scroll"
	OpResize         = "resize"
	OpFrames         = "frames"
	OpWait           = "wait"
	OpExpectPage     = "expect_page"
)

// Script is a replay document.
type Script struct {
	Name            string        `yaml:"name"`
	Pages           int           `yaml:"pages" validate:"min=0"`
	Initial         int           `yaml:"initial" validate:"min=0"`
	PageExtent      float64       `yaml:"page_extent" validate:"gt=0"`
	CrossExtent     float64       `yaml:"cross_extent" validate:"gte=0"`
	Axis            string        `yaml:"axis" validate:"required,axis"`
	Physics         string        `yaml:"physics" validate:"required,physics"`
	Animated        bool          `yaml:"animated"`
	FPS             int           `yaml:"fps" validate:"min=1,max=240"`
	SettleTimeout   time.Duration `yaml:"settle_timeout" validate:"required"`
	SettleTolerance float64       `yaml:"settle_tolerance" validate:"gt=0,lte=1"`
	Steps           []Step        `yaml:"steps" validate:"required,min=1,dive"`
}

// Step is one scripted action. Which fields are read depends on Op.
type Step struct {
	Op       string        `yaml:"op" validate:"required,oneof=scroll_to scroll_by scroll_to_top scroll_to_bottom set_page next_page previous_page user_scroll resize frames wait expect_page"`
	X        float64       `yaml:"x,omitempty"`
	Y        float64       `yaml:"y,omitempty"`
	Page     int           `yaml:"page,omitempty"`
	Count    int           `yaml:"count,omitempty" validate:"min=0"`
	Duration time.Duration `yaml:"duration,omitempty"`
	Width    float64       `yaml:"width,omitempty" validate:"gte=0"`
	Height   float64       `yaml:"height,omitempty" validate:"gte=0"`
}

// DefaultScript returns the settings a script starts from before its document is applied. The
// paging and animation values follow the configuration defaults.
func DefaultScript() Script {
	cfg := config.Default()
	return Script{
		PageExtent:      300,
		CrossExtent:     10,
		Axis:            cfg.Paging.Axis,
		Physics:         cfg.Paging.Physics,
		Animated:        true,
		FPS:             cfg.Scroll.FPS,
		SettleTimeout:   cfg.Paging.SettleTimeout,
		SettleTolerance: cfg.Paging.SettleTolerance,
	}
}

// Load reads and validates the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, widgetryerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes data as if read from path and validates the result.
func Parse(path string, data []byte) (*Script, error) {
	script := DefaultScript()
	if err := config.DecodeStrict(data, &script); err != nil {
		return nil, widgetryerrors.NewParseError(path, config.ExtractLine(err), err)
	}
	if err := script.Validate(); err != nil {
		return nil, err
	}
	return &script, nil
}

// Validate checks field constraints and the per-operation requirements of every step.
func (s *Script) Validate() error {
	if s == nil {
		return widgetryerrors.NewValidationError("script", "script is nil", nil)
	}
	if err := config.ValidateStruct(s); err != nil {
		return err
	}
	for i, step := range s.Steps {
		if step.Op == OpResize && (step.Width <= 0 || step.Height <= 0) {
			return widgetryerrors.NewStepError(i, step.Op, fmt.Errorf("width and height must be positive"))
		}
		if step.Op == OpWait && step.Duration <= 0 {
			return widgetryerrors.NewStepError(i, step.Op, fmt.Errorf("duration must be positive"))
		}
	}
	return nil
}

// AxisValue returns the parsed paging axis. AxisBoth pages vertically.
func (s *Script) AxisValue() scroll.Axis {
	axis, _ := scroll.ParseAxis(s.Axis)
	if axis == scroll.AxisBoth {
		return scroll.AxisVertical
	}
	return axis
}

// PhysicsValue returns the parsed physics.
func (s *Script) PhysicsValue() paging.Physics {
	p, _ := paging.ParsePhysics(s.Physics)
	return p
}

// Spring returns the spring animated runs use.
func (s *Script) Spring() scroll.SpringConfig {
	spring := scroll.DefaultSpring()
	if s.PhysicsValue().AllowsOverscroll() {
		spring = scroll.BouncySpring()
	}
	spring.FPS = s.FPS
	return spring
}

// Viewport returns the initial viewport: PageExtent along the axis, CrossExtent across it.
func (s *Script) Viewport() scroll.Size {
	if s.AxisValue() == scroll.AxisHorizontal {
		return scroll.Size{Width: s.PageExtent, Height: s.CrossExtent}
	}
	return scroll.Size{Width: s.CrossExtent, Height: s.PageExtent}
}
