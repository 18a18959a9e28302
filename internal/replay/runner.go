package replay

import (
	"context"
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/widgetry/internal/logger"
	"github.com/alexisbeaulieu97/widgetry/internal/paging"
	"github.com/alexisbeaulieu97/widgetry/internal/scroll"
	widgetryerrors "github.com/alexisbeaulieu97/widgetry/pkg/errors"
)

// maxSettleFrames bounds a frames step without a count.
const maxSettleFrames = 10000

// epoch is the start of simulated time.
var epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// host is what the runner needs from a surface beyond the controller contract.
type host interface {
	scroll.Surface
	UserScroll(scroll.Offset)
	Resize(viewport, content scroll.Size)
}

// Runner executes one script. It is single use.
type Runner struct {
	script *Script
	log    *logger.Logger

	now      time.Time
	frame    time.Duration
	surface  host
	animated *scroll.AnimatedSurface
	ctrl     *scroll.Controller
	nav      *paging.Navigator

	step   int
	report Report
}

// NewRunner builds the surface, controller and navigator described by script. The surface
// starts aligned on the initial page.
func NewRunner(script *Script, log *logger.Logger) *Runner {
	r := &Runner{
		script: script,
		log:    log.Named("replay"),
		now:    epoch,
		frame:  time.Second / time.Duration(max(script.FPS, 1)),
		report: Report{Name: script.Name, Pages: script.Pages, Notifications: []Notification{}},
	}

	axis := script.AxisValue()
	viewport := script.Viewport()
	content := contentFor(axis, viewport, script.Pages)
	if script.Animated {
		r.animated = scroll.NewAnimatedSurface(viewport, content, script.Spring())
		r.animated.SetOverscroll(script.PhysicsValue().AllowsOverscroll())
		r.surface = r.animated
	} else {
		r.surface = scroll.NewStaticSurface(viewport, content)
	}

	binding := scroll.NewBinding()
	binding.Mount(r.surface)
	r.ctrl = scroll.NewController(binding, axis)
	r.nav = paging.New(r.ctrl, paging.Options{
		Count:           script.Pages,
		Initial:         script.Initial,
		Physics:         script.PhysicsValue(),
		SettleTimeout:   script.SettleTimeout,
		SettleTolerance: script.SettleTolerance,
		OnPageChanged:   r.record,
		Logger:          r.log,
		Now:             r.clock,
	})
	r.surface.Subscribe(r.nav.HandleScroll)

	r.nav.Align()
	if r.animated != nil {
		r.animated.Finish()
	}
	return r
}

// Run executes every step in order. It stops at the first failing step or when ctx is done.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	r.log.Debug("replay started", "name", r.script.Name, "steps", len(r.script.Steps), "animated", r.script.Animated)

	for i, step := range r.script.Steps {
		if err := ctx.Err(); err != nil {
			return nil, widgetryerrors.NewStepError(i, step.Op, err)
		}
		r.step = i
		if err := r.apply(step); err != nil {
			r.log.Error(err, "replay step failed", "step", i, "op", step.Op)
			return nil, widgetryerrors.NewStepError(i, step.Op, err)
		}
	}

	r.report.Final = r.position()
	r.report.Elapsed = r.now.Sub(epoch)
	r.log.Debug("replay finished", "notifications", len(r.report.Notifications), "page", r.report.Final.Page)
	return &r.report, nil
}

// Navigator exposes the navigator under test.
func (r *Runner) Navigator() *paging.Navigator { return r.nav }

// Controller exposes the scroll controller under test.
func (r *Runner) Controller() *scroll.Controller { return r.ctrl }

func (r *Runner) apply(step Step) error {
	switch step.Op {
	case OpScrollTo:
		r.ctrl.ScrollTo(step.X, step.Y)
	case OpScrollBy:
		r.ctrl.ScrollBy(step.X, step.Y)
	case OpScrollToTop:
		r.ctrl.ScrollToTop()
	case OpScrollToBottom:
		r.ctrl.ScrollToBottom()
	case OpSetPage:
		r.nav.SetPage(step.Page)
	case OpNextPage:
		r.nav.NextPage()
	case OpPreviousPage:
		r.nav.PreviousPage()
	case OpUserScroll:
		r.surface.UserScroll(scroll.Offset{Top: step.Y, Left: step.X})
	case OpResize:
		viewport := scroll.Size{Width: step.Width, Height: step.Height}
		r.surface.Resize(viewport, contentFor(r.ctrl.Axis(), viewport, r.script.Pages))
	case OpFrames:
		r.frames(step.Count)
	case OpWait:
		r.now = r.now.Add(step.Duration)
	case OpExpectPage:
		if got := r.nav.CurrentPage(); got != step.Page {
			return fmt.Errorf("expected page %d, got %d", step.Page, got)
		}
	default:
		return fmt.Errorf("unknown operation %q", step.Op)
	}
	return nil
}

// frames advances the animation by count frames, or until it rests when count is zero. Static
// surfaces have nothing to animate.
func (r *Runner) frames(count int) {
	if r.animated == nil {
		return
	}
	limit := count
	if limit <= 0 {
		limit = maxSettleFrames
	}
	for i := 0; i < limit; i++ {
		r.now = r.now.Add(r.frame)
		if _, ok := r.animated.Step(); !ok {
			break
		}
		r.report.Frames++
	}
}

func (r *Runner) record(page int) {
	r.report.Notifications = append(r.report.Notifications, Notification{
		Step: r.step,
		Op:   r.script.Steps[r.step].Op,
		Page: page,
	})
}

func (r *Runner) position() Position {
	pos := Position{
		Offset: r.ctrl.Position(),
		Extent: r.ctrl.MaxExtent(),
		Page:   r.nav.CurrentPage(),
	}
	if r.animated != nil {
		rendered := r.animated.Rendered()
		pos.Rendered = &rendered
	}
	return pos
}

func (r *Runner) clock() time.Time { return r.now }

func contentFor(axis scroll.Axis, viewport scroll.Size, pages int) scroll.Size {
	if axis == scroll.AxisHorizontal {
		return scroll.Size{Width: viewport.Width * float64(pages), Height: viewport.Height}
	}
	return scroll.Size{Width: viewport.Width, Height: viewport.Height * float64(pages)}
}

// Run validates script and executes it with a fresh Runner.
func Run(ctx context.Context, script *Script, log *logger.Logger) (*Report, error) {
	if err := script.Validate(); err != nil {
		return nil, err
	}
	return NewRunner(script, log).Run(ctx)
}
