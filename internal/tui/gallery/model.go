package gallery

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/widgetry/internal/config"
	"github.com/alexisbeaulieu97/widgetry/internal/logger"
	"github.com/alexisbeaulieu97/widgetry/internal/paging"
	"github.com/alexisbeaulieu97/widgetry/internal/scroll"
	"github.com/alexisbeaulieu97/widgetry/internal/ui/components"
	"github.com/alexisbeaulieu97/widgetry/internal/ui/scrollview"
)

// statusTimeout is how long a status line message stays visible.
const statusTimeout = 2 * time.Second

// Options configures the gallery.
type Options struct {
	Theme           components.Theme
	Touch           bool
	Spring          scroll.SpringConfig
	WheelDelta      int
	Physics         paging.Physics
	PagingAxis      scroll.Axis
	SettleTimeout   time.Duration
	SettleTolerance float64
	Logger          *logger.Logger
}

// OptionsFromConfig maps a validated configuration onto gallery options.
func OptionsFromConfig(cfg config.Config, log *logger.Logger) Options {
	theme, ok := components.ThemeByName(cfg.Theme)
	if !ok {
		theme = components.DarkTheme()
	}
	return Options{
		Theme:           theme,
		Touch:           cfg.Touch,
		Spring:          cfg.Spring(),
		WheelDelta:      cfg.Scroll.WheelDelta,
		Physics:         cfg.PhysicsValue(),
		PagingAxis:      cfg.AxisValue(),
		SettleTimeout:   cfg.Paging.SettleTimeout,
		SettleTolerance: cfg.Paging.SettleTolerance,
		Logger:          log,
	}
}

// Model is the Bubble Tea model of the widget gallery. Every tab hosts one scroll container
// and the gallery drives it through the handles it passed in.
type Model struct {
	opts   Options
	keys   KeyMap
	styles styles

	// Demos
	tabs          []*tab
	active        int
	catalogue     *catalogue
	catalogueView *scrollview.SingleChildScrollView
	pages         *scrollview.PageView
	pageHandle    *paging.Handle
	tracker       *pageTracker

	// Component state
	spinner  spinner.Model
	help     help.Model
	viewMode ViewMode

	// Status state
	status      string
	statusSeq   int
	showError   bool
	errorMsg    string
	animTicking bool

	// Dimensions
	width  int
	height int

	log *logger.Logger
}

// NewModel builds every demo, mounts it and focuses the first tab.
func NewModel(opts Options) (Model, error) {
	if opts.Theme.Name == "" {
		opts.Theme = components.DarkTheme()
	}
	if opts.Spring.FPS <= 0 {
		opts.Spring = scroll.DefaultSpring()
	}
	if opts.WheelDelta <= 0 {
		opts.WheelDelta = 3
	}
	log := opts.Logger.Named("gallery")

	cat, err := newCatalogue(opts.Spring)
	if err != nil {
		return Model{}, fmt.Errorf("build catalogue: %w", err)
	}

	tracker := &pageTracker{}
	pageHandle := paging.NewHandle()
	pagesTab, pages, err := newPagesTab(opts, pageHandle, tracker)
	if err != nil {
		return Model{}, fmt.Errorf("build pages demo: %w", err)
	}
	catalogueTab, catalogueView := newCatalogueTab(opts, cat)

	tabs := []*tab{
		catalogueTab,
		newListTab(opts),
		newGridTab(opts),
		pagesTab,
		newNestedTab(opts),
		newCustomTab(opts),
	}
	for _, t := range tabs {
		t.view.Mount()
	}
	tabs[0].view.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	st := newStyles(opts.Theme)
	s.Style = st.spinner

	log.Debug("gallery ready", "tabs", len(tabs), "physics", opts.Physics.String(), "touch", opts.Touch)

	return Model{
		opts:          opts,
		keys:          DefaultKeyMap(),
		styles:        st,
		tabs:          tabs,
		catalogue:     cat,
		catalogueView: catalogueView,
		pages:         pages,
		pageHandle:    pageHandle,
		tracker:       tracker,
		spinner:       s,
		help:          help.New(),
		viewMode:      ViewGallery,
		log:           log,
	}, nil
}

// Init starts the spinner.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// ActiveTab returns the index of the focused tab.
func (m Model) ActiveTab() int { return m.active }

// TabTitles returns the tab titles in order.
func (m Model) TabTitles() []string {
	titles := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		titles[i] = t.title
	}
	return titles
}

// Handle returns the scroll handle of tab i, or nil.
func (m Model) Handle(i int) *scroll.Handle {
	if i < 0 || i >= len(m.tabs) {
		return nil
	}
	return m.tabs[i].handle
}

// PageHandle returns the handle of the pages demo navigator.
func (m Model) PageHandle() *paging.Handle { return m.pageHandle }

// Status returns the current status line message.
func (m Model) Status() string { return m.status }

// Close unmounts every demo. Handles become inert afterwards.
func (m Model) Close() {
	for _, t := range m.tabs {
		t.view.Unmount()
	}
}

func (m Model) activeTab() *tab {
	return m.tabs[m.active]
}

func (m Model) animating() bool {
	if m.catalogue.Animating() {
		return true
	}
	return m.activeTab().animating()
}
