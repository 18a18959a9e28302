package replay

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/widgetry/internal/scroll"
	widgetryerrors "github.com/alexisbeaulieu97/widgetry/pkg/errors"
)

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func mustParse(t *testing.T, doc string) *Script {
	t.Helper()
	script, err := Parse("script.yaml", []byte(doc))
	require.NoError(t, err)
	return script
}

func run(t *testing.T, doc string) *Report {
	t.Helper()
	report, err := Run(context.Background(), mustParse(t, doc), nil)
	require.NoError(t, err)
	return report
}

func TestLoad_AppliesDefaults(t *testing.T) {
	t.Parallel()

	path := writeScript(t, `
name: defaults
pages: 3
steps:
  - op: next_page
`)
	script, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "defaults", script.Name)
	assert.Equal(t, 300.0, script.PageExtent)
	assert.Equal(t, "horizontal", script.Axis)
	assert.Equal(t, "clamped", script.Physics)
	assert.True(t, script.Animated)
	assert.Equal(t, time.Second, script.SettleTimeout)
	assert.Equal(t, scroll.AxisHorizontal, script.AxisValue())
	assert.Equal(t, scroll.Size{Width: 300, Height: 10}, script.Viewport())
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		doc   string
		check func(t *testing.T, err error)
	}{
		{
			name: "unknown key",
			doc:  "pages: 2\nspeed: 3\nsteps: [{op: next_page}]\n",
			check: func(t *testing.T, err error) {
				var parseErr *widgetryerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Equal(t, 2, parseErr.Line)
			},
		},
		{
			name: "unknown op",
			doc:  "pages: 2\nsteps: [{op: fling}]\n",
			check: func(t *testing.T, err error) {
				var validationErr *widgetryerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "steps[0].op", validationErr.Field)
			},
		},
		{
			name: "no steps",
			doc:  "pages: 2\n",
			check: func(t *testing.T, err error) {
				var validationErr *widgetryerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "steps", validationErr.Field)
			},
		},
		{
			name: "bad physics",
			doc:  "physics: springy\nsteps: [{op: next_page}]\n",
			check: func(t *testing.T, err error) {
				var validationErr *widgetryerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "physics", validationErr.Field)
			},
		},
		{
			name: "resize without size",
			doc:  "pages: 2\nsteps:\n  - op: next_page\n  - op: resize\n    width: 10\n",
			check: func(t *testing.T, err error) {
				var stepErr *widgetryerrors.StepError
				require.ErrorAs(t, err, &stepErr)
				assert.Equal(t, 1, stepErr.Index)
				assert.Equal(t, OpResize, stepErr.Op)
			},
		},
		{
			name: "wait without duration",
			doc:  "pages: 2\nsteps: [{op: wait}]\n",
			check: func(t *testing.T, err error) {
				var stepErr *widgetryerrors.StepError
				require.ErrorAs(t, err, &stepErr)
				assert.Equal(t, OpWait, stepErr.Op)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse("script.yaml", []byte(tt.doc))
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *widgetryerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRun_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		doc   string
		pages []int
		final int
	}{
		{
			name: "user scroll rounds to nearest page",
			doc: `
pages: 5
animated: false
steps:
  - op: user_scroll
    x: 620
`,
			pages: []int{2},
			final: 2,
		},
		{
			name: "set page past the end clamps",
			doc: `
pages: 3
initial: 1
animated: false
steps:
  - op: set_page
    page: 5
  - op: set_page
    page: 9
`,
			pages: []int{2},
			final: 2,
		},
		{
			name: "animated command notifies once",
			doc: `
pages: 5
steps:
  - op: set_page
    page: 3
  - op: frames
`,
			pages: []int{3},
			final: 3,
		},
		{
			name: "retarget while animating",
			doc: `
pages: 5
steps:
  - op: set_page
    page: 4
  - op: frames
    count: 3
  - op: set_page
    page: 1
  - op: frames
`,
			pages: []int{4, 1},
			final: 1,
		},
		{
			name: "bouncy overscroll keeps the index in range",
			doc: `
pages: 3
physics: bouncy
steps:
  - op: scroll_to_bottom
  - op: frames
  - op: next_page
`,
			pages: []int{1, 2},
			final: 2,
		},
		{
			name: "no wraparound at either end",
			doc: `
pages: 2
animated: false
steps:
  - op: previous_page
  - op: next_page
  - op: next_page
`,
			pages: []int{1},
			final: 1,
		},
		{
			name: "zero pages",
			doc: `
pages: 0
steps:
  - op: set_page
    page: 1
  - op: next_page
  - op: previous_page
`,
			pages: []int{},
			final: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			report := run(t, tt.doc)
			assert.Equal(t, tt.pages, report.PageSequence())
			assert.Equal(t, tt.final, report.Final.Page)
		})
	}
}

func TestRun_NotificationsCarryTheirStep(t *testing.T) {
	t.Parallel()

	report := run(t, `
pages: 4
animated: false
steps:
  - op: next_page
  - op: scroll_to
    x: 900
  - op: scroll_to_top
`)
	require.Len(t, report.Notifications, 3)
	assert.Equal(t, Notification{Step: 0, Op: OpNextPage, Page: 1}, report.Notifications[0])
	assert.Equal(t, Notification{Step: 1, Op: OpScrollTo, Page: 3}, report.Notifications[1])
	assert.Equal(t, Notification{Step: 2, Op: OpScrollToTop, Page: 0}, report.Notifications[2])
	assert.Nil(t, report.Final.Rendered)
}

func TestRun_ResizeKeepsCurrentPage(t *testing.T) {
	t.Parallel()

	report := run(t, `
pages: 4
initial: 2
steps:
  - op: resize
    width: 200
    height: 10
  - op: frames
  - op: expect_page
    page: 2
`)
	assert.Empty(t, report.Notifications)
	assert.Equal(t, scroll.Offset{Left: 400}, report.Final.Offset)
	assert.Equal(t, scroll.Extent{MaxLeft: 600}, report.Final.Extent)
	require.NotNil(t, report.Final.Rendered)
	assert.Equal(t, scroll.Offset{Left: 400}, *report.Final.Rendered)
}

func TestRun_SettleTimeoutReleasesSuppression(t *testing.T) {
	t.Parallel()

	// Once the window times out the still-moving surface is read page by page again.
	report := run(t, `
pages: 5
settle_timeout: 500ms
steps:
  - op: set_page
    page: 3
  - op: wait
    duration: 1s
  - op: frames
`)
	assert.Equal(t, []int{3, 0, 1, 2, 3}, report.PageSequence())
	assert.Equal(t, 3, report.Final.Page)
	assert.Greater(t, report.Elapsed, time.Second)
}

func TestRun_ExpectPageFailure(t *testing.T) {
	t.Parallel()

	_, err := Run(context.Background(), mustParse(t, `
pages: 3
steps:
  - op: next_page
  - op: expect_page
    page: 2
`), nil)

	var stepErr *widgetryerrors.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, 1, stepErr.Index)
	assert.Contains(t, err.Error(), "expected page 2, got 1")
}

func TestRun_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, mustParse(t, "pages: 2\nsteps: [{op: next_page}]\n"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
