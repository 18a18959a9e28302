package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/widgetry/internal/replay"
)

const pagedScript = `name: drag past two pages
pages: 5
page_extent: 300
axis: vertical
physics: clamped
animated: false
steps:
  - op: user_scroll
    y: 620
  - op: expect_page
    page: 2
`

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(errOut)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestReplayCommand_TextOutput(t *testing.T) {
	path := writeScript(t, pagedScript)

	output, err := executeRoot(t, "replay", path)
	require.NoError(t, err)

	assert.Contains(t, output, "Replay: drag past two pages")
	assert.Contains(t, output, "Pages:  5")
	assert.Contains(t, output, "user_scroll")
	assert.Contains(t, output, "-> page 2")
	assert.Contains(t, output, "Final page:   2")
	assert.Contains(t, output, "Final offset: top=620 left=0")
	assert.NotContains(t, output, "Rendered:")
}

func TestReplayCommand_JSONOutput(t *testing.T) {
	path := writeScript(t, pagedScript)

	output, err := executeRoot(t, "replay", "--json", path)
	require.NoError(t, err)

	var report replay.Report
	require.NoError(t, json.Unmarshal([]byte(output), &report))
	assert.Equal(t, "drag past two pages", report.Name)
	assert.Equal(t, []int{2}, report.PageSequence())
	assert.Equal(t, 0, report.Notifications[0].Step)
	assert.Equal(t, 2, report.Final.Page)
	assert.Equal(t, 1200.0, report.Final.Extent.MaxTop)
	assert.Nil(t, report.Final.Rendered)
}

func TestReplayCommand_NoPageChanges(t *testing.T) {
	path := writeScript(t, `pages: 0
animated: false
steps:
  - op: next_page
`)

	output, err := executeRoot(t, "replay", path)
	require.NoError(t, err)
	assert.Contains(t, output, "No page changes.")
	assert.Contains(t, output, "Final page:   -1")
}

func TestReplayCommand_Errors(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		contains []string
	}{
		{
			name: "failed expectation names the step",
			script: `pages: 3
animated: false
steps:
  - op: next_page
  - op: expect_page
    page: 2
`,
			contains: []string{"running script", "expected page 2, got 1", "Check step 1 (expect_page)"},
		},
		{
			name: "unknown key",
			script: `pages: 3
colour: red
steps:
  - op: next_page
`,
			contains: []string{"loading script", "Check the YAML syntax"},
		},
		{
			name: "invalid physics",
			script: `pages: 3
physics: sticky
steps:
  - op: next_page
`,
			contains: []string{"loading script", "Fix the value of physics"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScript(t, tt.script)
			_, err := executeRoot(t, "replay", path)
			require.Error(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestReplayCommand_RequiresScript(t *testing.T) {
	_, err := executeRoot(t, "replay")
	require.Error(t, err)
}

func TestReplayCommand_MissingScript(t *testing.T) {
	_, err := executeRoot(t, "replay", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading script")
}

func TestReplayCommand_Golden(t *testing.T) {
	path := writeScript(t, pagedScript)
	golden := filepath.Join(t.TempDir(), "drag.golden")

	output, err := executeRoot(t, "replay", path, "--golden", golden, "--update")
	require.NoError(t, err)
	assert.Contains(t, output, "Updated "+golden)

	written, err := os.ReadFile(golden)
	require.NoError(t, err)
	assert.Contains(t, string(written), "Final page:   2")

	output, err = executeRoot(t, "replay", path, "--golden", golden)
	require.NoError(t, err)
	assert.Contains(t, output, "Report matches")

	edited := strings.Replace(string(written), "Final page:   2", "Final page:   3", 1)
	require.NoError(t, os.WriteFile(golden, []byte(edited), 0o644))

	output, err = executeRoot(t, "replay", path, "--golden", golden)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report differs from golden file")
	assert.Contains(t, output, "-Final page:   3")
	assert.Contains(t, output, "+Final page:   2")
}

func TestReplayCommand_GoldenMissing(t *testing.T) {
	path := writeScript(t, pagedScript)

	_, err := executeRoot(t, "replay", path, "--golden", filepath.Join(t.TempDir(), "none.golden"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--update")
}
