package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines_Identical(t *testing.T) {
	content := []byte("line1\nline2\nline3\n")
	assert.Empty(t, Lines(content, content, "want", "got"))
}

func TestLines_SingleLineChange(t *testing.T) {
	result := Lines([]byte("line1\nline2\nline3\n"), []byte("line1\nmodified\nline3\n"), "want", "got")

	require.NotEmpty(t, result)
	assert.Contains(t, result, "--- want\n+++ got\n")
	assert.Contains(t, result, "@@ -1,3 +1,3 @@")
	assert.Contains(t, result, " line1\n")
	assert.Contains(t, result, "-line2\n")
	assert.Contains(t, result, "+modified\n")
	assert.Contains(t, result, " line3\n")
}

func TestLines_WholeLinesOnly(t *testing.T) {
	result := Lines([]byte("page 1\n"), []byte("page 2\n"), "a", "b")

	assert.Contains(t, result, "-page 1\n")
	assert.Contains(t, result, "+page 2\n")
	assert.NotContains(t, result, " page ")
}

func TestLines_Empty(t *testing.T) {
	result := Lines(nil, []byte("added\n"), "a", "b")
	assert.Contains(t, result, "@@ -1,0 +1,1 @@")
	assert.Contains(t, result, "+added\n")
}

func TestLines_MissingTrailingNewline(t *testing.T) {
	result := Lines([]byte("same\nold"), []byte("same\nnew"), "a", "b")
	assert.Contains(t, result, " same\n")
	assert.Contains(t, result, "-old\n")
	assert.Contains(t, result, "+new\n")
}

func TestLines_Truncation(t *testing.T) {
	var want, got strings.Builder
	for i := 0; i < 6000; i++ {
		fmt.Fprintf(&want, "want %d\n", i)
		fmt.Fprintf(&got, "got %d\n", i)
	}

	result := Lines([]byte(want.String()), []byte(got.String()), "a", "b")
	assert.True(t, strings.HasSuffix(result, truncateMessage+"\n"))
	assert.LessOrEqual(t, strings.Count(result, "\n"), maxDiffLines+1)
}
