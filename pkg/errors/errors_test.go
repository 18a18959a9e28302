package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("gallery.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "gallery.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "gallery.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("script.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: script.yaml: no such file", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("paging.physics", "unknown physics \"springy\"", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "paging.physics", validationErr.Field)
	require.Contains(t, err.Error(), "unknown physics")
}

func TestStepErrorIncludesPosition(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("surface is not paged")
	err := NewStepError(3, "set_page", underlying)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	require.Equal(t, 3, stepErr.Index)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "step 3 (set_page): surface is not paged", err.Error())
}

func TestNilErrorsRenderEmpty(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var stepErr *StepError
	require.Empty(t, parseErr.Error())
	require.Empty(t, validationErr.Error())
	require.Empty(t, stepErr.Error())
	require.Nil(t, stepErr.Unwrap())
}
