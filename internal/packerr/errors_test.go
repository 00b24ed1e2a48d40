package packerr

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		err      error
		kind     error
		expected string
	}{
		{
			name:     "validation",
			err:      Validationf("max cost that a thing can have is ≤ %v, given: %v", 100, 145),
			kind:     ErrValidation,
			expected: "max cost that a thing can have is ≤ 100, given: 145",
		},
		{
			name:     "incorrect input",
			err:      IncorrectInputf("line %d: expected ':'", 3),
			kind:     ErrIncorrectInput,
			expected: "line 3: expected ':'",
		},
		{
			name:     "file not found",
			err:      FileNotFound(fs.ErrNotExist),
			kind:     ErrFileNotFound,
			expected: "file not found: file does not exist",
		},
		{
			name:     "system",
			err:      System(errors.New("boom")),
			kind:     ErrSystem,
			expected: "system error: boom",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, tc.err, tc.kind)
			assert.Equal(t, tc.kind, KindOf(tc.err))
			assert.EqualError(t, tc.err, tc.expected)
		})
	}
}

func TestFileNotFound_KeepsCause(t *testing.T) {
	t.Parallel()

	err := FileNotFound(fs.ErrNotExist)
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.ErrorIs(t, err, ErrFileNotFound)
}

func TestWrap(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Wrap(nil))

	v := Validationf("nope")
	assert.Same(t, v, Wrap(v))

	wrapped := Wrap(errors.New("disk on fire"))
	assert.ErrorIs(t, wrapped, ErrSystem)
	assert.Nil(t, KindOf(errors.New("plain")))
}
