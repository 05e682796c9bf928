package id

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// not parallel: At from another test would reset the monotonic run
func TestNewIsSortedAndUnique(t *testing.T) {
	seen := make(map[string]struct{})
	prev := ""
	for i := 0; i < 1000; i++ {
		s := New()
		require.Len(t, s, 26)
		assert.True(t, Valid(s))
		assert.Greater(t, s, prev)
		_, dup := seen[s]
		require.False(t, dup)
		seen[s] = struct{}{}
		prev = s
	}
}

func TestAtEncodesTime(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC)
	got, err := Time(At(at))
	require.NoError(t, err)
	assert.True(t, at.Equal(got))

	assert.Less(t, At(at), At(at.Add(time.Hour)))
}

func TestValid(t *testing.T) {
	t.Parallel()

	assert.False(t, Valid(""))
	assert.False(t, Valid("T123"))
	assert.False(t, Valid(strings.Repeat("!", 26)))
	assert.True(t, Valid("01ARZ3NDEKTSV4RRFFQ69G5FAV"))

	_, err := Time("nope")
	assert.Error(t, err)
}
