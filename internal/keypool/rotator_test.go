package keypool

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext_RoundRobin(t *testing.T) {
	r := New([]string{"key-a", "key-b", "key-c"}, 0)

	var got []string
	for i := 0; i < 6; i++ {
		k, ok := r.Next()
		require.True(t, ok)
		got = append(got, k)
	}
	assert.Equal(t, []string{"key-a", "key-b", "key-c", "key-a", "key-b", "key-c"}, got)
}

func TestNext_SkipsFailed(t *testing.T) {
	r := New([]string{"key-a", "key-b", "key-c"}, 0)
	r.MarkFailed("key-a")

	for i := 0; i < 10; i++ {
		k, ok := r.Next()
		require.True(t, ok)
		assert.NotEqual(t, "key-a", k)
	}
	assert.Equal(t, 2, r.Healthy())
}

func TestNext_AllFailed(t *testing.T) {
	r := New([]string{"key-a", "key-b"}, 0)
	r.MarkFailed("key-a")
	r.MarkFailed("key-b")

	_, ok := r.Next()
	assert.False(t, ok)
	assert.Zero(t, r.Healthy())
}

func TestNext_EmptyPool(t *testing.T) {
	r := New(nil, 0)

	_, ok := r.Next()
	assert.False(t, ok)
}

func TestNext_CooldownRehabilitates(t *testing.T) {
	r := New([]string{"key-a"}, 15*time.Minute)
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return current }

	r.MarkFailed("key-a")
	_, ok := r.Next()
	assert.False(t, ok)

	current = current.Add(16 * time.Minute)
	k, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, "key-a", k)
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "sk-a319d7b***", Redact("sk-a319d7b4929d40d4ab3a3a8720e5f612"))
	assert.Equal(t, "short***", Redact("short"))
}
