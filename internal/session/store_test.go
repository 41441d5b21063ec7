package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitecraft-ai/sitecraft/internal/model"
)

func TestGet_MissingUser(t *testing.T) {
	s := NewStore(0)

	_, ok := s.Get(1)
	assert.False(t, ok)
}

func TestSet_CreatesAndMerges(t *testing.T) {
	s := NewStore(0)

	s.Set(1, Patch{Stage: model.StageAwaitingType, ProjectCategory: "website"})
	s.Set(1, Patch{Stage: model.StageAwaitingDescription, ProjectType: "corporate", TypeName: "Corporate site"})

	sess, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, model.StageAwaitingDescription, sess.Stage)
	assert.Equal(t, "website", sess.ProjectCategory)
	assert.Equal(t, "corporate", sess.ProjectType)
	assert.Equal(t, "Corporate site", sess.TypeName)
	assert.Zero(t, sess.RetryCount)
}

func TestClear_RemovesRecord(t *testing.T) {
	s := NewStore(0)

	s.Set(1, Patch{Stage: model.StageAwaitingType})
	s.Clear(1)

	_, ok := s.Get(1)
	assert.False(t, ok)
}

func TestGet_ExpiredSession(t *testing.T) {
	s := NewStore(30 * time.Minute)
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }

	s.Set(5, Patch{Stage: model.StageAwaitingDescription})

	current = current.Add(31 * time.Minute)
	_, ok := s.Get(5)
	assert.False(t, ok, "expired session must read as missing")

	// The expired record is gone even if the clock rolls back.
	current = current.Add(-31 * time.Minute)
	_, ok = s.Get(5)
	assert.False(t, ok)
}

func TestCanTransition(t *testing.T) {
	assert.True(t, model.CanTransition(model.StageIdle, model.StageAwaitingType))
	assert.True(t, model.CanTransition(model.StageAwaitingType, model.StageAwaitingDescription))
	assert.True(t, model.CanTransition(model.StageAwaitingDescription, model.StageAwaitingQuality))
	assert.True(t, model.CanTransition(model.StageAwaitingQuality, model.StageIdle))

	assert.False(t, model.CanTransition(model.StageIdle, model.StageAwaitingQuality), "no stage skipping")
	assert.False(t, model.CanTransition(model.StageAwaitingQuality, model.StageAwaitingDescription), "no reverting")
}
