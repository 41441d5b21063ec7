// Package session holds per-user conversation state for the bot.
package session

import (
	"sync"
	"time"

	"github.com/sitecraft-ai/sitecraft/internal/model"
)

// Patch carries fields to merge into a user's session record. Zero-valued
// fields are left unchanged.
type Patch struct {
	Stage           model.Stage
	ProjectCategory string
	ProjectType     string
	TypeName        string
	Description     string
	Quality         string
	QualityName     string
}

// Store owns the per-user session records. All access goes through a single
// lock; Set, Get and Clear are atomic with respect to each other.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]*model.Session
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates a session store. Records untouched for longer than ttl are
// treated as expired; ttl <= 0 disables expiry.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: map[int64]*model.Session{},
		ttl:      ttl,
		now:      time.Now,
	}
}

// Set merges the patch into the user's record, creating one if absent. The
// update stamp is refreshed and the retry counter reset on every call.
func (s *Store) Set(userID int64, patch Patch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &model.Session{UserID: userID, Stage: model.StageIdle, CreatedAt: now}
		s.sessions[userID] = sess
	}

	if patch.Stage != "" {
		sess.Stage = patch.Stage
	}
	if patch.ProjectCategory != "" {
		sess.ProjectCategory = patch.ProjectCategory
	}
	if patch.ProjectType != "" {
		sess.ProjectType = patch.ProjectType
	}
	if patch.TypeName != "" {
		sess.TypeName = patch.TypeName
	}
	if patch.Description != "" {
		sess.Description = patch.Description
	}
	if patch.Quality != "" {
		sess.Quality = patch.Quality
	}
	if patch.QualityName != "" {
		sess.QualityName = patch.QualityName
	}
	sess.UpdatedAt = now
	sess.RetryCount = 0
}

// Get returns a copy of the user's session. The second return value is false
// when no record exists or the record has expired; callers must treat that as
// "session expired, user must restart". Expired records are removed.
func (s *Store) Get(userID int64) (model.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return model.Session{}, false
	}
	if s.ttl > 0 && s.now().Sub(sess.UpdatedAt) > s.ttl {
		delete(s.sessions, userID)
		return model.Session{}, false
	}
	return *sess, true
}

// Clear removes the user's session record, if any.
func (s *Store) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
