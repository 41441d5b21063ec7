// Package model defines data structures for the website-builder bot.
package model

import (
	"time"
)

// Stage represents where a user is in the website creation dialogue.
type Stage string

const (
	StageIdle                Stage = "idle"
	StageAwaitingType        Stage = "awaiting_project_type"
	StageAwaitingDescription Stage = "awaiting_description"
	StageAwaitingQuality     Stage = "awaiting_quality"
)

// allowedTransitions is the closed table of forward stage progressions.
// Any transition not listed here requires an explicit reset through Clear.
var allowedTransitions = map[Stage]Stage{
	StageIdle:                StageAwaitingType,
	StageAwaitingType:        StageAwaitingDescription,
	StageAwaitingDescription: StageAwaitingQuality,
	StageAwaitingQuality:     StageIdle,
}

// CanTransition reports whether moving from one stage to the next is a legal
// forward progression.
func CanTransition(from, to Stage) bool {
	return allowedTransitions[from] == to
}

// Session is the per-user conversation state record. One record exists per
// active user; it is owned by the session store and mutated only through it.
type Session struct {
	UserID          int64
	Stage           Stage
	ProjectCategory string
	ProjectType     string
	TypeName        string
	Description     string
	Quality         string
	QualityName     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	RetryCount      int
}
