package model

import (
	"time"
)

// Artifact is the structured HTML/CSS/JS bundle produced by a generation run.
type Artifact struct {
	HTML          string `json:"html"`
	CSS           string `json:"css"`
	JS            string `json:"js"`
	Documentation string `json:"documentation,omitempty"`
}

// ProjectStatus marks the lifecycle state of a persisted project.
type ProjectStatus string

const (
	ProjectStatusCompleted ProjectStatus = "completed"
)

// ProjectRecord is the persisted result of one completed generation run.
// Records are append-only from the core's perspective.
type ProjectRecord struct {
	ID           string
	UserID       int64
	ProjectType  string
	Description  string
	ArtifactJSON string
	Status       ProjectStatus
	QualityScore int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
