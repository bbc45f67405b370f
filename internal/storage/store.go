package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

var ErrNotFound = errors.New("run not found")

// Turn is one role's contribution to a run.
type Turn struct {
	Seq        int     `json:"seq"`
	Role       string  `json:"role"`
	Content    string  `json:"content"`
	Score      float64 `json:"score"`
	DurationMS int64   `json:"duration_ms"`
}

// Run is an archived team pipeline execution. Report holds the JSON run
// report as produced by the pipeline.
type Run struct {
	ID             string          `json:"id"`
	CreatedAt      time.Time       `json:"created_at"`
	ContentType    string          `json:"content_type"`
	Brief          string          `json:"brief"`
	FinalContent   string          `json:"final_content"`
	OverallQuality float64         `json:"overall_quality"`
	Terminated     bool            `json:"terminated"`
	Report         json.RawMessage `json:"report,omitempty"`
	Turns          []Turn          `json:"turns"`
}

// RunSummary is the listing view of a run.
type RunSummary struct {
	ID             string    `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	ContentType    string    `json:"content_type"`
	OverallQuality float64   `json:"overall_quality"`
	Terminated     bool      `json:"terminated"`
	Turns          int       `json:"turns"`
}

// RunStore persists team runs.
type RunStore interface {
	// SaveRun inserts the run and its turns, assigning an ID and timestamp when unset.
	SaveRun(ctx context.Context, run *Run) error

	// GetRun loads a run with its turns, or ErrNotFound.
	GetRun(ctx context.Context, id string) (*Run, error)

	// ListRuns returns the newest runs first.
	ListRuns(ctx context.Context, limit int) ([]RunSummary, error)

	Close() error
}
