// Package state persists the run-state artifact consumed by the status
// command. It is observational only: the pipeline never consults it to skip
// or resume work.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Pipeline stages, in execution order.
const (
	StageNotStarted        = "not-started"
	StageExtractingSymbols = "extracting-symbols"
	StageExtractingMantras = "extracting-mantras"
	StageGeneratingChant   = "generating-chant"
	StageDone              = "done"
)

// Run statuses.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusPartial   = "partial"
)

const fileName = "ritual_state.json"

// RunState records one ritual run.
type RunState struct {
	RunID        string          `json:"run_id"`
	Stage        string          `json:"stage"`
	Status       string          `json:"status"`
	StageResults map[string]bool `json:"stage_results"`
	StartedAt    time.Time       `json:"started_at"`
	FinishedAt   time.Time       `json:"finished_at,omitempty"`
}

// NewRun returns a fresh RunState with a unique run ID.
func NewRun() *RunState {
	return &RunState{
		RunID:        uuid.NewString(),
		Stage:        StageNotStarted,
		Status:       StatusRunning,
		StageResults: make(map[string]bool),
		StartedAt:    time.Now(),
	}
}

func statePath(outputsDir string) string {
	return filepath.Join(outputsDir, fileName)
}

// Load reads the run state from the outputs directory. Returns nil without
// error when no run has been recorded yet.
func Load(outputsDir string) (*RunState, error) {
	data, err := os.ReadFile(statePath(outputsDir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var s RunState
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Save writes the run state to the outputs directory.
func (s *RunState) Save(outputsDir string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(statePath(outputsDir), data, 0644)
}

// SetStage records the stage currently executing.
func (s *RunState) SetStage(stage string) {
	s.Stage = stage
}

// RecordResult records a stage outcome.
func (s *RunState) RecordResult(stage string, ok bool) {
	s.StageResults[stage] = ok
}

// Finish marks the run complete. Status is completed only when every recorded
// stage succeeded.
func (s *RunState) Finish() {
	s.Stage = StageDone
	s.FinishedAt = time.Now()
	s.Status = StatusCompleted
	for _, ok := range s.StageResults {
		if !ok {
			s.Status = StatusPartial
			break
		}
	}
}

// Succeeded counts the stages that succeeded.
func (s *RunState) Succeeded() int {
	n := 0
	for _, ok := range s.StageResults {
		if ok {
			n++
		}
	}
	return n
}
