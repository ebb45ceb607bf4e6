package league

import (
	"fmt"

	"github.com/pfrederiksen/ffpoints/internal/player"
)

// Stage names a step of the per-position pipeline
type Stage string

const (
	StageFetch     Stage = "fetch"
	StageExtract   Stage = "extract"
	StageNormalize Stage = "normalize"
	StageScore     Stage = "score"
)

// StageError identifies the position and stage a build failed at
type StageError struct {
	Position player.Position
	Stage    Stage
	Err      error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("position %s: %s: %v", e.Position, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
