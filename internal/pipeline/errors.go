package pipeline

import "fmt"

// StageError wraps a failure reported by an external collaborator (ffmpeg
// extraction, concatenation, mux, render) with enough context to diagnose
// without replaying internal state. Segment is -1 when the stage isn't tied
// to one segment.
type StageError struct {
	Stage   string
	Segment int
	Err     error
}

func (e *StageError) Error() string {
	if e.Segment >= 0 {
		return fmt.Sprintf("stage %s failed on segment %d: %v", e.Stage, e.Segment, e.Err)
	}
	return fmt.Sprintf("stage %s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

func stageErr(stage string, segment int, err error) error {
	return &StageError{Stage: stage, Segment: segment, Err: err}
}
