package pipeline

import "fmt"

// WorkerFailure reports a counting worker that terminated abnormally. It
// is fatal to the whole run and is always surfaced to the caller, never
// silently dropped as an under-count. A successful-but-empty segment is
// not a failure.
type WorkerFailure struct {
	// Segment is the index of the failed worker's segment.
	Segment int

	// Reason is the recovered panic value.
	Reason any
}

func (e *WorkerFailure) Error() string {
	return fmt.Sprintf("pipeline: worker for segment %d failed: %v", e.Segment, e.Reason)
}
