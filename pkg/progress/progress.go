// Package progress tracks per-segment completion for a run in flight.
//
// Each counting worker owns exactly one index and sets it exactly once; an
// external observer polls Snapshot at a bounded interval. The tracker is an
// inspection mechanism, not a synchronization primitive: workers never wait
// on it, and the coordinator joins on worker termination instead of
// watching these flags.
package progress

import "sync/atomic"

// Tracker records which segments have completed. It is safe for concurrent
// use under the single-writer-per-index discipline: worker i only calls
// Set(i), and any number of readers may call Snapshot at the same time.
type Tracker struct {
	flags []atomic.Uint32
	done  atomic.Int64
}

// NewTracker creates a tracker for n segments, all initially incomplete.
func NewTracker(n int) *Tracker {
	return &Tracker{flags: make([]atomic.Uint32, n)}
}

// Set marks segment i as complete. The transition happens at most once per
// index: repeated calls for the same index have no further effect on the
// snapshot, and a flag is never reset.
func (t *Tracker) Set(i int) {
	if t.flags[i].CompareAndSwap(0, 1) {
		t.done.Add(1)
	}
}

// Snapshot returns the current number of completed segments without
// blocking. Once all n Set calls have returned, Snapshot reports n.
func (t *Tracker) Snapshot() int {
	return int(t.done.Load())
}

// Total returns the number of tracked segments.
func (t *Tracker) Total() int {
	return len(t.flags)
}

// Done reports whether every segment has completed.
func (t *Tracker) Done() bool {
	return t.Snapshot() == t.Total()
}
