// Package pipeline coordinates the parallel word counting run: it
// partitions the tokenized corpus, dispatches one counting worker per
// segment, joins all workers, and merges their tables into a deterministic
// ranking.
package pipeline

import (
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dtnitsch/wordmill/pkg/counter"
	"github.com/dtnitsch/wordmill/pkg/mapreduce"
	"github.com/dtnitsch/wordmill/pkg/progress"
	"github.com/dtnitsch/wordmill/pkg/tokenizer"
)

// State tracks the lifecycle of a run. Transitions never skip a
// predecessor; a failure while workers are in flight moves directly to the
// terminal StateFailed.
type State uint8

const (
	StateIdle State = iota
	StatePartitioned
	StateDispatched
	StateAllWorkersJoined
	StateMerged
	StateRanked
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePartitioned:
		return "partitioned"
	case StateDispatched:
		return "dispatched"
	case StateAllWorkersJoined:
		return "all-workers-joined"
	case StateMerged:
		return "merged"
	case StateRanked:
		return "ranked"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// CountFunc maps one segment to its frequency table. The default is
// counter.Count; tests and benchmarks may substitute their own.
type CountFunc func(tokenizer.Segment) map[string]int

// Result holds everything a completed run produced.
type Result struct {
	// Partials are the per-segment frequency tables, indexed by segment.
	Partials []map[string]int

	// Merged is the consolidated table: for every token, the sum of its
	// counts across all partials.
	Merged map[string]int

	// Ranked is the total order over Merged by (descending count,
	// ascending token).
	Ranked []mapreduce.Entry

	// TokenCount is the total number of tokens in the corpus.
	TokenCount int

	// SegmentSizes holds the token count of each segment.
	SegmentSizes []int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger used for per-segment diagnostics. If unset,
// slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithCountFunc overrides the segment counting function.
func WithCountFunc(fn CountFunc) Option {
	return func(p *Pipeline) {
		p.countFn = fn
	}
}

// Pipeline runs the split/count/merge sequence. A Pipeline is good for one
// Run at a time; State and Tracker may be read concurrently while a run is
// in flight.
type Pipeline struct {
	logger  *slog.Logger
	countFn CountFunc

	mu      sync.Mutex
	state   State
	tracker *progress.Tracker
}

func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		countFn: counter.Count,
		state:   StateIdle,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// State returns the current lifecycle state.
func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Tracker returns the progress tracker of the run in flight, or nil before
// dispatch. Observers poll its Snapshot; correctness never depends on it.
func (p *Pipeline) Tracker() *progress.Tracker {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tracker
}

func (p *Pipeline) setState(s State) {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()
	p.logger.Debug("pipeline state changed", "state", s.String())
}

// Run tokenizes text, partitions it into contiguous segments, and counts
// every segment in its own goroutine. It blocks until every worker
// has terminated; the errgroup join is the authoritative completion
// signal, never the progress flags.
//
// A worker that panics fails the whole run with a *WorkerFailure: no
// partial or degraded result is ever returned. Run is all-or-nothing.
func (p *Pipeline) Run(text string, segments int) (*Result, error) {
	start := time.Now()

	tokens := tokenizer.Tokenize(text)
	segs, err := tokenizer.Partition(tokens, segments)
	if err != nil {
		return nil, err
	}
	p.setState(StatePartitioned)
	p.logger.Debug("corpus partitioned", "tokens", len(tokens), "segments", len(segs))

	tracker := progress.NewTracker(len(segs))
	p.mu.Lock()
	p.tracker = tracker
	p.mu.Unlock()

	// One slot per segment, written only by that segment's worker. The
	// coordinator reads the slots only after the join, so no slot is ever
	// shared between two live writers or a writer and a reader.
	partials := make([]map[string]int, len(segs))

	p.setState(StateDispatched)

	var grp errgroup.Group
	for i, seg := range segs {
		i, seg := i, seg
		grp.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &WorkerFailure{Segment: i, Reason: r}
				}
			}()

			table := p.countFn(seg)

			// The result must be published before the progress flag so an
			// observer never sees a segment done whose table is missing.
			partials[i] = table
			tracker.Set(i)

			p.logger.Debug("segment counted",
				"segment", i, "tokens", len(seg), "distinct", len(table))
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		p.setState(StateFailed)
		return nil, err
	}
	p.setState(StateAllWorkersJoined)

	merged := mapreduce.Reduce(partials)
	p.setState(StateMerged)

	ranked := mapreduce.Rank(merged)
	p.setState(StateRanked)

	sizes := make([]int, len(segs))
	for i, seg := range segs {
		sizes[i] = len(seg)
	}

	result := &Result{
		Partials:     partials,
		Merged:       merged,
		Ranked:       ranked,
		TokenCount:   len(tokens),
		SegmentSizes: sizes,
		Elapsed:      time.Since(start),
	}
	p.setState(StateDone)

	return result, nil
}
