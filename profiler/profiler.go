// Package profiler times the stages of a pipeline run and reports them
// together with a memory snapshot.
package profiler

import (
	"log/slog"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
)

// Profiler collects per-operation timing statistics. It is safe for use by
// concurrent stages.
type Profiler struct {
	mu         sync.Mutex
	startTime  time.Time
	maxSamples int
	operations map[string]*TimeTracker
	// order keeps operations in first-seen order for stable reports.
	order []string
}

// TimeTracker tracks operation timing statistics.
type TimeTracker struct {
	name      string
	durations []time.Duration
	totalTime time.Duration
	minTime   time.Duration
	maxTime   time.Duration
	count     int64
}

// OperationStats is a snapshot of one operation's timings.
type OperationStats struct {
	Name  string
	Count int64
	Total time.Duration
	Avg   time.Duration
	Min   time.Duration
	Max   time.Duration
}

// MemoryStats is a snapshot of the Go heap.
type MemoryStats struct {
	HeapAlloc   uint64
	TotalAlloc  uint64
	Sys         uint64
	HeapObjects uint64
	NumGC       uint32
}

// ProfilingOptions configures the profiler.
type ProfilingOptions struct {
	// MaxSamples caps how many durations are kept per operation for the
	// average (default: 600). Min, max and count cover every sample.
	MaxSamples int
}

// New creates a profiler.
//
// Arguments:
// - opts: Configuration options for the profiler
//
// Returns:
// - A configured Profiler instance
func New(opts ProfilingOptions) *Profiler {
	if opts.MaxSamples <= 0 {
		opts.MaxSamples = 600
	}
	return &Profiler{
		startTime:  time.Now(),
		maxSamples: opts.MaxSamples,
		operations: make(map[string]*TimeTracker),
	}
}

// StartOperation begins timing an operation. A nil profiler is valid and
// records nothing, so callers can leave profiling unset.
//
// Arguments:
// - name: The name of the operation to track
//
// Returns:
// - A function to call when the operation completes
func (p *Profiler) StartOperation(name string) func() {
	if p == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		p.Record(name, time.Since(start))
	}
}

// Record adds one completed duration for the named operation.
func (p *Profiler) Record(name string, duration time.Duration) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	tracker, exists := p.operations[name]
	if !exists {
		tracker = &TimeTracker{
			name:    name,
			minTime: duration,
			maxTime: duration,
		}
		p.operations[name] = tracker
		p.order = append(p.order, name)
	}

	tracker.durations = append(tracker.durations, duration)
	if len(tracker.durations) > p.maxSamples {
		// Remove oldest sample
		tracker.totalTime -= tracker.durations[0]
		tracker.durations = tracker.durations[1:]
	}

	tracker.totalTime += duration
	tracker.count++

	if duration < tracker.minTime {
		tracker.minTime = duration
	}
	if duration > tracker.maxTime {
		tracker.maxTime = duration
	}
}

// Operations returns the stats of every recorded operation in the order the
// operations were first seen.
func (p *Profiler) Operations() []OperationStats {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]OperationStats, 0, len(p.order))
	for _, name := range p.order {
		t := p.operations[name]
		s := OperationStats{
			Name:  name,
			Count: t.count,
			Total: t.totalTime,
			Min:   t.minTime,
			Max:   t.maxTime,
		}
		if n := len(t.durations); n > 0 {
			s.Avg = t.totalTime / time.Duration(n)
		}
		out = append(out, s)
	}
	return out
}

// Slowest returns up to n operations ordered by total time, slowest first.
func (p *Profiler) Slowest(n int) []OperationStats {
	ops := p.Operations()
	sort.SliceStable(ops, func(i, j int) bool { return ops[i].Total > ops[j].Total })
	if n >= 0 && n < len(ops) {
		ops = ops[:n]
	}
	return ops
}

// Memory reads the current heap statistics.
func Memory() MemoryStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemoryStats{
		HeapAlloc:   m.HeapAlloc,
		TotalAlloc:  m.TotalAlloc,
		Sys:         m.Sys,
		HeapObjects: m.HeapObjects,
		NumGC:       m.NumGC,
	}
}

// LogReport writes one line per operation and a memory summary to logger.
func (p *Profiler) LogReport(logger *slog.Logger) {
	if p == nil || logger == nil {
		return
	}
	for _, op := range p.Operations() {
		logger.Info("stage timing",
			"stage", op.Name,
			"count", op.Count,
			"avg", op.Avg.Truncate(time.Microsecond),
			"min", op.Min.Truncate(time.Microsecond),
			"max", op.Max.Truncate(time.Microsecond),
		)
	}

	mem := Memory()
	logger.Info("memory usage",
		"uptime", time.Since(p.startTime).Truncate(time.Millisecond),
		"heap_alloc", humanize.Bytes(mem.HeapAlloc),
		"total_alloc", humanize.Bytes(mem.TotalAlloc),
		"sys", humanize.Bytes(mem.Sys),
		"heap_objects", humanize.Comma(int64(mem.HeapObjects)),
		"gc_cycles", mem.NumGC,
	)
}
