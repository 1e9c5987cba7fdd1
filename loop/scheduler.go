package loop

import (
	"context"
	"fmt"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemEntry struct {
	system         System
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler executes registered systems in order, one pass per frame.
// It is not safe for concurrent use.
type Scheduler struct {
	entries []*systemEntry
	frame   Frame
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Register appends a system to the end of the frame.
func (s *Scheduler) Register(system System) {
	if system == nil {
		panic("loop: Register called with nil system")
	}
	s.entries = append(s.entries, &systemEntry{
		system:      system,
		name:        systemName(system),
		minDuration: time.Duration(1<<63 - 1),
	})
}

func systemName(system System) string {
	if named, ok := system.(fmt.Stringer); ok {
		return named.String()
	}
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	return systemType.Name()
}

// Once executes all registered systems once with the given delta time and
// then runs the work they deferred.
func (s *Scheduler) Once(dt float64) {
	s.frame.DeltaTime = dt
	s.frame.Index++

	for _, entry := range s.entries {
		start := time.Now()
		entry.system.Execute(&s.frame)
		entry.record(time.Since(start))
	}

	s.frame.flush()
}

func (e *systemEntry) record(duration time.Duration) {
	e.executionCount++
	e.lastDuration = duration
	e.totalDuration += duration

	if duration < e.minDuration {
		e.minDuration = duration
	}
	if duration > e.maxDuration {
		e.maxDuration = duration
	}
}

// Run executes all systems at the given interval until the context is
// cancelled or until done reports true after a pass. A nil done never stops.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration, done func() bool) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
			if done != nil && done() {
				return
			}
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.entries),
		Frames:      s.frame.Index,
		Systems:     make([]SystemStats, len(s.entries)),
	}

	var totalExecs int64
	for i, entry := range s.entries {
		avgDuration := time.Duration(0)
		minDuration := entry.minDuration
		if entry.executionCount > 0 {
			avgDuration = entry.totalDuration / time.Duration(entry.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           entry.name,
			ExecutionCount: entry.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    entry.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   entry.lastDuration,
			TotalDuration:  entry.totalDuration,
		}
		totalExecs += entry.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
