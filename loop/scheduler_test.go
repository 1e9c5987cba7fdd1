package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/loop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSystem struct {
	ExecuteCount int
	TotalTime    float64
	trace        *[]string
	label        string
}

func (s *countingSystem) Execute(frame *loop.Frame) {
	s.ExecuteCount++
	s.TotalTime += frame.DeltaTime
	if s.trace != nil {
		*s.trace = append(*s.trace, s.label)
	}
}

type deferringSystem struct {
	trace *[]string
}

func (s *deferringSystem) Execute(frame *loop.Frame) {
	frame.Defer(func() {
		*s.trace = append(*s.trace, "deferred")
	})
}

func TestScheduler(t *testing.T) {
	t.Run("system execution order", func(t *testing.T) {
		var trace []string
		scheduler := loop.NewScheduler()
		scheduler.Register(&countingSystem{trace: &trace, label: "first"})
		scheduler.Register(&deferringSystem{trace: &trace})
		scheduler.Register(&countingSystem{trace: &trace, label: "last"})

		scheduler.Once(1.0 / 60.0)
		scheduler.Once(1.0 / 60.0)

		assert.Equal(t, []string{"first", "last", "deferred", "first", "last", "deferred"}, trace)
	})

	t.Run("delta time is passed through", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		counting := &countingSystem{}
		scheduler.Register(counting)

		scheduler.Once(0.5)
		scheduler.Once(0.25)

		assert.Equal(t, 2, counting.ExecuteCount)
		assert.InDelta(t, 0.75, counting.TotalTime, 1e-9)
	})

	t.Run("function systems", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		var frames []int64
		scheduler.Register(loop.SystemFunc(func(frame *loop.Frame) {
			frames = append(frames, frame.Index)
		}))

		scheduler.Once(0)
		scheduler.Once(0)
		scheduler.Once(0)

		assert.Equal(t, []int64{1, 2, 3}, frames)
	})

	t.Run("nil systems are rejected", func(t *testing.T) {
		assert.Panics(t, func() {
			loop.NewScheduler().Register(nil)
		})
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		counting := &countingSystem{}
		scheduler.Register(counting)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, time.Millisecond, nil)
			done <- true
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		assert.NotZero(t, counting.ExecuteCount)
	})

	t.Run("run stops when done reports true", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		counting := &countingSystem{}
		scheduler.Register(counting)

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		scheduler.Run(ctx, time.Millisecond, func() bool {
			return counting.ExecuteCount == 3
		})

		require.NoError(t, ctx.Err())
		assert.Equal(t, 3, counting.ExecuteCount)
	})
}

func TestSchedulerStats(t *testing.T) {
	scheduler := loop.NewScheduler()
	scheduler.Register(&countingSystem{})
	scheduler.Register(loop.SystemFunc(func(*loop.Frame) {
		time.Sleep(time.Millisecond)
	}))

	stats := scheduler.GetStats()
	require.Len(t, stats.Systems, 2)
	assert.Zero(t, stats.Systems[0].MinDuration)

	for range 3 {
		scheduler.Once(0)
	}

	stats = scheduler.GetStats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, int64(6), stats.TotalExecutions)
	assert.Equal(t, int64(3), stats.Frames)
	assert.Equal(t, "countingSystem", stats.Systems[0].Name)
	assert.Equal(t, "SystemFunc", stats.Systems[1].Name)

	sleeper := stats.Systems[1]
	assert.Equal(t, int64(3), sleeper.ExecutionCount)
	assert.GreaterOrEqual(t, sleeper.MinDuration, time.Millisecond)
	assert.GreaterOrEqual(t, sleeper.MaxDuration, sleeper.MinDuration)
	assert.GreaterOrEqual(t, sleeper.AvgDuration, sleeper.MinDuration)
	assert.LessOrEqual(t, sleeper.AvgDuration, sleeper.MaxDuration)
}
