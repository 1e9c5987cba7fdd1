package game_test

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/loop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	cleared  []int
	gameOver []int
}

func (r *recorder) LinesCleared(rows, score int) { r.cleared = append(r.cleared, rows) }
func (r *recorder) GameOver(score int)           { r.gameOver = append(r.gameOver, score) }

func newSession(t *testing.T, first board.Kind, listeners ...game.Listener) (*game.Session, *loop.Scheduler) {
	t.Helper()
	engine, err := board.New(board.DefaultConfig(),
		board.WithFirstPiece(first),
		board.WithRand(rand.New(rand.NewPCG(4, 2))),
	)
	require.NoError(t, err)

	session := game.NewSession(engine, config.Normal, listeners...)
	scheduler := loop.NewScheduler()
	for _, system := range session.Systems() {
		scheduler.Register(system)
	}
	return session, scheduler
}

func TestSessionInput(t *testing.T) {
	t.Run("intents apply in order within one frame", func(t *testing.T) {
		session, scheduler := newSession(t, board.I)
		session.Push(input.MoveLeft)
		session.Push(input.Rotate)
		session.Push(input.MoveLeft)
		session.Push(input.SoftDrop)

		scheduler.Once(0)

		// Left to col 2, vertical, left to col 1, down one row.
		assert.Equal(t, board.Point{Row: 1, Col: 1}, session.Engine().Anchor())
		assert.Equal(t, 4, session.Engine().Piece().Shape.Height())
		assert.Zero(t, session.Pending())
	})

	t.Run("blocked moves are ignored", func(t *testing.T) {
		session, scheduler := newSession(t, board.O)
		for range 10 {
			session.Push(input.MoveRight)
		}
		scheduler.Once(0)
		assert.Equal(t, 8, session.Engine().Anchor().Col)
	})

	t.Run("quit stops the session", func(t *testing.T) {
		session, scheduler := newSession(t, board.O)
		session.Push(input.Quit)
		session.Push(input.MoveLeft)

		scheduler.Once(1)

		assert.True(t, session.Quit())
		assert.True(t, session.Done())
		assert.False(t, session.Over())
		assert.Equal(t, board.Point{Row: 0, Col: 4}, session.Engine().Anchor())
	})
}

func TestSessionGravity(t *testing.T) {
	t.Run("one drop per elapsed interval", func(t *testing.T) {
		session, scheduler := newSession(t, board.T)

		scheduler.Once(0.06)
		assert.Equal(t, 0, session.Engine().Anchor().Row)

		scheduler.Once(0.06)
		assert.Equal(t, 1, session.Engine().Anchor().Row)

		// A long stall still drops only once.
		scheduler.Once(5)
		assert.Equal(t, 2, session.Engine().Anchor().Row)
	})

	t.Run("fall rate holds at 60 frames per second", func(t *testing.T) {
		const seconds = 10
		cases := []struct {
			name string
			rate config.TickRate
		}{
			{"slow", config.Slow},
			{"normal", config.Normal},
			{"fast", config.Fast},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				// Tall enough that the piece never lands during the run.
				engine, err := board.New(board.Config{Rows: 2000, Cols: 10}, board.WithFirstPiece(board.O))
				require.NoError(t, err)
				session := game.NewSession(engine, tc.rate)
				scheduler := loop.NewScheduler()
				for _, system := range session.Systems() {
					scheduler.Register(system)
				}

				for range seconds * 60 {
					before := engine.Anchor().Row
					scheduler.Once(1.0 / 60.0)
					require.LessOrEqual(t, engine.Anchor().Row-before, 1, "more than one drop in a frame")
				}

				assert.InDelta(t, seconds*int(tc.rate), engine.Anchor().Row, 1)
			})
		}
	})

	t.Run("stall carries at most one interval", func(t *testing.T) {
		session, scheduler := newSession(t, board.T)

		scheduler.Once(5)
		assert.Equal(t, 1, session.Engine().Anchor().Row)

		// The capped carry allows one more tick on the next frame, then the
		// normal pace resumes.
		scheduler.Once(1.0 / 60.0)
		assert.Equal(t, 2, session.Engine().Anchor().Row)
		for range 4 {
			scheduler.Once(1.0 / 60.0)
		}
		assert.Equal(t, 2, session.Engine().Anchor().Row)
	})

	t.Run("soft drop is a full fall tick", func(t *testing.T) {
		session, scheduler := newSession(t, board.O)
		for range 19 {
			session.Push(input.SoftDrop)
		}
		scheduler.Once(0)

		assert.True(t, session.Engine().Grid().Occupied(19, 4))
		assert.True(t, session.Engine().Grid().Occupied(18, 5))
		assert.Equal(t, 0, session.Engine().Anchor().Row)
	})
}

func TestSessionListeners(t *testing.T) {
	t.Run("line clears are reported", func(t *testing.T) {
		rec := &recorder{}
		session, scheduler := newSession(t, board.I, rec)
		session.Engine().Grid().FillRow(19, 3, 4, 5, 6)

		for range 20 {
			session.Push(input.SoftDrop)
		}
		scheduler.Once(0)

		assert.Equal(t, []int{1}, rec.cleared)
		assert.Equal(t, 1, session.Score())
		assert.Empty(t, rec.gameOver)
	})

	t.Run("game over is reported once", func(t *testing.T) {
		rec := &recorder{}
		session, scheduler := newSession(t, board.O, rec)
		for range 18 {
			session.Push(input.SoftDrop)
		}
		scheduler.Once(0)

		session.Engine().Grid().FillRow(0, 0)
		session.Engine().Grid().FillRow(1, 0)

		session.Push(input.SoftDrop)
		session.Push(input.SoftDrop)
		scheduler.Once(1)
		scheduler.Once(1)

		assert.True(t, session.Over())
		assert.True(t, session.Done())
		assert.Equal(t, []int{0}, rec.gameOver)
	})

	t.Run("function adapters", func(t *testing.T) {
		var over int
		l := game.ListenerFuncs{OnGameOver: func(score int) { over = score + 1 }}
		l.LinesCleared(2, 2)
		l.GameOver(4)
		assert.Equal(t, 5, over)
	})
}

func TestNewSessionRejectsZeroRate(t *testing.T) {
	engine, err := board.New(board.DefaultConfig())
	require.NoError(t, err)
	assert.Panics(t, func() {
		game.NewSession(engine, 0)
	})
}
