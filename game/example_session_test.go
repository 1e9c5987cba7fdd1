package game_test

import (
	"fmt"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/loop"
)

// ExampleSession drives a session through a scheduler the way a host does:
// push intents, then run one frame.
func ExampleSession() {
	engine, _ := board.New(board.DefaultConfig(), board.WithFirstPiece(board.O))
	session := game.NewSession(engine, config.Normal)

	scheduler := loop.NewScheduler()
	for _, system := range session.Systems() {
		scheduler.Register(system)
	}

	session.Push(input.MoveLeft)
	session.Push(input.MoveLeft)
	session.Push(input.SoftDrop)
	scheduler.Once(1.0 / 60.0)

	fmt.Println("anchor:", session.Engine().Anchor())
	fmt.Println("pending:", session.Pending())
	fmt.Println("done:", session.Done())
	// Output:
	// anchor: {1 2}
	// pending: 0
	// done: false
}
