package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/input"
)

// DefaultKeys binds the arrow keys plus WASD. Horizontal moves and soft
// drop repeat while held.
func DefaultKeys() *input.Bindings[ebiten.Key] {
	return input.NewBindings[ebiten.Key]().
		Bind(ebiten.KeyArrowLeft, input.MoveLeft, true).
		Bind(ebiten.KeyArrowRight, input.MoveRight, true).
		Bind(ebiten.KeyArrowDown, input.SoftDrop, true).
		Bind(ebiten.KeyArrowUp, input.Rotate, false).
		Bind(ebiten.KeyA, input.MoveLeft, true).
		Bind(ebiten.KeyD, input.MoveRight, true).
		Bind(ebiten.KeyS, input.SoftDrop, true).
		Bind(ebiten.KeyW, input.Rotate, false).
		Bind(ebiten.KeyEscape, input.Quit, false).
		Bind(ebiten.KeyQ, input.Quit, false)
}

// KeyReader reports how long each key has been held, in frames. Zero means
// not pressed.
type KeyReader interface {
	HeldFrames(key ebiten.Key) int
}

type ebitenKeys struct{}

func (ebitenKeys) HeldFrames(key ebiten.Key) int {
	return inpututil.KeyPressDuration(key)
}

// PollIntents turns this frame's key state into intents, in binding order.
// Repeating bindings fire on press and then at the repeat pace; the others
// fire only on the frame the key goes down.
func PollIntents(keys KeyReader, bindings *input.Bindings[ebiten.Key], repeat input.Repeat) []input.Intent {
	var intents []input.Intent
	for _, key := range bindings.Keys() {
		held := keys.HeldFrames(key)
		if held == 0 {
			continue
		}
		binding, _ := bindings.Lookup(key)
		if binding.Repeat && repeat.Fire(held) || !binding.Repeat && held == 1 {
			intents = append(intents, binding.Intent)
		}
	}
	return intents
}

// menuOption returns the menu option chosen this frame: 1-3 for the digit
// keys, 0 for Enter, -1 for none.
func menuOption() int {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1), inpututil.IsKeyJustPressed(ebiten.KeyNumpad1):
		return 1
	case inpututil.IsKeyJustPressed(ebiten.Key2), inpututil.IsKeyJustPressed(ebiten.KeyNumpad2):
		return 2
	case inpututil.IsKeyJustPressed(ebiten.Key3), inpututil.IsKeyJustPressed(ebiten.KeyNumpad3):
		return 3
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		return 0
	}
	return -1
}
