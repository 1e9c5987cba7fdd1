// Package input defines the player intents consumed by a game session and
// the key binding tables hosts use to produce them.
package input

import (
	"fmt"
	"iter"
)

// Intent is one discrete player request.
type Intent uint8

const (
	MoveLeft Intent = iota + 1
	MoveRight
	SoftDrop
	Rotate
	Quit
)

var intentNames = map[Intent]string{
	MoveLeft:  "move_left",
	MoveRight: "move_right",
	SoftDrop:  "soft_drop",
	Rotate:    "rotate",
	Quit:      "quit",
}

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return fmt.Sprintf("Intent(%d)", uint8(i))
}

// Queue holds intents in arrival order until a frame consumes them.
type Queue struct {
	pending []Intent
}

// Push appends an intent.
func (q *Queue) Push(i Intent) {
	q.pending = append(q.pending, i)
}

func (q *Queue) Len() int {
	return len(q.pending)
}

// Drain yields pending intents oldest first, removing each as it is
// yielded. Intents left when the caller stops early stay queued.
func (q *Queue) Drain() iter.Seq[Intent] {
	return func(yield func(Intent) bool) {
		for len(q.pending) > 0 {
			next := q.pending[0]
			q.pending = q.pending[1:]
			if !yield(next) {
				return
			}
		}
		q.pending = q.pending[:0]
	}
}
