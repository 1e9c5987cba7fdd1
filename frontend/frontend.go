// Package frontend holds what the window and terminal hosts share: the
// options a host is started with and the outcome it reports.
package frontend

import (
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/prefs"
)

// Options configure one host run.
type Options struct {
	// Rate skips the speed menu when non-zero.
	Rate config.TickRate
	// Prefs remembers the menu choice. May be nil.
	Prefs *prefs.Store
	// Listeners receive session events in addition to the host itself.
	Listeners []game.Listener
	// Engine overrides engine construction, mainly for tests.
	Engine func() (*board.Engine, error)
}

// Result is what a host reports when it returns.
type Result struct {
	// Played is false when the player left the speed menu without choosing.
	Played bool
	Rate   config.TickRate
	Score  int
	// Over is true when the game ended by a blocked spawn rather than a quit.
	Over bool
}

// NewEngine builds the engine for cfg, honouring opts.Engine.
func NewEngine(cfg config.Config, opts Options) (*board.Engine, error) {
	if opts.Engine != nil {
		return opts.Engine()
	}
	return board.New(cfg.Engine())
}

// MenuChoice resolves a menu key press. Options 1-3 pick a rate; option 0
// (Enter) picks the remembered rate when there is one.
func MenuChoice(option int, store *prefs.Store) (config.TickRate, bool) {
	if option == 0 {
		if store == nil {
			return 0, false
		}
		return store.LastSpeed()
	}
	rate, err := config.SelectSpeed(option)
	return rate, err == nil
}

// MenuLines returns the speed menu text, including the Enter shortcut when
// a rate is remembered.
func MenuLines(store *prefs.Store) []string {
	lines := []string{"Select speed:"}
	lines = append(lines, config.MenuOptions...)
	if store != nil {
		if rate, ok := store.LastSpeed(); ok {
			lines = append(lines, "Enter. Last ("+rate.String()+")")
		}
	}
	return append(lines, "", "Esc to quit")
}
