// Package term runs the game in a terminal through tcell.
package term

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/frontend"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/loop"
)

const frameInterval = time.Second / 60

// Host owns a tcell screen for one game.
type Host struct {
	screen tcell.Screen
	cfg    config.Config
	keys   *input.Bindings[tcell.Key]
	runes  *input.Bindings[rune]
	events chan tcell.Event
}

// DefaultKeys binds the arrow keys, Escape and Ctrl-C.
func DefaultKeys() *input.Bindings[tcell.Key] {
	return input.NewBindings[tcell.Key]().
		Bind(tcell.KeyLeft, input.MoveLeft, false).
		Bind(tcell.KeyRight, input.MoveRight, false).
		Bind(tcell.KeyDown, input.SoftDrop, false).
		Bind(tcell.KeyUp, input.Rotate, false).
		Bind(tcell.KeyEscape, input.Quit, false).
		Bind(tcell.KeyCtrlC, input.Quit, false)
}

// DefaultRunes binds the letter alternatives.
func DefaultRunes() *input.Bindings[rune] {
	return input.NewBindings[rune]().
		Bind('a', input.MoveLeft, false).
		Bind('d', input.MoveRight, false).
		Bind('s', input.SoftDrop, false).
		Bind('w', input.Rotate, false).
		Bind(' ', input.Rotate, false).
		Bind('q', input.Quit, false)
}

// New prepares a host on an initialised screen.
func New(screen tcell.Screen, cfg config.Config) *Host {
	return &Host{
		screen: screen,
		cfg:    cfg,
		keys:   DefaultKeys(),
		runes:  DefaultRunes(),
		events: make(chan tcell.Event, 100),
	}
}

// Run opens the terminal screen, plays one game and restores the terminal.
func Run(ctx context.Context, cfg config.Config, opts frontend.Options) (frontend.Result, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return frontend.Result{}, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return frontend.Result{}, fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	return New(screen, cfg).Play(ctx, opts)
}

// Intent maps a key event to an intent.
func (h *Host) Intent(ev *tcell.EventKey) (input.Intent, bool) {
	if ev.Key() == tcell.KeyRune {
		binding, ok := h.runes.Lookup(ev.Rune())
		return binding.Intent, ok
	}
	binding, ok := h.keys.Lookup(ev.Key())
	return binding.Intent, ok
}

// poll forwards screen events until the screen is finalised or done is
// closed. It closes h.events when the screen stops delivering events.
func (h *Host) poll(done <-chan struct{}) {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			close(h.events)
			return
		}
		select {
		case h.events <- ev:
		case <-done:
			return
		}
	}
}

// Play shows the speed menu unless opts.Rate is set, then runs the game
// until it ends, the player quits or ctx is cancelled.
func (h *Host) Play(ctx context.Context, opts frontend.Options) (frontend.Result, error) {
	done := make(chan struct{})
	defer close(done)
	go h.poll(done)

	rate := opts.Rate
	if rate == 0 {
		var ok bool
		if rate, ok = h.menu(ctx, opts); !ok {
			return frontend.Result{}, nil
		}
	}

	engine, err := frontend.NewEngine(h.cfg, opts)
	if err != nil {
		return frontend.Result{}, err
	}

	session := game.NewSession(engine, rate, opts.Listeners...)
	scheduler := loop.NewScheduler()
	for _, system := range session.Systems() {
		scheduler.Register(system)
	}
	scheduler.Register(&RenderSystem{Screen: h.screen, Session: session})

	log.Printf("[term] playing %dx%d at %s", h.cfg.Board.Width, h.cfg.Board.Height, rate)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	lastTime := time.Now()

	for !session.Done() {
		select {
		case <-ctx.Done():
			session.Push(input.Quit)
			scheduler.Once(0)
		case ev, ok := <-h.events:
			if !ok {
				session.Push(input.Quit)
				scheduler.Once(0)
				continue
			}
			h.handle(ev, session)
		case now := <-ticker.C:
			scheduler.Once(now.Sub(lastTime).Seconds())
			lastTime = now
		}
	}

	return frontend.Result{
		Played: true,
		Rate:   rate,
		Score:  session.Score(),
		Over:   session.Over(),
	}, nil
}

func (h *Host) handle(ev tcell.Event, session *game.Session) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if intent, ok := h.Intent(ev); ok {
			session.Push(intent)
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
}

func (h *Host) menu(ctx context.Context, opts frontend.Options) (config.TickRate, bool) {
	h.drawMenu(opts)

	for {
		select {
		case <-ctx.Done():
			return 0, false
		case ev, ok := <-h.events:
			if !ok {
				return 0, false
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				h.screen.Sync()
				h.drawMenu(opts)
			case *tcell.EventKey:
				option := -1
				switch {
				case ev.Key() == tcell.KeyEnter:
					option = 0
				case ev.Key() == tcell.KeyRune && ev.Rune() >= '1' && ev.Rune() <= '9':
					option = int(ev.Rune() - '0')
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC,
					ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
					return 0, false
				}
				if rate, ok := frontend.MenuChoice(option, opts.Prefs); ok {
					if opts.Prefs != nil {
						if err := opts.Prefs.RememberSpeed(rate); err != nil {
							log.Printf("[term] Warning: %v", err)
						}
					}
					return rate, true
				}
			}
		}
	}
}

func (h *Host) drawMenu(opts frontend.Options) {
	h.screen.Clear()
	for i, line := range frontend.MenuLines(opts.Prefs) {
		drawText(h.screen, 2, 1+i*2, tcell.StyleDefault, line)
	}
	h.screen.Show()
}
