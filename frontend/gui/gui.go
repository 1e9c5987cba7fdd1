// Package gui runs the game in a desktop window through ebiten.
package gui

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/frontend"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/loop"
)

const (
	windowTitle = "Blockfall"
	frameDelta  = 1.0 / 60.0
	// debugPanelWidth is added to the window when the inspector is shown.
	debugPanelWidth = 640
)

// Game implements ebiten.Game. It shows the speed menu, then drives one
// session until it ends.
type Game struct {
	cfg      config.Config
	opts     frontend.Options
	bindings *input.Bindings[ebiten.Key]
	keys     KeyReader

	session   *game.Session
	scheduler *loop.Scheduler
	rate      config.TickRate

	imgui  *debugui_ebiten.ImguiBackend
	panels *debugui.ImguiSystem

	err error
}

// NewGame prepares a game; when opts.Rate is set the menu is skipped.
func NewGame(cfg config.Config, opts frontend.Options) *Game {
	g := &Game{
		cfg:      cfg,
		opts:     opts,
		bindings: DefaultKeys(),
		keys:     ebitenKeys{},
	}
	if opts.Rate != 0 {
		g.start(opts.Rate)
	}
	return g
}

// Run opens the window and blocks until the game ends or the window closes.
func Run(cfg config.Config, opts frontend.Options) (frontend.Result, error) {
	g := NewGame(cfg, opts)

	width, height := cfg.ScreenSize()
	if cfg.DebugUI {
		g.imgui = debugui_ebiten.NewImguiBackend(windowTitle, width+debugPanelWidth, height)
		if g.session != nil {
			g.attachPanels()
		}
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(windowTitle)
	}

	if err := ebiten.RunGame(g); err != nil {
		return frontend.Result{}, fmt.Errorf("run game: %w", err)
	}
	if g.err != nil {
		return frontend.Result{}, g.err
	}
	return g.Result(), nil
}

// Result reports the outcome so far.
func (g *Game) Result() frontend.Result {
	if g.session == nil {
		return frontend.Result{}
	}
	return frontend.Result{
		Played: true,
		Rate:   g.rate,
		Score:  g.session.Score(),
		Over:   g.session.Over(),
	}
}

func (g *Game) start(rate config.TickRate) {
	engine, err := frontend.NewEngine(g.cfg, g.opts)
	if err != nil {
		g.err = err
		return
	}

	g.rate = rate
	g.session = game.NewSession(engine, rate, g.opts.Listeners...)
	g.scheduler = loop.NewScheduler()
	for _, system := range g.session.Systems() {
		g.scheduler.Register(system)
	}
	if g.imgui != nil {
		g.attachPanels()
	}

	log.Printf("[gui] playing %dx%d at %s", g.cfg.Board.Width, g.cfg.Board.Height, rate)
}

func (g *Game) attachPanels() {
	g.panels = &debugui.ImguiSystem{}
	g.panels.Add((&debugui.EngineInspector{Session: g.session}).Render)
	g.panels.Add(debugui.NewPerformanceStats(g.scheduler, 120).Render)
	g.scheduler.Register(g.panels)
}

func (g *Game) Update() error {
	if g.err != nil {
		return ebiten.Termination
	}

	if g.imgui != nil {
		g.imgui.BeginFrame()
		defer g.imgui.EndFrame()
	}

	if g.session == nil {
		return g.updateMenu()
	}

	if g.panels == nil || !g.panels.InputState.WantCaptureKeyboard {
		for _, intent := range PollIntents(g.keys, g.bindings, input.DefaultRepeat) {
			g.session.Push(intent)
		}
	}

	g.scheduler.Once(frameDelta)

	if g.session.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) updateMenu() error {
	for _, intent := range PollIntents(g.keys, g.bindings, input.Repeat{}) {
		if intent == input.Quit {
			return ebiten.Termination
		}
	}

	rate, ok := frontend.MenuChoice(menuOption(), g.opts.Prefs)
	if !ok {
		return nil
	}
	if g.opts.Prefs != nil {
		if err := g.opts.Prefs.RememberSpeed(rate); err != nil {
			log.Printf("[gui] Warning: %v", err)
		}
	}
	g.start(rate)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.session == nil {
		drawMenu(screen, frontend.MenuLines(g.opts.Prefs))
	} else {
		drawBoard(screen, g.session.Snapshot(), g.cfg.Board.CellSize)
	}

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.cfg.ScreenSize()
}
