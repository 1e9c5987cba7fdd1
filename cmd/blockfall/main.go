package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/frontend"
	"github.com/plus3/blockfall/frontend/gui"
	"github.com/plus3/blockfall/frontend/term"
	"github.com/plus3/blockfall/prefs"
)

const appName = "blockfall"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

// run parses args, plays one game and writes the final line to stdout.
// Deferred cleanup (log file, audio device) finishes before it returns.
func run(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet(appName, flag.ContinueOnError)
	configPath := flags.String("config", "", "Path to a YAML config file.")
	frontendName := flags.String("frontend", "", "Host to run: gui or term. Overrides the config file.")
	speed := flags.String("speed", "", "Fall speed: slow, normal or fast. Skips the speed menu.")
	debugUI := flags.Bool("debug-ui", false, "Show the ImGui inspector panels (gui only).")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *frontendName != "" {
		cfg.Frontend = *frontendName
	}
	if *speed != "" {
		cfg.Speed = *speed
	}
	if *debugUI {
		cfg.DebugUI = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	// The terminal host owns the screen, so log lines go to a file instead.
	if cfg.Frontend == config.FrontendTerm {
		closeLog := redirectLog(cfg.LogFile)
		defer closeLog()
	}

	opts := frontend.Options{Prefs: openPrefs()}
	if rate, ok := cfg.TickRate(); ok {
		opts.Rate = rate
	}

	if cfg.Sound {
		cues := audio.NewCues()
		if err := cues.Init(); err != nil {
			log.Printf("[main] Warning: sound disabled: %v", err)
		} else {
			defer cues.Close()
			opts.Listeners = append(opts.Listeners, cues)
		}
	}

	result, err := play(cfg, opts)
	if err != nil {
		return fmt.Errorf("game failed: %w", err)
	}
	if line, ok := finalLine(result); ok {
		fmt.Fprintln(stdout, line)
	} else if result.Played {
		log.Printf("[main] quit with score %d", result.Score)
	}
	return nil
}

// finalLine returns the game-over message. Games the player quit, and runs
// that never left the menu, have none.
func finalLine(result frontend.Result) (string, bool) {
	if !result.Played || !result.Over {
		return "", false
	}
	return fmt.Sprintf("Game Over! Your score: %d", result.Score), true
}

func play(cfg config.Config, opts frontend.Options) (frontend.Result, error) {
	switch cfg.Frontend {
	case config.FrontendTerm:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return term.Run(ctx, cfg, opts)
	default:
		return gui.Run(cfg, opts)
	}
}

func openPrefs() *prefs.Store {
	store, err := prefs.Open(appName)
	if err != nil {
		log.Printf("[main] Warning: preferences not persisted: %v", err)
		return prefs.NewStore(nil)
	}
	return store
}

func redirectLog(path string) func() {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("[main] Warning: cannot open log file %s: %v", path, err)
		log.SetOutput(io.Discard)
		return func() {}
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		_ = f.Close()
	}
}
