// Package audio plays short synthesized cues for game events.
package audio

import (
	"fmt"
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

const (
	clearBaseFreq  = 660.0
	clearStepFreq  = 110.0
	clearNoteLen   = 60 * time.Millisecond
	gameOverFreq   = 196.0
	gameOverLength = 450 * time.Millisecond
)

// Cues implements game.Listener by playing a tone per event. A Cues value
// that was never initialised stays silent.
type Cues struct {
	play        func(beep.Streamer)
	initialized bool
}

func NewCues() *Cues {
	return &Cues{play: speaker.Play}
}

// Init opens the audio device.
func (c *Cues) Init() error {
	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	c.initialized = true
	log.Printf("[audio] speaker ready at %d Hz", sampleRate)
	return nil
}

// Close releases the audio device.
func (c *Cues) Close() {
	if !c.initialized {
		return
	}
	speaker.Close()
	c.initialized = false
}

// LinesCleared plays one rising note per cleared row.
func (c *Cues) LinesCleared(rows, score int) {
	if !c.initialized {
		return
	}
	if s, err := clearTone(rows); err == nil {
		c.play(s)
	}
}

// GameOver plays a single low note.
func (c *Cues) GameOver(score int) {
	if !c.initialized {
		return
	}
	if s, err := gameOverTone(); err == nil {
		c.play(s)
	}
}

func clearTone(rows int) (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, rows)
	for i := range rows {
		sine, err := generators.SineTone(sampleRate, clearBaseFreq+clearStepFreq*float64(i))
		if err != nil {
			return nil, err
		}
		notes = append(notes, beep.Take(sampleRate.N(clearNoteLen), sine))
	}
	return beep.Seq(notes...), nil
}

func gameOverTone() (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, gameOverFreq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(gameOverLength), sine), nil
}
