package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownSpeed is returned for menu options and speed names outside the
// three supported rates.
var ErrUnknownSpeed = errors.New("unknown speed")

// TickRate is the number of fall ticks per second.
type TickRate int

const (
	Slow   TickRate = 5
	Normal TickRate = 10
	Fast   TickRate = 15
)

// Interval returns the time between two fall ticks.
func (r TickRate) Interval() time.Duration {
	return time.Second / time.Duration(r)
}

func (r TickRate) String() string {
	switch r {
	case Slow:
		return "slow"
	case Normal:
		return "normal"
	case Fast:
		return "fast"
	}
	return fmt.Sprintf("%d/s", int(r))
}

// MenuOptions are the labels shown by the pre-game speed menu. Option n
// (1-based) selects the n-th rate.
var MenuOptions = []string{"1. Slow", "2. Normal", "3. Fast"}

var menuRates = []TickRate{Slow, Normal, Fast}

// SelectSpeed maps a 1-based menu option to its tick rate.
func SelectSpeed(option int) (TickRate, error) {
	if option < 1 || option > len(menuRates) {
		return 0, fmt.Errorf("%w: menu option %d", ErrUnknownSpeed, option)
	}
	return menuRates[option-1], nil
}

// OptionFor returns the 1-based menu option that selects rate, or 0.
func OptionFor(rate TickRate) int {
	for i, r := range menuRates {
		if r == rate {
			return i + 1
		}
	}
	return 0
}

// ParseSpeed maps a speed name to its tick rate.
func ParseSpeed(name string) (TickRate, error) {
	switch name {
	case "slow":
		return Slow, nil
	case "normal":
		return Normal, nil
	case "fast":
		return Fast, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSpeed, name)
}
