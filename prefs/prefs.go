// Package prefs remembers menu choices between runs.
package prefs

import (
	"fmt"
	"log"

	"github.com/plus3/blockfall/config"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	prefsObject   = "prefs"
	prefsProperty = "menu"
)

// Prefs is the persisted preference record.
type Prefs struct {
	Speed string `yaml:"speed"`
}

// Store loads and saves Prefs. A Store without a gdata manager keeps
// preferences in memory only.
type Store struct {
	manager *gdata.Manager
	prefs   Prefs
}

// Open creates a Store backed by the platform data directory for appName.
func Open(appName string) (*Store, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open prefs storage: %w", err)
	}
	return NewStore(manager), nil
}

// NewStore wraps manager and loads any saved preferences. Load failures
// are logged and the store starts empty.
func NewStore(manager *gdata.Manager) *Store {
	s := &Store{manager: manager}
	if err := s.Load(); err != nil {
		log.Printf("[prefs] Warning: %v (starting empty)", err)
	}
	return s
}

// Load replaces the in-memory preferences with the saved ones.
func (s *Store) Load() error {
	s.prefs = Prefs{}
	if s.manager == nil || !s.manager.ObjectPropExists(prefsObject, prefsProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	var loaded Prefs
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("unmarshal prefs: %w", err)
	}
	s.prefs = loaded
	return nil
}

// Save writes the in-memory preferences.
func (s *Store) Save() error {
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(s.prefs)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := s.manager.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("save prefs: %w", err)
	}
	return nil
}

// LastSpeed returns the most recently remembered menu speed.
func (s *Store) LastSpeed() (config.TickRate, bool) {
	if s.prefs.Speed == "" {
		return 0, false
	}
	rate, err := config.ParseSpeed(s.prefs.Speed)
	if err != nil {
		return 0, false
	}
	return rate, true
}

// RememberSpeed records rate and saves it.
func (s *Store) RememberSpeed(rate config.TickRate) error {
	if config.OptionFor(rate) == 0 {
		return fmt.Errorf("remember speed: %w: %v", config.ErrUnknownSpeed, rate)
	}
	s.prefs.Speed = rate.String()
	return s.Save()
}
