// Package store implements the state container backing the DPS-calculator
// UI. The Store owns the loadouts, the shared monster, preferences, and
// transient UI state; every mutation goes through its API and ends with one
// snapshot notification to subscribers.
package store

import (
	"log/slog"
	"sync"

	"github.com/osrstools/dps-store/errors"
	"github.com/osrstools/dps-store/notify"
	"github.com/osrstools/dps-store/osrs"
	"github.com/osrstools/dps-store/pkg/clock"
	"github.com/osrstools/dps-store/pkg/idgen"
	"github.com/osrstools/dps-store/repositories/preferences"
)

// Config holds the dependencies for the store
type Config struct {
	PreferencesRepo preferences.Repository
	Notifier        notify.Notifier
	Clock           clock.Clock
	IDGen           idgen.Generator
	Logger          *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PreferencesRepo == nil {
		vb.RequiredField("PreferencesRepo")
	}
	if c.Notifier == nil {
		vb.RequiredField("Notifier")
	}

	return vb.Build()
}

// Store is the aggregate root. It is constructed once per session with a
// single default loadout and passed explicitly to consumers; there is no
// ambient global instance.
type Store struct {
	mu sync.Mutex

	loadouts []*osrs.Player
	selected int
	monster  *osrs.Monster
	prefs    osrs.Preferences
	ui       osrs.UIState

	subscribers map[string]func(*Snapshot)
	subOrder    []string

	prefsRepo preferences.Repository
	notifier  notify.Notifier
	clock     clock.Clock
	idgen     idgen.Generator
	log       *slog.Logger

	saves sync.WaitGroup
}

// New creates a store with one default empty loadout selected.
func New(cfg *Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	s := &Store{
		monster:     osrs.NewMonster(),
		prefs:       osrs.DefaultPreferences(),
		subscribers: make(map[string]func(*Snapshot)),
		prefsRepo:   cfg.PreferencesRepo,
		notifier:    cfg.Notifier,
		clock:       cfg.Clock,
		idgen:       cfg.IDGen,
		log:         cfg.Logger,
	}
	if s.clock == nil {
		s.clock = clock.New()
	}
	if s.idgen == nil {
		s.idgen = idgen.NewUUID("loadout")
	}
	if s.log == nil {
		s.log = slog.Default()
	}

	s.loadouts = []*osrs.Player{s.newLoadout(1)}
	return s, nil
}

func (s *Store) newLoadout(ordinal int) *osrs.Player {
	p := osrs.NewPlayer()
	p.ID = s.idgen.Generate()
	p.Name = loadoutName(ordinal)
	now := s.clock.Now().Unix()
	p.CreatedAt = now
	p.UpdatedAt = now
	return p
}

// Snapshot is a deep copy of the store's state at one point in time. It is
// safe to retain and read from any goroutine.
type Snapshot struct {
	Loadouts        []*osrs.Player
	SelectedLoadout int
	Monster         *osrs.Monster
	Preferences     osrs.Preferences
	UI              osrs.UIState
}

// Selected returns the selected loadout of the snapshot, or nil if the
// selection index is out of range.
func (snap *Snapshot) Selected() *osrs.Player {
	if snap.SelectedLoadout < 0 || snap.SelectedLoadout >= len(snap.Loadouts) {
		return nil
	}
	return snap.Loadouts[snap.SelectedLoadout]
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() *Snapshot {
	loadouts := make([]*osrs.Player, len(s.loadouts))
	for i, p := range s.loadouts {
		loadouts[i] = p.Clone()
	}
	return &Snapshot{
		Loadouts:        loadouts,
		SelectedLoadout: s.selected,
		Monster:         s.monster.Clone(),
		Preferences:     s.prefs,
		UI:              s.ui,
	}
}

// Subscribe registers a callback invoked with a fresh snapshot after every
// completed mutation. It returns a token for Unsubscribe; callers are
// responsible for unsubscribing on teardown.
func (s *Store) Subscribe(fn func(*Snapshot)) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.idgen.Generate()
	s.subscribers[id] = fn
	s.subOrder = append(s.subOrder, id)
	return id
}

// Unsubscribe removes a previously registered callback. Unknown tokens are
// ignored.
func (s *Store) Unsubscribe(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subscribers[id]; !ok {
		return
	}
	delete(s.subscribers, id)
	for i, existing := range s.subOrder {
		if existing == id {
			s.subOrder = append(s.subOrder[:i], s.subOrder[i+1:]...)
			break
		}
	}
}

// notifyLocked captures the snapshot and subscriber list under the lock and
// returns a closure that delivers outside it, so callbacks may call back
// into the store.
func (s *Store) notifyLocked() func() {
	snap := s.snapshotLocked()
	fns := make([]func(*Snapshot), 0, len(s.subOrder))
	for _, id := range s.subOrder {
		fns = append(fns, s.subscribers[id])
	}
	return func() {
		for _, fn := range fns {
			fn(snap)
		}
	}
}

// Flush blocks until in-flight preference saves have completed. Intended for
// session shutdown and tests; mutations never wait on persistence.
func (s *Store) Flush() {
	s.saves.Wait()
}
