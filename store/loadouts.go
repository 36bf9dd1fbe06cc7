package store

import (
	"fmt"

	"github.com/osrstools/dps-store/osrs"
)

// Loadout capacity bounds. Creation beyond the cap and deletion below the
// floor are silent no-ops; consult CanCreateLoadout/CanRemoveLoadout first.
const (
	MaxLoadouts = 5
	MinLoadouts = 1
)

func loadoutName(ordinal int) string {
	return fmt.Sprintf("Loadout %d", ordinal)
}

// CreateLoadoutInput defines the input for creating a loadout
type CreateLoadoutInput struct {
	// Select moves the selection to the new loadout.
	Select bool
	// CloneFrom, when set, deep-copies the loadout at that index instead
	// of starting from an empty one.
	CloneFrom *int
}

// CreateLoadout appends a new loadout, empty or cloned. No-op at capacity.
func (s *Store) CreateLoadout(input CreateLoadoutInput) {
	s.mu.Lock()

	if len(s.loadouts) >= MaxLoadouts {
		s.mu.Unlock()
		return
	}

	var p *osrs.Player
	if input.CloneFrom != nil {
		p = s.loadouts[*input.CloneFrom].Clone()
		p.ID = s.idgen.Generate()
		now := s.clock.Now().Unix()
		p.CreatedAt = now
		p.UpdatedAt = now
	} else {
		p = s.newLoadout(len(s.loadouts) + 1)
	}

	s.loadouts = append(s.loadouts, p)
	if input.Select {
		s.selected = len(s.loadouts) - 1
	}

	deliver := s.notifyLocked()
	s.mu.Unlock()
	deliver()
}

// SelectLoadout sets the selected index unconditionally. The caller supplies
// a valid index; no bounds check is applied.
func (s *Store) SelectLoadout(index int) {
	s.mu.Lock()
	s.selected = index
	deliver := s.notifyLocked()
	s.mu.Unlock()
	deliver()
}

// DeleteLoadout removes the loadout at index. No-op when only one loadout
// remains.
func (s *Store) DeleteLoadout(index int) {
	s.mu.Lock()

	if len(s.loadouts) <= MinLoadouts {
		s.mu.Unlock()
		return
	}

	s.loadouts = append(s.loadouts[:index], s.loadouts[index+1:]...)

	// Selection shifts down with the removed entry, except for index 0
	// deletions, which never move the selection.
	if s.selected >= index && index != 0 {
		s.selected--
	}

	deliver := s.notifyLocked()
	s.mu.Unlock()
	deliver()
}

// CanCreateLoadout reports whether another loadout can be created.
func (s *Store) CanCreateLoadout() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.loadouts) < MaxLoadouts
}

// CanRemoveLoadout reports whether a loadout can be deleted.
func (s *Store) CanRemoveLoadout() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.loadouts) > MinLoadouts
}

// LoadoutCount returns the number of loadouts.
func (s *Store) LoadoutCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.loadouts)
}

// SelectedLoadout returns the current selection index.
func (s *Store) SelectedLoadout() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}
