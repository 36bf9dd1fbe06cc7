package store

import (
	"context"
	"fmt"

	"github.com/osrstools/dps-store/errors"
	"github.com/osrstools/dps-store/notify"
	"github.com/osrstools/dps-store/osrs"
	"github.com/osrstools/dps-store/repositories/preferences"
)

// UpdatePlayer deep-merges the partial into the selected loadout. If the
// update changes the equipped weapon's category, the loadout's combat style
// is first reset to the new category's default and a style-reset toast is
// emitted; an explicit style in the same partial then wins over the reset.
func (s *Store) UpdatePlayer(partial *osrs.PlayerPartial) {
	if partial == nil {
		return
	}

	s.mu.Lock()
	p := s.loadouts[s.selected]

	if weapon := partial.Equipment.Piece(osrs.SlotWeapon); weapon != nil {
		oldCategory := p.Equipment.Weapon.Category
		if weapon.Category != oldCategory {
			style := osrs.DefaultStyleForCategory(weapon.Category)
			p.Style = style
			s.log.Debug("combat style reset",
				"category", weapon.Category, "style", style.Name)
			s.notifier.Toast(notify.NoticeStyleReset,
				fmt.Sprintf("Combat style changed to %s.", style.Name))
		}
	}

	partial.ApplyTo(p)
	p.RecalculateAggregates()
	p.UpdatedAt = s.clock.Now().Unix()

	deliver := s.notifyLocked()
	s.mu.Unlock()
	deliver()
}

// ClearEquipmentSlot unequips the slot by merging the empty sentinel piece
// into it. Clearing the weapon resets the combat style like any other weapon
// change.
func (s *Store) ClearEquipmentSlot(slot osrs.Slot) {
	empty := osrs.EmptyPiece()
	equipment := &osrs.PlayerEquipmentPartial{}
	switch slot {
	case osrs.SlotHead:
		equipment.Head = &empty
	case osrs.SlotCape:
		equipment.Cape = &empty
	case osrs.SlotNeck:
		equipment.Neck = &empty
	case osrs.SlotAmmo:
		equipment.Ammo = &empty
	case osrs.SlotWeapon:
		equipment.Weapon = &empty
	case osrs.SlotBody:
		equipment.Body = &empty
	case osrs.SlotShield:
		equipment.Shield = &empty
	case osrs.SlotLegs:
		equipment.Legs = &empty
	case osrs.SlotHands:
		equipment.Hands = &empty
	case osrs.SlotFeet:
		equipment.Feet = &empty
	case osrs.SlotRing:
		equipment.Ring = &empty
	default:
		return
	}
	s.UpdatePlayer(&osrs.PlayerPartial{Equipment: equipment})
}

// UpdateMonster deep-merges the partial into the shared monster.
func (s *Store) UpdateMonster(partial *osrs.MonsterPartial) {
	if partial == nil {
		return
	}

	s.mu.Lock()
	partial.ApplyTo(s.monster)
	deliver := s.notifyLocked()
	s.mu.Unlock()
	deliver()
}

// UpdatePreferences merges the partial into the in-memory preferences and
// persists the full record in the background. The mutation never waits on
// the save; a failed save leaves the in-memory record as set and surfaces a
// blocking alert.
func (s *Store) UpdatePreferences(partial *osrs.PreferencesPartial) {
	if partial == nil {
		return
	}

	s.mu.Lock()
	partial.ApplyTo(&s.prefs)
	record := s.prefs.Snapshot()
	deliver := s.notifyLocked()
	s.mu.Unlock()
	deliver()

	s.saves.Add(1)
	go func() {
		defer s.saves.Done()
		s.persistPreferences(record)
	}()
}

func (s *Store) persistPreferences(record *osrs.PreferencesPartial) {
	_, err := s.prefsRepo.Set(context.Background(), preferences.SetInput{
		Preferences: record,
	})
	if err != nil {
		s.log.Error("failed to persist preferences", "error", err)
		s.notifier.Alert("Your preferences could not be saved.")
	}
}

// LoadPreferences fetches the persisted preferences record and merges it
// over the defaults. A missing record (first run) is not an error; read
// failures are logged and the in-memory record is left as is. Nothing is
// retried automatically.
func (s *Store) LoadPreferences(ctx context.Context) {
	output, err := s.prefsRepo.Get(ctx, preferences.GetInput{})
	if err != nil {
		if !errors.IsNotFound(err) {
			s.log.Error("failed to load preferences", "error", err)
		}
		return
	}

	s.mu.Lock()
	output.Preferences.ApplyTo(&s.prefs)
	deliver := s.notifyLocked()
	s.mu.Unlock()
	deliver()
}

// UpdateUIState merges the partial into the transient UI state. UI state is
// never persisted.
func (s *Store) UpdateUIState(partial *osrs.UIStatePartial) {
	if partial == nil {
		return
	}

	s.mu.Lock()
	partial.ApplyTo(&s.ui)
	deliver := s.notifyLocked()
	s.mu.Unlock()
	deliver()
}
