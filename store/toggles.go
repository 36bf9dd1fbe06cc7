package store

import (
	"github.com/osrstools/dps-store/osrs"
)

// TogglePotion adds the potion to the selected loadout's active set, or
// removes it if already active. Order of the remaining potions is preserved;
// potions have no exclusivity rules.
func (s *Store) TogglePotion(potion osrs.Potion) {
	s.mu.Lock()

	p := s.loadouts[s.selected]
	if p.HasPotion(potion) {
		kept := p.Buffs.Potions[:0]
		for _, active := range p.Buffs.Potions {
			if active != potion {
				kept = append(kept, active)
			}
		}
		p.Buffs.Potions = kept
	} else {
		p.Buffs.Potions = append(p.Buffs.Potions, potion)
	}
	p.UpdatedAt = s.clock.Now().Unix()

	deliver := s.notifyLocked()
	s.mu.Unlock()
	deliver()
}

// TogglePrayer adds the prayer to the selected loadout's active set, first
// deactivating every active prayer it conflicts with, or removes it if
// already active. Deactivation is a stable filter; the surviving prayers keep
// their order and removal has no side effects on other prayers.
func (s *Store) TogglePrayer(prayer osrs.Prayer) {
	s.mu.Lock()

	p := s.loadouts[s.selected]
	if p.HasPrayer(prayer) {
		kept := p.Prayers[:0]
		for _, active := range p.Prayers {
			if active != prayer {
				kept = append(kept, active)
			}
		}
		p.Prayers = kept
	} else {
		conflicts := osrs.IncompatiblePrayers(prayer)
		kept := p.Prayers[:0]
		for _, active := range p.Prayers {
			if !prayerIn(conflicts, active) {
				kept = append(kept, active)
			}
		}
		p.Prayers = append(kept, prayer)
	}
	p.UpdatedAt = s.clock.Now().Unix()

	deliver := s.notifyLocked()
	s.mu.Unlock()
	deliver()
}

func prayerIn(ps []osrs.Prayer, p osrs.Prayer) bool {
	for _, candidate := range ps {
		if candidate == p {
			return true
		}
	}
	return false
}
