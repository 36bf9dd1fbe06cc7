package osrs

// Partial-update types. Each entity has a matching partial with every field
// optional, recursively:
//
//   - a nil pointer leaves the target field untouched
//   - a set pointer overwrites the scalar, even with a zero value
//   - a nested partial merges field by field
//   - a non-nil slice replaces the target slice wholesale
//
// EquipmentPiece is an immutable value, so slot fields carry a whole piece
// and replace it wholesale rather than merging stat by stat.

// PlayerPartial is a partial update for one loadout.
type PlayerPartial struct {
	Name      *string                `json:"name,omitempty"`
	Username  *string                `json:"username,omitempty"`
	Style     *CombatStyle           `json:"style,omitempty"`
	Skills    *SkillLevelsPartial    `json:"skills,omitempty"`
	Equipment *PlayerEquipmentPartial `json:"equipment,omitempty"`
	Prayers   []Prayer               `json:"prayers,omitempty"`
	Buffs     *BuffsPartial          `json:"buffs,omitempty"`
	Spell     *SpellPartial          `json:"spell,omitempty"`
}

// SkillLevelsPartial is a partial update for skill levels.
type SkillLevelsPartial struct {
	Atk    *int `json:"atk,omitempty"`
	Def    *int `json:"def,omitempty"`
	HP     *int `json:"hp,omitempty"`
	Magic  *int `json:"magic,omitempty"`
	Prayer *int `json:"prayer,omitempty"`
	Ranged *int `json:"ranged,omitempty"`
	Str    *int `json:"str,omitempty"`
}

// PlayerEquipmentPartial is a partial update for equipment. Each set slot
// replaces that slot's piece wholesale.
type PlayerEquipmentPartial struct {
	Head   *EquipmentPiece `json:"head,omitempty"`
	Cape   *EquipmentPiece `json:"cape,omitempty"`
	Neck   *EquipmentPiece `json:"neck,omitempty"`
	Ammo   *EquipmentPiece `json:"ammo,omitempty"`
	Weapon *EquipmentPiece `json:"weapon,omitempty"`
	Body   *EquipmentPiece `json:"body,omitempty"`
	Shield *EquipmentPiece `json:"shield,omitempty"`
	Legs   *EquipmentPiece `json:"legs,omitempty"`
	Hands  *EquipmentPiece `json:"hands,omitempty"`
	Feet   *EquipmentPiece `json:"feet,omitempty"`
	Ring   *EquipmentPiece `json:"ring,omitempty"`
}

// BuffsPartial is a partial update for buffs. A non-nil Potions slice
// replaces the active potion list wholesale.
type BuffsPartial struct {
	Potions       []Potion `json:"potions,omitempty"`
	OnSlayerTask  *bool    `json:"on_slayer_task,omitempty"`
	InWilderness  *bool    `json:"in_wilderness,omitempty"`
	KandarinDiary *bool    `json:"kandarin_diary,omitempty"`
	ChargeSpell   *bool    `json:"charge_spell,omitempty"`
}

// SpellPartial is a partial update for the selected spell.
type SpellPartial struct {
	Name      *string    `json:"name,omitempty"`
	Image     *string    `json:"image,omitempty"`
	MaxHit    *int       `json:"max_hit,omitempty"`
	Spellbook *Spellbook `json:"spellbook,omitempty"`
}

// MonsterPartial is a partial update for the shared monster.
type MonsterPartial struct {
	Name       *string                  `json:"name,omitempty"`
	Image      *string                  `json:"image,omitempty"`
	Size       *int                     `json:"size,omitempty"`
	Skills     *MonsterSkillsPartial    `json:"skills,omitempty"`
	Offensive  *MonsterOffensivePartial `json:"offensive,omitempty"`
	Defensive  *MonsterDefensivePartial `json:"defensive,omitempty"`
	Attributes []MonsterAttribute       `json:"attributes,omitempty"`
}

// MonsterSkillsPartial is a partial update for monster skills.
type MonsterSkillsPartial struct {
	Atk    *int `json:"atk,omitempty"`
	Def    *int `json:"def,omitempty"`
	HP     *int `json:"hp,omitempty"`
	Magic  *int `json:"magic,omitempty"`
	Ranged *int `json:"ranged,omitempty"`
	Str    *int `json:"str,omitempty"`
}

// MonsterOffensivePartial is a partial update for monster attack bonuses.
type MonsterOffensivePartial struct {
	Atk       *int `json:"atk,omitempty"`
	Magic     *int `json:"magic,omitempty"`
	MagicStr  *int `json:"magic_str,omitempty"`
	Ranged    *int `json:"ranged,omitempty"`
	RangedStr *int `json:"ranged_str,omitempty"`
	Str       *int `json:"str,omitempty"`
}

// MonsterDefensivePartial is a partial update for monster defence bonuses.
type MonsterDefensivePartial struct {
	Stab   *int `json:"stab,omitempty"`
	Slash  *int `json:"slash,omitempty"`
	Crush  *int `json:"crush,omitempty"`
	Magic  *int `json:"magic,omitempty"`
	Ranged *int `json:"ranged,omitempty"`
}

// PreferencesPartial is a partial update for preferences. It is also the
// shape persisted to the blob store, so a partial record saved by an older
// session merges cleanly into the current defaults on load.
type PreferencesPartial struct {
	AllowEditingPlayerStats  *bool `json:"allow_editing_player_stats,omitempty"`
	AllowEditingMonsterStats *bool `json:"allow_editing_monster_stats,omitempty"`
	RememberUsername         *bool `json:"remember_username,omitempty"`
}

// UIStatePartial is a partial update for transient UI state.
type UIStatePartial struct {
	ShowPreferencesModal *bool `json:"show_preferences_modal,omitempty"`
}

// ApplyTo merges the partial into the target in place.
func (p *PlayerPartial) ApplyTo(target *Player) {
	if p == nil {
		return
	}
	if p.Name != nil {
		target.Name = *p.Name
	}
	if p.Username != nil {
		target.Username = *p.Username
	}
	if p.Style != nil {
		target.Style = *p.Style
	}
	p.Skills.ApplyTo(&target.Skills)
	p.Equipment.ApplyTo(&target.Equipment)
	if p.Prayers != nil {
		target.Prayers = append([]Prayer(nil), p.Prayers...)
	}
	p.Buffs.ApplyTo(&target.Buffs)
	p.Spell.ApplyTo(&target.Spell)
}

// ApplyTo merges the partial into the target in place.
func (p *SkillLevelsPartial) ApplyTo(target *SkillLevels) {
	if p == nil {
		return
	}
	if p.Atk != nil {
		target.Atk = *p.Atk
	}
	if p.Def != nil {
		target.Def = *p.Def
	}
	if p.HP != nil {
		target.HP = *p.HP
	}
	if p.Magic != nil {
		target.Magic = *p.Magic
	}
	if p.Prayer != nil {
		target.Prayer = *p.Prayer
	}
	if p.Ranged != nil {
		target.Ranged = *p.Ranged
	}
	if p.Str != nil {
		target.Str = *p.Str
	}
}

// ApplyTo merges the partial into the target in place, replacing set slots
// wholesale.
func (p *PlayerEquipmentPartial) ApplyTo(target *PlayerEquipment) {
	if p == nil {
		return
	}
	for slot, piece := range map[Slot]*EquipmentPiece{
		SlotHead: p.Head, SlotCape: p.Cape, SlotNeck: p.Neck,
		SlotAmmo: p.Ammo, SlotWeapon: p.Weapon, SlotBody: p.Body,
		SlotShield: p.Shield, SlotLegs: p.Legs, SlotHands: p.Hands,
		SlotFeet: p.Feet, SlotRing: p.Ring,
	} {
		if piece != nil {
			target.SetPiece(slot, *piece)
		}
	}
}

// Piece returns the partial's piece for the given slot, or nil if the slot
// is not part of the update.
func (p *PlayerEquipmentPartial) Piece(slot Slot) *EquipmentPiece {
	if p == nil {
		return nil
	}
	switch slot {
	case SlotHead:
		return p.Head
	case SlotCape:
		return p.Cape
	case SlotNeck:
		return p.Neck
	case SlotAmmo:
		return p.Ammo
	case SlotWeapon:
		return p.Weapon
	case SlotBody:
		return p.Body
	case SlotShield:
		return p.Shield
	case SlotLegs:
		return p.Legs
	case SlotHands:
		return p.Hands
	case SlotFeet:
		return p.Feet
	case SlotRing:
		return p.Ring
	}
	return nil
}

// ApplyTo merges the partial into the target in place.
func (p *BuffsPartial) ApplyTo(target *Buffs) {
	if p == nil {
		return
	}
	if p.Potions != nil {
		target.Potions = append([]Potion(nil), p.Potions...)
	}
	if p.OnSlayerTask != nil {
		target.OnSlayerTask = *p.OnSlayerTask
	}
	if p.InWilderness != nil {
		target.InWilderness = *p.InWilderness
	}
	if p.KandarinDiary != nil {
		target.KandarinDiary = *p.KandarinDiary
	}
	if p.ChargeSpell != nil {
		target.ChargeSpell = *p.ChargeSpell
	}
}

// ApplyTo merges the partial into the target in place.
func (p *SpellPartial) ApplyTo(target *Spell) {
	if p == nil {
		return
	}
	if p.Name != nil {
		target.Name = *p.Name
	}
	if p.Image != nil {
		target.Image = *p.Image
	}
	if p.MaxHit != nil {
		target.MaxHit = *p.MaxHit
	}
	if p.Spellbook != nil {
		target.Spellbook = *p.Spellbook
	}
}

// ApplyTo merges the partial into the target in place.
func (p *MonsterPartial) ApplyTo(target *Monster) {
	if p == nil {
		return
	}
	if p.Name != nil {
		target.Name = *p.Name
	}
	if p.Image != nil {
		target.Image = *p.Image
	}
	if p.Size != nil {
		target.Size = *p.Size
	}
	p.Skills.ApplyTo(&target.Skills)
	p.Offensive.ApplyTo(&target.Offensive)
	p.Defensive.ApplyTo(&target.Defensive)
	if p.Attributes != nil {
		target.Attributes = append([]MonsterAttribute(nil), p.Attributes...)
	}
}

// ApplyTo merges the partial into the target in place.
func (p *MonsterSkillsPartial) ApplyTo(target *MonsterSkills) {
	if p == nil {
		return
	}
	if p.Atk != nil {
		target.Atk = *p.Atk
	}
	if p.Def != nil {
		target.Def = *p.Def
	}
	if p.HP != nil {
		target.HP = *p.HP
	}
	if p.Magic != nil {
		target.Magic = *p.Magic
	}
	if p.Ranged != nil {
		target.Ranged = *p.Ranged
	}
	if p.Str != nil {
		target.Str = *p.Str
	}
}

// ApplyTo merges the partial into the target in place.
func (p *MonsterOffensivePartial) ApplyTo(target *MonsterOffensive) {
	if p == nil {
		return
	}
	if p.Atk != nil {
		target.Atk = *p.Atk
	}
	if p.Magic != nil {
		target.Magic = *p.Magic
	}
	if p.MagicStr != nil {
		target.MagicStr = *p.MagicStr
	}
	if p.Ranged != nil {
		target.Ranged = *p.Ranged
	}
	if p.RangedStr != nil {
		target.RangedStr = *p.RangedStr
	}
	if p.Str != nil {
		target.Str = *p.Str
	}
}

// ApplyTo merges the partial into the target in place.
func (p *MonsterDefensivePartial) ApplyTo(target *MonsterDefensive) {
	if p == nil {
		return
	}
	if p.Stab != nil {
		target.Stab = *p.Stab
	}
	if p.Slash != nil {
		target.Slash = *p.Slash
	}
	if p.Crush != nil {
		target.Crush = *p.Crush
	}
	if p.Magic != nil {
		target.Magic = *p.Magic
	}
	if p.Ranged != nil {
		target.Ranged = *p.Ranged
	}
}

// ApplyTo merges the partial into the target in place.
func (p *PreferencesPartial) ApplyTo(target *Preferences) {
	if p == nil {
		return
	}
	if p.AllowEditingPlayerStats != nil {
		target.AllowEditingPlayerStats = *p.AllowEditingPlayerStats
	}
	if p.AllowEditingMonsterStats != nil {
		target.AllowEditingMonsterStats = *p.AllowEditingMonsterStats
	}
	if p.RememberUsername != nil {
		target.RememberUsername = *p.RememberUsername
	}
}

// Snapshot returns a partial carrying every field of the record, the shape
// written to the blob store.
func (prefs Preferences) Snapshot() *PreferencesPartial {
	allowPlayer := prefs.AllowEditingPlayerStats
	allowMonster := prefs.AllowEditingMonsterStats
	remember := prefs.RememberUsername
	return &PreferencesPartial{
		AllowEditingPlayerStats:  &allowPlayer,
		AllowEditingMonsterStats: &allowMonster,
		RememberUsername:         &remember,
	}
}

// ApplyTo merges the partial into the target in place.
func (p *UIStatePartial) ApplyTo(target *UIState) {
	if p == nil {
		return
	}
	if p.ShowPreferencesModal != nil {
		target.ShowPreferencesModal = *p.ShowPreferencesModal
	}
}
