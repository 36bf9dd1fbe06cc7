package osrs

// SkillLevels holds a loadout's combat skill levels.
type SkillLevels struct {
	Atk    int `json:"atk"`
	Def    int `json:"def"`
	HP     int `json:"hp"`
	Magic  int `json:"magic"`
	Prayer int `json:"prayer"`
	Ranged int `json:"ranged"`
	Str    int `json:"str"`
}

// Buffs holds a loadout's active potions and situational toggles.
type Buffs struct {
	Potions       []Potion `json:"potions"`
	OnSlayerTask  bool     `json:"on_slayer_task"`
	InWilderness  bool     `json:"in_wilderness"`
	KandarinDiary bool     `json:"kandarin_diary"`
	ChargeSpell   bool     `json:"charge_spell"`
}

// Spell is the loadout's selected spell, if any.
type Spell struct {
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	MaxHit    int       `json:"max_hit"`
	Spellbook Spellbook `json:"spellbook"`
}

// Player is one loadout: a complete, independently-configured build.
//
// Invariants maintained by the store:
//   - Style is always selectable for the equipped weapon's category.
//   - Prayers never contains two mutually incompatible prayers.
//   - Bonuses/Offensive/Defensive always equal Equipment.Aggregate().
type Player struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Username  string             `json:"username"`
	Style     CombatStyle        `json:"style"`
	Skills    SkillLevels        `json:"skills"`
	Equipment PlayerEquipment    `json:"equipment"`
	Prayers   []Prayer           `json:"prayers"`
	Bonuses   AggregateBonuses   `json:"bonuses"`
	Offensive AggregateOffensive `json:"offensive"`
	Defensive AggregateDefensive `json:"defensive"`
	Buffs     Buffs              `json:"buffs"`
	Spell     Spell              `json:"spell"`
	CreatedAt int64              `json:"created_at"`
	UpdatedAt int64              `json:"updated_at"`
}

// NewPlayer returns an empty loadout: maxed skills, nothing equipped, unarmed
// default style, no prayers or buffs.
func NewPlayer() *Player {
	return &Player{
		Style: DefaultStyleForCategory(CategoryNone),
		Skills: SkillLevels{
			Atk: 99, Def: 99, HP: 99, Magic: 99,
			Prayer: 99, Ranged: 99, Str: 99,
		},
		Equipment: NewPlayerEquipment(),
	}
}

// Clone returns a deep copy detached from the original.
func (p *Player) Clone() *Player {
	clone := *p
	clone.Prayers = append([]Prayer(nil), p.Prayers...)
	clone.Buffs.Potions = append([]Potion(nil), p.Buffs.Potions...)
	return &clone
}

// RecalculateAggregates refreshes the derived bonus groups from the current
// equipment.
func (p *Player) RecalculateAggregates() {
	p.Bonuses, p.Offensive, p.Defensive = p.Equipment.Aggregate()
}

// HasPrayer reports whether the prayer is currently active.
func (p *Player) HasPrayer(prayer Prayer) bool {
	return containsPrayer(p.Prayers, prayer)
}

// HasPotion reports whether the potion is currently active.
func (p *Player) HasPotion(potion Potion) bool {
	for _, candidate := range p.Buffs.Potions {
		if candidate == potion {
			return true
		}
	}
	return false
}
