package osrs

// CombatStyle is one selectable attack mode for a weapon category.
type CombatStyle struct {
	Name   string     `json:"name"`
	Type   DamageType `json:"type"`
	Stance Stance     `json:"stance"`
}

// combatStyles maps each equipment category to its selectable styles, in
// in-game order. The first entry is the default a loadout falls back to when
// the equipped weapon's category changes.
var combatStyles = map[EquipmentCategory][]CombatStyle{
	CategoryNone: {
		{Name: "Punch", Type: DamageCrush, Stance: StanceAccurate},
		{Name: "Kick", Type: DamageCrush, Stance: StanceAggressive},
		{Name: "Block", Type: DamageCrush, Stance: StanceDefensive},
	},
	CategoryAxe: {
		{Name: "Chop", Type: DamageSlash, Stance: StanceAccurate},
		{Name: "Hack", Type: DamageSlash, Stance: StanceAggressive},
		{Name: "Smash", Type: DamageCrush, Stance: StanceAggressive},
		{Name: "Block", Type: DamageSlash, Stance: StanceDefensive},
	},
	CategoryBanner: {
		{Name: "Lunge", Type: DamageStab, Stance: StanceAccurate},
		{Name: "Swipe", Type: DamageSlash, Stance: StanceAggressive},
		{Name: "Pound", Type: DamageCrush, Stance: StanceAggressive},
		{Name: "Block", Type: DamageStab, Stance: StanceDefensive},
	},
	CategoryBlunt: {
		{Name: "Pound", Type: DamageCrush, Stance: StanceAccurate},
		{Name: "Pummel", Type: DamageCrush, Stance: StanceAggressive},
		{Name: "Block", Type: DamageCrush, Stance: StanceDefensive},
	},
	CategoryBludgeon: {
		{Name: "Pound", Type: DamageCrush, Stance: StanceAggressive},
		{Name: "Pummel", Type: DamageCrush, Stance: StanceAggressive},
		{Name: "Smash", Type: DamageCrush, Stance: StanceAggressive},
	},
	CategoryBulwark: {
		{Name: "Pummel", Type: DamageCrush, Stance: StanceAccurate},
		{Name: "Block", Type: DamageNone, Stance: StanceDefensive},
	},
	CategoryBow: {
		{Name: "Accurate", Type: DamageRanged, Stance: StanceAccurate},
		{Name: "Rapid", Type: DamageRanged, Stance: StanceRapid},
		{Name: "Longrange", Type: DamageRanged, Stance: StanceLongrange},
	},
	CategoryChinchompa: {
		{Name: "Short fuse", Type: DamageRanged, Stance: StanceAccurate},
		{Name: "Medium fuse", Type: DamageRanged, Stance: StanceRapid},
		{Name: "Long fuse", Type: DamageRanged, Stance: StanceLongrange},
	},
	CategoryClaw: {
		{Name: "Chop", Type: DamageSlash, Stance: StanceAccurate},
		{Name: "Slash", Type: DamageSlash, Stance: StanceAggressive},
		{Name: "Lunge", Type: DamageStab, Stance: StanceControlled},
		{Name: "Block", Type: DamageSlash, Stance: StanceDefensive},
	},
	CategoryCrossbow: {
		{Name: "Accurate", Type: DamageRanged, Stance: StanceAccurate},
		{Name: "Rapid", Type: DamageRanged, Stance: StanceRapid},
		{Name: "Longrange", Type: DamageRanged, Stance: StanceLongrange},
	},
	CategoryGun: {
		{Name: "Aim and Fire", Type: DamageCrush, Stance: StanceAccurate},
		{Name: "Kick", Type: DamageCrush, Stance: StanceAggressive},
	},
	CategoryPickaxe: {
		{Name: "Spike", Type: DamageStab, Stance: StanceAccurate},
		{Name: "Impale", Type: DamageStab, Stance: StanceAggressive},
		{Name: "Smash", Type: DamageCrush, Stance: StanceAggressive},
		{Name: "Block", Type: DamageStab, Stance: StanceDefensive},
	},
	CategoryPolearm: {
		{Name: "Jab", Type: DamageStab, Stance: StanceControlled},
		{Name: "Swipe", Type: DamageSlash, Stance: StanceAggressive},
		{Name: "Fend", Type: DamageStab, Stance: StanceDefensive},
	},
	CategoryPolestaff: {
		{Name: "Bash", Type: DamageCrush, Stance: StanceAccurate},
		{Name: "Pound", Type: DamageCrush, Stance: StanceAggressive},
		{Name: "Block", Type: DamageCrush, Stance: StanceDefensive},
	},
	CategoryPoweredStaff: {
		{Name: "Accurate", Type: DamageMagic, Stance: StanceAccurate},
		{Name: "Longrange", Type: DamageMagic, Stance: StanceLongrange},
	},
	CategorySalamander: {
		{Name: "Scorch", Type: DamageSlash, Stance: StanceAggressive},
		{Name: "Flare", Type: DamageRanged, Stance: StanceAccurate},
		{Name: "Blaze", Type: DamageMagic, Stance: StanceDefensive},
	},
	CategoryScythe: {
		{Name: "Reap", Type: DamageSlash, Stance: StanceAccurate},
		{Name: "Chop", Type: DamageSlash, Stance: StanceAggressive},
		{Name: "Jab", Type: DamageCrush, Stance: StanceAggressive},
		{Name: "Block", Type: DamageSlash, Stance: StanceDefensive},
	},
	CategorySlashSword: {
		{Name: "Chop", Type: DamageSlash, Stance: StanceAccurate},
		{Name: "Slash", Type: DamageSlash, Stance: StanceAggressive},
		{Name: "Lunge", Type: DamageStab, Stance: StanceControlled},
		{Name: "Block", Type: DamageSlash, Stance: StanceDefensive},
	},
	CategorySpear: {
		{Name: "Lunge", Type: DamageStab, Stance: StanceControlled},
		{Name: "Swipe", Type: DamageSlash, Stance: StanceControlled},
		{Name: "Pound", Type: DamageCrush, Stance: StanceControlled},
		{Name: "Block", Type: DamageStab, Stance: StanceDefensive},
	},
	CategorySpiked: {
		{Name: "Pound", Type: DamageCrush, Stance: StanceAccurate},
		{Name: "Pummel", Type: DamageCrush, Stance: StanceAggressive},
		{Name: "Spike", Type: DamageStab, Stance: StanceControlled},
		{Name: "Block", Type: DamageCrush, Stance: StanceDefensive},
	},
	CategoryStabSword: {
		{Name: "Stab", Type: DamageStab, Stance: StanceAccurate},
		{Name: "Lunge", Type: DamageStab, Stance: StanceAggressive},
		{Name: "Slash", Type: DamageSlash, Stance: StanceAggressive},
		{Name: "Block", Type: DamageStab, Stance: StanceDefensive},
	},
	CategoryStaff: {
		{Name: "Bash", Type: DamageCrush, Stance: StanceAccurate},
		{Name: "Pound", Type: DamageCrush, Stance: StanceAggressive},
		{Name: "Focus", Type: DamageCrush, Stance: StanceDefensive},
	},
	CategoryThrown: {
		{Name: "Accurate", Type: DamageRanged, Stance: StanceAccurate},
		{Name: "Rapid", Type: DamageRanged, Stance: StanceRapid},
		{Name: "Longrange", Type: DamageRanged, Stance: StanceLongrange},
	},
	CategoryTwoHandedSword: {
		{Name: "Chop", Type: DamageSlash, Stance: StanceAccurate},
		{Name: "Slash", Type: DamageSlash, Stance: StanceAggressive},
		{Name: "Smash", Type: DamageCrush, Stance: StanceAggressive},
		{Name: "Block", Type: DamageSlash, Stance: StanceDefensive},
	},
	CategoryWhip: {
		{Name: "Flick", Type: DamageSlash, Stance: StanceAccurate},
		{Name: "Lash", Type: DamageSlash, Stance: StanceControlled},
		{Name: "Deflect", Type: DamageSlash, Stance: StanceDefensive},
	},
}

// CombatStylesForCategory returns the selectable styles for a weapon
// category, in in-game order. Unknown categories fall back to the unarmed
// styles so a loadout always has at least one valid style.
func CombatStylesForCategory(category EquipmentCategory) []CombatStyle {
	styles, ok := combatStyles[category]
	if !ok {
		styles = combatStyles[CategoryNone]
	}
	out := make([]CombatStyle, len(styles))
	copy(out, styles)
	return out
}

// DefaultStyleForCategory returns the style a loadout is reset to when its
// weapon changes to the given category.
func DefaultStyleForCategory(category EquipmentCategory) CombatStyle {
	return CombatStylesForCategory(category)[0]
}

// IsValidStyle reports whether the style is selectable for the category.
func IsValidStyle(category EquipmentCategory, style CombatStyle) bool {
	for _, s := range CombatStylesForCategory(category) {
		if s == style {
			return true
		}
	}
	return false
}
