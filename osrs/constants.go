package osrs

// Slot identifies one of the eleven fixed equipment positions on a loadout.
type Slot string

// Equipment slots
const (
	SlotHead   Slot = "head"
	SlotCape   Slot = "cape"
	SlotNeck   Slot = "neck"
	SlotAmmo   Slot = "ammo"
	SlotWeapon Slot = "weapon"
	SlotBody   Slot = "body"
	SlotShield Slot = "shield"
	SlotLegs   Slot = "legs"
	SlotHands  Slot = "hands"
	SlotFeet   Slot = "feet"
	SlotRing   Slot = "ring"
)

// Slots returns every equipment slot in display order.
func Slots() []Slot {
	return []Slot{
		SlotHead, SlotCape, SlotNeck, SlotAmmo, SlotWeapon,
		SlotBody, SlotShield, SlotLegs, SlotHands, SlotFeet, SlotRing,
	}
}

// EquipmentCategory tags a piece with its weapon/armour class. The category
// of the equipped weapon determines which combat styles are selectable.
type EquipmentCategory string

// Equipment categories
const (
	CategoryNone           EquipmentCategory = "None"
	CategoryAxe            EquipmentCategory = "Axe"
	CategoryBanner         EquipmentCategory = "Banner"
	CategoryBlunt          EquipmentCategory = "Blunt"
	CategoryBludgeon       EquipmentCategory = "Bludgeon"
	CategoryBulwark        EquipmentCategory = "Bulwark"
	CategoryBow            EquipmentCategory = "Bow"
	CategoryChinchompa     EquipmentCategory = "Chinchompas"
	CategoryClaw           EquipmentCategory = "Claw"
	CategoryCrossbow       EquipmentCategory = "Crossbow"
	CategoryGun            EquipmentCategory = "Gun"
	CategoryPickaxe        EquipmentCategory = "Pickaxe"
	CategoryPolearm        EquipmentCategory = "Polearm"
	CategoryPolestaff      EquipmentCategory = "Polestaff"
	CategoryPoweredStaff   EquipmentCategory = "Powered Staff"
	CategorySalamander     EquipmentCategory = "Salamander"
	CategoryScythe         EquipmentCategory = "Scythe"
	CategorySlashSword     EquipmentCategory = "Slash Sword"
	CategorySpear          EquipmentCategory = "Spear"
	CategorySpiked         EquipmentCategory = "Spiked"
	CategoryStabSword      EquipmentCategory = "Stab Sword"
	CategoryStaff          EquipmentCategory = "Staff"
	CategoryThrown         EquipmentCategory = "Thrown"
	CategoryTwoHandedSword EquipmentCategory = "Two-handed Sword"
	CategoryWhip           EquipmentCategory = "Whip"
)

// Prayer identifies an offensive prayer.
type Prayer string

// Prayers
const (
	PrayerBurstOfStrength    Prayer = "Burst of Strength"
	PrayerClarityOfThought   Prayer = "Clarity of Thought"
	PrayerSharpEye           Prayer = "Sharp Eye"
	PrayerMysticWill         Prayer = "Mystic Will"
	PrayerSuperhumanStrength Prayer = "Superhuman Strength"
	PrayerImprovedReflexes   Prayer = "Improved Reflexes"
	PrayerHawkEye            Prayer = "Hawk Eye"
	PrayerMysticLore         Prayer = "Mystic Lore"
	PrayerUltimateStrength   Prayer = "Ultimate Strength"
	PrayerIncredibleReflexes Prayer = "Incredible Reflexes"
	PrayerEagleEye           Prayer = "Eagle Eye"
	PrayerMysticMight        Prayer = "Mystic Might"
	PrayerChivalry           Prayer = "Chivalry"
	PrayerPiety              Prayer = "Piety"
	PrayerRigour             Prayer = "Rigour"
	PrayerAugury             Prayer = "Augury"
)

// Potion identifies a boost potion. Potions have no exclusivity rules.
type Potion string

// Potions
const (
	PotionAttack         Potion = "Attack"
	PotionSuperAttack    Potion = "Super Attack"
	PotionStrength       Potion = "Strength"
	PotionSuperStrength  Potion = "Super Strength"
	PotionSuperCombat    Potion = "Super Combat"
	PotionRanging        Potion = "Ranging"
	PotionMagic          Potion = "Magic"
	PotionImbuedHeart    Potion = "Imbued Heart"
	PotionSaturatedHeart Potion = "Saturated Heart"
	PotionOverload       Potion = "Overload"
	PotionSmellingSalts  Potion = "Smelling Salts"
	PotionForgottenBrew  Potion = "Forgotten Brew"
)

// MonsterAttribute tags a monster with a trait that certain equipment keys
// off (e.g. dragonbane weapons, demonbane spells).
type MonsterAttribute string

// Monster attributes
const (
	AttributeDemon    MonsterAttribute = "demon"
	AttributeDragon   MonsterAttribute = "dragon"
	AttributeFiery    MonsterAttribute = "fiery"
	AttributeGolem    MonsterAttribute = "golem"
	AttributeIcy      MonsterAttribute = "icy"
	AttributeKalphite MonsterAttribute = "kalphite"
	AttributeLeafy    MonsterAttribute = "leafy"
	AttributePenance  MonsterAttribute = "penance"
	AttributeRat      MonsterAttribute = "rat"
	AttributeShade    MonsterAttribute = "shade"
	AttributeSpectral MonsterAttribute = "spectral"
	AttributeUndead   MonsterAttribute = "undead"
	AttributeVampyre  MonsterAttribute = "vampyre"
	AttributeXerician MonsterAttribute = "xerician"
)

// Spellbook identifies which spellbook a selected spell belongs to.
type Spellbook string

// Spellbooks
const (
	SpellbookStandard Spellbook = "standard"
	SpellbookAncient  Spellbook = "ancient"
	SpellbookLunar    Spellbook = "lunar"
	SpellbookArceuus  Spellbook = "arceuus"
)

// DamageType is the combat type a style attacks with.
type DamageType string

// Damage types
const (
	DamageStab   DamageType = "stab"
	DamageSlash  DamageType = "slash"
	DamageCrush  DamageType = "crush"
	DamageMagic  DamageType = "magic"
	DamageRanged DamageType = "ranged"
	DamageNone   DamageType = "none"
)

// Stance is the attack stance a style is used in.
type Stance string

// Stances
const (
	StanceAccurate   Stance = "accurate"
	StanceAggressive Stance = "aggressive"
	StanceDefensive  Stance = "defensive"
	StanceControlled Stance = "controlled"
	StanceRapid      Stance = "rapid"
	StanceLongrange  Stance = "longrange"
)
