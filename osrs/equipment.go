package osrs

// EquipmentStats holds the offensive stat block of a single piece.
type EquipmentStats struct {
	Stab      int `json:"stab"`
	Slash     int `json:"slash"`
	Crush     int `json:"crush"`
	Magic     int `json:"magic"`
	MagicStr  int `json:"magic_str"`
	Ranged    int `json:"ranged"`
	RangedStr int `json:"ranged_str"`
	Str       int `json:"str"`
}

// DefensiveStats holds the defensive stat block of a single piece.
type DefensiveStats struct {
	Stab   int `json:"stab"`
	Slash  int `json:"slash"`
	Crush  int `json:"crush"`
	Magic  int `json:"magic"`
	Ranged int `json:"ranged"`
	Prayer int `json:"prayer"`
}

// EquipmentPiece is one item of gear. Pieces are immutable values; the store
// replaces a slot's piece wholesale, it never edits one in place.
type EquipmentPiece struct {
	Name      string            `json:"name"`
	Image     string            `json:"image"`
	Category  EquipmentCategory `json:"category"`
	Offensive EquipmentStats    `json:"offensive"`
	Defensive DefensiveStats    `json:"defensive"`
}

// EmptyPiece returns the sentinel that represents an unequipped slot:
// all-zero bonuses and CategoryNone.
func EmptyPiece() EquipmentPiece {
	return EquipmentPiece{Category: CategoryNone}
}

// IsEmpty reports whether the piece is the unequipped sentinel.
func (p EquipmentPiece) IsEmpty() bool {
	return p == EmptyPiece()
}

// PlayerEquipment maps every slot to a piece. Each slot always holds either
// a real piece or the empty sentinel, never nothing.
type PlayerEquipment struct {
	Head   EquipmentPiece `json:"head"`
	Cape   EquipmentPiece `json:"cape"`
	Neck   EquipmentPiece `json:"neck"`
	Ammo   EquipmentPiece `json:"ammo"`
	Weapon EquipmentPiece `json:"weapon"`
	Body   EquipmentPiece `json:"body"`
	Shield EquipmentPiece `json:"shield"`
	Legs   EquipmentPiece `json:"legs"`
	Hands  EquipmentPiece `json:"hands"`
	Feet   EquipmentPiece `json:"feet"`
	Ring   EquipmentPiece `json:"ring"`
}

// NewPlayerEquipment returns equipment with every slot unequipped.
func NewPlayerEquipment() PlayerEquipment {
	empty := EmptyPiece()
	return PlayerEquipment{
		Head: empty, Cape: empty, Neck: empty, Ammo: empty,
		Weapon: empty, Body: empty, Shield: empty, Legs: empty,
		Hands: empty, Feet: empty, Ring: empty,
	}
}

// Piece returns the piece equipped in the given slot.
func (e *PlayerEquipment) Piece(slot Slot) EquipmentPiece {
	switch slot {
	case SlotHead:
		return e.Head
	case SlotCape:
		return e.Cape
	case SlotNeck:
		return e.Neck
	case SlotAmmo:
		return e.Ammo
	case SlotWeapon:
		return e.Weapon
	case SlotBody:
		return e.Body
	case SlotShield:
		return e.Shield
	case SlotLegs:
		return e.Legs
	case SlotHands:
		return e.Hands
	case SlotFeet:
		return e.Feet
	case SlotRing:
		return e.Ring
	}
	return EmptyPiece()
}

// SetPiece replaces the piece in the given slot. Unknown slots are ignored.
func (e *PlayerEquipment) SetPiece(slot Slot, piece EquipmentPiece) {
	switch slot {
	case SlotHead:
		e.Head = piece
	case SlotCape:
		e.Cape = piece
	case SlotNeck:
		e.Neck = piece
	case SlotAmmo:
		e.Ammo = piece
	case SlotWeapon:
		e.Weapon = piece
	case SlotBody:
		e.Body = piece
	case SlotShield:
		e.Shield = piece
	case SlotLegs:
		e.Legs = piece
	case SlotHands:
		e.Hands = piece
	case SlotFeet:
		e.Feet = piece
	case SlotRing:
		e.Ring = piece
	}
}

// AggregateBonuses is the summed strength-style bonus group.
type AggregateBonuses struct {
	Str       int `json:"str"`
	RangedStr int `json:"ranged_str"`
	MagicStr  int `json:"magic_str"`
	Prayer    int `json:"prayer"`
}

// AggregateOffensive is the summed offensive accuracy group.
type AggregateOffensive struct {
	Stab   int `json:"stab"`
	Slash  int `json:"slash"`
	Crush  int `json:"crush"`
	Magic  int `json:"magic"`
	Ranged int `json:"ranged"`
}

// AggregateDefensive is the summed defensive group.
type AggregateDefensive struct {
	Stab   int `json:"stab"`
	Slash  int `json:"slash"`
	Crush  int `json:"crush"`
	Magic  int `json:"magic"`
	Ranged int `json:"ranged"`
}

// Aggregate sums each bonus field across all eleven slots. Empty slots
// contribute zero, so the result depends only on the equipped pieces and is
// independent of iteration order.
func (e *PlayerEquipment) Aggregate() (AggregateBonuses, AggregateOffensive, AggregateDefensive) {
	var bonuses AggregateBonuses
	var offensive AggregateOffensive
	var defensive AggregateDefensive

	for _, slot := range Slots() {
		piece := e.Piece(slot)

		bonuses.Str += piece.Offensive.Str
		bonuses.RangedStr += piece.Offensive.RangedStr
		bonuses.MagicStr += piece.Offensive.MagicStr
		bonuses.Prayer += piece.Defensive.Prayer

		offensive.Stab += piece.Offensive.Stab
		offensive.Slash += piece.Offensive.Slash
		offensive.Crush += piece.Offensive.Crush
		offensive.Magic += piece.Offensive.Magic
		offensive.Ranged += piece.Offensive.Ranged

		defensive.Stab += piece.Defensive.Stab
		defensive.Slash += piece.Defensive.Slash
		defensive.Crush += piece.Defensive.Crush
		defensive.Magic += piece.Defensive.Magic
		defensive.Ranged += piece.Defensive.Ranged
	}

	return bonuses, offensive, defensive
}
