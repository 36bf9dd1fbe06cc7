package osrs

import (
	"github.com/osrstools/dps-store/errors"
)

// prayerClass groups prayers that boost the same combat line. Two active
// prayers conflict unless one boosts melee attack and the other melee
// strength; every other cross-class or same-class pairing is exclusive.
type prayerClass int

const (
	classMeleeAttack prayerClass = iota
	classMeleeStrength
	classRanged
	classMagic
	classCombined
)

var prayerClasses = map[Prayer]prayerClass{
	PrayerClarityOfThought:   classMeleeAttack,
	PrayerImprovedReflexes:   classMeleeAttack,
	PrayerIncredibleReflexes: classMeleeAttack,
	PrayerBurstOfStrength:    classMeleeStrength,
	PrayerSuperhumanStrength: classMeleeStrength,
	PrayerUltimateStrength:   classMeleeStrength,
	PrayerSharpEye:           classRanged,
	PrayerHawkEye:            classRanged,
	PrayerEagleEye:           classRanged,
	PrayerRigour:             classRanged,
	PrayerMysticWill:         classMagic,
	PrayerMysticLore:         classMagic,
	PrayerMysticMight:        classMagic,
	PrayerAugury:             classMagic,
	PrayerChivalry:           classCombined,
	PrayerPiety:              classCombined,
}

// prayerConflicts lists, for each prayer, every prayer it cannot coexist
// with. Built from prayerClasses at init so both directions of every pair are
// always present.
var prayerConflicts = buildPrayerConflicts()

func buildPrayerConflicts() map[Prayer][]Prayer {
	conflicts := make(map[Prayer][]Prayer, len(prayerClasses))
	for _, a := range AllPrayers() {
		for _, b := range AllPrayers() {
			if a == b {
				continue
			}
			if classesConflict(prayerClasses[a], prayerClasses[b]) {
				conflicts[a] = append(conflicts[a], b)
			}
		}
	}
	return conflicts
}

func classesConflict(a, b prayerClass) bool {
	// The melee attack and strength lines are the only pair that stack.
	if (a == classMeleeAttack && b == classMeleeStrength) ||
		(a == classMeleeStrength && b == classMeleeAttack) {
		return false
	}
	return true
}

// AllPrayers returns every prayer in prayer-book order.
func AllPrayers() []Prayer {
	return []Prayer{
		PrayerBurstOfStrength,
		PrayerClarityOfThought,
		PrayerSharpEye,
		PrayerMysticWill,
		PrayerSuperhumanStrength,
		PrayerImprovedReflexes,
		PrayerHawkEye,
		PrayerMysticLore,
		PrayerUltimateStrength,
		PrayerIncredibleReflexes,
		PrayerEagleEye,
		PrayerMysticMight,
		PrayerChivalry,
		PrayerPiety,
		PrayerRigour,
		PrayerAugury,
	}
}

// IncompatiblePrayers returns the prayers that cannot be active alongside p.
func IncompatiblePrayers(p Prayer) []Prayer {
	conflicts := prayerConflicts[p]
	out := make([]Prayer, len(conflicts))
	copy(out, conflicts)
	return out
}

// ValidatePrayerConflicts checks that the conflict table is symmetric: if A
// lists B, B must list A. The toggle resolver relies on this and does not
// infer the reverse direction itself.
func ValidatePrayerConflicts() error {
	return validateConflictTable(prayerConflicts)
}

func validateConflictTable(table map[Prayer][]Prayer) error {
	for a, conflicts := range table {
		for _, b := range conflicts {
			if !containsPrayer(table[b], a) {
				return asymmetricConflictError(a, b)
			}
		}
	}
	return nil
}

func asymmetricConflictError(a, b Prayer) error {
	return errors.Internalf("prayer conflict table is asymmetric: %q lists %q but not the reverse", a, b)
}

func containsPrayer(ps []Prayer, p Prayer) bool {
	for _, candidate := range ps {
		if candidate == p {
			return true
		}
	}
	return false
}

func init() {
	// Fail fast on an asymmetric table rather than risk inconsistent
	// active-prayer state at runtime.
	if err := ValidatePrayerConflicts(); err != nil {
		panic(err)
	}
}
