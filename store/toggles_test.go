package store_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/osrstools/dps-store/notify"
	"github.com/osrstools/dps-store/osrs"
	"github.com/osrstools/dps-store/pkg/clock"
	"github.com/osrstools/dps-store/pkg/idgen"
	preferencesmock "github.com/osrstools/dps-store/repositories/preferences/mock"
	"github.com/osrstools/dps-store/store"
)

type ToggleTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	store *store.Store
}

func (s *ToggleTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	st, err := store.New(&store.Config{
		PreferencesRepo: preferencesmock.NewMockRepository(s.ctrl),
		Notifier:        notify.Nop{},
		Clock:           clock.NewFixed(testTime()),
		IDGen:           idgen.NewSequential("loadout"),
	})
	s.Require().NoError(err)
	s.store = st
}

func (s *ToggleTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ToggleTestSuite) activePotions() []osrs.Potion {
	return s.store.Snapshot().Selected().Buffs.Potions
}

func (s *ToggleTestSuite) activePrayers() []osrs.Prayer {
	return s.store.Snapshot().Selected().Prayers
}

func (s *ToggleTestSuite) TestPotionToggleOnAppendsAtEnd() {
	s.store.TogglePotion(osrs.PotionSuperCombat)
	s.store.TogglePotion(osrs.PotionRanging)

	s.Equal([]osrs.Potion{osrs.PotionSuperCombat, osrs.PotionRanging}, s.activePotions())
}

func (s *ToggleTestSuite) TestPotionToggleTwiceRestoresOriginal() {
	s.store.TogglePotion(osrs.PotionSuperCombat)
	s.store.TogglePotion(osrs.PotionRanging)
	s.store.TogglePotion(osrs.PotionMagic)

	s.store.TogglePotion(osrs.PotionRanging)
	s.Equal([]osrs.Potion{osrs.PotionSuperCombat, osrs.PotionMagic}, s.activePotions(),
		"removal preserves the order of the remaining potions")

	s.store.TogglePotion(osrs.PotionRanging)
	s.Equal([]osrs.Potion{osrs.PotionSuperCombat, osrs.PotionMagic, osrs.PotionRanging}, s.activePotions(),
		"re-adding appends at the end")
}

func (s *ToggleTestSuite) TestPotionsHaveNoExclusivityRules() {
	s.store.TogglePotion(osrs.PotionAttack)
	s.store.TogglePotion(osrs.PotionSuperAttack)
	s.store.TogglePotion(osrs.PotionOverload)

	s.Len(s.activePotions(), 3)
}

func (s *ToggleTestSuite) TestPrayerToggleRemovesConflicts() {
	s.store.TogglePrayer(osrs.PrayerBurstOfStrength)
	s.store.TogglePrayer(osrs.PrayerClarityOfThought)
	s.Equal([]osrs.Prayer{osrs.PrayerBurstOfStrength, osrs.PrayerClarityOfThought},
		s.activePrayers(), "melee attack and strength lines stack")

	s.store.TogglePrayer(osrs.PrayerEagleEye)
	s.Equal([]osrs.Prayer{osrs.PrayerEagleEye}, s.activePrayers(),
		"activating a ranged prayer deactivates both melee prayers")
}

func (s *ToggleTestSuite) TestPrayerToggleOffOnlyRemovesItself() {
	s.store.TogglePrayer(osrs.PrayerClarityOfThought)
	s.store.TogglePrayer(osrs.PrayerBurstOfStrength)

	s.store.TogglePrayer(osrs.PrayerBurstOfStrength)

	s.Equal([]osrs.Prayer{osrs.PrayerClarityOfThought}, s.activePrayers(),
		"toggling off restores exactly the set from before the toggle on")
}

func (s *ToggleTestSuite) TestPrayerConflictFilterIsStable() {
	s.store.TogglePrayer(osrs.PrayerClarityOfThought)
	s.store.TogglePrayer(osrs.PrayerBurstOfStrength)

	// Ultimate Strength conflicts with Burst of Strength but stacks with
	// Clarity of Thought; the survivor keeps its position.
	s.store.TogglePrayer(osrs.PrayerUltimateStrength)

	s.Equal([]osrs.Prayer{osrs.PrayerClarityOfThought, osrs.PrayerUltimateStrength},
		s.activePrayers())
}

func (s *ToggleTestSuite) TestActiveSetNeverHoldsIncompatiblePair() {
	sequence := []osrs.Prayer{
		osrs.PrayerBurstOfStrength,
		osrs.PrayerSharpEye,
		osrs.PrayerMysticWill,
		osrs.PrayerPiety,
		osrs.PrayerClarityOfThought,
		osrs.PrayerUltimateStrength,
		osrs.PrayerRigour,
	}
	for _, p := range sequence {
		s.store.TogglePrayer(p)

		active := s.activePrayers()
		for _, a := range active {
			for _, b := range active {
				if a == b {
					continue
				}
				s.NotContains(osrs.IncompatiblePrayers(a), b,
					"%s and %s active together after toggling %s", a, b, p)
			}
		}
	}
}

func (s *ToggleTestSuite) TestTogglesApplyToSelectedLoadoutOnly() {
	s.store.TogglePrayer(osrs.PrayerPiety)
	s.store.CreateLoadout(store.CreateLoadoutInput{Select: true})

	s.store.TogglePrayer(osrs.PrayerRigour)
	s.store.TogglePotion(osrs.PotionRanging)

	snap := s.store.Snapshot()
	s.Equal([]osrs.Prayer{osrs.PrayerPiety}, snap.Loadouts[0].Prayers)
	s.Empty(snap.Loadouts[0].Buffs.Potions)
	s.Equal([]osrs.Prayer{osrs.PrayerRigour}, snap.Loadouts[1].Prayers)
	s.Equal([]osrs.Potion{osrs.PotionRanging}, snap.Loadouts[1].Buffs.Potions)
}

func TestToggleTestSuite(t *testing.T) {
	suite.Run(t, new(ToggleTestSuite))
}
