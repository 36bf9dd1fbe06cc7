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

type LoadoutTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *preferencesmock.MockRepository
	store    *store.Store
}

func (s *LoadoutTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = preferencesmock.NewMockRepository(s.ctrl)

	st, err := store.New(&store.Config{
		PreferencesRepo: s.mockRepo,
		Notifier:        notify.Nop{},
		Clock:           clock.NewFixed(testTime()),
		IDGen:           idgen.NewSequential("loadout"),
	})
	s.Require().NoError(err)
	s.store = st
}

func (s *LoadoutTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *LoadoutTestSuite) TestNewStoreHasOneDefaultLoadout() {
	snap := s.store.Snapshot()

	s.Require().Len(snap.Loadouts, 1)
	s.Equal(0, snap.SelectedLoadout)
	s.Equal("Loadout 1", snap.Loadouts[0].Name)
	s.Equal("Punch", snap.Loadouts[0].Style.Name)
	s.True(s.store.CanCreateLoadout())
	s.False(s.store.CanRemoveLoadout())
}

func (s *LoadoutTestSuite) TestCreateStopsAtCapacity() {
	for i := 0; i < 10; i++ {
		s.store.CreateLoadout(store.CreateLoadoutInput{})
	}

	s.Equal(store.MaxLoadouts, s.store.LoadoutCount())
	s.False(s.store.CanCreateLoadout())

	snap := s.store.Snapshot()
	s.Equal("Loadout 5", snap.Loadouts[4].Name)
}

func (s *LoadoutTestSuite) TestCreateWithSelect() {
	s.store.CreateLoadout(store.CreateLoadoutInput{Select: true})

	s.Equal(1, s.store.SelectedLoadout())

	s.store.CreateLoadout(store.CreateLoadoutInput{})
	s.Equal(1, s.store.SelectedLoadout(), "creation without Select keeps the selection")
}

func (s *LoadoutTestSuite) TestCloneIsDetachedDeepCopy() {
	s.store.UpdatePlayer(&osrs.PlayerPartial{
		Name:    strPtr("Melee build"),
		Prayers: []osrs.Prayer{osrs.PrayerPiety},
	})

	zero := 0
	s.store.CreateLoadout(store.CreateLoadoutInput{Select: true, CloneFrom: &zero})

	snap := s.store.Snapshot()
	s.Require().Len(snap.Loadouts, 2)
	original, clone := snap.Loadouts[0], snap.Loadouts[1]

	s.Equal("Melee build", clone.Name)
	s.Equal(original.Prayers, clone.Prayers)
	s.NotEqual(original.ID, clone.ID, "clone gets a fresh ID")

	// Mutating the clone must not leak into the original.
	s.store.TogglePrayer(osrs.PrayerRigour)
	snap = s.store.Snapshot()
	s.Equal([]osrs.Prayer{osrs.PrayerPiety}, snap.Loadouts[0].Prayers)
	s.Equal([]osrs.Prayer{osrs.PrayerRigour}, snap.Loadouts[1].Prayers)
}

func (s *LoadoutTestSuite) TestDeleteKeepsFloorOfOne() {
	s.store.DeleteLoadout(0)

	s.Equal(1, s.store.LoadoutCount())
	s.False(s.store.CanRemoveLoadout())
}

func (s *LoadoutTestSuite) TestDeleteShiftsSelectionDown() {
	s.store.CreateLoadout(store.CreateLoadoutInput{})
	s.store.CreateLoadout(store.CreateLoadoutInput{})
	s.store.SelectLoadout(2)

	s.store.DeleteLoadout(1)

	s.Equal(1, s.store.SelectedLoadout())
	s.Equal(2, s.store.LoadoutCount())
}

func (s *LoadoutTestSuite) TestDeleteAtIndexZeroNeverShiftsSelection() {
	s.store.CreateLoadout(store.CreateLoadoutInput{})
	s.store.CreateLoadout(store.CreateLoadoutInput{})
	s.store.SelectLoadout(2)

	s.store.DeleteLoadout(0)

	s.Equal(2, s.store.SelectedLoadout())
	s.Equal(2, s.store.LoadoutCount())
}

func (s *LoadoutTestSuite) TestDeleteAboveSelectionLeavesItAlone() {
	s.store.CreateLoadout(store.CreateLoadoutInput{})
	s.store.CreateLoadout(store.CreateLoadoutInput{})
	s.store.SelectLoadout(0)

	s.store.DeleteLoadout(2)

	s.Equal(0, s.store.SelectedLoadout())
}

func (s *LoadoutTestSuite) TestDeleteAtSelectionShiftsDown() {
	s.store.CreateLoadout(store.CreateLoadoutInput{})
	s.store.CreateLoadout(store.CreateLoadoutInput{})
	s.store.SelectLoadout(1)

	s.store.DeleteLoadout(1)

	s.Equal(0, s.store.SelectedLoadout())
}

func TestLoadoutTestSuite(t *testing.T) {
	suite.Run(t, new(LoadoutTestSuite))
}
