package reference_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-charbuilder/internal/clients/external"
	externalmock "github.com/KirkDiggler/rpg-charbuilder/internal/clients/external/mock"
	"github.com/KirkDiggler/rpg-charbuilder/internal/errors"
	"github.com/KirkDiggler/rpg-charbuilder/internal/reference"
	"github.com/KirkDiggler/rpg-charbuilder/internal/rules"
)

type CatalogTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockClient *externalmock.MockClient
	loader     *reference.Loader
	ctx        context.Context
}

func (s *CatalogTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = externalmock.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	var err error
	s.loader, err = reference.NewLoader(&reference.LoaderConfig{Client: s.mockClient})
	s.Require().NoError(err)
}

func (s *CatalogTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CatalogTestSuite) TestStatic() {
	cat := reference.Static()
	s.Same(cat, reference.Static())
	s.False(cat.Online())
	s.Len(cat.Classes(), 12)
	s.Len(cat.Races(), len(rules.DefaultRaces()))

	elf, ok := cat.Race("Elf")
	s.Require().True(ok)
	s.Equal(2, elf.AbilityBonuses[rules.Dexterity])

	wizard, ok := cat.Class("CLASS_WIZARD")
	s.Require().True(ok)
	s.Equal(6, wizard.HitDie)

	_, ok = cat.Class("artificer")
	s.False(ok)

	acolyte, ok := cat.Background("Acolyte")
	s.Require().True(ok)
	s.NotEmpty(acolyte.Skills)

	_, ok = cat.EquipmentPack("explorers-pack")
	s.True(ok)

	_, err := cat.Spells(s.ctx, reference.ListSpellsInput{Class: rules.ClassWizard})
	s.True(errors.IsUnavailable(err))
}

func (s *CatalogTestSuite) TestReturnedRowsAreCopies() {
	cat := reference.Static()

	races := cat.Races()
	races[0].AbilityBonuses[rules.Strength] = 99
	again := cat.Races()
	s.NotEqual(99, again[0].AbilityBonuses[rules.Strength])

	bgs := cat.Backgrounds()
	bgs[0].Skills[0] = "juggling"
	s.NotEqual("juggling", cat.Backgrounds()[0].Skills[0])
}

func (s *CatalogTestSuite) TestLoadMergesAPIData() {
	s.mockClient.EXPECT().ListRaces(gomock.Any()).Return([]*external.RaceData{
		{Key: "dwarf", Name: "Dwarf", Speed: 25, Size: "Medium", AbilityBonuses: map[string]int{"con": 2, "wis": 1}},
		{Key: "kenku", Name: "Kenku", Speed: 30, Size: "Medium", AbilityBonuses: map[string]int{"dex": 2}},
	}, nil)
	s.mockClient.EXPECT().ListClasses(gomock.Any()).Return([]*external.ClassData{
		{Key: "wizard", Name: "Wizard", HitDie: 4},
		{Key: "artificer", Name: "Artificer", HitDie: 8},
	}, nil)

	cat, err := s.loader.Load(s.ctx)
	s.Require().NoError(err)
	s.True(cat.Online())

	dwarf, ok := cat.Race("dwarf")
	s.Require().True(ok)
	s.Equal(map[rules.Ability]int{rules.Constitution: 2, rules.Wisdom: 1}, dwarf.AbilityBonuses)

	kenku, ok := cat.Race("kenku")
	s.Require().True(ok)
	s.Equal(2, kenku.AbilityBonuses[rules.Dexterity])

	wizard, ok := cat.Class("wizard")
	s.Require().True(ok)
	s.Equal(6, wizard.HitDie, "hit die stays with the class table")

	_, ok = cat.Class("artificer")
	s.False(ok)

	again, err := s.loader.Load(s.ctx)
	s.Require().NoError(err)
	s.Same(cat, again)
}

func (s *CatalogTestSuite) TestLoadError() {
	s.mockClient.EXPECT().ListRaces(gomock.Any()).Return(nil, errors.Unavailable("down"))
	s.mockClient.EXPECT().ListClasses(gomock.Any()).Return(nil, nil).AnyTimes()

	_, err := s.loader.Load(s.ctx)
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *CatalogTestSuite) TestSpellLevels() {
	s.mockClient.EXPECT().ListRaces(gomock.Any()).Return(nil, nil)
	s.mockClient.EXPECT().ListClasses(gomock.Any()).Return(nil, nil)
	cat, err := s.loader.Load(s.ctx)
	s.Require().NoError(err)

	s.mockClient.EXPECT().ListSpells(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *external.ListSpellsInput) ([]*external.SpellData, error) {
			s.Equal("wizard", in.Class)
			switch *in.Level {
			case 0:
				return []*external.SpellData{{Key: "light", Level: 0}}, nil
			case 1:
				return []*external.SpellData{{Key: "magic-missile", Level: 1}, {Key: "shield", Level: 1}}, nil
			}
			return nil, stderrors.New("unexpected level")
		}).Times(2)

	levels, err := cat.SpellLevels(s.ctx, rules.ClassWizard, 1)
	s.Require().NoError(err)
	s.Equal(map[string]int{"light": 0, "magic-missile": 1, "shield": 1}, levels)
}

func (s *CatalogTestSuite) TestNewLoaderRequiresClient() {
	_, err := reference.NewLoader(&reference.LoaderConfig{})
	s.Error(err)
}

func TestCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}
