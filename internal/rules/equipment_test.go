package rules_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-charbuilder/internal/rules"
)

type EquipmentTestSuite struct {
	suite.Suite
}

func TestEquipmentSuite(t *testing.T) {
	suite.Run(t, new(EquipmentTestSuite))
}

func (s *EquipmentTestSuite) TestMergeInventory() {
	pack := []rules.Item{{Name: "Backpack", Quantity: 1}, {Name: "Vestments", Quantity: 1}, {Name: "Candle", Quantity: 10}}
	background := []rules.Item{{Name: "Holy Symbol", Quantity: 1}, {Name: "Vestments", Quantity: 1}, {Name: "Candle", Quantity: 0}}

	merged := rules.MergeInventory(pack, background)

	s.Equal([]rules.Item{
		{Name: "Backpack", Quantity: 1},
		{Name: "Vestments", Quantity: 2},
		{Name: "Candle", Quantity: 11},
		{Name: "Holy Symbol", Quantity: 1},
	}, merged)
}

func (s *EquipmentTestSuite) TestMergeInventorySkipsBlankNames() {
	s.Empty(rules.MergeInventory([]rules.Item{{Name: "  ", Quantity: 3}}))
}

func (s *EquipmentTestSuite) TestFindEquipmentPack() {
	testCases := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"burglars-pack", "Burglar's Pack", true},
		{"Priest's Pack", "Priest's Pack", true},
		{"scholars_pack", "Scholar's Pack", true},
		{"bag of holding", "", false},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			pack, ok := rules.FindEquipmentPack(tc.input)
			s.Equal(tc.ok, ok)
			s.Equal(tc.expected, pack.Name)
			if ok {
				s.NotEmpty(pack.Items)
			}
		})
	}
}

func (s *EquipmentTestSuite) TestPacksAreCopies() {
	packs := rules.EquipmentPacks()
	s.Len(packs, 7)
	packs[0].Items[0].Quantity = 50

	again := rules.EquipmentPacks()
	s.Equal(1, again[0].Items[0].Quantity)
}

func (s *EquipmentTestSuite) TestBackgrounds() {
	backgrounds := rules.DefaultBackgrounds()
	s.Len(backgrounds, 12)

	var folkHero rules.BackgroundInfo
	for _, b := range backgrounds {
		s.NotEmpty(b.Skills, b.Name)
		s.Positive(b.StartingGold, b.Name)
		if b.Background == "folk-hero" {
			folkHero = b
		}
	}
	s.Equal([]string{"Animal Handling", "Survival"}, folkHero.Skills)
	s.Equal(10, folkHero.StartingGold)
}

func (s *EquipmentTestSuite) TestParseAlignment() {
	a, ok := rules.ParseAlignment("Lawful Good")
	s.True(ok)
	s.Equal(rules.AlignmentLawfulGood, a)

	a, ok = rules.ParseAlignment("neutral")
	s.True(ok)
	s.Equal(rules.AlignmentTrueNeutral, a)

	_, ok = rules.ParseAlignment("lawful-awesome")
	s.False(ok)
}

func (s *EquipmentTestSuite) TestRacialBonuses() {
	base := rules.ScoresFromValues([]int{15, 14, 13, 12, 10, 8})

	testCases := []struct {
		race     rules.Race
		expected rules.AbilityScores
	}{
		{rules.RaceHuman, rules.ScoresFromValues([]int{16, 15, 14, 13, 11, 9})},
		{rules.RaceHalfOrc, rules.ScoresFromValues([]int{17, 14, 14, 12, 10, 8})},
		{rules.RaceTiefling, rules.ScoresFromValues([]int{15, 14, 13, 13, 10, 10})},
	}

	races := map[rules.Race]rules.RaceInfo{}
	for _, r := range rules.DefaultRaces() {
		races[r.Race] = r
	}

	for _, tc := range testCases {
		s.Run(string(tc.race), func() {
			s.Equal(tc.expected, rules.ApplyRacialBonuses(base, races[tc.race]))
		})
	}
}

func (s *EquipmentTestSuite) TestParseRace() {
	s.Equal(rules.RaceHalfElf, rules.ParseRace("Half Elf"))
	s.Equal(rules.RaceHalfOrc, rules.ParseRace("RACE_HALF_ORC"))
	s.Equal(rules.RaceDragonborn, rules.ParseRace("dragonborn"))
}
