package rules_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-charbuilder/internal/rules"
)

type DerivedTestSuite struct {
	suite.Suite
}

func TestDerivedSuite(t *testing.T) {
	suite.Run(t, new(DerivedTestSuite))
}

func (s *DerivedTestSuite) TestProficiencyBonus() {
	testCases := []struct {
		level    int
		expected int
	}{
		{0, 2},
		{1, 2},
		{4, 2},
		{5, 3},
		{8, 3},
		{9, 4},
		{13, 5},
		{17, 6},
		{20, 6},
		{25, 6},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, rules.ProficiencyBonus(tc.level), "level %d", tc.level)
	}
}

func (s *DerivedTestSuite) TestMaxHitPoints() {
	testCases := []struct {
		name     string
		level    int
		con      int
		class    rules.Class
		expected int
	}{
		{"level 1 fighter", 1, 14, rules.ClassFighter, 12},
		{"display name fighter", 1, 14, "Fighter", 12},
		{"prefixed fighter", 1, 14, rules.Class("CLASS_FIGHTER"), 12},
		{"level 1 wizard", 1, 10, rules.ClassWizard, 6},
		{"level 3 barbarian", 3, 16, rules.ClassBarbarian, 12 + 3 + 2*(7+3)},
		{"unknown class uses d8", 1, 10, rules.Class("artificer"), 8},
		{"floored at one", 1, 1, rules.ClassWizard, 1},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, rules.MaxHitPoints(tc.level, tc.con, tc.class))
		})
	}
}

func (s *DerivedTestSuite) TestSpellcastingNumbers() {
	s.Equal(13, rules.SpellSaveDC(16, 1))
	s.Equal(5, rules.SpellAttackBonus(16, 1))
	s.Equal(11, rules.ArmorClass(12))
	s.Equal(9, rules.ArmorClass(8))
}

func (s *DerivedTestSuite) TestDerive() {
	scores := rules.AbilityScores{Strength: 15, Dexterity: 14, Constitution: 14, Intelligence: 10, Wisdom: 12, Charisma: 8}

	stats := rules.Derive(scores, rules.ClassFighter, 1)

	s.Equal(1, stats.Level)
	s.Equal(10, stats.HitDie)
	s.False(stats.HitDieDefaulted)
	s.Equal(12, stats.MaxHitPoints)
	s.Equal(12, stats.ArmorClass)
	s.Equal(2, stats.Initiative)
	s.Equal(2, stats.ProficiencyBonus)
	s.Equal(-1, stats.Modifiers[rules.Charisma])
	s.Equal([]rules.Ability{rules.Strength, rules.Constitution}, stats.SavingThrows)
}

func (s *DerivedTestSuite) TestDeriveFoldsClassCase() {
	stats := rules.Derive(rules.ScoresFromValues([]int{10, 10, 14, 10, 10, 10}), "Fighter", 1)

	s.False(stats.HitDieDefaulted)
	s.Equal(10, stats.HitDie)
	s.Equal(12, stats.MaxHitPoints)
}

func (s *DerivedTestSuite) TestDeriveUnknownClass() {
	stats := rules.Derive(rules.ScoresFromValues([]int{10, 10, 10, 10, 10, 10}), rules.Class("artificer"), 1)

	s.True(stats.HitDieDefaulted)
	s.Equal(rules.DefaultHitDie, stats.HitDie)
	s.Empty(stats.SavingThrows)
}

func (s *DerivedTestSuite) TestClassTable() {
	for _, c := range rules.AllClasses() {
		info, ok := c.Info()
		s.True(ok, c)
		s.NotZero(info.HitDie)
		s.NotEmpty(info.StartingGold)
		if info.Caster == rules.CasterNone {
			s.False(info.IsCaster(), c)
		} else {
			s.True(info.IsCaster(), c)
		}
	}

	c, ok := rules.ParseClass("CLASS_WIZARD")
	s.True(ok)
	s.Equal(rules.ClassWizard, c)
}
