package rules_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-charbuilder/internal/errors"
	"github.com/KirkDiggler/rpg-charbuilder/internal/rules"
)

type SpellsTestSuite struct {
	suite.Suite
	profiles *rules.SpellProfiles
}

func TestSpellsSuite(t *testing.T) {
	suite.Run(t, new(SpellsTestSuite))
}

func (s *SpellsTestSuite) SetupTest() {
	s.profiles = rules.DefaultSpellProfiles()
}

func (s *SpellsTestSuite) TestLevelOneCleric() {
	scores, err := rules.AssignStandardArray(map[rules.Ability]int{
		rules.Strength: 14, rules.Dexterity: 10, rules.Constitution: 13,
		rules.Intelligence: 8, rules.Wisdom: 15, rules.Charisma: 12,
	})
	s.Require().NoError(err)
	scores = scores.Add(map[rules.Ability]int{rules.Wisdom: 1})
	s.Require().Equal(16, scores.Wisdom)

	profile := s.profiles.Resolve(rules.ClassCleric, 1)

	s.Equal(rules.SpellcastingPrepared, profile.Type)
	s.Equal(1, profile.MaxSpellLevel)
	s.Equal(map[int]int{1: 0}, profile.SpellLevelLimits)
	s.Equal(3, profile.CantripsKnown)
	s.Equal(map[int]int{1: 2}, profile.SpellSlots)
	s.Equal(13, rules.SpellSaveDC(scores.Get(rules.ClassCleric.SpellcastingAbility()), 1))
}

func (s *SpellsTestSuite) TestResolveRows() {
	testCases := []struct {
		name     string
		class    rules.Class
		level    int
		kind     rules.SpellcastingType
		maxLevel int
		limits   map[int]int
		slots    map[int]int
	}{
		{"wizard 1", rules.ClassWizard, 1, rules.SpellcastingSpellbook, 1, map[int]int{1: 6}, map[int]int{1: 2}},
		{"wizard 3", rules.ClassWizard, 3, rules.SpellcastingSpellbook, 2, map[int]int{1: 6, 2: 4}, map[int]int{1: 4, 2: 2}},
		{"bard 5", rules.ClassBard, 5, rules.SpellcastingKnown, 3, map[int]int{1: 4, 2: 3, 3: 1}, map[int]int{1: 4, 2: 3, 3: 2}},
		{"sorcerer 1", rules.ClassSorcerer, 1, rules.SpellcastingKnown, 1, map[int]int{1: 2}, map[int]int{1: 2}},
		{"warlock 3", rules.ClassWarlock, 3, rules.SpellcastingKnown, 2, map[int]int{1: 4, 2: 4}, map[int]int{2: 2}},
		{"paladin 2", rules.ClassPaladin, 2, rules.SpellcastingPrepared, 1, map[int]int{1: 0}, map[int]int{1: 2}},
		{"ranger 2", rules.ClassRanger, 2, rules.SpellcastingKnown, 1, map[int]int{1: 2}, map[int]int{1: 2}},
		{"druid 17", rules.ClassDruid, 17, rules.SpellcastingPrepared, 9, map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0, 6: 0, 7: 0, 8: 0, 9: 0}, map[int]int{1: 4, 2: 3, 3: 3, 4: 3, 5: 2, 6: 1, 7: 1, 8: 1, 9: 1}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			profile := s.profiles.Resolve(tc.class, tc.level)

			s.Equal(tc.kind, profile.Type)
			s.Equal(tc.maxLevel, profile.MaxSpellLevel)
			s.Equal(tc.limits, profile.SpellLevelLimits)
			s.Equal(tc.slots, profile.SpellSlots)
		})
	}
}

func (s *SpellsTestSuite) TestEmptyProfiles() {
	testCases := []struct {
		name  string
		class rules.Class
		level int
	}{
		{"fighter", rules.ClassFighter, 1},
		{"paladin before level 2", rules.ClassPaladin, 1},
		{"ranger before level 2", rules.ClassRanger, 1},
		{"unknown class", rules.Class("artificer"), 3},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			profile := s.profiles.Resolve(tc.class, tc.level)

			s.Equal(rules.SpellcastingNone, profile.Type)
			s.False(profile.IsCaster())
			s.Zero(profile.CantripsKnown)
			s.Zero(profile.MaxSpellLevel)
			s.Empty(profile.SpellLevelLimits)
			s.Empty(profile.SpellSlots)
		})
	}
}

func (s *SpellsTestSuite) TestResolveReturnsCopies() {
	first := s.profiles.Resolve(rules.ClassWizard, 1)
	first.SpellLevelLimits[1] = 99
	first.SpellSlots[1] = 99

	second := s.profiles.Resolve(rules.ClassWizard, 1)

	s.Equal(6, second.SpellLevelLimits[1])
	s.Equal(2, second.SpellSlots[1])
}

func (s *SpellsTestSuite) TestTableIsComplete() {
	fullCasters := []rules.Class{
		rules.ClassBard, rules.ClassCleric, rules.ClassDruid,
		rules.ClassSorcerer, rules.ClassWarlock, rules.ClassWizard,
	}
	for _, class := range fullCasters {
		for level := 1; level <= rules.MaxLevel; level++ {
			profile := s.profiles.Resolve(class, level)
			s.True(profile.IsCaster(), "%s level %d", class, level)
			s.Equal(level, profile.Level)
		}
	}
}

func (s *SpellsTestSuite) TestResolveFoldsClassCase() {
	profile := s.profiles.Resolve(rules.Class("Cleric"), 1)

	s.Equal(rules.SpellcastingPrepared, profile.Type)
	s.Equal(rules.ClassCleric, profile.Class)
	s.Equal(1, profile.MaxSpellLevel)
}

func (s *SpellsTestSuite) TestPrepareSpells() {
	selected := []string{"s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10"}

	s.Run("wizard prepares the first 1 + INT modifier", func() {
		known, prepared := rules.PrepareSpells(rules.SpellcastingSpellbook, selected, 16)
		s.Equal(selected, known)
		s.Equal([]string{"s1", "s2", "s3", "s4"}, prepared)
	})

	s.Run("wizard keeps caller order", func() {
		_, prepared := rules.PrepareSpells(rules.SpellcastingSpellbook, []string{"zeta", "alpha", "mu"}, 12)
		s.Equal([]string{"zeta", "alpha"}, prepared)
	})

	s.Run("wizard with low INT prepares none", func() {
		_, prepared := rules.PrepareSpells(rules.SpellcastingSpellbook, selected, 6)
		s.Empty(prepared)
	})

	s.Run("known caster prepares the selection", func() {
		known, prepared := rules.PrepareSpells(rules.SpellcastingKnown, selected[:2], 10)
		s.Equal(selected[:2], known)
		s.Equal(selected[:2], prepared)
	})

	s.Run("prepared caster has no known list", func() {
		known, prepared := rules.PrepareSpells(rules.SpellcastingPrepared, selected, 10)
		s.Nil(known)
		s.Equal(selected, prepared)
	})

	s.Run("empty selection", func() {
		known, prepared := rules.PrepareSpells(rules.SpellcastingSpellbook, nil, 18)
		s.Nil(known)
		s.Nil(prepared)
	})

	s.Run("non-caster", func() {
		known, prepared := rules.PrepareSpells(rules.SpellcastingNone, selected, 18)
		s.Nil(known)
		s.Nil(prepared)
	})
}

func (s *SpellsTestSuite) TestValidateSpellSelection() {
	wizard := s.profiles.Resolve(rules.ClassWizard, 1)
	cleric := s.profiles.Resolve(rules.ClassCleric, 1)
	fighter := s.profiles.Resolve(rules.ClassFighter, 1)

	testCases := []struct {
		name      string
		profile   rules.ClassSpellProfile
		selection []rules.SpellRef
		wantErr   bool
	}{
		{
			name:    "wizard within limits",
			profile: wizard,
			selection: []rules.SpellRef{
				{Key: "fire-bolt", Level: 0}, {Key: "light", Level: 0},
				{Key: "magic-missile", Level: 1}, {Key: "shield", Level: 1},
			},
		},
		{
			name:    "too many cantrips",
			profile: wizard,
			selection: []rules.SpellRef{
				{Key: "a", Level: 0}, {Key: "b", Level: 0}, {Key: "c", Level: 0}, {Key: "d", Level: 0},
			},
			wantErr: true,
		},
		{
			name:      "spell above max level",
			profile:   wizard,
			selection: []rules.SpellRef{{Key: "fireball", Level: 3}},
			wantErr:   true,
		},
		{
			name:    "too many level 1 spells",
			profile: wizard,
			selection: []rules.SpellRef{
				{Key: "a", Level: 1}, {Key: "b", Level: 1}, {Key: "c", Level: 1}, {Key: "d", Level: 1},
				{Key: "e", Level: 1}, {Key: "f", Level: 1}, {Key: "g", Level: 1},
			},
			wantErr: true,
		},
		{
			name:      "duplicate",
			profile:   wizard,
			selection: []rules.SpellRef{{Key: "shield", Level: 1}, {Key: "shield", Level: 1}},
			wantErr:   true,
		},
		{
			name:    "prepared caster is uncapped",
			profile: cleric,
			selection: []rules.SpellRef{
				{Key: "a", Level: 1}, {Key: "b", Level: 1}, {Key: "c", Level: 1}, {Key: "d", Level: 1},
				{Key: "e", Level: 1}, {Key: "f", Level: 1}, {Key: "g", Level: 1}, {Key: "h", Level: 1},
			},
		},
		{
			name:      "non-caster",
			profile:   fighter,
			selection: []rules.SpellRef{{Key: "shield", Level: 1}},
			wantErr:   true,
		},
		{
			name:    "non-caster with nothing selected",
			profile: fighter,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := rules.ValidateSpellSelection(tc.profile, tc.selection)
			if tc.wantErr {
				s.Require().Error(err)
				s.True(errors.IsInvalidArgument(err))
				s.NotEmpty(errors.FieldViolations(err))
				return
			}
			s.NoError(err)
		})
	}
}
