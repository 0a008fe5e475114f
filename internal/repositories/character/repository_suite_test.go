package character_test

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-charbuilder/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-charbuilder/internal/errors"
	"github.com/KirkDiggler/rpg-charbuilder/internal/repositories/character"
	"github.com/KirkDiggler/rpg-charbuilder/internal/rules"
)

// repositorySuite runs the same behavior checks against every backend
type repositorySuite struct {
	suite.Suite
	newRepo func() character.Repository
	repo    character.Repository
	ctx     context.Context
}

func (s *repositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = s.newRepo()
}

func testCharacter(id, playerID string, createdAt int64) *dnd5e.Character {
	return &dnd5e.Character{
		ID:         id,
		PlayerID:   playerID,
		Name:       "Brienne " + id,
		Race:       rules.RaceHuman,
		Class:      rules.ClassFighter,
		Background: rules.Background("soldier"),
		Alignment:  rules.AlignmentLawfulGood,
		Level:      1,
		Method:     rules.MethodStandardArray,
		AbilityScores: rules.AbilityScores{
			Strength: 16, Dexterity: 14, Constitution: 15,
			Intelligence: 9, Wisdom: 13, Charisma: 11,
		},
		CurrentHP: 12,
		Inventory: []rules.Item{{Name: "Pouch", Quantity: 1}},
		Currency:  dnd5e.Currency{Gold: 10},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func (s *repositorySuite) TestCreateAndGet() {
	c := testCharacter("char_1", "player_1", 100)

	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: c})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Equal(c, got.Character)
}

func (s *repositorySuite) TestCreateDuplicate() {
	c := testCharacter("char_1", "player_1", 100)
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: c})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: c})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *repositorySuite) TestCreateValidation() {
	testCases := []struct {
		name      string
		character *dnd5e.Character
	}{
		{name: "nil character", character: nil},
		{name: "missing id", character: testCharacter("", "player_1", 1)},
		{name: "missing player", character: testCharacter("char_1", "", 1)},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Create(s.ctx, character.CreateInput{Character: tc.character})
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *repositorySuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, character.GetInput{ID: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *repositorySuite) TestListByPlayerID() {
	for i := 3; i >= 1; i-- {
		_, err := s.repo.Create(s.ctx, character.CreateInput{
			Character: testCharacter(fmt.Sprintf("char_%d", i), "player_1", int64(i*10)),
		})
		s.Require().NoError(err)
	}
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: testCharacter("other", "player_2", 5)})
	s.Require().NoError(err)

	s.Run("all oldest first", func() {
		out, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: "player_1"})
		s.Require().NoError(err)
		s.Equal(3, out.Total)
		s.Require().Len(out.Characters, 3)
		s.Equal("char_1", out.Characters[0].ID)
		s.Equal("char_3", out.Characters[2].ID)
	})

	s.Run("paged", func() {
		out, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{
			PlayerID: "player_1", Limit: 1, Offset: 1,
		})
		s.Require().NoError(err)
		s.Equal(3, out.Total)
		s.Require().Len(out.Characters, 1)
		s.Equal("char_2", out.Characters[0].ID)
	})

	s.Run("unknown player", func() {
		out, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: "nobody"})
		s.Require().NoError(err)
		s.Zero(out.Total)
		s.Empty(out.Characters)
	})

	s.Run("negative offset", func() {
		_, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: "player_1", Offset: -1})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *repositorySuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: testCharacter("char_1", "player_1", 1)})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: "char_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: "char_1"})
	s.True(errors.IsNotFound(err))
}
