package characterdraft_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-charbuilder/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-charbuilder/internal/errors"
	"github.com/KirkDiggler/rpg-charbuilder/internal/pkg/clock"
	clockmock "github.com/KirkDiggler/rpg-charbuilder/internal/pkg/clock/mock"
	characterdraft "github.com/KirkDiggler/rpg-charbuilder/internal/repositories/character_draft"
	"github.com/KirkDiggler/rpg-charbuilder/internal/rules"
	"github.com/KirkDiggler/rpg-charbuilder/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr   *miniredis.Miniredis
	now  time.Time
	repo characterdraft.Repository
	ctx  context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr
	s.now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s.ctx = context.Background()

	repo, err := characterdraft.NewRedisRepository(&characterdraft.Config{
		Client: client,
		Clock:  clock.Fixed{At: s.now},
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) draft(id, playerID string) *dnd5e.CharacterDraft {
	return &dnd5e.CharacterDraft{
		ID:        id,
		PlayerID:  playerID,
		Name:      "Mira",
		Class:     rules.ClassWizard,
		CreatedAt: s.now.Unix(),
		UpdatedAt: s.now.Unix(),
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAppliesDefaultTTL() {
	out, err := s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: s.draft("draft_1", "player_1")})

	s.Require().NoError(err)
	s.Equal(s.now.Add(characterdraft.DefaultTTL).Unix(), out.Draft.ExpiresAt)
	s.Empty(out.ReplacedDraftID)
	s.Equal(characterdraft.DefaultTTL, s.mr.TTL("draft:draft_1"))
	s.Equal(characterdraft.DefaultTTL, s.mr.TTL("draft:player:player_1"))
}

func (s *RedisRepositoryTestSuite) TestCreateReplacesPlayersDraft() {
	_, err := s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: s.draft("draft_1", "player_1")})
	s.Require().NoError(err)

	out, err := s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: s.draft("draft_2", "player_1")})
	s.Require().NoError(err)
	s.Equal("draft_1", out.ReplacedDraftID)

	_, err = s.repo.Get(s.ctx, characterdraft.GetInput{ID: "draft_1"})
	s.True(errors.IsNotFound(err))

	got, err := s.repo.GetByPlayerID(s.ctx, characterdraft.GetByPlayerIDInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Equal("draft_2", got.Draft.ID)
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	testCases := []struct {
		name  string
		draft *dnd5e.CharacterDraft
	}{
		{"nil draft", nil},
		{"missing ids", &dnd5e.CharacterDraft{}},
		{"expired", &dnd5e.CharacterDraft{ID: "d", PlayerID: "p", ExpiresAt: s.now.Add(-time.Minute).Unix()}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: tc.draft})
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RedisRepositoryTestSuite) TestUpdateKeepsExpiry() {
	created, err := s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: s.draft("draft_1", "player_1")})
	s.Require().NoError(err)

	draft := created.Draft.Clone()
	draft.Race = rules.RaceElf
	_, err = s.repo.Update(s.ctx, characterdraft.UpdateInput{Draft: draft})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, characterdraft.GetInput{ID: "draft_1"})
	s.Require().NoError(err)
	s.Equal(rules.RaceElf, got.Draft.Race)
	s.Equal(created.Draft.ExpiresAt, got.Draft.ExpiresAt)
}

func (s *RedisRepositoryTestSuite) TestUpdateAfterExpiryIsRejected() {
	ctrl := gomock.NewController(s.T())
	clk := clockmock.NewMockClock(ctrl)
	client, _ := testutils.CreateTestRedisClient(s.T())
	repo, err := characterdraft.NewRedisRepository(&characterdraft.Config{Client: client, Clock: clk})
	s.Require().NoError(err)

	gomock.InOrder(
		clk.EXPECT().Now().Return(s.now).Times(2),
		clk.EXPECT().Now().Return(s.now.Add(characterdraft.DefaultTTL+time.Minute)),
	)

	created, err := repo.Create(s.ctx, characterdraft.CreateInput{Draft: s.draft("draft_1", "player_1")})
	s.Require().NoError(err)

	_, err = repo.Update(s.ctx, characterdraft.UpdateInput{Draft: created.Draft})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestUpdateMissing() {
	_, err := s.repo.Update(s.ctx, characterdraft.UpdateInput{Draft: s.draft("draft_9", "player_1")})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: s.draft("draft_1", "player_1")})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, characterdraft.DeleteInput{ID: "draft_1"})
	s.Require().NoError(err)
	s.Equal("player_1", out.PlayerID)

	s.False(s.mr.Exists("draft:draft_1"))
	s.False(s.mr.Exists("draft:player:player_1"))

	_, err = s.repo.Delete(s.ctx, characterdraft.DeleteInput{ID: "draft_1"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestStaleMappingIsCleaned() {
	_, err := s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: s.draft("draft_1", "player_1")})
	s.Require().NoError(err)
	s.mr.Del("draft:draft_1")

	_, err = s.repo.GetByPlayerID(s.ctx, characterdraft.GetByPlayerIDInput{PlayerID: "player_1"})

	s.True(errors.IsNotFound(err))
	s.False(s.mr.Exists("draft:player:player_1"))
}

func (s *RedisRepositoryTestSuite) TestDraftRoundTrip() {
	draft := s.draft("draft_1", "player_1")
	draft.Method = rules.MethodStandardArray
	draft.AbilityScores = rules.ScoresFromValues([]int{8, 14, 13, 15, 12, 10})
	draft.Spells = []rules.SpellRef{{Key: "shield", Level: 1}}
	draft.EquipmentPack = "scholars-pack"

	_, err := s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: draft})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, characterdraft.GetInput{ID: "draft_1"})
	s.Require().NoError(err)
	s.Equal(draft.AbilityScores, got.Draft.AbilityScores)
	s.Equal(draft.Spells, got.Draft.Spells)
	s.Equal("scholars-pack", got.Draft.EquipmentPack)
}
