package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-charbuilder/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-charbuilder/internal/errors"
	"github.com/KirkDiggler/rpg-charbuilder/internal/orchestrators/character"
	"github.com/KirkDiggler/rpg-charbuilder/internal/orchestrators/dice"
	dicemock "github.com/KirkDiggler/rpg-charbuilder/internal/orchestrators/dice/mock"
	"github.com/KirkDiggler/rpg-charbuilder/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-charbuilder/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-charbuilder/internal/reference"
	characterrepo "github.com/KirkDiggler/rpg-charbuilder/internal/repositories/character"
	charactermock "github.com/KirkDiggler/rpg-charbuilder/internal/repositories/character/mock"
	draftrepo "github.com/KirkDiggler/rpg-charbuilder/internal/repositories/character_draft"
	characterdraftmock "github.com/KirkDiggler/rpg-charbuilder/internal/repositories/character_draft/mock"
	"github.com/KirkDiggler/rpg-charbuilder/internal/rules"
	charactersvc "github.com/KirkDiggler/rpg-charbuilder/internal/services/character"
)

// recordingBus remembers the type of every published event
type recordingBus struct {
	published []string
}

func (b *recordingBus) Publish(_ context.Context, e events.Event) error {
	b.published = append(b.published, e.Type())
	return nil
}
func (b *recordingBus) Subscribe(_ string, _ events.Handler) string { return "sub-id" }
func (b *recordingBus) SubscribeFunc(_ string, _ int, _ events.HandlerFunc) string {
	return "sub-id"
}
func (b *recordingBus) Unsubscribe(_ string) error { return nil }
func (b *recordingBus) Clear(_ string)             {}
func (b *recordingBus) ClearAll()                  {}

var clericArray = map[rules.Ability]int{
	rules.Wisdom:       15,
	rules.Constitution: 14,
	rules.Dexterity:    13,
	rules.Strength:     12,
	rules.Charisma:     10,
	rules.Intelligence: 8,
}

var wizardArray = map[rules.Ability]int{
	rules.Intelligence: 15,
	rules.Constitution: 14,
	rules.Dexterity:    13,
	rules.Wisdom:       12,
	rules.Charisma:     10,
	rules.Strength:     8,
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockDraftRepo *characterdraftmock.MockRepository
	mockCharRepo  *charactermock.MockRepository
	mockDice      *dicemock.MockService
	bus           *recordingBus
	orch          *character.Orchestrator
	ctx           context.Context
	now           time.Time

	// drafts backs the draft repository mock
	drafts map[string]*dnd5e.CharacterDraft
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockDraftRepo = characterdraftmock.NewMockRepository(s.ctrl)
	s.mockCharRepo = charactermock.NewMockRepository(s.ctrl)
	s.mockDice = dicemock.NewMockService(s.ctrl)
	s.bus = &recordingBus{}
	s.ctx = context.Background()
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.drafts = map[string]*dnd5e.CharacterDraft{}

	var err error
	s.orch, err = character.New(&character.Config{
		CharacterRepo:      s.mockCharRepo,
		CharacterDraftRepo: s.mockDraftRepo,
		DiceService:        s.mockDice,
		Catalog:            reference.Static(),
		EventBus:           s.bus,
		DraftIDGenerator:   idgen.NewSequential("draft"),
		CharacterIDGen:     idgen.NewSequential("char"),
		Clock:              clock.Fixed{At: s.now},
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// storeDraft makes the draft repository mock serve and persist draft
func (s *OrchestratorTestSuite) storeDraft(draft *dnd5e.CharacterDraft) {
	s.drafts[draft.ID] = draft.Clone()

	s.mockDraftRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input draftrepo.GetInput) (*draftrepo.GetOutput, error) {
			d, ok := s.drafts[input.ID]
			if !ok {
				return nil, errors.NotFoundf("draft %s not found", input.ID)
			}
			return &draftrepo.GetOutput{Draft: d.Clone()}, nil
		}).
		AnyTimes()
	s.mockDraftRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input draftrepo.UpdateInput) (*draftrepo.UpdateOutput, error) {
			s.drafts[input.Draft.ID] = input.Draft.Clone()
			return &draftrepo.UpdateOutput{Draft: input.Draft.Clone()}, nil
		}).
		AnyTimes()
}

// completeDraft is a human cleric ready to finalize
func (s *OrchestratorTestSuite) completeDraft(class rules.Class, scores rules.AbilityScores) *dnd5e.CharacterDraft {
	return &dnd5e.CharacterDraft{
		ID:            "draft_1",
		PlayerID:      "player-1",
		Name:          "Brother Aldric",
		Race:          rules.RaceHuman,
		Class:         class,
		Background:    rules.Background("acolyte"),
		Method:        rules.MethodStandardArray,
		AbilityScores: scores,
		EquipmentPack: "priests-pack",
	}
}

func (s *OrchestratorTestSuite) TestNewValidation() {
	_, err := character.New(&character.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = character.New(nil)
	s.Require().Error(err)
}

func (s *OrchestratorTestSuite) TestCreateDraft() {
	s.mockDraftRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input draftrepo.CreateInput) (*draftrepo.CreateOutput, error) {
			s.Equal("draft_1", input.Draft.ID)
			s.Equal("player-1", input.Draft.PlayerID)
			s.Equal("Aria", input.Draft.Name)
			s.Equal(s.now.Unix(), input.Draft.CreatedAt)
			return &draftrepo.CreateOutput{Draft: input.Draft, ReplacedDraftID: "draft_0"}, nil
		})

	out, err := s.orch.CreateDraft(s.ctx, &charactersvc.CreateDraftInput{PlayerID: "player-1", Name: "  Aria "})
	s.Require().NoError(err)
	s.Equal("draft_1", out.Draft.ID)
	s.Equal("draft_0", out.ReplacedDraftID)
	s.Equal([]string{character.EventDraftCreated}, s.bus.published)
}

func (s *OrchestratorTestSuite) TestCreateDraftRequiresPlayer() {
	_, err := s.orch.CreateDraft(s.ctx, &charactersvc.CreateDraftInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Empty(s.bus.published)
}

func (s *OrchestratorTestSuite) TestGetDraftNotFound() {
	s.storeDraft(&dnd5e.CharacterDraft{ID: "draft_1", PlayerID: "player-1"})

	_, err := s.orch.GetDraft(s.ctx, &charactersvc.GetDraftInput{DraftID: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestUpdateSections() {
	s.storeDraft(&dnd5e.CharacterDraft{ID: "draft_1", PlayerID: "player-1"})

	_, err := s.orch.UpdateName(s.ctx, &charactersvc.UpdateNameInput{DraftID: "draft_1", Name: "Mira"})
	s.Require().NoError(err)

	race, err := s.orch.UpdateRace(s.ctx, &charactersvc.UpdateRaceInput{DraftID: "draft_1", Race: "Half-Orc"})
	s.Require().NoError(err)
	s.Equal(rules.RaceHalfOrc, race.Draft.Race)

	class, err := s.orch.UpdateClass(s.ctx, &charactersvc.UpdateClassInput{DraftID: "draft_1", Class: "fighter"})
	s.Require().NoError(err)
	s.Equal(10, class.Class.HitDie)

	_, err = s.orch.UpdateBackground(s.ctx, &charactersvc.UpdateBackgroundInput{DraftID: "draft_1", Background: "Folk Hero"})
	s.Require().NoError(err)

	out, err := s.orch.UpdateAlignment(s.ctx, &charactersvc.UpdateAlignmentInput{DraftID: "draft_1", Alignment: "chaotic-good"})
	s.Require().NoError(err)
	s.Equal("Mira", out.Draft.Name)
	s.Equal(rules.ClassFighter, out.Draft.Class)
	s.Equal(rules.Background("folk-hero"), out.Draft.Background)
	s.Equal(rules.AlignmentChaoticGood, out.Draft.Alignment)
	s.Equal(s.now.Unix(), out.Draft.UpdatedAt)
	s.Equal([]string{dnd5e.StepAbilityScores, dnd5e.StepEquipment}, out.Draft.Missing())
}

func (s *OrchestratorTestSuite) TestUpdateRejectsUnknownValues() {
	s.storeDraft(&dnd5e.CharacterDraft{ID: "draft_1", PlayerID: "player-1"})

	_, err := s.orch.UpdateRace(s.ctx, &charactersvc.UpdateRaceInput{DraftID: "draft_1", Race: "owlin"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orch.UpdateClass(s.ctx, &charactersvc.UpdateClassInput{DraftID: "draft_1", Class: "artificer"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orch.UpdateBackground(s.ctx, &charactersvc.UpdateBackgroundInput{DraftID: "draft_1", Background: "pirate"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orch.UpdateAlignment(s.ctx, &charactersvc.UpdateAlignmentInput{DraftID: "draft_1", Alignment: "lawful-awesome"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestUpdateClassClearsSpells() {
	draft := s.completeDraft(rules.ClassCleric, rules.AbilityScores{})
	draft.Spells = []rules.SpellRef{{Key: "guidance", Level: 0}}
	s.storeDraft(draft)

	out, err := s.orch.UpdateClass(s.ctx, &charactersvc.UpdateClassInput{DraftID: "draft_1", Class: "wizard"})
	s.Require().NoError(err)
	s.True(out.SpellsCleared)
	s.Empty(out.Draft.Spells)

	same, err := s.orch.UpdateClass(s.ctx, &charactersvc.UpdateClassInput{DraftID: "draft_1", Class: "wizard"})
	s.Require().NoError(err)
	s.False(same.SpellsCleared)
}

func (s *OrchestratorTestSuite) TestGenerateStandardArray() {
	s.storeDraft(&dnd5e.CharacterDraft{ID: "draft_1", PlayerID: "player-1"})

	out, err := s.orch.GenerateAbilityScores(s.ctx, &charactersvc.GenerateAbilityScoresInput{
		DraftID:    "draft_1",
		Method:     "standardArray",
		Assignment: clericArray,
	})
	s.Require().NoError(err)
	s.Equal(rules.MethodStandardArray, out.Method)
	s.False(out.MethodFallback)
	s.Equal(15, out.Draft.AbilityScores.Wisdom)
	s.Equal(8, out.Draft.AbilityScores.Intelligence)
}

func (s *OrchestratorTestSuite) TestGenerateRolledAndUnknownMethodFallback() {
	s.storeDraft(&dnd5e.CharacterDraft{ID: "draft_1", PlayerID: "player-1"})

	scores := rules.AbilityScores{Strength: 15, Dexterity: 14, Constitution: 13, Intelligence: 12, Wisdom: 10, Charisma: 8}
	s.mockDice.EXPECT().
		RollAbilityScores(s.ctx, &dice.RollAbilityScoresInput{EntityID: "draft_1"}).
		Return(&dice.RollAbilityScoresOutput{
			Values: scores.Values(),
			Scores: scores,
		}, nil)

	out, err := s.orch.GenerateAbilityScores(s.ctx, &charactersvc.GenerateAbilityScoresInput{
		DraftID: "draft_1",
		Method:  "4d6-heroic",
	})
	s.Require().NoError(err)
	s.True(out.MethodFallback)
	s.Equal(rules.MethodRolled, out.Method)
	s.Equal(scores, out.Draft.AbilityScores)
	s.Equal(scores.Values(), out.Draft.RolledPool)
}

func (s *OrchestratorTestSuite) TestPointBuyFlow() {
	s.storeDraft(&dnd5e.CharacterDraft{ID: "draft_1", PlayerID: "player-1"})

	gen, err := s.orch.GenerateAbilityScores(s.ctx, &charactersvc.GenerateAbilityScoresInput{
		DraftID: "draft_1",
		Method:  "pointBuy",
	})
	s.Require().NoError(err)
	s.Require().NotNil(gen.PointBuyRemaining)
	s.Equal(rules.PointBuyBudget, *gen.PointBuyRemaining)
	s.Equal(8, gen.Draft.AbilityScores.Strength)

	adj, err := s.orch.AdjustPointBuy(s.ctx, &charactersvc.AdjustPointBuyInput{DraftID: "draft_1", Ability: "strength", Score: 15})
	s.Require().NoError(err)
	s.True(adj.Accepted)
	s.Equal(18, adj.Remaining)

	refused, err := s.orch.AdjustPointBuy(s.ctx, &charactersvc.AdjustPointBuyInput{DraftID: "draft_1", Ability: "dexterity", Score: 16})
	s.Require().NoError(err)
	s.False(refused.Accepted)
	s.Require().NotNil(refused.Rejection)
	s.Equal(rules.RejectOutOfRange, refused.Rejection.Reason)
	s.Equal(18, refused.Remaining)
	s.Equal(8, s.drafts["draft_1"].AbilityScores.Dexterity)

	unknown, err := s.orch.AdjustPointBuy(s.ctx, &charactersvc.AdjustPointBuyInput{DraftID: "draft_1", Ability: "luck", Score: 10})
	s.Require().NoError(err)
	s.False(unknown.Accepted)
	s.Equal(rules.RejectUnknownAbility, unknown.Rejection.Reason)
}

func (s *OrchestratorTestSuite) TestPointBuySteps() {
	draft := &dnd5e.CharacterDraft{ID: "draft_1", PlayerID: "player-1", Method: rules.MethodPointBuy}
	draft.AbilityScores = rules.AbilityScores{
		Strength: 15, Dexterity: 15, Constitution: 15,
		Intelligence: 8, Wisdom: 8, Charisma: 8,
	}
	s.storeDraft(draft)

	over, err := s.orch.AdjustPointBuy(s.ctx, &charactersvc.AdjustPointBuyInput{DraftID: "draft_1", Ability: "int", Delta: 1})
	s.Require().NoError(err)
	s.False(over.Accepted)
	s.Require().NotNil(over.Rejection)
	s.Equal(rules.RejectOverBudget, over.Rejection.Reason)
	s.Equal(0, over.Remaining)
	s.Equal(8, s.drafts["draft_1"].AbilityScores.Intelligence)

	capped, err := s.orch.AdjustPointBuy(s.ctx, &charactersvc.AdjustPointBuyInput{DraftID: "draft_1", Ability: "str", Delta: 1})
	s.Require().NoError(err)
	s.False(capped.Accepted)
	s.Equal(rules.RejectOutOfRange, capped.Rejection.Reason)

	// 15 -> 14 refunds 2 points
	down, err := s.orch.AdjustPointBuy(s.ctx, &charactersvc.AdjustPointBuyInput{DraftID: "draft_1", Ability: "strength", Delta: -1})
	s.Require().NoError(err)
	s.True(down.Accepted)
	s.Equal(2, down.Remaining)
	s.Equal(14, s.drafts["draft_1"].AbilityScores.Strength)

	up, err := s.orch.AdjustPointBuy(s.ctx, &charactersvc.AdjustPointBuyInput{DraftID: "draft_1", Ability: "int", Delta: 1})
	s.Require().NoError(err)
	s.True(up.Accepted)
	s.Equal(1, up.Remaining)
	s.Equal(9, s.drafts["draft_1"].AbilityScores.Intelligence)
}

func (s *OrchestratorTestSuite) TestAdjustPointBuyNeedsScoreOrDelta() {
	s.storeDraft(&dnd5e.CharacterDraft{ID: "draft_1", PlayerID: "player-1", Method: rules.MethodPointBuy})

	_, err := s.orch.AdjustPointBuy(s.ctx, &charactersvc.AdjustPointBuyInput{DraftID: "draft_1", Ability: "strength"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orch.AdjustPointBuy(s.ctx, &charactersvc.AdjustPointBuyInput{DraftID: "draft_1", Ability: "strength", Score: 12, Delta: 1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestAdjustPointBuyNeedsPointBuyMethod() {
	s.storeDraft(s.completeDraft(rules.ClassCleric, rules.AbilityScores{Strength: 10, Dexterity: 10, Constitution: 10, Intelligence: 10, Wisdom: 10, Charisma: 10}))

	_, err := s.orch.AdjustPointBuy(s.ctx, &charactersvc.AdjustPointBuyInput{DraftID: "draft_1", Ability: "strength", Score: 12})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestSwapAbilityScores() {
	s.storeDraft(s.completeDraft(rules.ClassCleric, rules.AbilityScores{Strength: 15, Dexterity: 14, Constitution: 13, Intelligence: 12, Wisdom: 10, Charisma: 8}))

	out, err := s.orch.SwapAbilityScores(s.ctx, &charactersvc.SwapAbilityScoresInput{DraftID: "draft_1", First: "str", Second: "wisdom"})
	s.Require().NoError(err)
	s.Equal(10, out.Draft.AbilityScores.Strength)
	s.Equal(15, out.Draft.AbilityScores.Wisdom)

	_, err = s.orch.SwapAbilityScores(s.ctx, &charactersvc.SwapAbilityScoresInput{DraftID: "draft_1", First: "str", Second: "luck"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSwapNeedsScores() {
	s.storeDraft(&dnd5e.CharacterDraft{ID: "draft_1", PlayerID: "player-1"})

	_, err := s.orch.SwapAbilityScores(s.ctx, &charactersvc.SwapAbilityScoresInput{DraftID: "draft_1", First: "str", Second: "dex"})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestUpdateSpells() {
	s.storeDraft(s.completeDraft(rules.ClassWizard, rules.AbilityScores{}))

	out, err := s.orch.UpdateSpells(s.ctx, &charactersvc.UpdateSpellsInput{
		DraftID: "draft_1",
		Spells: []rules.SpellRef{
			{Key: "fire-bolt", Level: 0},
			{Key: "magic-missile", Level: 1},
			{Key: "shield", Level: 1},
		},
	})
	s.Require().NoError(err)
	s.Equal(rules.SpellcastingSpellbook, out.Profile.Type)
	s.Len(out.Draft.Spells, 3)

	_, err = s.orch.UpdateSpells(s.ctx, &charactersvc.UpdateSpellsInput{
		DraftID: "draft_1",
		Spells:  []rules.SpellRef{{Key: "fireball", Level: 3}},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestUpdateSpellsNonCaster() {
	s.storeDraft(s.completeDraft(rules.ClassFighter, rules.AbilityScores{}))

	_, err := s.orch.UpdateSpells(s.ctx, &charactersvc.UpdateSpellsInput{
		DraftID: "draft_1",
		Spells:  []rules.SpellRef{{Key: "light", Level: 0}},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSelectEquipmentPack() {
	s.storeDraft(&dnd5e.CharacterDraft{ID: "draft_1", PlayerID: "player-1"})

	out, err := s.orch.SelectEquipmentPack(s.ctx, &charactersvc.SelectEquipmentPackInput{
		DraftID:        "draft_1",
		Pack:           "Explorer's Pack",
		ExtraEquipment: []rules.Item{{Name: "Lute", Quantity: 1}},
	})
	s.Require().NoError(err)
	s.Require().NotNil(out.Pack)
	s.Equal("explorers-pack", out.Draft.EquipmentPack)
	s.True(out.Draft.TookPack())

	none, err := s.orch.SelectEquipmentPack(s.ctx, &charactersvc.SelectEquipmentPackInput{DraftID: "draft_1", Pack: "none"})
	s.Require().NoError(err)
	s.Nil(none.Pack)
	s.False(none.Draft.TookPack())

	_, err = s.orch.SelectEquipmentPack(s.ctx, &charactersvc.SelectEquipmentPackInput{DraftID: "draft_1", Pack: "jester-pack"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestPreviewClericSpellcasting() {
	draft := &dnd5e.CharacterDraft{ID: "draft_1", PlayerID: "player-1", Race: rules.RaceHuman, Class: rules.ClassCleric}
	s.storeDraft(draft)

	_, err := s.orch.GenerateAbilityScores(s.ctx, &charactersvc.GenerateAbilityScoresInput{
		DraftID:    "draft_1",
		Method:     "standardArray",
		Assignment: clericArray,
	})
	s.Require().NoError(err)

	out, err := s.orch.PreviewDraft(s.ctx, &charactersvc.PreviewDraftInput{DraftID: "draft_1"})
	s.Require().NoError(err)

	p := out.Preview
	s.Equal(16, p.AbilityScores.Wisdom)
	s.Equal(rules.SpellcastingPrepared, p.SpellProfile.Type)
	s.Equal(1, p.SpellProfile.MaxSpellLevel)
	s.Equal(map[int]int{1: 0}, p.SpellProfile.SpellLevelLimits)
	s.Equal(13, p.SpellSaveDC)
	s.Equal(5, p.SpellAttackBonus)
	s.Equal(10, p.Stats.MaxHitPoints)
	s.Nil(p.PointBuyRemaining)
	s.Equal([]string{dnd5e.StepName, dnd5e.StepBackground, dnd5e.StepEquipment}, p.Missing)
}

func (s *OrchestratorTestSuite) TestFinalizeIncompleteDraft() {
	s.storeDraft(&dnd5e.CharacterDraft{ID: "draft_1", PlayerID: "player-1", Name: "Solo"})

	_, err := s.orch.FinalizeDraft(s.ctx, &charactersvc.FinalizeDraftInput{DraftID: "draft_1"})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Contains(errors.GetMeta(err), "missing")
}

func (s *OrchestratorTestSuite) TestFinalizeIncompletePointBuy() {
	draft := s.completeDraft(rules.ClassFighter, rules.NewPointBuy().Scores())
	draft.Method = rules.MethodPointBuy
	s.storeDraft(draft)

	_, err := s.orch.FinalizeDraft(s.ctx, &charactersvc.FinalizeDraftInput{DraftID: "draft_1"})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

type requestIDKey struct{}

func (s *OrchestratorTestSuite) TestFinalizeCleric() {
	scores, err := rules.AssignStandardArray(clericArray)
	s.Require().NoError(err)
	draft := s.completeDraft(rules.ClassCleric, scores)
	draft.Spells = []rules.SpellRef{
		{Key: "guidance", Level: 0},
		{Key: "sacred-flame", Level: 0},
		{Key: "bless", Level: 1},
	}
	s.storeDraft(draft)

	s.mockDice.EXPECT().
		RollStartingGold(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input *dice.RollStartingGoldInput) (*dice.RollStartingGoldOutput, error) {
			// the finalize span wraps the caller's context
			s.Equal("req-7", ctx.Value(requestIDKey{}))
			s.True(input.TookPack)
			s.Equal(rules.ClassCleric, input.Class.Class)
			return &dice.RollStartingGoldOutput{
				StartingGold: rules.StartingGold{Gold: input.Background.StartingGold, Details: "Background gold"},
			}, nil
		})

	var saved *dnd5e.Character
	s.mockCharRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.CreateInput) (*characterrepo.CreateOutput, error) {
			saved = input.Character
			return &characterrepo.CreateOutput{Character: input.Character}, nil
		})
	s.mockDraftRepo.EXPECT().
		Delete(gomock.Any(), draftrepo.DeleteInput{ID: "draft_1"}).
		Return(&draftrepo.DeleteOutput{PlayerID: "player-1"}, nil)

	ctx := context.WithValue(s.ctx, requestIDKey{}, "req-7")
	out, err := s.orch.FinalizeDraft(ctx, &charactersvc.FinalizeDraftInput{DraftID: "draft_1"})
	s.Require().NoError(err)
	s.True(out.DraftDeleted)

	c := out.Character
	s.Same(saved, c)
	s.Equal("char_1", c.ID)
	s.Equal(1, c.Level)
	s.Equal(16, c.AbilityScores.Wisdom)
	s.Equal(15, c.BaseAbilityScores.Wisdom)
	s.Equal(10, c.Stats.MaxHitPoints)
	s.Equal(c.Stats.MaxHitPoints, c.CurrentHP)
	s.Equal(15, c.Currency.Gold)
	s.Equal([]string{"Insight", "Religion"}, c.Skills)
	s.Contains(c.Inventory, rules.Item{Name: "Censer", Quantity: 1})
	s.Contains(c.Inventory, rules.Item{Name: "Holy Symbol", Quantity: 1})

	s.Require().NotNil(c.Spellcasting)
	s.Equal(rules.Wisdom, c.Spellcasting.Ability)
	s.Equal(13, c.Spellcasting.SaveDC)
	s.Equal([]string{"guidance", "sacred-flame"}, c.Spellcasting.Cantrips)
	s.Equal([]string{"bless"}, c.Spellcasting.Prepared)
	s.Empty(c.Spellcasting.Known)

	s.Equal([]string{character.EventCharacterFinalized}, s.bus.published)
}

func (s *OrchestratorTestSuite) TestFinalizeWizardPreparesFromSpellbook() {
	scores, err := rules.AssignStandardArray(wizardArray)
	s.Require().NoError(err)
	draft := s.completeDraft(rules.ClassWizard, scores)
	draft.EquipmentPack = rules.NoPackKey
	draft.Spells = []rules.SpellRef{
		{Key: "magic-missile", Level: 1},
		{Key: "shield", Level: 1},
		{Key: "sleep", Level: 1},
		{Key: "mage-armor", Level: 1},
		{Key: "detect-magic", Level: 1},
		{Key: "identify", Level: 1},
	}
	s.storeDraft(draft)

	s.mockDice.EXPECT().
		RollStartingGold(gomock.Any(), gomock.Any()).
		Return(&dice.RollStartingGoldOutput{
			StartingGold: rules.StartingGold{Gold: 100, Details: "Wizard 4d4×10", Rolled: true},
		}, nil)
	s.mockCharRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(&characterrepo.CreateOutput{}, nil)
	s.mockDraftRepo.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	out, err := s.orch.FinalizeDraft(s.ctx, &charactersvc.FinalizeDraftInput{DraftID: "draft_1"})
	s.Require().NoError(err)
	s.False(out.DraftDeleted)

	sc := out.Character.Spellcasting
	s.Require().NotNil(sc)
	s.Equal(rules.SpellcastingSpellbook, sc.Type)
	s.Len(sc.Known, 6)
	// INT 16 prepares 1 + 3
	s.Equal([]string{"magic-missile", "shield", "sleep", "mage-armor"}, sc.Prepared)
	s.Equal(100, out.Character.Currency.Gold)
	s.NotContains(out.Character.Inventory, rules.Item{Name: "Backpack", Quantity: 1})
}

func (s *OrchestratorTestSuite) TestFinalizeSaveFailureKeepsDraft() {
	scores, err := rules.AssignStandardArray(clericArray)
	s.Require().NoError(err)
	s.storeDraft(s.completeDraft(rules.ClassFighter, scores))

	s.mockDice.EXPECT().
		RollStartingGold(gomock.Any(), gomock.Any()).
		Return(&dice.RollStartingGoldOutput{StartingGold: rules.StartingGold{Gold: 15}}, nil)
	s.mockCharRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("database down"))

	_, err = s.orch.FinalizeDraft(s.ctx, &charactersvc.FinalizeDraftInput{DraftID: "draft_1"})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.Contains(s.drafts, "draft_1")
	s.Empty(s.bus.published)
}

func (s *OrchestratorTestSuite) TestListCharacters() {
	s.mockCharRepo.EXPECT().
		ListByPlayerID(s.ctx, characterrepo.ListByPlayerIDInput{PlayerID: "player-1", Limit: 10, Offset: 20}).
		Return(&characterrepo.ListByPlayerIDOutput{
			Characters: []*dnd5e.Character{{ID: "char_1", PlayerID: "player-1"}},
			Total:      21,
		}, nil)

	out, err := s.orch.ListCharacters(s.ctx, &charactersvc.ListCharactersInput{PlayerID: "player-1", PageSize: 10, Offset: 20})
	s.Require().NoError(err)
	s.Len(out.Characters, 1)
	s.Equal(21, out.Total)

	_, err = s.orch.ListCharacters(s.ctx, &charactersvc.ListCharactersInput{PlayerID: "player-1", PageSize: 1000})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestDeleteCharacter() {
	c := &dnd5e.Character{ID: "char_1", PlayerID: "player-1"}
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{ID: "char_1"}).
		Return(&characterrepo.GetOutput{Character: c}, nil)
	s.mockCharRepo.EXPECT().
		Delete(s.ctx, characterrepo.DeleteInput{ID: "char_1"}).
		Return(&characterrepo.DeleteOutput{}, nil)

	_, err := s.orch.DeleteCharacter(s.ctx, &charactersvc.DeleteCharacterInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Equal([]string{character.EventCharacterDeleted}, s.bus.published)
}

func (s *OrchestratorTestSuite) TestDeleteCharacterNotFound() {
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{ID: "char_9"}).
		Return(nil, errors.NotFound("character not found"))

	_, err := s.orch.DeleteCharacter(s.ctx, &charactersvc.DeleteCharacterInput{CharacterID: "char_9"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Empty(s.bus.published)
}

func (s *OrchestratorTestSuite) TestGetSpellProfile() {
	out, err := s.orch.GetSpellProfile(s.ctx, &charactersvc.GetSpellProfileInput{Class: "paladin", Level: 2})
	s.Require().NoError(err)
	s.Equal(rules.SpellcastingPrepared, out.Profile.Type)
	s.Equal(1, out.Profile.MaxSpellLevel)

	unknown, err := s.orch.GetSpellProfile(s.ctx, &charactersvc.GetSpellProfileInput{Class: "artificer", Level: 5})
	s.Require().NoError(err)
	s.False(unknown.Profile.IsCaster())
}

func (s *OrchestratorTestSuite) TestReferenceLists() {
	races, err := s.orch.ListRaces(s.ctx, &charactersvc.ListRacesInput{})
	s.Require().NoError(err)
	s.NotEmpty(races.Races)

	classes, err := s.orch.ListClasses(s.ctx, &charactersvc.ListClassesInput{})
	s.Require().NoError(err)
	s.Len(classes.Classes, 12)

	packs, err := s.orch.ListEquipmentPacks(s.ctx, &charactersvc.ListEquipmentPacksInput{})
	s.Require().NoError(err)
	s.Len(packs.Packs, 7)

	_, err = s.orch.ListSpells(s.ctx, &charactersvc.ListSpellsInput{Class: "wizard"})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
