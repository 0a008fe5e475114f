// Package dice implements the dice orchestrator for handling dice roll sessions
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/rpg-charbuilder/internal/orchestrators/dice Service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-charbuilder/internal/errors"
	"github.com/KirkDiggler/rpg-charbuilder/internal/pkg/idgen"
	dicesession "github.com/KirkDiggler/rpg-charbuilder/internal/repositories/dice_session"
	"github.com/KirkDiggler/rpg-charbuilder/internal/rules"
)

// Limits on generic rolls
const (
	MaxDiceCount = 100
	MaxDieSize   = 1000
)

// diceNotationRegex parses simple dice notation like "2d6", "1d20", "3d8"
var diceNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)$`)

// Service defines the interface for dice operations
type Service interface {
	// Generic dice rolling
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)
	GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error)
	ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error)

	// Character creation rolls
	RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error)
	RollStartingGold(ctx context.Context, input *RollStartingGoldInput) (*RollStartingGoldOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	DiceSessionRepo dicesession.Repository
	IDGenerator     idgen.Generator
	// Roller defaults to dice.DefaultRoller
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DiceSessionRepo == nil {
		vb.RequiredField("DiceSessionRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	diceSessionRepo dicesession.Repository
	idGen           idgen.Generator
	roller          dice.Roller
	generator       *rules.Generator
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &orchestrator{
		diceSessionRepo: cfg.DiceSessionRepo,
		idGen:           cfg.IDGenerator,
		roller:          roller,
		generator:       rules.NewGenerator(roller),
	}, nil
}

// ParseNotation parses "XdY" and returns count and size
func ParseNotation(notation string) (count, size int, err error) {
	matches := diceNotationRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(notation)))
	if len(matches) != 3 {
		return 0, 0, errors.InvalidArgumentf("invalid dice notation: %s (expected format: XdY)", notation)
	}

	count, _ = strconv.Atoi(matches[1])
	size, _ = strconv.Atoi(matches[2])

	if count <= 0 || size <= 0 {
		return 0, 0, errors.InvalidArgumentf("dice count and size must be positive: %s", notation)
	}
	if count > MaxDiceCount || size > MaxDieSize {
		return 0, 0, errors.OutOfRangef("dice notation %s exceeds %dd%d", notation, MaxDiceCount, MaxDieSize)
	}

	return count, size, nil
}

func validateSessionKey(entityID, sessionContext string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("entity_id", entityID, vb)
	errors.ValidateRequired("context", sessionContext, vb)
	return vb.Build()
}

// RollDice rolls dice using the specified notation and appends the result to
// the entity's session for the context
func (o *orchestrator) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateSessionKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	count, size, err := ParseNotation(input.Notation)
	if err != nil {
		return nil, err
	}

	values, err := o.roller.RollN(count, size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll dice")
	}

	roll := dicesession.DiceRoll{
		RollID:      o.idGen.Generate(),
		Notation:    fmt.Sprintf("%dd%d", count, size),
		Dice:        values,
		Description: input.Description,
	}
	for _, v := range values {
		roll.Total += v
	}

	appendOutput, err := o.diceSessionRepo.Append(ctx, dicesession.AppendInput{
		EntityID: input.EntityID,
		Context:  input.Context,
		Rolls:    []dicesession.DiceRoll{roll},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store dice roll")
	}

	slog.Info("dice rolled",
		"entity_id", input.EntityID,
		"context", input.Context,
		"notation", roll.Notation,
		"total", roll.Total,
		"roll_id", roll.RollID,
	)

	return &RollDiceOutput{
		Roll:    &roll,
		Session: appendOutput.Session,
	}, nil
}

// GetRollSession retrieves an existing dice roll session
func (o *orchestrator) GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateSessionKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	getOutput, err := o.diceSessionRepo.Get(ctx, dicesession.GetInput{
		EntityID: input.EntityID,
		Context:  input.Context,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get dice session")
	}

	return &GetRollSessionOutput{
		Session: getOutput.Session,
	}, nil
}

// ClearRollSession removes a dice roll session
func (o *orchestrator) ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateSessionKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	deleteOutput, err := o.diceSessionRepo.Delete(ctx, dicesession.DeleteInput{
		EntityID: input.EntityID,
		Context:  input.Context,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete dice session")
	}

	slog.Info("dice session cleared",
		"entity_id", input.EntityID,
		"context", input.Context,
		"rolls_deleted", deleteOutput.RollsDeleted,
	)

	return &ClearRollSessionOutput{
		RollsDeleted: deleteOutput.RollsDeleted,
	}, nil
}

// RollAbilityScores rolls 4d6 drop lowest once per ability, in sheet order,
// and replaces the entity's ability score session
func (o *orchestrator) RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error) {
	if input == nil || input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}

	generated, err := o.generator.Generate(rules.MethodRolled, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll ability scores")
	}

	abilityRolls := generated.Rolls
	values := generated.Scores.Values()
	rolls := make([]dicesession.DiceRoll, len(abilityRolls))
	for i, r := range abilityRolls {
		rolls[i] = dicesession.DiceRoll{
			RollID:      o.idGen.Generate(),
			Notation:    fmt.Sprintf("%dd6", rules.AbilityDiceCount),
			Dice:        r.Kept,
			Dropped:     r.Dropped,
			Total:       r.Total,
			Description: fmt.Sprintf("Ability score %d (4d6 drop lowest)", i+1),
		}
	}

	createOutput, err := o.diceSessionRepo.Create(ctx, dicesession.CreateInput{
		EntityID: input.EntityID,
		Context:  dicesession.ContextAbilityScores,
		Rolls:    rolls,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ability score session")
	}

	slog.Info("ability scores rolled",
		"entity_id", input.EntityID,
		"values", values,
	)

	return &RollAbilityScoresOutput{
		Rolls:   abilityRolls,
		Values:  values,
		Scores:  generated.Scores,
		Session: createOutput.Session,
	}, nil
}

// RollStartingGold computes a starting purse. Rolled purses are recorded
// under the starting gold context; a fixed purse records nothing.
func (o *orchestrator) RollStartingGold(ctx context.Context, input *RollStartingGoldInput) (*RollStartingGoldOutput, error) {
	if input == nil || input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}

	gold, err := rules.ComputeStartingGold(input.Class, input.Background, input.TookPack, o.roller)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute starting gold")
	}

	out := &RollStartingGoldOutput{StartingGold: gold}
	if !gold.Rolled {
		return out, nil
	}

	rolls := make([]dicesession.DiceRoll, len(gold.Rolls))
	for i, r := range gold.Rolls {
		rolls[i] = dicesession.DiceRoll{
			RollID:      o.idGen.Generate(),
			Notation:    r.Formula.String(),
			Dice:        r.Rolls,
			Total:       r.Gold,
			Description: "starting gold",
		}
	}

	createOutput, err := o.diceSessionRepo.Create(ctx, dicesession.CreateInput{
		EntityID: input.EntityID,
		Context:  dicesession.ContextStartingGold,
		Rolls:    rolls,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create starting gold session")
	}
	out.Session = createOutput.Session

	slog.Info("starting gold rolled",
		"entity_id", input.EntityID,
		"gold", gold.Gold,
		"details", gold.Details,
	)

	return out, nil
}
