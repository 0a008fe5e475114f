package character

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-charbuilder/internal/errors"
	"github.com/KirkDiggler/rpg-charbuilder/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-charbuilder/internal/rules"
	"github.com/KirkDiggler/rpg-charbuilder/internal/services/character"
)

// GenerateAbilityScores applies a generation method to the draft. Unknown
// methods fall back to rolled and say so in the output.
func (o *Orchestrator) GenerateAbilityScores(ctx context.Context, input *character.GenerateAbilityScoresInput) (*character.GenerateAbilityScoresOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	method, known := rules.ParseMethod(input.Method)
	if !known {
		slog.Warn("unknown generation method, falling back",
			"draft_id", input.DraftID,
			"method", input.Method,
			"fallback", method,
			"supported", rules.Methods(),
		)
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	out := &character.GenerateAbilityScoresOutput{
		Method:         method,
		MethodFallback: !known,
	}

	draft.RolledPool = nil
	draft.RollSessionID = ""

	switch method {
	case rules.MethodRolled:
		rolled, err := o.diceService.RollAbilityScores(ctx, &dice.RollAbilityScoresInput{EntityID: draft.ID})
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll ability scores")
		}
		draft.AbilityScores = rolled.Scores
		draft.RolledPool = rolled.Values
		if rolled.Session != nil {
			draft.RollSessionID = rolled.Session.EntityID + ":" + rolled.Session.Context
		}
		out.Rolls = rolled.Rolls
	default:
		generated, err := o.generator.Generate(method, input.Assignment)
		if err != nil {
			return nil, err
		}
		draft.AbilityScores = generated.Scores
		if method == rules.MethodPointBuy {
			remaining := rules.NewPointBuy().Remaining()
			out.PointBuyRemaining = &remaining
		}
	}
	draft.Method = method

	saved, err := o.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}
	out.Draft = saved

	slog.Info("ability scores generated",
		"draft_id", draft.ID,
		"method", method,
	)

	return out, nil
}

// AdjustPointBuy sets or steps one ability of a point buy draft. A refused
// change is reported through Accepted and Rejection, with the draft left as
// it was.
func (o *Orchestrator) AdjustPointBuy(ctx context.Context, input *character.AdjustPointBuyInput) (*character.AdjustPointBuyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if (input.Score == 0) == (input.Delta == 0) {
		return nil, errors.NewValidationBuilder().
			Field("score", "set exactly one of score or delta").
			Build()
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}
	if draft.Method != rules.MethodPointBuy {
		return nil, errors.FailedPreconditionf("draft uses %q, not point buy", draft.Method).
			WithMeta("draft_id", draft.ID)
	}

	current, rejection := rules.PointBuyFrom(draft.AbilityScores)
	if rejection != nil {
		return nil, errors.FailedPreconditionf("stored point buy scores are invalid: %s", rejection.Message).
			WithMeta("draft_id", draft.ID)
	}

	ability, ok := rules.ParseAbility(input.Ability)
	if !ok {
		return &character.AdjustPointBuyOutput{
			Draft:     draft,
			Rejection: &rules.Rejection{Reason: rules.RejectUnknownAbility, Message: "unknown ability " + input.Ability},
			Remaining: current.Remaining(),
		}, nil
	}

	var next rules.PointBuy
	if input.Delta != 0 {
		next, rejection = current.Adjust(ability, input.Delta)
	} else {
		next, rejection = current.Set(ability, input.Score)
	}
	if rejection != nil {
		slog.Debug("point buy change rejected",
			"draft_id", draft.ID,
			"ability", ability,
			"score", input.Score,
			"delta", input.Delta,
			"reason", rejection.Reason,
		)
		return &character.AdjustPointBuyOutput{
			Draft:     draft,
			Rejection: rejection,
			Remaining: current.Remaining(),
		}, nil
	}

	draft.AbilityScores = next.Scores()
	saved, err := o.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}

	return &character.AdjustPointBuyOutput{
		Draft:     saved,
		Accepted:  true,
		Remaining: next.Remaining(),
	}, nil
}

// SwapAbilityScores exchanges two values of any generated set
func (o *Orchestrator) SwapAbilityScores(ctx context.Context, input *character.SwapAbilityScoresInput) (*character.SwapAbilityScoresOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	first, ok := rules.ParseAbility(input.First)
	if !ok {
		vb.Fieldf("first", "unknown ability %q", input.First)
	}
	second, ok := rules.ParseAbility(input.Second)
	if !ok {
		vb.Fieldf("second", "unknown ability %q", input.Second)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}
	if !draft.HasAbilityScores() {
		return nil, errors.FailedPrecondition("ability scores have not been generated").
			WithMeta("draft_id", draft.ID)
	}

	draft.AbilityScores = draft.AbilityScores.Swap(first, second)

	saved, err := o.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}
	return &character.SwapAbilityScoresOutput{Draft: saved}, nil
}
