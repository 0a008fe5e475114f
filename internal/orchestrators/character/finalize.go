package character

import (
	"context"
	"log/slog"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/rpg-charbuilder/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-charbuilder/internal/errors"
	"github.com/KirkDiggler/rpg-charbuilder/internal/orchestrators/dice"
	characterrepo "github.com/KirkDiggler/rpg-charbuilder/internal/repositories/character"
	draftrepo "github.com/KirkDiggler/rpg-charbuilder/internal/repositories/character_draft"
	"github.com/KirkDiggler/rpg-charbuilder/internal/rules"
	"github.com/KirkDiggler/rpg-charbuilder/internal/services/character"
)

var tracer = otel.Tracer("github.com/KirkDiggler/rpg-charbuilder/internal/orchestrators/character")

// sheet is the computed part of a draft shared by preview and finalize
type sheet struct {
	race       rules.RaceInfo
	class      rules.ClassInfo
	background rules.BackgroundInfo
	scores     rules.AbilityScores
	stats      rules.DerivedCombatStats
	profile    rules.ClassSpellProfile
}

// compute derives whatever the draft already allows. Missing race adds no
// bonuses; a missing class derives with the default hit die.
func (o *Orchestrator) compute(draft *dnd5e.CharacterDraft) sheet {
	var sh sheet
	sh.scores = draft.AbilityScores

	if race, ok := o.catalog.Race(string(draft.Race)); ok && draft.Race != "" {
		sh.race = race
		sh.scores = rules.ApplyRacialBonuses(draft.AbilityScores, race)
	}
	if class, ok := o.catalog.Class(string(draft.Class)); ok && draft.Class != "" {
		sh.class = class
	}
	if background, ok := o.catalog.Background(string(draft.Background)); ok && draft.Background != "" {
		sh.background = background
	}

	sh.stats = rules.Derive(sh.scores, draft.Class, CreationLevel)
	if sh.stats.HitDieDefaulted && draft.Class != "" {
		slog.Warn("unknown class, using default hit die",
			"draft_id", draft.ID,
			"class", draft.Class,
			"hit_die", rules.DefaultHitDie,
		)
	}
	sh.profile = o.catalog.SpellProfile(draft.Class, CreationLevel)
	return sh
}

// PreviewDraft computes what the draft would finalize into without storing
// anything
func (o *Orchestrator) PreviewDraft(ctx context.Context, input *character.PreviewDraftInput) (*character.PreviewDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	sh := o.compute(draft)
	preview := &character.DraftPreview{
		Draft:         draft,
		AbilityScores: sh.scores,
		Stats:         sh.stats,
		SpellProfile:  sh.profile,
		Missing:       draft.Missing(),
	}

	if ability := draft.Class.SpellcastingAbility(); ability != "" {
		score := sh.scores.Get(ability)
		preview.SpellSaveDC = rules.SpellSaveDC(score, CreationLevel)
		preview.SpellAttackBonus = rules.SpellAttackBonus(score, CreationLevel)
	}

	if draft.Method == rules.MethodPointBuy {
		if pb, rejection := rules.PointBuyFrom(draft.AbilityScores); rejection == nil {
			remaining := pb.Remaining()
			preview.PointBuyRemaining = &remaining
		}
	}

	return &character.PreviewDraftOutput{Preview: preview}, nil
}

// validateForFinalize checks completeness and the method rules
func (o *Orchestrator) validateForFinalize(draft *dnd5e.CharacterDraft, sh sheet) error {
	if missing := draft.Missing(); len(missing) > 0 {
		return errors.FailedPrecondition("draft is incomplete").
			WithMeta("draft_id", draft.ID).
			WithMeta("missing", missing)
	}

	if draft.Method == rules.MethodPointBuy {
		pb, rejection := rules.PointBuyFrom(draft.AbilityScores)
		if rejection != nil {
			return errors.FailedPreconditionf("point buy scores are invalid: %s", rejection.Message)
		}
		if !pb.Complete() {
			return errors.FailedPreconditionf("point buy has %d points left to spend", pb.Remaining()).
				WithMeta("remaining", pb.Remaining())
		}
	}

	if sh.race.Race == "" {
		return errors.FailedPreconditionf("race %q is no longer available", draft.Race)
	}
	if sh.class.Class == "" {
		return errors.FailedPreconditionf("class %q is no longer available", draft.Class)
	}
	if sh.background.Background == "" {
		return errors.FailedPreconditionf("background %q is no longer available", draft.Background)
	}

	if err := rules.ValidateSpellSelection(sh.profile, draft.Spells); err != nil {
		return errors.WrapWithCode(err, errors.CodeFailedPrecondition, "spell selection no longer fits the class")
	}

	return nil
}

// buildSpellcasting fills the spell block for casters; nil otherwise
func buildSpellcasting(draft *dnd5e.CharacterDraft, sh sheet) *dnd5e.Spellcasting {
	if !sh.profile.IsCaster() || !sh.class.IsCaster() {
		return nil
	}

	ability := sh.class.SpellcastingAbility
	score := sh.scores.Get(ability)
	known, prepared := rules.PrepareSpells(sh.profile.Type, draft.SpellKeys(false), sh.scores.Intelligence)

	return &dnd5e.Spellcasting{
		Ability:       ability,
		Type:          sh.profile.Type,
		SaveDC:        rules.SpellSaveDC(score, CreationLevel),
		AttackBonus:   rules.SpellAttackBonus(score, CreationLevel),
		MaxSpellLevel: sh.profile.MaxSpellLevel,
		SpellSlots:    sh.profile.SpellSlots,
		Cantrips:      draft.SpellKeys(true),
		Known:         known,
		Prepared:      prepared,
	}
}

// FinalizeDraft turns a complete draft into a stored character and removes
// the draft
func (o *Orchestrator) FinalizeDraft(ctx context.Context, input *character.FinalizeDraftInput) (*character.FinalizeDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := tracer.Start(ctx, "character.FinalizeDraft",
		trace.WithAttributes(attribute.String("draft.id", input.DraftID)))
	defer span.End()

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	sh := o.compute(draft)
	if err := o.validateForFinalize(draft, sh); err != nil {
		return nil, err
	}

	var packItems []rules.Item
	if draft.TookPack() {
		pack, ok := o.catalog.EquipmentPack(draft.EquipmentPack)
		if !ok {
			return nil, errors.FailedPreconditionf("equipment pack %q is no longer available", draft.EquipmentPack)
		}
		packItems = pack.Items
	}
	inventory := rules.MergeInventory(packItems, sh.background.Equipment, draft.ExtraEquipment)

	gold, err := o.diceService.RollStartingGold(ctx, &dice.RollStartingGoldInput{
		EntityID:   draft.ID,
		Class:      sh.class,
		Background: sh.background,
		TookPack:   draft.TookPack(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to determine starting gold")
	}

	now := o.now()
	char := &dnd5e.Character{
		ID:                o.characterIDGen.Generate(),
		PlayerID:          draft.PlayerID,
		Name:              draft.Name,
		Race:              sh.race.Race,
		Subrace:           draft.Subrace,
		Class:             sh.class.Class,
		Background:        sh.background.Background,
		Alignment:         draft.Alignment,
		Level:             CreationLevel,
		Method:            draft.Method,
		BaseAbilityScores: draft.AbilityScores,
		AbilityScores:     sh.scores,
		Stats:             sh.stats,
		CurrentHP:         sh.stats.MaxHitPoints,
		Skills:            slices.Clone(sh.background.Skills),
		Inventory:         inventory,
		Spellcasting:      buildSpellcasting(draft, sh),
		Currency:          dnd5e.Currency{Gold: gold.StartingGold.Gold},
		GoldRollDetails:   gold.StartingGold.Details,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if _, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: char}); err != nil {
		return nil, errors.Wrap(err, "failed to save character").WithMeta("draft_id", draft.ID)
	}

	span.SetAttributes(attribute.String("character.id", char.ID))

	deleted := true
	if _, err := o.characterDraftRepo.Delete(ctx, draftrepo.DeleteInput{ID: draft.ID}); err != nil {
		deleted = false
		slog.Warn("character saved but draft not deleted",
			"draft_id", draft.ID,
			"character_id", char.ID,
			"error", err,
		)
	}

	slog.Info("draft finalized",
		"draft_id", draft.ID,
		"character_id", char.ID,
		"player_id", char.PlayerID,
		"class", char.Class,
		"race", char.Race,
	)
	o.publish(ctx, EventCharacterFinalized, dnd5e.Player(char.PlayerID), char)

	return &character.FinalizeDraftOutput{Character: char, DraftDeleted: deleted}, nil
}
