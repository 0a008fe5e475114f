package character

import (
	"context"

	"github.com/KirkDiggler/rpg-charbuilder/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-charbuilder/internal/errors"
	"github.com/KirkDiggler/rpg-charbuilder/internal/reference"
	characterrepo "github.com/KirkDiggler/rpg-charbuilder/internal/repositories/character"
	"github.com/KirkDiggler/rpg-charbuilder/internal/rules"
	"github.com/KirkDiggler/rpg-charbuilder/internal/services/character"
)

// MaxPageSize caps ListCharacters
const MaxPageSize = 100

// GetCharacter retrieves a finalized character
func (o *Orchestrator) GetCharacter(ctx context.Context, input *character.GetCharacterInput) (*character.GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", input.CharacterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character").WithMeta("character_id", input.CharacterID)
	}

	return &character.GetCharacterOutput{Character: out.Character}, nil
}

// ListCharacters pages through a player's characters, oldest first
func (o *Orchestrator) ListCharacters(ctx context.Context, input *character.ListCharactersInput) (*character.ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRange("page_size", input.PageSize, 0, MaxPageSize, vb)
	if input.Offset < 0 {
		vb.Field("offset", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.characterRepo.ListByPlayerID(ctx, characterrepo.ListByPlayerIDInput{
		PlayerID: input.PlayerID,
		Limit:    input.PageSize,
		Offset:   input.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters").WithMeta("player_id", input.PlayerID)
	}

	return &character.ListCharactersOutput{
		Characters: out.Characters,
		Total:      out.Total,
	}, nil
}

// DeleteCharacter removes a finalized character
func (o *Orchestrator) DeleteCharacter(ctx context.Context, input *character.DeleteCharacterInput) (*character.DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	got, err := o.GetCharacter(ctx, &character.GetCharacterInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, err
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete character").WithMeta("character_id", input.CharacterID)
	}

	o.publish(ctx, EventCharacterDeleted, dnd5e.Player(got.Character.PlayerID), got.Character)

	return &character.DeleteCharacterOutput{}, nil
}

// Reference data

// GetSpellProfile resolves a class and level. Unknown classes and
// non-casters get an empty profile.
func (o *Orchestrator) GetSpellProfile(_ context.Context, input *character.GetSpellProfileInput) (*character.GetSpellProfileOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	class, _ := rules.ParseClass(input.Class)
	level := input.Level
	if level == 0 {
		level = CreationLevel
	}

	return &character.GetSpellProfileOutput{
		Profile: o.catalog.SpellProfile(class, rules.ClampLevel(level)),
	}, nil
}

// ListRaces lists every race
func (o *Orchestrator) ListRaces(_ context.Context, _ *character.ListRacesInput) (*character.ListRacesOutput, error) {
	return &character.ListRacesOutput{Races: o.catalog.Races()}, nil
}

// ListClasses lists every class
func (o *Orchestrator) ListClasses(_ context.Context, _ *character.ListClassesInput) (*character.ListClassesOutput, error) {
	return &character.ListClassesOutput{Classes: o.catalog.Classes()}, nil
}

// ListBackgrounds lists every background
func (o *Orchestrator) ListBackgrounds(_ context.Context, _ *character.ListBackgroundsInput) (*character.ListBackgroundsOutput, error) {
	return &character.ListBackgroundsOutput{Backgrounds: o.catalog.Backgrounds()}, nil
}

// ListEquipmentPacks lists every equipment pack
func (o *Orchestrator) ListEquipmentPacks(_ context.Context, _ *character.ListEquipmentPacksInput) (*character.ListEquipmentPacksOutput, error) {
	return &character.ListEquipmentPacksOutput{Packs: o.catalog.EquipmentPacks()}, nil
}

// ListSpells lists spells from the dnd5e-api, optionally by class and level
func (o *Orchestrator) ListSpells(ctx context.Context, input *character.ListSpellsInput) (*character.ListSpellsOutput, error) {
	if input == nil {
		input = &character.ListSpellsInput{}
	}

	var class rules.Class
	if input.Class != "" {
		parsed, ok := rules.ParseClass(input.Class)
		if !ok {
			return nil, errors.InvalidArgumentf("unknown class %q", input.Class)
		}
		class = parsed
	}
	if input.Level != nil && (*input.Level < 0 || *input.Level > 9) {
		return nil, errors.InvalidArgumentf("spell level must be between 0 and 9, got %d", *input.Level)
	}

	spells, err := o.catalog.Spells(ctx, reference.ListSpellsInput{Class: class, Level: input.Level})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list spells")
	}

	return &character.ListSpellsOutput{Spells: spells}, nil
}
