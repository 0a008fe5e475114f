package character

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/KirkDiggler/rpg-charbuilder/internal/errors"
	"github.com/KirkDiggler/rpg-charbuilder/internal/rules"
	"github.com/KirkDiggler/rpg-charbuilder/internal/services/character"
)

// CreationLevel is the level every new character starts at
const CreationLevel = 1

// UpdateSpells replaces the spell selection after checking it against the
// class profile. With an online catalog, spell levels come from the class
// spell list and unknown keys are rejected; offline, the given levels are
// trusted.
func (o *Orchestrator) UpdateSpells(ctx context.Context, input *character.UpdateSpellsInput) (*character.UpdateSpellsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}
	if draft.Class == "" {
		return nil, errors.FailedPrecondition("choose a class before selecting spells").
			WithMeta("draft_id", draft.ID)
	}

	profile := o.catalog.SpellProfile(draft.Class, CreationLevel)

	selection := make([]rules.SpellRef, len(input.Spells))
	for i, s := range input.Spells {
		selection[i] = rules.SpellRef{Key: strings.TrimSpace(s.Key), Level: s.Level}
	}

	if o.catalog.Online() && profile.IsCaster() && len(selection) > 0 {
		levels, err := o.catalog.SpellLevels(ctx, draft.Class, profile.MaxSpellLevel)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load class spell list")
		}

		vb := errors.NewValidationBuilder()
		for i, s := range selection {
			level, ok := levels[s.Key]
			if !ok {
				vb.Fieldf("spells", "%s is not on the %s spell list", s.Key, draft.Class)
				continue
			}
			selection[i].Level = level
		}
		if err := vb.Build(); err != nil {
			return nil, err
		}
	}

	if err := rules.ValidateSpellSelection(profile, selection); err != nil {
		return nil, err
	}

	draft.Spells = selection
	if len(selection) == 0 {
		draft.Spells = nil
	}

	saved, err := o.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}

	slog.Info("spells selected",
		"draft_id", draft.ID,
		"class", draft.Class,
		"count", len(selection),
	)

	return &character.UpdateSpellsOutput{Draft: saved, Profile: profile}, nil
}

// SelectEquipmentPack records a pack choice, or rules.NoPackKey to roll
// starting gold at finalization instead
func (o *Orchestrator) SelectEquipmentPack(ctx context.Context, input *character.SelectEquipmentPackInput) (*character.SelectEquipmentPackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	key := rules.ParsePackKey(input.Pack)
	var pack *rules.EquipmentPack
	if key != rules.NoPackKey {
		found, ok := o.catalog.EquipmentPack(key)
		if !ok {
			return nil, errors.InvalidArgumentf("unknown equipment pack %q", input.Pack)
		}
		key = found.Key
		pack = &found
	}

	vb := errors.NewValidationBuilder()
	for i, item := range input.ExtraEquipment {
		if strings.TrimSpace(item.Name) == "" {
			vb.Fieldf("extra_equipment", "item %d has no name", i)
		}
		if item.Quantity < 0 {
			vb.Fieldf("extra_equipment", "item %q has a negative quantity", item.Name)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}
	draft.EquipmentPack = key
	draft.ExtraEquipment = slices.Clone(input.ExtraEquipment)

	saved, err := o.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}
	return &character.SelectEquipmentPackOutput{Draft: saved, Pack: pack}, nil
}
