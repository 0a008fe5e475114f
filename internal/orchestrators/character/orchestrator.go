// Package character implements the character orchestrator
package character

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-charbuilder/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-charbuilder/internal/errors"
	"github.com/KirkDiggler/rpg-charbuilder/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-charbuilder/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-charbuilder/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-charbuilder/internal/reference"
	characterrepo "github.com/KirkDiggler/rpg-charbuilder/internal/repositories/character"
	draftrepo "github.com/KirkDiggler/rpg-charbuilder/internal/repositories/character_draft"
	"github.com/KirkDiggler/rpg-charbuilder/internal/rules"
	"github.com/KirkDiggler/rpg-charbuilder/internal/services/character"
)

// MaxNameLength bounds character names
const MaxNameLength = 64

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo      characterrepo.Repository
	CharacterDraftRepo draftrepo.Repository
	DiceService        dice.Service
	Catalog            *reference.Catalog
	EventBus           events.EventBus
	DraftIDGenerator   idgen.Generator
	CharacterIDGen     idgen.Generator
	// Clock defaults to the system clock
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.CharacterDraftRepo == nil {
		vb.RequiredField("CharacterDraftRepo")
	}
	if c.DiceService == nil {
		vb.RequiredField("DiceService")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.DraftIDGenerator == nil {
		vb.RequiredField("DraftIDGenerator")
	}
	if c.CharacterIDGen == nil {
		vb.RequiredField("CharacterIDGen")
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	characterRepo      characterrepo.Repository
	characterDraftRepo draftrepo.Repository
	diceService        dice.Service
	catalog            *reference.Catalog
	eventBus           events.EventBus
	draftIDGen         idgen.Generator
	characterIDGen     idgen.Generator
	clock              clock.Clock
	// generator serves the methods that roll nothing; rolled sets go
	// through the dice service so the session is recorded
	generator *rules.Generator
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &Orchestrator{
		characterRepo:      cfg.CharacterRepo,
		characterDraftRepo: cfg.CharacterDraftRepo,
		diceService:        cfg.DiceService,
		catalog:            cfg.Catalog,
		eventBus:           cfg.EventBus,
		draftIDGen:         cfg.DraftIDGenerator,
		characterIDGen:     cfg.CharacterIDGen,
		clock:              clk,
		generator:          rules.NewGenerator(nil),
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ character.Service = (*Orchestrator)(nil)

func (o *Orchestrator) now() int64 {
	return o.clock.Now().Unix()
}

// loadDraft validates the ID and fetches the draft
func (o *Orchestrator) loadDraft(ctx context.Context, draftID string) (*dnd5e.CharacterDraft, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draft_id", draftID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.characterDraftRepo.Get(ctx, draftrepo.GetInput{ID: draftID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get draft").WithMeta("draft_id", draftID)
	}
	return out.Draft, nil
}

// saveDraft stamps and stores a modified draft
func (o *Orchestrator) saveDraft(ctx context.Context, draft *dnd5e.CharacterDraft) (*dnd5e.CharacterDraft, error) {
	draft.UpdatedAt = o.now()

	out, err := o.characterDraftRepo.Update(ctx, draftrepo.UpdateInput{Draft: draft})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update draft").WithMeta("draft_id", draft.ID)
	}
	return out.Draft, nil
}

// Draft lifecycle methods

// CreateDraft starts a new draft for a player, replacing any previous one
func (o *Orchestrator) CreateDraft(ctx context.Context, input *character.CreateDraftInput) (*character.CreateDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateMaxLength("name", input.Name, MaxNameLength, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	now := o.now()
	draft := &dnd5e.CharacterDraft{
		ID:        o.draftIDGen.Generate(),
		PlayerID:  input.PlayerID,
		Name:      strings.TrimSpace(input.Name),
		CreatedAt: now,
		UpdatedAt: now,
	}

	out, err := o.characterDraftRepo.Create(ctx, draftrepo.CreateInput{Draft: draft})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create draft")
	}

	slog.Info("draft created",
		"draft_id", out.Draft.ID,
		"player_id", out.Draft.PlayerID,
		"replaced_draft_id", out.ReplacedDraftID,
	)
	o.publish(ctx, EventDraftCreated, dnd5e.Player(input.PlayerID), out.Draft)

	return &character.CreateDraftOutput{
		Draft:           out.Draft,
		ReplacedDraftID: out.ReplacedDraftID,
	}, nil
}

// GetDraft retrieves a character draft by ID
func (o *Orchestrator) GetDraft(ctx context.Context, input *character.GetDraftInput) (*character.GetDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	return &character.GetDraftOutput{Draft: draft}, nil
}

// GetDraftByPlayer retrieves the player's current draft
func (o *Orchestrator) GetDraftByPlayer(ctx context.Context, input *character.GetDraftByPlayerInput) (*character.GetDraftByPlayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.characterDraftRepo.GetByPlayerID(ctx, draftrepo.GetByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get player draft").WithMeta("player_id", input.PlayerID)
	}

	return &character.GetDraftByPlayerOutput{Draft: out.Draft}, nil
}

// DeleteDraft deletes a character draft
func (o *Orchestrator) DeleteDraft(ctx context.Context, input *character.DeleteDraftInput) (*character.DeleteDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draft_id", input.DraftID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.characterDraftRepo.Delete(ctx, draftrepo.DeleteInput{ID: input.DraftID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete draft").WithMeta("draft_id", input.DraftID)
	}

	slog.Info("draft deleted", "draft_id", input.DraftID)

	return &character.DeleteDraftOutput{}, nil
}

// Section update methods

// UpdateName names the draft
func (o *Orchestrator) UpdateName(ctx context.Context, input *character.UpdateNameInput) (*character.UpdateNameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	name := strings.TrimSpace(input.Name)
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", name, vb)
	errors.ValidateMaxLength("name", name, MaxNameLength, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}
	draft.Name = name

	saved, err := o.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}
	return &character.UpdateNameOutput{Draft: saved}, nil
}

// UpdateRace validates the race against the catalog and stores it
func (o *Orchestrator) UpdateRace(ctx context.Context, input *character.UpdateRaceInput) (*character.UpdateRaceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	race, ok := o.catalog.Race(input.Race)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown race %q", input.Race).WithMeta("race", input.Race)
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}
	draft.Race = race.Race
	draft.Subrace = strings.TrimSpace(input.Subrace)

	saved, err := o.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}
	return &character.UpdateRaceOutput{Draft: saved, Race: race}, nil
}

// UpdateClass validates the class and stores it. Spells chosen for a
// different class are cleared.
func (o *Orchestrator) UpdateClass(ctx context.Context, input *character.UpdateClassInput) (*character.UpdateClassOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	class, ok := o.catalog.Class(input.Class)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown class %q", input.Class).WithMeta("class", input.Class)
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	cleared := draft.Class != class.Class && len(draft.Spells) > 0
	if cleared {
		draft.Spells = nil
	}
	draft.Class = class.Class

	saved, err := o.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}
	return &character.UpdateClassOutput{Draft: saved, Class: class, SpellsCleared: cleared}, nil
}

// UpdateBackground validates the background and stores it
func (o *Orchestrator) UpdateBackground(ctx context.Context, input *character.UpdateBackgroundInput) (*character.UpdateBackgroundOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	background, ok := o.catalog.Background(input.Background)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown background %q", input.Background).
			WithMeta("background", input.Background)
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}
	draft.Background = background.Background

	saved, err := o.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}
	return &character.UpdateBackgroundOutput{Draft: saved, Background: background}, nil
}

// UpdateAlignment stores one of the nine alignments
func (o *Orchestrator) UpdateAlignment(ctx context.Context, input *character.UpdateAlignmentInput) (*character.UpdateAlignmentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	alignment, ok := rules.ParseAlignment(input.Alignment)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown alignment %q", input.Alignment)
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}
	draft.Alignment = alignment

	saved, err := o.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}
	return &character.UpdateAlignmentOutput{Draft: saved}, nil
}
