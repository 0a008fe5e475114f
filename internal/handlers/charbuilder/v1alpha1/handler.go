// Package v1alpha1 serves the character builder over gRPC with a JSON codec
package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/rpg-charbuilder/internal/errors"
	"github.com/KirkDiggler/rpg-charbuilder/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-charbuilder/internal/services/character"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	CharacterService character.Service
	DiceService      dice.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.CharacterService == nil {
		vb.RequiredField("CharacterService")
	}
	if c.DiceService == nil {
		vb.RequiredField("DiceService")
	}
	return vb.Build()
}

// Handler implements CharacterBuilderServer
type Handler struct {
	characterService character.Service
	diceService      dice.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		characterService: cfg.CharacterService,
		diceService:      cfg.DiceService,
	}, nil
}

var _ CharacterBuilderServer = (*Handler)(nil)

// serve runs a service call and converts its error to a gRPC status
func serve[Req, Resp any](ctx context.Context, req *Req, call func(context.Context, *Req) (*Resp, error)) (*Resp, error) {
	if req == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("request is required"))
	}
	out, err := call(ctx, req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

// Draft lifecycle

// CreateDraft forwards to the character service
func (h *Handler) CreateDraft(ctx context.Context, req *character.CreateDraftInput) (*character.CreateDraftOutput, error) {
	return serve(ctx, req, h.characterService.CreateDraft)
}

// GetDraft forwards to the character service
func (h *Handler) GetDraft(ctx context.Context, req *character.GetDraftInput) (*character.GetDraftOutput, error) {
	return serve(ctx, req, h.characterService.GetDraft)
}

// GetDraftByPlayer forwards to the character service
func (h *Handler) GetDraftByPlayer(ctx context.Context, req *character.GetDraftByPlayerInput) (*character.GetDraftByPlayerOutput, error) {
	return serve(ctx, req, h.characterService.GetDraftByPlayer)
}

// DeleteDraft forwards to the character service
func (h *Handler) DeleteDraft(ctx context.Context, req *character.DeleteDraftInput) (*character.DeleteDraftOutput, error) {
	return serve(ctx, req, h.characterService.DeleteDraft)
}

// Section updates

// UpdateName forwards to the character service
func (h *Handler) UpdateName(ctx context.Context, req *character.UpdateNameInput) (*character.UpdateNameOutput, error) {
	return serve(ctx, req, h.characterService.UpdateName)
}

// UpdateRace forwards to the character service
func (h *Handler) UpdateRace(ctx context.Context, req *character.UpdateRaceInput) (*character.UpdateRaceOutput, error) {
	return serve(ctx, req, h.characterService.UpdateRace)
}

// UpdateClass forwards to the character service
func (h *Handler) UpdateClass(ctx context.Context, req *character.UpdateClassInput) (*character.UpdateClassOutput, error) {
	return serve(ctx, req, h.characterService.UpdateClass)
}

// UpdateBackground forwards to the character service
func (h *Handler) UpdateBackground(ctx context.Context, req *character.UpdateBackgroundInput) (*character.UpdateBackgroundOutput, error) {
	return serve(ctx, req, h.characterService.UpdateBackground)
}

// UpdateAlignment forwards to the character service
func (h *Handler) UpdateAlignment(ctx context.Context, req *character.UpdateAlignmentInput) (*character.UpdateAlignmentOutput, error) {
	return serve(ctx, req, h.characterService.UpdateAlignment)
}

// Ability scores

// GenerateAbilityScores forwards to the character service
func (h *Handler) GenerateAbilityScores(ctx context.Context, req *character.GenerateAbilityScoresInput) (*character.GenerateAbilityScoresOutput, error) {
	return serve(ctx, req, h.characterService.GenerateAbilityScores)
}

// AdjustPointBuy forwards to the character service
func (h *Handler) AdjustPointBuy(ctx context.Context, req *character.AdjustPointBuyInput) (*character.AdjustPointBuyOutput, error) {
	return serve(ctx, req, h.characterService.AdjustPointBuy)
}

// SwapAbilityScores forwards to the character service
func (h *Handler) SwapAbilityScores(ctx context.Context, req *character.SwapAbilityScoresInput) (*character.SwapAbilityScoresOutput, error) {
	return serve(ctx, req, h.characterService.SwapAbilityScores)
}

// Spells and equipment

// UpdateSpells forwards to the character service
func (h *Handler) UpdateSpells(ctx context.Context, req *character.UpdateSpellsInput) (*character.UpdateSpellsOutput, error) {
	return serve(ctx, req, h.characterService.UpdateSpells)
}

// SelectEquipmentPack forwards to the character service
func (h *Handler) SelectEquipmentPack(ctx context.Context, req *character.SelectEquipmentPackInput) (*character.SelectEquipmentPackOutput, error) {
	return serve(ctx, req, h.characterService.SelectEquipmentPack)
}

// Preview and finalization

// PreviewDraft forwards to the character service
func (h *Handler) PreviewDraft(ctx context.Context, req *character.PreviewDraftInput) (*character.PreviewDraftOutput, error) {
	return serve(ctx, req, h.characterService.PreviewDraft)
}

// FinalizeDraft forwards to the character service
func (h *Handler) FinalizeDraft(ctx context.Context, req *character.FinalizeDraftInput) (*character.FinalizeDraftOutput, error) {
	return serve(ctx, req, h.characterService.FinalizeDraft)
}

// Completed characters

// GetCharacter forwards to the character service
func (h *Handler) GetCharacter(ctx context.Context, req *character.GetCharacterInput) (*character.GetCharacterOutput, error) {
	return serve(ctx, req, h.characterService.GetCharacter)
}

// ListCharacters forwards to the character service
func (h *Handler) ListCharacters(ctx context.Context, req *character.ListCharactersInput) (*character.ListCharactersOutput, error) {
	return serve(ctx, req, h.characterService.ListCharacters)
}

// DeleteCharacter forwards to the character service
func (h *Handler) DeleteCharacter(ctx context.Context, req *character.DeleteCharacterInput) (*character.DeleteCharacterOutput, error) {
	return serve(ctx, req, h.characterService.DeleteCharacter)
}

// Reference data

// GetSpellProfile forwards to the character service
func (h *Handler) GetSpellProfile(ctx context.Context, req *character.GetSpellProfileInput) (*character.GetSpellProfileOutput, error) {
	return serve(ctx, req, h.characterService.GetSpellProfile)
}

// ListRaces forwards to the character service
func (h *Handler) ListRaces(ctx context.Context, req *character.ListRacesInput) (*character.ListRacesOutput, error) {
	return serve(ctx, req, h.characterService.ListRaces)
}

// ListClasses forwards to the character service
func (h *Handler) ListClasses(ctx context.Context, req *character.ListClassesInput) (*character.ListClassesOutput, error) {
	return serve(ctx, req, h.characterService.ListClasses)
}

// ListBackgrounds forwards to the character service
func (h *Handler) ListBackgrounds(ctx context.Context, req *character.ListBackgroundsInput) (*character.ListBackgroundsOutput, error) {
	return serve(ctx, req, h.characterService.ListBackgrounds)
}

// ListEquipmentPacks forwards to the character service
func (h *Handler) ListEquipmentPacks(ctx context.Context, req *character.ListEquipmentPacksInput) (*character.ListEquipmentPacksOutput, error) {
	return serve(ctx, req, h.characterService.ListEquipmentPacks)
}

// ListSpells forwards to the character service
func (h *Handler) ListSpells(ctx context.Context, req *character.ListSpellsInput) (*character.ListSpellsOutput, error) {
	return serve(ctx, req, h.characterService.ListSpells)
}
