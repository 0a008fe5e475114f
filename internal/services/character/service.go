// Package character defines the interface for character operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/rpg-charbuilder/internal/services/character Service

import (
	"context"

	"github.com/KirkDiggler/rpg-charbuilder/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-charbuilder/internal/reference"
	"github.com/KirkDiggler/rpg-charbuilder/internal/rules"
)

// Service defines the interface for character operations
type Service interface {
	// Draft lifecycle
	CreateDraft(ctx context.Context, input *CreateDraftInput) (*CreateDraftOutput, error)
	GetDraft(ctx context.Context, input *GetDraftInput) (*GetDraftOutput, error)
	GetDraftByPlayer(ctx context.Context, input *GetDraftByPlayerInput) (*GetDraftByPlayerOutput, error)
	DeleteDraft(ctx context.Context, input *DeleteDraftInput) (*DeleteDraftOutput, error)

	// Section updates
	UpdateName(ctx context.Context, input *UpdateNameInput) (*UpdateNameOutput, error)
	UpdateRace(ctx context.Context, input *UpdateRaceInput) (*UpdateRaceOutput, error)
	UpdateClass(ctx context.Context, input *UpdateClassInput) (*UpdateClassOutput, error)
	UpdateBackground(ctx context.Context, input *UpdateBackgroundInput) (*UpdateBackgroundOutput, error)
	UpdateAlignment(ctx context.Context, input *UpdateAlignmentInput) (*UpdateAlignmentOutput, error)

	// Ability scores
	GenerateAbilityScores(ctx context.Context, input *GenerateAbilityScoresInput) (*GenerateAbilityScoresOutput, error)
	AdjustPointBuy(ctx context.Context, input *AdjustPointBuyInput) (*AdjustPointBuyOutput, error)
	SwapAbilityScores(ctx context.Context, input *SwapAbilityScoresInput) (*SwapAbilityScoresOutput, error)

	// Spells and equipment
	UpdateSpells(ctx context.Context, input *UpdateSpellsInput) (*UpdateSpellsOutput, error)
	SelectEquipmentPack(ctx context.Context, input *SelectEquipmentPackInput) (*SelectEquipmentPackOutput, error)

	// Preview and finalization
	PreviewDraft(ctx context.Context, input *PreviewDraftInput) (*PreviewDraftOutput, error)
	FinalizeDraft(ctx context.Context, input *FinalizeDraftInput) (*FinalizeDraftOutput, error)

	// Completed character operations
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// Reference data
	GetSpellProfile(ctx context.Context, input *GetSpellProfileInput) (*GetSpellProfileOutput, error)
	ListRaces(ctx context.Context, input *ListRacesInput) (*ListRacesOutput, error)
	ListClasses(ctx context.Context, input *ListClassesInput) (*ListClassesOutput, error)
	ListBackgrounds(ctx context.Context, input *ListBackgroundsInput) (*ListBackgroundsOutput, error)
	ListEquipmentPacks(ctx context.Context, input *ListEquipmentPacksInput) (*ListEquipmentPacksOutput, error)
	ListSpells(ctx context.Context, input *ListSpellsInput) (*ListSpellsOutput, error)
}

// Draft lifecycle types

// CreateDraftInput defines the request for creating a draft
type CreateDraftInput struct {
	PlayerID string `json:"playerId"`
	// Name is optional
	Name string `json:"name,omitempty"`
}

// CreateDraftOutput defines the response for creating a draft
type CreateDraftOutput struct {
	Draft *dnd5e.CharacterDraft `json:"draft"`
	// ReplacedDraftID is the player's previous draft, now deleted
	ReplacedDraftID string `json:"replacedDraftId,omitempty"`
}

// GetDraftInput defines the request for getting a draft
type GetDraftInput struct {
	DraftID string `json:"draftId"`
}

// GetDraftOutput defines the response for getting a draft
type GetDraftOutput struct {
	Draft *dnd5e.CharacterDraft `json:"draft"`
}

// GetDraftByPlayerInput defines the request for a player's current draft
type GetDraftByPlayerInput struct {
	PlayerID string `json:"playerId"`
}

// GetDraftByPlayerOutput defines the response for a player's current draft
type GetDraftByPlayerOutput struct {
	Draft *dnd5e.CharacterDraft `json:"draft"`
}

// DeleteDraftInput defines the request for deleting a draft
type DeleteDraftInput struct {
	DraftID string `json:"draftId"`
}

// DeleteDraftOutput defines the response for deleting a draft
type DeleteDraftOutput struct{}

// Section update types

// UpdateNameInput defines the request for naming a draft
type UpdateNameInput struct {
	DraftID string `json:"draftId"`
	Name    string `json:"name"`
}

// UpdateNameOutput defines the response for naming a draft
type UpdateNameOutput struct {
	Draft *dnd5e.CharacterDraft `json:"draft"`
}

// UpdateRaceInput defines the request for choosing a race
type UpdateRaceInput struct {
	DraftID string `json:"draftId"`
	Race    string `json:"race"`
	Subrace string `json:"subrace,omitempty"`
}

// UpdateRaceOutput defines the response for choosing a race
type UpdateRaceOutput struct {
	Draft *dnd5e.CharacterDraft `json:"draft"`
	Race  rules.RaceInfo        `json:"race"`
}

// UpdateClassInput defines the request for choosing a class
type UpdateClassInput struct {
	DraftID string `json:"draftId"`
	Class   string `json:"class"`
}

// UpdateClassOutput defines the response for choosing a class
type UpdateClassOutput struct {
	Draft *dnd5e.CharacterDraft `json:"draft"`
	Class rules.ClassInfo       `json:"class"`
	// SpellsCleared is set when a class change dropped selected spells
	SpellsCleared bool `json:"spellsCleared,omitempty"`
}

// UpdateBackgroundInput defines the request for choosing a background
type UpdateBackgroundInput struct {
	DraftID    string `json:"draftId"`
	Background string `json:"background"`
}

// UpdateBackgroundOutput defines the response for choosing a background
type UpdateBackgroundOutput struct {
	Draft      *dnd5e.CharacterDraft `json:"draft"`
	Background rules.BackgroundInfo  `json:"background"`
}

// UpdateAlignmentInput defines the request for choosing an alignment
type UpdateAlignmentInput struct {
	DraftID   string `json:"draftId"`
	Alignment string `json:"alignment"`
}

// UpdateAlignmentOutput defines the response for choosing an alignment
type UpdateAlignmentOutput struct {
	Draft *dnd5e.CharacterDraft `json:"draft"`
}

// Ability score types

// GenerateAbilityScoresInput defines the request for generating scores
type GenerateAbilityScoresInput struct {
	DraftID string `json:"draftId"`
	// Method is rolled, standardArray or pointBuy; anything else rolls
	Method string `json:"method"`
	// Assignment places the standard array; nil uses sheet order
	Assignment map[rules.Ability]int `json:"assignment,omitempty"`
}

// GenerateAbilityScoresOutput defines the response for generating scores
type GenerateAbilityScoresOutput struct {
	Draft  *dnd5e.CharacterDraft `json:"draft"`
	Method rules.Method          `json:"method"`
	// MethodFallback reports that an unknown method was replaced by rolled
	MethodFallback bool                `json:"methodFallback,omitempty"`
	Rolls          []rules.AbilityRoll `json:"rolls,omitempty"`
	// PointBuyRemaining is set for point buy
	PointBuyRemaining *int `json:"pointBuyRemaining,omitempty"`
}

// AdjustPointBuyInput changes one ability, either to a target Score or by
// a Delta step such as +1 or -1. Exactly one of the two is set.
type AdjustPointBuyInput struct {
	DraftID string `json:"draftId"`
	Ability string `json:"ability"`
	Score   int    `json:"score,omitempty"`
	Delta   int    `json:"delta,omitempty"`
}

// AdjustPointBuyOutput reports the outcome; a rejection is not an error
type AdjustPointBuyOutput struct {
	Draft     *dnd5e.CharacterDraft `json:"draft"`
	Accepted  bool                  `json:"accepted"`
	Rejection *rules.Rejection      `json:"rejection,omitempty"`
	Remaining int                   `json:"remaining"`
}

// SwapAbilityScoresInput exchanges the values of two abilities
type SwapAbilityScoresInput struct {
	DraftID string `json:"draftId"`
	First   string `json:"first"`
	Second  string `json:"second"`
}

// SwapAbilityScoresOutput defines the response for a swap
type SwapAbilityScoresOutput struct {
	Draft *dnd5e.CharacterDraft `json:"draft"`
}

// Spell and equipment types

// UpdateSpellsInput replaces the draft's spell selection
type UpdateSpellsInput struct {
	DraftID string           `json:"draftId"`
	Spells  []rules.SpellRef `json:"spells"`
}

// UpdateSpellsOutput defines the response for a spell selection
type UpdateSpellsOutput struct {
	Draft   *dnd5e.CharacterDraft   `json:"draft"`
	Profile rules.ClassSpellProfile `json:"profile"`
}

// SelectEquipmentPackInput chooses a pack or rules.NoPackKey
type SelectEquipmentPackInput struct {
	DraftID        string       `json:"draftId"`
	Pack           string       `json:"pack"`
	ExtraEquipment []rules.Item `json:"extraEquipment,omitempty"`
}

// SelectEquipmentPackOutput defines the response for a pack choice
type SelectEquipmentPackOutput struct {
	Draft *dnd5e.CharacterDraft `json:"draft"`
	// Pack is nil when no pack was taken
	Pack *rules.EquipmentPack `json:"pack,omitempty"`
}

// Preview and finalization types

// PreviewDraftInput defines the request for a draft preview
type PreviewDraftInput struct {
	DraftID string `json:"draftId"`
}

// DraftPreview is what the draft would become, computed without storing
type DraftPreview struct {
	Draft *dnd5e.CharacterDraft `json:"draft"`
	// AbilityScores include racial bonuses
	AbilityScores    rules.AbilityScores      `json:"abilityScores"`
	Stats            rules.DerivedCombatStats `json:"stats"`
	SpellProfile     rules.ClassSpellProfile  `json:"spellProfile"`
	SpellSaveDC      int                      `json:"spellSaveDc,omitempty"`
	SpellAttackBonus int                      `json:"spellAttackBonus,omitempty"`
	// PointBuyRemaining is set for point buy drafts
	PointBuyRemaining *int     `json:"pointBuyRemaining,omitempty"`
	Missing           []string `json:"missing,omitempty"`
}

// PreviewDraftOutput defines the response for a draft preview
type PreviewDraftOutput struct {
	Preview *DraftPreview `json:"preview"`
}

// FinalizeDraftInput defines the request for finalizing a draft
type FinalizeDraftInput struct {
	DraftID string `json:"draftId"`
}

// FinalizeDraftOutput defines the response for finalizing a draft
type FinalizeDraftOutput struct {
	Character *dnd5e.Character `json:"character"`
	// DraftDeleted is false when the draft could not be removed; it then
	// expires with its TTL
	DraftDeleted bool `json:"draftDeleted"`
}

// Character types

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	CharacterID string `json:"characterId"`
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Character *dnd5e.Character `json:"character"`
}

// ListCharactersInput defines the request for listing a player's characters
type ListCharactersInput struct {
	PlayerID string `json:"playerId"`
	PageSize int    `json:"pageSize,omitempty"`
	Offset   int    `json:"offset,omitempty"`
}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Characters []*dnd5e.Character `json:"characters"`
	Total      int                `json:"total"`
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	CharacterID string `json:"characterId"`
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct{}

// Reference types

// GetSpellProfileInput defines the request for a spellcasting row
type GetSpellProfileInput struct {
	Class string `json:"class"`
	Level int    `json:"level"`
}

// GetSpellProfileOutput defines the response for a spellcasting row
type GetSpellProfileOutput struct {
	Profile rules.ClassSpellProfile `json:"profile"`
}

// ListRacesInput defines the request for listing races
type ListRacesInput struct{}

// ListRacesOutput defines the response for listing races
type ListRacesOutput struct {
	Races []rules.RaceInfo `json:"races"`
}

// ListClassesInput defines the request for listing classes
type ListClassesInput struct{}

// ListClassesOutput defines the response for listing classes
type ListClassesOutput struct {
	Classes []rules.ClassInfo `json:"classes"`
}

// ListBackgroundsInput defines the request for listing backgrounds
type ListBackgroundsInput struct{}

// ListBackgroundsOutput defines the response for listing backgrounds
type ListBackgroundsOutput struct {
	Backgrounds []rules.BackgroundInfo `json:"backgrounds"`
}

// ListEquipmentPacksInput defines the request for listing packs
type ListEquipmentPacksInput struct{}

// ListEquipmentPacksOutput defines the response for listing packs
type ListEquipmentPacksOutput struct {
	Packs []rules.EquipmentPack `json:"packs"`
}

// ListSpellsInput defines the request for listing spells
type ListSpellsInput struct {
	Class string `json:"class,omitempty"`
	Level *int   `json:"level,omitempty"`
}

// ListSpellsOutput defines the response for listing spells
type ListSpellsOutput struct {
	Spells []reference.Spell `json:"spells"`
}
