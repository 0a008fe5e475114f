// Package characterdraft stores the single in-progress draft each player
// may have
package characterdraft

//go:generate mockgen -destination=mock/mock_repository.go -package=characterdraftmock github.com/KirkDiggler/rpg-charbuilder/internal/repositories/character_draft Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-charbuilder/internal/entities/dnd5e"
)

// Repository persists drafts. Creating a draft replaces the player's
// previous one.
type Repository interface {
	// Create stores a draft and points the player at it.
	// Returns errors.InvalidArgument for a malformed or expired draft.
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get returns errors.NotFound when the draft is missing or expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetByPlayerID returns errors.NotFound when the player has no draft
	GetByPlayerID(ctx context.Context, input GetByPlayerIDInput) (*GetByPlayerIDOutput, error)

	// Update overwrites an existing draft, keeping its expiry
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes the draft and the player mapping
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a draft
type CreateInput struct {
	Draft *dnd5e.CharacterDraft
}

// CreateOutput defines the output for creating a draft
type CreateOutput struct {
	Draft *dnd5e.CharacterDraft
	// ReplacedDraftID is the player's previous draft, if any
	ReplacedDraftID string
}

// GetInput defines the input for getting a draft
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a draft
type GetOutput struct {
	Draft *dnd5e.CharacterDraft
}

// GetByPlayerIDInput defines the input for getting a player's draft
type GetByPlayerIDInput struct {
	PlayerID string
}

// GetByPlayerIDOutput defines the output for getting a player's draft
type GetByPlayerIDOutput struct {
	Draft *dnd5e.CharacterDraft
}

// UpdateInput defines the input for updating a draft
type UpdateInput struct {
	Draft *dnd5e.CharacterDraft
}

// UpdateOutput defines the output for updating a draft
type UpdateOutput struct {
	Draft *dnd5e.CharacterDraft
}

// DeleteInput defines the input for deleting a draft
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a draft
type DeleteOutput struct {
	PlayerID string
}
