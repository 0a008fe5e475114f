// Package character persists finalized characters
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/rpg-charbuilder/internal/repositories/character Repository

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/rpg-charbuilder/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-charbuilder/internal/errors"
)

// DefaultListLimit caps ListByPlayerID when no limit is given
const DefaultListLimit = 50

// Repository defines character persistence
type Repository interface {
	// Create returns errors.AlreadyExists for a duplicate ID
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get returns errors.NotFound when the character does not exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByPlayerID returns a player's characters, oldest first
	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error)

	// Delete returns errors.NotFound when the character does not exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *dnd5e.Character
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *dnd5e.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *dnd5e.Character
}

// ListByPlayerIDInput defines the input for listing a player's characters
type ListByPlayerIDInput struct {
	PlayerID string
	Limit    int
	Offset   int
}

// ListByPlayerIDOutput defines the output for listing a player's characters
type ListByPlayerIDOutput struct {
	Characters []*dnd5e.Character
	// Total counts every character of the player, ignoring Limit and Offset
	Total int
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

func validateCharacter(c *dnd5e.Character) error {
	if c == nil {
		return errors.InvalidArgument("character cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character.id", c.ID, vb)
	errors.ValidateRequired("character.player_id", c.PlayerID, vb)
	errors.ValidateRequired("character.name", c.Name, vb)
	return vb.Build()
}

func validateList(input *ListByPlayerIDInput) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	if input.Limit < 0 {
		vb.Field("limit", "must not be negative")
	}
	if input.Offset < 0 {
		vb.Field("offset", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return err
	}
	if input.Limit == 0 {
		input.Limit = DefaultListLimit
	}
	return nil
}

func encode(c *dnd5e.Character) ([]byte, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal character")
	}
	return data, nil
}

func decode(data []byte) (*dnd5e.Character, error) {
	var c dnd5e.Character
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal character")
	}
	return &c, nil
}

func notFound(id string) error {
	return errors.NotFoundf("character %s not found", id).WithMeta("character_id", id)
}

func alreadyExists(id string) error {
	return errors.Newf(errors.CodeAlreadyExists, "character %s already exists", id).WithMeta("character_id", id)
}
