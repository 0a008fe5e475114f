package client

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-charbuilder/internal/handlers/charbuilder/v1alpha1"
	"github.com/KirkDiggler/rpg-charbuilder/internal/services/character"
)

func getCharacterCmd() *cobra.Command {
	var input character.GetCharacterInput
	cmd := &cobra.Command{
		Use:   "get-character",
		Short: "Get a finalized character",
		RunE: func(_ *cobra.Command, _ []string) error {
			return call(stdout(), func(ctx context.Context, c *v1alpha1.Client) (*character.GetCharacterOutput, error) {
				return c.GetCharacter(ctx, &input)
			})
		},
	}
	cmd.Flags().StringVar(&input.CharacterID, "character-id", "", "Character ID (required)")
	_ = cmd.MarkFlagRequired("character-id") // nolint:errcheck // safe to ignore in init
	return cmd
}

func listCharactersCmd() *cobra.Command {
	var input character.ListCharactersInput
	cmd := &cobra.Command{
		Use:   "list-characters",
		Short: "List a player's characters, newest first",
		RunE: func(_ *cobra.Command, _ []string) error {
			return call(stdout(), func(ctx context.Context, c *v1alpha1.Client) (*character.ListCharactersOutput, error) {
				return c.ListCharacters(ctx, &input)
			})
		},
	}
	cmd.Flags().StringVar(&input.PlayerID, "player-id", "", "Player ID (required)")
	cmd.Flags().IntVar(&input.PageSize, "page-size", 0, "Page size, 0 for the default")
	cmd.Flags().IntVar(&input.Offset, "offset", 0, "Characters to skip")
	_ = cmd.MarkFlagRequired("player-id") // nolint:errcheck // safe to ignore in init
	return cmd
}

func deleteCharacterCmd() *cobra.Command {
	var input character.DeleteCharacterInput
	cmd := &cobra.Command{
		Use:   "delete-character",
		Short: "Delete a finalized character",
		RunE: func(_ *cobra.Command, _ []string) error {
			return call(stdout(), func(ctx context.Context, c *v1alpha1.Client) (*character.DeleteCharacterOutput, error) {
				return c.DeleteCharacter(ctx, &input)
			})
		},
	}
	cmd.Flags().StringVar(&input.CharacterID, "character-id", "", "Character ID (required)")
	_ = cmd.MarkFlagRequired("character-id") // nolint:errcheck // safe to ignore in init
	return cmd
}
