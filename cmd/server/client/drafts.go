package client

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-charbuilder/internal/handlers/charbuilder/v1alpha1"
	"github.com/KirkDiggler/rpg-charbuilder/internal/services/character"
)

func createDraftCmd() *cobra.Command {
	var input character.CreateDraftInput
	cmd := &cobra.Command{
		Use:   "create-draft",
		Short: "Start a new character draft, replacing the player's previous one",
		RunE: func(_ *cobra.Command, _ []string) error {
			return call(stdout(), func(ctx context.Context, c *v1alpha1.Client) (*character.CreateDraftOutput, error) {
				return c.CreateDraft(ctx, &input)
			})
		},
	}
	cmd.Flags().StringVar(&input.PlayerID, "player-id", "", "Player ID (required)")
	cmd.Flags().StringVar(&input.Name, "name", "", "Character name")
	_ = cmd.MarkFlagRequired("player-id") // nolint:errcheck // safe to ignore in init
	return cmd
}

func getDraftCmd() *cobra.Command {
	var draftID, playerID string
	cmd := &cobra.Command{
		Use:   "get-draft",
		Short: "Get a draft by ID, or the player's current draft",
		RunE: func(_ *cobra.Command, _ []string) error {
			if draftID == "" {
				return call(stdout(), func(ctx context.Context, c *v1alpha1.Client) (*character.GetDraftByPlayerOutput, error) {
					return c.GetDraftByPlayer(ctx, &character.GetDraftByPlayerInput{PlayerID: playerID})
				})
			}
			return call(stdout(), func(ctx context.Context, c *v1alpha1.Client) (*character.GetDraftOutput, error) {
				return c.GetDraft(ctx, &character.GetDraftInput{DraftID: draftID})
			})
		},
	}
	cmd.Flags().StringVar(&draftID, "draft-id", "", "Draft ID")
	cmd.Flags().StringVar(&playerID, "player-id", "", "Player ID, used when no draft ID is given")
	cmd.MarkFlagsOneRequired("draft-id", "player-id")
	return cmd
}

func deleteDraftCmd() *cobra.Command {
	var input character.DeleteDraftInput
	cmd := &cobra.Command{
		Use:   "delete-draft",
		Short: "Delete a draft",
		RunE: func(_ *cobra.Command, _ []string) error {
			return call(stdout(), func(ctx context.Context, c *v1alpha1.Client) (*character.DeleteDraftOutput, error) {
				return c.DeleteDraft(ctx, &input)
			})
		},
	}
	cmd.Flags().StringVar(&input.DraftID, "draft-id", "", "Draft ID (required)")
	_ = cmd.MarkFlagRequired("draft-id") // nolint:errcheck // safe to ignore in init
	return cmd
}

// updateDraftCmds builds the single value section updates
func updateDraftCmds() []*cobra.Command {
	var (
		name       character.UpdateNameInput
		race       character.UpdateRaceInput
		class      character.UpdateClassInput
		background character.UpdateBackgroundInput
		alignment  character.UpdateAlignmentInput
	)

	nameCmd := &cobra.Command{
		Use:   "update-name",
		Short: "Name the character",
		RunE: func(_ *cobra.Command, _ []string) error {
			return call(stdout(), func(ctx context.Context, c *v1alpha1.Client) (*character.UpdateNameOutput, error) {
				return c.UpdateName(ctx, &name)
			})
		},
	}
	nameCmd.Flags().StringVar(&name.DraftID, "draft-id", "", "Draft ID (required)")
	nameCmd.Flags().StringVar(&name.Name, "name", "", "Character name (required)")

	raceCmd := &cobra.Command{
		Use:   "update-race",
		Short: "Choose a race, e.g. human or half-elf",
		RunE: func(_ *cobra.Command, _ []string) error {
			return call(stdout(), func(ctx context.Context, c *v1alpha1.Client) (*character.UpdateRaceOutput, error) {
				return c.UpdateRace(ctx, &race)
			})
		},
	}
	raceCmd.Flags().StringVar(&race.DraftID, "draft-id", "", "Draft ID (required)")
	raceCmd.Flags().StringVar(&race.Race, "race", "", "Race key or name (required)")
	raceCmd.Flags().StringVar(&race.Subrace, "subrace", "", "Subrace")

	classCmd := &cobra.Command{
		Use:   "update-class",
		Short: "Choose a class; spells chosen for another class are cleared",
		RunE: func(_ *cobra.Command, _ []string) error {
			return call(stdout(), func(ctx context.Context, c *v1alpha1.Client) (*character.UpdateClassOutput, error) {
				return c.UpdateClass(ctx, &class)
			})
		},
	}
	classCmd.Flags().StringVar(&class.DraftID, "draft-id", "", "Draft ID (required)")
	classCmd.Flags().StringVar(&class.Class, "class", "", "Class key or name (required)")

	backgroundCmd := &cobra.Command{
		Use:   "update-background",
		Short: "Choose a background, e.g. acolyte",
		RunE: func(_ *cobra.Command, _ []string) error {
			return call(stdout(), func(ctx context.Context, c *v1alpha1.Client) (*character.UpdateBackgroundOutput, error) {
				return c.UpdateBackground(ctx, &background)
			})
		},
	}
	backgroundCmd.Flags().StringVar(&background.DraftID, "draft-id", "", "Draft ID (required)")
	backgroundCmd.Flags().StringVar(&background.Background, "background", "", "Background key or name (required)")

	alignmentCmd := &cobra.Command{
		Use:   "update-alignment",
		Short: "Choose one of the nine alignments, e.g. lawful-good",
		RunE: func(_ *cobra.Command, _ []string) error {
			return call(stdout(), func(ctx context.Context, c *v1alpha1.Client) (*character.UpdateAlignmentOutput, error) {
				return c.UpdateAlignment(ctx, &alignment)
			})
		},
	}
	alignmentCmd.Flags().StringVar(&alignment.DraftID, "draft-id", "", "Draft ID (required)")
	alignmentCmd.Flags().StringVar(&alignment.Alignment, "alignment", "", "Alignment (required)")

	cmds := []*cobra.Command{nameCmd, raceCmd, classCmd, backgroundCmd, alignmentCmd}
	valueFlags := []string{"name", "race", "class", "background", "alignment"}
	for i, cmd := range cmds {
		_ = cmd.MarkFlagRequired("draft-id")    // nolint:errcheck // safe to ignore in init
		_ = cmd.MarkFlagRequired(valueFlags[i]) // nolint:errcheck // safe to ignore in init
	}
	return cmds
}

func previewCmd() *cobra.Command {
	var input character.PreviewDraftInput
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show what the draft would finalize into and which steps are missing",
		RunE: func(_ *cobra.Command, _ []string) error {
			return call(stdout(), func(ctx context.Context, c *v1alpha1.Client) (*character.PreviewDraftOutput, error) {
				return c.PreviewDraft(ctx, &input)
			})
		},
	}
	cmd.Flags().StringVar(&input.DraftID, "draft-id", "", "Draft ID (required)")
	_ = cmd.MarkFlagRequired("draft-id") // nolint:errcheck // safe to ignore in init
	return cmd
}

func finalizeCmd() *cobra.Command {
	var input character.FinalizeDraftInput
	cmd := &cobra.Command{
		Use:   "finalize",
		Short: "Turn a complete draft into a character",
		RunE: func(_ *cobra.Command, _ []string) error {
			return call(stdout(), func(ctx context.Context, c *v1alpha1.Client) (*character.FinalizeDraftOutput, error) {
				return c.FinalizeDraft(ctx, &input)
			})
		},
	}
	cmd.Flags().StringVar(&input.DraftID, "draft-id", "", "Draft ID (required)")
	_ = cmd.MarkFlagRequired("draft-id") // nolint:errcheck // safe to ignore in init
	return cmd
}
