package client

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-charbuilder/internal/handlers/charbuilder/v1alpha1"
	"github.com/KirkDiggler/rpg-charbuilder/internal/services/character"
)

func referenceCmds() []*cobra.Command {
	return []*cobra.Command{
		{
			Use:   "list-races",
			Short: "List playable races",
			RunE: func(_ *cobra.Command, _ []string) error {
				return call(stdout(), func(ctx context.Context, c *v1alpha1.Client) (*character.ListRacesOutput, error) {
					return c.ListRaces(ctx, &character.ListRacesInput{})
				})
			},
		},
		{
			Use:   "list-classes",
			Short: "List classes",
			RunE: func(_ *cobra.Command, _ []string) error {
				return call(stdout(), func(ctx context.Context, c *v1alpha1.Client) (*character.ListClassesOutput, error) {
					return c.ListClasses(ctx, &character.ListClassesInput{})
				})
			},
		},
		{
			Use:   "list-backgrounds",
			Short: "List backgrounds",
			RunE: func(_ *cobra.Command, _ []string) error {
				return call(stdout(), func(ctx context.Context, c *v1alpha1.Client) (*character.ListBackgroundsOutput, error) {
					return c.ListBackgrounds(ctx, &character.ListBackgroundsInput{})
				})
			},
		},
		{
			Use:   "list-packs",
			Short: "List equipment packs",
			RunE: func(_ *cobra.Command, _ []string) error {
				return call(stdout(), func(ctx context.Context, c *v1alpha1.Client) (*character.ListEquipmentPacksOutput, error) {
					return c.ListEquipmentPacks(ctx, &character.ListEquipmentPacksInput{})
				})
			},
		},
	}
}

func spellProfileCmd() *cobra.Command {
	var input character.GetSpellProfileInput
	cmd := &cobra.Command{
		Use:   "spell-profile",
		Short: "Show a class's spellcasting row at a level",
		RunE: func(_ *cobra.Command, _ []string) error {
			return call(stdout(), func(ctx context.Context, c *v1alpha1.Client) (*character.GetSpellProfileOutput, error) {
				return c.GetSpellProfile(ctx, &input)
			})
		},
	}
	cmd.Flags().StringVar(&input.Class, "class", "", "Class (required)")
	cmd.Flags().IntVar(&input.Level, "level", 1, "Character level")
	_ = cmd.MarkFlagRequired("class") // nolint:errcheck // safe to ignore in init
	return cmd
}

func listSpellsCmd() *cobra.Command {
	var (
		input character.ListSpellsInput
		level int
	)
	cmd := &cobra.Command{
		Use:   "list-spells",
		Short: "List spells, optionally for one class and level",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("level") {
				input.Level = &level
			}
			return call(stdout(), func(ctx context.Context, c *v1alpha1.Client) (*character.ListSpellsOutput, error) {
				return c.ListSpells(ctx, &input)
			})
		},
	}
	cmd.Flags().StringVar(&input.Class, "class", "", "Class")
	cmd.Flags().IntVar(&level, "level", 0, "Spell level, 0 for cantrips")
	return cmd
}
