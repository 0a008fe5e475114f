package client

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-charbuilder/internal/handlers/charbuilder/v1alpha1"
	"github.com/KirkDiggler/rpg-charbuilder/internal/services/character"
)

func selectSpellsCmd() *cobra.Command {
	var (
		draftID string
		spells  []string
	)
	cmd := &cobra.Command{
		Use:     "select-spells",
		Short:   "Replace the draft's spell selection",
		Example: `  charbuilder client select-spells --draft-id draft_123 --spell fire-bolt:0,magic-missile:1`,
		RunE: func(_ *cobra.Command, _ []string) error {
			refs, err := parseSpells(spells)
			if err != nil {
				return err
			}
			return call(stdout(), func(ctx context.Context, c *v1alpha1.Client) (*character.UpdateSpellsOutput, error) {
				return c.UpdateSpells(ctx, &character.UpdateSpellsInput{DraftID: draftID, Spells: refs})
			})
		},
	}
	cmd.Flags().StringVar(&draftID, "draft-id", "", "Draft ID (required)")
	cmd.Flags().StringSliceVar(&spells, "spell", nil, "Spells as key:level; a bare key is a cantrip")
	_ = cmd.MarkFlagRequired("draft-id") // nolint:errcheck // safe to ignore in init
	return cmd
}

func selectPackCmd() *cobra.Command {
	var (
		draftID string
		pack    string
		extras  []string
	)
	cmd := &cobra.Command{
		Use:     "select-pack",
		Short:   "Choose an equipment pack, or none, plus extra items",
		Example: `  charbuilder client select-pack --draft-id draft_123 --pack explorers-pack --extra "Rope:2"`,
		RunE: func(_ *cobra.Command, _ []string) error {
			items, err := parseItems(extras)
			if err != nil {
				return err
			}
			return call(stdout(), func(ctx context.Context, c *v1alpha1.Client) (*character.SelectEquipmentPackOutput, error) {
				return c.SelectEquipmentPack(ctx, &character.SelectEquipmentPackInput{
					DraftID:        draftID,
					Pack:           pack,
					ExtraEquipment: items,
				})
			})
		},
	}
	cmd.Flags().StringVar(&draftID, "draft-id", "", "Draft ID (required)")
	cmd.Flags().StringVar(&pack, "pack", "none", "Pack key or name, or none")
	cmd.Flags().StringSliceVar(&extras, "extra", nil, "Extra items as name:quantity")
	_ = cmd.MarkFlagRequired("draft-id") // nolint:errcheck // safe to ignore in init
	return cmd
}
