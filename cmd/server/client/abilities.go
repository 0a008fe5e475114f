package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-charbuilder/internal/handlers/charbuilder/v1alpha1"
	"github.com/KirkDiggler/rpg-charbuilder/internal/rules"
	"github.com/KirkDiggler/rpg-charbuilder/internal/services/character"
)

func generateAbilitiesCmd() *cobra.Command {
	var (
		input  character.GenerateAbilityScoresInput
		assign []string
	)
	cmd := &cobra.Command{
		Use:   "generate-abilities",
		Short: "Generate ability scores with rolled, standardArray or pointBuy",
		Example: `  charbuilder client generate-abilities --draft-id draft_123 --method rolled
  charbuilder client generate-abilities --draft-id draft_123 --method standardArray \
    --assign str=15,dex=14,con=13,int=12,wis=10,cha=8`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if len(assign) > 0 {
				assignment, err := parseAssignments(assign)
				if err != nil {
					return err
				}
				input.Assignment = assignment
			}
			return call(stdout(), func(ctx context.Context, c *v1alpha1.Client) (*character.GenerateAbilityScoresOutput, error) {
				return c.GenerateAbilityScores(ctx, &input)
			})
		},
	}
	cmd.Flags().StringVar(&input.DraftID, "draft-id", "", "Draft ID (required)")
	cmd.Flags().StringVar(&input.Method, "method", string(rules.MethodRolled), fmt.Sprintf("Generation method, one of %v", rules.Methods()))
	cmd.Flags().StringSliceVar(&assign, "assign", nil, "Standard array placement as ability=score")
	_ = cmd.MarkFlagRequired("draft-id") // nolint:errcheck // safe to ignore in init
	return cmd
}

func pointBuyCmd() *cobra.Command {
	var input character.AdjustPointBuyInput
	cmd := &cobra.Command{
		Use:   "point-buy",
		Short: "Set or step one ability under point buy",
		Example: `  charbuilder client point-buy --draft-id draft_123 --ability str --score 15
  charbuilder client point-buy --draft-id draft_123 --ability dex --delta 1`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return call(stdout(), func(ctx context.Context, c *v1alpha1.Client) (*character.AdjustPointBuyOutput, error) {
				return c.AdjustPointBuy(ctx, &input)
			})
		},
	}
	cmd.Flags().StringVar(&input.DraftID, "draft-id", "", "Draft ID (required)")
	cmd.Flags().StringVar(&input.Ability, "ability", "", "Ability, e.g. str (required)")
	cmd.Flags().IntVar(&input.Score, "score", 0, "Target score between 8 and 15")
	cmd.Flags().IntVar(&input.Delta, "delta", 0, "Step the current score, e.g. 1 or -1")
	cmd.MarkFlagsOneRequired("score", "delta")
	cmd.MarkFlagsMutuallyExclusive("score", "delta")
	_ = cmd.MarkFlagRequired("draft-id") // nolint:errcheck // safe to ignore in init
	_ = cmd.MarkFlagRequired("ability")  // nolint:errcheck // safe to ignore in init
	return cmd
}

func swapAbilitiesCmd() *cobra.Command {
	var input character.SwapAbilityScoresInput
	cmd := &cobra.Command{
		Use:   "swap-abilities",
		Short: "Exchange two ability scores",
		RunE: func(_ *cobra.Command, _ []string) error {
			return call(stdout(), func(ctx context.Context, c *v1alpha1.Client) (*character.SwapAbilityScoresOutput, error) {
				return c.SwapAbilityScores(ctx, &input)
			})
		},
	}
	cmd.Flags().StringVar(&input.DraftID, "draft-id", "", "Draft ID (required)")
	cmd.Flags().StringVar(&input.First, "first", "", "First ability (required)")
	cmd.Flags().StringVar(&input.Second, "second", "", "Second ability (required)")
	for _, f := range []string{"draft-id", "first", "second"} {
		_ = cmd.MarkFlagRequired(f) // nolint:errcheck // safe to ignore in init
	}
	return cmd
}
