package client

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-charbuilder/internal/handlers/charbuilder/v1alpha1"
)

func rollDiceCmd() *cobra.Command {
	var req v1alpha1.RollDiceRequest
	cmd := &cobra.Command{
		Use:     "roll-dice",
		Short:   "Roll dice into an entity's session",
		Example: `  charbuilder client roll-dice --entity-id draft_123 --context ability_scores --notation 4d6`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return call(stdout(), func(ctx context.Context, c *v1alpha1.Client) (*v1alpha1.RollDiceResponse, error) {
				return c.RollDice(ctx, &req)
			})
		},
	}
	cmd.Flags().StringVar(&req.EntityID, "entity-id", "", "Entity ID (required)")
	cmd.Flags().StringVar(&req.Context, "context", "", "Roll context (required)")
	cmd.Flags().StringVar(&req.Notation, "notation", "", "Dice notation, e.g. 4d6 (required)")
	cmd.Flags().StringVar(&req.Description, "description", "", "Roll description")
	for _, f := range []string{"entity-id", "context", "notation"} {
		_ = cmd.MarkFlagRequired(f) // nolint:errcheck // safe to ignore in init
	}
	return cmd
}

func getRollSessionCmd() *cobra.Command {
	var req v1alpha1.GetRollSessionRequest
	cmd := &cobra.Command{
		Use:   "get-roll-session",
		Short: "Show the rolls in a session",
		RunE: func(_ *cobra.Command, _ []string) error {
			return call(stdout(), func(ctx context.Context, c *v1alpha1.Client) (*v1alpha1.GetRollSessionResponse, error) {
				return c.GetRollSession(ctx, &req)
			})
		},
	}
	cmd.Flags().StringVar(&req.EntityID, "entity-id", "", "Entity ID (required)")
	cmd.Flags().StringVar(&req.Context, "context", "", "Roll context (required)")
	_ = cmd.MarkFlagRequired("entity-id") // nolint:errcheck // safe to ignore in init
	_ = cmd.MarkFlagRequired("context")   // nolint:errcheck // safe to ignore in init
	return cmd
}

func clearRollSessionCmd() *cobra.Command {
	var req v1alpha1.ClearRollSessionRequest
	cmd := &cobra.Command{
		Use:   "clear-roll-session",
		Short: "Remove a roll session",
		RunE: func(_ *cobra.Command, _ []string) error {
			return call(stdout(), func(ctx context.Context, c *v1alpha1.Client) (*v1alpha1.ClearRollSessionResponse, error) {
				return c.ClearRollSession(ctx, &req)
			})
		},
	}
	cmd.Flags().StringVar(&req.EntityID, "entity-id", "", "Entity ID (required)")
	cmd.Flags().StringVar(&req.Context, "context", "", "Roll context (required)")
	_ = cmd.MarkFlagRequired("entity-id") // nolint:errcheck // safe to ignore in init
	_ = cmd.MarkFlagRequired("context")   // nolint:errcheck // safe to ignore in init
	return cmd
}
