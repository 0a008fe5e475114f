package main

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-charbuilder/internal/redis"
	draftrepo "github.com/KirkDiggler/rpg-charbuilder/internal/repositories/character_draft"
)

var repairFix bool

var repairDraftsCmd = &cobra.Command{
	Use:   "repair-drafts",
	Short: "Find draft keys that can no longer be loaded",
	Long: `Scan the draft keyspace in Redis for drafts that fail to decode and player
mappings that point at missing drafts. Pass --fix to delete them.`,
	RunE: runRepairDrafts,
}

func init() {
	repairDraftsCmd.Flags().BoolVar(&repairFix, "fix", false, "Delete the broken keys")
}

func runRepairDrafts(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	slog.SetDefault(newLogger(cfg.Server, os.Stderr))

	ctx := cmd.Context()
	client, err := redis.New(cfg.Redis)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()
	if err := redis.Ping(ctx, client); err != nil {
		return err
	}

	report, err := draftrepo.Scan(ctx, client, repairFix)
	if err != nil {
		return err
	}
	slog.Info("draft scan complete",
		"checked", report.Checked,
		"problems", len(report.Problems),
		"deleted", len(report.Deleted))

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
