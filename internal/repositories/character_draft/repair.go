package characterdraft

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-charbuilder/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-charbuilder/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-charbuilder/internal/redis"
)

// Problem describes one key that can no longer be served
type Problem struct {
	Key    string `json:"key"`
	Reason string `json:"reason"`
}

// ScanReport is the result of checking every stored draft key
type ScanReport struct {
	Checked  int       `json:"checked"`
	Problems []Problem `json:"problems"`
	Deleted  []string  `json:"deleted,omitempty"`
}

const scanBatch = 100

// Scan walks the draft keyspace looking for drafts that no longer decode
// and player mappings that point at missing drafts. With fix set the bad
// keys are deleted.
func Scan(ctx context.Context, client redisclient.Client, fix bool) (*ScanReport, error) {
	if client == nil {
		return nil, errors.InvalidArgument("client is required")
	}

	report := &ScanReport{}
	iter := client.Scan(ctx, 0, draftKeyPrefix+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		report.Checked++

		reason, err := checkKey(ctx, client, key)
		if err != nil {
			return nil, err
		}
		if reason != "" {
			report.Problems = append(report.Problems, Problem{Key: key, Reason: reason})
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan draft keys")
	}

	if !fix {
		return report, nil
	}
	for _, p := range report.Problems {
		if err := client.Del(ctx, p.Key).Err(); err != nil {
			return report, errors.Wrapf(err, "failed to delete %s", p.Key)
		}
		report.Deleted = append(report.Deleted, p.Key)
	}
	return report, nil
}

// checkKey returns a reason when the key is broken, or "" when it is fine
func checkKey(ctx context.Context, client redisclient.Client, key string) (string, error) {
	value, err := client.Get(ctx, key).Result()
	if stderrors.Is(err, redis.Nil) {
		// expired between scan and read
		return "", nil
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", key)
	}

	if playerID, ok := strings.CutPrefix(key, playerMappingPrefix); ok {
		if value == "" {
			return "player " + playerID + " maps to an empty draft id", nil
		}
		n, err := client.Exists(ctx, draftKeyPrefix+value).Result()
		if err != nil {
			return "", errors.Wrapf(err, "failed to check draft %s", value)
		}
		if n == 0 {
			return "player " + playerID + " maps to missing draft " + value, nil
		}
		return "", nil
	}

	var draft dnd5e.CharacterDraft
	if err := json.Unmarshal([]byte(value), &draft); err != nil {
		return "draft does not decode: " + err.Error(), nil
	}
	if id := strings.TrimPrefix(key, draftKeyPrefix); draft.ID != id {
		return "draft id " + draft.ID + " does not match key", nil
	}
	if draft.PlayerID == "" {
		return "draft has no player", nil
	}
	return "", nil
}
