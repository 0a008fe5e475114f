package characterdraft

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-charbuilder/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-charbuilder/internal/errors"
	"github.com/KirkDiggler/rpg-charbuilder/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-charbuilder/internal/redis"
)

const (
	draftKeyPrefix      = "draft:"
	playerMappingPrefix = "draft:player:"

	// DefaultTTL is how long an untouched draft lives
	DefaultTTL = 24 * time.Hour

	errDraftNil      = "draft cannot be nil"
	errDraftIDEmpty  = "draft ID cannot be empty"
	errPlayerIDEmpty = "player ID cannot be empty"
	errDraftExpired  = "draft has already expired"
)

// Config holds the repository dependencies
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL applies to drafts created without an expiry
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("client")
	}
	if c.Clock == nil {
		vb.RequiredField("clock")
	}
	if c.TTL < 0 {
		vb.Field("ttl", "must not be negative")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a Redis backed draft repository
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid draft repository config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &redisRepository{client: cfg.Client, clock: cfg.Clock, ttl: ttl}, nil
}

var _ Repository = (*redisRepository)(nil)

// remaining returns the TTL left before expiresAt, in whole seconds
func (r *redisRepository) remaining(expiresAt int64) (time.Duration, error) {
	ttl := time.Unix(expiresAt, 0).Sub(r.clock.Now())
	if ttl <= 0 {
		return 0, errors.InvalidArgument(errDraftExpired)
	}
	return ttl, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Draft == nil {
		return nil, errors.InvalidArgument(errDraftNil)
	}
	draft := input.Draft.Clone()

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draft.id", draft.ID, vb)
	errors.ValidateRequired("draft.player_id", draft.PlayerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if draft.ExpiresAt == 0 {
		draft.ExpiresAt = r.clock.Now().Add(r.ttl).Unix()
	}
	ttl, err := r.remaining(draft.ExpiresAt)
	if err != nil {
		return nil, err
	}

	playerKey := playerMappingPrefix + draft.PlayerID
	previousID, err := r.client.Get(ctx, playerKey).Result()
	if err != nil && !stderrors.Is(err, redis.Nil) {
		return nil, errors.Wrap(err, "failed to check existing draft")
	}

	data, err := json.Marshal(draft)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal draft")
	}

	pipe := r.client.TxPipeline()
	if previousID != "" && previousID != draft.ID {
		pipe.Del(ctx, draftKeyPrefix+previousID)
	}
	pipe.Set(ctx, draftKeyPrefix+draft.ID, data, ttl)
	// the mapping expires with the draft it points at
	pipe.Set(ctx, playerKey, draft.ID, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to create draft")
	}

	out := &CreateOutput{Draft: draft}
	if previousID != draft.ID {
		out.ReplacedDraftID = previousID
	}
	return out, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}

	data, err := r.client.Get(ctx, draftKeyPrefix+input.ID).Bytes()
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			return nil, errors.NotFoundf("draft %s not found", input.ID).WithMeta("draft_id", input.ID)
		}
		return nil, errors.Wrap(err, "failed to get draft")
	}

	var draft dnd5e.CharacterDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal draft")
	}

	return &GetOutput{Draft: &draft}, nil
}

func (r *redisRepository) GetByPlayerID(ctx context.Context, input GetByPlayerIDInput) (*GetByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	playerKey := playerMappingPrefix + input.PlayerID
	draftID, err := r.client.Get(ctx, playerKey).Result()
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			return nil, errors.NotFoundf("no draft found for player %s", input.PlayerID)
		}
		return nil, errors.Wrap(err, "failed to get player draft mapping")
	}

	out, err := r.Get(ctx, GetInput{ID: draftID})
	if err != nil {
		if errors.IsNotFound(err) {
			// stale mapping
			r.client.Del(ctx, playerKey)
		}
		return nil, err
	}

	return &GetByPlayerIDOutput{Draft: out.Draft}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Draft == nil {
		return nil, errors.InvalidArgument(errDraftNil)
	}
	if input.Draft.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}
	draft := input.Draft.Clone()

	key := draftKeyPrefix + draft.ID
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to check draft existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("draft %s not found", draft.ID).WithMeta("draft_id", draft.ID)
	}

	ttl, err := r.remaining(draft.ExpiresAt)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(draft)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal draft")
	}

	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to update draft")
	}

	return &UpdateOutput{Draft: draft}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}

	out, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, draftKeyPrefix+input.ID)
	if out.Draft.PlayerID != "" {
		playerKey := playerMappingPrefix + out.Draft.PlayerID
		// only drop the mapping if it still points at this draft
		current, err := r.client.Get(ctx, playerKey).Result()
		if err != nil && !stderrors.Is(err, redis.Nil) {
			return nil, errors.Wrap(err, "failed to read player draft mapping")
		}
		if current == input.ID {
			pipe.Del(ctx, playerKey)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to delete draft")
	}

	return &DeleteOutput{PlayerID: out.Draft.PlayerID}, nil
}
