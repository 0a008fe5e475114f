package dicesession

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-charbuilder/internal/errors"
	"github.com/KirkDiggler/rpg-charbuilder/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-charbuilder/internal/redis"
)

const (
	// dice_session:{entity_id}:{context}
	sessionKeyPrefix = "dice_session:"

	// DefaultTTL is how long a session lives when no TTL is configured
	DefaultTTL = 15 * time.Minute

	maxAppendRetries = 3
)

// Config holds the repository dependencies
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	TTL    time.Duration
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

// NewRedisRepository creates a Redis backed repository
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid dice session repository config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{client: cfg.Client, clock: cfg.Clock, ttl: ttl}, nil
}

var _ Repository = (*redisRepository)(nil)

func validateKey(entityID, sessionContext string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("entity_id", entityID, vb)
	errors.ValidateRequired("context", sessionContext, vb)
	return vb.Build()
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = r.ttl
	}

	now := r.clock.Now()
	session := &DiceSession{
		EntityID:  input.EntityID,
		Context:   input.Context,
		Rolls:     input.Rolls,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal dice session")
	}

	if err := r.client.Set(ctx, buildKey(input.EntityID, input.Context), data, ttl).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to store dice session")
	}

	return &CreateOutput{Session: session}, nil
}

func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	key := buildKey(input.EntityID, input.Context)
	var out *DiceSession

	txf := func(tx *redis.Tx) error {
		now := r.clock.Now()
		session, err := r.load(ctx, tx, key)
		switch {
		case errors.IsNotFound(err):
			session = &DiceSession{
				EntityID:  input.EntityID,
				Context:   input.Context,
				CreatedAt: now,
				ExpiresAt: now.Add(r.ttl),
			}
		case err != nil:
			return err
		}

		session.Rolls = append(session.Rolls, input.Rolls...)
		remaining := session.ExpiresAt.Sub(now)
		if remaining <= 0 {
			return errors.FailedPrecondition("dice session has expired")
		}

		data, err := json.Marshal(session)
		if err != nil {
			return errors.Wrap(err, "failed to marshal dice session")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, remaining)
			return nil
		})
		if err != nil {
			return err
		}
		out = session
		return nil
	}

	for range maxAppendRetries {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return &AppendOutput{Session: out}, nil
		}
		if stderrors.Is(err, redis.TxFailedErr) {
			continue
		}
		var domainErr *errors.Error
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to append dice rolls")
	}

	return nil, errors.Unavailable("dice session changed concurrently, retry")
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	session, err := r.load(ctx, r.client, buildKey(input.EntityID, input.Context))
	if err != nil {
		return nil, err
	}

	return &GetOutput{Session: session}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	key := buildKey(input.EntityID, input.Context)

	var deleted int
	session, err := r.load(ctx, r.client, key)
	switch {
	case err == nil:
		deleted = len(session.Rolls)
	case !errors.IsNotFound(err):
		return nil, err
	}

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to delete dice session")
	}

	return &DeleteOutput{RollsDeleted: deleted}, nil
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (r *redisRepository) load(ctx context.Context, c getter, key string) (*DiceSession, error) {
	data, err := c.Get(ctx, key).Bytes()
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			return nil, errors.NotFound("dice session not found")
		}
		return nil, errors.Wrap(err, "failed to load dice session")
	}

	var session DiceSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal dice session")
	}

	if r.clock.Now().After(session.ExpiresAt) {
		return nil, errors.NotFound("dice session has expired")
	}

	return &session, nil
}

func buildKey(entityID, sessionContext string) string {
	return sessionKeyPrefix + entityID + ":" + sessionContext
}
