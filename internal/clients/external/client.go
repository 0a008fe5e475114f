// Package external is the location for the dnd5e-api client
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/rpg-charbuilder/internal/clients/external Client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-charbuilder/internal/errors"
)

// Defaults for Config
const (
	DefaultBaseURL     = "https://www.dnd5eapi.co/api/2014/"
	DefaultHTTPTimeout = 30 * time.Second
	DefaultCacheTTL    = 24 * time.Hour
	// DefaultConcurrency bounds the detail requests of one list call
	DefaultConcurrency = 8
)

// Client defines the reference data the builder reads from the dnd5e-api
type Client interface {
	// ListRaces returns every race with full details
	ListRaces(ctx context.Context) ([]*RaceData, error)

	// ListClasses returns every class with full details
	ListClasses(ctx context.Context) ([]*ClassData, error)

	// ListSpells returns spells with full details, optionally filtered
	ListSpells(ctx context.Context, input *ListSpellsInput) ([]*SpellData, error)

	// GetSpell returns one spell by API key
	GetSpell(ctx context.Context, key string) (*SpellData, error)
}

// api is the subset of dnd5e.Interface this client calls
type api interface {
	ListRaces() ([]*entities.ReferenceItem, error)
	GetRace(key string) (*entities.Race, error)
	ListClasses() ([]*entities.ReferenceItem, error)
	GetClass(key string) (*entities.Class, error)
	ListSpells(input *dnd5e.ListSpellsInput) ([]*entities.ReferenceItem, error)
	GetSpell(key string) (*entities.Spell, error)
}

type client struct {
	api         api
	concurrency int
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for API requests (optional)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional)
	CacheTTL time.Duration
	// Concurrency bounds detail loads (optional)
	Concurrency int
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = DefaultHTTPTimeout
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if cfg.Concurrency == 0 {
		cfg.Concurrency = DefaultConcurrency
	}

	vb := errors.NewValidationBuilder()
	if !strings.HasPrefix(cfg.BaseURL, "http://") && !strings.HasPrefix(cfg.BaseURL, "https://") {
		vb.Field("base_url", "must be an http or https URL")
	}
	if cfg.HTTPTimeout < 0 {
		vb.Field("http_timeout", "must not be negative")
	}
	if cfg.Concurrency < 0 {
		vb.Field("concurrency", "must not be negative")
	}
	return vb.Build()
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  &http.Client{Timeout: cfg.HTTPTimeout},
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create D&D 5e API client")
	}

	// the cached client keeps details between list calls
	return newClient(dnd5e.NewCachedClient(baseClient, cfg.CacheTTL), cfg.Concurrency), nil
}

func newClient(a api, concurrency int) *client {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &client{api: a, concurrency: concurrency}
}

func unavailable(err error, format string, args ...any) error {
	return errors.WrapWithCode(err, errors.CodeUnavailable, "dnd5e-api: "+fmt.Sprintf(format, args...))
}

// loadDetails fetches the details of every ref with bounded concurrency,
// keeping the ref order.
func loadDetails[T any](ctx context.Context, limit int, refs []*entities.ReferenceItem, get func(key string) (T, error)) ([]T, error) {
	out := make([]T, len(refs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, ref := range refs {
		if ref == nil {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := get(ref.Key)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *client) ListRaces(ctx context.Context) ([]*RaceData, error) {
	refs, err := c.api.ListRaces()
	if err != nil {
		return nil, unavailable(err, "failed to list races")
	}
	slog.Debug("loading race details", "count", len(refs))

	races, err := loadDetails(ctx, c.concurrency, refs, func(key string) (*RaceData, error) {
		race, err := c.api.GetRace(key)
		if err != nil {
			return nil, unavailable(err, "failed to get race %s", key)
		}
		return convertRace(race), nil
	})
	if err != nil {
		return nil, err
	}

	return compact(races), nil
}

func (c *client) ListClasses(ctx context.Context) ([]*ClassData, error) {
	refs, err := c.api.ListClasses()
	if err != nil {
		return nil, unavailable(err, "failed to list classes")
	}
	slog.Debug("loading class details", "count", len(refs))

	classes, err := loadDetails(ctx, c.concurrency, refs, func(key string) (*ClassData, error) {
		class, err := c.api.GetClass(key)
		if err != nil {
			return nil, unavailable(err, "failed to get class %s", key)
		}
		return convertClass(class), nil
	})
	if err != nil {
		return nil, err
	}

	return compact(classes), nil
}

func (c *client) ListSpells(ctx context.Context, input *ListSpellsInput) ([]*SpellData, error) {
	var apiInput *dnd5e.ListSpellsInput
	if input != nil {
		apiInput = &dnd5e.ListSpellsInput{Class: strings.ToLower(input.Class)}
		if input.Level != nil {
			level := *input.Level
			apiInput.Level = &level
		}
	}

	refs, err := c.api.ListSpells(apiInput)
	if err != nil {
		return nil, unavailable(err, "failed to list spells")
	}
	slog.Debug("loading spell details", "count", len(refs))

	spells, err := loadDetails(ctx, c.concurrency, refs, func(key string) (*SpellData, error) {
		spell, err := c.api.GetSpell(key)
		if err != nil {
			return nil, unavailable(err, "failed to get spell %s", key)
		}
		return convertSpell(spell), nil
	})
	if err != nil {
		return nil, err
	}

	return compact(spells), nil
}

func (c *client) GetSpell(_ context.Context, key string) (*SpellData, error) {
	if key == "" {
		return nil, errors.InvalidArgument("spell key is required")
	}

	spell, err := c.api.GetSpell(key)
	if err != nil {
		return nil, unavailable(err, "failed to get spell %s", key)
	}
	if spell == nil {
		return nil, errors.NotFoundf("spell %s not found", key)
	}

	return convertSpell(spell), nil
}

func compact[T any](in []*T) []*T {
	out := in[:0]
	for _, v := range in {
		if v != nil {
			out = append(out, v)
		}
	}
	return out
}
