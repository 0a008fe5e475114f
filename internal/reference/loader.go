package reference

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-charbuilder/internal/clients/external"
	"github.com/KirkDiggler/rpg-charbuilder/internal/errors"
	"github.com/KirkDiggler/rpg-charbuilder/internal/rules"
)

// LoaderConfig holds the loader dependencies
type LoaderConfig struct {
	Client external.Client
}

// Validate ensures all required dependencies are provided
func (c *LoaderConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("client")
	}
	return vb.Build()
}

// Loader builds the API backed catalog once. Every Load call after the
// first returns the same catalog or error.
type Loader struct {
	client external.Client

	once    sync.Once
	catalog *Catalog
	err     error
}

// NewLoader creates a loader
func NewLoader(cfg *LoaderConfig) (*Loader, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid reference loader config")
	}
	return &Loader{client: cfg.Client}, nil
}

// Load fetches races and classes concurrently and merges them onto the
// built-in tables
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	l.once.Do(func() {
		l.catalog, l.err = l.load(ctx)
	})
	return l.catalog, l.err
}

func (l *Loader) load(ctx context.Context) (*Catalog, error) {
	var (
		apiRaces   []*external.RaceData
		apiClasses []*external.ClassData
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		apiRaces, err = l.client.ListRaces(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		apiClasses, err = l.client.ListClasses(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to load reference data")
	}

	races := MergeRaces(rules.DefaultRaces(), apiRaces)
	classes := MergeClasses(rules.ClassInfos(), apiClasses)

	slog.Info("reference data loaded",
		"races", len(races),
		"classes", len(classes),
	)

	return newCatalog(races, classes, l.client), nil
}

// MergeRaces overlays API races on the built-in rows. Speed, size and
// ability bonuses come from the API when present. Races only the API knows
// are added. The result is ordered by name.
func MergeRaces(builtin []rules.RaceInfo, api []*external.RaceData) []rules.RaceInfo {
	out := make([]rules.RaceInfo, 0, len(builtin)+len(api))
	index := make(map[rules.Race]int, len(builtin))
	for _, r := range builtin {
		index[r.Race] = len(out)
		out = append(out, r.Clone())
	}

	for _, data := range api {
		if data == nil || data.Key == "" {
			continue
		}
		key := rules.ParseRace(data.Key)

		i, ok := index[key]
		if !ok {
			index[key] = len(out)
			out = append(out, rules.RaceInfo{Race: key, Name: data.Name, Size: rules.SizeMedium, Speed: 30})
			i = len(out) - 1
		}

		r := &out[i]
		if data.Name != "" {
			r.Name = data.Name
		}
		if data.Speed > 0 {
			r.Speed = data.Speed
		}
		if data.Size != "" {
			r.Size = data.Size
		}
		if bonuses := parseBonuses(data.AbilityBonuses); len(bonuses) > 0 {
			r.AbilityBonuses = bonuses
		}
	}

	slices.SortFunc(out, func(a, b rules.RaceInfo) int { return strings.Compare(a.Name, b.Name) })
	return out
}

func parseBonuses(in map[string]int) map[rules.Ability]int {
	out := make(map[rules.Ability]int, len(in))
	for k, v := range in {
		a, ok := rules.ParseAbility(k)
		if !ok {
			slog.Debug("ignoring unknown ability in race bonus", "ability", k)
			continue
		}
		out[a] += v
	}
	return out
}

// MergeClasses takes display names from the API. Hit dice, spellcasting
// and saving throws stay with the class table, and classes the table does
// not know are skipped.
func MergeClasses(builtin []rules.ClassInfo, api []*external.ClassData) []rules.ClassInfo {
	out := slices.Clone(builtin)
	for _, data := range api {
		if data == nil {
			continue
		}
		class, ok := rules.ParseClass(data.Key)
		if !ok {
			slog.Debug("skipping class missing from the rules table", "class", data.Key)
			continue
		}
		for i := range out {
			if out[i].Class == class && data.Name != "" {
				out[i].Name = data.Name
			}
		}
	}
	return out
}
