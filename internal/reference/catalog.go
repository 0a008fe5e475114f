// Package reference holds the immutable race, class, background and
// equipment snapshot the creation flow validates against. Spells are read
// through the dnd5e-api client on demand.
package reference

import (
	"context"
	"slices"
	"sync"

	"github.com/KirkDiggler/rpg-charbuilder/internal/clients/external"
	"github.com/KirkDiggler/rpg-charbuilder/internal/errors"
	"github.com/KirkDiggler/rpg-charbuilder/internal/rules"
)

// Spell is a spell as listed to clients
type Spell struct {
	Key           string `json:"key"`
	Name          string `json:"name"`
	Level         int    `json:"level"`
	School        string `json:"school,omitempty"`
	CastingTime   string `json:"castingTime,omitempty"`
	Range         string `json:"range,omitempty"`
	Duration      string `json:"duration,omitempty"`
	Ritual        bool   `json:"ritual,omitempty"`
	Concentration bool   `json:"concentration,omitempty"`
}

// ListSpellsInput filters Catalog.Spells
type ListSpellsInput struct {
	Class rules.Class
	// Level filters by spell level when set
	Level *int
}

// Catalog is read-only after construction and safe for concurrent use
type Catalog struct {
	races       []rules.RaceInfo
	classes     []rules.ClassInfo
	backgrounds []rules.BackgroundInfo
	packs       []rules.EquipmentPack
	profiles    *rules.SpellProfiles
	spells      external.Client
}

func newCatalog(races []rules.RaceInfo, classes []rules.ClassInfo, spells external.Client) *Catalog {
	return &Catalog{
		races:       races,
		classes:     classes,
		backgrounds: rules.DefaultBackgrounds(),
		packs:       rules.EquipmentPacks(),
		profiles:    rules.DefaultSpellProfiles(),
		spells:      spells,
	}
}

var (
	staticOnce    sync.Once
	staticCatalog *Catalog
)

// Static returns the catalog built from the built-in rule tables. It has no
// spell source.
func Static() *Catalog {
	staticOnce.Do(func() {
		staticCatalog = newCatalog(rules.DefaultRaces(), rules.ClassInfos(), nil)
	})
	return staticCatalog
}

// Online reports whether spells can be listed
func (c *Catalog) Online() bool {
	return c.spells != nil
}

// Races returns copies of every race, ordered by name
func (c *Catalog) Races() []rules.RaceInfo {
	out := make([]rules.RaceInfo, len(c.races))
	for i, r := range c.races {
		out[i] = r.Clone()
	}
	return out
}

// Race looks up a race by key or display name
func (c *Catalog) Race(s string) (rules.RaceInfo, bool) {
	key := rules.ParseRace(s)
	for _, r := range c.races {
		if r.Race == key {
			return r.Clone(), true
		}
	}
	return rules.RaceInfo{}, false
}

// Classes returns every class, ordered by name
func (c *Catalog) Classes() []rules.ClassInfo {
	return slices.Clone(c.classes)
}

// Class looks up a class by key or display name
func (c *Catalog) Class(s string) (rules.ClassInfo, bool) {
	key, _ := rules.ParseClass(s)
	for _, ci := range c.classes {
		if ci.Class == key {
			return ci, true
		}
	}
	return rules.ClassInfo{}, false
}

// Backgrounds returns every background, ordered by name
func (c *Catalog) Backgrounds() []rules.BackgroundInfo {
	out := make([]rules.BackgroundInfo, len(c.backgrounds))
	for i, b := range c.backgrounds {
		b.Skills = slices.Clone(b.Skills)
		b.Equipment = slices.Clone(b.Equipment)
		out[i] = b
	}
	return out
}

// Background looks up a background by key or display name
func (c *Catalog) Background(s string) (rules.BackgroundInfo, bool) {
	key := rules.ParseBackground(s)
	for _, b := range c.backgrounds {
		if b.Background == key {
			b.Skills = slices.Clone(b.Skills)
			b.Equipment = slices.Clone(b.Equipment)
			return b, true
		}
	}
	return rules.BackgroundInfo{}, false
}

// EquipmentPacks returns every pack
func (c *Catalog) EquipmentPacks() []rules.EquipmentPack {
	out := make([]rules.EquipmentPack, len(c.packs))
	for i, p := range c.packs {
		p.Items = slices.Clone(p.Items)
		out[i] = p
	}
	return out
}

// EquipmentPack looks up a pack by key or name
func (c *Catalog) EquipmentPack(s string) (rules.EquipmentPack, bool) {
	return rules.FindEquipmentPack(s)
}

// SpellProfile resolves the spellcasting row for a class and level
func (c *Catalog) SpellProfile(class rules.Class, level int) rules.ClassSpellProfile {
	return c.profiles.Resolve(class, level)
}

// Spells lists spells from the dnd5e-api
func (c *Catalog) Spells(ctx context.Context, input ListSpellsInput) ([]Spell, error) {
	if !c.Online() {
		return nil, errors.Unavailable("spell listing needs the dnd5e-api; reference data is offline")
	}

	data, err := c.spells.ListSpells(ctx, &external.ListSpellsInput{
		Class: string(input.Class),
		Level: input.Level,
	})
	if err != nil {
		return nil, err
	}

	out := make([]Spell, 0, len(data))
	for _, d := range data {
		out = append(out, Spell{
			Key:           d.Key,
			Name:          d.Name,
			Level:         d.Level,
			School:        d.School,
			CastingTime:   d.CastingTime,
			Range:         d.Range,
			Duration:      d.Duration,
			Ritual:        d.Ritual,
			Concentration: d.Concentration,
		})
	}
	return out, nil
}

// SpellLevels maps every spell key a class can take at spell levels
// 0..maxLevel to its level. Offline catalogs return errors.Unavailable.
func (c *Catalog) SpellLevels(ctx context.Context, class rules.Class, maxLevel int) (map[string]int, error) {
	out := make(map[string]int)
	for level := 0; level <= maxLevel; level++ {
		spells, err := c.Spells(ctx, ListSpellsInput{Class: class, Level: &level})
		if err != nil {
			return nil, err
		}
		for _, s := range spells {
			out[s.Key] = s.Level
		}
	}
	return out, nil
}
