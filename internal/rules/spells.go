package rules

import (
	"maps"
	"sync"
)

// SpellcastingType decides how selected spells map to usable spells
type SpellcastingType string

// Spellcasting types
const (
	SpellcastingNone      SpellcastingType = "none"
	SpellcastingKnown     SpellcastingType = "known"
	SpellcastingPrepared  SpellcastingType = "prepared"
	SpellcastingSpellbook SpellcastingType = "spellbook"
)

// ClassSpellProfile is one class and level row of the spell table.
// A SpellLevelLimits value of 0 means the class has no numeric cap at that
// spell level.
type ClassSpellProfile struct {
	Class            Class            `json:"class"`
	Level            int              `json:"level"`
	CantripsKnown    int              `json:"cantripsKnown"`
	SpellsKnown      int              `json:"spellsKnown"`
	Type             SpellcastingType `json:"spellcastingType"`
	MaxSpellLevel    int              `json:"maxSpellLevel"`
	SpellLevelLimits map[int]int      `json:"spellLevelLimits"`
	SpellSlots       map[int]int      `json:"spellSlots"`
}

// IsCaster reports whether the row grants any spellcasting
func (p ClassSpellProfile) IsCaster() bool {
	return p.Type != SpellcastingNone && p.Type != ""
}

func (p ClassSpellProfile) clone() ClassSpellProfile {
	p.SpellLevelLimits = maps.Clone(p.SpellLevelLimits)
	p.SpellSlots = maps.Clone(p.SpellSlots)
	return p
}

// EmptySpellProfile is returned for classes without a spell table row
func EmptySpellProfile(class Class, level int) ClassSpellProfile {
	return ClassSpellProfile{
		Class:            class,
		Level:            ClampLevel(level),
		Type:             SpellcastingNone,
		SpellLevelLimits: map[int]int{},
		SpellSlots:       map[int]int{},
	}
}

type profileKey struct {
	class Class
	level int
}

// SpellProfiles is an immutable class and level lookup table
type SpellProfiles struct {
	rows map[profileKey]ClassSpellProfile
}

// NewSpellProfiles builds a table from rows. Rows are copied.
func NewSpellProfiles(rows []ClassSpellProfile) *SpellProfiles {
	t := &SpellProfiles{rows: make(map[profileKey]ClassSpellProfile, len(rows))}
	for _, r := range rows {
		t.rows[profileKey{r.Class, r.Level}] = r.clone()
	}
	return t
}

// Resolve looks up the row for class and level. Missing rows resolve to an
// empty profile. The returned maps are copies.
func (t *SpellProfiles) Resolve(class Class, level int) ClassSpellProfile {
	level = ClampLevel(level)
	class = class.Normalize()
	row, ok := t.rows[profileKey{class, level}]
	if !ok {
		return EmptySpellProfile(class, level)
	}
	return row.clone()
}

var (
	defaultProfilesOnce sync.Once
	defaultProfiles     *SpellProfiles
)

// DefaultSpellProfiles returns the Player's Handbook table. It is built once
// and shared read-only.
func DefaultSpellProfiles() *SpellProfiles {
	defaultProfilesOnce.Do(func() {
		defaultProfiles = NewSpellProfiles(buildSpellProfileRows())
	})
	return defaultProfiles
}

// cantrips and spells known per level 1..20
type progressionRow struct{ cantrips, known int }

var spellProgression = map[Class][20]progressionRow{
	ClassBard: {
		{2, 4}, {2, 5}, {2, 6}, {3, 7}, {3, 8}, {3, 9}, {3, 10}, {3, 11}, {3, 12}, {4, 14},
		{4, 15}, {4, 15}, {4, 16}, {4, 18}, {4, 19}, {4, 19}, {4, 20}, {4, 22}, {4, 22}, {4, 22},
	},
	ClassCleric: {
		{3, 0}, {3, 0}, {3, 0}, {4, 0}, {4, 0}, {4, 0}, {4, 0}, {4, 0}, {4, 0}, {5, 0},
		{5, 0}, {5, 0}, {5, 0}, {5, 0}, {5, 0}, {5, 0}, {5, 0}, {5, 0}, {5, 0}, {5, 0},
	},
	ClassDruid: {
		{2, 0}, {2, 0}, {2, 0}, {3, 0}, {3, 0}, {3, 0}, {3, 0}, {3, 0}, {3, 0}, {4, 0},
		{4, 0}, {4, 0}, {4, 0}, {4, 0}, {4, 0}, {4, 0}, {4, 0}, {4, 0}, {4, 0}, {4, 0},
	},
	ClassPaladin: {},
	ClassRanger: {
		{0, 0}, {0, 2}, {0, 3}, {0, 3}, {0, 4}, {0, 4}, {0, 5}, {0, 5}, {0, 6}, {0, 6},
		{0, 7}, {0, 7}, {0, 8}, {0, 8}, {0, 9}, {0, 9}, {0, 10}, {0, 10}, {0, 11}, {0, 11},
	},
	ClassSorcerer: {
		{4, 2}, {4, 3}, {4, 4}, {5, 5}, {5, 6}, {5, 7}, {5, 8}, {5, 9}, {5, 10}, {6, 11},
		{6, 12}, {6, 12}, {6, 13}, {6, 13}, {6, 14}, {6, 14}, {6, 15}, {6, 15}, {6, 15}, {6, 15},
	},
	ClassWarlock: {
		{2, 2}, {2, 3}, {2, 4}, {3, 5}, {3, 6}, {3, 7}, {3, 8}, {3, 9}, {3, 10}, {4, 10},
		{4, 11}, {4, 11}, {4, 12}, {4, 12}, {4, 13}, {4, 13}, {4, 14}, {4, 14}, {4, 15}, {4, 15},
	},
	ClassWizard: {
		{3, 6}, {3, 8}, {3, 10}, {4, 12}, {4, 14}, {4, 16}, {4, 18}, {4, 20}, {4, 22}, {5, 24},
		{5, 26}, {5, 28}, {5, 30}, {5, 32}, {5, 34}, {5, 36}, {5, 38}, {5, 40}, {5, 42}, {5, 44},
	},
}

var spellcastingTypes = map[Class]SpellcastingType{
	ClassBard:     SpellcastingKnown,
	ClassCleric:   SpellcastingPrepared,
	ClassDruid:    SpellcastingPrepared,
	ClassPaladin:  SpellcastingPrepared,
	ClassRanger:   SpellcastingKnown,
	ClassSorcerer: SpellcastingKnown,
	ClassWarlock:  SpellcastingKnown,
	ClassWizard:   SpellcastingSpellbook,
}

// explicit per spell level caps, indexed by character level - 1
var bardSpellLevelLimits = [20][9]int{
	{4}, {5}, {4, 2}, {4, 3}, {4, 3, 1},
	{4, 3, 2}, {4, 3, 2, 1}, {4, 3, 2, 2}, {4, 3, 2, 2, 1}, {4, 3, 2, 2, 3},
	{4, 3, 2, 2, 3, 1}, {4, 3, 2, 2, 3, 1}, {4, 3, 2, 2, 3, 1, 1}, {4, 3, 2, 2, 3, 1, 3}, {4, 3, 2, 2, 3, 1, 3, 1},
	{4, 3, 2, 2, 3, 1, 3, 1}, {4, 3, 2, 2, 3, 1, 3, 1, 1}, {4, 3, 2, 2, 3, 1, 3, 1, 3}, {4, 3, 2, 2, 3, 1, 3, 1, 3}, {4, 3, 2, 2, 3, 1, 3, 1, 3},
}

var wizardSpellLevelLimits = [20][9]int{
	{6}, {8}, {6, 4}, {6, 6}, {6, 6, 2},
	{6, 6, 4}, {6, 6, 4, 2}, {6, 6, 4, 4}, {6, 6, 4, 4, 2}, {6, 6, 4, 4, 4},
	{6, 6, 4, 4, 4, 2}, {6, 6, 4, 4, 4, 4}, {6, 6, 4, 4, 4, 4, 2}, {6, 6, 4, 4, 4, 4, 4}, {6, 6, 4, 4, 4, 4, 4, 2},
	{6, 6, 4, 4, 4, 4, 4, 4}, {6, 6, 4, 4, 4, 4, 4, 4, 2}, {6, 6, 4, 4, 4, 4, 4, 4, 4}, {6, 6, 4, 4, 4, 4, 4, 4, 6}, {6, 6, 4, 4, 4, 4, 4, 4, 8},
}

func buildSpellProfileRows() []ClassSpellProfile {
	rows := make([]ClassSpellProfile, 0, len(spellProgression)*MaxLevel)
	for class, progression := range spellProgression {
		info, _ := class.Info()
		for level := MinLevel; level <= MaxLevel; level++ {
			rows = append(rows, buildSpellProfileRow(info, level, progression[level-1]))
		}
	}
	return rows
}

func buildSpellProfileRow(info ClassInfo, level int, prog progressionRow) ClassSpellProfile {
	maxSpellLevel := MaxSpellLevel(info.Caster, level)
	if maxSpellLevel == 0 {
		return EmptySpellProfile(info.Class, level)
	}

	profile := ClassSpellProfile{
		Class:            info.Class,
		Level:            level,
		CantripsKnown:    prog.cantrips,
		SpellsKnown:      prog.known,
		Type:             spellcastingTypes[info.Class],
		MaxSpellLevel:    maxSpellLevel,
		SpellLevelLimits: make(map[int]int, maxSpellLevel),
		SpellSlots:       SpellSlots(info.Caster, level),
	}

	var explicit *[9]int
	switch info.Class {
	case ClassBard:
		explicit = &bardSpellLevelLimits[level-1]
	case ClassWizard:
		explicit = &wizardSpellLevelLimits[level-1]
	}

	for spellLevel := 1; spellLevel <= maxSpellLevel; spellLevel++ {
		switch {
		case explicit != nil:
			profile.SpellLevelLimits[spellLevel] = explicit[spellLevel-1]
		case profile.Type == SpellcastingPrepared:
			profile.SpellLevelLimits[spellLevel] = 0
		default:
			profile.SpellLevelLimits[spellLevel] = prog.known
		}
	}

	return profile
}
