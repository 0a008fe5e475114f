package rules

import (
	"slices"

	"github.com/KirkDiggler/rpg-charbuilder/internal/errors"
)

// PrepareSpells splits a selection into known and prepared lists.
// Spellbook casters prepare the first 1 + mod(INT) spells in the order given.
// Prepared casters know the whole class list, so known is nil. An empty
// selection or a non-caster yields nil for both.
func PrepareSpells(kind SpellcastingType, selected []string, intelligence int) (known, prepared []string) {
	if len(selected) == 0 {
		return nil, nil
	}

	switch kind {
	case SpellcastingKnown:
		known = slices.Clone(selected)
		return known, slices.Clone(selected)
	case SpellcastingSpellbook:
		n := min(len(selected), WizardPreparedCount(intelligence))
		return slices.Clone(selected), slices.Clone(selected[:n])
	case SpellcastingPrepared:
		return nil, slices.Clone(selected)
	default:
		return nil, nil
	}
}

// WizardPreparedCount is 1 + mod(INT), never negative
func WizardPreparedCount(intelligence int) int {
	return max(0, 1+Modifier(intelligence))
}

// SpellRef is a selected spell with its level; level 0 is a cantrip
type SpellRef struct {
	Key   string `json:"key"`
	Level int    `json:"level"`
}

// ValidateSpellSelection checks a selection against a resolved profile.
// Known and spellbook casters are held to their spells known total and the
// per level limits; prepared casters only to the max spell level.
func ValidateSpellSelection(profile ClassSpellProfile, selection []SpellRef) error {
	vb := errors.NewValidationBuilder()

	if !profile.IsCaster() {
		if len(selection) > 0 {
			vb.Fieldf("spells", "%s cannot cast spells at level %d", profile.Class, profile.Level)
		}
		return vb.Build()
	}

	seen := make(map[string]bool, len(selection))
	cantrips := 0
	perLevel := map[int]int{}
	for _, s := range selection {
		if s.Key == "" {
			vb.Field("spells", "spell key is required")
			continue
		}
		if seen[s.Key] {
			vb.Fieldf("spells", "%s selected more than once", s.Key)
			continue
		}
		seen[s.Key] = true

		switch {
		case s.Level == 0:
			cantrips++
		case s.Level < 0 || s.Level > profile.MaxSpellLevel:
			vb.Fieldf("spells", "%s is level %d, max spell level is %d", s.Key, s.Level, profile.MaxSpellLevel)
		default:
			perLevel[s.Level]++
		}
	}

	if cantrips > profile.CantripsKnown {
		vb.Fieldf("cantrips", "selected %d, allowed %d", cantrips, profile.CantripsKnown)
	}

	if profile.Type == SpellcastingPrepared {
		return vb.Build()
	}

	total := 0
	for _, n := range perLevel {
		total += n
	}
	if total > profile.SpellsKnown {
		vb.Fieldf("spells", "selected %d, allowed %d", total, profile.SpellsKnown)
	}
	for level := 1; level <= profile.MaxSpellLevel; level++ {
		limit := profile.SpellLevelLimits[level]
		if limit > 0 && perLevel[level] > limit {
			vb.Fieldf("spells", "selected %d level %d spells, allowed %d", perLevel[level], level, limit)
		}
	}

	return vb.Build()
}
