package rules

import (
	"sort"
	"strings"
)

// Class identifies a character class
type Class string

// Classes
const (
	ClassBarbarian Class = "barbarian"
	ClassBard      Class = "bard"
	ClassCleric    Class = "cleric"
	ClassDruid     Class = "druid"
	ClassFighter   Class = "fighter"
	ClassMonk      Class = "monk"
	ClassPaladin   Class = "paladin"
	ClassRanger    Class = "ranger"
	ClassRogue     Class = "rogue"
	ClassSorcerer  Class = "sorcerer"
	ClassWarlock   Class = "warlock"
	ClassWizard    Class = "wizard"
)

// DefaultHitDie is used for classes missing from the class table
const DefaultHitDie = 8

// CasterProgression is how fast a class gains spell levels
type CasterProgression string

// Caster progressions
const (
	CasterNone CasterProgression = "none"
	CasterFull CasterProgression = "full"
	CasterHalf CasterProgression = "half"
	CasterPact CasterProgression = "pact"
)

// ClassInfo is the fixed rules row for a class
type ClassInfo struct {
	Class               Class             `json:"class"`
	Name                string            `json:"name"`
	HitDie              int               `json:"hitDie"`
	SpellcastingAbility Ability           `json:"spellcastingAbility,omitempty"`
	SavingThrows        [2]Ability        `json:"savingThrows"`
	Caster              CasterProgression `json:"caster"`
	StartingGold        string            `json:"startingGoldFormula"`
}

// IsCaster reports whether the class has a spellcasting ability
func (c ClassInfo) IsCaster() bool {
	return c.SpellcastingAbility != ""
}

// Normalize folds case and the CLASS_ prefix, so "Fighter" and
// "CLASS_FIGHTER" both become ClassFighter
func (c Class) Normalize() Class {
	key := strings.ToLower(strings.TrimSpace(string(c)))
	return Class(strings.TrimPrefix(key, "class_"))
}

// Info returns the rules row for the class. The switch is exhaustive over
// the class constants; ok is false for anything else.
func (c Class) Info() (ClassInfo, bool) {
	c = c.Normalize()
	switch c {
	case ClassBarbarian:
		return ClassInfo{c, "Barbarian", 12, "", [2]Ability{Strength, Constitution}, CasterNone, "2d4*10"}, true
	case ClassBard:
		return ClassInfo{c, "Bard", 8, Charisma, [2]Ability{Dexterity, Charisma}, CasterFull, "5d4*10"}, true
	case ClassCleric:
		return ClassInfo{c, "Cleric", 8, Wisdom, [2]Ability{Wisdom, Charisma}, CasterFull, "5d4*10"}, true
	case ClassDruid:
		return ClassInfo{c, "Druid", 8, Wisdom, [2]Ability{Intelligence, Wisdom}, CasterFull, "2d4*10"}, true
	case ClassFighter:
		return ClassInfo{c, "Fighter", 10, "", [2]Ability{Strength, Constitution}, CasterNone, "5d4*10"}, true
	case ClassMonk:
		return ClassInfo{c, "Monk", 8, "", [2]Ability{Strength, Dexterity}, CasterNone, "5d4"}, true
	case ClassPaladin:
		return ClassInfo{c, "Paladin", 10, Charisma, [2]Ability{Wisdom, Charisma}, CasterHalf, "5d4*10"}, true
	case ClassRanger:
		return ClassInfo{c, "Ranger", 10, Wisdom, [2]Ability{Strength, Dexterity}, CasterHalf, "5d4*10"}, true
	case ClassRogue:
		return ClassInfo{c, "Rogue", 8, "", [2]Ability{Dexterity, Intelligence}, CasterNone, "4d4*10"}, true
	case ClassSorcerer:
		return ClassInfo{c, "Sorcerer", 6, Charisma, [2]Ability{Constitution, Charisma}, CasterFull, "3d4*10"}, true
	case ClassWarlock:
		return ClassInfo{c, "Warlock", 8, Charisma, [2]Ability{Wisdom, Charisma}, CasterPact, "4d4*10"}, true
	case ClassWizard:
		return ClassInfo{c, "Wizard", 6, Intelligence, [2]Ability{Intelligence, Wisdom}, CasterFull, "4d4*10"}, true
	default:
		return ClassInfo{}, false
	}
}

// HitDie returns the class hit die, or DefaultHitDie for an unknown class
func (c Class) HitDie() (hitDie int, known bool) {
	info, ok := c.Info()
	if !ok {
		return DefaultHitDie, false
	}
	return info.HitDie, true
}

// SpellcastingAbility returns the casting ability, empty for non-casters
func (c Class) SpellcastingAbility() Ability {
	info, _ := c.Info()
	return info.SpellcastingAbility
}

// AllClasses lists every class constant
func AllClasses() []Class {
	return []Class{
		ClassBarbarian, ClassBard, ClassCleric, ClassDruid, ClassFighter, ClassMonk,
		ClassPaladin, ClassRanger, ClassRogue, ClassSorcerer, ClassWarlock, ClassWizard,
	}
}

// ClassInfos returns every class row ordered by name
func ClassInfos() []ClassInfo {
	out := make([]ClassInfo, 0, len(AllClasses()))
	for _, c := range AllClasses() {
		info, _ := c.Info()
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ParseClass accepts "Wizard", "wizard" and "CLASS_WIZARD"
func ParseClass(s string) (Class, bool) {
	c := Class(s).Normalize()
	if _, ok := c.Info(); ok {
		return c, true
	}
	return c, false
}
