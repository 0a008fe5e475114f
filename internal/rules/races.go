package rules

import (
	"maps"
	"slices"
	"strings"
)

// Race identifies a playable race by key, e.g. "half-elf"
type Race string

// Races with built-in rules rows
const (
	RaceHuman      Race = "human"
	RaceElf        Race = "elf"
	RaceDwarf      Race = "dwarf"
	RaceHalfling   Race = "halfling"
	RaceGnome      Race = "gnome"
	RaceHalfElf    Race = "half-elf"
	RaceHalfOrc    Race = "half-orc"
	RaceDragonborn Race = "dragonborn"
	RaceTiefling   Race = "tiefling"
	RaceAasimar    Race = "aasimar"
	RaceGoliath    Race = "goliath"
	RaceTabaxi     Race = "tabaxi"
)

// Sizes
const (
	SizeSmall  = "Small"
	SizeMedium = "Medium"
)

// RaceInfo is the rules row for a race
type RaceInfo struct {
	Race           Race            `json:"race"`
	Name           string          `json:"name"`
	Speed          int             `json:"speed"`
	Size           string          `json:"size"`
	AbilityBonuses map[Ability]int `json:"abilityBonuses"`
}

// Clone returns a deep copy
func (r RaceInfo) Clone() RaceInfo {
	r.AbilityBonuses = maps.Clone(r.AbilityBonuses)
	return r
}

func allPlusOne() map[Ability]int {
	out := make(map[Ability]int, len(Abilities))
	for _, a := range Abilities {
		out[a] = 1
	}
	return out
}

// DefaultRaces returns the built-in race rows ordered by name. Choice based
// bonuses, like the Half-Elf's two extra points, are not included.
func DefaultRaces() []RaceInfo {
	races := []RaceInfo{
		{RaceHuman, "Human", 30, SizeMedium, allPlusOne()},
		{RaceElf, "Elf", 30, SizeMedium, map[Ability]int{Dexterity: 2}},
		{RaceDwarf, "Dwarf", 25, SizeMedium, map[Ability]int{Constitution: 2}},
		{RaceHalfling, "Halfling", 25, SizeSmall, map[Ability]int{Dexterity: 2}},
		{RaceGnome, "Gnome", 25, SizeSmall, map[Ability]int{Intelligence: 2}},
		{RaceHalfElf, "Half-Elf", 30, SizeMedium, map[Ability]int{Charisma: 2}},
		{RaceHalfOrc, "Half-Orc", 30, SizeMedium, map[Ability]int{Strength: 2, Constitution: 1}},
		{RaceDragonborn, "Dragonborn", 30, SizeMedium, map[Ability]int{Strength: 2, Charisma: 1}},
		{RaceTiefling, "Tiefling", 30, SizeMedium, map[Ability]int{Charisma: 2, Intelligence: 1}},
		{RaceAasimar, "Aasimar", 30, SizeMedium, map[Ability]int{Charisma: 2}},
		{RaceGoliath, "Goliath", 30, SizeMedium, map[Ability]int{Strength: 2, Constitution: 1}},
		{RaceTabaxi, "Tabaxi", 30, SizeMedium, map[Ability]int{Dexterity: 2, Charisma: 1}},
	}
	slices.SortFunc(races, func(a, b RaceInfo) int { return strings.Compare(a.Name, b.Name) })
	return races
}

// ParseRace normalizes "Half Elf", "half_elf" and "RACE_HALF_ELF" to a key
func ParseRace(s string) Race {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.TrimPrefix(key, "race_")
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	return Race(key)
}

// ApplyRacialBonuses adds the race's bonuses to the base scores
func ApplyRacialBonuses(base AbilityScores, race RaceInfo) AbilityScores {
	return base.Add(race.AbilityBonuses)
}
