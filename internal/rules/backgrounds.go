package rules

import (
	"slices"
	"strings"
)

// Background identifies a character background by key, e.g. "folk-hero"
type Background string

// BackgroundInfo is the rules row for a background
type BackgroundInfo struct {
	Background Background `json:"background"`
	Name       string     `json:"name"`
	Skills     []string   `json:"skills"`
	Equipment  []Item     `json:"equipment"`
	// StartingGold is the fixed purse used when an equipment pack is taken
	StartingGold int `json:"startingGold"`
	// GoldFormula is rolled on top of the class formula when no pack is
	// taken. Empty for every built-in background.
	GoldFormula string `json:"goldFormula,omitempty"`
}

var defaultBackgrounds = []BackgroundInfo{
	{Name: "Acolyte", Skills: []string{"Insight", "Religion"}, StartingGold: 15, Equipment: []Item{
		{"Holy Symbol", 1}, {"Prayer Book", 1}, {"Incense (stick)", 5}, {"Vestments", 1}, {"Clothes, Common", 1}, {"Pouch", 1},
	}},
	{Name: "Criminal", Skills: []string{"Deception", "Stealth"}, StartingGold: 15, Equipment: []Item{
		{"Crowbar", 1}, {"Clothes, Common (dark, hooded)", 1}, {"Pouch", 1},
	}},
	{Name: "Folk Hero", Skills: []string{"Animal Handling", "Survival"}, StartingGold: 10, Equipment: []Item{
		{"Artisan's Tools", 1}, {"Shovel", 1}, {"Pot, Iron", 1}, {"Clothes, Common", 1}, {"Pouch", 1},
	}},
	{Name: "Noble", Skills: []string{"History", "Persuasion"}, StartingGold: 25, Equipment: []Item{
		{"Clothes, Fine", 1}, {"Signet Ring", 1}, {"Scroll of Pedigree", 1}, {"Pouch", 1},
	}},
	{Name: "Sage", Skills: []string{"Arcana", "History"}, StartingGold: 10, Equipment: []Item{
		{"Ink (1 ounce bottle)", 1}, {"Ink Pen", 1}, {"Small Knife", 1}, {"Letter from a Dead Colleague", 1}, {"Clothes, Common", 1}, {"Pouch", 1},
	}},
	{Name: "Soldier", Skills: []string{"Athletics", "Intimidation"}, StartingGold: 10, Equipment: []Item{
		{"Insignia of Rank", 1}, {"Trophy", 1}, {"Dice Set", 1}, {"Clothes, Common", 1}, {"Pouch", 1},
	}},
	{Name: "Charlatan", Skills: []string{"Deception", "Sleight of Hand"}, StartingGold: 15, Equipment: []Item{
		{"Clothes, Fine", 1}, {"Disguise Kit", 1}, {"Tools of the Con", 1}, {"Pouch", 1},
	}},
	{Name: "Entertainer", Skills: []string{"Acrobatics", "Performance"}, StartingGold: 15, Equipment: []Item{
		{"Musical Instrument", 1}, {"Favor of an Admirer", 1}, {"Clothes, Costume", 1}, {"Pouch", 1},
	}},
	{Name: "Guild Artisan", Skills: []string{"Insight", "Persuasion"}, StartingGold: 15, Equipment: []Item{
		{"Artisan's Tools", 1}, {"Letter of Introduction", 1}, {"Clothes, Traveler's", 1}, {"Pouch", 1},
	}},
	{Name: "Hermit", Skills: []string{"Medicine", "Religion"}, StartingGold: 5, Equipment: []Item{
		{"Case, Map or Scroll", 1}, {"Blanket", 1}, {"Clothes, Common", 1}, {"Herbalism Kit", 1}, {"Pouch", 1},
	}},
	{Name: "Outlander", Skills: []string{"Athletics", "Survival"}, StartingGold: 10, Equipment: []Item{
		{"Quarterstaff", 1}, {"Hunting Trap", 1}, {"Trophy", 1}, {"Clothes, Traveler's", 1}, {"Pouch", 1},
	}},
	{Name: "Sailor", Skills: []string{"Athletics", "Perception"}, StartingGold: 10, Equipment: []Item{
		{"Club", 1}, {"Rope, Silk (50 feet)", 1}, {"Lucky Charm", 1}, {"Clothes, Common", 1}, {"Pouch", 1},
	}},
}

// DefaultBackgrounds returns copies of the built-in background rows ordered
// by name
func DefaultBackgrounds() []BackgroundInfo {
	out := make([]BackgroundInfo, len(defaultBackgrounds))
	for i, b := range defaultBackgrounds {
		b.Background = ParseBackground(b.Name)
		b.Skills = slices.Clone(b.Skills)
		b.Equipment = slices.Clone(b.Equipment)
		out[i] = b
	}
	slices.SortFunc(out, func(a, b BackgroundInfo) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// ParseBackground normalizes "Folk Hero" and "BACKGROUND_FOLK_HERO" to a key
func ParseBackground(s string) Background {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.TrimPrefix(key, "background_")
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	return Background(key)
}

// Alignment is one of the nine alignments, e.g. "lawful-good"
type Alignment string

// Alignments
const (
	AlignmentLawfulGood     Alignment = "lawful-good"
	AlignmentNeutralGood    Alignment = "neutral-good"
	AlignmentChaoticGood    Alignment = "chaotic-good"
	AlignmentLawfulNeutral  Alignment = "lawful-neutral"
	AlignmentTrueNeutral    Alignment = "true-neutral"
	AlignmentChaoticNeutral Alignment = "chaotic-neutral"
	AlignmentLawfulEvil     Alignment = "lawful-evil"
	AlignmentNeutralEvil    Alignment = "neutral-evil"
	AlignmentChaoticEvil    Alignment = "chaotic-evil"
)

// Alignments lists the nine alignments
func Alignments() []Alignment {
	return []Alignment{
		AlignmentLawfulGood, AlignmentNeutralGood, AlignmentChaoticGood,
		AlignmentLawfulNeutral, AlignmentTrueNeutral, AlignmentChaoticNeutral,
		AlignmentLawfulEvil, AlignmentNeutralEvil, AlignmentChaoticEvil,
	}
}

// ParseAlignment accepts "Lawful Good", "lawful_good" and "neutral" (true
// neutral)
func ParseAlignment(s string) (Alignment, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.TrimPrefix(key, "alignment_")
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	if key == "neutral" {
		key = string(AlignmentTrueNeutral)
	}
	a := Alignment(key)
	return a, slices.Contains(Alignments(), a)
}
