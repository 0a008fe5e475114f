package rules

import (
	"slices"
	"strings"
)

// Item is a named inventory entry
type Item struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// EquipmentPack is one of the SRD adventuring packs
type EquipmentPack struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Cost  string `json:"cost"`
	Items []Item `json:"items"`
}

// NoPackKey selects no pack; starting gold is rolled instead
const NoPackKey = "none"

var equipmentPacks = []EquipmentPack{
	{Key: "burglars-pack", Name: "Burglar's Pack", Cost: "16 gp", Items: []Item{
		{"Backpack", 1}, {"Ball Bearings (bag of 1,000)", 1}, {"String (10 feet)", 1}, {"Bell", 1},
		{"Candle", 5}, {"Crowbar", 1}, {"Hammer", 1}, {"Piton", 10}, {"Lantern, Hooded", 1},
		{"Oil (flask)", 2}, {"Rations (1 day)", 5}, {"Tinderbox", 1}, {"Waterskin", 1},
		{"Rope, Hempen (50 feet)", 1},
	}},
	{Key: "diplomats-pack", Name: "Diplomat's Pack", Cost: "39 gp", Items: []Item{
		{"Chest", 1}, {"Case, Map or Scroll", 2}, {"Clothes, Fine", 1}, {"Ink (1 ounce bottle)", 1},
		{"Ink Pen", 1}, {"Lamp", 1}, {"Oil (flask)", 2}, {"Paper (one sheet)", 5},
		{"Perfume (vial)", 1}, {"Sealing Wax", 1}, {"Soap", 1},
	}},
	{Key: "dungeoneers-pack", Name: "Dungeoneer's Pack", Cost: "12 gp", Items: []Item{
		{"Backpack", 1}, {"Crowbar", 1}, {"Hammer", 1}, {"Piton", 10}, {"Torch", 10},
		{"Tinderbox", 1}, {"Rations (1 day)", 10}, {"Waterskin", 1}, {"Rope, Hempen (50 feet)", 1},
	}},
	{Key: "entertainers-pack", Name: "Entertainer's Pack", Cost: "40 gp", Items: []Item{
		{"Backpack", 1}, {"Bedroll", 1}, {"Clothes, Costume", 2}, {"Candle", 5},
		{"Rations (1 day)", 5}, {"Waterskin", 1}, {"Disguise Kit", 1},
	}},
	{Key: "explorers-pack", Name: "Explorer's Pack", Cost: "10 gp", Items: []Item{
		{"Backpack", 1}, {"Bedroll", 1}, {"Mess Kit", 1}, {"Tinderbox", 1}, {"Torch", 10},
		{"Rations (1 day)", 10}, {"Waterskin", 1}, {"Rope, Hempen (50 feet)", 1},
	}},
	{Key: "priests-pack", Name: "Priest's Pack", Cost: "19 gp", Items: []Item{
		{"Backpack", 1}, {"Blanket", 1}, {"Candle", 10}, {"Tinderbox", 1}, {"Alms Box", 1},
		{"Incense (1 block)", 2}, {"Censer", 1}, {"Vestments", 1}, {"Rations (1 day)", 2},
		{"Waterskin", 1},
	}},
	{Key: "scholars-pack", Name: "Scholar's Pack", Cost: "40 gp", Items: []Item{
		{"Backpack", 1}, {"Book", 1}, {"Ink (1 ounce bottle)", 1}, {"Ink Pen", 1},
		{"Parchment (one sheet)", 10}, {"Little Bag of Sand", 1}, {"Small Knife", 1},
	}},
}

// EquipmentPacks returns copies of the SRD packs ordered by name
func EquipmentPacks() []EquipmentPack {
	out := make([]EquipmentPack, len(equipmentPacks))
	for i, p := range equipmentPacks {
		p.Items = slices.Clone(p.Items)
		out[i] = p
	}
	return out
}

// FindEquipmentPack accepts a pack key or display name
func FindEquipmentPack(key string) (EquipmentPack, bool) {
	k := ParsePackKey(key)
	for _, p := range equipmentPacks {
		if p.Key == k {
			p.Items = slices.Clone(p.Items)
			return p, true
		}
	}
	return EquipmentPack{}, false
}

// ParsePackKey turns "Burglar's Pack" into "burglars-pack"
func ParsePackKey(s string) string {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("'", "", "_", "-", " ", "-").Replace(key)
	return key
}

// MergeInventory combines item lists, summing quantities of items with the
// same name. Items keep the order they first appeared in. Non-positive
// quantities count as one.
func MergeInventory(lists ...[]Item) []Item {
	var out []Item
	index := map[string]int{}
	for _, list := range lists {
		for _, it := range list {
			name := strings.TrimSpace(it.Name)
			if name == "" {
				continue
			}
			qty := max(it.Quantity, 1)
			if i, ok := index[name]; ok {
				out[i].Quantity += qty
				continue
			}
			index[name] = len(out)
			out = append(out, Item{Name: name, Quantity: qty})
		}
	}
	return out
}
