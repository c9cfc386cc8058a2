package config

// ItemID identifies the held item or tool.
type ItemID int

const (
	ItemNone ItemID = iota
	ItemSword
	ItemKnife
	ItemStaff
	ItemHalberd
	ItemAxe
	ItemPickaxe
	ItemFishingRod
	ItemBow
)

var itemNames = map[ItemID]string{
	ItemNone:       "none",
	ItemSword:      "sword",
	ItemKnife:      "knife",
	ItemStaff:      "staff",
	ItemHalberd:    "halberd",
	ItemAxe:        "axe",
	ItemPickaxe:    "pickaxe",
	ItemFishingRod: "fishing rod",
	ItemBow:        "bow",
}

func (i ItemID) String() string {
	if name, ok := itemNames[i]; ok {
		return name
	}
	return "unknown"
}

// SwingsHorizontally reports whether the item uses the slash pose family.
// Everything else swings overhead.
func (i ItemID) SwingsHorizontally() bool {
	return i == ItemSword || i == ItemKnife
}
