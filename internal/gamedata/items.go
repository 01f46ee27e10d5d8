package gamedata

// Stat names the player attribute an item changes when used.
type Stat string

const (
	StatNone    Stat = "none"
	StatHP      Stat = "hp"      // Restores hp, capped at max hp
	StatAttack  Stat = "attack"  // Raises the attack modifier
	StatDefense Stat = "defense" // Raises defense
)

// ItemDef defines an item kind loaded from JSON.
type ItemDef struct {
	Code     string `json:"code"`     // Single-letter inventory code (e.g., "H")
	Name     string `json:"name"`     // Display name
	Stat     Stat   `json:"stat"`     // Affected attribute
	Min      int    `json:"min"`      // Lowest roll for the effect
	Max      int    `json:"max"`      // Highest roll for the effect
	Lootable bool   `json:"lootable"` // Whether chests may contain it
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// LoadItems loads item definitions from the embedded items.json file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}
