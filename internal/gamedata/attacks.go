package gamedata

import "fmt"

// AttackDef defines one entry of the player's attack set.
//
// An attack is usable only when its charge equals MaxCharge. Firing resets it
// to zero; every player turn adds one charge to every attack, capped at max.
//
// Damage = Multiplier*level + attack modifier + swing in [-30, 30].
type AttackDef struct {
	Key         string `json:"key"`         // Selection key (e.g., "A")
	Name        string `json:"name"`        // Display name (e.g., "Fireball")
	StartCharge int    `json:"startCharge"` // Charge on a fresh player
	MaxCharge   int    `json:"maxCharge"`   // Charge needed to fire, at least 1
	Multiplier  int    `json:"multiplier"`  // Damage per player level
	Glyph       string `json:"glyph"`       // Projectile glyph
}

// AttacksFile represents the structure of attacks.json.
type AttacksFile struct {
	Attacks []AttackDef `json:"attacks"`
}

// Validate reports an error if the definition breaks a charge invariant.
func (a *AttackDef) Validate() error {
	if a.Key == "" {
		return fmt.Errorf("attack %q: empty key", a.Name)
	}
	if a.MaxCharge < 1 {
		return fmt.Errorf("attack %s: max charge %d < 1", a.Key, a.MaxCharge)
	}
	if a.StartCharge < 0 || a.StartCharge > a.MaxCharge {
		return fmt.Errorf("attack %s: start charge %d outside [0, %d]", a.Key, a.StartCharge, a.MaxCharge)
	}
	return nil
}

// LoadAttacks loads the attack set from the embedded attacks.json file.
// Order in the file is the display order.
func LoadAttacks() ([]AttackDef, error) {
	file, err := Load[AttacksFile]("attacks.json")
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(file.Attacks))
	for i := range file.Attacks {
		if err := file.Attacks[i].Validate(); err != nil {
			return nil, err
		}
		if seen[file.Attacks[i].Key] {
			return nil, fmt.Errorf("attack %s: duplicate key", file.Attacks[i].Key)
		}
		seen[file.Attacks[i].Key] = true
	}
	return file.Attacks, nil
}

// MustLoadAttacks loads the attack set, panicking on error.
func MustLoadAttacks() []AttackDef {
	attacks, err := LoadAttacks()
	if err != nil {
		panic(err)
	}
	return attacks
}
