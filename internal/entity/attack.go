package entity

import "github.com/samdwyer/luckybattlefield/internal/gamedata"

// Attack is one charge-gated attack of the player.
type Attack struct {
	Key        string
	Name       string
	Charge     int
	MaxCharge  int
	Multiplier int
	Glyph      string
}

// Ready reports whether the attack is fully charged.
func (a *Attack) Ready() bool {
	return a.Charge == a.MaxCharge
}

// AttackSet is the player's ordered attack set.
type AttackSet []*Attack

// NewAttackSet builds a fresh attack set from definitions.
func NewAttackSet(defs []gamedata.AttackDef) AttackSet {
	set := make(AttackSet, 0, len(defs))
	for _, d := range defs {
		set = append(set, &Attack{
			Key:        d.Key,
			Name:       d.Name,
			Charge:     d.StartCharge,
			MaxCharge:  d.MaxCharge,
			Multiplier: d.Multiplier,
			Glyph:      d.Glyph,
		})
	}
	return set
}

// Get returns the attack bound to key, or nil.
func (s AttackSet) Get(key string) *Attack {
	for _, a := range s {
		if a.Key == key {
			return a
		}
	}
	return nil
}

// ChargeAll adds one charge to every attack, capped at max.
func (s AttackSet) ChargeAll() {
	for _, a := range s {
		if a.Charge < a.MaxCharge {
			a.Charge++
		}
	}
}
