package combat

import (
	"strconv"

	"github.com/samdwyer/luckybattlefield/internal/entity"
)

// Reward constants.
const (
	XPPerEnemyLevel = 10
	XPSwing         = 20
	MinXP           = 10
	HPPerLevel      = 50
)

// Reward is what a victory paid out.
type Reward struct {
	XP         int
	LeveledUp  bool
	Level      int  // Player level after the reward
	KeyDropped bool // A boss key went into slot 0
}

// victory pays xp, levels the player up and drops the boss key.
// Removing a roster enemy is left to the owner of the roster.
func (b *Battle) victory() *Reward {
	xp := max(MinXP, b.Target.Level*XPPerEnemyLevel+b.dice.Roll(-XPSwing, XPSwing))
	r := &Reward{XP: xp}
	r.LeveledUp = AwardXP(b.Player, xp)
	r.Level = b.Player.Level

	b.LastMessage = "Victory! +" + strconv.Itoa(xp) + " XP"
	if b.Target.IsBoss() {
		b.Player.Inventory.Put(0, entity.ItemKey)
		r.KeyDropped = true
		b.LastMessage = b.Target.Name + " dropped a key!"
	}
	return r
}

// AwardXP adds xp and applies a level up when the total reaches the
// threshold. The remainder is discarded, max hp grows and hp is refilled.
func AwardXP(p *entity.Player, xp int) bool {
	p.XP += xp
	if p.XP < entity.XPPerLevel {
		return false
	}
	p.Level++
	p.XP = 0
	p.MaxHP += HPPerLevel
	p.HP = p.MaxHP
	return true
}
