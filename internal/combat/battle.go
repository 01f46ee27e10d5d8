// Package combat provides the charge-based, turn-by-turn battle system.
package combat

import (
	"context"
	"strconv"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/luckybattlefield/internal/dice"
	"github.com/samdwyer/luckybattlefield/internal/entity"
	"github.com/samdwyer/luckybattlefield/internal/telemetry"
)

// Formula constants.
const (
	// PlayerSwing bounds the random part of player damage: [-PlayerSwing, PlayerSwing].
	PlayerSwing = 30
	// PlayerMissOn is the highest d10 roll that misses (1 in 10).
	PlayerMissOn = 1

	EnemyDamagePerLevel = 12
	EnemySwing          = 5
	// EnemyMissOn is the highest d10 roll that misses (3 in 10).
	EnemyMissOn = 3

	// CriticalDivisor marks the player critical at hp <= MaxHP/CriticalDivisor.
	CriticalDivisor = 20
)

// Phase represents where a battle is in its turn cycle.
type Phase int

const (
	// PhasePlayerChoice - waiting for the player to pick a charged attack
	PhasePlayerChoice Phase = iota
	// PhaseResolving - the player's attack is in flight
	PhaseResolving
	// PhaseEnemyTurn - the enemy answers
	PhaseEnemyTurn
	// PhaseVictory - the target's hp reached zero
	PhaseVictory
	// PhaseDefeat - the player's hp reached zero
	PhaseDefeat
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlayerChoice:
		return "player_choice"
	case PhaseResolving:
		return "resolving"
	case PhaseEnemyTurn:
		return "enemy_turn"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Strike is one side's attack for a turn.
type Strike struct {
	Damage  int     // Rolled damage, applied only on a hit
	Hit     bool
	Frames  []Frame // Projectile positions in travel order
	Message string  // "HIT! 42 DMG", "ENEMY MISS!", ...
}

// TurnResult describes everything a valid attack choice caused.
type TurnResult struct {
	Valid      bool
	Attack     *entity.Attack // The attack that fired
	Player     Strike
	Enemy      *Strike // nil when the player's hit ended the battle
	Beam       int     // Boss beam length after this turn, 0 when inactive
	BeamOpened bool    // The beam unlocked on this turn
	Critical   bool    // The player turned critical on this turn
	Outcome    Phase   // PhasePlayerChoice, PhaseVictory or PhaseDefeat
	Reward     *Reward // Set on victory
}

// Battle holds the state of a single encounter. It borrows the player and
// target from the session and never copies them.
type Battle struct {
	Player      *entity.Player
	Target      *entity.Enemy
	Phase       Phase
	Turns       int
	LastMessage string

	dice dice.Dice
}

// Begin starts a battle against target. Entering battle charges every attack
// by one, as if the player had already spent a round bracing.
func Begin(ctx context.Context, d dice.Dice, p *entity.Player, target *entity.Enemy) *Battle {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.start")
	span.SetAttributes(
		attribute.String("target", target.Name),
		attribute.String("target.kind", target.Kind.String()),
		attribute.Int("target.level", target.Level),
		attribute.Int("target.hp", target.HP),
		attribute.Int("player.level", p.Level),
		attribute.Int("player.hp", p.HP),
	)
	span.End()

	p.Attacks.ChargeAll()

	msg := "An enemy blocks your path!"
	if target.IsBoss() {
		msg = target.Name + " appears!"
	}
	return &Battle{
		Player:      p,
		Target:      target,
		Phase:       PhasePlayerChoice,
		LastMessage: msg,
		dice:        d,
	}
}

// Over reports whether the battle reached victory or defeat.
func (b *Battle) Over() bool {
	return b.Phase == PhaseVictory || b.Phase == PhaseDefeat
}

// Attack fires the attack bound to key and plays out the full turn.
//
// The choice is ignored (Valid is false, nothing changes) unless the battle is
// waiting for the player, key names a known attack and that attack is fully
// charged.
func (b *Battle) Attack(ctx context.Context, key string) TurnResult {
	if b.Phase != PhasePlayerChoice {
		return TurnResult{}
	}
	atk := b.Player.Attacks.Get(key)
	if atk == nil || !atk.Ready() {
		return TurnResult{}
	}

	tracer := telemetry.Tracer("combat")
	ctx, span := tracer.Start(ctx, "combat.turn")
	defer span.End()

	b.Phase = PhaseResolving
	atk.Charge = 0
	b.Player.Attacks.ChargeAll()

	res := TurnResult{Valid: true, Attack: atk}
	res.Player = b.playerStrike(atk)
	b.LastMessage = res.Player.Message
	b.Turns++

	span.SetAttributes(
		attribute.String("attack", atk.Key),
		attribute.Int("turn", b.Turns),
		attribute.Int("player.damage", res.Player.Damage),
		attribute.Bool("player.hit", res.Player.Hit),
	)

	if !b.Target.IsAlive() {
		b.Phase = PhaseVictory
		res.Outcome = PhaseVictory
		res.Reward = b.victory()
		b.end(ctx, "victory")
		return res
	}

	b.Phase = PhaseEnemyTurn
	enemy := b.enemyStrike()
	res.Enemy = &enemy
	b.LastMessage = enemy.Message

	if b.Target.IsBoss() {
		res.BeamOpened, res.Critical = b.advanceBeam()
		res.Beam = b.Target.Boss.BeamLength
	}

	span.SetAttributes(
		attribute.Int("enemy.damage", enemy.Damage),
		attribute.Bool("enemy.hit", enemy.Hit),
		attribute.Int("beam", res.Beam),
	)

	if !b.Player.IsAlive() {
		b.Phase = PhaseDefeat
		res.Outcome = PhaseDefeat
		b.LastMessage = "You have fallen!"
		b.end(ctx, "defeat")
		return res
	}

	b.Phase = PhasePlayerChoice
	res.Outcome = PhasePlayerChoice
	return res
}

// PlayerDamage computes floor(multiplier*level + modifier + swing).
func PlayerDamage(multiplier, level, attackMod, swing int) int {
	return multiplier*level + attackMod + swing
}

// EnemyDamage computes max(1, level*12 - defense + swing).
func EnemyDamage(enemyLevel, defense, swing int) int {
	return max(1, enemyLevel*EnemyDamagePerLevel-defense+swing)
}

func (b *Battle) playerStrike(atk *entity.Attack) Strike {
	dmg := PlayerDamage(atk.Multiplier, b.Player.Level, b.Player.AttackMod, b.dice.Roll(-PlayerSwing, PlayerSwing))
	hit := b.dice.Roll(1, 10) > PlayerMissOn
	if hit {
		b.Target.TakeDamage(dmg)
	}

	s := Strike{
		Damage: dmg,
		Hit:    hit,
		Frames: PlayerProjectile(atk.Glyph, !hit),
	}
	if hit {
		s.Message = "HIT! " + strconv.Itoa(dmg) + " DMG"
	} else {
		s.Message = "MISS!"
	}
	return s
}

func (b *Battle) enemyStrike() Strike {
	dmg := EnemyDamage(b.Target.Level, b.Player.Defense, b.dice.Roll(-EnemySwing, EnemySwing))
	hit := b.dice.Roll(1, 10) > EnemyMissOn
	if hit {
		b.Player.TakeDamage(dmg)
	}

	s := Strike{
		Damage: dmg,
		Hit:    hit,
		Frames: EnemyProjectile(!hit),
	}
	if hit {
		s.Message = "ENEMY HIT! " + strconv.Itoa(dmg) + " DMG"
	} else {
		s.Message = "ENEMY MISS!"
	}
	return s
}

// advanceBeam grows the boss beam once it is unlocked. The beam unlocks for
// good when the boss drops to half hp. It deals no damage; its only side
// effect is the critical marker on a player at 5% hp or less.
func (b *Battle) advanceBeam() (opened, critical bool) {
	boss := b.Target.Boss
	if !boss.BeamUnlocked && b.Target.HP > b.Target.MaxHP/2 {
		return false, false
	}
	if !boss.BeamUnlocked {
		boss.BeamUnlocked = true
		opened = true
	}
	boss.BeamLength++

	if !b.Player.Critical && b.Player.HP <= b.Player.MaxHP/CriticalDivisor {
		b.Player.Critical = true
		critical = true
	}
	return opened, critical
}

// end records the close of the battle.
func (b *Battle) end(ctx context.Context, outcome string) {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.end")
	span.SetAttributes(
		attribute.String("outcome", outcome),
		attribute.Int("turns_taken", b.Turns),
		attribute.Int("player_hp_remaining", b.Player.HP),
	)
	span.End()
}
