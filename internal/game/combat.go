package game

import (
	"context"

	"go.uber.org/zap"

	"github.com/samdwyer/luckybattlefield/internal/combat"
	"github.com/samdwyer/luckybattlefield/internal/entity"
)

// =============================================================================
// Battle flow
// =============================================================================

// startBattle enters battle against target.
func (s *Session) startBattle(ctx context.Context, target *entity.Enemy) {
	b := combat.Begin(ctx, s.dice, s.player, target)
	s.setMode(BattleMode{Battle: b})
	s.annotation = b.LastMessage
}

func (s *Session) handleBattle(ctx context.Context, m BattleMode, cmd Command) {
	switch c := cmd.(type) {
	case SelectAttack:
		s.attack(ctx, m.Battle, c.Key)
	case Escape, ToggleInventory:
		s.setMode(InventoryMode{Return: m})
	}
}

// attack plays one turn and emits the projectile frames in the order they
// happened. Damage is applied by the engine up front, so intermediate frames
// show the hp each side had at that point of the turn.
func (s *Session) attack(ctx context.Context, b *combat.Battle, key string) {
	enemyHP, playerHP := b.Target.HP, s.player.HP

	res := b.Attack(ctx, key)
	if !res.Valid {
		return
	}

	for i := range res.Player.Frames {
		s.battleFrame(&res.Player.Frames[i], enemyHP, playerHP, res.Attack.Name)
	}
	if res.Player.Hit {
		enemyHP = max(0, enemyHP-res.Player.Damage)
	}
	s.battleFrame(nil, enemyHP, playerHP, res.Player.Message)

	if res.Enemy != nil {
		for i := range res.Enemy.Frames {
			s.battleFrame(&res.Enemy.Frames[i], enemyHP, playerHP, res.Player.Message)
		}
	}

	switch res.Outcome {
	case combat.PhaseVictory:
		s.victory(b, res.Reward)
	case combat.PhaseDefeat:
		s.logger.Info("defeat",
			zap.String("enemy", b.Target.Name),
			zap.Int("level", s.player.Level),
			zap.Int("turns", b.Turns),
		)
		s.setMode(GameOverMode{})
		s.annotation = b.LastMessage
	default:
		s.annotation = res.Enemy.Message
		if res.BeamOpened {
			s.annotation += " " + b.Target.Name + " charges a beam!"
		}
	}
}

// victory returns to the world. A defeated roster enemy is removed by id;
// bosses were never on a roster.
func (s *Session) victory(b *combat.Battle, r *combat.Reward) {
	if !b.Target.IsBoss() && !s.roster.RemoveEnemy(b.Target.ID) {
		s.logger.Warn("defeated enemy missing from roster", zap.Stringer("enemy", b.Target.ID))
	}
	s.logger.Info("victory",
		zap.String("enemy", b.Target.Name),
		zap.Int("xp", r.XP),
		zap.Int("turns", b.Turns),
		zap.Bool("key", r.KeyDropped),
	)
	if r.LeveledUp {
		s.logger.Info("level up", zap.Int("level", r.Level))
	}

	s.setMode(WorldMode{})
	s.annotation = b.LastMessage
	if r.LeveledUp {
		s.annotation += " Level up!"
	}
}

// battleFrame emits one intermediate battle frame.
func (s *Session) battleFrame(shot *combat.Frame, enemyHP, playerHP int, annotation string) {
	snap := s.Snapshot()
	snap.Shot = shot
	snap.Annotation = annotation
	snap.Target.HP = enemyHP
	snap.Player.HP = playerHP
	s.frames = append(s.frames, snap)
}
