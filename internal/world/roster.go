package world

import "github.com/samdwyer/luckybattlefield/internal/entity"

// Roster holds the active enemies and chests. It is owned by the session and
// lent to the engines; rosters only grow, except for enemies removed on defeat.
type Roster struct {
	Enemies []*entity.Enemy
	Chests  []*entity.Chest
}

// EnemyAt returns the first enemy at pos, or nil.
func (r *Roster) EnemyAt(pos entity.Position) *entity.Enemy {
	for _, e := range r.Enemies {
		if e.Pos == pos {
			return e
		}
	}
	return nil
}

// ChestAt returns the first chest at pos, or nil.
func (r *Roster) ChestAt(pos entity.Position) *entity.Chest {
	for _, c := range r.Chests {
		if c.Pos == pos {
			return c
		}
	}
	return nil
}

// RemoveEnemy removes the enemy with the given id and reports whether it was present.
func (r *Roster) RemoveEnemy(id entity.ID) bool {
	for i, e := range r.Enemies {
		if e.ID == id {
			r.Enemies = append(r.Enemies[:i], r.Enemies[i+1:]...)
			return true
		}
	}
	return false
}

// Reset empties both rosters.
func (r *Roster) Reset() {
	r.Enemies = nil
	r.Chests = nil
}
