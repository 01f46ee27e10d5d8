// Package dice provides the injectable random source used by every game rule.
//
// All draws are inclusive integer ranges so formulas read the same way they are
// balanced: Roll(1, 10) is a d10, Roll(-30, 30) is a symmetric swing.
package dice

import (
	"fmt"
	"math/rand"
)

// Dice draws uniform integers from inclusive ranges.
type Dice interface {
	Roll(lo, hi int) int
}

// Rand is a Dice backed by a seeded *rand.Rand.
// It also satisfies io.Reader so the same stream can mint entity ids.
type Rand struct {
	rng *rand.Rand
}

// New returns a Dice seeded with seed.
func New(seed int64) *Rand {
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// FromRand wraps an existing generator.
func FromRand(rng *rand.Rand) *Rand {
	return &Rand{rng: rng}
}

// Roll returns a uniform integer in [lo, hi].
func (d *Rand) Roll(lo, hi int) int {
	checkRange(lo, hi)
	return lo + d.rng.Intn(hi-lo+1)
}

// Read fills p with pseudo-random bytes from the underlying stream.
func (d *Rand) Read(p []byte) (int, error) {
	return d.rng.Read(p)
}

// Scripted replays a fixed list of values in order, clamping each one to the
// requested range. Once the script runs out it answers with the midpoint of
// the range, which is a hit for every hit roll and zero for every symmetric
// swing.
type Scripted struct {
	values []int
	next   int
}

// NewScripted returns a Dice that yields values in order.
func NewScripted(values ...int) *Scripted {
	return &Scripted{values: values}
}

// Roll returns the next scripted value clamped to [lo, hi].
func (s *Scripted) Roll(lo, hi int) int {
	checkRange(lo, hi)
	if s.next >= len(s.values) {
		return lo + (hi-lo)/2 + (hi-lo)%2
	}
	v := s.values[s.next]
	s.next++
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Remaining reports how many scripted values have not been consumed.
func (s *Scripted) Remaining() int {
	return len(s.values) - s.next
}

func checkRange(lo, hi int) {
	if hi < lo {
		panic(fmt.Sprintf("dice: empty range [%d, %d]", lo, hi))
	}
}
