package player

import (
	"context"
	"time"

	"golang.org/x/exp/constraints"

	"github.com/daystram/othello/board"
)

// Random picks a uniformly distributed candidate. It does not look at the
// position at all.
type Random struct {
	rand *PseudoRand
}

func NewRandom(seed uint64) *Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	r := NewPseudoRand()
	r.Seed(seed)
	return &Random{rand: r}
}

func (r *Random) Choose(ctx context.Context, _ board.Board, mvs []board.Bitmap) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(mvs) == 0 {
		return 0, ErrNoCandidates
	}
	return pick(r.rand.Uint64(), len(mvs)), nil
}

// pick maps v onto 1..n.
func pick[T constraints.Integer](v uint64, n T) T {
	return T(v%uint64(n)) + 1
}

type PseudoRand struct {
	s uint64
}

func NewPseudoRand() *PseudoRand {
	return &PseudoRand{}
}

func (r *PseudoRand) Seed(seed uint64) {
	r.s = seed
}

func (r *PseudoRand) Uint64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}
