package board

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/daystram/othello/position"
)

// Bitmap is a set of squares, bit i standing for position.Pos(i).
type Bitmap uint64

type shiftFunc func(bm Bitmap, n uint8) Bitmap

func NewBitmap(pos ...position.Pos) Bitmap {
	var bm Bitmap
	for _, p := range pos {
		bm |= 1 << uint8(p)
	}
	return bm
}

// ShiftLeft moves every square towards higher bit indices.
func ShiftLeft(bm Bitmap, n uint8) Bitmap {
	return bm << n
}

// ShiftRight moves every square towards lower bit indices.
func ShiftRight(bm Bitmap, n uint8) Bitmap {
	return bm >> n
}

// line collects the squares of mask reachable from seed by repeatedly
// stepping with shift. mask must already exclude the squares the shift
// would wrap into.
func line(seed, mask Bitmap, shift shiftFunc, n uint8) Bitmap {
	result := mask & shift(seed, n)
	for i := 0; i < lineSteps; i++ {
		result |= mask & shift(result, n)
	}
	return result
}

func Union(bms ...Bitmap) Bitmap {
	var u Bitmap
	for _, bm := range bms {
		u |= bm
	}
	return u
}

// LowestBit isolates the least significant set bit. Zero stays zero.
func (bm Bitmap) LowestBit() Bitmap {
	return bm & -bm
}

// Index returns the position of a single-bit bitmap. The result for a
// bitmap with zero or several bits set is meaningless.
func (bm Bitmap) Index() position.Pos {
	return indexTable[(bm*indexMagic)>>indexShift]
}

// Split decomposes bm into single-bit bitmaps in increasing bit order.
func (bm Bitmap) Split() []Bitmap {
	mvs := make([]Bitmap, 0, bm.BitCount())
	for bm != 0 {
		b := bm.LowestBit()
		mvs = append(mvs, b)
		bm ^= b
	}
	return mvs
}

func (bm Bitmap) Positions() []position.Pos {
	ps := make([]position.Pos, 0, bm.BitCount())
	for _, b := range bm.Split() {
		ps = append(ps, b.Index())
	}
	return ps
}

func (bm Bitmap) Has(pos position.Pos) bool {
	return bm&NewBitmap(pos) != 0
}

func (bm Bitmap) BitCount() uint8 {
	return uint8(bits.OnesCount64(uint64(bm)))
}

// Notation returns the square name of a single-bit bitmap.
func (bm Bitmap) Notation() string {
	if bm.BitCount() != 1 {
		return ""
	}
	return bm.Index().Notation()
}

func (bm Bitmap) Dump(sym ...rune) string {
	builder := strings.Builder{}
	_, _ = builder.WriteString("   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %s ", x.NotationComponentX()))
	}
	_, _ = builder.WriteString("\n")
	for y := position.Pos(0); y < Height; y++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %s ", y.NotationComponentY()))
		for x := position.Pos(0); x < Width; x++ {
			if bm.Has(position.NewPos(x, y)) {
				s := "#"
				if len(sym) == 1 {
					s = string(sym[0])
				}
				_, _ = builder.WriteString(fmt.Sprintf(" %s ", s))
			} else {
				_, _ = builder.WriteString(" . ")
			}
		}
		_, _ = builder.WriteString("\n")
	}
	return builder.String()
}
