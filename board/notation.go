package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/daystram/othello/position"
)

var (
	ErrInvalidNotation = errors.New("invalid notation")
)

// parseNotation reads "<rows> <side> <passes> <ply>". Rows run from row 1
// down to row 8 separated by '/', each listing columns A to H with 'x' for
// Black, 'o' for White and digits for runs of empty squares.
func parseNotation(notation string) (Board, error) {
	segments := strings.Split(notation, " ")
	if len(segments) != 4 {
		return Board{}, fmt.Errorf("%w: incorrect number of segments", ErrInvalidNotation)
	}

	rows := strings.Split(segments[0], "/")
	if len(rows) != int(Height) {
		return Board{}, fmt.Errorf("%w: invalid board configuration", ErrInvalidNotation)
	}
	var black, white Bitmap
	for y := position.Pos(0); y < Height; y++ {
		ptrX := -1
		for x := position.Pos(0); x < Width; x++ {
			ptrX++
			if ptrX >= len(rows[y]) {
				return Board{}, fmt.Errorf("%w: missing cells", ErrInvalidNotation)
			}
			switch cell := rune(rows[y][ptrX]); cell {
			case 'x':
				black |= NewBitmap(position.NewPos(x, y))
			case 'o':
				white |= NewBitmap(position.NewPos(x, y))
			default:
				if cell != '0' && unicode.IsDigit(cell) {
					skip := position.Pos(cell - '0')
					if x+skip-1 < Width {
						x += skip - 1
						continue
					}
					return Board{}, fmt.Errorf("%w: skip out of bounds", ErrInvalidNotation)
				}
				return Board{}, fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidNotation, string(cell))
			}
		}
		if ptrX != len(rows[y])-1 {
			return Board{}, fmt.Errorf("%w: extra cells", ErrInvalidNotation)
		}
	}

	var turn Side
	switch segments[1] {
	case "b":
		turn = SideBlack
	case "w":
		turn = SideWhite
	default:
		return Board{}, fmt.Errorf("%w: invalid turn", ErrInvalidNotation)
	}

	passes, err := strconv.ParseUint(segments[2], 10, 8)
	if err != nil || passes > 2 {
		return Board{}, fmt.Errorf("%w: invalid pass count", ErrInvalidNotation)
	}

	ply, err := strconv.ParseUint(segments[3], 10, 16)
	if err != nil {
		return Board{}, fmt.Errorf("%w: invalid ply", ErrInvalidNotation)
	}
	if sideFromPly(uint16(ply)) != turn {
		return Board{}, fmt.Errorf("%w: ply %d does not match turn", ErrInvalidNotation, ply)
	}

	return newBoard(black, white, uint16(ply), uint8(passes)), nil
}

func (b Board) Notation() string {
	builder := strings.Builder{}
	var skip uint8
	for y := position.Pos(0); y < Height; y++ {
		for x := position.Pos(0); x < Width; x++ {
			for skip = 0; x < Width && !b.occupied().Has(position.NewPos(x, y)); x++ {
				skip++
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
			}
			if x < Width {
				_, _ = builder.WriteString(b.sideAt(position.NewPos(x, y)).Symbol())
			}
		}
		if y < Height-1 {
			_, _ = builder.WriteRune('/')
		}
	}

	if b.Turn() == SideBlack {
		_, _ = builder.WriteString(" b ")
	} else {
		_, _ = builder.WriteString(" w ")
	}
	_, _ = builder.WriteString(fmt.Sprintf("%d %d", b.passes, b.ply))

	return builder.String()
}

func (b Board) sideAt(pos position.Pos) Side {
	switch {
	case b.sides[SideBlack].discs.Has(pos):
		return SideBlack
	case b.sides[SideWhite].discs.Has(pos):
		return SideWhite
	default:
		return SideUnknown
	}
}
