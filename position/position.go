package position

import (
	"errors"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar Pos = 8

	// TotalCells is the number of squares on the board.
	TotalCells = MaxComponentScalar * MaxComponentScalar
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Pos is the bit index of a square. Bit 63 is the top-left square A1 and
// bit 0 is the bottom-right square H8, so columns grow to the right and rows
// grow downwards in display order while the bit index decreases.
type Pos int8

func NewPos(x, y Pos) Pos {
	return (MaxComponentScalar-1-y)*MaxComponentScalar + (MaxComponentScalar - 1 - x)
}

func NewPosFromNotation(n string) (Pos, error) {
	x, y, err := notationToXY(n)
	if err != nil {
		return 0, err
	}
	return NewPos(x, y), nil
}

func (p Pos) String() string {
	return p.Notation()
}

func (p Pos) Notation() string {
	if !p.Valid() {
		return ""
	}
	return p.X().NotationComponentX() + p.Y().NotationComponentY()
}

func (p Pos) Valid() bool {
	return 0 <= p && p < TotalCells
}

// X returns the display column, 0 being column A.
func (p Pos) X() Pos {
	return MaxComponentScalar - 1 - p%MaxComponentScalar
}

// Y returns the display row, 0 being row 1.
func (p Pos) Y() Pos {
	return MaxComponentScalar - 1 - p/MaxComponentScalar
}

func notationToXY(n string) (Pos, Pos, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	pX, err := notationToX(n[0])
	if err != nil {
		return 0, 0, err
	}
	pY, err := notationToY(n[1])
	if err != nil {
		return 0, 0, err
	}
	return pX, pY, nil
}

func notationToX(x byte) (Pos, error) {
	if 'a' <= x && x <= 'h' {
		x -= 'a' - 'A'
	}
	if x < 'A' || 'H' < x {
		return 0, ErrInvalidNotation
	}
	return Pos(x - 'A'), nil
}

func notationToY(y byte) (Pos, error) {
	if y < '1' || '8' < y {
		return 0, ErrInvalidNotation
	}
	return Pos(y - '1'), nil
}

func (p Pos) NotationComponentX() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('A' + p))
}

func (p Pos) NotationComponentY() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('1' + p))
}
