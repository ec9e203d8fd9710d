package board

type Side uint8

const (
	SideUnknown Side = iota
	SideBlack
	SideWhite
)

func (s Side) String() string {
	switch s {
	case SideBlack:
		return "Black"
	case SideWhite:
		return "White"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideBlack:
		return SideWhite
	case SideWhite:
		return SideBlack
	default:
		return SideUnknown
	}
}

// Symbol returns the disc symbol used in position notation.
func (s Side) Symbol() string {
	switch s {
	case SideBlack:
		return "x"
	case SideWhite:
		return "o"
	default:
		return "-"
	}
}

func (s Side) SymbolUnicode() string {
	switch s {
	case SideBlack:
		return "●"
	case SideWhite:
		return "○"
	default:
		return "·"
	}
}

// sideFromPly maps the move counter to the side to move. Black moves on even
// plies.
func sideFromPly(ply uint16) Side {
	switch ply % 2 {
	case 0:
		return SideBlack
	case 1:
		return SideWhite
	default:
		panic("board: move counter parity resolved to neither side")
	}
}
