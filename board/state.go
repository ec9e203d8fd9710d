package board

type State uint8

const (
	// StateUnknown is when game state is unknown.
	StateUnknown State = iota

	// StateRunning is when the side to move has at least one legal move.
	StateRunning

	// StatePass is when the side to move has no legal move and must pass.
	StatePass

	// StateBoardFull is when all 64 squares are occupied.
	StateBoardFull

	// StateNoMoves is when both sides have passed in succession.
	StateNoMoves
)

func (s State) IsRunning() bool {
	switch s {
	case StateRunning, StatePass:
		return true
	default:
		return false
	}
}

func (s State) IsTerminal() bool {
	switch s {
	case StateBoardFull, StateNoMoves:
		return true
	default:
		return false
	}
}

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "StateUnknown"
	case StateRunning:
		return "StateRunning"
	case StatePass:
		return "StatePass"
	case StateBoardFull:
		return "StateBoardFull"
	case StateNoMoves:
		return "StateNoMoves"
	default:
		return ""
	}
}

type Result uint8

const (
	ResultUnknown Result = iota
	ResultWinBlack
	ResultWinWhite
	ResultDraw
)

func (r Result) Winner() Side {
	switch r {
	case ResultWinBlack:
		return SideBlack
	case ResultWinWhite:
		return SideWhite
	default:
		return SideUnknown
	}
}

func (r Result) IsDraw() bool {
	return r == ResultDraw
}

func (r Result) String() string {
	switch r {
	case ResultWinBlack:
		return "Black wins"
	case ResultWinWhite:
		return "White wins"
	case ResultDraw:
		return "Draw"
	default:
		return ""
	}
}
