package board

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMove    = errors.New("illegal move")
	ErrPassNotAllowed = errors.New("pass not allowed")
)

type sideState struct {
	discs Bitmap
	score int32
}

// Board is an immutable snapshot of a game. Every transition returns a new
// Board and leaves the receiver untouched.
type Board struct {
	sides  [2 + 1]sideState
	ply    uint16
	passes uint8
}

type boardConfig struct {
	notation string
}

type BoardOption func(*boardConfig)

func WithNotation(notation string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.notation = notation
	}
}

// NewBoard returns the standard four disc opening with Black to move, or the
// position given with WithNotation.
func NewBoard(opts ...BoardOption) (Board, error) {
	cfg := &boardConfig{
		notation: DefaultStartingPosition,
	}
	for _, f := range opts {
		f(cfg)
	}
	if cfg.notation == DefaultStartingPosition {
		return newBoard(startingDiscs[SideBlack], startingDiscs[SideWhite], 0, 0), nil
	}
	return parseNotation(cfg.notation)
}

func newBoard(black, white Bitmap, ply uint16, passes uint8) Board {
	return Board{
		sides: [2 + 1]sideState{
			SideBlack: {discs: black, score: scoreBitmap(black)},
			SideWhite: {discs: white, score: scoreBitmap(white)},
		},
		ply:    ply,
		passes: passes,
	}
}

func (b Board) Turn() Side {
	return sideFromPly(b.ply)
}

// Ply returns the number of placements and passes played so far.
func (b Board) Ply() uint16 {
	return b.ply
}

// Passes returns the number of consecutive passes leading to this position.
func (b Board) Passes() uint8 {
	return b.passes
}

func (b Board) Scores() (int32, int32) {
	return b.sides[SideBlack].score, b.sides[SideWhite].score
}

func (b Board) Score(s Side) int32 {
	return b.sides[s].score
}

func (b Board) Occupancy() (Bitmap, Bitmap) {
	return b.sides[SideBlack].discs, b.sides[SideWhite].discs
}

func (b Board) Discs(s Side) Bitmap {
	return b.sides[s].discs
}

func (b Board) occupied() Bitmap {
	return b.sides[SideBlack].discs | b.sides[SideWhite].discs
}

func (b Board) State() State {
	switch {
	case b.occupied() == ^Bitmap(0):
		return StateBoardFull
	case b.passes >= 2:
		return StateNoMoves
	case b.LegalMoves() == 0:
		return StatePass
	default:
		return StateRunning
	}
}

func (b Board) IsTerminal() bool {
	return b.State().IsTerminal()
}

// LegalMoves returns every empty square where the side to move brackets at
// least one run of opponent discs.
func (b Board) LegalMoves() Bitmap {
	s := b.Turn()
	return genLegalMoves(b.sides[s].discs, b.sides[s.Opposite()].discs)
}

// HasMoves reports whether s could place a disc if it were to move.
func (b Board) HasMoves(s Side) bool {
	return genLegalMoves(b.sides[s].discs, b.sides[s.Opposite()].discs) != 0
}

func genLegalMoves(own, opp Bitmap) Bitmap {
	var moves Bitmap
	for _, d := range directions {
		mask := opp & d.mask
		left := line(own, mask, ShiftLeft, d.shift)
		right := line(own, mask, ShiftRight, d.shift)
		moves |= ShiftLeft(left, d.shift) | ShiftRight(right, d.shift)
	}
	return moves &^ (own | opp)
}

// Flips returns the opponent discs captured by placing at mv, without
// checking that mv is legal.
func (b Board) Flips(mv Bitmap) Bitmap {
	s := b.Turn()
	return genFlips(b.sides[s].discs, b.sides[s.Opposite()].discs, mv)
}

func genFlips(own, opp, mv Bitmap) Bitmap {
	var flipped Bitmap
	for _, d := range directions {
		mask := opp & d.mask
		// runs leaving mv in one direction that also leave an own disc in the other
		flipped |= line(mv, mask, ShiftLeft, d.shift) & line(own, mask, ShiftRight, d.shift)
		flipped |= line(mv, mask, ShiftRight, d.shift) & line(own, mask, ShiftLeft, d.shift)
	}
	return flipped
}

// Apply places a disc for the side to move at the single square in mv and
// returns the resulting board.
func (b Board) Apply(mv Bitmap) (Board, error) {
	if mv.BitCount() != 1 {
		return b, fmt.Errorf("%w: %d squares given", ErrIllegalMove, mv.BitCount())
	}
	if b.LegalMoves()&mv == 0 {
		return b, fmt.Errorf("%w: %s is not playable", ErrIllegalMove, mv.Notation())
	}

	s, o := b.Turn(), b.Turn().Opposite()
	own, opp := b.sides[s], b.sides[o]
	flipped := genFlips(own.discs, opp.discs, mv)
	if flipped == 0 {
		return b, fmt.Errorf("%w: %s captures nothing", ErrIllegalMove, mv.Notation())
	}

	own.discs ^= mv | flipped
	opp.discs ^= flipped
	own.score += scoreCell(mv)
	for _, f := range flipped.Split() {
		v := scoreCell(f)
		own.score += v
		opp.score -= v
	}

	next := b
	next.sides[s] = own
	next.sides[o] = opp
	next.ply++
	next.passes = 0
	return next, nil
}

// Pass hands the turn over without placing a disc. It is only allowed when
// the side to move has no legal move and the game is not over.
func (b Board) Pass() (Board, error) {
	switch st := b.State(); st {
	case StatePass:
	case StateRunning:
		return b, fmt.Errorf("%w: %s has legal moves", ErrPassNotAllowed, b.Turn())
	default:
		return b, fmt.Errorf("%w: game is over (%s)", ErrPassNotAllowed, st)
	}
	next := b
	next.ply++
	next.passes++
	return next, nil
}

// Judge compares disc counts. It does not check that the game is over.
func (b Board) Judge() Result {
	black, white := b.sides[SideBlack].discs.BitCount(), b.sides[SideWhite].discs.BitCount()
	switch {
	case black > white:
		return ResultWinBlack
	case white > black:
		return ResultWinWhite
	default:
		return ResultDraw
	}
}

func scoreCell(bm Bitmap) int32 {
	pos := bm.Index()
	return scorePosition[pos.Y()][pos.X()]
}

func scoreBitmap(bm Bitmap) int32 {
	var score int32
	for _, c := range bm.Split() {
		score += scoreCell(c)
	}
	return score
}
