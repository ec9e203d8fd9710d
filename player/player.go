package player

import (
	"context"
	"errors"

	"github.com/daystram/othello/board"
)

var (
	// ErrNoCandidates is returned when asked to choose among zero moves.
	ErrNoCandidates = errors.New("no candidate moves")
)

// Chooser picks one of the enumerated candidate moves. The returned choice
// is 1-based, matching the list shown to a human.
type Chooser interface {
	Choose(ctx context.Context, b board.Board, mvs []board.Bitmap) (int, error)
}

type Type uint8

const (
	TypeUnknown Type = iota
	TypeHuman
	TypeCPU
)

func (t Type) String() string {
	switch t {
	case TypeHuman:
		return "Human"
	case TypeCPU:
		return "CPU"
	default:
		return ""
	}
}
