package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/othello/position"
)

var (
	colorLabel = color.New(color.Bold)
	colorCell  = [2 + 1]*color.Color{
		SideUnknown: color.New(color.FgHiBlack, color.BgGreen),
		SideBlack:   color.New(color.FgBlack, color.BgGreen, color.Bold),
		SideWhite:   color.New(color.FgHiWhite, color.BgGreen, color.Bold),
	}
	colorHint = color.New(color.FgYellow, color.BgGreen)
)

func (b Board) Dump() string {
	builder := strings.Builder{}
	_, _ = builder.WriteString("   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", x.NotationComponentX()))
	}
	_, _ = builder.WriteString("\n")
	for y := position.Pos(0); y < Height; y++ {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %s |", y.NotationComponentY()))
		for x := position.Pos(0); x < Width; x++ {
			sym := b.sideAt(position.NewPos(x, y)).Symbol()
			if sym == SideUnknown.Symbol() {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+")
	return builder.String()
}

// Draw renders the board with terminal colours, marking the legal moves of
// the side to move.
func (b Board) Draw() string {
	hints := b.LegalMoves()
	builder := strings.Builder{}
	_, _ = builder.WriteString("   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", x.NotationComponentX()))
	}
	_, _ = builder.WriteString("\n")
	for y := position.Pos(0); y < Height; y++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", y.NotationComponentY()))
		for x := position.Pos(0); x < Width; x++ {
			pos := position.NewPos(x, y)
			s := b.sideAt(pos)
			if s == SideUnknown && hints.Has(pos) {
				_, _ = builder.WriteString(colorHint.Sprint(" * "))
				continue
			}
			_, _ = builder.WriteString(colorCell[s].Sprintf(" %s ", s.SymbolUnicode()))
		}
		_, _ = builder.WriteString("\n")
	}
	return strings.TrimSuffix(builder.String(), "\n")
}

func (b Board) DebugString() string {
	black, white := b.Occupancy()
	vBlack, vWhite := b.Scores()
	return fmt.Sprintf("turn: %s\nply:  %4d\npass: %4d\ndisc: %4d %4d\nval:  %4d %4d\nstat: %s",
		b.Turn(), b.ply, b.passes, black.BitCount(), white.BitCount(), vBlack, vWhite, b.State())
}
