package board

import (
	"github.com/daystram/othello/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = position.TotalCells

	// extra propagation steps after the first, enough for a run to cross the board
	lineSteps = 5

	// multiplier for the single bit index lookup, matched with indexTable
	indexMagic Bitmap = 0x_03_F5_66_ED_27_17_94_61
	indexShift        = 58
)

var (
	DefaultStartingPosition = "8/8/8/3ox3/3xo3/8/8/8 b 0 0"

	startingDiscs = [2 + 1]Bitmap{
		SideBlack: 0x_00_00_00_08_10_00_00_00,
		SideWhite: 0x_00_00_00_10_08_00_00_00,
	}

	maskEdgeLeftRight = Bitmap(0x_7E_7E_7E_7E_7E_7E_7E_7E)
	maskEdgeTopBottom = Bitmap(0x_00_FF_FF_FF_FF_FF_FF_00)
	maskEdgeAll       = Bitmap(0x_00_7E_7E_7E_7E_7E_7E_00)

	// one entry per axis; each is walked with both shift directions
	directions = [4]struct {
		shift uint8
		mask  Bitmap
	}{
		{shift: 1, mask: maskEdgeLeftRight},
		{shift: 8, mask: maskEdgeTopBottom},
		{shift: 7, mask: maskEdgeAll},
		{shift: 9, mask: maskEdgeAll},
	}

	indexTable = [TotalCells]position.Pos{
		0, 1, 59, 2, 60, 40, 54, 3, 61, 32, 49, 41, 55, 19, 35, 4,
		62, 52, 30, 33, 50, 12, 14, 42, 56, 16, 27, 20, 36, 23, 44, 5,
		63, 58, 39, 53, 31, 48, 18, 34, 51, 29, 11, 13, 15, 26, 22, 43,
		57, 38, 47, 17, 28, 10, 25, 21, 37, 46, 9, 24, 45, 8, 7, 6,
	}

	// indexed by [y][x] in display order
	scorePosition = [Height][Width]int32{
		{120, -20, 20, 5, 5, 20, -20, 120},
		{-20, -40, -5, -5, -5, -5, -40, -20},
		{20, -5, 15, 3, 3, 15, -5, 20},
		{5, -5, 3, 3, 3, 3, -5, 5},
		{5, -5, 3, 3, 3, 3, -5, 5},
		{20, -5, 15, 3, 3, 15, -5, 20},
		{-20, -40, -5, -5, -5, -5, -40, -20},
		{120, -20, 20, 5, 5, 20, -20, 120},
	}
)
