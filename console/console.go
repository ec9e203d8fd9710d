package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/exp/constraints"

	"github.com/daystram/othello/board"
	"github.com/daystram/othello/player"
)

var (
	defaultOptions = options{
		colored: true,
		seed:    0,
		players: [2 + 1]player.Type{
			board.SideBlack: player.TypeHuman,
			board.SideWhite: player.TypeCPU,
		},
	}

	colorSide = [2 + 1]*color.Color{
		board.SideBlack: color.New(color.FgHiBlack, color.Bold),
		board.SideWhite: color.New(color.FgHiWhite, color.Bold),
	}
)

type options struct {
	colored bool
	seed    uint64
	players [2 + 1]player.Type
}

type Option func(*options)

// WithColor toggles terminal colours in the board and side labels.
func WithColor(colored bool) Option {
	return func(o *options) {
		o.colored = colored
	}
}

// WithSeed fixes the seed of the CPU player. Zero seeds from the clock.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithPlayers sets who plays each colour before the swap prompt.
func WithPlayers(black, white player.Type) Option {
	return func(o *options) {
		o.players[board.SideBlack] = black
		o.players[board.SideWhite] = white
	}
}

// Interface runs matches over a line based text protocol: the board is
// printed, candidate moves are listed as 1..N and the human answers with a
// number.
type Interface struct {
	reader  *bufio.Reader
	writer  io.Writer
	options options

	board   board.Board
	players [2 + 1]player.Type
	cpu     player.Chooser
	human   player.Chooser
}

func NewInterface(r io.Reader, w io.Writer, opts ...Option) *Interface {
	o := defaultOptions
	for _, f := range opts {
		f(&o)
	}
	i := &Interface{
		reader:  bufio.NewReader(r),
		writer:  w,
		options: o,
		cpu:     player.NewRandom(o.seed),
	}
	i.human = &human{i: i}
	i.reset()
	return i
}

// Run plays matches until the user declines another one or the input ends.
func (i *Interface) Run(ctx context.Context) error {
	for {
		i.reset()
		if err := i.Configure(ctx); err != nil {
			return err
		}
		if err := i.Play(ctx); err != nil {
			return err
		}
		i.Results()
		again, err := i.Continue(ctx)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func (i *Interface) Board() board.Board {
	return i.board
}

// Configure offers to swap the colours of the two players.
func (i *Interface) Configure(ctx context.Context) error {
	i.println(fmt.Sprintf("Current setting: %s: %s, %s: %s",
		i.label(board.SideBlack), i.players[board.SideBlack], i.label(board.SideWhite), i.players[board.SideWhite]))
	n, err := i.readChoice(ctx, "Swap Black and White? 1: swap, 2: keep", 1, 2)
	if err != nil {
		return err
	}
	if n == 1 {
		i.players[board.SideBlack], i.players[board.SideWhite] = i.players[board.SideWhite], i.players[board.SideBlack]
	}
	return nil
}

// Play runs a single match from the current board until it is terminal.
func (i *Interface) Play(ctx context.Context) error {
	for {
		i.println(i.draw())
		if i.board.IsTerminal() {
			return nil
		}

		s := i.board.Turn()
		mvs := i.board.LegalMoves().Split()
		if len(mvs) == 0 {
			i.println(fmt.Sprintf("%s has no legal move and passes", i.label(s)))
			b, err := i.board.Pass()
			if err != nil {
				return err
			}
			i.board = b
			continue
		}

		vBlack, vWhite := i.board.Scores()
		i.println(fmt.Sprintf("Move %d - %s to play", i.board.Ply()+1, i.label(s)))
		i.println(fmt.Sprintf("Black value: %d, White value: %d", vBlack, vWhite))
		i.println("Moves")
		for n, mv := range mvs {
			i.println(fmt.Sprintf("%d: %s", n+1, mv.Notation()))
		}

		chooser := i.human
		if i.players[s] == player.TypeCPU {
			chooser = i.cpu
		}
		n, err := chooser.Choose(ctx, i.board, mvs)
		if err != nil {
			return err
		}
		mv := mvs[n-1]
		if i.players[s] == player.TypeCPU {
			i.println(fmt.Sprintf("%s plays %s", i.players[s], mv.Notation()))
		}
		b, err := i.board.Apply(mv)
		if err != nil {
			return err
		}
		i.board = b
	}
}

func (i *Interface) Results() {
	black, white := i.board.Occupancy()
	i.println(fmt.Sprintf("%s %d - %d %s", i.label(board.SideBlack), black.BitCount(), white.BitCount(), i.label(board.SideWhite)))
	if r := i.board.Judge(); r.IsDraw() {
		i.println("Draw.")
	} else {
		i.println(fmt.Sprintf("%s wins.", i.label(r.Winner())))
	}
}

// Continue asks whether another match should be played.
func (i *Interface) Continue(ctx context.Context) (bool, error) {
	n, err := i.readChoice(ctx, "Play again? 1: continue, 2: quit", 1, 2)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (i *Interface) reset() {
	i.board, _ = board.NewBoard()
	i.players = i.options.players
}

// readChoice prompts until a number within [lo, hi] is entered.
func (i *Interface) readChoice(ctx context.Context, prompt string, lo, hi int) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		i.println(prompt)
		line, err := i.reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return 0, err
		}
		n, perr := strconv.Atoi(strings.TrimSpace(line))
		if perr == nil && inRange(n, lo, hi) {
			return n, nil
		}
		i.println(fmt.Sprintf("Enter a number from %d to %d", lo, hi))
		if err == io.EOF {
			return 0, err
		}
	}
}

func (i *Interface) draw() string {
	if i.options.colored {
		return i.board.Draw()
	}
	return i.board.Dump()
}

func (i *Interface) label(s board.Side) string {
	l := fmt.Sprintf("%s[%s]", s, s.SymbolUnicode())
	if i.options.colored && colorSide[s] != nil {
		return colorSide[s].Sprint(l)
	}
	return l
}

func (i *Interface) println(a ...any) {
	fmt.Fprintln(i.writer, a...)
}

func inRange[T constraints.Ordered](v, lo, hi T) bool {
	return lo <= v && v <= hi
}

type human struct {
	i *Interface
}

func (h *human) Choose(ctx context.Context, _ board.Board, mvs []board.Bitmap) (int, error) {
	if len(mvs) == 0 {
		return 0, player.ErrNoCandidates
	}
	return h.i.readChoice(ctx, "Enter the number of your move", 1, len(mvs))
}
