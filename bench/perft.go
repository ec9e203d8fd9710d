package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/othello/board"
)

// Counters collects what a perft run visited at its leaves.
type Counters struct {
	Nodes     uint64
	Flips     uint64
	Passes    uint64
	Terminals uint64
}

func Perft(depth int, notation string, parallel, verbose bool, out chan string) (Counters, error) {
	var c Counters
	b, err := board.NewBoard(
		board.WithNotation(notation),
	)
	if err != nil {
		return c, err
	}

	var run perftFunc
	if parallel {
		run = runPerftParallel
	} else {
		run = runPerft
	}

	start := time.Now()
	run(b, depth, true, verbose, out, &c)
	end := time.Now()

	out <- message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s flip=%d pass=%d end=%d (%.3fs elapsed)",
			depth, c.Nodes, int(float64(c.Nodes)/end.Sub(start).Seconds()), c.Flips, c.Passes, c.Terminals, end.Sub(start).Seconds())

	return c, nil
}

type perftFunc func(b board.Board, d int, root, verbose bool, out chan string, c *Counters) uint64

// children lists the successors of b, a single pass successor when the side
// to move is stuck, or nothing when the game is over.
func children(b board.Board) ([]board.Board, []string, []uint64) {
	if b.IsTerminal() {
		return nil, nil, nil
	}
	mvs := b.LegalMoves().Split()
	if len(mvs) == 0 {
		bb, err := b.Pass()
		if err != nil {
			return nil, nil, nil
		}
		return []board.Board{bb}, []string{"pass"}, []uint64{0}
	}
	bbs := make([]board.Board, 0, len(mvs))
	names := make([]string, 0, len(mvs))
	flips := make([]uint64, 0, len(mvs))
	for _, mv := range mvs {
		bb, err := b.Apply(mv)
		if err != nil {
			continue
		}
		bbs = append(bbs, bb)
		names = append(names, mv.Notation())
		flips = append(flips, uint64(b.Flips(mv).BitCount()))
	}
	return bbs, names, flips
}

func runPerft(b board.Board, d int, root, verbose bool, out chan string, c *Counters) uint64 {
	if d == 0 {
		c.Nodes++
		return 1
	}

	bbs, names, flips := children(b)
	if len(bbs) == 0 {
		// finished games count as a single leaf at any depth
		c.Nodes++
		c.Terminals++
		return 1
	}

	var sum uint64
	for n, bb := range bbs {
		if d == 1 {
			if names[n] == "pass" {
				c.Passes++
			}
			c.Flips += flips[n]
		}
		child := runPerft(bb, d-1, false, verbose, out, c)
		if verbose && root {
			out <- fmt.Sprintf("%s: %d", names[n], child)
		}
		sum += child
	}
	return sum
}

func runPerftParallel(b board.Board, d int, root, verbose bool, out chan string, c *Counters) uint64 {
	if d == 0 {
		atomic.AddUint64(&c.Nodes, 1)
		return 1
	}

	bbs, names, flips := children(b)
	if len(bbs) == 0 {
		atomic.AddUint64(&c.Nodes, 1)
		atomic.AddUint64(&c.Terminals, 1)
		return 1
	}

	var sum uint64
	var wg sync.WaitGroup
	for n := range bbs {
		n := n
		wg.Add(1)
		go func() {
			defer wg.Done()
			if d == 1 {
				if names[n] == "pass" {
					atomic.AddUint64(&c.Passes, 1)
				}
				atomic.AddUint64(&c.Flips, flips[n])
			}
			child := runPerftParallel(bbs[n], d-1, false, verbose, out, c)
			if verbose && root {
				out <- fmt.Sprintf("%s: %d", names[n], child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}
