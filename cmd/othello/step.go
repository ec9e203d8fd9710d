package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/othello/board"
	"github.com/daystram/othello/player"
)

// step plays random games against itself and reports how long the core
// operations take.
func step(games int, seed uint64) error {
	log.Println("============ step")
	var (
		timesLegalMoves []time.Duration
		timesApply      []time.Duration
		timesState      []time.Duration
		results         = make(map[board.Result]int)
	)
	ctx := context.Background()
	cpu := player.NewRandom(seed)
	for game := 0; game < games; game++ {
		b, err := board.NewBoard()
		if err != nil {
			return err
		}
		for {
			t1 := time.Now()
			st := b.State()
			t2 := time.Now()
			timesState = append(timesState, t2.Sub(t1))
			if st.IsTerminal() {
				break
			}

			t1 = time.Now()
			mvs := b.LegalMoves().Split()
			t2 = time.Now()
			timesLegalMoves = append(timesLegalMoves, t2.Sub(t1))
			if len(mvs) == 0 {
				if b, err = b.Pass(); err != nil {
					return err
				}
				continue
			}

			n, err := cpu.Choose(ctx, b, mvs)
			if err != nil {
				return err
			}
			t1 = time.Now()
			b, err = b.Apply(mvs[n-1])
			t2 = time.Now()
			if err != nil {
				return fmt.Errorf("unexpected apply failure: state=%s: %w", b.State(), err)
			}
			timesApply = append(timesApply, t2.Sub(t1))
		}
		results[b.Judge()]++
		if games == 1 {
			fmt.Println(b.Draw())
			fmt.Println(b.Notation())
			fmt.Println(b.DebugString())
		}
	}

	p := message.NewPrinter(language.English)
	fmt.Println()
	p.Printf("games: %d black=%d white=%d draw=%d\n",
		games, results[board.ResultWinBlack], results[board.ResultWinWhite], results[board.ResultDraw])
	fmt.Println("legal:", avg(timesLegalMoves))
	fmt.Println("apply:", avg(timesApply))
	fmt.Println("state:", avg(timesState))
	return nil
}

func avg[T constraints.Integer](ds []T) T {
	if len(ds) == 0 {
		return 0
	}
	var s T
	for _, d := range ds {
		s += d
	}
	return s / T(len(ds))
}
