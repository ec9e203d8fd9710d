package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/daystram/othello/board"
)

func movegen(notation string, draw bool) error {
	log.Println("============ movegen")
	b, err := board.NewBoard(board.WithNotation(notation))
	if err != nil {
		return err
	}
	fmt.Println("to move:", b.Turn())
	fmt.Println(b.Dump())
	fmt.Println(b.Draw())
	fmt.Println(b.State())
	dumpMoves(b)

	if draw {
		for _, mv := range b.LegalMoves().Split() {
			bb, err := b.Apply(mv)
			if err != nil {
				return err
			}
			fmt.Println(mv.Notation())
			fmt.Println(bb.Draw())
			fmt.Println(bb.Notation())
		}
	}
	return nil
}

func dumpMoves(b board.Board) {
	mvs := b.LegalMoves().Split()
	for i, mv := range mvs {
		flips := b.Flips(mv)
		fmt.Printf("option %*d: [%s] %s bit=%d flips=%d value=%d\n",
			len(strconv.Itoa(len(mvs))), i+1, mv.Notation(), b.Turn(), mv.Index(), flips.BitCount(), b.Score(b.Turn()))
		fmt.Println(flips.Dump('*'))
	}
}
