package main

import (
	"log"

	"github.com/daystram/othello/bench"
)

func perft(depth int, notation string, parallel bool) error {
	log.Printf("============ perft(%d): parallel=%v\n", depth, parallel)
	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			log.Println(s)
		}
	}()

	_, err := bench.Perft(depth, notation, parallel, true, out)
	close(out)
	<-done
	return err
}
