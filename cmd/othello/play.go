package main

import (
	"context"
	"io"

	"github.com/daystram/othello/console"
	"github.com/daystram/othello/player"
)

func play(ctx context.Context, r io.Reader, w io.Writer) error {
	opts := []console.Option{
		console.WithColor(!*noColor),
		console.WithSeed(*seed),
	}
	if *cpuOnly {
		opts = append(opts, console.WithPlayers(player.TypeCPU, player.TypeCPU))
	}
	return console.NewInterface(r, w, opts...).Run(ctx)
}
