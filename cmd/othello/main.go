package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"github.com/daystram/othello/board"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	noColor = flag.Bool("nocolor", false, "disable terminal colours")
	seed    = flag.Uint64("seed", 0, "seed for the CPU player, 0 seeds from the clock")
	cpuOnly = flag.Bool("cpu", false, "let the CPU play both sides")

	movegenRun  = flag.Bool("movegen", false, "run movegen mode")
	movegenDraw = flag.Bool("movegen.draw", false, "draw applied moves in movegen mode")

	perftDepth  = flag.Int("perft", 0, "run perft mode to the given depth")
	perftSerial = flag.Bool("perft.serial", false, "run perft without goroutines")

	stepRun = flag.Int("step", 0, "run step mode for the given number of random games")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(args []string) error {
	notation := board.DefaultStartingPosition
	if len(args) > 0 {
		notation = strings.Join(args, " ")
	}
	if *movegenRun {
		return movegen(notation, *movegenDraw)
	}
	if *perftDepth > 0 {
		return perft(*perftDepth, notation, !*perftSerial)
	}
	if *stepRun > 0 {
		return step(*stepRun, *seed)
	}

	err := play(context.Background(), os.Stdin, os.Stdout)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
