package bench

import (
	"fmt"
	"testing"

	"github.com/daystram/othello/board"
)

func TestPerft(t *testing.T) {
	t.Parallel()

	// Node counts for the opening match the published Othello perft figures.
	tests := map[string][]struct {
		depth int
		want  Counters
	}{
		board.DefaultStartingPosition: {
			{depth: 0, want: Counters{Nodes: 1}},
			{depth: 1, want: Counters{Nodes: 4, Flips: 4}},
			{depth: 2, want: Counters{Nodes: 12, Flips: 12}},
			{depth: 3, want: Counters{Nodes: 56, Flips: 64}},
			{depth: 4, want: Counters{Nodes: 244, Flips: 288}},
			{depth: 5, want: Counters{Nodes: 1_396, Flips: 1_720}},
			{depth: 6, want: Counters{Nodes: 8_200, Flips: 11_144}},
		},
		"xxxxxxxx/xxxxxxxx/xxxxxxxx/xxxxxxxx/xxxxxxxx/xxxxxxxx/xxxxxxxx/xxxxxxo1 b 0 0": {
			{depth: 1, want: Counters{Nodes: 1, Flips: 1}},
			{depth: 2, want: Counters{Nodes: 1, Terminals: 1}},
			{depth: 3, want: Counters{Nodes: 1, Terminals: 1}},
		},
		"x7/8/8/8/8/8/8/8 b 0 0": {
			{depth: 1, want: Counters{Nodes: 1, Passes: 1}},
			{depth: 2, want: Counters{Nodes: 1, Passes: 1}},
			{depth: 3, want: Counters{Nodes: 1, Terminals: 1}},
		},
	}

	for notation, tts := range tests {
		notation := notation
		for _, tt := range tts {
			tt := tt
			for _, parallel := range []bool{false, true} {
				parallel := parallel
				t.Run(fmt.Sprintf("perft(%d) parallel=%v: %s", tt.depth, parallel, notation), func(t *testing.T) {
					t.Parallel()
					out := make(chan string, 1)
					got, err := Perft(tt.depth, notation, parallel, false, out)
					if err != nil {
						t.Fatal("unexpected error:", err)
					}
					t.Log(<-out)
					if got != tt.want {
						t.Errorf("unexpected counters: got=%+v want=%+v", got, tt.want)
					}
				})
			}
		}
	}
}

func TestPerftVerbose(t *testing.T) {
	t.Parallel()
	out := make(chan string, 8)
	if _, err := Perft(2, board.DefaultStartingPosition, false, true, out); err != nil {
		t.Fatal("unexpected error:", err)
	}
	close(out)
	var lines []string
	for s := range out {
		lines = append(lines, s)
	}
	// one line per opening move plus the summary
	if len(lines) != 5 {
		t.Fatalf("unexpected line count: got=%d want=5: %v", len(lines), lines)
	}
	for i, want := range []string{"E6: 3", "F5: 3", "C4: 3", "D3: 3"} {
		if lines[i] != want {
			t.Errorf("unexpected line %d: got=%q want=%q", i, lines[i], want)
		}
	}
}

func TestPerftInvalidNotation(t *testing.T) {
	t.Parallel()
	if _, err := Perft(1, "invalid", false, false, make(chan string, 1)); err == nil {
		t.Error("error expected: got=nil")
	}
}
