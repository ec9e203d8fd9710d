package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/daystram/othello/board"
	"github.com/daystram/othello/player"
)

func TestReadChoice(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		input       string
		want        int
		wantErr     error
		wantRetries int
	}{
		{name: "first try", input: "2\n", want: 2},
		{name: "surrounding spaces", input: "  3 \n", want: 3},
		{name: "no trailing newline", input: "4", want: 4},
		{name: "retries", input: "abc\n0\n5\n\n1\n", want: 1, wantRetries: 4},
		{name: "end of input", input: "", wantErr: io.EOF},
		{name: "end of input after garbage", input: "x\n9", wantErr: io.EOF, wantRetries: 2},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			i := NewInterface(strings.NewReader(tt.input), &out, WithColor(false))
			got, err := i.readChoice(context.Background(), "prompt", 1, 4)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
			} else {
				if err != nil {
					t.Fatal("unexpected error:", err)
				}
				if got != tt.want {
					t.Errorf("unexpected choice: got=%d want=%d", got, tt.want)
				}
			}
			if retries := strings.Count(out.String(), "Enter a number from 1 to 4"); retries != tt.wantRetries {
				t.Errorf("unexpected retries: got=%d want=%d", retries, tt.wantRetries)
			}
		})
	}
}

func TestReadChoiceCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	i := NewInterface(strings.NewReader("1\n"), io.Discard, WithColor(false))
	if _, err := i.readChoice(ctx, "prompt", 1, 2); !errors.Is(err, context.Canceled) {
		t.Errorf("unexpected error: got=%v want=%v", err, context.Canceled)
	}
}

func TestConfigure(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input     string
		wantBlack player.Type
		wantWhite player.Type
	}{
		{input: "1\n", wantBlack: player.TypeCPU, wantWhite: player.TypeHuman},
		{input: "2\n", wantBlack: player.TypeHuman, wantWhite: player.TypeCPU},
		{input: "3\n2\n", wantBlack: player.TypeHuman, wantWhite: player.TypeCPU},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			i := NewInterface(strings.NewReader(tt.input), &out, WithColor(false))
			if err := i.Configure(context.Background()); err != nil {
				t.Fatal("unexpected error:", err)
			}
			if i.players[board.SideBlack] != tt.wantBlack || i.players[board.SideWhite] != tt.wantWhite {
				t.Errorf("unexpected players: got=(%s, %s) want=(%s, %s)",
					i.players[board.SideBlack], i.players[board.SideWhite], tt.wantBlack, tt.wantWhite)
			}
			if !strings.Contains(out.String(), "Current setting: Black[●]: Human, White[○]: CPU") {
				t.Errorf("missing setting line in output:\n%s", out.String())
			}
		})
	}
}

func TestPlayHumanAgainstCPU(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	input := strings.Repeat("1\n", 64)
	i := NewInterface(strings.NewReader(input), &out, WithColor(false), WithSeed(3))
	if err := i.Play(context.Background()); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if !i.Board().IsTerminal() {
		t.Errorf("terminal board expected: got=%s", i.Board().State())
	}
	s := out.String()
	for _, want := range []string{
		"Move 1 - Black[●] to play",
		"Black value: 6, White value: 6",
		"1: E6",
		"2: F5",
		"3: C4",
		"4: D3",
		"CPU plays",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %q in output", want)
		}
	}
}

func TestPlayHumanEndOfInput(t *testing.T) {
	t.Parallel()
	i := NewInterface(strings.NewReader("1\n"), io.Discard, WithColor(false))
	err := i.Play(context.Background())
	if !errors.Is(err, io.EOF) {
		t.Errorf("unexpected error: got=%v want=%v", err, io.EOF)
	}
	if i.Board().Ply() != 2 {
		t.Errorf("unexpected ply: got=%d want=2", i.Board().Ply())
	}
}

func TestPlayPass(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	i := NewInterface(strings.NewReader(""), &out, WithColor(false), WithPlayers(player.TypeCPU, player.TypeCPU))
	b, err := board.NewBoard(board.WithNotation("x7/8/8/8/8/8/8/8 b 0 0"))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	i.board = b
	if err := i.Play(context.Background()); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if got := i.Board().State(); got != board.StateNoMoves {
		t.Errorf("unexpected state: got=%s want=%s", got, board.StateNoMoves)
	}
	s := out.String()
	if strings.Count(s, "has no legal move and passes") != 2 {
		t.Errorf("expected two passes in output:\n%s", s)
	}
	i.Results()
	if !strings.Contains(out.String(), "Black[●] wins.") {
		t.Errorf("missing result in output:\n%s", out.String())
	}
}

func TestRun(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		input       string
		wantErr     error
		wantMatches int
	}{
		{name: "single match", input: "2\n2\n", wantMatches: 1},
		{name: "two matches", input: "1\n1\n2\n2\n", wantMatches: 2},
		{name: "input ends", input: "2\n", wantErr: io.EOF, wantMatches: 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			i := NewInterface(strings.NewReader(tt.input), &out,
				WithColor(false), WithSeed(11), WithPlayers(player.TypeCPU, player.TypeCPU))
			err := i.Run(context.Background())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatal("unexpected error:", err)
			}
			s := out.String()
			if got := strings.Count(s, "Play again?"); got != tt.wantMatches {
				t.Errorf("unexpected match count: got=%d want=%d", got, tt.wantMatches)
			}
			if got := strings.Count(s, "wins.") + strings.Count(s, "Draw."); got != tt.wantMatches {
				t.Errorf("unexpected result count: got=%d want=%d", got, tt.wantMatches)
			}
		})
	}
}
