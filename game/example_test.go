package game_test

import (
	"fmt"

	"github.com/plus3/blockfall/game"
)

func ExampleNewPiece() {
	p := game.NewPiece(game.KindI)
	fmt.Println(p.Kind(), p.Rects()[0])
	// Output: I (90,0)-(210,30)
}

func ExampleScoreForLines() {
	fmt.Println(game.ScoreForLines(1, 0))
	fmt.Println(game.ScoreForLines(4, 1))
	// Output:
	// 30
	// 3000
}

// ExampleGame shows the host loop contract: dispatch ticks and commands,
// then drain events to learn what the engine wants from the host.
func ExampleGame() {
	g := game.NewSeeded(42)

	for _, ev := range g.DrainEvents() {
		if tr, ok := ev.(game.TimerReconfigure); ok {
			fmt.Printf("start %s timer at %s\n", tr.Timer, tr.Interval)
		}
	}
	// Output: start gravity timer at 800ms
}
