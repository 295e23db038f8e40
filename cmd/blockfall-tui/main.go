package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plus3/blockfall/game"
)

func main() {
	seed := flag.Uint64("seed", 0, "Piece-sequence seed; 0 picks one at random.")
	ghost := flag.Bool("ghost", true, "Start with the ghost piece enabled.")
	flag.Parse()

	if *seed == 0 {
		*seed = rand.Uint64()
	}

	engine := game.NewSeeded(*seed)
	engine.SetGhostEnabled(*ghost)

	p := tea.NewProgram(newModel(engine), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "blockfall-tui:", err)
		os.Exit(1)
	}
	fmt.Printf("final score: %d\n", engine.Score())
}
