package main

import (
	"errors"
	"flag"
	"math/rand/v2"
	"os"
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/game/debugui"
	debugui_ebiten "github.com/plus3/blockfall/game/debugui/ebiten"
)

const sidebarWidth = 160

func main() {
	seed := flag.Uint64("seed", 0, "Piece-sequence seed; 0 picks one at random.")
	ghost := flag.Bool("ghost", true, "Start with the ghost piece enabled.")
	debug := flag.Bool("debug", false, "Start with the debug overlay enabled.")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if *seed == 0 {
		*seed = rand.Uint64()
	}

	engine := game.NewSeeded(*seed)
	engine.SetGhostEnabled(*ghost)
	if *debug {
		engine.Apply(game.CmdToggleDebugOverlay)
	}

	log.Info().Uint64("seed", *seed).Msg("starting blockfall")

	imguiBackend := ebitenbackend.NewEbitenBackend()
	imguiBackend.CreateWindow("blockfall", game.GameWidth+sidebarWidth, game.GameHeight)
	imgui.CurrentIO().SetIniFilename("")

	host := &Host{
		engine:    engine,
		inspector: debugui.NewInspector(engine),
		backend:   debugui_ebiten.ImguiBackend{EbitenBackend: imguiBackend},
		last:      time.Now(),
	}

	if err := ebiten.RunGame(host); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("game loop exited")
	}
	log.Info().Int("score", engine.Score()).Msg("goodbye")
}
