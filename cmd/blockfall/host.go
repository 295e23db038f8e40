package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/game/debugui"
	debugui_ebiten "github.com/plus3/blockfall/game/debugui/ebiten"
)

// Host owns the window, the input mapping, and the two engine timers. The
// engine itself stays timer-free: it asks for timer changes through events
// and the host accumulates frame deltas here.
type Host struct {
	engine    *game.Game
	inspector *debugui.Inspector
	backend   debugui_ebiten.ImguiBackend

	last time.Time
	quit bool

	gravityActive  bool
	gravityEvery   time.Duration
	gravityElapsed time.Duration

	lockActive  bool
	lockAfter   time.Duration
	lockElapsed time.Duration
}

func (h *Host) Update() error {
	h.backend.BeginFrame()
	defer h.backend.EndFrame()

	now := time.Now()
	dt := now.Sub(h.last)
	h.last = now

	h.handleInput()
	h.advanceTimers(dt)
	h.processEvents()

	if h.engine.DebugEnabled() {
		h.inspector.Render()
	}

	if h.quit {
		return ebiten.Termination
	}
	return nil
}

// advanceTimers drives the periodic gravity timer and the one-shot lock-delay
// timer. While the engine is paused the accumulators freeze, which is exactly
// the "logically suspended" semantics the engine expects.
func (h *Host) advanceTimers(dt time.Duration) {
	if h.engine.Paused() {
		return
	}

	if h.gravityActive {
		h.gravityElapsed += dt
		for h.gravityActive && h.gravityElapsed >= h.gravityEvery {
			h.gravityElapsed -= h.gravityEvery
			h.engine.OnGravityTick()
			h.processEvents()
		}
	}

	if h.lockActive {
		h.lockElapsed += dt
		if h.lockElapsed >= h.lockAfter {
			h.lockActive = false
			h.engine.OnLockDelayExpired()
		}
	}
}

func (h *Host) processEvents() {
	events := h.engine.DrainEvents()
	h.inspector.Observe(events)

	for _, ev := range events {
		switch ev := ev.(type) {
		case game.TimerReconfigure:
			switch ev.Timer {
			case game.TimerGravity:
				h.gravityActive = true
				h.gravityEvery = ev.Interval
				h.gravityElapsed = 0
			case game.TimerLockDelay:
				h.lockActive = true
				h.lockAfter = ev.Interval
				h.lockElapsed = 0
			}
		case game.TimerStop:
			h.gravityActive = false
		case game.GameOverNotification:
			log.Info().Int("score", h.engine.Score()).Msg("game over")
		case game.QuitRequested:
			h.quit = true
		}
	}
}

type keyBinding struct {
	key ebiten.Key
	cmd game.Command
}

var pressBindings = []keyBinding{
	{ebiten.KeyArrowUp, game.CmdRotateCW},
	{ebiten.KeyD, game.CmdRotateCW},
	{ebiten.KeyX, game.CmdRotateCW},
	{ebiten.KeyS, game.CmdRotateCCW},
	{ebiten.KeyZ, game.CmdRotateCCW},
	{ebiten.KeySpace, game.CmdHardDrop},
	{ebiten.KeyF, game.CmdHardDrop},
	{ebiten.KeyF3, game.CmdToggleDebugOverlay},
	{ebiten.KeyP, game.CmdTogglePause},
	{ebiten.KeyEnter, game.CmdReset},
	{ebiten.KeyEscape, game.CmdQuit},
}

// repeatBindings fire on press and then auto-repeat while held.
var repeatBindings = []keyBinding{
	{ebiten.KeyArrowLeft, game.CmdMoveLeft},
	{ebiten.KeyJ, game.CmdMoveLeft},
	{ebiten.KeyArrowRight, game.CmdMoveRight},
	{ebiten.KeyK, game.CmdMoveRight},
	{ebiten.KeyArrowDown, game.CmdSoftDrop},
}

const (
	repeatDelay = 12 // frames held before auto-repeat kicks in
	repeatEvery = 3  // frames between repeats
)

func (h *Host) handleInput() {
	for _, b := range pressBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			h.engine.Apply(b.cmd)
		}
	}
	for _, b := range repeatBindings {
		d := inpututil.KeyPressDuration(b.key)
		if d == 1 || (d >= repeatDelay && (d-repeatDelay)%repeatEvery == 0) {
			h.engine.Apply(b.cmd)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		h.engine.SetGhostEnabled(!h.engine.GhostEnabled())
	}
}

var (
	colorBackground = color.RGBA{A: 255}
	colorDivider    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorPausedFill = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	colorGhost      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	vector.StrokeLine(screen, game.GameWidth, 0, game.GameWidth, game.GameHeight, 1, colorDivider, false)

	s := h.engine.Snapshot()

	for _, cr := range s.Rects {
		fill := cr.Color
		if s.Paused {
			fill = colorPausedFill
		}
		x, y := float32(cr.Rect.Min.X), float32(cr.Rect.Min.Y)
		w, ht := float32(cr.Rect.Dx()), float32(cr.Rect.Dy())
		vector.DrawFilledRect(screen, x, y, w, ht, fill, false)
		if s.Debug {
			vector.StrokeRect(screen, x, y, w, ht, 1, inverted(cr.Color), false)
		}
	}

	for _, r := range s.Ghost {
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, colorGhost, false)
	}

	if s.Paused {
		ebitenutil.DebugPrintAt(screen, "P A U S E D", game.GameWidth/2-40, game.GameHeight/2)
	}
	if s.GameOver {
		ebitenutil.DebugPrintAt(screen, "GAME OVER", game.GameWidth/2-36, game.GameHeight/2-16)
		ebitenutil.DebugPrintAt(screen, "press Enter to restart", game.GameWidth/2-72, game.GameHeight/2+8)
	}

	hudX := game.GameWidth + 8
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Level: %d", s.Level), hudX, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", s.Score), hudX, 24)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lines: %d", s.TotalLines), hudX, 40)

	if h.engine.DebugEnabled() {
		h.backend.Draw(screen)
	}
}

func inverted(c color.RGBA) color.RGBA {
	return color.RGBA{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: 255}
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.backend.Layout(outsideWidth, outsideHeight)
	return game.GameWidth + sidebarWidth, game.GameHeight
}
