// Package debugui provides Dear ImGui inspector panels for the blockfall
// engine. Hosts mount it behind the engine's debug-overlay flag.
package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/game"
)

const eventLogCapacity = 64

// Inspector renders engine state panels. It is not safe for concurrent use;
// call Observe and Render from the host's update loop.
type Inspector struct {
	game   *game.Game
	events []string
	ghost  bool
}

// NewInspector creates an inspector bound to the given engine.
func NewInspector(g *game.Game) *Inspector {
	return &Inspector{game: g, ghost: g.GhostEnabled()}
}

// Observe records host-drained events in the inspector's log.
func (in *Inspector) Observe(events []game.Event) {
	for _, ev := range events {
		in.events = append(in.events, formatEvent(ev))
	}
	if n := len(in.events) - eventLogCapacity; n > 0 {
		in.events = in.events[n:]
	}
}

func formatEvent(ev game.Event) string {
	switch ev := ev.(type) {
	case game.RedrawRequested:
		return "redraw requested"
	case game.GameOverNotification:
		return "game over"
	case game.TimerReconfigure:
		return fmt.Sprintf("timer reconfigure: %s -> %s", ev.Timer, ev.Interval)
	case game.TimerStop:
		return fmt.Sprintf("timer stop: %s", ev.Timer)
	case game.QuitRequested:
		return "quit requested"
	}
	return fmt.Sprintf("%T", ev)
}

// Render draws the engine inspector window.
func (in *Inspector) Render() {
	if !imgui.BeginV("Engine Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := in.game.CollectStats()

	imgui.Text(fmt.Sprintf("Phase: %s", stats.Phase))
	imgui.Text(fmt.Sprintf("Level: %d (%d/15 toward next)", stats.Level, stats.LinesTowardLevel))
	imgui.Text(fmt.Sprintf("Score: %d", stats.Score))
	imgui.Text(fmt.Sprintf("Lines: %d", stats.TotalLines))
	imgui.Text(fmt.Sprintf("Gravity interval: %s", in.game.GravityInterval()))

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Pieces: %d", stats.Pieces))
	imgui.Text(fmt.Sprintf("Rectangles: %d", stats.Rectangles))

	if imgui.Checkbox("Ghost piece", &in.ghost) {
		in.game.SetGhostEnabled(in.ghost)
	}

	if imgui.TreeNodeStr("Spawn Counts") {
		for kind, count := range stats.SpawnCounts {
			imgui.BulletText(fmt.Sprintf("%s: %d", game.Kind(kind), count))
		}
		imgui.TreePop()
	}

	in.renderBoard()
	in.renderEventLog()

	imgui.End()
}

func (in *Inspector) renderEventLog() {
	if !imgui.TreeNodeStr("Event Log") {
		return
	}
	for i := len(in.events) - 1; i >= 0; i-- {
		imgui.BulletText(in.events[i])
	}
	imgui.TreePop()
}
