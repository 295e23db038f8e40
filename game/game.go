package game

import (
	"math/rand/v2"
	"time"
)

// Phase is the engine's lock/turn state.
type Phase int

const (
	// PhaseFalling means the active piece is under player and gravity control.
	PhaseFalling Phase = iota
	// PhaseLockPending means a downward collision happened and the lock-delay
	// timer is running; the piece can still be nudged free.
	PhaseLockPending
	// PhasePaused suspends Falling or LockPending until unpaused.
	PhasePaused
	// PhaseGameOver is terminal until a reset.
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseFalling:
		return "Falling"
	case PhaseLockPending:
		return "LockPending"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	}
	return "?"
}

// Command is a discrete input dispatched by the host.
type Command int

const (
	CmdMoveLeft Command = iota
	CmdMoveRight
	CmdSoftDrop
	CmdHardDrop
	CmdRotateCW
	CmdRotateCCW
	CmdToggleDebugOverlay
	CmdTogglePause
	CmdReset
	CmdQuit
)

// Game is the falling-block rules engine. It owns no threads and no timers:
// the host calls OnGravityTick and OnLockDelayExpired when its timers fire and
// drains the event queue for redraw, game-over, and timer reconfiguration
// requests. All methods must be called from a single dispatch goroutine.
type Game struct {
	pieces []*Piece

	phase  Phase
	resume Phase

	level            int
	linesTowardLevel int
	totalLines       int
	score            int

	debug bool
	ghost bool

	rng         *rand.Rand
	spawnCounts [kindCount]int64
	events      []Event
}

// New creates a game with an entropy-seeded piece sequence, an empty board,
// and one freshly spawned piece. The initial gravity timer request is already
// queued for the host.
func New() *Game {
	return NewSeeded(rand.Uint64())
}

// NewSeeded creates a game whose piece sequence is reproducible from seed.
func NewSeeded(seed uint64) *Game {
	g := &Game{rng: rand.New(rand.NewPCG(seed, seed))}
	g.reset()
	return g
}

func (g *Game) active() *Piece { return g.pieces[len(g.pieces)-1] }

// Phase returns the engine's current state.
func (g *Game) Phase() Phase { return g.phase }

// Level returns the current level, 0-based and capped at 14.
func (g *Game) Level() int { return g.level }

// Score returns the cumulative score.
func (g *Game) Score() int { return g.score }

// TotalLinesCleared returns the lifetime cleared-line count.
func (g *Game) TotalLinesCleared() int { return g.totalLines }

// Paused reports whether the engine is suspended.
func (g *Game) Paused() bool { return g.phase == PhasePaused }

// DebugEnabled reports whether hosts should draw rectangle outlines.
func (g *Game) DebugEnabled() bool { return g.debug }

// GhostEnabled reports whether ghost rectangles appear in snapshots.
func (g *Game) GhostEnabled() bool { return g.ghost }

// SetGhostEnabled toggles the ghost-piece preview.
func (g *Game) SetGhostEnabled(enabled bool) {
	g.ghost = enabled
	g.emit(RedrawRequested{})
}

// GravityInterval returns the gravity-tick period for the current level.
func (g *Game) GravityInterval() time.Duration {
	return gravityIntervals[g.level]
}

// OnGravityTick advances the active piece one cell under gravity. Outside the
// Falling phase it is a no-op, so stale timer callbacks are harmless.
func (g *Game) OnGravityTick() {
	if g.phase != PhaseFalling {
		return
	}
	g.active().MoveDown()
	if g.collides(g.active()) {
		g.active().MoveUp()
		g.startLockDelay()
	}
	g.emit(RedrawRequested{})
}

// OnLockDelayExpired resolves the pending lock. If the piece was nudged off
// its support during the delay it takes the free downward step and keeps
// falling; otherwise it locks, lines clear, scoring applies, and either a new
// piece spawns or the game ends.
func (g *Game) OnLockDelayExpired() {
	if g.phase != PhaseLockPending {
		return
	}

	g.active().MoveDown()
	if !g.collides(g.active()) {
		g.phase = PhaseFalling
		g.emit(TimerReconfigure{Timer: TimerGravity, Interval: g.GravityInterval()})
		g.emit(RedrawRequested{})
		return
	}
	g.active().MoveUp()

	next := g.randomPiece()
	if next.Intersects(g.active()) || g.collides(next) {
		g.phase = PhaseGameOver
		g.emit(GameOverNotification{})
		g.emit(RedrawRequested{})
		return
	}

	lines := g.filledLines()
	g.score += ScoreForLines(len(lines), g.level)
	g.clearLines(lines)
	if g.linesTowardLevel >= linesPerLevel {
		g.linesTowardLevel = 0
		if g.level < len(gravityIntervals)-1 {
			g.level++
		}
	}

	g.pieces = append(g.pieces, next)
	g.phase = PhaseFalling
	g.emit(TimerReconfigure{Timer: TimerGravity, Interval: g.GravityInterval()})
	g.emit(RedrawRequested{})
}

// Apply dispatches a player command. Commands that do not apply to the
// current phase are silently ignored.
func (g *Game) Apply(cmd Command) {
	switch cmd {
	case CmdReset:
		g.reset()
		return
	case CmdQuit:
		g.emit(QuitRequested{})
		return
	case CmdTogglePause:
		g.togglePause()
		return
	}

	if g.phase != PhaseFalling && g.phase != PhaseLockPending {
		return
	}

	switch cmd {
	case CmdToggleDebugOverlay:
		g.debug = !g.debug
		g.emit(RedrawRequested{})
	case CmdMoveLeft:
		g.active().MoveLeft()
		if g.collides(g.active()) {
			g.active().MoveRight()
		} else {
			g.emit(RedrawRequested{})
		}
	case CmdMoveRight:
		g.active().MoveRight()
		if g.collides(g.active()) {
			g.active().MoveLeft()
		} else {
			g.emit(RedrawRequested{})
		}
	case CmdSoftDrop:
		g.active().MoveDown()
		if g.collides(g.active()) {
			g.active().MoveUp()
			g.startLockDelay()
		} else {
			g.emit(RedrawRequested{})
		}
	case CmdHardDrop:
		for !g.collides(g.active()) {
			g.active().MoveDown()
		}
		g.active().MoveUp()
		g.emit(RedrawRequested{})
		g.startLockDelay()
	case CmdRotateCW:
		g.active().RotateCW()
		if g.collides(g.active()) {
			g.active().RotateCCW()
		} else {
			g.emit(RedrawRequested{})
		}
	case CmdRotateCCW:
		g.active().RotateCCW()
		if g.collides(g.active()) {
			g.active().RotateCW()
		} else {
			g.emit(RedrawRequested{})
		}
	}
}

// startLockDelay enters LockPending once: the gravity timer stops and the
// one-shot lock timer starts. Re-entry while already pending is a no-op so a
// running delay is never restarted.
func (g *Game) startLockDelay() {
	if g.phase == PhaseLockPending {
		return
	}
	g.phase = PhaseLockPending
	g.emit(TimerStop{Timer: TimerGravity})
	g.emit(TimerReconfigure{Timer: TimerLockDelay, Interval: LockDelay})
}

func (g *Game) togglePause() {
	switch g.phase {
	case PhaseFalling, PhaseLockPending:
		g.resume = g.phase
		g.phase = PhasePaused
		g.emit(RedrawRequested{})
	case PhasePaused:
		g.phase = g.resume
		g.emit(RedrawRequested{})
	}
}

// reset clears the board, spawns one fresh piece, and zeroes the session
// counters. Debug and ghost flags survive a reset.
func (g *Game) reset() {
	g.pieces = g.pieces[:0]
	g.pieces = append(g.pieces, g.randomPiece())
	g.level = 0
	g.linesTowardLevel = 0
	g.totalLines = 0
	g.score = 0
	g.phase = PhaseFalling
	g.emit(TimerReconfigure{Timer: TimerGravity, Interval: g.GravityInterval()})
	g.emit(RedrawRequested{})
}
