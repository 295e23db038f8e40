package game

import "time"

// TimerKind distinguishes the two host-owned timers.
type TimerKind int

const (
	// TimerGravity is the periodic gravity-tick timer.
	TimerGravity TimerKind = iota
	// TimerLockDelay is the one-shot lock-delay timer.
	TimerLockDelay
)

func (k TimerKind) String() string {
	if k == TimerGravity {
		return "gravity"
	}
	return "lock-delay"
}

// Event is a notification from the engine to its host. Events accumulate in
// an internal queue and are handed over through DrainEvents; the engine never
// calls back into the host.
type Event interface {
	event()
}

// RedrawRequested asks the host to repaint the current snapshot.
type RedrawRequested struct{}

// GameOverNotification signals the terminal state. The board stays frozen
// until the host dispatches CmdReset.
type GameOverNotification struct{}

// TimerReconfigure asks the host to (re)start a timer with the given
// interval. For TimerGravity this means a periodic timer, for TimerLockDelay
// a one-shot.
type TimerReconfigure struct {
	Timer    TimerKind
	Interval time.Duration
}

// TimerStop asks the host to stop the periodic gravity timer.
type TimerStop struct {
	Timer TimerKind
}

// QuitRequested signals that the player asked to leave the game.
type QuitRequested struct{}

func (RedrawRequested) event()      {}
func (GameOverNotification) event() {}
func (TimerReconfigure) event()     {}
func (TimerStop) event()            {}
func (QuitRequested) event()        {}

func (g *Game) emit(ev Event) {
	g.events = append(g.events, ev)
}

// DrainEvents returns all queued events and empties the queue. Hosts call
// this after every command or tick they dispatch.
func (g *Game) DrainEvents() []Event {
	evs := g.events
	g.events = nil
	return evs
}
