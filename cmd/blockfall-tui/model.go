package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plus3/blockfall/game"
)

// gravityMsg drives the periodic gravity timer. The generation counter
// invalidates ticks scheduled before the last reconfigure.
type gravityMsg struct{ gen int }

// lockMsg is the one-shot lock-delay expiry.
type lockMsg struct{ gen int }

type model struct {
	engine *game.Game

	gravityGen    int
	gravityEvery  time.Duration
	gravityActive bool

	lockGen   int
	lockAfter time.Duration
}

func newModel(engine *game.Game) *model {
	return &model{engine: engine}
}

func (m *model) Init() tea.Cmd {
	// The engine queued its initial gravity request during construction.
	return m.processEvents()
}

func gravityCmd(every time.Duration, gen int) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg {
		return gravityMsg{gen: gen}
	})
}

func lockCmd(after time.Duration, gen int) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return lockMsg{gen: gen}
	})
}

// processEvents drains the engine's queue and turns timer requests into
// bubbletea tick commands.
func (m *model) processEvents() tea.Cmd {
	var cmds []tea.Cmd
	for _, ev := range m.engine.DrainEvents() {
		switch ev := ev.(type) {
		case game.TimerReconfigure:
			switch ev.Timer {
			case game.TimerGravity:
				m.gravityGen++
				m.gravityEvery = ev.Interval
				m.gravityActive = true
				cmds = append(cmds, gravityCmd(ev.Interval, m.gravityGen))
			case game.TimerLockDelay:
				m.lockGen++
				m.lockAfter = ev.Interval
				cmds = append(cmds, lockCmd(ev.Interval, m.lockGen))
			}
		case game.TimerStop:
			m.gravityGen++
			m.gravityActive = false
		case game.QuitRequested:
			cmds = append(cmds, tea.Quit)
		}
	}
	return tea.Batch(cmds...)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case gravityMsg:
		if msg.gen != m.gravityGen || !m.gravityActive {
			return m, nil
		}
		m.engine.OnGravityTick()
		cmd := m.processEvents()
		if m.gravityActive && msg.gen == m.gravityGen {
			// Still on the same cadence; keep the periodic chain alive.
			cmd = tea.Batch(cmd, gravityCmd(m.gravityEvery, m.gravityGen))
		}
		return m, cmd

	case lockMsg:
		if msg.gen != m.lockGen {
			return m, nil
		}
		if m.engine.Paused() {
			// Suspended, not cancelled: try again after the same delay.
			return m, lockCmd(m.lockAfter, m.lockGen)
		}
		m.engine.OnLockDelayExpired()
		return m, m.processEvents()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		m.engine.Apply(game.CmdMoveLeft)
	case "right", "l":
		m.engine.Apply(game.CmdMoveRight)
	case "down", "j":
		m.engine.Apply(game.CmdSoftDrop)
	case " ":
		m.engine.Apply(game.CmdHardDrop)
	case "up", "x":
		m.engine.Apply(game.CmdRotateCW)
	case "z":
		m.engine.Apply(game.CmdRotateCCW)
	case "p":
		m.engine.Apply(game.CmdTogglePause)
	case "o":
		m.engine.Apply(game.CmdToggleDebugOverlay)
	case "g":
		m.engine.SetGhostEnabled(!m.engine.GhostEnabled())
	case "r":
		m.engine.Apply(game.CmdReset)
	case "q", "esc", "ctrl+c":
		m.engine.Apply(game.CmdQuit)
	}
	return m, m.processEvents()
}
