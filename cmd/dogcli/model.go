package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/decred/slog"

	"github.com/vctt94/dogengine/internal/dog"
)

// tickMsg drives the other three seats' random-agent moves so the viewer
// only needs to act on their own turn.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// model is the bubbletea Model for the demo CLI, grounded on the teacher's
// cmd/client/ui.go Model/View/Update shape.
type model struct {
	engine  *dog.Engine
	viewer  dog.Color
	agent   *randomAgent
	log     slog.Logger
	cursor  int
	message string
	done    bool
}

func newModel(engine *dog.Engine, viewer dog.Color, log slog.Logger) model {
	return model{
		engine: engine,
		viewer: viewer,
		agent:  newRandomAgent(0),
		log:    log,
	}
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	state := m.engine.GetState()
	if state.Phase == dog.PhaseFinished {
		m.done = true
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
		if m.done || state.ActiveSeat != m.viewer {
			return m, nil
		}
		actions := m.engine.ListActions()
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(actions)-1 {
				m.cursor++
			}
		case "enter":
			if len(actions) == 0 {
				return m, nil
			}
			if err := m.engine.ApplyAction(actions[m.cursor]); err != nil {
				m.message = fmt.Sprintf("rejected: %v", err)
			} else {
				m.message = fmt.Sprintf("played %s", actions[m.cursor].Card)
			}
			m.cursor = 0
		}
		return m, nil

	case tickMsg:
		if m.done {
			return m, nil
		}
		if state.ActiveSeat != m.viewer {
			actions := m.engine.ListActions()
			if len(actions) > 0 {
				choice := m.agent.choose(actions)
				if err := m.engine.ApplyAction(choice); err != nil {
					m.log.Warnf("agent move rejected: %v", err)
				}
			}
		}
		return m, tick()
	}

	return m, nil
}
