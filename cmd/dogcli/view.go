package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vctt94/dogengine/internal/dog"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true).MarginLeft(2)
	gameInfoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("140")).MarginTop(1)
	focusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
)

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("dog"))
	b.WriteString("\n")

	view := m.engine.PlayerView(m.viewer)
	b.WriteString(gameInfoStyle.Render(fmt.Sprintf(
		"phase=%s round=%d active=%s exchanged=%t",
		view.Phase, view.CntRound, view.ListPlayer[view.IdxPlayerActive].Name, view.BoolCardExchanged,
	)))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("your seat: %s\n", m.viewer))
	hand := view.ListPlayer[m.viewer].ListCard
	cards := make([]string, len(hand))
	for i, c := range hand {
		if c != nil {
			cards[i] = c.String()
		}
	}
	b.WriteString("hand: " + strings.Join(cards, " ") + "\n\n")

	if m.done {
		b.WriteString("game finished\n")
		return b.String()
	}

	if dog.Color(view.IdxPlayerActive) != m.viewer {
		b.WriteString("waiting for other seats...\n")
	} else {
		actions := m.engine.ListActions()
		for i, a := range actions {
			line := describeAction(a)
			if i == m.cursor {
				b.WriteString(focusedStyle.Render("> "+line) + "\n")
			} else {
				b.WriteString(blurredStyle.Render("  "+line) + "\n")
			}
		}
	}

	if m.message != "" {
		b.WriteString("\n" + m.message + "\n")
	}
	b.WriteString(helpStyle.Render("up/down to move, enter to play, q to quit"))
	return b.String()
}

func describeAction(a dog.Action) string {
	switch {
	case a.CardSwap != nil && a.PosFrom == nil:
		return fmt.Sprintf("%s: nominate as %s", a.Card, a.CardSwap)
	case a.PosFrom != nil && a.PosTo != nil:
		return fmt.Sprintf("%s: %d -> %d", a.Card, *a.PosFrom, *a.PosTo)
	case a.Card == (dog.Card{}):
		return "fold hand"
	default:
		return fmt.Sprintf("%s: pass to partner", a.Card)
	}
}
