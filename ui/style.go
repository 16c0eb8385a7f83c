package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pauladam94/Stars-Gapa/game"
)

const cardWidth = 20

var (
	focusColor   = lipgloss.Color("9")
	mutedColor   = lipgloss.Color("8")
	accentColor  = lipgloss.Color("205")
	factionColor = map[game.Faction]lipgloss.Color{
		game.Blob:    lipgloss.Color("10"),
		game.Trade:   lipgloss.Color("12"),
		game.Star:    lipgloss.Color("11"),
		game.Machine: lipgloss.Color("13"),
	}
)

type Styles struct {
	Card         lipgloss.Style
	Hole         lipgloss.Style
	Back         lipgloss.Style
	Name         lipgloss.Style
	Line         lipgloss.Style
	Title        lipgloss.Style
	Info         lipgloss.Style
	Button       lipgloss.Style
	Status       lipgloss.Style
	Error        lipgloss.Style
	Winner       lipgloss.Style
	FocusBorder  lipgloss.Color
	FocusedTitle lipgloss.Style
}

func DefaultStyles() Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(cardWidth)
	return Styles{
		Card:         card,
		Hole:         card.Foreground(mutedColor).BorderForeground(mutedColor),
		Back:         card.Foreground(mutedColor).Align(lipgloss.Center),
		Name:         lipgloss.NewStyle().Bold(true),
		Line:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Title:        lipgloss.NewStyle().Bold(true).Foreground(accentColor),
		FocusedTitle: lipgloss.NewStyle().Bold(true).Foreground(focusColor).Underline(true),
		Info:         lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Width(cardWidth + 4),
		Button:       lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(0, 2).Bold(true),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Error:        lipgloss.NewStyle().Foreground(focusColor),
		Winner:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		FocusBorder:  focusColor,
	}
}

// focused highlights a box the way the cursor is shown on the board.
func (s Styles) focused(style lipgloss.Style, on bool) lipgloss.Style {
	if !on {
		return style
	}
	return style.BorderForeground(s.FocusBorder).Bold(true)
}

func (s Styles) factionName(f game.Faction) string {
	return lipgloss.NewStyle().Foreground(factionColor[f]).Render(f.String())
}
