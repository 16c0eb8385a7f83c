package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pauladam94/Stars-Gapa/game"
)

// Board draws a game. It only reads from it.
type Board struct {
	game   *game.Game
	styles Styles
}

func NewBoard(g *game.Game, styles Styles) *Board {
	return &Board{game: g, styles: styles}
}

func (b *Board) Render() string {
	active := b.game.Active()
	return lipgloss.JoinVertical(lipgloss.Left,
		b.playerArea(active.Other(), false),
		b.shopRow(),
		b.playerArea(active, true),
		b.status(),
	)
}

func (b *Board) isFocused(zone game.Zone, owner game.PlayerId, index int) bool {
	f := b.game.Focus()
	if f.Zone != zone || f.Index != index {
		return false
	}
	return zone.Shared() || f.Owner == owner
}

func (b *Board) title(text string, zone game.Zone, owner game.PlayerId) string {
	if b.isFocused(zone, owner, game.NoIndex) {
		return b.styles.FocusedTitle.Render(text)
	}
	return b.styles.Title.Render(text)
}

func (b *Board) card(c *game.Card, focused bool) string {
	if c == nil {
		return b.styles.focused(b.styles.Hole, focused).Render("empty")
	}
	lines := []string{b.styles.Name.Render(c.Name())}
	head := fmt.Sprintf("{%d} %s", c.Price(), c.Shape())
	if c.IsPersistent() {
		head += fmt.Sprintf(" %d/%d", c.Life(), c.Defense())
	}
	lines = append(lines, head)
	if factions := c.Factions(); len(factions) > 0 {
		names := make([]string, len(factions))
		for i, f := range factions {
			names[i] = b.styles.factionName(f)
		}
		lines = append(lines, strings.Join(names, " "))
	}
	for _, a := range c.Actions() {
		lines = append(lines, b.styles.Line.Render(a.String()))
	}
	return b.styles.focused(b.styles.Card, focused).Render(strings.Join(lines, "\n"))
}

func (b *Board) back(focused bool) string {
	return b.styles.focused(b.styles.Back, focused).Render("?")
}

func (b *Board) row(title string, zone game.Zone, owner game.PlayerId, cards []*game.Card, hidden bool) string {
	boxes := make([]string, len(cards))
	for i, c := range cards {
		focused := b.isFocused(zone, owner, i)
		if hidden {
			boxes[i] = b.back(focused)
		} else {
			boxes[i] = b.card(c, focused)
		}
	}
	label := b.title(fmt.Sprintf("%s (%d)", title, len(cards)), zone, owner)
	if len(boxes) == 0 {
		return label
	}
	return lipgloss.JoinVertical(lipgloss.Left, label, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
}

func (b *Board) shopRow() string {
	boxes := []string{b.card(b.game.Explorer(), b.isFocused(game.ZoneExplorer, b.game.Active(), game.NoIndex))}
	for i, c := range b.game.Shop() {
		boxes = append(boxes, b.card(c, b.isFocused(game.ZoneShop, b.game.Active(), i)))
	}
	label := b.styles.Title.Render(fmt.Sprintf("Shop (%d left in supply)", b.game.SupplyLen()))
	return lipgloss.JoinVertical(lipgloss.Left, label, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
}

// discard lists the discard pile by name under its stats.
func (b *Board) discard(p *game.Player) string {
	cards := p.Discard()
	lines := []string{b.title(fmt.Sprintf("Discard (%d)", len(cards)), game.ZoneDiscard, p.Nr())}
	if len(cards) > 0 {
		lines = append(lines, b.styles.Line.Render(p.Stats(game.ZoneDiscard).String()))
	}
	for i, c := range cards {
		name := c.Name()
		if b.isFocused(game.ZoneDiscard, p.Nr(), i) {
			name = b.styles.Error.Render("> " + name)
		}
		lines = append(lines, name)
	}
	return b.styles.Info.Render(strings.Join(lines, "\n"))
}

func (b *Board) drawPile(p *game.Player) string {
	s := p.Stats(game.ZoneDrawPile)
	text := fmt.Sprintf("Draw pile\n%d cards", s.Cards)
	if s.Cards > 0 {
		text += "\n" + s.String()
	}
	style := b.styles.focused(b.styles.Info, b.isFocused(game.ZoneDrawPile, p.Nr(), game.NoIndex))
	return style.Render(text)
}

func (b *Board) info(p *game.Player, active bool) string {
	name := p.Nr().String()
	if active {
		name += " (playing)"
	}
	text := fmt.Sprintf("%s\nlife     %d\ncurrency %d\nattack   %d", name, p.Life(), p.Currency(), p.Attack())
	if n := p.PendingDiscard(); n > 0 {
		text += fmt.Sprintf("\nmust discard %d", n)
	}
	return b.styles.Info.Render(text)
}

func (b *Board) button() string {
	label := "End turn"
	p := b.game.ActivePlayer()
	switch {
	case b.game.Pending() != nil && b.game.Pending().Optional:
		label = "Skip"
	case p.Attack() > 0 && len(b.game.Opponent().Outposts()) == 0:
		label = fmt.Sprintf("Attack %d", p.Attack())
	}
	style := b.styles.focused(b.styles.Button, b.isFocused(game.ZoneEndTurn, b.game.Active(), game.NoIndex))
	return style.Render(label)
}

func (b *Board) playerArea(id game.PlayerId, active bool) string {
	p := b.game.Player(id)
	left := lipgloss.JoinVertical(lipgloss.Left,
		b.row("Played", game.ZonePlayed, id, p.Played(), false),
		b.row("Hand", game.ZoneHand, id, p.Hand(), !active),
	)
	right := []string{b.info(p, active), b.discard(p), b.drawPile(p)}
	if active {
		right = append(right, b.button())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", lipgloss.JoinVertical(lipgloss.Left, right...))
}

func (b *Board) status() string {
	g := b.game
	if w := g.Winner(); w != nil {
		return b.styles.Winner.Render(fmt.Sprintf("%s wins! press q to quit", w.Nr()))
	}
	lines := []string{b.styles.Status.Render(fmt.Sprintf("turn %d, %s to play", g.Turn(), g.Active()))}
	if c := g.Pending(); c != nil {
		lines = append(lines, b.styles.Status.Render("choose: "+c.String()))
	}
	if err := g.Err(); err != nil {
		lines = append(lines, b.styles.Error.Render(err.Error()))
	}
	return strings.Join(lines, "\n")
}
