package ui

import (
	"fmt"
	"math/rand/v2"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pauladam94/Stars-Gapa/game"
)

func newModel(t *testing.T) (Model, *game.Game) {
	g, err := game.NewGame(game.DefaultCatalog(), game.DefaultRules(), rand.New(rand.NewPCG(1, 2)), zaptest.NewLogger(t))
	require.NoError(t, err)
	return New(g, zaptest.NewLogger(t)), g
}

func press(m tea.Model, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	return m.Update(msg)
}

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		key  string
		want game.Command
	}{
		{"left", game.CommandLeft},
		{"h", game.CommandLeft},
		{"right", game.CommandRight},
		{"l", game.CommandRight},
		{"up", game.CommandUp},
		{"k", game.CommandUp},
		{"down", game.CommandDown},
		{"j", game.CommandDown},
		{"enter", game.CommandConfirm},
		{" ", game.CommandConfirm},
	}
	for _, tt := range tests {
		cmd, ok := KeyCommand(tt.key)
		assert.True(t, ok, tt.key)
		assert.Equal(t, tt.want, cmd, tt.key)
	}
	_, ok := KeyCommand("x")
	assert.False(t, ok)
}

func TestUpdateMovesFocus(t *testing.T) {
	m, g := newModel(t)
	require.Equal(t, game.Focus{Zone: game.ZoneHand, Owner: game.Player1, Index: 0}, g.Focus())

	_, cmd := press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, g.Focus().Index)

	_, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	assert.Equal(t, 0, g.Focus().Index)
}

func TestUpdateConfirmPlaysCard(t *testing.T) {
	m, g := newModel(t)
	p := g.ActivePlayer()
	_, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NoError(t, g.Err())
	assert.Len(t, p.Hand(), 4)
	assert.Len(t, p.Played(), 1)
}

func TestUpdateQuit(t *testing.T) {
	m, _ := newModel(t)
	_, cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	_, cmd = press(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
}

func TestView(t *testing.T) {
	m, g := newModel(t)
	view := m.View()
	assert.Contains(t, view, "Explorer")
	assert.Contains(t, view, "player 1 (playing)")
	assert.Contains(t, view, "Shop")
	assert.Contains(t, view, "End turn")
	assert.Contains(t, view, "Draw pile")
	drawn := g.ActivePlayer().Stats(game.ZoneDrawPile)
	assert.Contains(t, view, fmt.Sprintf("%.1f currency", drawn.Currency))
	assert.Contains(t, view, fmt.Sprintf("%.1f life", drawn.Life))

	g.SetFocus(game.Focus{Zone: game.ZoneEndTurn, Owner: game.Player1, Index: game.NoIndex})
	g.Interact(game.CommandConfirm)
	view = m.View()
	assert.Contains(t, view, "player 2 (playing)")
	assert.Contains(t, view, "turn 2")
}
