package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/pauladam94/Stars-Gapa/game"
)

// KeyCommand maps a key to a game command.
func KeyCommand(key string) (game.Command, bool) {
	switch key {
	case "left", "h":
		return game.CommandLeft, true
	case "right", "l":
		return game.CommandRight, true
	case "up", "k":
		return game.CommandUp, true
	case "down", "j":
		return game.CommandDown, true
	case "enter", " ":
		return game.CommandConfirm, true
	}
	return 0, false
}

type Model struct {
	game   *game.Game
	board  *Board
	logger *zap.Logger
	width  int
	height int
}

func New(g *game.Game, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Model{game: g, board: NewBoard(g, DefaultStyles()), logger: logger}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" || key == "q" || key == "esc" {
			return m, tea.Quit
		}
		if cmd, ok := KeyCommand(key); ok {
			m.game.Interact(cmd)
			m.logger.Debug("command",
				zap.Stringer("command", cmd),
				zap.Stringer("focus", m.game.Focus()),
			)
		}
	}
	return m, nil
}

func (m Model) View() string {
	return m.board.Render()
}

// Run plays the game in the terminal until the user quits.
func Run(g *game.Game, logger *zap.Logger) error {
	_, err := tea.NewProgram(New(g, logger), tea.WithAltScreen()).Run()
	return err
}
