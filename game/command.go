package game

// Command is a discrete input from the player.
type Command int8

const (
	CommandLeft Command = iota
	CommandRight
	CommandUp
	CommandDown
	CommandConfirm
)

func (c Command) String() string {
	switch c {
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandUp:
		return "up"
	case CommandDown:
		return "down"
	case CommandConfirm:
		return "confirm"
	}
	return "unknown"
}
