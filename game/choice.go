package game

import "fmt"

type ChoiceKind int8

const (
	ChoiceDiscard ChoiceKind = iota
	ChoiceScrap
)

func (k ChoiceKind) String() string {
	switch k {
	case ChoiceDiscard:
		return "discard"
	case ChoiceScrap:
		return "scrap"
	}
	return "unknown"
}

// Choice is a request for the player to pick cards. The game keeps pending
// choices in a queue and resolves the head one pick per confirm.
type Choice struct {
	Kind     ChoiceKind
	Player   *Player
	Zone     ScrapZone
	Count    uint32
	Optional bool
	Source   *Card
}

func (c *Choice) Zones() []Zone {
	if c.Kind == ChoiceDiscard {
		return []Zone{ZoneHand}
	}
	return c.Zone.Zones()
}

// Allows reports whether the focused card may be picked for this choice.
func (c *Choice) Allows(f Focus) bool {
	if f.Index == NoIndex {
		return false
	}
	for _, z := range c.Zones() {
		if z != f.Zone {
			continue
		}
		if z == ZoneShop || f.Owner == c.Player.nr {
			return true
		}
	}
	return false
}

func (c *Choice) String() string {
	var from string
	if c.Kind == ChoiceDiscard {
		from = "hand"
	} else {
		from = c.Zone.String()
	}
	s := fmt.Sprintf("%s %d from %s", c.Kind, c.Count, from)
	if c.Optional {
		s = "you may " + s
	}
	return s
}
