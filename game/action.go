package game

import (
	"fmt"
	"strings"
)

type Resource int8
type ScrapZone int8

const (
	Currency Resource = iota
	Attack
	Life
)

const (
	ScrapHand ScrapZone = iota
	ScrapDiscard
	ScrapDiscardOrHand
	ScrapShop
)

func (r Resource) String() string {
	switch r {
	case Currency:
		return "currency"
	case Attack:
		return "attack"
	case Life:
		return "life"
	}
	return "unknown"
}

func (r *Resource) Capture(values []string) error {
	switch values[0] {
	case "currency", "trade", "gold":
		*r = Currency
	case "attack", "combat":
		*r = Attack
	case "life", "authority":
		*r = Life
	default:
		return fmt.Errorf("unknown resource %q", values[0])
	}
	return nil
}

func (z ScrapZone) String() string {
	switch z {
	case ScrapHand:
		return "hand"
	case ScrapDiscard:
		return "discard"
	case ScrapDiscardOrHand:
		return "discard or hand"
	case ScrapShop:
		return "shop"
	}
	return "unknown"
}

func (z *ScrapZone) Capture(values []string) error {
	switch strings.Join(values, " ") {
	case "hand":
		*z = ScrapHand
	case "discard":
		*z = ScrapDiscard
	case "discard or hand":
		*z = ScrapDiscardOrHand
	case "shop":
		*z = ScrapShop
	default:
		return fmt.Errorf("unknown scrap zone %q", strings.Join(values, " "))
	}
	return nil
}

// Zones reports the board zones a scrap choice may pick from.
func (z ScrapZone) Zones() []Zone {
	switch z {
	case ScrapHand:
		return []Zone{ZoneHand}
	case ScrapDiscard:
		return []Zone{ZoneDiscard}
	case ScrapDiscardOrHand:
		return []Zone{ZoneDiscard, ZoneHand}
	case ScrapShop:
		return []Zone{ZoneShop}
	}
	panic("Invalid scrap zone")
}

// Action is one effect on a card. The set of variants is closed.
type Action interface {
	isAction()
	String() string
}

type Gain struct {
	Amount   uint32   `"gain" @Int`
	Resource Resource `@("currency"|"trade"|"gold"|"attack"|"combat"|"life"|"authority")`
}

type Draw struct {
	Count uint32 `"draw" @Int`
}

type Discard struct {
	Count uint32 `"discard" @Int`
}

type OpponentDiscard struct {
	Count uint32 `"opponent" "discards" @Int`
}

// Scrap lets the player remove up to Count cards from the game.
type Scrap struct {
	Count uint32    `"scrap" @Int "from"`
	Zone  ScrapZone `@("hand" | "shop" | "discard" ("or" "hand")?)`
}

type Composite struct {
	Condition Condition
	Actions   []Action
}

func (Gain) isAction()            {}
func (Draw) isAction()            {}
func (Discard) isAction()         {}
func (OpponentDiscard) isAction() {}
func (Scrap) isAction()           {}
func (Composite) isAction()       {}

func (a Gain) String() string { return fmt.Sprintf("gain %d %s", a.Amount, a.Resource) }

func (a Draw) String() string { return fmt.Sprintf("draw %d", a.Count) }

func (a Discard) String() string { return fmt.Sprintf("discard %d", a.Count) }

func (a OpponentDiscard) String() string { return fmt.Sprintf("opponent discards %d", a.Count) }

func (a Scrap) String() string { return fmt.Sprintf("scrap %d from %s", a.Count, a.Zone) }

func (a Composite) String() string {
	parts := make([]string, len(a.Actions))
	for i, action := range a.Actions {
		parts[i] = action.String()
	}
	return a.Condition.String() + ": " + strings.Join(parts, ", ")
}

// IsScrapAbility reports whether the action only fires when its card is scrapped.
func IsScrapAbility(a Action) bool {
	c, ok := a.(Composite)
	if !ok {
		return false
	}
	_, ok = c.Condition.(WhenScrapped)
	return ok
}
