package game

import "fmt"

type Zone int8

const (
	ZoneShop Zone = iota
	ZoneExplorer
	ZoneEndTurn
	ZonePlayed
	ZoneHand
	ZoneDiscard
	ZoneDrawPile
)

// NoIndex marks a focus without a selected card: singletons, the hidden
// draw pile and empty zones.
const NoIndex = -1

func (z Zone) String() string {
	switch z {
	case ZoneShop:
		return "shop"
	case ZoneExplorer:
		return "explorer"
	case ZoneEndTurn:
		return "end-turn"
	case ZonePlayed:
		return "played"
	case ZoneHand:
		return "hand"
	case ZoneDiscard:
		return "discard"
	case ZoneDrawPile:
		return "draw-pile"
	}
	return "unknown"
}

// Shared zones are not owned by a player.
func (z Zone) Shared() bool {
	return z == ZoneShop || z == ZoneExplorer || z == ZoneEndTurn
}

func (z Zone) Indexable() bool {
	return z == ZoneShop || z == ZonePlayed || z == ZoneHand || z == ZoneDiscard
}

// Layout is what focus navigation needs to know about the board.
type Layout interface {
	Len(zone Zone, owner PlayerId) int
	Active() PlayerId
}

// Focus is the cursor of the player. It is a plain value: every move returns
// a new one and none of them refers to a deck.
type Focus struct {
	Zone  Zone
	Owner PlayerId
	Index int
}

func (f Focus) String() string {
	if f.Zone.Shared() {
		return fmt.Sprintf("%s[%d]", f.Zone, f.Index)
	}
	return fmt.Sprintf("%s.%s[%d]", f.Owner, f.Zone, f.Index)
}

// Land returns the focus on a zone, selecting its first or last card.
func Land(l Layout, zone Zone, owner PlayerId, last bool) Focus {
	if zone.Shared() {
		owner = l.Active()
	}
	f := Focus{Zone: zone, Owner: owner, Index: NoIndex}
	if zone.Indexable() {
		if n := l.Len(zone, owner); n > 0 {
			if last {
				f.Index = n - 1
			} else {
				f.Index = 0
			}
		}
	}
	return f
}

// Normalize brings the focus back in bounds after the board changed.
func (f Focus) Normalize(l Layout) Focus {
	if f.Zone.Shared() {
		f.Owner = l.Active()
	}
	if !f.Zone.Indexable() {
		f.Index = NoIndex
		return f
	}
	n := l.Len(f.Zone, f.Owner)
	switch {
	case n == 0:
		f.Index = NoIndex
	case f.Index < 0:
		f.Index = 0
	case f.Index >= n:
		f.Index = n - 1
	}
	return f
}

func (f Focus) Valid(l Layout) bool {
	if f.Zone < ZoneShop || f.Zone > ZoneDrawPile {
		return false
	}
	if f.Owner != Player1 && f.Owner != Player2 {
		return false
	}
	if f.Zone.Shared() && f.Owner != l.Active() {
		return false
	}
	if !f.Zone.Indexable() {
		return f.Index == NoIndex
	}
	n := l.Len(f.Zone, f.Owner)
	if n == 0 {
		return f.Index == NoIndex
	}
	return f.Index >= 0 && f.Index < n
}

func (f Focus) Left(l Layout) Focus {
	f = f.Normalize(l)
	if f.Zone.Indexable() && f.Index > 0 {
		f.Index--
		return f
	}
	switch f.Zone {
	case ZoneExplorer:
		return Land(l, ZoneShop, f.Owner, true)
	case ZoneShop:
		return Land(l, ZoneExplorer, f.Owner, true)
	case ZonePlayed:
		return Land(l, ZoneDrawPile, f.Owner, true)
	case ZoneDiscard:
		return Land(l, ZonePlayed, f.Owner, true)
	case ZoneDrawPile:
		return Land(l, ZoneDiscard, f.Owner, true)
	case ZoneHand:
		return Land(l, ZoneEndTurn, f.Owner, true)
	case ZoneEndTurn:
		return Land(l, ZoneHand, l.Active(), true)
	}
	panic("Invalid zone")
}

func (f Focus) Right(l Layout) Focus {
	f = f.Normalize(l)
	if f.Zone.Indexable() && f.Index != NoIndex && f.Index < l.Len(f.Zone, f.Owner)-1 {
		f.Index++
		return f
	}
	switch f.Zone {
	case ZoneExplorer:
		return Land(l, ZoneShop, f.Owner, false)
	case ZoneShop:
		return Land(l, ZoneExplorer, f.Owner, false)
	case ZonePlayed:
		return Land(l, ZoneDiscard, f.Owner, false)
	case ZoneDiscard:
		return Land(l, ZoneDrawPile, f.Owner, false)
	case ZoneDrawPile:
		return Land(l, ZonePlayed, f.Owner, false)
	case ZoneHand:
		return Land(l, ZoneEndTurn, f.Owner, false)
	case ZoneEndTurn:
		return Land(l, ZoneHand, l.Active(), false)
	}
	panic("Invalid zone")
}

// Down walks from the shop through the zones of the active player, then
// through those of the other player and back to the shop. It is relative to
// the active player so the cursor follows the board when turns change.
func (f Focus) Down(l Layout) Focus {
	f = f.Normalize(l)
	active := l.Active()
	other := active.Other()
	switch {
	case f.Zone == ZoneShop || f.Zone == ZoneExplorer:
		for _, z := range []Zone{ZonePlayed, ZoneHand, ZoneDiscard} {
			if l.Len(z, active) > 0 {
				return Land(l, z, active, false)
			}
		}
		return Land(l, ZonePlayed, active, false)
	case f.Zone == ZoneEndTurn:
		return Land(l, ZonePlayed, other, false)
	}
	switch f.Zone {
	case ZonePlayed:
		return Land(l, ZoneHand, f.Owner, false)
	case ZoneHand:
		return Land(l, ZoneDiscard, f.Owner, false)
	case ZoneDiscard:
		return Land(l, ZoneDrawPile, f.Owner, false)
	case ZoneDrawPile:
		if f.Owner == active {
			return Land(l, ZoneEndTurn, active, false)
		}
		return Land(l, ZoneShop, active, false)
	}
	panic("Invalid zone")
}

func (f Focus) Up(l Layout) Focus {
	f = f.Normalize(l)
	active := l.Active()
	switch {
	case f.Zone == ZoneShop || f.Zone == ZoneExplorer:
		return Land(l, ZonePlayed, active.Other(), false)
	case f.Zone == ZoneEndTurn:
		return Land(l, ZoneDrawPile, active, false)
	case f.Owner != active:
		return Land(l, ZoneShop, active, false)
	}
	switch f.Zone {
	case ZonePlayed:
		return Land(l, ZoneShop, active, false)
	case ZoneHand:
		return Land(l, ZonePlayed, active, false)
	case ZoneDiscard:
		return Land(l, ZoneHand, active, false)
	case ZoneDrawPile:
		return Land(l, ZoneDiscard, active, false)
	}
	panic("Invalid zone")
}

// Move applies a directional command.
func (f Focus) Move(cmd Command, l Layout) Focus {
	switch cmd {
	case CommandLeft:
		return f.Left(l)
	case CommandRight:
		return f.Right(l)
	case CommandUp:
		return f.Up(l)
	case CommandDown:
		return f.Down(l)
	}
	panic(fmt.Sprintf("not a direction: %s", cmd))
}
