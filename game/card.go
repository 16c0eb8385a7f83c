package game

import (
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"
)

type Shape int8

const (
	Ship Shape = iota
	Outpost
	Base
)

func (s Shape) String() string {
	switch s {
	case Ship:
		return "ship"
	case Outpost:
		return "outpost"
	case Base:
		return "base"
	}
	return "unknown"
}

func (s *Shape) Capture(values []string) error {
	switch values[0] {
	case "ship":
		*s = Ship
	case "outpost":
		*s = Outpost
	case "base":
		*s = Base
	default:
		return fmt.Errorf("unknown shape %q", values[0])
	}
	return nil
}

// Card is a single physical card. Everything but the life of a persistent
// card is fixed once built.
type Card struct {
	id       ulid.ULID
	name     string
	price    uint32
	shape    Shape
	factions Factions
	actions  []Action
	defense  uint32
	life     uint32
}

func (c *Card) GetId() ulid.ULID { return c.id }

func (c *Card) Name() string { return c.name }

func (c *Card) Price() uint32 { return c.price }

func (c *Card) Shape() Shape { return c.shape }

func (c *Card) Factions() Factions { return append(Factions(nil), c.factions...) }

func (c *Card) Actions() []Action { return append([]Action(nil), c.actions...) }

func (c *Card) Defense() uint32 { return c.defense }

func (c *Card) Life() uint32 { return c.life }

func (c *Card) IsPersistent() bool { return c.shape != Ship }

func (c *Card) HasScrapAbility() bool {
	for _, a := range c.actions {
		if IsScrapAbility(a) {
			return true
		}
	}
	return false
}

// Damage lowers the life of a persistent card and returns the damage dealt.
func (c *Card) Damage(n uint32) uint32 {
	if !c.IsPersistent() {
		panic("Damage on a ship")
	}
	n = min(n, c.life)
	c.life -= n
	return n
}

func (c *Card) Destroyed() bool { return c.IsPersistent() && c.life == 0 }

// Clone returns a fresh copy of a prototype with its own id and full life.
func (c *Card) Clone() *Card {
	clone := *c
	clone.id = ulid.Make()
	clone.life = c.defense
	return &clone
}

func (c *Card) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s {%d} %s", c.name, c.price, c.shape)
	if c.IsPersistent() {
		fmt.Fprintf(&b, " %d", c.defense)
	}
	if len(c.factions) > 0 {
		fmt.Fprintf(&b, " [%s]", c.factions)
	}
	for _, a := range c.actions {
		b.WriteString("\n")
		b.WriteString(a.String())
		b.WriteString(".")
	}
	return b.String()
}

type CardBuilder struct {
	card Card
}

func NewCard(name string) *CardBuilder {
	return &CardBuilder{card: Card{name: name}}
}

func (b *CardBuilder) Costing(price uint32) *CardBuilder {
	b.card.price = price
	return b
}

func (b *CardBuilder) WithFaction(factions ...Faction) *CardBuilder {
	b.card.factions = append(b.card.factions, factions...)
	return b
}

func (b *CardBuilder) WithAction(actions ...Action) *CardBuilder {
	b.card.actions = append(b.card.actions, actions...)
	return b
}

func (b *CardBuilder) When(cond Condition, actions ...Action) *CardBuilder {
	return b.WithAction(Composite{Condition: cond, Actions: actions})
}

func (b *CardBuilder) WhenScrapped(actions ...Action) *CardBuilder {
	return b.When(WhenScrapped{Scrapped: true}, actions...)
}

func (b *CardBuilder) WhenAlly(f Faction, actions ...Action) *CardBuilder {
	return b.When(Ally{Faction: f}, actions...)
}

func (b *CardBuilder) AsOutpost(life uint32) *CardBuilder {
	b.card.shape = Outpost
	b.card.defense = life
	return b
}

func (b *CardBuilder) AsBase(life uint32) *CardBuilder {
	b.card.shape = Base
	b.card.defense = life
	return b
}

func (b *CardBuilder) Build() *Card {
	if b.card.IsPersistent() && b.card.defense == 0 {
		panic(fmt.Sprintf("persistent card %q without life", b.card.name))
	}
	card := b.card
	card.factions = append(Factions(nil), b.card.factions...)
	card.actions = append([]Action(nil), b.card.actions...)
	card.id = ulid.Make()
	card.life = card.defense
	return &card
}
