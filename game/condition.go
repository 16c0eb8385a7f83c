package game

import (
	"fmt"
	"strings"
)

type Comparison int8
type Counter int8

const (
	AtLeast Comparison = iota
	AtMost
	Exactly
)

const (
	CounterCurrency Counter = iota
	CounterAttack
	CounterLife
	CounterBases
	CounterShips
)

func (c Comparison) String() string {
	switch c {
	case AtLeast:
		return "at least"
	case AtMost:
		return "at most"
	case Exactly:
		return "exactly"
	}
	return "unknown"
}

func (c *Comparison) Capture(values []string) error {
	switch strings.Join(values, " ") {
	case "at least":
		*c = AtLeast
	case "at most":
		*c = AtMost
	case "exactly":
		*c = Exactly
	default:
		return fmt.Errorf("unknown comparison %q", strings.Join(values, " "))
	}
	return nil
}

func (c Comparison) Compare(a, b int64) bool {
	switch c {
	case AtLeast:
		return a >= b
	case AtMost:
		return a <= b
	case Exactly:
		return a == b
	}
	panic("Invalid comparison")
}

func (c Counter) String() string {
	switch c {
	case CounterCurrency:
		return "currency"
	case CounterAttack:
		return "attack"
	case CounterLife:
		return "life"
	case CounterBases:
		return "bases"
	case CounterShips:
		return "ships"
	}
	return "unknown"
}

func (c *Counter) Capture(values []string) error {
	switch values[0] {
	case "currency":
		*c = CounterCurrency
	case "attack":
		*c = CounterAttack
	case "life":
		*c = CounterLife
	case "bases":
		*c = CounterBases
	case "ships":
		*c = CounterShips
	default:
		return fmt.Errorf("unknown counter %q", values[0])
	}
	return nil
}

// Condition guards the actions of a Composite. The set of variants is closed.
type Condition interface {
	isCondition()
	Holds(p *Player, ctx *Context) bool
	String() string
}

// WhenScrapped holds while the card carrying it is being scrapped.
type WhenScrapped struct {
	Scrapped bool `@"scrapped"`
}

// Ally holds when another card of Faction is already in the played area.
type Ally struct {
	Faction Faction `@("blob"|"trade"|"star"|"machine") "ally"`
}

type Threshold struct {
	Op      Comparison `"if" "you" "have" @("at" "least" | "at" "most" | "exactly")`
	Value   uint32     `@Int`
	Counter Counter    `@("currency"|"attack"|"life"|"bases"|"ships")`
}

func (WhenScrapped) isCondition() {}
func (Ally) isCondition()         {}
func (Threshold) isCondition()    {}

func (WhenScrapped) Holds(p *Player, ctx *Context) bool { return ctx.Scrapping }

func (c Ally) Holds(p *Player, ctx *Context) bool { return ctx.Allies.Has(c.Faction) }

func (c Threshold) Holds(p *Player, ctx *Context) bool {
	var v int64
	switch c.Counter {
	case CounterCurrency:
		v = int64(p.currency)
	case CounterAttack:
		v = int64(p.attack)
	case CounterLife:
		v = int64(p.life)
	case CounterBases:
		v = int64(p.countPlayed(true))
	case CounterShips:
		v = int64(p.countPlayed(false))
	default:
		panic("Invalid counter")
	}
	return c.Op.Compare(v, int64(c.Value))
}

func (WhenScrapped) String() string { return "scrapped" }

func (c Ally) String() string { return c.Faction.String() + " ally" }

func (c Threshold) String() string {
	return fmt.Sprintf("if you have %s %d %s", c.Op, c.Value, c.Counter)
}
