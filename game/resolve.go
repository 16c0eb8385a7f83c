package game

import "fmt"

// Context carries what an action needs to know while it resolves.
type Context struct {
	Card      *Card
	Scrapping bool
	// Allies are the factions already in the played area.
	Allies   Factions
	Opponent *Player
	Rand     Rand
	// Choices collects the picks the player owes once resolution is done.
	Choices []*Choice
}

func NewContext(opponent *Player, rng Rand) *Context {
	return &Context{Opponent: opponent, Rand: rng}
}

// Resolve applies one action to the player. It never fails: preconditions are
// checked by the callers and anything else is a defect.
func (p *Player) Resolve(action Action, ctx *Context) {
	switch a := action.(type) {
	case Gain:
		p.gain(a.Resource, a.Amount)
	case Draw:
		p.Draw(int(a.Count), ctx.Rand)
	case Discard:
		if a.Count > 0 {
			ctx.Choices = append(ctx.Choices, &Choice{
				Kind:   ChoiceDiscard,
				Player: p,
				Zone:   ScrapHand,
				Count:  a.Count,
				Source: ctx.Card,
			})
		}
	case OpponentDiscard:
		if ctx.Opponent != nil {
			ctx.Opponent.pendingDiscard = addCounter(ctx.Opponent.pendingDiscard, a.Count)
		}
	case Scrap:
		if a.Count > 0 {
			ctx.Choices = append(ctx.Choices, &Choice{
				Kind:     ChoiceScrap,
				Player:   p,
				Zone:     a.Zone,
				Count:    a.Count,
				Optional: true,
				Source:   ctx.Card,
			})
		}
	case Composite:
		if a.Condition.Holds(p, ctx) {
			for _, sub := range a.Actions {
				p.Resolve(sub, ctx)
			}
		}
	default:
		panic(fmt.Sprintf("unknown action %T", action))
	}
}
