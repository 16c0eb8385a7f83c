package game

type EventType int8

const (
	NoEvent EventType = iota
	AllEvents
	EventOnTurnStart
	EventOnTurnEnd
	EventOnDraw
	EventOnShuffle
	EventOnPlay
	EventOnBuy
	EventOnScrap
	EventOnDiscard
	EventOnAttack
	EventOnDamage
	EventOnGainLife
	EventOnDestroy
	EventOnChoice
	EventOnWin
)

func (e EventType) String() string {
	switch e {
	case NoEvent:
		return "none"
	case AllEvents:
		return "all"
	case EventOnTurnStart:
		return "turn-start"
	case EventOnTurnEnd:
		return "turn-end"
	case EventOnDraw:
		return "draw"
	case EventOnShuffle:
		return "shuffle"
	case EventOnPlay:
		return "play"
	case EventOnBuy:
		return "buy"
	case EventOnScrap:
		return "scrap"
	case EventOnDiscard:
		return "discard"
	case EventOnAttack:
		return "attack"
	case EventOnDamage:
		return "damage"
	case EventOnGainLife:
		return "gain-life"
	case EventOnDestroy:
		return "destroy"
	case EventOnChoice:
		return "choice"
	case EventOnWin:
		return "win"
	}
	return "unknown"
}

type Event struct {
	Event  EventType
	Player *Player
	Card   *Card
	Amount int
}

type EventHandler func(*Event)

func (g *Game) On(event EventType, handler EventHandler) {
	if _, ok := g.eventHandlers[event]; !ok {
		g.eventHandlers[event] = []EventHandler{}
	}
	g.eventHandlers[event] = append(g.eventHandlers[event], handler)
}

func (g *Game) Emit(event EventType, player *Player, card *Card, amount int) {
	e := &Event{event, player, card, amount}
	g.callHandlers(event, e)
	g.callHandlers(AllEvents, e)
}

func (g *Game) callHandlers(e EventType, event *Event) {
	if handlers, ok := g.eventHandlers[e]; ok {
		for _, f := range handlers {
			f(event)
		}
	}
}
