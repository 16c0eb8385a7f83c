package game

import (
	"errors"
	"fmt"
	"math"

	"github.com/oklog/ulid/v2"
)

var (
	ErrInsufficientCurrency = errors.New("insufficient currency")
	ErrEmptySlot            = errors.New("empty shop slot")
)

type PlayerId int8

const (
	Player1 PlayerId = iota
	Player2
)

func (id PlayerId) Other() PlayerId { return 1 - id }

func (id PlayerId) String() string { return fmt.Sprintf("player %d", int(id)+1) }

type Player struct {
	Id             ulid.ULID
	nr             PlayerId
	game           *Game
	hand           Deck
	drawPile       Deck
	discard        Deck
	played         Deck
	currency       uint32
	attack         uint32
	life           int
	pendingDiscard uint32
}

func NewPlayer(nr PlayerId, life int, deck ...*Card) *Player {
	return &Player{
		Id:       ulid.Make(),
		nr:       nr,
		life:     life,
		drawPile: Deck{cards: append([]*Card{}, deck...)},
	}
}

func (p *Player) GetId() ulid.ULID { return p.Id }

func (p *Player) Nr() PlayerId { return p.nr }

func (p *Player) Currency() uint32 { return p.currency }

func (p *Player) Attack() uint32 { return p.attack }

func (p *Player) Life() int { return p.life }

func (p *Player) PendingDiscard() uint32 { return p.pendingDiscard }

func (p *Player) Hand() []*Card { return p.hand.Cards() }

func (p *Player) DrawPile() []*Card { return p.drawPile.Cards() }

func (p *Player) Discard() []*Card { return p.discard.Cards() }

func (p *Player) Played() []*Card { return p.played.Cards() }

// Stats summarises a hidden pile of the player.
func (p *Player) Stats(zone Zone) DeckStats { return p.deck(zone).Stats() }

func (p *Player) deck(zone Zone) *Deck {
	switch zone {
	case ZoneHand:
		return &p.hand
	case ZoneDrawPile:
		return &p.drawPile
	case ZoneDiscard:
		return &p.discard
	case ZonePlayed:
		return &p.played
	}
	panic("Invalid zone")
}

func (p *Player) emit(event EventType, card *Card, amount int) {
	if p.game != nil {
		p.game.Emit(event, p, card, amount)
	}
}

func (p *Player) gain(r Resource, n uint32) {
	switch r {
	case Currency:
		p.currency = addCounter(p.currency, n)
	case Attack:
		p.attack = addCounter(p.attack, n)
	case Life:
		if int64(p.life)+int64(n) > math.MaxInt32 {
			panic("life overflow")
		}
		p.life += int(n)
		p.emit(EventOnGainLife, nil, int(n))
	default:
		panic("Invalid resource")
	}
}

func addCounter(a, b uint32) uint32 {
	if a > math.MaxUint32-b {
		panic("counter overflow")
	}
	return a + b
}

// Draw moves up to n random cards from the draw pile to the hand, reshuffling
// the discard when the draw pile runs out. It returns how many were drawn.
func (p *Player) Draw(n int, rng Rand) int {
	drawn := 0
	for i := 0; i < n; i++ {
		if p.drawPile.Len() == 0 {
			if p.discard.Len() == 0 {
				break
			}
			p.discard.MoveAll(&p.drawPile)
			p.emit(EventOnShuffle, nil, p.drawPile.Len())
		}
		card, err := p.drawPile.RemoveRandom(rng)
		if err != nil {
			break
		}
		p.hand.Push(card)
		p.emit(EventOnDraw, card, 1)
		drawn++
	}
	return drawn
}

// DrawHand draws until the hand holds size cards or nothing is left to draw.
func (p *Player) DrawHand(size int, rng Rand) {
	if missing := size - p.hand.Len(); missing > 0 {
		p.Draw(missing, rng)
	}
}

func (p *Player) BuyFromShop(supply *Deck, shop *Shop, index int, rng Rand) error {
	card := shop.Get(index)
	if card == nil {
		return ErrEmptySlot
	}
	if p.currency < card.price {
		return ErrInsufficientCurrency
	}
	p.currency -= card.price
	p.discard.Push(shop.Take(index))
	shop.Refill(supply, index, rng)
	p.emit(EventOnBuy, card, int(card.price))
	return nil
}

func (p *Player) BuyCard(card *Card) error {
	if p.currency < card.price {
		return ErrInsufficientCurrency
	}
	p.currency -= card.price
	p.discard.Push(card)
	p.emit(EventOnBuy, card, int(card.price))
	return nil
}

// PlayCard moves a card from the hand to the played area, resolving its
// actions on the way.
func (p *Player) PlayCard(index int, ctx *Context) *Card {
	card := p.hand.Remove(index)
	ctx.Card = card
	ctx.Scrapping = false
	ctx.Allies = p.playedFactions()
	for _, a := range card.actions {
		p.Resolve(a, ctx)
	}
	p.played.Push(card)
	p.emit(EventOnPlay, card, 0)
	return card
}

// ScrapPlayed removes a played card from the game and resolves its scrap
// abilities. Effects that already applied when the card was played are not
// applied again.
func (p *Player) ScrapPlayed(index int, ctx *Context) *Card {
	card := p.played.Remove(index)
	ctx.Card = card
	ctx.Scrapping = true
	ctx.Allies = p.playedFactions()
	for _, a := range card.actions {
		if IsScrapAbility(a) {
			p.Resolve(a, ctx)
		}
	}
	ctx.Scrapping = false
	p.emit(EventOnScrap, card, 0)
	return card
}

// DiscardCard moves a card from the hand to the discard.
func (p *Player) DiscardCard(index int) *Card {
	card := p.hand.Remove(index)
	p.discard.Push(card)
	p.emit(EventOnDiscard, card, 0)
	return card
}

// ScrapCard removes a card of the hand or discard from the game.
func (p *Player) ScrapCard(zone Zone, index int) *Card {
	if zone != ZoneHand && zone != ZoneDiscard {
		panic("Invalid zone")
	}
	card := p.deck(zone).Remove(index)
	p.emit(EventOnScrap, card, 0)
	return card
}

// GetAttack spends the whole attack counter.
func (p *Player) GetAttack() uint32 {
	attack := p.attack
	p.attack = 0
	return attack
}

func (p *Player) TakeDamage(n uint32) {
	p.life -= int(n)
	p.emit(EventOnDamage, nil, int(n))
}

// Cleanup ends the turn of the player: ships and the hand go to the discard
// while persistent cards stay in play. Unspent currency and attack are lost.
func (p *Player) Cleanup() {
	for i := p.played.Len() - 1; i >= 0; i-- {
		if !p.played.Get(i).IsPersistent() {
			p.discard.Push(p.played.Remove(i))
		}
	}
	p.hand.MoveAll(&p.discard)
	p.currency = 0
	p.attack = 0
}

// Outposts returns the indices of the outposts in the played area.
func (p *Player) Outposts() []int {
	indices := []int{}
	for i, c := range p.played.cards {
		if c.shape == Outpost {
			indices = append(indices, i)
		}
	}
	return indices
}

// DestroyPlayed moves a destroyed persistent card to the discard.
func (p *Player) DestroyPlayed(index int) *Card {
	card := p.played.Remove(index)
	card.life = card.defense
	p.discard.Push(card)
	p.emit(EventOnDestroy, card, 0)
	return card
}

func (p *Player) countPlayed(persistent bool) int {
	n := 0
	for _, c := range p.played.cards {
		if c.IsPersistent() == persistent {
			n++
		}
	}
	return n
}

func (p *Player) playedFactions() Factions {
	factions := Factions{}
	for _, c := range p.played.cards {
		factions = append(factions, c.factions...)
	}
	return factions
}
