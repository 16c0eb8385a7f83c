package game

import (
	"errors"
	"fmt"
)

var ErrEmptyDeck = errors.New("deck is empty")

// Rand is the source of randomness shared by a game. *math/rand/v2.Rand
// satisfies it.
type Rand interface {
	IntN(n int) int
}

// Deck is an ordered bag of cards. Index based operations panic when out of
// bounds.
type Deck struct {
	cards []*Card
}

func NewDeck(cards ...*Card) *Deck {
	return &Deck{cards: append([]*Card{}, cards...)}
}

func (d *Deck) Len() int { return len(d.cards) }

func (d *Deck) Push(cards ...*Card) { d.cards = append(d.cards, cards...) }

func (d *Deck) Get(i int) *Card {
	if i < 0 || i >= len(d.cards) {
		panic("Invalid index")
	}
	return d.cards[i]
}

// Cards returns a copy of the cards in order.
func (d *Deck) Cards() []*Card { return append([]*Card{}, d.cards...) }

func (d *Deck) Remove(i int) *Card {
	if i < 0 || i >= len(d.cards) {
		panic("Invalid index")
	}
	card := d.cards[i]
	d.cards = append(d.cards[:i], d.cards[i+1:]...)
	return card
}

// RemoveLast pops the last card. Draining a deck with it reverses its order.
func (d *Deck) RemoveLast() *Card {
	return d.Remove(len(d.cards) - 1)
}

func (d *Deck) RemoveRandom(rng Rand) (*Card, error) {
	if len(d.cards) == 0 {
		return nil, ErrEmptyDeck
	}
	return d.Remove(rng.IntN(len(d.cards))), nil
}

// MoveAll drains d into other.
func (d *Deck) MoveAll(other *Deck) {
	for d.Len() > 0 {
		other.Push(d.RemoveLast())
	}
}

// DeckStats summarises what a hidden pile yields per card on average. Only
// unconditional actions are counted.
type DeckStats struct {
	Cards           int
	Currency        float64
	Attack          float64
	Life            float64
	Draw            float64
	Discard         float64
	Scrap           float64
	OpponentDiscard float64
	Factions        [4]int
}

func (d *Deck) Stats() DeckStats {
	s := DeckStats{Cards: len(d.cards)}
	if s.Cards == 0 {
		return s
	}
	var currency, attack, life, draw, discard, scrap, opponent uint64
	for _, c := range d.cards {
		for _, f := range c.factions {
			s.Factions[f]++
		}
		for _, a := range c.actions {
			switch a := a.(type) {
			case Gain:
				switch a.Resource {
				case Currency:
					currency += uint64(a.Amount)
				case Attack:
					attack += uint64(a.Amount)
				case Life:
					life += uint64(a.Amount)
				}
			case Draw:
				draw += uint64(a.Count)
			case Discard:
				discard += uint64(a.Count)
			case Scrap:
				scrap += uint64(a.Count)
			case OpponentDiscard:
				opponent += uint64(a.Count)
			}
		}
	}
	n := float64(s.Cards)
	s.Currency = float64(currency) / n
	s.Attack = float64(attack) / n
	s.Life = float64(life) / n
	s.Draw = float64(draw) / n
	s.Discard = float64(discard) / n
	s.Scrap = float64(scrap) / n
	s.OpponentDiscard = float64(opponent) / n
	return s
}

func (s DeckStats) String() string {
	return fmt.Sprintf("%.1f currency\n%.1f attack\n%.1f life", s.Currency, s.Attack, s.Life)
}
