package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRand() *rand.Rand { return rand.New(rand.NewPCG(1, 2)) }

func newShip(name string, actions ...Action) *Card {
	return NewCard(name).WithAction(actions...).Build()
}

func newCards(n int, name string, actions ...Action) []*Card {
	proto := newShip(name, actions...)
	cards := make([]*Card, n)
	for i := range cards {
		cards[i] = proto.Clone()
	}
	return cards
}

func TestDeckRemoveRandomEmpty(t *testing.T) {
	d := NewDeck()
	card, err := d.RemoveRandom(newRand())
	assert.Nil(t, card)
	assert.ErrorIs(t, err, ErrEmptyDeck)
}

func TestDeckOutOfBounds(t *testing.T) {
	d := NewDeck(newCards(2, "Scout")...)
	assert.Panics(t, func() { d.Remove(2) })
	assert.Panics(t, func() { d.Remove(-1) })
	assert.Panics(t, func() { d.Get(5) })
	assert.Panics(t, func() { NewDeck().RemoveLast() })
	assert.Equal(t, 2, d.Len())
}

func TestDeckRemoveRandomUniform(t *testing.T) {
	rng := newRand()
	names := []string{"a", "b", "c", "d"}
	counts := map[string]int{}
	const trials = 40000
	for i := 0; i < trials; i++ {
		d := NewDeck()
		for _, n := range names {
			d.Push(newShip(n))
		}
		card, err := d.RemoveRandom(rng)
		require.NoError(t, err)
		counts[card.Name()]++
	}
	for _, n := range names {
		assert.InDelta(t, trials/len(names), counts[n], 500, "card %s", n)
	}
}

func TestDeckRemoveKeepsOrder(t *testing.T) {
	a, b, c := newShip("a"), newShip("b"), newShip("c")
	d := NewDeck(a, b, c)
	assert.Same(t, b, d.Remove(1))
	assert.Equal(t, []*Card{a, c}, d.Cards())
	assert.Same(t, c, d.RemoveLast())
	assert.Equal(t, []*Card{a}, d.Cards())
}

func TestDeckMoveAll(t *testing.T) {
	from := NewDeck(newCards(3, "Scout")...)
	to := NewDeck(newCards(1, "Viper")...)
	from.MoveAll(to)
	assert.Equal(t, 0, from.Len())
	assert.Equal(t, 4, to.Len())
}

func TestDeckStats(t *testing.T) {
	d := NewDeck(newCards(2, "Scout", Gain{1, Currency})...)
	d.Push(newCards(2, "Viper", Gain{1, Attack})...)
	s := d.Stats()
	assert.Equal(t, 4, s.Cards)
	assert.InDelta(t, 0.5, s.Currency, 1e-9)
	assert.InDelta(t, 0.5, s.Attack, 1e-9)
	assert.Zero(t, s.Life)
	assert.Equal(t, DeckStats{}, NewDeck().Stats())
}

func TestDeckStatsCountsEveryAction(t *testing.T) {
	bot := NewCard("Bot").WithFaction(Machine).
		WithAction(Gain{2, Life}, Draw{1}, Scrap{1, ScrapDiscardOrHand}).
		WhenAlly(Machine, Gain{2, Attack}).
		Build()
	pod := NewCard("Pod").WithFaction(Blob, Trade).
		WithAction(Discard{1}, OpponentDiscard{1}).
		Build()
	s := NewDeck(bot, pod).Stats()
	assert.Equal(t, 2, s.Cards)
	assert.InDelta(t, 1.0, s.Life, 1e-9)
	assert.InDelta(t, 0.5, s.Draw, 1e-9)
	assert.InDelta(t, 0.5, s.Scrap, 1e-9)
	assert.InDelta(t, 0.5, s.Discard, 1e-9)
	assert.InDelta(t, 0.5, s.OpponentDiscard, 1e-9)
	assert.Zero(t, s.Attack)
	assert.Equal(t, 1, s.Factions[Machine])
	assert.Equal(t, 1, s.Factions[Blob])
	assert.Equal(t, 1, s.Factions[Trade])
	assert.Equal(t, 0, s.Factions[Star])
	assert.Equal(t, "0.0 currency\n0.0 attack\n1.0 life", s.String())
}

func TestShopRefill(t *testing.T) {
	rng := newRand()
	supply := NewDeck(newCards(1, "Cutter")...)
	shop := NewShop(2)
	shop.Refill(supply, 0, rng)
	shop.Refill(supply, 1, rng)
	assert.NotNil(t, shop.Get(0))
	assert.Nil(t, shop.Get(1))
	assert.Panics(t, func() { shop.Get(2) })
}
