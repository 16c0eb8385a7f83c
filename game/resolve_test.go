package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bogusAction struct{}

func (bogusAction) isAction()      {}
func (bogusAction) String() string { return "bogus" }

func TestResolveGain(t *testing.T) {
	p := NewPlayer(Player1, 10)
	ctx := NewContext(nil, newRand())
	p.Resolve(Gain{3, Currency}, ctx)
	p.Resolve(Gain{2, Attack}, ctx)
	p.Resolve(Gain{4, Life}, ctx)
	assert.Equal(t, uint32(3), p.Currency())
	assert.Equal(t, uint32(2), p.Attack())
	assert.Equal(t, 14, p.Life())
}

func TestResolveGainOverflow(t *testing.T) {
	p := NewPlayer(Player1, 10)
	ctx := NewContext(nil, newRand())
	p.currency = math.MaxUint32
	assert.Panics(t, func() { p.Resolve(Gain{1, Currency}, ctx) })
	p.attack = math.MaxUint32 - 1
	assert.Panics(t, func() { p.Resolve(Gain{2, Attack}, ctx) })
	p.life = math.MaxInt32
	assert.Panics(t, func() { p.Resolve(Gain{1, Life}, ctx) })
}

func TestResolveUnknownAction(t *testing.T) {
	p := NewPlayer(Player1, 10)
	assert.Panics(t, func() { p.Resolve(bogusAction{}, NewContext(nil, newRand())) })
}

func TestDrawConservesCards(t *testing.T) {
	rng := newRand()
	p := NewPlayer(Player1, 10, newCards(7, "Scout")...)
	p.discard.Push(newCards(3, "Viper")...)
	total := func() int { return p.hand.Len() + p.drawPile.Len() + p.discard.Len() }
	ctx := NewContext(nil, rng)
	for i := 0; i < 50; i++ {
		p.Resolve(Draw{uint32(rng.IntN(4))}, ctx)
		require.Equal(t, 10, total())
		if p.hand.Len() > 6 {
			p.hand.MoveAll(&p.discard)
		}
	}
}

func TestDrawReshufflesDiscard(t *testing.T) {
	p := NewPlayer(Player1, 10)
	p.discard.Push(newCards(3, "Scout")...)
	shuffles := 0
	g := &Game{eventHandlers: map[EventType][]EventHandler{}}
	g.On(EventOnShuffle, func(e *Event) { shuffles++ })
	p.game = g
	p.Resolve(Draw{1}, NewContext(nil, newRand()))
	assert.Equal(t, 1, p.hand.Len())
	assert.Equal(t, 2, p.drawPile.Len())
	assert.Equal(t, 0, p.discard.Len())
	assert.Equal(t, 1, shuffles)
}

func TestDrawFromNothing(t *testing.T) {
	p := NewPlayer(Player1, 10)
	assert.NotPanics(t, func() { p.Resolve(Draw{3}, NewContext(nil, newRand())) })
	assert.Equal(t, 0, p.hand.Len())

	p.drawPile.Push(newCards(2, "Scout")...)
	assert.Equal(t, 2, p.Draw(5, newRand()))
}

func TestCompositeFalseDoesNothing(t *testing.T) {
	p := NewPlayer(Player1, 10, newCards(3, "Scout")...)
	opponent := NewPlayer(Player2, 10)
	ctx := NewContext(opponent, newRand())
	actions := []Action{
		Gain{5, Currency},
		Gain{5, Attack},
		Gain{5, Life},
		Draw{2},
		Discard{1},
		OpponentDiscard{1},
		Scrap{1, ScrapHand},
	}
	conditions := []Condition{
		WhenScrapped{Scrapped: true},
		Ally{Faction: Blob},
		Threshold{Op: AtLeast, Value: 1, Counter: CounterCurrency},
		Threshold{Op: Exactly, Value: 3, Counter: CounterBases},
	}
	for _, cond := range conditions {
		p.Resolve(Composite{Condition: cond, Actions: actions}, ctx)
	}
	assert.Zero(t, p.Currency())
	assert.Zero(t, p.Attack())
	assert.Equal(t, 10, p.Life())
	assert.Equal(t, 0, p.hand.Len())
	assert.Zero(t, opponent.PendingDiscard())
	assert.Empty(t, ctx.Choices)
}

func TestCompositeResolvesInOrder(t *testing.T) {
	p := NewPlayer(Player1, 10)
	ctx := NewContext(nil, newRand())
	p.Resolve(Composite{
		Condition: Threshold{Op: AtMost, Value: 0, Counter: CounterCurrency},
		Actions: []Action{
			Gain{2, Currency},
			Composite{
				Condition: Threshold{Op: AtLeast, Value: 2, Counter: CounterCurrency},
				Actions:   []Action{Gain{1, Attack}},
			},
		},
	}, ctx)
	assert.Equal(t, uint32(2), p.Currency())
	assert.Equal(t, uint32(1), p.Attack())
}

func TestAllyCondition(t *testing.T) {
	cutter := NewCard("Cutter").WithFaction(Trade).
		WithAction(Gain{2, Currency}).
		WhenAlly(Trade, Gain{4, Attack}).
		Build()
	p := NewPlayer(Player1, 10)
	p.hand.Push(cutter.Clone(), cutter.Clone())
	ctx := NewContext(nil, newRand())

	p.PlayCard(0, ctx)
	assert.Zero(t, p.Attack())
	p.PlayCard(0, ctx)
	assert.Equal(t, uint32(4), p.Attack())
	assert.Equal(t, uint32(4), p.Currency())
}

func TestScrapAbility(t *testing.T) {
	explorer := NewCard("Explorer").Costing(2).
		WithAction(Gain{2, Currency}).
		WhenScrapped(Gain{2, Attack}).
		Build()
	p := NewPlayer(Player1, 10)
	p.hand.Push(explorer)
	ctx := NewContext(nil, newRand())
	p.PlayCard(0, ctx)
	assert.Equal(t, uint32(2), p.Currency())
	assert.Zero(t, p.Attack())

	scrapped := p.ScrapPlayed(0, ctx)
	assert.Same(t, explorer, scrapped)
	assert.Equal(t, uint32(2), p.Currency())
	assert.Equal(t, uint32(2), p.Attack())
	assert.Equal(t, 0, p.played.Len())
	assert.Equal(t, 0, p.discard.Len())
}

func TestScrapDoesNotRepeatAllyAbility(t *testing.T) {
	pod := NewCard("Pod").WithFaction(Blob).
		WhenAlly(Blob, Gain{2, Attack}).
		WhenScrapped(Gain{3, Attack}).
		Build()
	p := NewPlayer(Player1, 10)
	p.played.Push(NewCard("Fighter").WithFaction(Blob).Build())
	p.hand.Push(pod)
	ctx := NewContext(nil, newRand())
	p.PlayCard(0, ctx)
	assert.Equal(t, uint32(2), p.Attack())

	p.ScrapPlayed(1, ctx)
	assert.Equal(t, uint32(5), p.Attack())
}

func TestThresholdOnBases(t *testing.T) {
	base := NewCard("Wheel").AsBase(5).Build()
	station := NewCard("Station").AsOutpost(4).
		When(Threshold{Op: AtLeast, Value: 2, Counter: CounterBases}, Gain{4, Attack}).
		Build()
	p := NewPlayer(Player1, 10)
	p.played.Push(base)
	p.hand.Push(station)
	p.PlayCard(0, NewContext(nil, newRand()))
	assert.Zero(t, p.Attack())

	p.played.Remove(1)
	p.played.Push(base.Clone())
	p.hand.Push(station.Clone())
	p.PlayCard(0, NewContext(nil, newRand()))
	assert.Equal(t, uint32(4), p.Attack())
}

func TestChoicesRequested(t *testing.T) {
	p := NewPlayer(Player1, 10)
	opponent := NewPlayer(Player2, 10)
	ctx := NewContext(opponent, newRand())
	p.Resolve(Discard{1}, ctx)
	p.Resolve(Scrap{2, ScrapDiscardOrHand}, ctx)
	p.Resolve(OpponentDiscard{1}, ctx)
	p.Resolve(Discard{0}, ctx)

	require.Len(t, ctx.Choices, 2)
	assert.Equal(t, ChoiceDiscard, ctx.Choices[0].Kind)
	assert.False(t, ctx.Choices[0].Optional)
	assert.Equal(t, ChoiceScrap, ctx.Choices[1].Kind)
	assert.Equal(t, uint32(2), ctx.Choices[1].Count)
	assert.True(t, ctx.Choices[1].Optional)
	assert.Equal(t, []Zone{ZoneDiscard, ZoneHand}, ctx.Choices[1].Zones())
	assert.Equal(t, uint32(1), opponent.PendingDiscard())
}
