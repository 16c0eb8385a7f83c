package game

import (
	"errors"
	"fmt"
	"slices"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

var (
	ErrNotActionable = errors.New("nothing to do here")
	ErrOutpostFirst  = errors.New("outposts must be destroyed first")
	ErrNoAttack      = errors.New("no attack to spend")
	ErrGameOver      = errors.New("game is over")
)

type Rules struct {
	HandSize     int
	ShopSize     int
	StartingLife int
	Explorer     string
	Starter      map[string]int
}

func DefaultRules() Rules {
	return Rules{
		HandSize:     5,
		ShopSize:     5,
		StartingLife: 50,
		Explorer:     "Explorer",
		Starter:      map[string]int{"Viper": 2, "Scout": 8},
	}
}

// Game is one session between two players. It is driven by Interact and is
// not safe for concurrent use.
type Game struct {
	Id            ulid.ULID
	players       [2]*Player
	supply        *Deck
	shop          *Shop
	explorer      *Card
	active        PlayerId
	turn          int
	focus         Focus
	pending       []*Choice
	winner        *Player
	err           error
	rng           Rand
	rules         Rules
	logger        *zap.Logger
	eventHandlers map[EventType][]EventHandler
}

func NewGame(catalog *Catalog, rules Rules, rng Rand, logger *zap.Logger) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	explorer, err := catalog.Get(rules.Explorer)
	if err != nil {
		return nil, fmt.Errorf("explorer: %w", err)
	}
	names := make([]string, 0, len(rules.Starter))
	for name := range rules.Starter {
		names = append(names, name)
	}
	slices.Sort(names)
	g := &Game{
		Id:            ulid.Make(),
		supply:        NewDeck(catalog.Pool(append(names, rules.Explorer)...)...),
		shop:          NewShop(rules.ShopSize),
		explorer:      explorer,
		active:        Player1,
		turn:          1,
		rng:           rng,
		rules:         rules,
		logger:        logger,
		eventHandlers: map[EventType][]EventHandler{},
	}
	for _, nr := range []PlayerId{Player1, Player2} {
		starter := []*Card{}
		for _, name := range names {
			for i := 0; i < rules.Starter[name]; i++ {
				card, err := catalog.Get(name)
				if err != nil {
					return nil, fmt.Errorf("starter: %w", err)
				}
				starter = append(starter, card)
			}
		}
		p := NewPlayer(nr, rules.StartingLife, starter...)
		p.game = g
		g.players[nr] = p
	}
	for i := 0; i < g.shop.Len(); i++ {
		g.shop.Refill(g.supply, i, rng)
	}
	g.players[Player1].DrawHand(rules.HandSize, rng)
	g.focus = Land(g, ZoneHand, Player1, false)
	g.logger.Info("game started",
		zap.Stringer("game", g.Id),
		zap.Int("supply", g.supply.Len()),
	)
	return g, nil
}

func (g *Game) Player(id PlayerId) *Player { return g.players[id] }

func (g *Game) ActivePlayer() *Player { return g.players[g.active] }

func (g *Game) Opponent() *Player { return g.players[g.active.Other()] }

func (g *Game) Active() PlayerId { return g.active }

func (g *Game) Turn() int { return g.turn }

func (g *Game) Focus() Focus { return g.focus }

// SetFocus moves the cursor, clamped to the board.
func (g *Game) SetFocus(f Focus) { g.focus = f.Normalize(g) }

func (g *Game) Shop() []*Card { return g.shop.Slots() }

func (g *Game) Explorer() *Card { return g.explorer }

func (g *Game) SupplyLen() int { return g.supply.Len() }

func (g *Game) Rules() Rules { return g.rules }

func (g *Game) Winner() *Player { return g.winner }

// Err is the reason the last command did nothing, if any.
func (g *Game) Err() error { return g.err }

// Pending returns the choice the active player has to make first, if any.
func (g *Game) Pending() *Choice {
	if len(g.pending) == 0 {
		return nil
	}
	return g.pending[0]
}

func (g *Game) Len(zone Zone, owner PlayerId) int {
	switch zone {
	case ZoneShop:
		return g.shop.Len()
	case ZoneExplorer, ZoneEndTurn:
		return 1
	}
	return g.players[owner].deck(zone).Len()
}

// Card returns the card under a focus, or nil.
func (g *Game) Card(f Focus) *Card {
	if !f.Valid(g) {
		return nil
	}
	switch f.Zone {
	case ZoneExplorer:
		return g.explorer
	case ZoneShop:
		if f.Index == NoIndex {
			return nil
		}
		return g.shop.Get(f.Index)
	case ZoneEndTurn, ZoneDrawPile:
		return nil
	}
	if f.Index == NoIndex {
		return nil
	}
	return g.players[f.Owner].deck(f.Zone).Get(f.Index)
}

// Interact applies one command. Commands that cannot apply leave the game
// unchanged and their reason in Err.
func (g *Game) Interact(cmd Command) {
	if g.winner != nil {
		g.err = ErrGameOver
		return
	}
	g.err = nil
	switch cmd {
	case CommandLeft, CommandRight, CommandUp, CommandDown:
		g.focus = g.focus.Move(cmd, g)
	case CommandConfirm:
		g.err = g.confirm()
		if g.err != nil {
			g.logger.Debug("command ignored",
				zap.Stringer("focus", g.focus),
				zap.Error(g.err),
			)
		}
		g.focus = g.focus.Normalize(g)
	default:
		panic(fmt.Sprintf("unknown command %d", cmd))
	}
}

func (g *Game) confirm() error {
	f := g.focus
	if c := g.Pending(); c != nil {
		return g.choose(c, f)
	}
	p := g.ActivePlayer()
	switch f.Zone {
	case ZoneShop:
		if f.Index == NoIndex {
			return ErrNotActionable
		}
		return p.BuyFromShop(g.supply, g.shop, f.Index, g.rng)
	case ZoneExplorer:
		if p.currency < g.explorer.price {
			return ErrInsufficientCurrency
		}
		return p.BuyCard(g.explorer.Clone())
	case ZoneEndTurn:
		return g.attackOrEndTurn()
	case ZoneDrawPile:
		return ErrNotActionable
	}
	if f.Index == NoIndex {
		return ErrNotActionable
	}
	switch {
	case f.Zone == ZoneHand && f.Owner == g.active:
		g.play(f.Index)
		return nil
	case f.Zone == ZonePlayed && f.Owner == g.active:
		return g.scrap(f.Index)
	case f.Zone == ZonePlayed:
		return g.attackPlayed(f.Index)
	}
	return ErrNotActionable
}

func (g *Game) play(index int) {
	p := g.ActivePlayer()
	ctx := NewContext(g.Opponent(), g.rng)
	card := p.PlayCard(index, ctx)
	g.logger.Debug("card played",
		zap.Stringer("player", p.nr),
		zap.String("card", card.name),
		zap.Uint32("currency", p.currency),
		zap.Uint32("attack", p.attack),
	)
	g.queue(ctx.Choices...)
}

func (g *Game) scrap(index int) error {
	p := g.ActivePlayer()
	if !p.played.Get(index).HasScrapAbility() {
		return ErrNotActionable
	}
	ctx := NewContext(g.Opponent(), g.rng)
	card := p.ScrapPlayed(index, ctx)
	g.logger.Debug("card scrapped", zap.Stringer("player", p.nr), zap.String("card", card.name))
	g.queue(ctx.Choices...)
	return nil
}

// attackPlayed spends attack on a persistent card of the opponent.
func (g *Game) attackPlayed(index int) error {
	p := g.ActivePlayer()
	target := g.Opponent()
	card := target.played.Get(index)
	if !card.IsPersistent() {
		return ErrNotActionable
	}
	if card.shape != Outpost && len(target.Outposts()) > 0 {
		return ErrOutpostFirst
	}
	if p.attack == 0 {
		return ErrNoAttack
	}
	dealt := card.Damage(p.attack)
	p.attack -= dealt
	g.Emit(EventOnAttack, target, card, int(dealt))
	if card.Destroyed() {
		target.DestroyPlayed(index)
		g.logger.Debug("card destroyed", zap.Stringer("owner", target.nr), zap.String("card", card.name))
	}
	return nil
}

func (g *Game) attackOrEndTurn() error {
	p := g.ActivePlayer()
	target := g.Opponent()
	if p.attack > 0 && len(target.Outposts()) == 0 {
		attack := p.GetAttack()
		g.Emit(EventOnAttack, target, nil, int(attack))
		target.TakeDamage(attack)
		g.logger.Info("player attacked",
			zap.Stringer("player", p.nr),
			zap.Uint32("attack", attack),
			zap.Int("life", target.life),
		)
		if target.life <= 0 {
			g.winner = p
			g.Emit(EventOnWin, p, nil, 0)
			g.logger.Info("game won", zap.Stringer("player", p.nr), zap.Int("turn", g.turn))
		}
		return nil
	}
	g.EndTurn()
	return nil
}

// EndTurn cleans up the active player, hands the turn over and draws the
// new hand.
func (g *Game) EndTurn() {
	p := g.ActivePlayer()
	p.Cleanup()
	g.pending = nil
	g.Emit(EventOnTurnEnd, p, nil, g.turn)

	g.active = g.active.Other()
	g.turn++
	next := g.ActivePlayer()
	next.DrawHand(g.rules.HandSize, g.rng)
	if next.pendingDiscard > 0 {
		n := min(next.pendingDiscard, uint32(next.hand.Len()))
		next.pendingDiscard = 0
		if n > 0 {
			g.queue(&Choice{Kind: ChoiceDiscard, Player: next, Zone: ScrapHand, Count: n})
		}
	}
	g.focus = g.focus.Normalize(g)
	g.Emit(EventOnTurnStart, next, nil, g.turn)
	g.logger.Info("turn started",
		zap.Int("turn", g.turn),
		zap.Stringer("player", next.nr),
		zap.Int("life", next.life),
	)
}

func (g *Game) queue(choices ...*Choice) {
	for _, c := range choices {
		g.pending = append(g.pending, c)
		g.Emit(EventOnChoice, c.Player, c.Source, int(c.Count))
	}
	g.settle()
}

// settle drops choices that are done or have nothing left to pick from.
func (g *Game) settle() {
	for len(g.pending) > 0 {
		c := g.pending[0]
		if c.Count > 0 && g.hasCandidate(c) {
			return
		}
		g.pending = g.pending[1:]
	}
}

func (g *Game) hasCandidate(c *Choice) bool {
	for _, z := range c.Zones() {
		if z == ZoneShop {
			for _, card := range g.shop.slots {
				if card != nil {
					return true
				}
			}
			continue
		}
		if c.Player.deck(z).Len() > 0 {
			return true
		}
	}
	return false
}

func (g *Game) choose(c *Choice, f Focus) error {
	if f.Zone == ZoneEndTurn && c.Optional {
		g.pending = g.pending[1:]
		g.settle()
		return nil
	}
	if !c.Allows(f) {
		return ErrNotActionable
	}
	switch {
	case c.Kind == ChoiceDiscard:
		c.Player.DiscardCard(f.Index)
	case f.Zone == ZoneShop:
		card := g.shop.Get(f.Index)
		if card == nil {
			return ErrEmptySlot
		}
		g.shop.Take(f.Index)
		g.shop.Refill(g.supply, f.Index, g.rng)
		g.Emit(EventOnScrap, c.Player, card, 0)
	default:
		c.Player.ScrapCard(f.Zone, f.Index)
	}
	c.Count--
	g.settle()
	return nil
}
