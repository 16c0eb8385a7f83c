package game

// Shop is the row of cards for sale. A slot is nil once the supply that
// refills it has run out.
type Shop struct {
	slots []*Card
}

func NewShop(size int) *Shop {
	return &Shop{slots: make([]*Card, size)}
}

func (s *Shop) Len() int { return len(s.slots) }

func (s *Shop) Get(index int) *Card {
	if index < 0 || index >= len(s.slots) {
		panic("Invalid index")
	}
	return s.slots[index]
}

func (s *Shop) Insert(card *Card, index int) {
	if index < 0 || index >= len(s.slots) {
		panic("Invalid index")
	}
	s.slots[index] = card
}

func (s *Shop) Take(index int) *Card {
	card := s.Get(index)
	s.slots[index] = nil
	return card
}

// Refill fills a slot from the supply, leaving a hole when it is empty.
func (s *Shop) Refill(supply *Deck, index int, rng Rand) {
	card, err := supply.RemoveRandom(rng)
	if err != nil {
		s.Insert(nil, index)
		return
	}
	s.Insert(card, index)
}

// Slots returns a copy of the row, holes included.
func (s *Shop) Slots() []*Card { return append([]*Card{}, s.slots...) }
