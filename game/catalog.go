package game

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"
)

//go:embed cards.txt
var defaultCards string

var (
	ErrUnknownCard   = errors.New("unknown card")
	ErrDuplicateCard = errors.New("duplicate card")
)

type Entry struct {
	Card   *Card
	Copies int
	Text   string
}

// Catalog holds the card prototypes of a game. Prototypes are never put in
// play, Get hands out clones.
type Catalog struct {
	entries []Entry
	byName  map[string]int
}

func NewCatalog() *Catalog {
	return &Catalog{byName: map[string]int{}}
}

func (c *Catalog) Add(card *Card, copies int, text string) error {
	key := strings.ToLower(card.name)
	if _, ok := c.byName[key]; ok {
		return fmt.Errorf("%q: %w", card.name, ErrDuplicateCard)
	}
	c.byName[key] = len(c.entries)
	c.entries = append(c.entries, Entry{Card: card, Copies: copies, Text: text})
	return nil
}

func (c *Catalog) Len() int { return len(c.entries) }

func (c *Catalog) Entries() []Entry { return append([]Entry{}, c.entries...) }

// Get returns a fresh copy of the named card.
func (c *Catalog) Get(name string) (*Card, error) {
	i, ok := c.byName[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownCard)
	}
	return c.entries[i].Card.Clone(), nil
}

// Pool clones every card with its copies, skipping the excluded names.
func (c *Catalog) Pool(exclude ...string) []*Card {
	skip := map[string]bool{}
	for _, name := range exclude {
		skip[strings.ToLower(name)] = true
	}
	cards := []*Card{}
	for _, e := range c.entries {
		if skip[strings.ToLower(e.Card.name)] {
			continue
		}
		for i := 0; i < e.Copies; i++ {
			cards = append(cards, e.Card.Clone())
		}
	}
	return cards
}

// SplitCards splits catalog text into the text of each card. Cards are
// separated by blank lines, lines starting with # are ignored.
func SplitCards(r io.Reader) ([]string, error) {
	texts := []string{}
	var current []string
	flush := func() {
		if len(current) > 0 {
			texts = append(texts, strings.Join(current, "\n"))
			current = nil
		}
	}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, "#"):
		default:
			current = append(current, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading catalog: %w", err)
	}
	flush()
	return texts, nil
}

func LoadCatalog(r io.Reader) (*Catalog, error) {
	texts, err := SplitCards(r)
	if err != nil {
		return nil, err
	}
	return ParseCatalog(texts...)
}

func ParseCatalog(texts ...string) (*Catalog, error) {
	parser := NewCardParser()
	catalog := NewCatalog()
	for _, txt := range texts {
		card, n, err := parser.Parse(txt)
		if err != nil {
			return nil, err
		}
		if err := catalog.Add(card, n, txt); err != nil {
			return nil, err
		}
	}
	return catalog, nil
}

// DefaultCatalog returns the built-in card set.
func DefaultCatalog() *Catalog {
	catalog, err := LoadCatalog(strings.NewReader(defaultCards))
	if err != nil {
		panic(err)
	}
	return catalog
}
