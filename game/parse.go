package game

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// cardText is the grammar of one card in the catalog format:
//
//	Cutter {2} ship [trade]
//	gain 2 currency, gain 4 life.
//	trade ally: gain 4 attack.
type cardText struct {
	Price    uint32         `"{" @Int "}"`
	Shape    Shape          `@("ship"|"outpost"|"base")`
	Life     uint32         `@Int?`
	Factions Factions       `("[" @("blob"|"trade"|"star"|"machine")+ "]")?`
	Copies   *copies        `@@?`
	Lines    []*abilityLine `@@*`
}

type copies struct {
	N int `"copies" @Int`
}

type abilityLine struct {
	Condition Condition `(@@ ":")?`
	Actions   []Action  `@@ ("," @@)* "."`
}

type CardParser struct {
	parser *participle.Parser[cardText]
}

func NewCardParser() *CardParser {
	parser := participle.MustBuild[cardText](
		participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
			{"comment", `#[^\n]*`},
			{"whitespace", `\s+`},
			{"Ident", `[a-z][a-z_]*`},
			{"Int", `\d+`},
			{"Punct", `[{}\[\]:,.]`},
		})),
		participle.Union[Action](
			Gain{},
			Draw{},
			Discard{},
			OpponentDiscard{},
			Scrap{},
		),
		participle.Union[Condition](
			WhenScrapped{},
			Ally{},
			Threshold{},
		),
		participle.UseLookahead(3),
	)
	return &CardParser{parser}
}

// Parse reads a single card. The name is everything before the price and
// keeps its case; the rest of the text is case insensitive. The second
// return value is the number of copies the card adds to the shop supply.
func (p *CardParser) Parse(txt string) (*Card, int, error) {
	txt = strings.TrimSpace(txt)
	parts := strings.SplitN(txt, "{", 2)
	name := strings.TrimSpace(parts[0])
	if name == "" || len(parts) < 2 {
		return nil, 0, fmt.Errorf("card %q: missing name or price", txt)
	}
	ast, err := p.parser.ParseString(name, strings.ToLower("{"+parts[1]))
	if err != nil {
		return nil, 0, fmt.Errorf("card %q: %w", name, err)
	}
	b := NewCard(name).Costing(ast.Price).WithFaction(ast.Factions...)
	switch ast.Shape {
	case Ship:
		if ast.Life != 0 {
			return nil, 0, fmt.Errorf("card %q: ships have no life", name)
		}
	case Outpost:
		b.AsOutpost(ast.Life)
	case Base:
		b.AsBase(ast.Life)
	}
	if ast.Shape != Ship && ast.Life == 0 {
		return nil, 0, fmt.Errorf("card %q: %s needs life", name, ast.Shape)
	}
	for _, line := range ast.Lines {
		if line.Condition != nil {
			b.When(line.Condition, line.Actions...)
		} else {
			b.WithAction(line.Actions...)
		}
	}
	n := 1
	if ast.Copies != nil {
		n = ast.Copies.N
	}
	return b.Build(), n, nil
}
