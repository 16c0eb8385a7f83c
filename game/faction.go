package game

import (
	"fmt"
	"strings"
)

type Faction int8

const (
	Blob Faction = iota
	Trade
	Star
	Machine
)

func (f Faction) String() string {
	switch f {
	case Blob:
		return "blob"
	case Trade:
		return "trade"
	case Star:
		return "star"
	case Machine:
		return "machine"
	}
	return "unknown"
}

func ParseFaction(s string) (Faction, error) {
	switch strings.ToLower(s) {
	case "blob":
		return Blob, nil
	case "trade":
		return Trade, nil
	case "star":
		return Star, nil
	case "machine":
		return Machine, nil
	}
	return 0, fmt.Errorf("unknown faction %q", s)
}

func (f *Faction) Capture(values []string) error {
	v, err := ParseFaction(values[0])
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Factions is a multiset of faction tags. Only membership is meaningful.
type Factions []Faction

func (fs Factions) Has(f Faction) bool {
	for _, x := range fs {
		if x == f {
			return true
		}
	}
	return false
}

func (fs *Factions) Capture(values []string) error {
	for _, v := range values {
		f, err := ParseFaction(v)
		if err != nil {
			return err
		}
		*fs = append(*fs, f)
	}
	return nil
}

func (fs Factions) String() string {
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.String()
	}
	return strings.Join(names, " ")
}
