/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pauladam94/Stars-Gapa/config"
	"github.com/pauladam94/Stars-Gapa/game"
	"github.com/pauladam94/Stars-Gapa/store"
)

var (
	format string
	name   string
)

type cardEntry struct {
	Name      string   `yaml:"name"`
	Price     uint32   `yaml:"price"`
	Shape     string   `yaml:"shape"`
	Life      uint32   `yaml:"life,omitempty"`
	Factions  []string `yaml:"factions,omitempty"`
	Copies    int      `yaml:"copies"`
	Abilities []string `yaml:"abilities,omitempty"`
}

func writeCards(w io.Writer, catalog *game.Catalog, format string) error {
	switch format {
	case "text":
		for _, e := range catalog.Entries() {
			text := e.Text
			if text == "" {
				text = e.Card.String()
			}
			if _, err := fmt.Fprintf(w, "%s\n\n", strings.TrimSpace(text)); err != nil {
				return err
			}
		}
		return nil
	case "yaml":
		var entries []cardEntry
		for _, e := range catalog.Entries() {
			entry := cardEntry{
				Name:   e.Card.Name(),
				Price:  e.Card.Price(),
				Shape:  e.Card.Shape().String(),
				Life:   e.Card.Defense(),
				Copies: e.Copies,
			}
			for _, f := range e.Card.Factions() {
				entry.Factions = append(entry.Factions, f.String())
			}
			for _, a := range e.Card.Actions() {
				entry.Abilities = append(entry.Abilities, a.String())
			}
			entries = append(entries, entry)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q", format)
}

// findCard returns the catalog text of one card, looked up in the database
// when one is configured.
func findCard(ctx context.Context, cfg *config.Config, name string) (string, error) {
	if cfg.Database != "" {
		repo, err := store.Open(cfg.Database)
		if err != nil {
			return "", err
		}
		defer repo.Close()
		card, err := repo.FindCardByName(ctx, name)
		if err != nil {
			return "", err
		}
		if card == nil {
			return "", fmt.Errorf("%q: %w", name, game.ErrUnknownCard)
		}
		return card.Body, nil
	}
	catalog, err := loadCatalog(ctx, cfg)
	if err != nil {
		return "", err
	}
	card, err := catalog.Get(name)
	if err != nil {
		return "", err
	}
	return card.String(), nil
}

// cardsCmd represents the cards command
var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "List the cards of the catalog",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		if name != "" {
			text, err := findCard(cmd.Context(), cfg, name)
			if err != nil {
				log.Fatal(err)
			}
			cmd.Println(strings.TrimSpace(text))
			return
		}
		catalog, err := loadCatalog(cmd.Context(), cfg)
		if err != nil {
			log.Fatal(err)
		}
		if err := writeCards(cmd.OutOrStdout(), catalog, format); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(cardsCmd)

	cardsCmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text or yaml)")
	cardsCmd.Flags().StringVarP(&name, "name", "n", "", "Show a single card")
}
