/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/pauladam94/Stars-Gapa/game"
	"github.com/pauladam94/Stars-Gapa/store"
)

func removeCard(ctx context.Context, dbPath, name string) error {
	repo, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer repo.Close()
	card, err := repo.FindCardByName(ctx, name)
	if err != nil {
		return err
	}
	if card == nil {
		return fmt.Errorf("%q: %w", name, game.ErrUnknownCard)
	}
	return repo.DeleteCard(ctx, card.Name)
}

// removeCmd represents the remove command
var removeCmd = &cobra.Command{
	Use:   "remove [card-name]",
	Short: "Delete a card from the database",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		if cfg.Database == "" {
			log.Fatal("remove needs a database, set --db")
		}
		if err := removeCard(cmd.Context(), cfg.Database, args[0]); err != nil {
			log.Fatal(err)
		}
		cmd.Printf("removed %s from %s\n", args[0], cfg.Database)
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
