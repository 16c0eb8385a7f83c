/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/pauladam94/Stars-Gapa/game"
	"github.com/pauladam94/Stars-Gapa/store"
)

func importCatalog(ctx context.Context, path, dbPath string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	catalog, err := game.LoadCatalog(f)
	if err != nil {
		return 0, err
	}
	repo, err := store.Open(dbPath)
	if err != nil {
		return 0, err
	}
	defer repo.Close()
	if err := repo.ImportCatalog(ctx, catalog); err != nil {
		return 0, err
	}
	return catalog.Len(), nil
}

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import [catalog-file]",
	Short: "Store the cards of a catalog file in the database",
	Long:  `Parse a catalog file and save every card in the sqlite database given by --db`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		if cfg.Database == "" {
			log.Fatal("import needs a database, set --db")
		}
		n, err := importCatalog(cmd.Context(), args[0], cfg.Database)
		if err != nil {
			log.Fatal(err)
		}
		cmd.Printf("imported %d cards into %s\n", n, cfg.Database)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
