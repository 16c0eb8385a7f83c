/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/pauladam94/Stars-Gapa/config"
	"github.com/pauladam94/Stars-Gapa/game"
	"github.com/pauladam94/Stars-Gapa/store"
)

var (
	cfgFile string
	v       = config.New()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stars",
	Short: "A two player deck building game for the terminal",
	Long: `Stars is a hot-seat deck building game. Both players share one
keyboard, buy ships and bases from a shared shop and attack each other
until one runs out of authority.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (yaml)")
	flags.Uint64("seed", 0, "random seed, 0 picks one")
	flags.String("catalog", "", "card catalog file")
	flags.String("db", "", "sqlite card database")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-file", "stars.log", "log file, empty logs to stderr")

	for key, flag := range map[string]string{
		"seed":      "seed",
		"catalog":   "catalog",
		"database":  "db",
		"log.level": "log-level",
		"log.file":  "log-file",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			log.Fatal(err)
		}
	}
}

func loadConfig() *config.Config {
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// loadCatalog picks the cards from the database, a catalog file or the
// embedded default, in that order.
func loadCatalog(ctx context.Context, cfg *config.Config) (*game.Catalog, error) {
	switch {
	case cfg.Database != "":
		repo, err := store.Open(cfg.Database)
		if err != nil {
			return nil, err
		}
		defer repo.Close()
		catalog, err := repo.LoadCatalog(ctx)
		if err != nil {
			return nil, err
		}
		if catalog.Len() == 0 {
			return nil, fmt.Errorf("database %s holds no cards", cfg.Database)
		}
		return catalog, nil
	case cfg.Catalog != "":
		f, err := os.Open(cfg.Catalog)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return game.LoadCatalog(f)
	}
	return game.DefaultCatalog(), nil
}
