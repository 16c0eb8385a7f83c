/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"log"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pauladam94/Stars-Gapa/config"
	"github.com/pauladam94/Stars-Gapa/game"
	"github.com/pauladam94/Stars-Gapa/ui"
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a hot-seat game in the terminal",
	Long: `Start a game for two players sharing the keyboard.

Arrows or hjkl move the cursor, enter or space confirms and q quits.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		logger, err := config.NewLogger(cfg.Log)
		if err != nil {
			log.Fatal(err)
		}
		defer logger.Sync()

		catalog, err := loadCatalog(cmd.Context(), cfg)
		if err != nil {
			log.Fatal(err)
		}
		seed := cfg.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		g, err := game.NewGame(catalog, cfg.GameRules(), rand.New(rand.NewPCG(seed, seed)), logger)
		if err != nil {
			log.Fatal(err)
		}
		logger.Info("starting game", zap.Uint64("seed", seed), zap.Int("cards", catalog.Len()))
		if err := ui.Run(g, logger); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}
