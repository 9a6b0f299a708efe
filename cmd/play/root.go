package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"ctchen222/Tic-Tac-Toe-Solo/internal/bot"
	"ctchen222/Tic-Tac-Toe-Solo/internal/session"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "play",
	Short: "Play tic-tac-toe against the computer in the terminal",
	Long: `You play X and move first. Pick a cell by its number (1-9, left to right,
top to bottom); the computer answers as O right away.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var opponent *bot.Opponent
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetUint64("seed")
			opponent = bot.NewSeededOpponent(seed)
		} else {
			opponent = bot.NewOpponent()
		}

		ctrl := session.NewController("terminal",
			session.WithChooser(opponent),
			session.WithLogger(slog.New(slog.DiscardHandler)),
		)
		return play(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), ctrl)
	},
}

// Execute runs the root command until the player quits or stdin closes.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Uint64("seed", 0, "Seed for the computer's random moves, for reproducible games")
}
