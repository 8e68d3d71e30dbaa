package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/secret-kiss/internal/config"
	"github.com/vovakirdan/secret-kiss/internal/platform/tui"
	"github.com/vovakirdan/secret-kiss/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
	flagResetBest   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the round history",
	Long: `Display the top 10 rounds and the best score.

Examples:
  secretkiss scores
  secretkiss scores -i        # Browse top and recent rounds
  secretkiss scores --clear       # Forget the history, keep the best score
  secretkiss scores --reset-best  # Forget the best score, keep the history`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the round history")
	scoresCmd.Flags().BoolVar(&flagResetBest, "reset-best", false, "Delete the stored best score")
}

func runScores(_ *cobra.Command, _ []string) {
	kissCfg, _, err := loadKissConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRounds(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Round history cleared.")
		return
	}

	if flagResetBest {
		if err := store.Delete(kissCfg.StoreKey); err != nil {
			fmt.Fprintf(os.Stderr, "Error resetting best score: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Best score reset.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, kissCfg.StoreKey, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printScores(store, kissCfg)
}

func printScores(store *storage.Store, kissCfg config.KissConfig) {
	rounds, err := store.TopRounds(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Secret Kiss")
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'secretkiss play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-10s  %s\n", "Rank", "Score", "Held", "Preset", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-10s  %s\n", "----", "-----", "----", "------", "----")

	for i, r := range rounds {
		fmt.Printf("  %-4d  %-8d  %-8s  %-10s  %s\n",
			i+1, r.Score, fmt.Sprintf("%.1fs", r.Held.Seconds()), r.Preset,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	best, ok, err := store.Get(kissCfg.StoreKey)
	switch {
	case err != nil:
		fmt.Printf("Best: unreadable (%v)\n", err)
	case ok:
		fmt.Printf("Best: %d\n", best)
	default:
		fmt.Printf("Best: %d\n", rounds[0].Score)
	}
}
