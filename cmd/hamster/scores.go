package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hamster-dodge/internal/highscore"
	"github.com/vovakirdan/hamster-dodge/internal/platform/tui"
	"github.com/vovakirdan/hamster-dodge/internal/storage"
)

var (
	flagBrowse bool
	flagRecent bool
	flagClear  bool
	flagLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded rounds",
	Long: `Display the best rounds from the round history, plus the high score file.

Examples:
  hamster scores
  hamster scores --recent
  hamster scores --browse
  hamster scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse rounds interactively")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the most recent rounds instead of the best")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded rounds")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to list")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRounds(); err != nil {
			return err
		}
		fmt.Println("Round history cleared.")
		return nil
	}

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	title := "Best Rounds"
	fetch := store.TopRounds
	if flagRecent {
		title = "Recent Rounds"
		fetch = store.RecentRounds
	}

	rounds, err := fetch(flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("%s - Hamster vs. Squeaky Toys\n", title)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'hamster play' to set the first score!")
	} else {
		fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %s\n", "Rank", "Player", "Score", "Bonus", "Date")
		fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %s\n", "----", "------", "-----", "-----", "----")

		for i, r := range rounds {
			bonus := ""
			if r.BonusLife {
				bonus = "+1"
			}
			fmt.Printf("  %-4d  %-12s  %-8d  %-5s  %s\n", i+1, r.Player, r.Score, bonus, r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	fmt.Println()
	if best, err := store.BestScore(); err == nil && len(rounds) > 0 {
		fmt.Printf("Best recorded round: %d\n", best)
	}
	high, err := highscore.Load(flagScoreFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return nil
	}
	fmt.Printf("High score (%s): %d\n", flagScoreFile, high)
	return nil
}
