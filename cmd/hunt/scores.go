package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-hunt/internal/config"
	"github.com/vovakirdan/arcade-hunt/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show high scores for a variant",
	Long: `Display the top scores and game statistics for the specified variant.

Examples:
  hunt scores pacman
  hunt scores mspacman --limit 20`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, args []string) {
	variant := config.Variant(args[0])

	// Check if variant exists
	if !slices.Contains(config.Variants(), variant) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variant)
		fmt.Fprintln(os.Stderr, "Run 'hunt variants' to see available variants.")
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(string(variant), flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("High Scores - %s", variant)))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println(helpStyle.Render(fmt.Sprintf("Run 'hunt run --variant %s' to set the first high score!", variant)))
		return
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-16s  %s\n", "Rank", "Score", "Level", "Date", "Session")
	fmt.Printf("  %-4s  %-10s  %-5s  %-16s  %s\n", "----", "-----", "-----", "----", "-------")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5d  %-16s  %s\n", i+1, entry.Score, entry.Level, dateStr, entry.SessionID.String()[:8])
	}

	fmt.Println()
	if best, err := store.LoadHighScore(string(variant)); err == nil && best.Points > 0 {
		fmt.Println(labelStyle.Render("Best:    "), valueStyle.Render(fmt.Sprintf("%d (level %d, %s)",
			best.Points, best.LevelNumber, best.Date.Local().Format("2006-01-02"))))
	}
	if stats, err := store.GetVariantStats(string(variant)); err == nil {
		fmt.Println(labelStyle.Render("Games:   "), valueStyle.Render(fmt.Sprint(stats.GamesCount)))
		fmt.Println(labelStyle.Render("Average: "), valueStyle.Render(fmt.Sprintf("%.0f", stats.AvgScore)))
		fmt.Println(labelStyle.Render("Best lvl:"), valueStyle.Render(fmt.Sprint(stats.BestLevel)))
	}
}
