package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-hunt/internal/config"
	"github.com/vovakirdan/arcade-hunt/internal/core"
	"github.com/vovakirdan/arcade-hunt/internal/hunt"
	"github.com/vovakirdan/arcade-hunt/internal/render"
	"github.com/vovakirdan/arcade-hunt/internal/session"
	"github.com/vovakirdan/arcade-hunt/internal/storage"
)

var (
	flagVariant    string
	flagTicks      int
	flagConfig     string
	flagDifficulty string
	flagDemo       bool
	flagBoard      bool
	flagNoSave     bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play a game with the autopilot",
	Long: `Simulate a game of the selected variant. The autopilot steers Pac
until the game is over or the tick limit is reached; the final score is
recorded in the scores database.

Difficulty options:
  easy   - Five lives
  normal - Variant defaults
  hard   - Two lives

Examples:
  hunt run
  hunt run --variant mspacman --ticks 7200
  hunt run --seed 42 --board
  hunt run --config ./my-pacman.yaml --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagVariant, "variant", string(config.VariantPacMan), "Game variant")
	runCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Maximum ticks to simulate (0 = until game over)")
	runCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom variant config YAML")
	runCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	runCmd.Flags().BoolVar(&flagDemo, "demo", false, "Play with attract-mode demo rules")
	runCmd.Flags().BoolVar(&flagBoard, "board", false, "Print the final board")
	runCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the score")
}

func runRun(cmd *cobra.Command, args []string) {
	variant := config.Variant(flagVariant)

	cfg, err := config.Load(variant, flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'hunt variants' to see available variants.")
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	}

	rt := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     seed(),
	}

	opts := []session.Option{
		session.WithLogger(logger),
		session.WithDemo(flagDemo),
	}
	if !flagNoSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open scores database", "error", err)
			// Continue without storage
		} else {
			defer store.Close()
			opts = append(opts,
				session.WithHighScoreStore(store.Blob(string(cfg.Variant))),
				session.WithHistory(store),
			)
		}
	}
	opts = append(opts, session.WithEventSink(hunt.EventSinkFunc(logEvent)))

	s, err := session.New(cfg, rt, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	logger.Info("game started", "session", s.ID(), "variant", cfg.Variant, "seed", rt.Seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sum, err := s.Run(ctx, flagTicks)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("game aborted", "error", err)
	}

	if flagBoard {
		fmt.Println(render.Screen(render.Board(s.Level(), s.Maze())))
		fmt.Println()
	}
	fmt.Println(renderSummary(sum))
}

// logEvent reports the highlights of a game at debug level.
func logEvent(tick uint64, e hunt.Event) {
	switch e := e.(type) {
	case hunt.PacKilledEvent:
		logger.Debug("pac killed", "tick", tick, "ghost", e.Killer)
	case hunt.ExtraLifeEvent:
		logger.Debug("extra life", "tick", tick, "threshold", e.ExtraLife.Threshold)
	case hunt.HuntingPhaseStartedEvent:
		logger.Debug("hunting phase", "tick", tick, "phase", e.Phase, "index", e.Index)
	case hunt.GhostReleasedEvent:
		logger.Debug("ghost released", "tick", tick, "ghost", e.Release.Ghost, "reason", e.Release.Reason)
	}
}

func renderSummary(sum session.Summary) string {
	outcome := "Stopped"
	if sum.GameOver {
		outcome = "Game over"
	}

	rows := [][2]string{
		{"Score", fmt.Sprint(sum.Score)},
		{"High score", fmt.Sprint(sum.HighScore)},
		{"Level", fmt.Sprint(sum.Level)},
		{"Levels cleared", fmt.Sprint(sum.LevelsCompleted)},
		{"Lives left", fmt.Sprint(sum.LivesLeft)},
		{"Ticks", fmt.Sprintf("%d (%s)", sum.Ticks, sum.GameTime)},
		{"Pellets", fmt.Sprint(sum.PelletsEaten)},
		{"Energizers", fmt.Sprint(sum.EnergizersEaten)},
		{"Ghosts eaten", fmt.Sprint(sum.GhostsKilled)},
		{"Bonuses", fmt.Sprint(sum.BonusesEaten)},
		{"Extra lives", fmt.Sprint(sum.ExtraLives)},
		{"Deaths", fmt.Sprint(sum.Deaths)},
	}

	var lines []string
	for _, r := range rows {
		lines = append(lines, labelStyle.Render(fmt.Sprintf("%-15s", r[0]))+valueStyle.Render(r[1]))
	}

	title := titleStyle.Render(fmt.Sprintf("%s - %s", strings.ToUpper(sum.Variant), outcome))
	body := panelStyle.Render(strings.Join(lines, "\n"))
	footer := helpStyle.Render("session " + sum.SessionID.String())
	return lipgloss.JoinVertical(lipgloss.Left, title, body, footer)
}
