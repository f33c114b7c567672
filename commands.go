package main

import (
	"fmt"
	"strings"
	"time"

	cfg "github.com/automoto/flyshoot/config"
	"github.com/automoto/flyshoot/sim"
	"github.com/automoto/flyshoot/storage"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagLimit int
	flagClear bool

	flagTicks int
	flagFPS   int
	flagSave  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the highest scores recorded at game over.

Examples:
  flyshoot scores
  flyshoot scores --limit 25
  flyshoot scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the game headless with an autopilot",
	Long: `Step the simulation without a window. The autopilot confirms every
prompt, keeps firing and follows the nearest enemy. The same --seed
always produces the same run.

Examples:
  flyshoot simulate --ticks 3600
  flyshoot simulate --seed 7 --fps 30 --save`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective tuning as YAML",
	Long: `Print the configuration after every override was applied. The output
is a valid override file.

Examples:
  flyshoot config > ~/.flyshoot/config.yaml
  flyshoot config --config ./hard.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")

	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to simulate")
	simulateCmd.Flags().IntVar(&flagFPS, "fps", 60, "Simulated tick rate")
	simulateCmd.Flags().BoolVar(&flagSave, "save", false, "Record every game over in the scores database")
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			MarginBottom(1)
	rowStyle  = lipgloss.NewStyle().Padding(0, 1)
	bestStyle = rowStyle.Foreground(lipgloss.Color("212")).Bold(true)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle  = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
)

func runConfig(cmd *cobra.Command, args []string) error {
	data, err := cfg.Dump()
	if err != nil {
		return fmt.Errorf("rendering config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Println(helpStyle.Render("All scores deleted."))
		return nil
	}

	runs, err := store.TopScores(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}
	fmt.Println(renderScores(runs))
	return nil
}

// renderScores lays out runs as a bordered table with the best run highlighted.
func renderScores(runs []storage.Run) string {
	title := titleStyle.Render("High Scores - " + cfg.C.Title)
	if len(runs) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			"No scores recorded yet.",
			helpStyle.Render("Run 'flyshoot' to set the first one!"),
		)
	}

	widths := []int{6, 8, 22, 20}
	cell := func(style lipgloss.Style, col int, value string) string {
		return style.Width(widths[col]).Render(value)
	}

	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top,
		cell(headerStyle, 0, "Rank"),
		cell(headerStyle, 1, "Score"),
		cell(headerStyle, 2, "Seed"),
		cell(headerStyle, 3, "Date"),
	)}
	for i, r := range runs {
		style := rowStyle
		if i == 0 {
			style = bestStyle
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			cell(style, 0, fmt.Sprintf("%d", i+1)),
			cell(style, 1, fmt.Sprintf("%d", r.Score)),
			cell(style, 2, fmt.Sprintf("%d", r.Seed)),
			cell(style, 3, r.PlayedAt.Local().Format("2006-01-02 15:04")),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, boxStyle.Render(strings.Join(lines, "\n")))
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if flagTicks <= 0 || flagFPS <= 0 {
		return fmt.Errorf("ticks and fps must be positive, got %d and %d", flagTicks, flagFPS)
	}

	var store *storage.Store
	if flagSave {
		s, err := storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("opening scores database: %w", err)
		}
		defer s.Close()
		store = s
	}

	s := sim.New(flagSeed)
	s.SetAssetsReady(nil)

	runs, best := 0, 0
	s.OnGameOver(func(score int) {
		runs++
		best = max(best, score)
		log.Info("game over", "run", runs, "score", score)
		if store != nil {
			if _, err := store.SaveScore(score, flagSeed); err != nil {
				log.Warn("could not save score", "error", err)
			}
		}
	})

	pilot := &sim.Autopilot{}
	dt := time.Second / time.Duration(flagFPS)
	state := s.State()
	for range flagTicks {
		s.Step(dt, pilot.Actions(s))
		if next := s.State(); next != state {
			log.Debug("state changed", "from", state, "to", next, "score", s.Score())
			state = next
		}
	}

	log.Info("simulation finished",
		"seed", flagSeed,
		"ticks", flagTicks,
		"simulated", dt*time.Duration(flagTicks),
		"state", state,
		"score", s.Score(),
		"game_overs", runs,
		"best", max(best, s.Score()),
	)
	return nil
}
