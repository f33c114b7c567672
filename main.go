// flyshoot is a small arcade shoot-'em-up.
//
// Usage:
//
//	flyshoot                  - Play the game
//	flyshoot scores           - Show the best runs
//	flyshoot simulate         - Run the game headless with an autopilot
//	flyshoot config           - Print the effective tuning as YAML
//
// Global flags:
//
//	--seed <value>   - RNG seed (default: based on time)
//	--config <path>  - YAML tuning overrides
//	--db <path>      - Scores database (default: ~/.flyshoot/scores.db)
//	--debug          - Verbose logging
package main

import (
	"errors"
	"image"
	"os"
	"time"

	cfg "github.com/automoto/flyshoot/config"
	"github.com/automoto/flyshoot/scenes"
	"github.com/automoto/flyshoot/settings"
	"github.com/automoto/flyshoot/storage"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagSeed      int64
	flagConfig    string
	flagDBPath    string
	flagDebug     bool
	flagAssets    string
	flagSkipTitle bool
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, cfg.C.Width, cfg.C.Height)
	return cfg.C.Width, cfg.C.Height
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flyshoot",
	Short: "Fly and Shoot - a small arcade shoot-'em-up",
	Long: `Dodge and destroy waves of enemies. Every enemy shot down is a point;
at game over 50 points buy a continue.

Controls:
  WASD/Arrows  - Move
  Shift        - Slow movement
  M/Space      - Fire
  Enter        - Confirm
  Q            - Quit to title (game over)
  Esc          - Settings
  F3           - Hit boxes
  F11          - Fullscreen`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runGame,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML tuning override")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flyshoot/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory holding images, sounds and the font (default ~/.flyshoot/assets if present)")
	rootCmd.Flags().BoolVar(&flagSkipTitle, "skip-title", false, "Start straight in the game")

	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// setup installs the logger and applies configuration for every command.
func setup(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "flyshoot",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)

	source, err := cfg.Load(flagConfig)
	if err != nil {
		return err
	}
	log.Debug("configuration loaded", "source", source)

	if flagSkipTitle {
		cfg.Debug.SkipTitle = true
	}
	if flagSeed == 0 {
		flagSeed = time.Now().UnixNano()
	}
	return nil
}

func runGame(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	prefs, err := settings.Open("flyshoot")
	if err != nil {
		log.Warn("settings will not be saved", "error", err)
	}

	assetDir := cfg.AssetDir(flagAssets)
	if assetDir == "" {
		log.Info("no assets directory, drawing placeholder shapes")
	}

	seed := flagSeed
	scene := scenes.NewGameScene(scenes.GameOptions{
		Seed:      seed,
		AssetsDir: assetDir,
		Settings:  prefs,
		OnGameOver: func(score int) {
			log.Info("game over", "score", score)
			if store == nil {
				return
			}
			if _, err := store.SaveScore(score, seed); err != nil {
				log.Warn("could not save score", "error", err)
			}
		},
	})

	ebiten.SetWindowSize(cfg.C.Width/2, cfg.C.Height/2)
	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.C.TPS)

	if err := ebiten.RunGame(&Game{scene: scene}); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
