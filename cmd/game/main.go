// forager is a small top-down mining game.
//
// Usage:
//
//	forager                 - Start the game
//	forager runs            - Show recent runs from the history database
//
// Global flags:
//
//	--config <path>     - Tuning file (default: ./configs/forager.yaml, then built-in)
//	--assets <dir>      - Sprite directory (default from tuning)
//	--seed <value>      - RNG seed for reproducible spawns
//	--db <path>         - Run history database (default from tuning)
//	--skip-menu         - Start playing right away
//	--log-level <level> - debug, info, warn or error
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"go-forager/internal/app"
	"go-forager/internal/assets"
	"go-forager/internal/config"
	"go-forager/internal/state"
	"go-forager/internal/storage"
	"go-forager/internal/ui"
	"go-forager/pkg/render"
)

var (
	// Global flags
	flagConfig   string
	flagAssets   string
	flagSeed     int64
	flagDBPath   string
	flagSkipMenu bool
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "forager",
	Short: "Top-down mining game",
	Long: `Walk around, mine ore and trees for experience, avoid the chasers.

Controls:
  WASD / arrows  - move
  left mouse     - hold next to a block to mine it
  Escape / P     - pause
  F3             - debug overlay`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	RunE:              runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Sprite directory (overrides tuning)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database (overrides tuning)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level")
	rootCmd.Flags().BoolVar(&flagSkipMenu, "skip-menu", false, "Start a run immediately")

	rootCmd.AddCommand(runsCmd)
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	log.SetLevel(level)
	log.SetReportTimestamp(true)
	return nil
}

// loadTuning читает настройки и применяет флаги поверх них.
func loadTuning() (config.Tuning, error) {
	tuning, err := config.Load(flagConfig)
	if err != nil {
		return config.Tuning{}, err
	}
	if flagAssets != "" {
		tuning.Assets.Dir = flagAssets
	}
	if flagDBPath != "" {
		tuning.Storage.DBPath = flagDBPath
	}
	return tuning, nil
}

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	dt := time.Duration(deltaTime * float64(time.Second))
	err := a.stateMachine.Update(dt, state.PollInput())
	if errors.Is(err, app.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func runGame(cmd *cobra.Command, args []string) error {
	tuning, err := loadTuning()
	if err != nil {
		return err
	}

	// История забегов необязательна: без базы игра просто не сохраняет результаты
	var recorder app.RunRecorder
	var best state.BestRunSource
	store, err := storage.Open(tuning.Storage.DBPath)
	if err != nil {
		log.Error("run history disabled", "err", err)
	} else {
		defer store.Close()
		recorder, best = store, store
	}

	loader := assets.NewSpriteLoader(tuning.Assets.Dir)
	sprites := assets.LoadSprites(loader)
	if missing := loader.Missing(); len(missing) > 0 {
		log.Warn("sprites replaced with placeholders", "count", len(missing))
	}

	session := app.NewSession(tuning, flagSeed, recorder)
	sm := state.NewStateMachine(&state.Context{
		Session:  session,
		Renderer: render.NewWorldRenderer(sprites),
		Fonts:    ui.LoadFonts(filepath.Join(tuning.Assets.Dir, "fonts")),
		Best:     best,
	})
	if flagSkipMenu {
		session.Start()
		sm.SetState(state.NewGameState(sm))
	} else {
		sm.SetState(state.NewMenuState(sm))
	}

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TPS)

	err = ebiten.RunGame(game)
	// Закрытие окна тоже завершает текущий забег
	_ = session.Quit()
	return err
}
