// Command simulate plays every level headlessly with a fixed aiming
// pattern and reports how each round ended.
package main

import (
	"flag"
	"io/fs"
	"math"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/automoto/slingshot/assets"
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/game"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
)

// Elevation angles tried in turn, in degrees.
var angles = []float64{35, 45, 25, 55, 15, 65}

const dragTicks = 90

type shooter struct {
	world *game.World
	shot  int
	drag  int
	pull  cp.Vector
}

// step advances the current shot by one tick's worth of input.
func (s *shooter) step() {
	if s.drag > 0 {
		s.world.DragBird(s.pull)
		s.drag--
		if s.drag == 0 {
			s.world.LaunchBird()
			s.shot++
		}
		return
	}

	bird, ok := s.world.CurrentBird()
	if !ok || !s.world.BirdReady() {
		return
	}
	if !s.world.SelectBird() {
		return
	}
	bd := components.Bird.Get(bird)
	rad := angles[s.shot%len(angles)] * math.Pi / 180
	s.pull = bd.Anchor.Sub(cp.Vector{X: math.Cos(rad), Y: math.Sin(rad)}.Mult(bd.DragRadius))
	s.drag = dragTicks
}

func loadLevels(dir string) ([]leveldata.Level, error) {
	if dir == "" {
		return assets.LoadLevels()
	}
	var fsys fs.FS = os.DirFS(dir)
	return leveldata.LoadAllLevels(fsys, ".", assets.LevelOptions())
}

func main() {
	levelsDir := flag.String("levels", "", "Directory of .tmx levels (empty = bundled levels)")
	maxTime := flag.Duration("max-time", 2*time.Minute, "Simulated time limit per attempt")
	tickRate := flag.Int("tickrate", 60, "Simulation ticks per second")
	seed := flag.Int64("seed", 1, "Random seed for idle birds")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	if lvl, err := log.ParseLevel(*logLevel); err == nil {
		log.SetLevel(lvl)
	}
	logger := log.Default().With("cmd", "simulate")

	levels, err := loadLevels(*levelsDir)
	if err != nil {
		log.Fatal("could not load levels", "err", err)
	}

	settings := config.Current()
	settings.Round.Simulation = true

	world := game.NewWorld(game.Options{
		Settings: settings,
		Levels:   levels,
		Logger:   logger,
		Seed:     *seed,
	})
	if err := world.Start(); err != nil {
		log.Fatal("could not start", "err", err)
	}

	var stopped atomic.Bool
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		stopped.Store(true)
	}()

	dt := time.Second / time.Duration(*tickRate)
	sh := &shooter{world: world}
	cleared := 0
	var attempt time.Duration

	for !stopped.Load() {
		round := world.Round().Round()
		switch {
		case round.State == config.RoundFinished:
			logger.Info("all levels played", "cleared", cleared, "levels", len(levels))
			return
		case world.IsLevelCleared():
			cleared++
			logger.Info("level cleared", "level", world.LevelIndex(), "tries", round.TimesTried+1, "shots", sh.shot)
			world.NextLevel()
			*sh = shooter{world: world}
			attempt = 0
		case world.IsRetryOffered():
			logger.Info("retrying", "level", world.LevelIndex(), "tries", round.TimesTried+1)
			world.Retry()
			sh.drag = 0
			attempt = 0
		case world.IsLevelFailed():
			logger.Warn("level failed", "level", world.LevelIndex(), "pigs", world.PigsRemaining())
			if err := world.Load(world.LevelIndex() + 1); err != nil {
				logger.Info("no more levels", "cleared", cleared, "levels", len(levels))
				return
			}
			*sh = shooter{world: world}
			attempt = 0
		case attempt > *maxTime:
			logger.Error("attempt timed out", "level", world.LevelIndex(), "state", round.State, "stability", world.LevelStability())
			os.Exit(1)
		default:
			sh.step()
		}
		world.Tick(dt)
		attempt += dt
	}
	logger.Info("interrupted", "cleared", cleared)
}
