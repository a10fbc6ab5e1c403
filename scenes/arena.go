package scenes

import (
	"fmt"
	"sync"
	"time"

	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/game"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/automoto/slingshot/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

type SceneChanger interface {
	ChangeScene(scene interface{})
}

// ArenaScene plays the levels with the mouse: press on the bird at the
// slingshot, drag to aim and release to launch.
type ArenaScene struct {
	sceneChanger SceneChanger
	settings     cfg.Settings
	levels       []leveldata.Level
	startLevel   int
	store        *systems.Store
	seed         int64

	world    *game.World
	input    actionInput
	paused   bool
	dragging bool
	banner   string
	finished bool
	once     sync.Once
}

func NewArenaScene(sc SceneChanger, settings cfg.Settings, levels []leveldata.Level, startLevel int, store *systems.Store) *ArenaScene {
	return &ArenaScene{
		sceneChanger: sc,
		settings:     settings,
		levels:       levels,
		startLevel:   startLevel,
		store:        store,
		seed:         time.Now().UnixNano(),
	}
}

func (as *ArenaScene) configure() {
	as.world = game.NewWorld(game.Options{
		Settings: as.settings,
		Levels:   as.levels,
		Listener: as,
		Logger:   log.Default(),
		Seed:     as.seed,
	})
	as.world.ECS().AddRenderer(cfg.Default, DrawArena)
	as.world.ECS().AddRenderer(cfg.Default, as.drawHUD)

	if err := as.world.Load(as.startLevel); err != nil {
		log.Error("could not load level, starting from the first", "level", as.startLevel, "err", err)
		if err := as.world.Load(0); err != nil {
			log.Fatal("no playable level", "err", err)
		}
	}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)

	as.input.poll()
	as.handleKeys()
	if as.paused {
		return
	}
	as.handleMouse()
	as.world.Tick(time.Second / time.Duration(ebiten.TPS()))

	if as.finished {
		as.sceneChanger.ChangeScene(NewFinishedScene(as.sceneChanger, func() interface{} {
			return NewArenaScene(as.sceneChanger, as.settings, as.levels, 0, as.store)
		}))
	}
}

func (as *ArenaScene) handleKeys() {
	if as.input.justPressed(cfg.ActionPause) {
		as.paused = !as.paused
		as.dragging = false
	}
	if as.input.justPressed(cfg.ActionRetry) && as.world.Retry() {
		as.banner = ""
	}
	if as.input.justPressed(cfg.ActionNextLevel) && as.world.NextLevel() {
		as.banner = ""
	}
	if as.input.justPressed(cfg.ActionToggleTriggers) {
		cfg.Debug.ShowTriggers = !cfg.Debug.ShowTriggers
	}
	if as.input.justPressed(cfg.ActionToggleIdleHops) {
		// Saved for the next run; the running world keeps its settings.
		as.settings.Bird.IdleHops = !as.settings.Bird.IdleHops
		if err := as.store.Save(systems.CaptureSettings(as.settings)); err == nil {
			as.banner = fmt.Sprintf("idle hops %v from next start", as.settings.Bird.IdleHops)
		}
	}
}

func (as *ArenaScene) handleMouse() {
	w, h := cfg.Debug.ScreenWidth, cfg.Debug.ScreenHeight
	v := newView(as.world.ECS().World, w, h)
	p := v.world(ebiten.CursorPosition())

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		bird, ok := as.world.BirdAt(p)
		head, hasHead := as.world.CurrentBird()
		if ok && hasHead && bird.Entity() == head.Entity() && as.world.BirdReady() {
			as.dragging = as.world.SelectBird()
		}
	}
	if !as.dragging {
		return
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		as.world.LaunchBird()
		as.dragging = false
		return
	}
	as.world.DragBird(p)
}

func (as *ArenaScene) drawHUD(_ *ecs.ECS, screen *ebiten.Image) {
	round := as.world.Round().Round()
	msg := fmt.Sprintf("level %d  try %d/%d  pigs %d/%d  birds %d/%d  blocks %d  stability %.3f  pull %.2f",
		as.levelNumber(), round.TimesTried+1, round.TimesToGiveUp,
		as.world.PigsRemaining(), round.PigsAtStart,
		as.world.BirdsRemaining(), round.BirdsAtStart,
		as.world.BlocksRemaining(), as.world.LevelStability(), as.world.DragDistance(),
	)
	if as.paused {
		msg += "\n\nPAUSED"
	} else if as.banner != "" {
		msg += "\n\n" + as.banner
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (as *ArenaScene) levelNumber() int {
	if as.world == nil {
		return 0
	}
	return as.world.LevelIndex() + 1
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	if as.world == nil {
		return
	}
	as.world.ECS().Draw(screen)
}

func (as *ArenaScene) LevelCleared() {
	as.banner = "Level cleared! N: next level  R: play again"
}

func (as *ArenaScene) LevelFailed(canRetry bool) {
	if canRetry {
		as.banner = "Try again! R: retry"
		return
	}
	as.banner = "Level Failed. R: start over"
}

func (as *ArenaScene) ExitToMenu() {
	as.finished = true
}
