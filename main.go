package main

import (
	"flag"
	"image"

	"github.com/automoto/slingshot/assets"
	"github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/scenes"
	"github.com/automoto/slingshot/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.Debug.ScreenWidth, config.Debug.ScreenHeight)
	return config.Debug.ScreenWidth, config.Debug.ScreenHeight
}

func main() {
	level := flag.Int("level", 0, "level index to start at")
	giveUp := flag.Int("give-up", 0, "tries per level before it is failed (0 = saved value)")
	triggers := flag.Bool("triggers", config.Debug.ShowTriggers, "outline trigger zones")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	if lvl, err := log.ParseLevel(*logLevel); err == nil {
		log.SetLevel(lvl)
	} else {
		log.Warn("unknown log level", "level", *logLevel)
	}
	config.Debug.ShowTriggers = *triggers

	settings := config.Current()

	// Initialize persistence and load saved settings
	store, err := systems.OpenStore("slingshot")
	if err != nil {
		log.Warn("settings will not be saved", "err", err)
	}
	saved, err := store.Load()
	if err != nil {
		log.Warn("ignoring saved settings", "err", err)
	}
	systems.ApplySavedSettings(&settings, saved)
	if *giveUp > 0 {
		settings.Round.TimesToGiveUp = *giveUp
		if err := store.Save(systems.CaptureSettings(settings)); err != nil {
			log.Warn("could not save settings", "err", err)
		}
	}

	levels, err := assets.LoadLevels()
	if err != nil {
		log.Fatal("could not load levels", "err", err)
	}
	log.Info("levels loaded", "count", len(levels), "start", *level)

	ebiten.SetWindowSize(config.Debug.ScreenWidth, config.Debug.ScreenHeight)
	ebiten.SetWindowTitle("slingshot")

	g := &Game{}
	g.scene = scenes.NewArenaScene(g, settings, levels, *level, store)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
