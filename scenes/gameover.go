package scenes

import (
	"image/color"

	cfg "github.com/automoto/slingshot/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FinishedScene is shown once every level has been cleared.
type FinishedScene struct {
	sceneChanger SceneChanger
	restart      func() interface{}
	input        actionInput
}

// NewFinishedScene creates the end screen. restart builds the scene to
// return to.
func NewFinishedScene(sc SceneChanger, restart func() interface{}) *FinishedScene {
	return &FinishedScene{sceneChanger: sc, restart: restart}
}

func (fs *FinishedScene) Update() {
	fs.input.poll()
	if fs.input.justPressed(cfg.ActionConfirm) {
		fs.sceneChanger.ChangeScene(fs.restart())
	}
}

func (fs *FinishedScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	ebitenutil.DebugPrintAt(screen, "All levels cleared!\n\nPress Enter to play again", 40, 40)
}
