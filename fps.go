package balloons

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often, in seconds, the readout text is recomputed.
const fpsRefresh = 0.5

// fpsCounter prints the current FPS and TPS in the top-left corner. The text
// is refreshed about every half second.
type fpsCounter struct {
	elapsed float64
	label   string
}

// update advances the refresh timer by dt seconds.
func (f *fpsCounter) update(dt float64) {
	f.elapsed += dt
	if f.label != "" && f.elapsed < fpsRefresh {
		return
	}
	f.elapsed = 0
	f.label = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

func (f *fpsCounter) draw(screen *ebiten.Image) {
	if screen == nil || f.label == "" {
		return
	}
	ebitenutil.DebugPrint(screen, f.label)
}
