package balloons

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
}

// DefaultRunConfig returns an 800x800 window titled "Happy Birthday".
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:  "Happy Birthday",
		Width:  800,
		Height: 800,
	}
}

// game adapts a Component to ebiten.Game. The window is the Component's host;
// Layout reports its size every frame and any change becomes a resize signal.
type game struct {
	comp *Component
	host *SizedHost
	fps  *fpsCounter
}

func (g *game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.comp.Destroy()
		return ebiten.Termination
	}
	g.comp.Update()
	if g.fps != nil {
		g.fps.update(1.0 / float64(ebiten.TPS()))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.comp.Draw(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.host.SetSize(float64(outsideWidth), float64(outsideHeight)) {
		g.comp.Resize()
	}
	return outsideWidth, outsideHeight
}

// Run opens a resizable window, mounts a Component built from opts into it
// and blocks until the window is closed. The Component is destroyed on close.
func Run(opts Options, cfg RunConfig) error {
	def := DefaultRunConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.Title == "" {
		cfg.Title = def.Title
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	host := NewSizedHost(float64(cfg.Width), float64(cfg.Height))
	g := &game{
		comp: NewComponent(host, opts),
		host: host,
	}
	if cfg.ShowFPS {
		g.fps = &fpsCounter{}
	}
	defer g.comp.Destroy()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("balloons: run: %w", err)
	}
	return nil
}
