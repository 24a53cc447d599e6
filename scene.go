package balloons

import (
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderHook runs after the scene has drawn its bodies for a frame.
type RenderHook func(dst *ebiten.Image, cam *Camera)

// SceneConfig describes one stack instance.
type SceneConfig struct {
	// Width and Height are the viewport the stack is laid out in.
	Width, Height float64

	Grid       Grid
	Rows, Cols int
	Radius     float64
	Inset      float64
	ColorFn    ColorFunc
	Rand       *rand.Rand

	Physics WorldConfig

	Background Color
	Stroke     Color
	Wall       Color

	Logger *log.Logger
}

// Scene is a single live stack: the physics world, its circle descriptors,
// the glyph overlay and pointer dragging. A Scene is never reused; rebuilding
// means stopping it and creating a new one.
type Scene struct {
	cfg     SceneConfig
	descs   []Descriptor
	world   *World
	overlay *Overlay
	cam     *Camera
	hooks   []RenderHook
	running bool

	input       pointerInput
	injectQueue []injectedEvent

	logger *log.Logger
}

// NewScene builds the descriptors from cfg, creates the physics world with
// walls and circles, registers the glyph overlay as an after-render hook and
// starts running.
func NewScene(cfg SceneConfig) *Scene {
	if cfg.Background == (Color{}) {
		cfg.Background = ColorBackground
	}
	if cfg.Stroke == (Color{}) {
		cfg.Stroke = ColorStroke
	}
	if cfg.Wall == (Color{}) {
		cfg.Wall = ColorWall
	}

	descs := BuildStack(cfg.Grid, StackConfig{
		Rows:    cfg.Rows,
		Cols:    cfg.Cols,
		Radius:  cfg.Radius,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Inset:   cfg.Inset,
		ColorFn: cfg.ColorFn,
		Rand:    cfg.Rand,
	})

	phys := cfg.Physics
	phys.Width, phys.Height = cfg.Width, cfg.Height

	s := &Scene{
		cfg:     cfg,
		descs:   descs,
		world:   NewWorld(phys, descs),
		cam:     newCamera(Rect{Width: cfg.Width, Height: cfg.Height}),
		input:   newPointerInput(),
		logger:  cfg.Logger,
		running: true,
	}
	s.cam.LookAt(Rect{Width: cfg.Width, Height: cfg.Height})

	source, err := loadGlyphSource()
	if err != nil {
		s.debugf("overlay disabled: %v", err)
	}
	s.overlay = newOverlay(s.world, descs, source)
	s.OnAfterRender(s.overlay.Draw)

	s.debugf("scene %.0fx%.0f: %d circles, radius %.1f", cfg.Width, cfg.Height, len(descs), cfg.Radius)
	return s
}

// OnAfterRender registers fn to run after every Draw, in registration order.
func (s *Scene) OnAfterRender(fn RenderHook) {
	s.hooks = append(s.hooks, fn)
}

// SetViewport sets the screen rectangle the scene renders into and fits the
// world bounds inside it.
func (s *Scene) SetViewport(vp Rect) {
	s.cam.Viewport = vp
	s.cam.LookAt(Rect{Width: s.cfg.Width, Height: s.cfg.Height})
}

// Update processes pointer input and advances the simulation by one tick.
func (s *Scene) Update() {
	if !s.running {
		return
	}
	s.processInput()
	s.Step(1.0 / float64(ebiten.TPS()))
}

// Step advances the physics world by dt seconds while the scene is running.
func (s *Scene) Step(dt float64) {
	if !s.running {
		return
	}
	s.world.Step(dt)
}

// Draw paints the background, walls and circles, then runs the after-render
// hooks. A stopped scene draws nothing.
func (s *Scene) Draw(screen *ebiten.Image) {
	if !s.running || screen == nil {
		return
	}
	screen.Fill(s.cfg.Background.RGBA())

	z := float32(s.cam.Zoom)
	wall := s.cfg.Wall.RGBA()
	for _, r := range s.world.Walls() {
		x, y := s.cam.WorldToScreen(r.X, r.Y)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(r.Width)*z, float32(r.Height)*z, wall, false)
	}

	stroke := s.cfg.Stroke.RGBA()
	for i := range s.descs {
		pos, ok := s.world.Position(i)
		if !ok {
			continue
		}
		x, y := s.cam.WorldToScreen(pos.X, pos.Y)
		r := float32(s.world.Radius(i)) * z
		vector.DrawFilledCircle(screen, float32(x), float32(y), r, s.descs[i].Color.RGBA(), true)
		vector.StrokeCircle(screen, float32(x), float32(y), r, 1, stroke, true)
	}

	for _, fn := range s.hooks {
		fn(screen, s.cam)
	}
}

// Stop halts stepping and drawing and drops any drag in progress. Stop is
// idempotent.
func (s *Scene) Stop() {
	if !s.running {
		return
	}
	s.running = false
	s.world.Release()
	s.input.reset()
	s.injectQueue = s.injectQueue[:0]
	s.debugf("scene stopped")
}

// Running reports whether the scene is live.
func (s *Scene) Running() bool {
	return s.running
}

// Descriptors returns the circles in creation order. The returned slice MUST
// NOT be mutated.
func (s *Scene) Descriptors() []Descriptor {
	return s.descs
}

// World returns the physics world.
func (s *Scene) World() *World {
	return s.world
}

// Overlay returns the glyph overlay.
func (s *Scene) Overlay() *Overlay {
	return s.overlay
}

// Camera returns the scene camera.
func (s *Scene) Camera() *Camera {
	return s.cam
}
