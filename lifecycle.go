package balloons

import (
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// Host is the drawable region a Component owns.
type Host interface {
	Size() (width, height float64)
}

// SizedHost is a Host whose size is set by its owner, typically from
// ebiten.Game.Layout.
type SizedHost struct {
	w, h float64
}

// NewSizedHost returns a host with the given initial size.
func NewSizedHost(w, h float64) *SizedHost {
	return &SizedHost{w: w, h: h}
}

// Size returns the current size.
func (s *SizedHost) Size() (float64, float64) {
	return s.w, s.h
}

// SetSize updates the size and reports whether it changed.
func (s *SizedHost) SetSize(w, h float64) bool {
	if w == s.w && h == s.h {
		return false
	}
	s.w, s.h = w, h
	return true
}

// State is the lifecycle phase of a Component.
type State uint8

const (
	StateUninitialized State = iota // never set up (no host)
	StateRunning                    // a scene is live, no rebuild pending
	StateRebuilding                 // a debounced rebuild is pending
	StateDestroyed                  // torn down; terminal
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateRebuilding:
		return "rebuilding"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Component owns the greeting for the lifetime of its host: it resolves the
// name, builds the grid and a Scene sized to the host, rebuilds the Scene
// after the host stops resizing, and tears everything down on Destroy.
type Component struct {
	host  Host
	opts  Options
	clock Clock
	rng   *rand.Rand

	name string
	grid Grid

	scene     *Scene
	rebuild   debouncer
	listening bool
	destroyed bool
	rebuilds  int

	logger *log.Logger
}

// ComponentOption customises NewComponent.
type ComponentOption func(*Component)

// WithClock replaces the wall clock used for resize debouncing.
func WithClock(clock Clock) ComponentOption {
	return func(c *Component) { c.clock = clock }
}

// WithRand sets the random source for pastel colors.
func WithRand(rng *rand.Rand) ComponentOption {
	return func(c *Component) { c.rng = rng }
}

// WithLogger sets the debug logger, overriding Options.Debug.
func WithLogger(l *log.Logger) ComponentOption {
	return func(c *Component) { c.logger = l }
}

// NewComponent sets up the greeting inside host and starts listening for
// resizes. A nil host skips initialization entirely and the component stays
// uninitialized. Invalid options are replaced by defaults.
func NewComponent(host Host, opts Options, options ...ComponentOption) *Component {
	if err := opts.Validate(); err != nil {
		def := DefaultOptions()
		opts.Colors = def.Colors
	}
	c := &Component{
		host:   host,
		opts:   opts,
		clock:  realClock{},
		logger: NewDebugLogger(opts.Debug),
	}
	for _, o := range options {
		o(c)
	}
	c.rebuild.quiet = opts.ResizeQuiet

	if host == nil {
		c.debugf("no host, skipping setup")
		return c
	}

	c.name = ResolveName(opts.Name, opts.PageURL, opts.Placeholder)
	c.grid = GenerateGrid(c.name)
	c.debugf("display name %q", c.name)

	c.setup()
	c.listening = true
	return c
}

// canvas returns the drawing rectangle inside the host: the host size minus
// HostMargin, centered.
func (c *Component) canvas() Rect {
	hw, hh := c.host.Size()
	m := c.opts.HostMargin
	return Rect{X: m / 2, Y: m / 2, Width: hw - m, Height: hh - m}
}

// setup discards any live scene and builds a fresh one from the current host
// measurements.
func (c *Component) setup() {
	if c.scene != nil {
		c.scene.Stop()
		c.scene = nil
	}

	vp := c.canvas()
	if vp.Width <= 0 || vp.Height <= 0 {
		c.debugf("host too small (%.0fx%.0f), nothing to build", vp.Width, vp.Height)
		return
	}

	bg, stroke, wall := c.opts.sceneColors()
	c.scene = NewScene(SceneConfig{
		Width:      vp.Width,
		Height:     vp.Height,
		Grid:       c.grid,
		Rows:       c.opts.Rows,
		Cols:       c.opts.Cols,
		Radius:     CircleRadius(vp.Width, vp.Height),
		Inset:      c.opts.StackInset,
		ColorFn:    c.opts.ColorFn,
		Rand:       c.rng,
		Physics:    c.opts.worldConfig(),
		Background: bg,
		Stroke:     stroke,
		Wall:       wall,
		Logger:     c.logger,
	})
	c.scene.SetViewport(vp)
	c.rebuilds++
}

// Resize signals that the host size may have changed. The live scene is
// refitted to the new canvas at once and a rebuild is scheduled after the
// quiet period; further signals within the period push it back.
func (c *Component) Resize() {
	if !c.listening {
		return
	}
	if c.scene != nil {
		c.scene.SetViewport(c.canvas())
	}
	c.rebuild.Signal(c.clock.Now())
}

// Tick fires the pending rebuild once its quiet period has elapsed.
func (c *Component) Tick() {
	if c.destroyed {
		return
	}
	if c.rebuild.Fire(c.clock.Now()) {
		c.Rebuild()
	}
}

// Update runs Tick and advances the live scene by one frame.
func (c *Component) Update() {
	c.Tick()
	if c.scene != nil {
		c.scene.Update()
	}
}

// Draw renders the live scene onto screen.
func (c *Component) Draw(screen *ebiten.Image) {
	if c.scene == nil || screen == nil {
		return
	}
	c.scene.Draw(screen)
}

// Rebuild stops the live scene and builds a new one from fresh host
// measurements. Nothing carries over between the two.
func (c *Component) Rebuild() {
	if c.destroyed || c.host == nil {
		return
	}
	c.debugf("rebuild #%d", c.rebuilds+1)
	c.setup()
}

// Destroy stops listening for resizes, cancels any pending rebuild and stops
// the live scene. Calling it again does nothing.
func (c *Component) Destroy() {
	if c.destroyed {
		return
	}
	c.listening = false
	c.rebuild.Cancel()
	if c.scene != nil {
		c.scene.Stop()
		c.scene = nil
	}
	c.destroyed = true
	c.debugf("destroyed after %d builds", c.rebuilds)
}

// State returns the current lifecycle phase.
func (c *Component) State() State {
	switch {
	case c.destroyed:
		return StateDestroyed
	case !c.listening:
		return StateUninitialized
	case c.rebuild.Pending():
		return StateRebuilding
	default:
		return StateRunning
	}
}

// Name returns the resolved display name.
func (c *Component) Name() string {
	return c.name
}

// Grid returns the letter grid.
func (c *Component) Grid() Grid {
	return c.grid
}

// Scene returns the live scene, or nil.
func (c *Component) Scene() *Scene {
	return c.scene
}

// Rebuilds returns how many scenes have been built, the initial one included.
func (c *Component) Rebuilds() int {
	return c.rebuilds
}

// RebuildPending reports whether a debounced rebuild is scheduled.
func (c *Component) RebuildPending() bool {
	return c.rebuild.Pending()
}
