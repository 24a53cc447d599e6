package balloons

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Physics defaults.
const (
	DefaultGravity       = 1000.0 // px/s², downward
	DefaultDamping       = 0.55   // fraction of velocity kept per second
	DefaultWallThickness = 50.0
	DefaultRestitution   = 0.1
	DefaultFriction      = 0.1
	DefaultDensity       = 0.001
	DefaultIterations    = 10
	DefaultGrabForce     = 50000.0

	pointerFollow = 0.25 // pointer body lerp factor per step
)

// WorldConfig controls NewWorld.
type WorldConfig struct {
	Width, Height float64
	Gravity       float64
	Damping       float64
	WallThickness float64
	Restitution   float64
	Friction      float64
	Density       float64
	Iterations    int
	GrabForce     float64
}

func (c *WorldConfig) withDefaults() WorldConfig {
	out := *c
	if out.Gravity == 0 {
		out.Gravity = DefaultGravity
	}
	if out.Damping <= 0 || out.Damping > 1 {
		out.Damping = DefaultDamping
	}
	if out.WallThickness <= 0 {
		out.WallThickness = DefaultWallThickness
	}
	if out.Density <= 0 {
		out.Density = DefaultDensity
	}
	if out.Iterations <= 0 {
		out.Iterations = DefaultIterations
	}
	if out.GrabForce <= 0 {
		out.GrabForce = DefaultGrabForce
	}
	return out
}

// World wraps a Chipmunk space holding four static walls and one dynamic
// circle per descriptor. Body i always corresponds to descriptor i.
type World struct {
	cfg    WorldConfig
	space  *cp.Space
	bodies []*cp.Body
	radii  []float64
	walls  []Rect

	pointer *cp.Body
	target  cp.Vector
	joint   *cp.Constraint
	grabbed int
	ramp    *forceRamp
}

// NewWorld creates the simulation world for descs inside a cfg.Width x
// cfg.Height viewport.
func NewWorld(cfg WorldConfig, descs []Descriptor) *World {
	cfg = cfg.withDefaults()

	space := cp.NewSpace()
	space.Iterations = uint(cfg.Iterations)
	space.SetGravity(cp.Vector{X: 0, Y: cfg.Gravity})
	space.SetDamping(cfg.Damping)

	w := &World{
		cfg:     cfg,
		space:   space,
		bodies:  make([]*cp.Body, 0, len(descs)),
		radii:   make([]float64, 0, len(descs)),
		pointer: cp.NewKinematicBody(),
		grabbed: -1,
	}
	w.addWalls()

	for i, d := range descs {
		mass := cfg.Density * math.Pi * d.Radius * d.Radius
		body := space.AddBody(cp.NewBody(mass, cp.MomentForCircle(mass, 0, d.Radius, cp.Vector{})))
		body.SetPosition(cp.Vector{X: d.X, Y: d.Y})
		body.UserData = i

		shape := space.AddShape(cp.NewCircle(body, d.Radius, cp.Vector{}))
		shape.SetElasticity(cfg.Restitution)
		shape.SetFriction(cfg.Friction)

		w.bodies = append(w.bodies, body)
		w.radii = append(w.radii, d.Radius)
	}
	return w
}

// addWalls adds four static slabs of WallThickness centered on the viewport
// edges.
func (w *World) addWalls() {
	width, height, t := w.cfg.Width, w.cfg.Height, w.cfg.WallThickness
	half := t / 2
	edges := [4][2]cp.Vector{
		{{X: 0, Y: 0}, {X: width, Y: 0}},           // top
		{{X: 0, Y: height}, {X: width, Y: height}}, // bottom
		{{X: width, Y: 0}, {X: width, Y: height}},  // right
		{{X: 0, Y: 0}, {X: 0, Y: height}},          // left
	}
	for _, e := range edges {
		shape := w.space.AddShape(cp.NewSegment(w.space.StaticBody, e[0], e[1], half))
		shape.SetElasticity(w.cfg.Restitution)
		shape.SetFriction(w.cfg.Friction)
	}
	w.walls = []Rect{
		{X: 0, Y: -half, Width: width, Height: t},
		{X: 0, Y: height - half, Width: width, Height: t},
		{X: width - half, Y: 0, Width: t, Height: height},
		{X: -half, Y: 0, Width: t, Height: height},
	}
}

// Step advances the simulation by dt seconds, moving the pointer body toward
// the drag target first.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	cur := w.pointer.Position()
	next := cur.Lerp(w.target, pointerFollow)
	w.pointer.SetVelocityVector(next.Sub(cur).Mult(1 / dt))
	w.pointer.SetPosition(next)

	if w.joint != nil && w.ramp != nil {
		w.joint.SetMaxForce(w.ramp.Update(float32(dt)))
	}
	w.space.Step(dt)
}

// Len returns the number of circles.
func (w *World) Len() int {
	return len(w.bodies)
}

// Position returns the current center of circle i. ok is false when i is out
// of range.
func (w *World) Position(i int) (pos Vec2, ok bool) {
	if i < 0 || i >= len(w.bodies) {
		return Vec2{}, false
	}
	p := w.bodies[i].Position()
	return Vec2{X: p.X, Y: p.Y}, true
}

// Radius returns the radius of circle i.
func (w *World) Radius(i int) float64 {
	if i < 0 || i >= len(w.radii) {
		return 0
	}
	return w.radii[i]
}

// Walls returns the wall rectangles in world coordinates.
func (w *World) Walls() []Rect {
	return w.walls
}

// Size returns the viewport the world was built for.
func (w *World) Size() (width, height float64) {
	return w.cfg.Width, w.cfg.Height
}

// Grab attaches the pointer to the dynamic circle under p. It returns the
// circle index, or -1 when nothing grabbable is there.
func (w *World) Grab(p Vec2) int {
	w.Release()

	at := cp.Vector{X: p.X, Y: p.Y}
	w.target = at
	w.pointer.SetPosition(at)
	w.pointer.SetVelocityVector(cp.Vector{})

	info := w.space.PointQueryNearest(at, 0, cp.SHAPE_FILTER_ALL)
	if info.Shape == nil {
		return -1
	}
	body := info.Shape.Body()
	if body.Mass() >= cp.INFINITY {
		return -1
	}
	idx, ok := body.UserData.(int)
	if !ok {
		return -1
	}

	anchor := at
	if info.Distance > 0 {
		anchor = info.Point
	}
	w.joint = cp.NewPivotJoint2(w.pointer, body, cp.Vector{}, body.WorldToLocal(anchor))
	w.joint.SetMaxForce(0)
	w.joint.SetErrorBias(math.Pow(1.0-0.15, 60.0))
	w.space.AddConstraint(w.joint)
	w.ramp = newForceRamp(w.cfg.GrabForce)
	w.grabbed = idx
	return idx
}

// DragTo moves the drag target to p. The grabbed circle follows on the next
// steps.
func (w *World) DragTo(p Vec2) {
	w.target = cp.Vector{X: p.X, Y: p.Y}
}

// Release drops any grabbed circle.
func (w *World) Release() {
	if w.joint != nil {
		w.space.RemoveConstraint(w.joint)
		w.joint = nil
	}
	w.ramp = nil
	w.grabbed = -1
}

// Grabbed returns the index of the grabbed circle, or -1.
func (w *World) Grabbed() int {
	return w.grabbed
}
